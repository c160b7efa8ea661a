package employees

// SampleEmployees returns a small talent pool used to seed the memory repo
// when no database is configured.
func SampleEmployees() []Employee {
	return []Employee{
		{
			ID: "EMP001", Name: "Sarah Chen", Title: "Senior Frontend Developer",
			Seniority: SenioritySenior, HourlyRate: 95, Availability: 90, Active: true,
			Skills: []Skill{
				{Name: "React", Proficiency: 5, YearsExperience: 4, IsPrimary: true},
				{Name: "TypeScript", Proficiency: 4, YearsExperience: 3},
				{Name: "Next.js", Proficiency: 4, YearsExperience: 2},
				{Name: "Tailwind CSS", Proficiency: 4, YearsExperience: 2.5},
			},
		},
		{
			ID: "EMP002", Name: "Marcus Johnson", Title: "Lead Backend Developer",
			Seniority: SeniorityLead, HourlyRate: 115, Availability: 85, Active: true,
			Skills: []Skill{
				{Name: "Python", Proficiency: 5, YearsExperience: 6, IsPrimary: true},
				{Name: "FastAPI", Proficiency: 5, YearsExperience: 3},
				{Name: "PostgreSQL", Proficiency: 4, YearsExperience: 5},
				{Name: "Docker", Proficiency: 4, YearsExperience: 4},
				{Name: "AWS", Proficiency: 3, YearsExperience: 3},
			},
		},
		{
			ID: "EMP003", Name: "Elena Rodriguez", Title: "Mobile Developer",
			Seniority: SeniorityMid, HourlyRate: 75, Availability: 100, Active: true,
			Skills: []Skill{
				{Name: "React Native", Proficiency: 4, YearsExperience: 3, IsPrimary: true},
				{Name: "Swift", Proficiency: 3, YearsExperience: 2},
				{Name: "Kotlin", Proficiency: 3, YearsExperience: 2},
				{Name: "React", Proficiency: 4, YearsExperience: 3.5},
			},
		},
		{
			ID: "EMP004", Name: "David Kim", Title: "AI Engineer",
			Seniority: SenioritySenior, HourlyRate: 125, Availability: 80, Active: true,
			Skills: []Skill{
				{Name: "Python", Proficiency: 5, YearsExperience: 5, IsPrimary: true},
				{Name: "TensorFlow", Proficiency: 4, YearsExperience: 3},
				{Name: "PyTorch", Proficiency: 4, YearsExperience: 2.5},
				{Name: "OpenAI API", Proficiency: 5, YearsExperience: 2},
			},
		},
		{
			ID: "EMP005", Name: "Jennifer Walsh", Title: "DevOps Engineer",
			Seniority: SeniorityMid, HourlyRate: 85, Availability: 95, Active: true,
			Skills: []Skill{
				{Name: "Docker", Proficiency: 5, YearsExperience: 4, IsPrimary: true},
				{Name: "Kubernetes", Proficiency: 4, YearsExperience: 2},
				{Name: "AWS", Proficiency: 4, YearsExperience: 3},
				{Name: "GitHub Actions", Proficiency: 4, YearsExperience: 2.5},
			},
		},
		{
			ID: "EMP006", Name: "Alex Thompson", Title: "UI/UX Designer",
			Seniority: SenioritySenior, HourlyRate: 80, Availability: 90, Active: true,
			Skills: []Skill{
				{Name: "UI/UX Design", Proficiency: 5, YearsExperience: 6, IsPrimary: true},
				{Name: "Figma", Proficiency: 5, YearsExperience: 4},
				{Name: "Adobe Creative Suite", Proficiency: 4, YearsExperience: 5},
			},
		},
		{
			ID: "EMP007", Name: "Priya Patel", Title: "Full Stack Developer",
			Seniority: SeniorityMid, HourlyRate: 82, Availability: 100, Active: true,
			Skills: []Skill{
				{Name: "Node.js", Proficiency: 4, YearsExperience: 3, IsPrimary: true},
				{Name: "React", Proficiency: 4, YearsExperience: 3},
				{Name: "TypeScript", Proficiency: 4, YearsExperience: 2.5},
				{Name: "MongoDB", Proficiency: 3, YearsExperience: 2},
			},
		},
		{
			ID: "EMP008", Name: "Tom Becker", Title: "Junior Backend Developer",
			Seniority: SeniorityJunior, HourlyRate: 55, Availability: 100, Active: true,
			Skills: []Skill{
				{Name: "Python", Proficiency: 3, YearsExperience: 1.5, IsPrimary: true},
				{Name: "Django", Proficiency: 3, YearsExperience: 1},
				{Name: "PostgreSQL", Proficiency: 2, YearsExperience: 1},
			},
		},
		{
			ID: "EMP009", Name: "Grace Liu", Title: "Principal Architect",
			Seniority: SeniorityPrincipal, HourlyRate: 150, Availability: 60, Active: true,
			Skills: []Skill{
				{Name: "System Design", Proficiency: 5, YearsExperience: 10, IsPrimary: true},
				{Name: "AWS", Proficiency: 5, YearsExperience: 8},
				{Name: "Kubernetes", Proficiency: 4, YearsExperience: 5},
				{Name: "Java", Proficiency: 4, YearsExperience: 9},
			},
		},
		{
			ID: "EMP010", Name: "Omar Haddad", Title: "Frontend Developer",
			Seniority: SeniorityJunior, HourlyRate: 50, Availability: 100, Active: false,
			Skills: []Skill{
				{Name: "React", Proficiency: 3, YearsExperience: 1, IsPrimary: true},
				{Name: "HTML/CSS", Proficiency: 3, YearsExperience: 1.5},
			},
		},
	}
}

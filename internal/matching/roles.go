package matching

import (
	"strings"

	"feasibility-backend/internal/employees"
)

const (
	techStackSkillWeight = 1.0
	categorySkillWeight  = 0.5
)

// roleSkillCategory maps a role-title keyword to the skills typically
// associated with that discipline. Keywords are matched as case-insensitive
// substrings of the role title; skill names themselves are matched exactly
// against candidate skills downstream.
type roleSkillCategory struct {
	keyword string
	skills  []string
}

var roleSkillCategories = []roleSkillCategory{
	{"frontend", []string{"React", "Vue.js", "Angular", "TypeScript", "JavaScript", "HTML/CSS", "Next.js", "Tailwind CSS"}},
	{"backend", []string{"Python", "Node.js", "Java", "C#", "Go", "Django", "FastAPI", "Spring Boot", "Express.js"}},
	{"full stack", []string{"React", "Python", "Node.js", "TypeScript", "JavaScript", "Django", "Express.js"}},
	{"mobile", []string{"React Native", "Flutter", "Swift", "Kotlin"}},
	{"devops", []string{"Docker", "Kubernetes", "AWS", "Azure", "GCP", "Terraform", "GitHub Actions"}},
	{"data", []string{"Python", "SQL", "PostgreSQL", "Spark"}},
	{"ai", []string{"Python", "TensorFlow", "PyTorch", "Scikit-learn", "OpenAI API"}},
	{"ml", []string{"Python", "TensorFlow", "PyTorch", "Scikit-learn"}},
	{"qa", []string{"Selenium", "Cypress", "Jest", "Pytest"}},
	{"designer", []string{"Figma", "Sketch", "Adobe Creative Suite", "UI/UX Design"}},
	{"architect", []string{"System Design", "Kubernetes", "AWS"}},
}

// BuildRoleRequirement derives a RoleRequirement from an estimated team role
// and the recommended tech stack. Stack technologies relevant to the role's
// discipline carry full weight; the discipline's canonical skills are added
// at reduced weight so candidates with adjacent experience still register.
func BuildRoleRequirement(title, seniority string, rateCeiling float64, durationWeeks int, techStack []string) RoleRequirement {
	titleLower := strings.ToLower(title)

	var categorySkills []string
	for _, cat := range roleSkillCategories {
		if strings.Contains(titleLower, cat.keyword) {
			categorySkills = append(categorySkills, cat.skills...)
		}
	}

	seen := make(map[string]int) // lowercase name -> index into skills
	var skills []RequiredSkill

	add := func(name string, weight float64) {
		name = strings.TrimSpace(name)
		if name == "" {
			return
		}
		key := strings.ToLower(name)
		if idx, ok := seen[key]; ok {
			if weight > skills[idx].Weight {
				skills[idx].Weight = weight
			}
			return
		}
		seen[key] = len(skills)
		skills = append(skills, RequiredSkill{Name: name, Weight: weight})
	}

	for _, tech := range techStack {
		if len(categorySkills) == 0 {
			add(tech, techStackSkillWeight)
			continue
		}
		// Stack entries often carry versions ("React 18"); fold them onto
		// the canonical skill name so they match the talent pool exactly.
		if canonical, ok := relatedToCategory(tech, categorySkills); ok {
			add(canonical, techStackSkillWeight)
		}
	}
	for _, skill := range categorySkills {
		add(skill, categorySkillWeight)
	}

	return RoleRequirement{
		Role:          title,
		Seniority:     employees.ParseSeniority(seniority),
		Skills:        skills,
		RateCeiling:   rateCeiling,
		DurationWeeks: durationWeeks,
	}
}

// relatedToCategory looks up the canonical discipline skill a technology
// belongs to. The names match when one contains the other, which absorbs
// version suffixes and shorthand.
func relatedToCategory(tech string, categorySkills []string) (string, bool) {
	techLower := strings.ToLower(strings.TrimSpace(tech))
	if techLower == "" {
		return "", false
	}
	for _, skill := range categorySkills {
		skillLower := strings.ToLower(skill)
		if strings.Contains(techLower, skillLower) || strings.Contains(skillLower, techLower) {
			return skill, true
		}
	}
	return "", false
}

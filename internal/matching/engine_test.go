package matching

import (
	"testing"

	"feasibility-backend/internal/employees"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	engine, err := NewEngine(DefaultWeights())
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return engine
}

func seniorReactDev() employees.Employee {
	return employees.Employee{
		ID:           "EMP100",
		Name:         "Casey Ford",
		Title:        "Frontend Developer",
		Seniority:    employees.SenioritySenior,
		HourlyRate:   95,
		Availability: 80,
		Active:       true,
		Skills: []employees.Skill{
			{Name: "React", Proficiency: 5, YearsExperience: 5, IsPrimary: true},
		},
	}
}

func TestScoreCompositeComponents(t *testing.T) {
	engine := newTestEngine(t)
	role := RoleRequirement{
		Role:        "Frontend Developer",
		Seniority:   employees.SenioritySenior,
		Skills:      []RequiredSkill{{Name: "React", Weight: 1}},
		RateCeiling: 120,
	}

	score := engine.Score(role, seniorReactDev())

	if !almostEqual(score.Components.Skill, 100) {
		t.Fatalf("expected skill component 100, got %v", score.Components.Skill)
	}
	if !almostEqual(score.Components.Seniority, 100) {
		t.Fatalf("expected seniority component 100, got %v", score.Components.Seniority)
	}
	if !almostEqual(score.Components.Rate, 100) {
		t.Fatalf("expected rate component 100, got %v", score.Components.Rate)
	}
	if !almostEqual(score.Components.Availability, 80) {
		t.Fatalf("expected availability component 80, got %v", score.Components.Availability)
	}
	// 0.5*100 + 0.2*100 + 0.15*100 + 0.15*80
	if score.Score != 97.0 {
		t.Fatalf("expected composite 97.0, got %v", score.Score)
	}
	if len(score.MatchingSkills) != 1 || score.MatchingSkills[0].Name != "React" {
		t.Fatalf("expected React in matching skills, got %+v", score.MatchingSkills)
	}
}

func TestScoreRateOverCeiling(t *testing.T) {
	engine := newTestEngine(t)
	role := RoleRequirement{
		Role:        "Frontend Developer",
		Seniority:   employees.SenioritySenior,
		Skills:      []RequiredSkill{{Name: "React", Weight: 1}},
		RateCeiling: 80,
	}

	score := engine.Score(role, seniorReactDev())

	// 95 against an 80 ceiling is 18.75% over budget.
	if !almostEqual(score.Components.Rate, 81.25) {
		t.Fatalf("expected rate component 81.25, got %v", score.Components.Rate)
	}
	if score.Score != 94.2 {
		t.Fatalf("expected composite 94.2, got %v", score.Score)
	}
	if score.Score >= 97.0 {
		t.Fatalf("tighter ceiling must lower the composite")
	}
}

func TestScoreNoRateCeiling(t *testing.T) {
	engine := newTestEngine(t)
	score := engine.Score(RoleRequirement{Role: "Any"}, seniorReactDev())
	if !almostEqual(score.Components.Rate, 100) {
		t.Fatalf("expected rate component 100 without a ceiling, got %v", score.Components.Rate)
	}
}

func TestScoreVacuousSkillRequirements(t *testing.T) {
	engine := newTestEngine(t)
	role := RoleRequirement{Role: "Generalist", Seniority: employees.SenioritySenior}

	score := engine.Score(role, seniorReactDev())
	if !almostEqual(score.Components.Skill, 100) {
		t.Fatalf("expected vacuous skill component 100, got %v", score.Components.Skill)
	}
}

func TestScoreSeniorityDistancePenalty(t *testing.T) {
	engine := newTestEngine(t)
	junior := seniorReactDev()
	junior.Seniority = employees.SeniorityJunior

	role := RoleRequirement{
		Role:      "Frontend Developer",
		Seniority: employees.SenioritySenior,
	}
	score := engine.Score(role, junior)
	if !almostEqual(score.Components.Seniority, 50) {
		t.Fatalf("expected two-step penalty to score 50, got %v", score.Components.Seniority)
	}

	role.Seniority = employees.SeniorityUnknown
	score = engine.Score(role, junior)
	if !almostEqual(score.Components.Seniority, 100) {
		t.Fatalf("expected unknown target to score 100, got %v", score.Components.Seniority)
	}
}

func TestRankOrdering(t *testing.T) {
	engine := newTestEngine(t)
	role := RoleRequirement{
		Role:        "Frontend Developer",
		Seniority:   employees.SenioritySenior,
		Skills:      []RequiredSkill{{Name: "React", Weight: 1}},
		RateCeiling: 120,
	}

	cheap := seniorReactDev()
	cheap.ID, cheap.Name, cheap.HourlyRate = "EMP101", "Avery Quinn", 85

	sameRate := seniorReactDev()
	sameRate.ID, sameRate.Name = "EMP102", "Blair Novak"

	weaker := seniorReactDev()
	weaker.ID, weaker.Name = "EMP103", "Drew Ellis"
	weaker.Skills = []employees.Skill{{Name: "React", Proficiency: 3}}

	ranked := engine.Rank(role, []employees.Employee{seniorReactDev(), weaker, sameRate, cheap})

	got := make([]string, 0, len(ranked))
	for _, s := range ranked {
		got = append(got, s.EmployeeID)
	}
	// Equal scores order by rate ascending, then name ascending.
	want := []string{"EMP101", "EMP102", "EMP100", "EMP103"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, got)
		}
	}
}

func TestRankDeterministic(t *testing.T) {
	engine := newTestEngine(t)
	role := RoleRequirement{
		Role:   "Backend Developer",
		Skills: []RequiredSkill{{Name: "Go", Weight: 1}},
	}
	pool := []employees.Employee{
		{ID: "a", Name: "A", Skills: []employees.Skill{{Name: "Go", Proficiency: 4}}},
		{ID: "b", Name: "B", Skills: []employees.Skill{{Name: "Go", Proficiency: 5}}},
	}

	first := engine.Rank(role, pool)
	second := engine.Rank(role, pool)
	if len(first) != len(second) {
		t.Fatalf("rank length changed between runs")
	}
	for i := range first {
		if first[i].EmployeeID != second[i].EmployeeID || first[i].Score != second[i].Score {
			t.Fatalf("rank not deterministic at index %d", i)
		}
	}
}

func TestRankEmptyPool(t *testing.T) {
	engine := newTestEngine(t)
	ranked := engine.Rank(RoleRequirement{Role: "Any"}, nil)
	if len(ranked) != 0 {
		t.Fatalf("expected empty result for empty pool, got %d entries", len(ranked))
	}
}

func TestWeightsValidate(t *testing.T) {
	if err := (Weights{Skill: 0.5, Seniority: 0.5}).Validate(); err != nil {
		t.Fatalf("expected weights summing to 1 to validate: %v", err)
	}
	if err := (Weights{Skill: 0.9, Seniority: 0.2}).Validate(); err == nil {
		t.Fatalf("expected error for weights not summing to 1")
	}
	if err := (Weights{Skill: 1.5, Seniority: -0.5}).Validate(); err == nil {
		t.Fatalf("expected error for negative weight")
	}
}

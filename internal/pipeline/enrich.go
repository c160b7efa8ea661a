package pipeline

import (
	"encoding/json"
	"fmt"

	"feasibility-backend/internal/employees"
	"feasibility-backend/internal/matching"
)

// EnrichEstimation attaches the top candidate employees to every role in a
// validated estimation payload and returns the rewritten payload. Ranked
// candidates are filtered by pred before truncation; the zero Predicate
// admits everyone. An empty candidate pool yields empty recommendation lists
// rather than an error; the report is still useful without staffing
// suggestions.
func EnrichEstimation(estPayload, techPayload json.RawMessage, engine *matching.Engine, pool []employees.Employee, pred matching.Predicate, topN int) (json.RawMessage, error) {
	est, err := DecodeEstimation(estPayload)
	if err != nil {
		return nil, err
	}
	tech, err := DecodeTechnical(techPayload)
	if err != nil {
		return nil, err
	}
	stack := tech.SkillNames()

	for i := range est.TeamComposition {
		role := &est.TeamComposition[i]
		req := matching.BuildRoleRequirement(role.Role, role.Seniority, role.HourlyRate, role.DurationWeeks, stack)
		scores := matching.Filter(engine.Rank(req, pool), pred)
		role.RecommendedEmployees = matching.Top(scores, topN)
	}

	enriched, err := json.Marshal(est)
	if err != nil {
		return nil, fmt.Errorf("encode enriched estimation: %w", err)
	}
	return enriched, nil
}

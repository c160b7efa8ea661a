package pipeline

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// TechChoice is one category's recommendation in the tech stack. Models
// sometimes emit a bare string instead of the requested object, so
// UnmarshalJSON accepts both forms.
type TechChoice struct {
	Primary      string   `json:"primary"`
	Reasoning    string   `json:"reasoning,omitempty"`
	Alternatives []string `json:"alternatives,omitempty"`
}

func (c *TechChoice) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		c.Primary = name
		return nil
	}
	type alias TechChoice
	var obj alias
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	*c = TechChoice(obj)
	return nil
}

// Expected shape (extra fields are preserved in the stored payload):
// {
//   "recommended_tech_stack": {
//     "frontend":  { "primary": "string", "reasoning": "string", "alternatives": ["string"] },
//     "backend":   { ... },
//     "database":  { ... }
//   },
//   "architecture_overview": { "pattern": "string", "components": ["string"] },
//   "integration_requirements": { "third_party_apis": ["string"] }
// }
type TechnicalResult struct {
	RecommendedTechStack map[string]TechChoice `json:"recommended_tech_stack"`
}

// SkillNames returns the primary technology of every category, sorted for
// deterministic downstream matching.
func (r TechnicalResult) SkillNames() []string {
	names := make([]string, 0, len(r.RecommendedTechStack))
	for _, choice := range r.RecommendedTechStack {
		if name := strings.TrimSpace(choice.Primary); name != "" {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

const technicalPromptTemplate = `You are the technical analyst for a software project feasibility assessment.

Using the project description and the intake analysis below, recommend a
concrete technology stack and outline the system architecture. Name specific
technologies, not categories.

Respond with a single JSON object and nothing else:
{
  "recommended_tech_stack": {
    "frontend": { "primary": "string", "reasoning": "string", "alternatives": ["string"] },
    "backend": { "primary": "string", "reasoning": "string", "alternatives": ["string"] },
    "database": { "primary": "string", "reasoning": "string", "alternatives": ["string"] },
    "cloud_infrastructure": { "primary": "string", "reasoning": "string" }
  },
  "architecture_overview": {
    "pattern": "microservices|monolith|serverless|hybrid",
    "components": ["component and its responsibility"],
    "data_flow": "how data moves through the system"
  },
  "integration_requirements": {
    "third_party_apis": ["API and its purpose"]
  }
}
Include only the stack categories that apply to this project.

Project description:
%s
%s
Intake analysis:
%s`

// TechnicalStage turns the intake analysis into concrete technology
// recommendations. Requires the intake payload.
type TechnicalStage struct{}

func (TechnicalStage) Name() string { return StageTechnical }

func (TechnicalStage) BuildPrompt(req Request, prior Context) (string, error) {
	if len(prior.Intake) == 0 {
		return "", fmt.Errorf("technical stage requires intake payload")
	}
	return fmt.Sprintf(technicalPromptTemplate, req.Description, requestContextBlock(req), prior.Intake), nil
}

func (TechnicalStage) Parse(raw string) (json.RawMessage, error) {
	payload := stripCodeFence(raw)
	var result TechnicalResult
	if err := json.Unmarshal([]byte(payload), &result); err != nil {
		return nil, invalid(StageTechnical, "", "response is not valid JSON: "+err.Error())
	}
	if len(result.RecommendedTechStack) == 0 {
		return nil, invalid(StageTechnical, "recommended_tech_stack", "must be a non-empty object")
	}
	for category, choice := range result.RecommendedTechStack {
		if strings.TrimSpace(choice.Primary) == "" {
			return nil, invalid(StageTechnical, "recommended_tech_stack."+category+".primary", "must be a non-empty string")
		}
	}
	return json.RawMessage(payload), nil
}

// DecodeTechnical re-reads a stored technical payload. Used by the
// estimation enrichment step to derive role skill requirements.
func DecodeTechnical(payload json.RawMessage) (TechnicalResult, error) {
	var result TechnicalResult
	if err := json.Unmarshal(payload, &result); err != nil {
		return TechnicalResult{}, fmt.Errorf("decode technical payload: %w", err)
	}
	return result, nil
}

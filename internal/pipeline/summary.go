package pipeline

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Expected shape (extra fields are preserved in the stored payload):
// {
//   "executive_summary": "string",
//   "key_recommendations": ["string"],
//   "major_risks": [ { "risk": "string", "impact": "low|medium|high", "mitigation": "string" } ],
//   "dependencies": ["string"],
//   "next_steps": ["string"]
// }
type SummaryResult struct {
	ExecutiveSummary string `json:"executive_summary"`
}

const summaryPromptTemplate = `You are the reporting analyst for a software project feasibility assessment.

Condense the full analysis below into an executive report for a non-technical
decision maker. Base every statement on the analysis; do not introduce new
findings.

Respond with a single JSON object and nothing else:
{
  "executive_summary": "4-6 sentence plain-language summary of feasibility, cost and timeline",
  "key_recommendations": ["string"],
  "major_risks": [
    { "risk": "string", "impact": "low|medium|high", "mitigation": "string" }
  ],
  "dependencies": ["string"],
  "next_steps": ["string"]
}

Project description:
%s
%s
Intake analysis:
%s

Technical recommendations:
%s

Estimation:
%s`

// SummaryStage produces the executive report. Requires all prior payloads.
type SummaryStage struct{}

func (SummaryStage) Name() string { return StageSummary }

func (SummaryStage) BuildPrompt(req Request, prior Context) (string, error) {
	if len(prior.Intake) == 0 || len(prior.Technical) == 0 || len(prior.Estimation) == 0 {
		return "", fmt.Errorf("summary stage requires intake, technical and estimation payloads")
	}
	return fmt.Sprintf(summaryPromptTemplate,
		req.Description, requestContextBlock(req), prior.Intake, prior.Technical, prior.Estimation), nil
}

func (SummaryStage) Parse(raw string) (json.RawMessage, error) {
	payload := stripCodeFence(raw)
	var result SummaryResult
	if err := json.Unmarshal([]byte(payload), &result); err != nil {
		return nil, invalid(StageSummary, "", "response is not valid JSON: "+err.Error())
	}
	if strings.TrimSpace(result.ExecutiveSummary) == "" {
		return nil, invalid(StageSummary, "executive_summary", "must be a non-empty string")
	}
	return json.RawMessage(payload), nil
}

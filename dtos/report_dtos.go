package dtos

// IntentImpactDTO is one row of the unified controls evidence report: a
// single intent and every framework control it satisfies.
type IntentImpactDTO struct {
	IntentID    string              `json:"intentId"`
	Description string              `json:"description"`
	Category    string              `json:"category"`
	Status      string              `json:"status"`
	Impact      map[string][]string `json:"impact"`
	ImpactCount int                 `json:"impactCount"`
}

type UnifiedReportSummaryDTO struct {
	TotalIntents     int      `json:"totalIntents"`
	CompletedIntents int      `json:"completedIntents"`
	StandardsCovered []string `json:"standardsCovered"`
}

type UnifiedControlsEvidenceReportDTO struct {
	Intents []IntentImpactDTO       `json:"intents"`
	Summary UnifiedReportSummaryDTO `json:"summary"`
}

type DomainStatsDTO struct {
	Total int `json:"total"`
	Pass  int `json:"pass"`
	Fail  int `json:"fail"`
}

// DomainSummaryDTO aggregates compliance results per canonical process
// domain. Status is PASS exactly when every control of the domain passes.
type DomainSummaryDTO struct {
	Domain     string         `json:"domain"`
	Stats      DomainStatsDTO `json:"stats"`
	Percentage float64        `json:"percentage"`
	Status     string         `json:"status"`
}

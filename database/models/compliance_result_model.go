package models

import (
	"time"

	"github.com/google/uuid"
)

type ComplianceStatus string

const (
	ComplianceStatusPass    ComplianceStatus = "PASS"
	ComplianceStatusFail    ComplianceStatus = "FAIL"
	ComplianceStatusUnknown ComplianceStatus = "UNKNOWN"
)

// IntentSatisfiedMarker is written into the evidence metadata of results
// produced by the compliance evaluator. It doubles as the attribution key
// when an intent regresses and its results have to be demoted.
const IntentSatisfiedMarker = "Auto-Satisfied via Universal Intent"

// ComplianceResult is the evaluated status of a single control for a single
// tenant. At most one row exists per (tenant, control); every write is an
// upsert on that pair. EvidenceMetadata is stored AES-GCM encrypted.
type ComplianceResult struct {
	Model
	TenantID         uuid.UUID        `json:"tenantId" gorm:"type:uuid;not null;uniqueIndex:idx_result_tenant_control"`
	ControlID        uuid.UUID        `json:"controlId" gorm:"type:uuid;not null;uniqueIndex:idx_result_tenant_control"`
	Control          Control          `json:"control" gorm:"foreignKey:ControlID;references:ID;constraint:OnDelete:CASCADE;"`
	Status           ComplianceStatus `json:"status" gorm:"type:text;default:'UNKNOWN';not null"`
	EvidenceMetadata string           `json:"-" gorm:"type:text"`
	LastScannedAt    *time.Time       `json:"lastScannedAt"`
}

func (m ComplianceResult) TableName() string {
	return "compliance_results"
}

package models

import (
	"strings"

	"github.com/google/uuid"
)

type ControlStatus string

const (
	ControlStatusNotStarted  ControlStatus = "not_started"
	ControlStatusInProgress  ControlStatus = "in_progress"
	ControlStatusImplemented ControlStatus = "implemented"
)

type ControlClassification string

const (
	ControlClassificationManual    ControlClassification = "manual"
	ControlClassificationAutomated ControlClassification = "automated"
	ControlClassificationHybrid    ControlClassification = "hybrid"
)

// Control is a per-tenant clone of a catalog control. ControlID is the stable
// textual identifier inside the framework ("4.1", "A.5.15", "GV.OC-01"). When
// the same identifier has to exist for multiple tenants, the stored value may
// carry a "#<tenant prefix>" suffix. That encoding is internal: everything
// leaving the public API goes through PublicControlID.
type Control struct {
	Model
	ControlID         string                `json:"controlId" gorm:"type:text;not null;uniqueIndex:idx_control_tenant"`
	TenantID          uuid.UUID             `json:"tenantId" gorm:"type:uuid;not null;uniqueIndex:idx_control_tenant;index"`
	FrameworkID       uuid.UUID             `json:"frameworkId" gorm:"type:uuid;not null;index"`
	Framework         Framework             `json:"framework" gorm:"foreignKey:FrameworkID;references:ID;constraint:OnDelete:CASCADE;"`
	Title             string                `json:"title" gorm:"type:text;not null"`
	Description       string                `json:"description" gorm:"type:text"`
	Status            ControlStatus         `json:"status" gorm:"type:text;default:'not_started';not null"`
	Category          string                `json:"category" gorm:"type:text"`
	Domain            string                `json:"domain" gorm:"type:text"`
	IsApplicable      bool                  `json:"isApplicable" gorm:"default:true;not null"`
	JustificationText *string               `json:"justificationText" gorm:"type:text"`
	Classification    ControlClassification `json:"classification" gorm:"type:text;default:'manual';not null"`
	AutomationStatus  string                `json:"automationStatus" gorm:"type:text"`
	Evidence          []Evidence            `json:"evidence" gorm:"foreignKey:ControlID;constraint:OnDelete:CASCADE;"`
}

func (m Control) TableName() string {
	return "controls"
}

// PublicControlID strips the internal tenant-scope suffix. The textual form
// before the "#" is the compatibility-sensitive public key used in
// crosswalks, imports and reports.
func (m Control) PublicControlID() string {
	return StripTenantSuffix(m.ControlID)
}

// MatchesReference reports whether this control resolves the given crosswalk
// control reference, modulo the tenant-suffix convention.
func (m Control) MatchesReference(reference string) bool {
	return m.PublicControlID() == reference
}

func StripTenantSuffix(controlID string) string {
	if idx := strings.Index(controlID, "#"); idx >= 0 {
		return controlID[:idx]
	}
	return controlID
}

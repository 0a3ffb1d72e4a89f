package models

import (
	"github.com/google/uuid"

	databasetypes "github.com/l3montree-dev/crossguard/database/types"
)

const (
	// ValidationSourceManualUpload marks evidence a user attached directly.
	ValidationSourceManualUpload = "manual_upload"
	// ValidationSourceAutomatedGravity marks clones created by the evidence
	// gravity fan-out. Clones are never treated as a propagation source again.
	ValidationSourceAutomatedGravity = "automated_gravity"
)

// Evidence is an artifact attached to a control. A control owns its evidence;
// deleting the control removes it. MasterIntentID is the gravity key: when
// set, the artifact satisfies every control crosswalked to that intent.
type Evidence struct {
	Model
	Title            string              `json:"title" gorm:"type:text;not null"`
	Description      string              `json:"description" gorm:"type:text"`
	FilePath         string              `json:"filePath" gorm:"type:text;not null"`
	FileSize         int64               `json:"fileSize"`
	FileType         string              `json:"fileType" gorm:"type:text"`
	ControlID        uuid.UUID           `json:"controlId" gorm:"type:uuid;not null;index"`
	TenantID         uuid.UUID           `json:"tenantId" gorm:"type:uuid;not null;index"`
	MasterIntentID   *string             `json:"masterIntentId" gorm:"type:text;index"`
	ValidationSource string              `json:"validationSource" gorm:"type:text;default:'manual_upload';not null"`
	Status           string              `json:"status" gorm:"type:text;default:'valid';not null"`
	Tags             databasetypes.JSONB `json:"tags" gorm:"type:jsonb"`
}

func (m Evidence) TableName() string {
	return "evidence"
}

// IsGravityClone reports whether this row was produced by the fan-out rather
// than uploaded by a user.
func (m Evidence) IsGravityClone() bool {
	return m.ValidationSource == ValidationSourceAutomatedGravity
}

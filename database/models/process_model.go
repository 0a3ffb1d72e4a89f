package models

import "github.com/google/uuid"

// CanonicalProcess is an entry of the internal business-process taxonomy.
// Controls from any framework are grouped under these processes. A process may
// be scoped to a single framework via FrameworkCode; a nil code means the
// process is global.
type CanonicalProcess struct {
	Model
	Name          string       `json:"name" gorm:"type:text;not null;uniqueIndex:idx_process_name_framework"`
	FrameworkCode *string      `json:"frameworkCode" gorm:"type:text;uniqueIndex:idx_process_name_framework"`
	Description   string       `json:"description" gorm:"type:text"`
	SubProcesses  []SubProcess `json:"subProcesses" gorm:"foreignKey:ProcessID;constraint:OnDelete:CASCADE;"`
}

func (m CanonicalProcess) TableName() string {
	return "canonical_processes"
}

// SubProcess is a child of a CanonicalProcess carrying explicit links to
// controls. A subprocess cannot outlive its parent (delete cascades).
type SubProcess struct {
	Model
	Name        string    `json:"name" gorm:"type:text;not null"`
	Description string    `json:"description" gorm:"type:text"`
	ProcessID   uuid.UUID `json:"processId" gorm:"type:uuid;not null;index"`
	Controls    []Control `json:"controls" gorm:"many2many:sub_process_controls;"`
}

func (m SubProcess) TableName() string {
	return "sub_processes"
}

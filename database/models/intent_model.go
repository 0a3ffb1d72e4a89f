package models

import "time"

type IntentStatus string

const (
	IntentStatusPending    IntentStatus = "pending"
	IntentStatusInProgress IntentStatus = "in_progress"
	IntentStatusCompleted  IntentStatus = "completed"
)

// UniversalIntent represents a single underlying requirement exactly once,
// independent of any framework. Its Category equals a CanonicalProcess name.
type UniversalIntent struct {
	Model
	IntentID    string       `json:"intentId" gorm:"type:text;unique;not null;index"`
	Description string       `json:"description" gorm:"type:text"`
	Category    string       `json:"category" gorm:"type:text;not null;index"`
	Status      IntentStatus `json:"status" gorm:"type:text;default:'pending';not null"`
}

func (m UniversalIntent) TableName() string {
	return "universal_intents"
}

// IntentStatusEvent is the audit trail of intent status transitions. The
// normal lifecycle advances pending -> in_progress -> completed; a regression
// is recorded like any other transition, never applied silently.
type IntentStatusEvent struct {
	Model
	IntentID   string       `json:"intentId" gorm:"type:text;not null;index"`
	FromStatus IntentStatus `json:"fromStatus" gorm:"type:text;not null"`
	ToStatus   IntentStatus `json:"toStatus" gorm:"type:text;not null"`
	Actor      string       `json:"actor" gorm:"type:text"`
	OccurredAt time.Time    `json:"occurredAt" gorm:"not null"`
}

func (m IntentStatusEvent) TableName() string {
	return "intent_status_events"
}

// IsRegression reports whether the transition moves the intent backwards in
// its lifecycle.
func (m IntentStatusEvent) IsRegression() bool {
	return statusRank(m.ToStatus) < statusRank(m.FromStatus)
}

func statusRank(s IntentStatus) int {
	switch s {
	case IntentStatusPending:
		return 0
	case IntentStatusInProgress:
		return 1
	case IntentStatusCompleted:
		return 2
	}
	return -1
}

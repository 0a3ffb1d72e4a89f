package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPublicControlID(t *testing.T) {
	assert.Equal(t, "A.5.15", Control{ControlID: "A.5.15"}.PublicControlID())
	assert.Equal(t, "A.5.15", Control{ControlID: "A.5.15#acme"}.PublicControlID())
	assert.Equal(t, "GV.OC-01", Control{ControlID: "GV.OC-01#t1"}.PublicControlID())
}

func TestMatchesReference(t *testing.T) {
	assert.True(t, Control{ControlID: "A.5.15"}.MatchesReference("A.5.15"))
	assert.True(t, Control{ControlID: "A.5.15#acme"}.MatchesReference("A.5.15"))
	assert.False(t, Control{ControlID: "A.5.150"}.MatchesReference("A.5.15"))
	assert.False(t, Control{ControlID: "A.5.15#acme"}.MatchesReference("A.5.15#acme"))
}

func TestIntentStatusEventIsRegression(t *testing.T) {
	assert.True(t, IntentStatusEvent{FromStatus: IntentStatusCompleted, ToStatus: IntentStatusPending}.IsRegression())
	assert.True(t, IntentStatusEvent{FromStatus: IntentStatusCompleted, ToStatus: IntentStatusInProgress}.IsRegression())
	assert.True(t, IntentStatusEvent{FromStatus: IntentStatusInProgress, ToStatus: IntentStatusPending}.IsRegression())
	assert.False(t, IntentStatusEvent{FromStatus: IntentStatusPending, ToStatus: IntentStatusInProgress}.IsRegression())
	assert.False(t, IntentStatusEvent{FromStatus: IntentStatusInProgress, ToStatus: IntentStatusCompleted}.IsRegression())
}

func TestEvidenceIsGravityClone(t *testing.T) {
	assert.True(t, Evidence{ValidationSource: ValidationSourceAutomatedGravity}.IsGravityClone())
	assert.False(t, Evidence{ValidationSource: ValidationSourceManualUpload}.IsGravityClone())
}

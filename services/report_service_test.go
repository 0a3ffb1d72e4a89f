package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/l3montree-dev/crossguard/database/models"
)

func TestUnifiedControlsEvidence(t *testing.T) {
	tenant := models.Tenant{Model: models.Model{ID: uuid.New()}, Slug: "acme", InternalTenantID: uuid.New(), IsActive: true}

	intentRepo := &fakeIntentRepository{
		intents: []models.UniversalIntent{
			{IntentID: "INT-002", Category: "Operations", Status: models.IntentStatusPending},
			{IntentID: "INT-001", Category: "Access Control (IAM)", Status: models.IntentStatusCompleted},
		},
	}
	crosswalkRepo := &fakeCrosswalkRepository{
		rows: []models.IntentFrameworkCrosswalk{
			{IntentID: "INT-001", FrameworkCode: "iso27001", ControlReference: "A.8.12"},
			{IntentID: "INT-001", FrameworkCode: "iso27001", ControlReference: "A.5.15"},
			{IntentID: "INT-001", FrameworkCode: "soc2", ControlReference: "CC6.1"},
		},
	}
	service := NewReportService(intentRepo, crosswalkRepo, &fakeComplianceResultRepository{})

	report, err := service.UnifiedControlsEvidence(tenant)
	require.NoError(t, err)

	require.Len(t, report.Intents, 2)
	// sorted by intent id
	assert.Equal(t, "INT-001", report.Intents[0].IntentID)
	assert.Equal(t, "INT-002", report.Intents[1].IntentID)

	first := report.Intents[0]
	assert.Equal(t, 3, first.ImpactCount)
	// references inside a framework come in natural control order
	assert.Equal(t, []string{"A.5.15", "A.8.12"}, first.Impact["iso27001"])
	assert.Equal(t, []string{"CC6.1"}, first.Impact["soc2"])

	assert.Equal(t, 0, report.Intents[1].ImpactCount)

	assert.Equal(t, 2, report.Summary.TotalIntents)
	assert.Equal(t, 1, report.Summary.CompletedIntents)
	assert.Equal(t, []string{"iso27001", "soc2"}, report.Summary.StandardsCovered)
}

func TestComplianceSummary(t *testing.T) {
	tenant := models.Tenant{Model: models.Model{ID: uuid.New()}, Slug: "acme", InternalTenantID: uuid.New(), IsActive: true}
	frameworkID := uuid.New()
	otherFrameworkID := uuid.New()

	result := func(domain string, fwID uuid.UUID, status models.ComplianceStatus) models.ComplianceResult {
		return models.ComplianceResult{
			Model:     models.Model{ID: uuid.New()},
			TenantID:  tenant.InternalTenantID,
			ControlID: uuid.New(),
			Control:   models.Control{Domain: domain, FrameworkID: fwID},
			Status:    status,
		}
	}

	resultRepo := &fakeComplianceResultRepository{
		rows: []models.ComplianceResult{
			result("Access Control (IAM)", frameworkID, models.ComplianceStatusPass),
			result("Access Control (IAM)", frameworkID, models.ComplianceStatusPass),
			result("Operations", frameworkID, models.ComplianceStatusPass),
			result("Operations", frameworkID, models.ComplianceStatusFail),
			result("Operations", frameworkID, models.ComplianceStatusUnknown),
			result("", otherFrameworkID, models.ComplianceStatusFail),
		},
	}
	service := NewReportService(&fakeIntentRepository{}, &fakeCrosswalkRepository{}, resultRepo)

	t.Run("groups by domain with one-decimal percentages", func(t *testing.T) {
		summaries, err := service.ComplianceSummary(tenant, nil)
		require.NoError(t, err)

		require.Len(t, summaries, 3)
		// sorted by domain, empty domain binned under General
		assert.Equal(t, "Access Control (IAM)", summaries[0].Domain)
		assert.Equal(t, "General", summaries[1].Domain)
		assert.Equal(t, "Operations", summaries[2].Domain)

		access := summaries[0]
		assert.Equal(t, 2, access.Stats.Total)
		assert.Equal(t, 2, access.Stats.Pass)
		assert.Equal(t, 100.0, access.Percentage)
		assert.Equal(t, "PASS", access.Status)

		ops := summaries[2]
		assert.Equal(t, 3, ops.Stats.Total)
		assert.Equal(t, 1, ops.Stats.Pass)
		assert.Equal(t, 1, ops.Stats.Fail)
		assert.Equal(t, 33.3, ops.Percentage)
		assert.Equal(t, "FAIL", ops.Status)
	})

	t.Run("framework filter narrows the result", func(t *testing.T) {
		summaries, err := service.ComplianceSummary(tenant, &otherFrameworkID)
		require.NoError(t, err)

		require.Len(t, summaries, 1)
		assert.Equal(t, "General", summaries[0].Domain)
		assert.Equal(t, 1, summaries[0].Stats.Total)
	})
}

package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/l3montree-dev/crossguard/database/models"
	"github.com/l3montree-dev/crossguard/shared"
)

type evaluatorFixture struct {
	service       *EvaluatorService
	intentRepo    *fakeIntentRepository
	crosswalkRepo *fakeCrosswalkRepository
	controlRepo   *fakeControlRepository
	tenantRepo    *fakeTenantRepository
	edgeRepo      *fakeTenantFrameworkRepository
	resultRepo    *fakeComplianceResultRepository
	queue         *fakeIntentImpactQueue

	framework      models.Framework
	tenantEntitled models.Tenant
	tenantDisabled models.Tenant
	controlOfA     models.Control
	controlOfB     models.Control
}

// two tenants, both holding a clone of iso27001 A.5.15, but only the first
// one has an active entitlement edge.
func newEvaluatorFixture(t *testing.T, withQueue bool) *evaluatorFixture {
	t.Helper()

	framework := models.Framework{Model: models.Model{ID: uuid.New()}, Code: "iso27001", Name: "ISO 27001"}

	tenantA := models.Tenant{Model: models.Model{ID: uuid.New()}, Slug: "acme", InternalTenantID: uuid.New(), IsActive: true}
	tenantB := models.Tenant{Model: models.Model{ID: uuid.New()}, Slug: "globex", InternalTenantID: uuid.New(), IsActive: true}

	controlOfA := models.Control{Model: models.Model{ID: uuid.New()}, ControlID: "A.5.15", TenantID: tenantA.InternalTenantID, FrameworkID: framework.ID, Domain: "Access Control (IAM)"}
	controlOfB := models.Control{Model: models.Model{ID: uuid.New()}, ControlID: "A.5.15#glo", TenantID: tenantB.InternalTenantID, FrameworkID: framework.ID, Domain: "Access Control (IAM)"}

	intentRepo := &fakeIntentRepository{
		intents: []models.UniversalIntent{
			{Model: models.Model{ID: uuid.New()}, IntentID: "INT-001", Category: "Access Control (IAM)", Status: models.IntentStatusInProgress},
		},
	}
	crosswalkRepo := &fakeCrosswalkRepository{
		rows: []models.IntentFrameworkCrosswalk{
			{IntentID: "INT-001", FrameworkCode: "iso27001", ControlReference: "A.5.15"},
		},
	}
	controlRepo := &fakeControlRepository{controls: []models.Control{controlOfA, controlOfB}}
	frameworkRepo := &fakeFrameworkRepository{frameworks: []models.Framework{framework}}
	tenantRepo := &fakeTenantRepository{tenants: []models.Tenant{tenantA, tenantB}}
	edgeRepo := &fakeTenantFrameworkRepository{
		edges: []models.TenantFramework{
			{Model: models.Model{ID: uuid.New()}, TenantID: tenantA.InternalTenantID, FrameworkID: framework.ID, Framework: framework, IsActive: true},
			{Model: models.Model{ID: uuid.New()}, TenantID: tenantB.InternalTenantID, FrameworkID: framework.ID, Framework: framework, IsActive: false},
		},
	}
	resultRepo := &fakeComplianceResultRepository{}

	var queue *fakeIntentImpactQueue
	var queueIface shared.IntentImpactQueue
	if withQueue {
		queue = &fakeIntentImpactQueue{}
		queueIface = queue
	}

	return &evaluatorFixture{
		service:        NewEvaluatorService(intentRepo, crosswalkRepo, controlRepo, frameworkRepo, tenantRepo, edgeRepo, resultRepo, queueIface),
		intentRepo:     intentRepo,
		crosswalkRepo:  crosswalkRepo,
		controlRepo:    controlRepo,
		tenantRepo:     tenantRepo,
		edgeRepo:       edgeRepo,
		resultRepo:     resultRepo,
		queue:          queue,
		framework:      framework,
		tenantEntitled: tenantA,
		tenantDisabled: tenantB,
		controlOfA:     controlOfA,
		controlOfB:     controlOfB,
	}
}

func TestEvaluateIntent(t *testing.T) {
	t.Run("records the transition as a status event", func(t *testing.T) {
		f := newEvaluatorFixture(t, true)

		intent, err := f.service.EvaluateIntent("INT-001", models.IntentStatusCompleted, "user-1")

		require.NoError(t, err)
		assert.Equal(t, models.IntentStatusCompleted, intent.Status)
		require.Len(t, f.intentRepo.events, 1)
		assert.Equal(t, models.IntentStatusInProgress, f.intentRepo.events[0].FromStatus)
		assert.Equal(t, models.IntentStatusCompleted, f.intentRepo.events[0].ToStatus)
		assert.Equal(t, "user-1", f.intentRepo.events[0].Actor)
	})

	t.Run("same status is a no-op", func(t *testing.T) {
		f := newEvaluatorFixture(t, true)

		_, err := f.service.EvaluateIntent("INT-001", models.IntentStatusInProgress, "user-1")

		require.NoError(t, err)
		assert.Empty(t, f.intentRepo.events)
		assert.Empty(t, f.queue.enqueued)
	})

	t.Run("unknown intent yields not found", func(t *testing.T) {
		f := newEvaluatorFixture(t, true)

		_, err := f.service.EvaluateIntent("INT-404", models.IntentStatusCompleted, "user-1")

		assert.True(t, shared.IsKind(err, shared.KindNotFound))
	})

	t.Run("fresh completion goes through the queue", func(t *testing.T) {
		f := newEvaluatorFixture(t, true)

		_, err := f.service.EvaluateIntent("INT-001", models.IntentStatusCompleted, "user-1")

		require.NoError(t, err)
		assert.Equal(t, []string{"INT-001"}, f.queue.enqueued)
		// nothing calculated inline
		assert.Empty(t, f.resultRepo.rows)
	})

	t.Run("fresh completion runs inline without a queue", func(t *testing.T) {
		f := newEvaluatorFixture(t, false)

		_, err := f.service.EvaluateIntent("INT-001", models.IntentStatusCompleted, "user-1")

		require.NoError(t, err)
		require.Len(t, f.resultRepo.rows, 1)
		assert.Equal(t, models.ComplianceStatusPass, f.resultRepo.rows[0].Status)
	})
}

func TestCalculateIntentImpact(t *testing.T) {
	t.Run("upserts PASS only for tenants with an active entitlement", func(t *testing.T) {
		f := newEvaluatorFixture(t, false)

		err := f.service.CalculateIntentImpact("INT-001")

		require.NoError(t, err)
		require.Len(t, f.resultRepo.rows, 1)
		result := f.resultRepo.rows[0]
		assert.Equal(t, f.tenantEntitled.InternalTenantID, result.TenantID)
		assert.Equal(t, f.controlOfA.ID, result.ControlID)
		assert.Equal(t, models.ComplianceStatusPass, result.Status)
		assert.Equal(t, models.IntentSatisfiedMarker, result.EvidenceMetadata)
		assert.NotNil(t, result.LastScannedAt)
	})

	t.Run("resolves suffixed control ids once the entitlement is active", func(t *testing.T) {
		f := newEvaluatorFixture(t, false)
		// activate the second tenant's edge
		f.edgeRepo.edges[1].IsActive = true

		err := f.service.CalculateIntentImpact("INT-001")

		require.NoError(t, err)
		require.Len(t, f.resultRepo.rows, 2)

		var forB *models.ComplianceResult
		for i := range f.resultRepo.rows {
			if f.resultRepo.rows[i].TenantID == f.tenantDisabled.InternalTenantID {
				forB = &f.resultRepo.rows[i]
			}
		}
		require.NotNil(t, forB)
		assert.Equal(t, f.controlOfB.ID, forB.ControlID)
	})

	t.Run("replaying produces no extra rows", func(t *testing.T) {
		f := newEvaluatorFixture(t, false)

		require.NoError(t, f.service.CalculateIntentImpact("INT-001"))
		require.NoError(t, f.service.CalculateIntentImpact("INT-001"))

		assert.Len(t, f.resultRepo.rows, 1)
	})

	t.Run("an intent without crosswalks never invents targets", func(t *testing.T) {
		f := newEvaluatorFixture(t, false)
		f.intentRepo.intents = append(f.intentRepo.intents, models.UniversalIntent{IntentID: "INT-002", Category: "Operations"})

		err := f.service.CalculateIntentImpact("INT-002")

		require.NoError(t, err)
		assert.Empty(t, f.resultRepo.rows)
	})
}

func TestIntentRegressionDemotion(t *testing.T) {
	t.Run("demotes intent-attributed PASS results to UNKNOWN", func(t *testing.T) {
		f := newEvaluatorFixture(t, false)

		_, err := f.service.EvaluateIntent("INT-001", models.IntentStatusCompleted, "user-1")
		require.NoError(t, err)
		require.Len(t, f.resultRepo.rows, 1)
		require.Equal(t, models.ComplianceStatusPass, f.resultRepo.rows[0].Status)

		_, err = f.service.EvaluateIntent("INT-001", models.IntentStatusPending, "user-1")
		require.NoError(t, err)

		require.Len(t, f.resultRepo.rows, 1)
		assert.Equal(t, models.ComplianceStatusUnknown, f.resultRepo.rows[0].Status)
		assert.Contains(t, f.resultRepo.rows[0].EvidenceMetadata, "INT-001")

		// both transitions are in the audit trail
		require.Len(t, f.intentRepo.events, 2)
		assert.True(t, f.intentRepo.events[1].IsRegression())
	})

	t.Run("leaves manually earned PASS results alone", func(t *testing.T) {
		f := newEvaluatorFixture(t, false)

		_, err := f.service.EvaluateIntent("INT-001", models.IntentStatusCompleted, "user-1")
		require.NoError(t, err)

		// a human overrode the metadata after an audit
		f.resultRepo.rows[0].EvidenceMetadata = "Verified manually by auditor"

		_, err = f.service.EvaluateIntent("INT-001", models.IntentStatusInProgress, "user-1")
		require.NoError(t, err)

		assert.Equal(t, models.ComplianceStatusPass, f.resultRepo.rows[0].Status)
	})
}

package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/l3montree-dev/crossguard/database/models"
	"github.com/l3montree-dev/crossguard/shared"
)

type gravityFixture struct {
	service       *GravityService
	evidenceRepo  *fakeEvidenceRepository
	intentRepo    *fakeIntentRepository
	crosswalkRepo *fakeCrosswalkRepository
	controlRepo   *fakeControlRepository

	tenant    models.Tenant
	framework models.Framework
	controlA  models.Control
	controlB  models.Control
	controlC  models.Control
}

func newGravityFixture(t *testing.T) *gravityFixture {
	t.Helper()

	framework := models.Framework{
		Model: models.Model{ID: uuid.New()},
		Code:  "iso27001",
		Name:  "ISO 27001",
	}
	tenant := models.Tenant{
		Model:            models.Model{ID: uuid.New()},
		Slug:             "acme",
		InternalTenantID: uuid.New(),
		IsActive:         true,
	}

	controlA := models.Control{Model: models.Model{ID: uuid.New()}, ControlID: "A.5.15", TenantID: tenant.InternalTenantID, FrameworkID: framework.ID, Title: "Access control"}
	controlB := models.Control{Model: models.Model{ID: uuid.New()}, ControlID: "A.8.12", TenantID: tenant.InternalTenantID, FrameworkID: framework.ID, Title: "Data leakage prevention"}
	controlC := models.Control{Model: models.Model{ID: uuid.New()}, ControlID: "A.5.18", TenantID: tenant.InternalTenantID, FrameworkID: framework.ID, Title: "Access rights"}

	evidenceRepo := &fakeEvidenceRepository{}
	intentRepo := &fakeIntentRepository{
		intents: []models.UniversalIntent{
			{Model: models.Model{ID: uuid.New()}, IntentID: "INT-001", Category: "Access Control (IAM)", Status: models.IntentStatusInProgress},
		},
	}
	crosswalkRepo := &fakeCrosswalkRepository{
		rows: []models.IntentFrameworkCrosswalk{
			{IntentID: "INT-001", FrameworkCode: "iso27001", ControlReference: "A.5.15"},
			{IntentID: "INT-001", FrameworkCode: "iso27001", ControlReference: "A.8.12"},
			{IntentID: "INT-001", FrameworkCode: "iso27001", ControlReference: "A.5.18"},
		},
	}
	controlRepo := &fakeControlRepository{controls: []models.Control{controlA, controlB, controlC}}
	frameworkRepo := &fakeFrameworkRepository{frameworks: []models.Framework{framework}}

	return &gravityFixture{
		service:       NewGravityService(evidenceRepo, intentRepo, crosswalkRepo, controlRepo, frameworkRepo),
		evidenceRepo:  evidenceRepo,
		intentRepo:    intentRepo,
		crosswalkRepo: crosswalkRepo,
		controlRepo:   controlRepo,
		tenant:        tenant,
		framework:     framework,
		controlA:      controlA,
		controlB:      controlB,
		controlC:      controlC,
	}
}

func (f *gravityFixture) uploadEvidence(t *testing.T, controlID uuid.UUID, intentID *string) models.Evidence {
	t.Helper()
	evidence := models.Evidence{
		Title:            "access-policy.pdf",
		FilePath:         "/evidence/access-policy.pdf",
		ControlID:        controlID,
		TenantID:         f.tenant.InternalTenantID,
		MasterIntentID:   intentID,
		ValidationSource: models.ValidationSourceManualUpload,
	}
	require.NoError(t, f.evidenceRepo.Create(nil, &evidence))
	return evidence
}

func TestGravityPropagate(t *testing.T) {
	t.Run("fans out to every crosswalked control except the source", func(t *testing.T) {
		f := newGravityFixture(t)
		intentID := "INT-001"
		evidence := f.uploadEvidence(t, f.controlA.ID, &intentID)

		created, err := f.service.Propagate(evidence.ID)

		require.NoError(t, err)
		assert.Equal(t, 2, created)

		clonesB, _ := f.evidenceRepo.FindByControl(f.controlB.ID)
		require.Len(t, clonesB, 1)
		assert.Equal(t, models.ValidationSourceAutomatedGravity, clonesB[0].ValidationSource)
		assert.Equal(t, evidence.Title, clonesB[0].Title)
		assert.Equal(t, evidence.FilePath, clonesB[0].FilePath)

		// the source control carries only the original upload
		sourceRows, _ := f.evidenceRepo.FindByControl(f.controlA.ID)
		require.Len(t, sourceRows, 1)
		assert.Equal(t, models.ValidationSourceManualUpload, sourceRows[0].ValidationSource)
	})

	t.Run("is idempotent", func(t *testing.T) {
		f := newGravityFixture(t)
		intentID := "INT-001"
		evidence := f.uploadEvidence(t, f.controlA.ID, &intentID)

		created, err := f.service.Propagate(evidence.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, created)

		created, err = f.service.Propagate(evidence.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, created)

		assert.Len(t, f.evidenceRepo.rows, 3)
	})

	t.Run("same title under a different file path still clones", func(t *testing.T) {
		f := newGravityFixture(t)
		intentID := "INT-001"
		first := f.uploadEvidence(t, f.controlA.ID, &intentID)

		_, err := f.service.Propagate(first.ID)
		require.NoError(t, err)

		second := models.Evidence{
			Title:            first.Title,
			FilePath:         "/evidence/access-policy-v2.pdf",
			ControlID:        f.controlA.ID,
			TenantID:         f.tenant.InternalTenantID,
			MasterIntentID:   &intentID,
			ValidationSource: models.ValidationSourceManualUpload,
		}
		require.NoError(t, f.evidenceRepo.Create(nil, &second))

		created, err := f.service.Propagate(second.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, created)

		// both artifacts now sit on the crosswalked control
		clonesB, _ := f.evidenceRepo.FindByControl(f.controlB.ID)
		require.Len(t, clonesB, 2)
		paths := []string{clonesB[0].FilePath, clonesB[1].FilePath}
		assert.Contains(t, paths, first.FilePath)
		assert.Contains(t, paths, second.FilePath)
	})

	t.Run("does nothing without a master intent", func(t *testing.T) {
		f := newGravityFixture(t)
		evidence := f.uploadEvidence(t, f.controlA.ID, nil)

		created, err := f.service.Propagate(evidence.ID)

		require.NoError(t, err)
		assert.Equal(t, 0, created)
		assert.Len(t, f.evidenceRepo.rows, 1)
	})

	t.Run("a clone never propagates again", func(t *testing.T) {
		f := newGravityFixture(t)
		intentID := "INT-001"
		evidence := f.uploadEvidence(t, f.controlA.ID, &intentID)

		_, err := f.service.Propagate(evidence.ID)
		require.NoError(t, err)

		clones, _ := f.evidenceRepo.FindByControl(f.controlB.ID)
		require.Len(t, clones, 1)

		created, err := f.service.Propagate(clones[0].ID)
		require.NoError(t, err)
		assert.Equal(t, 0, created)
	})

	t.Run("creates a stub intent for an unseeded master intent", func(t *testing.T) {
		f := newGravityFixture(t)
		intentID := "INT-999"
		evidence := f.uploadEvidence(t, f.controlA.ID, &intentID)

		created, err := f.service.Propagate(evidence.ID)

		require.NoError(t, err)
		assert.Equal(t, 0, created) // no crosswalks for the stub yet

		stub, err := f.intentRepo.ReadByIntentID("INT-999")
		require.NoError(t, err)
		assert.Equal(t, models.IntentStatusPending, stub.Status)
		assert.Equal(t, "General", stub.Category)
	})

	t.Run("unknown evidence id yields not found", func(t *testing.T) {
		f := newGravityFixture(t)

		_, err := f.service.Propagate(uuid.New())

		assert.True(t, shared.IsKind(err, shared.KindNotFound))
	})
}

func TestGravityRemoveWithClones(t *testing.T) {
	t.Run("removes the source together with its clones", func(t *testing.T) {
		f := newGravityFixture(t)
		intentID := "INT-001"
		evidence := f.uploadEvidence(t, f.controlA.ID, &intentID)

		_, err := f.service.Propagate(evidence.ID)
		require.NoError(t, err)
		require.Len(t, f.evidenceRepo.rows, 3)

		err = f.service.RemoveWithClones(f.tenant, evidence.ID)

		require.NoError(t, err)
		assert.Empty(t, f.evidenceRepo.rows)
	})

	t.Run("cross-tenant delete reads as not found", func(t *testing.T) {
		f := newGravityFixture(t)
		intentID := "INT-001"
		evidence := f.uploadEvidence(t, f.controlA.ID, &intentID)

		other := models.Tenant{
			Model:            models.Model{ID: uuid.New()},
			Slug:             "other",
			InternalTenantID: uuid.New(),
			IsActive:         true,
		}

		err := f.service.RemoveWithClones(other, evidence.ID)

		assert.True(t, shared.IsKind(err, shared.KindNotFound))
		assert.Len(t, f.evidenceRepo.rows, 1)
	})

	t.Run("deleting a clone leaves the source alone", func(t *testing.T) {
		f := newGravityFixture(t)
		intentID := "INT-001"
		evidence := f.uploadEvidence(t, f.controlA.ID, &intentID)

		_, err := f.service.Propagate(evidence.ID)
		require.NoError(t, err)

		clones, _ := f.evidenceRepo.FindByControl(f.controlB.ID)
		require.Len(t, clones, 1)

		err = f.service.RemoveWithClones(f.tenant, clones[0].ID)

		require.NoError(t, err)
		assert.Len(t, f.evidenceRepo.rows, 2)
		_, err = f.evidenceRepo.Read(evidence.ID)
		assert.NoError(t, err)
	})
}

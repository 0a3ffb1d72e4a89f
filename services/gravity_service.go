package services

import (
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/l3montree-dev/crossguard/database/models"
	"github.com/l3montree-dev/crossguard/monitoring"
	"github.com/l3montree-dev/crossguard/shared"
)

// GravityService implements evidence gravity: one uploaded artifact is pulled
// towards every control in the same tenant that is crosswalked to the
// artifact's master intent. Only the database reference is cloned, never the
// file on disk.
type GravityService struct {
	evidenceRepository  shared.EvidenceRepository
	intentRepository    shared.IntentRepository
	crosswalkRepository shared.CrosswalkRepository
	controlRepository   shared.ControlRepository
	frameworkRepository shared.FrameworkRepository
}

func NewGravityService(evidenceRepository shared.EvidenceRepository, intentRepository shared.IntentRepository, crosswalkRepository shared.CrosswalkRepository, controlRepository shared.ControlRepository, frameworkRepository shared.FrameworkRepository) *GravityService {
	return &GravityService{
		evidenceRepository:  evidenceRepository,
		intentRepository:    intentRepository,
		crosswalkRepository: crosswalkRepository,
		controlRepository:   controlRepository,
		frameworkRepository: frameworkRepository,
	}
}

// Propagate fans the evidence out through the crosswalk. It is idempotent:
// running it twice yields no new rows. Returns the number of clones created.
func (service *GravityService) Propagate(evidenceID uuid.UUID) (int, error) {
	source, err := service.evidenceRepository.Read(evidenceID)
	if err != nil {
		return 0, shared.WrapError(shared.KindNotFound, "evidence not found", err)
	}

	if source.MasterIntentID == nil {
		return 0, nil
	}

	// a clone is never a new source - this structurally rules out cycles
	if source.IsGravityClone() {
		return 0, nil
	}

	intentID := *source.MasterIntentID

	if _, err := service.intentRepository.ReadByIntentID(intentID); err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, err
		}
		// unknown intent: create a stub so future seeding can catch up
		stub := models.UniversalIntent{
			IntentID: intentID,
			Category: "General",
			Status:   models.IntentStatusPending,
		}
		if err := service.intentRepository.Save(nil, &stub); err != nil {
			return 0, err
		}
		slog.Info("created stub intent for unseeded master intent", "intentId", intentID)
	}

	crosswalks, err := service.crosswalkRepository.FindByIntentID(intentID)
	if err != nil {
		return 0, err
	}

	created := 0
	err = service.evidenceRepository.Transaction(func(tx *gorm.DB) error {
		frameworkCache := map[string]models.Framework{}

		for _, crosswalk := range crosswalks {
			framework, ok := frameworkCache[crosswalk.FrameworkCode]
			if !ok {
				framework, err = service.frameworkRepository.ReadByCode(crosswalk.FrameworkCode)
				if err != nil {
					slog.Warn("crosswalk references unknown framework", "frameworkCode", crosswalk.FrameworkCode, "intentId", intentID)
					continue
				}
				frameworkCache[crosswalk.FrameworkCode] = framework
			}

			target, err := service.controlRepository.FindByReference(source.TenantID, framework.ID, crosswalk.ControlReference)
			if err != nil {
				// no matching control in this tenant - skip the pair
				continue
			}

			if target.ID == source.ControlID {
				continue
			}

			if _, err := service.evidenceRepository.FindClone(target.ID, source.Title, source.FilePath, intentID); err == nil {
				continue
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}

			clone := models.Evidence{
				Title:            source.Title,
				Description:      source.Description,
				FilePath:         source.FilePath,
				FileSize:         source.FileSize,
				FileType:         source.FileType,
				ControlID:        target.ID,
				TenantID:         source.TenantID,
				MasterIntentID:   source.MasterIntentID,
				ValidationSource: models.ValidationSourceAutomatedGravity,
				Status:           source.Status,
				Tags:             source.Tags,
			}
			if err := service.evidenceRepository.Create(tx, &clone); err != nil {
				return err
			}
			created++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	if created > 0 {
		monitoring.GravityClonesCreated.Add(float64(created))
		slog.Info("evidence gravity fan-out finished", "evidenceId", evidenceID, "intentId", intentID, "clones", created)
	}

	return created, nil
}

// RemoveWithClones deletes an evidence row together with the clones its
// gravity fan-out produced inside the tenant.
func (service *GravityService) RemoveWithClones(tenant models.Tenant, evidenceID uuid.UUID) error {
	evidence, err := service.evidenceRepository.Read(evidenceID)
	if err != nil {
		return shared.WrapError(shared.KindNotFound, "evidence not found", err)
	}

	// cross-tenant deletes look like a missing row to avoid leaking existence
	if evidence.TenantID != tenant.InternalTenantID {
		return shared.NewError(shared.KindNotFound, "evidence not found")
	}

	return service.evidenceRepository.Transaction(func(tx *gorm.DB) error {
		if evidence.MasterIntentID != nil && !evidence.IsGravityClone() {
			clones, err := service.evidenceRepository.FindGravityClones(evidence.TenantID, *evidence.MasterIntentID, evidence.ID)
			if err != nil {
				return err
			}

			var own []models.Evidence
			for _, clone := range clones {
				if clone.Title == evidence.Title && clone.FilePath == evidence.FilePath {
					own = append(own, clone)
				}
			}

			if err := service.evidenceRepository.DeleteBatch(tx, own); err != nil {
				return err
			}
		}

		return service.evidenceRepository.Delete(tx, evidence.ID)
	})
}

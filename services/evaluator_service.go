package services

import (
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/l3montree-dev/crossguard/config"
	"github.com/l3montree-dev/crossguard/database/models"
	"github.com/l3montree-dev/crossguard/monitoring"
	"github.com/l3montree-dev/crossguard/shared"
)

// EvaluatorService translates intent-level truth into control-level
// compliance results, honoring crosswalks and tenant entitlements.
type EvaluatorService struct {
	intentRepository          shared.IntentRepository
	crosswalkRepository       shared.CrosswalkRepository
	controlRepository         shared.ControlRepository
	frameworkRepository       shared.FrameworkRepository
	tenantRepository          shared.TenantRepository
	tenantFrameworkRepository shared.TenantFrameworkRepository
	resultRepository          shared.ComplianceResultRepository
	queue                     shared.IntentImpactQueue
}

func NewEvaluatorService(
	intentRepository shared.IntentRepository,
	crosswalkRepository shared.CrosswalkRepository,
	controlRepository shared.ControlRepository,
	frameworkRepository shared.FrameworkRepository,
	tenantRepository shared.TenantRepository,
	tenantFrameworkRepository shared.TenantFrameworkRepository,
	resultRepository shared.ComplianceResultRepository,
	queue shared.IntentImpactQueue,
) *EvaluatorService {
	return &EvaluatorService{
		intentRepository:          intentRepository,
		crosswalkRepository:       crosswalkRepository,
		controlRepository:         controlRepository,
		frameworkRepository:       frameworkRepository,
		tenantRepository:          tenantRepository,
		tenantFrameworkRepository: tenantFrameworkRepository,
		resultRepository:          resultRepository,
		queue:                     queue,
	}
}

// EvaluateIntent records the status transition and schedules the impact
// calculation. A fresh transition to completed goes through the background
// lane when one is attached; everything else runs inline.
func (service *EvaluatorService) EvaluateIntent(intentID string, newStatus models.IntentStatus, actor string) (models.UniversalIntent, error) {
	intent, err := service.intentRepository.ReadByIntentID(intentID)
	if err != nil {
		return intent, shared.WrapError(shared.KindNotFound, "intent not found", err)
	}

	if intent.Status == newStatus {
		return intent, nil
	}

	wasCompleted := intent.Status == models.IntentStatusCompleted
	event := models.IntentStatusEvent{
		IntentID:   intentID,
		FromStatus: intent.Status,
		ToStatus:   newStatus,
		Actor:      actor,
		OccurredAt: time.Now(),
	}
	intent.Status = newStatus

	err = service.intentRepository.Transaction(func(tx *gorm.DB) error {
		if err := service.intentRepository.Save(tx, &intent); err != nil {
			return err
		}
		return service.intentRepository.CreateStatusEvent(tx, &event)
	})
	if err != nil {
		return intent, err
	}

	if event.IsRegression() {
		slog.Warn("intent status regressed", "intentId", intentID, "from", event.FromStatus, "to", event.ToStatus, "actor", actor)
	}

	switch {
	case newStatus == models.IntentStatusCompleted && !wasCompleted:
		if service.queue != nil {
			service.queue.EnqueueIntentImpact(intentID)
		} else if err := service.CalculateIntentImpact(intentID); err != nil {
			return intent, err
		}
	case wasCompleted && newStatus != models.IntentStatusCompleted:
		// demotion is explicit: the status event above is the audit record
		if err := service.demoteIntentResults(intentID); err != nil {
			return intent, err
		}
	}

	return intent, nil
}

// CalculateIntentImpact upserts one PASS result per (tenant, control) the
// intent's crosswalks resolve to. Safe to replay: the target state is fixed.
func (service *EvaluatorService) CalculateIntentImpact(intentID string) error {
	start := time.Now()
	defer func() {
		monitoring.IntentImpactRuns.Inc()
		monitoring.IntentImpactDuration.Observe(time.Since(start).Seconds())
	}()

	crosswalks, err := service.crosswalkRepository.FindByIntentID(intentID)
	if err != nil {
		return err
	}
	if len(crosswalks) == 0 {
		// never invent targets - log and return
		slog.Info("intent has no crosswalk rows, nothing to do", "intentId", intentID)
		return nil
	}

	tenants, err := service.tenantRepository.ActiveTenants()
	if err != nil {
		return err
	}

	targets, err := service.resolveTargets(crosswalks, tenants)
	if err != nil {
		return err
	}

	now := time.Now()
	upserted := 0
	err = service.resultRepository.Transaction(func(tx *gorm.DB) error {
		for _, target := range targets {
			result, err := service.resultRepository.FindByTenantAndControl(target.tenantID, target.controlID)
			if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}

			metadata, err := config.EncryptEvidenceMetadata(models.IntentSatisfiedMarker)
			if err != nil {
				return err
			}

			result.TenantID = target.tenantID
			result.ControlID = target.controlID
			result.Status = models.ComplianceStatusPass
			result.EvidenceMetadata = metadata
			result.LastScannedAt = &now

			if err := service.resultRepository.Save(tx, &result); err != nil {
				return err
			}
			upserted++
		}
		return nil
	})
	if err != nil {
		return err
	}

	monitoring.ComplianceResultsUpserted.Add(float64(upserted))
	slog.Info("intent impact calculated", "intentId", intentID, "results", upserted)
	return nil
}

// demoteIntentResults handles an intent regressing away from completed:
// every PASS that is attributable solely to this intent becomes UNKNOWN. The
// row is kept, never deleted.
func (service *EvaluatorService) demoteIntentResults(intentID string) error {
	crosswalks, err := service.crosswalkRepository.FindByIntentID(intentID)
	if err != nil {
		return err
	}
	if len(crosswalks) == 0 {
		return nil
	}

	tenants, err := service.tenantRepository.ActiveTenants()
	if err != nil {
		return err
	}

	targets, err := service.resolveTargets(crosswalks, tenants)
	if err != nil {
		return err
	}

	now := time.Now()
	return service.resultRepository.Transaction(func(tx *gorm.DB) error {
		for _, target := range targets {
			result, err := service.resultRepository.FindByTenantAndControl(target.tenantID, target.controlID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					continue
				}
				return err
			}

			if result.Status != models.ComplianceStatusPass {
				continue
			}

			marker, err := config.DecryptEvidenceMetadata(result.EvidenceMetadata)
			if err != nil || marker != models.IntentSatisfiedMarker {
				// not attributable solely to an intent - leave it alone
				continue
			}

			metadata, err := config.EncryptEvidenceMetadata("Demoted: intent " + intentID + " regressed")
			if err != nil {
				return err
			}

			result.Status = models.ComplianceStatusUnknown
			result.EvidenceMetadata = metadata
			result.LastScannedAt = &now
			if err := service.resultRepository.Save(tx, &result); err != nil {
				return err
			}

			slog.Info("demoted compliance result after intent regression", "intentId", intentID, "controlId", target.controlID, "tenantId", target.tenantID)
		}
		return nil
	})
}

type impactTarget struct {
	tenantID  uuid.UUID
	controlID uuid.UUID
}

// resolveTargets fans crosswalk rows out to every tenant whose entitlement
// edge for the control's framework is active. Pairs without a matching
// control are skipped.
func (service *EvaluatorService) resolveTargets(crosswalks []models.IntentFrameworkCrosswalk, tenants []models.Tenant) ([]impactTarget, error) {
	frameworkCache := map[string]models.Framework{}
	var targets []impactTarget

	for _, crosswalk := range crosswalks {
		framework, ok := frameworkCache[crosswalk.FrameworkCode]
		if !ok {
			var err error
			framework, err = service.frameworkRepository.ReadByCode(crosswalk.FrameworkCode)
			if err != nil {
				slog.Warn("crosswalk references unknown framework", "frameworkCode", crosswalk.FrameworkCode, "intentId", crosswalk.IntentID)
				continue
			}
			frameworkCache[crosswalk.FrameworkCode] = framework
		}

		for _, tenant := range tenants {
			edge, err := service.tenantFrameworkRepository.FindEdge(tenant.InternalTenantID, framework.ID)
			if err != nil || !edge.IsActive {
				continue
			}

			control, err := service.controlRepository.FindByReference(tenant.InternalTenantID, framework.ID, crosswalk.ControlReference)
			if err != nil {
				continue
			}

			targets = append(targets, impactTarget{tenantID: tenant.InternalTenantID, controlID: control.ID})
		}
	}

	return targets, nil
}

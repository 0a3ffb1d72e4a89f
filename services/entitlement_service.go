package services

import (
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/l3montree-dev/crossguard/database/models"
	"github.com/l3montree-dev/crossguard/dtos"
	"github.com/l3montree-dev/crossguard/shared"
	"github.com/l3montree-dev/crossguard/utils"
)

// EntitlementService decides which frameworks a tenant may see and produces
// the tenant's effective control set.
type EntitlementService struct {
	frameworkRepository       shared.FrameworkRepository
	tenantFrameworkRepository shared.TenantFrameworkRepository
	controlRepository         shared.ControlRepository
}

func NewEntitlementService(frameworkRepository shared.FrameworkRepository, tenantFrameworkRepository shared.TenantFrameworkRepository, controlRepository shared.ControlRepository) *EntitlementService {
	return &EntitlementService{
		frameworkRepository:       frameworkRepository,
		tenantFrameworkRepository: tenantFrameworkRepository,
		controlRepository:         controlRepository,
	}
}

// IsEnabled returns a NotEntitled error when the entitlement edge is missing
// or inactive. A disabled framework is a reason, not a 404.
func (service *EntitlementService) IsEnabled(tenant models.Tenant, framework models.Framework) error {
	edge, err := service.tenantFrameworkRepository.FindEdge(tenant.InternalTenantID, framework.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return shared.NewError(shared.KindNotEntitled, "tenant "+tenant.Slug+" is not entitled to "+framework.Code)
		}
		return err
	}

	if !edge.IsActive {
		return shared.NewError(shared.KindNotEntitled, "framework "+framework.Code+" is disabled for tenant "+tenant.Slug)
	}

	return nil
}

func (service *EntitlementService) Entitlements(tenant models.Tenant) ([]dtos.EntitlementDTO, error) {
	edges, err := service.tenantFrameworkRepository.FindByTenant(tenant.InternalTenantID)
	if err != nil {
		return nil, err
	}

	return utils.Map(edges, func(edge models.TenantFramework) dtos.EntitlementDTO {
		return dtos.EntitlementDTO{
			FrameworkID: edge.FrameworkID,
			Code:        edge.Framework.Code,
			Name:        edge.Framework.Name,
			IsActive:    edge.IsActive,
			IsLocked:    edge.IsLocked,
		}
	}), nil
}

// ToggleFrameworks activates the given frameworks for the tenant and
// deactivates the rest. Locked edges are left untouched - a tenant cannot
// toggle them.
func (service *EntitlementService) ToggleFrameworks(tenant models.Tenant, frameworkIDs []uuid.UUID) ([]dtos.EntitlementDTO, error) {
	frameworks, err := service.frameworkRepository.All()
	if err != nil {
		return nil, err
	}

	edges, err := service.tenantFrameworkRepository.FindByTenant(tenant.InternalTenantID)
	if err != nil {
		return nil, err
	}

	edgeByFramework := make(map[uuid.UUID]models.TenantFramework, len(edges))
	for _, edge := range edges {
		edgeByFramework[edge.FrameworkID] = edge
	}

	err = service.tenantFrameworkRepository.Transaction(func(tx *gorm.DB) error {
		for _, framework := range frameworks {
			desired := utils.Contains(frameworkIDs, framework.ID)
			edge, exists := edgeByFramework[framework.ID]

			if exists {
				if edge.IsLocked {
					slog.Info("skipping locked entitlement", "tenant", tenant.Slug, "framework", framework.Code)
					continue
				}
				if edge.IsActive == desired {
					continue
				}
				edge.IsActive = desired
				if err := service.tenantFrameworkRepository.Save(tx, &edge); err != nil {
					return err
				}
				continue
			}

			if desired {
				newEdge := models.TenantFramework{
					TenantID:    tenant.InternalTenantID,
					FrameworkID: framework.ID,
					IsActive:    true,
				}
				if err := service.tenantFrameworkRepository.Save(tx, &newEdge); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return service.Entitlements(tenant)
}

// TenantControls returns the tenant's clones of the framework's catalog
// controls, materializing them lazily on first access.
func (service *EntitlementService) TenantControls(tenant models.Tenant, framework models.Framework) ([]models.Control, error) {
	if err := service.IsEnabled(tenant, framework); err != nil {
		return nil, err
	}

	controls, err := service.controlRepository.FindByTenantAndFramework(tenant.InternalTenantID, framework.ID)
	if err != nil {
		return nil, err
	}

	if len(controls) == 0 {
		controls, err = service.materializeControls(tenant, framework)
		if err != nil {
			return nil, err
		}
	}

	models.SortControls(controls)
	return controls, nil
}

func (service *EntitlementService) materializeControls(tenant models.Tenant, framework models.Framework) ([]models.Control, error) {
	templates, err := service.controlRepository.FindByTenantAndFramework(CatalogTenantID, framework.ID)
	if err != nil {
		return nil, err
	}
	if len(templates) == 0 {
		return []models.Control{}, nil
	}

	clones := utils.Map(templates, func(template models.Control) models.Control {
		template.ID = uuid.Nil
		template.TenantID = tenant.InternalTenantID
		template.Status = models.ControlStatusNotStarted
		return template
	})

	err = service.controlRepository.Transaction(func(tx *gorm.DB) error {
		return service.controlRepository.CreateBatch(tx, clones)
	})
	if err != nil {
		return nil, err
	}

	slog.Info("materialized tenant controls", "tenant", tenant.Slug, "framework", framework.Code, "amount", len(clones))

	return service.controlRepository.FindByTenantAndFramework(tenant.InternalTenantID, framework.ID)
}

package services

import (
	"github.com/google/uuid"

	"github.com/l3montree-dev/crossguard/database/models"
	"github.com/l3montree-dev/crossguard/shared"
)

// CatalogTenantID is the reserved tenant scope of catalog control templates.
// Per-tenant clones are materialized from rows stored under this id.
var CatalogTenantID = uuid.Nil

// CatalogService is the read-mostly source of truth for frameworks, control
// templates and the canonical process taxonomy. All mutations happen at seed
// time through the CLI.
type CatalogService struct {
	frameworkRepository shared.FrameworkRepository
	processRepository   shared.CanonicalProcessRepository
	controlRepository   shared.ControlRepository
}

func NewCatalogService(frameworkRepository shared.FrameworkRepository, processRepository shared.CanonicalProcessRepository, controlRepository shared.ControlRepository) *CatalogService {
	return &CatalogService{
		frameworkRepository: frameworkRepository,
		processRepository:   processRepository,
		controlRepository:   controlRepository,
	}
}

func (service *CatalogService) ListFrameworks() ([]models.Framework, error) {
	return service.frameworkRepository.All()
}

func (service *CatalogService) ListControls(frameworkCode string) ([]models.Control, error) {
	framework, err := service.frameworkRepository.ReadByCode(frameworkCode)
	if err != nil {
		return nil, shared.WrapError(shared.KindNotFound, "unknown framework "+frameworkCode, err)
	}

	controls, err := service.controlRepository.FindByTenantAndFramework(CatalogTenantID, framework.ID)
	if err != nil {
		return nil, err
	}

	models.SortControls(controls)
	return controls, nil
}

func (service *CatalogService) CanonicalProcesses(frameworkCode *string) ([]models.CanonicalProcess, error) {
	if frameworkCode == nil {
		return service.processRepository.All()
	}
	return service.processRepository.FindForFramework(*frameworkCode)
}

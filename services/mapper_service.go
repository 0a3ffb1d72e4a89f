package services

import (
	"errors"
	"sort"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/l3montree-dev/crossguard/database/models"
	"github.com/l3montree-dev/crossguard/dtos"
	"github.com/l3montree-dev/crossguard/monitoring"
	"github.com/l3montree-dev/crossguard/shared"
	"github.com/l3montree-dev/crossguard/transformer"
)

// MapperService groups a tenant's controls under the canonical process
// taxonomy - the view the UI renders. Controls are reached two ways: explicit
// subprocess links and intent-category inference.
type MapperService struct {
	frameworkRepository shared.FrameworkRepository
	processRepository   shared.CanonicalProcessRepository
	intentRepository    shared.IntentRepository
	crosswalkRepository shared.CrosswalkRepository
	controlRepository   shared.ControlRepository
}

func NewMapperService(frameworkRepository shared.FrameworkRepository, processRepository shared.CanonicalProcessRepository, intentRepository shared.IntentRepository, crosswalkRepository shared.CrosswalkRepository, controlRepository shared.ControlRepository) *MapperService {
	return &MapperService{
		frameworkRepository: frameworkRepository,
		processRepository:   processRepository,
		intentRepository:    intentRepository,
		crosswalkRepository: crosswalkRepository,
		controlRepository:   controlRepository,
	}
}

type controlSource int

const (
	sourceExplicit controlSource = iota
	sourceInferred
)

type processGroup struct {
	process  models.CanonicalProcess
	controls map[uuid.UUID]models.Control
	sources  map[uuid.UUID]controlSource
}

func (service *MapperService) ProcessesWithControls(tenant models.Tenant, frameworkCode string) ([]dtos.ProcessWithControlsDTO, error) {
	groups, err := service.collectGroups(tenant, frameworkCode)
	if err != nil {
		return nil, err
	}
	if groups == nil {
		return []dtos.ProcessWithControlsDTO{}, nil
	}

	service.dedupeAcrossProcesses(groups)

	result := make([]dtos.ProcessWithControlsDTO, 0, len(groups))
	for _, group := range groups {
		controls := make([]models.Control, 0, len(group.controls))
		for _, control := range group.controls {
			controls = append(controls, control)
		}
		models.SortControls(controls)

		result = append(result, dtos.ProcessWithControlsDTO{
			ID:          group.process.ID,
			Name:        group.process.Name,
			Description: group.process.Description,
			Controls:    transformer.ControlDTOsFromModels(controls, frameworkCode),
		})
	}

	return result, nil
}

// IntegrityCheck reports every control classified under more than one
// canonical process. A non-empty result indicates a seeder bug.
func (service *MapperService) IntegrityCheck(tenant models.Tenant, frameworkCode string) ([]dtos.DuplicateClassificationDTO, error) {
	groups, err := service.collectGroups(tenant, frameworkCode)
	if err != nil {
		return nil, err
	}

	processesByControl := map[uuid.UUID][]string{}
	publicIDs := map[uuid.UUID]string{}
	for _, group := range groups {
		for id, control := range group.controls {
			processesByControl[id] = append(processesByControl[id], group.process.Name)
			publicIDs[id] = control.PublicControlID()
		}
	}

	var findings []dtos.DuplicateClassificationDTO
	for id, processes := range processesByControl {
		if len(processes) > 1 {
			sort.Strings(processes)
			findings = append(findings, dtos.DuplicateClassificationDTO{
				ControlID: id,
				PublicID:  publicIDs[id],
				Processes: processes,
			})
		}
	}

	sort.Slice(findings, func(i, j int) bool {
		return models.ControlIDLess(findings[i].PublicID, findings[j].PublicID)
	})

	monitoring.IntegrityCheckFindings.Set(float64(len(findings)))
	return findings, nil
}

// collectGroups returns nil (without error) for an unknown framework.
func (service *MapperService) collectGroups(tenant models.Tenant, frameworkCode string) ([]*processGroup, error) {
	framework, err := service.frameworkRepository.ReadByCode(frameworkCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	processes, err := service.processRepository.FindForFramework(frameworkCode)
	if err != nil {
		return nil, err
	}

	groups := make([]*processGroup, 0, len(processes))
	for _, process := range processes {
		group := &processGroup{
			process:  process,
			controls: map[uuid.UUID]models.Control{},
			sources:  map[uuid.UUID]controlSource{},
		}

		// explicit subprocess links
		subProcesses, err := service.processRepository.SubProcessesWithControls(process.ID)
		if err != nil {
			return nil, err
		}
		for _, subProcess := range subProcesses {
			for _, control := range subProcess.Controls {
				if control.FrameworkID != framework.ID || control.TenantID != tenant.InternalTenantID {
					continue
				}
				group.add(control, sourceExplicit)
			}
		}

		// intent-category inference
		intents, err := service.intentRepository.FindByCategory(process.Name)
		if err != nil {
			return nil, err
		}
		for _, intent := range intents {
			crosswalks, err := service.crosswalkRepository.FindByIntentIDAndFramework(intent.IntentID, frameworkCode)
			if err != nil {
				return nil, err
			}
			for _, crosswalk := range crosswalks {
				control, err := service.controlRepository.FindByReference(tenant.InternalTenantID, framework.ID, crosswalk.ControlReference)
				if err != nil {
					continue
				}
				group.add(control, sourceInferred)
			}
		}

		groups = append(groups, group)
	}

	return groups, nil
}

func (group *processGroup) add(control models.Control, source controlSource) {
	if existing, ok := group.sources[control.ID]; ok && existing >= source {
		return
	}
	group.controls[control.ID] = control
	group.sources[control.ID] = source
}

// dedupeAcrossProcesses enforces the "each control appears in at most one
// process" contract. The intent category is the curated classification, so
// an inferred occurrence beats a (possibly stale) explicit subprocess link;
// ties go to the first process.
func (service *MapperService) dedupeAcrossProcesses(groups []*processGroup) {
	type winner struct {
		group  *processGroup
		source controlSource
	}
	winners := map[uuid.UUID]winner{}

	for _, group := range groups {
		for id, source := range group.sources {
			current, ok := winners[id]
			if !ok || source > current.source {
				winners[id] = winner{group: group, source: source}
			}
		}
	}

	for _, group := range groups {
		for id := range group.controls {
			if winners[id].group != group {
				delete(group.controls, id)
				delete(group.sources, id)
			}
		}
	}
}

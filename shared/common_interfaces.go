// Copyright (C) 2025 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package shared

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/l3montree-dev/crossguard/database/models"
	"github.com/l3montree-dev/crossguard/dtos"
)

// AuthSession is the authenticated caller extracted from the bearer token.
type AuthSession interface {
	GetUserID() string
	GetTenantSlug() string
}

// IntentImpactQueue is the background-task lane: completing an intent hands
// the fan-out to the daemon instead of blocking the request.
type IntentImpactQueue interface {
	EnqueueIntentImpact(intentID string)
}

type FrameworkRepository interface {
	All() ([]models.Framework, error)
	ReadByCode(code string) (models.Framework, error)
	Save(tx *gorm.DB, framework *models.Framework) error
	Transaction(fn func(tx *gorm.DB) error) error
}

type CanonicalProcessRepository interface {
	FindForFramework(frameworkCode string) ([]models.CanonicalProcess, error)
	All() ([]models.CanonicalProcess, error)
	ReadByName(name string, frameworkCode *string) (models.CanonicalProcess, error)
	Save(tx *gorm.DB, process *models.CanonicalProcess) error
	SubProcessesWithControls(processID uuid.UUID) ([]models.SubProcess, error)
	SaveSubProcess(tx *gorm.DB, subProcess *models.SubProcess) error
}

type ControlRepository interface {
	Read(id uuid.UUID) (models.Control, error)
	FindByTenantAndFramework(tenantID uuid.UUID, frameworkID uuid.UUID) ([]models.Control, error)
	// FindByReference resolves a crosswalk control reference to the
	// tenant-scoped control, modulo the tenant-suffix convention.
	FindByReference(tenantID uuid.UUID, frameworkID uuid.UUID, reference string) (models.Control, error)
	List(ids []uuid.UUID) ([]models.Control, error)
	Save(tx *gorm.DB, control *models.Control) error
	CreateBatch(tx *gorm.DB, controls []models.Control) error
	Transaction(fn func(tx *gorm.DB) error) error
}

type TenantRepository interface {
	ReadBySlug(slug string) (models.Tenant, error)
	ReadByInternalID(internalTenantID uuid.UUID) (models.Tenant, error)
	ActiveTenants() ([]models.Tenant, error)
	Save(tx *gorm.DB, tenant *models.Tenant) error
}

type TenantFrameworkRepository interface {
	FindEdge(tenantID uuid.UUID, frameworkID uuid.UUID) (models.TenantFramework, error)
	FindByTenant(tenantID uuid.UUID) ([]models.TenantFramework, error)
	Save(tx *gorm.DB, edge *models.TenantFramework) error
	Transaction(fn func(tx *gorm.DB) error) error
}

type IntentRepository interface {
	ReadByIntentID(intentID string) (models.UniversalIntent, error)
	FindByCategory(category string) ([]models.UniversalIntent, error)
	All() ([]models.UniversalIntent, error)
	Save(tx *gorm.DB, intent *models.UniversalIntent) error
	CreateStatusEvent(tx *gorm.DB, event *models.IntentStatusEvent) error
	Transaction(fn func(tx *gorm.DB) error) error
}

type CrosswalkRepository interface {
	FindByIntentID(intentID string) ([]models.IntentFrameworkCrosswalk, error)
	FindByIntentIDAndFramework(intentID string, frameworkCode string) ([]models.IntentFrameworkCrosswalk, error)
	All() ([]models.IntentFrameworkCrosswalk, error)
	Create(tx *gorm.DB, crosswalk *models.IntentFrameworkCrosswalk) error
}

type EvidenceRepository interface {
	Read(id uuid.UUID) (models.Evidence, error)
	FindByControl(controlID uuid.UUID) ([]models.Evidence, error)
	// FindClone locates an existing gravity clone by its natural key
	// (target control, title, file path, master intent).
	FindClone(controlID uuid.UUID, title string, filePath string, masterIntentID string) (models.Evidence, error)
	// FindGravityClones returns all propagated copies sharing the master
	// intent inside the tenant, excluding the source row itself.
	FindGravityClones(tenantID uuid.UUID, masterIntentID string, excludeID uuid.UUID) ([]models.Evidence, error)
	Create(tx *gorm.DB, evidence *models.Evidence) error
	Delete(tx *gorm.DB, id uuid.UUID) error
	DeleteBatch(tx *gorm.DB, evidence []models.Evidence) error
	Transaction(fn func(tx *gorm.DB) error) error
}

type ComplianceResultRepository interface {
	FindByTenantAndControl(tenantID uuid.UUID, controlID uuid.UUID) (models.ComplianceResult, error)
	FindByTenant(tenantID uuid.UUID) ([]models.ComplianceResult, error)
	Save(tx *gorm.DB, result *models.ComplianceResult) error
	Transaction(fn func(tx *gorm.DB) error) error
}

type ConfigRepository interface {
	Save(tx *gorm.DB, config *models.Config) error
	GetDB(tx *gorm.DB) *gorm.DB
}

type ConfigService interface {
	GetJSONConfig(key string, v any) error
	SetJSONConfig(key string, v any) error
}

type CatalogService interface {
	ListFrameworks() ([]models.Framework, error)
	// ListControls returns the catalog control templates of a framework in
	// natural framework order.
	ListControls(frameworkCode string) ([]models.Control, error)
	CanonicalProcesses(frameworkCode *string) ([]models.CanonicalProcess, error)
}

type EntitlementService interface {
	IsEnabled(tenant models.Tenant, framework models.Framework) error
	Entitlements(tenant models.Tenant) ([]dtos.EntitlementDTO, error)
	ToggleFrameworks(tenant models.Tenant, frameworkIDs []uuid.UUID) ([]dtos.EntitlementDTO, error)
	TenantControls(tenant models.Tenant, framework models.Framework) ([]models.Control, error)
}

type GravityService interface {
	Propagate(evidenceID uuid.UUID) (int, error)
	RemoveWithClones(tenant models.Tenant, evidenceID uuid.UUID) error
}

type EvaluatorService interface {
	EvaluateIntent(intentID string, newStatus models.IntentStatus, actor string) (models.UniversalIntent, error)
	CalculateIntentImpact(intentID string) error
}

type MapperService interface {
	ProcessesWithControls(tenant models.Tenant, frameworkCode string) ([]dtos.ProcessWithControlsDTO, error)
	IntegrityCheck(tenant models.Tenant, frameworkCode string) ([]dtos.DuplicateClassificationDTO, error)
}

type ReportService interface {
	UnifiedControlsEvidence(tenant models.Tenant) (dtos.UnifiedControlsEvidenceReportDTO, error)
	ComplianceSummary(tenant models.Tenant, frameworkID *uuid.UUID) ([]dtos.DomainSummaryDTO, error)
}

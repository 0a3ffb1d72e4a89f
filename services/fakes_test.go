package services

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/l3montree-dev/crossguard/database/models"
	"github.com/l3montree-dev/crossguard/shared"
)

// hand-rolled in-memory fakes implementing the shared repository interfaces.
// The tx argument is ignored everywhere: the fakes have no transactions.

type fakeFrameworkRepository struct {
	frameworks []models.Framework
}

func (f *fakeFrameworkRepository) All() ([]models.Framework, error) {
	return f.frameworks, nil
}

func (f *fakeFrameworkRepository) ReadByCode(code string) (models.Framework, error) {
	for _, fw := range f.frameworks {
		if fw.Code == code {
			return fw, nil
		}
	}
	return models.Framework{}, gorm.ErrRecordNotFound
}

func (f *fakeFrameworkRepository) Save(tx *gorm.DB, framework *models.Framework) error {
	if framework.ID == uuid.Nil {
		framework.ID = uuid.New()
	}
	f.frameworks = append(f.frameworks, *framework)
	return nil
}

func (f *fakeFrameworkRepository) Transaction(fn func(tx *gorm.DB) error) error {
	return fn(nil)
}

type fakeProcessRepository struct {
	processes    []models.CanonicalProcess
	subProcesses map[uuid.UUID][]models.SubProcess
}

func (f *fakeProcessRepository) FindForFramework(frameworkCode string) ([]models.CanonicalProcess, error) {
	var out []models.CanonicalProcess
	for _, p := range f.processes {
		if p.FrameworkCode == nil || *p.FrameworkCode == frameworkCode {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProcessRepository) All() ([]models.CanonicalProcess, error) {
	return f.processes, nil
}

func (f *fakeProcessRepository) ReadByName(name string, frameworkCode *string) (models.CanonicalProcess, error) {
	for _, p := range f.processes {
		if p.Name != name {
			continue
		}
		if frameworkCode == nil && p.FrameworkCode == nil {
			return p, nil
		}
		if frameworkCode != nil && p.FrameworkCode != nil && *p.FrameworkCode == *frameworkCode {
			return p, nil
		}
	}
	return models.CanonicalProcess{}, gorm.ErrRecordNotFound
}

func (f *fakeProcessRepository) Save(tx *gorm.DB, process *models.CanonicalProcess) error {
	if process.ID == uuid.Nil {
		process.ID = uuid.New()
	}
	f.processes = append(f.processes, *process)
	return nil
}

func (f *fakeProcessRepository) SubProcessesWithControls(processID uuid.UUID) ([]models.SubProcess, error) {
	return f.subProcesses[processID], nil
}

func (f *fakeProcessRepository) SaveSubProcess(tx *gorm.DB, subProcess *models.SubProcess) error {
	if subProcess.ID == uuid.Nil {
		subProcess.ID = uuid.New()
	}
	if f.subProcesses == nil {
		f.subProcesses = map[uuid.UUID][]models.SubProcess{}
	}
	f.subProcesses[subProcess.ProcessID] = append(f.subProcesses[subProcess.ProcessID], *subProcess)
	return nil
}

type fakeControlRepository struct {
	controls []models.Control
}

func (f *fakeControlRepository) Read(id uuid.UUID) (models.Control, error) {
	for _, c := range f.controls {
		if c.ID == id {
			return c, nil
		}
	}
	return models.Control{}, gorm.ErrRecordNotFound
}

func (f *fakeControlRepository) FindByTenantAndFramework(tenantID uuid.UUID, frameworkID uuid.UUID) ([]models.Control, error) {
	var out []models.Control
	for _, c := range f.controls {
		if c.TenantID == tenantID && c.FrameworkID == frameworkID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeControlRepository) FindByReference(tenantID uuid.UUID, frameworkID uuid.UUID, reference string) (models.Control, error) {
	for _, c := range f.controls {
		if c.TenantID == tenantID && c.FrameworkID == frameworkID && c.MatchesReference(reference) {
			return c, nil
		}
	}
	return models.Control{}, gorm.ErrRecordNotFound
}

func (f *fakeControlRepository) List(ids []uuid.UUID) ([]models.Control, error) {
	var out []models.Control
	for _, c := range f.controls {
		for _, id := range ids {
			if c.ID == id {
				out = append(out, c)
			}
		}
	}
	return out, nil
}

func (f *fakeControlRepository) Save(tx *gorm.DB, control *models.Control) error {
	if control.ID == uuid.Nil {
		control.ID = uuid.New()
	}
	for i, c := range f.controls {
		if c.ID == control.ID {
			f.controls[i] = *control
			return nil
		}
	}
	f.controls = append(f.controls, *control)
	return nil
}

func (f *fakeControlRepository) CreateBatch(tx *gorm.DB, controls []models.Control) error {
	for i := range controls {
		if controls[i].ID == uuid.Nil {
			controls[i].ID = uuid.New()
		}
		f.controls = append(f.controls, controls[i])
	}
	return nil
}

func (f *fakeControlRepository) Transaction(fn func(tx *gorm.DB) error) error {
	return fn(nil)
}

type fakeTenantRepository struct {
	tenants []models.Tenant
}

func (f *fakeTenantRepository) ReadBySlug(slug string) (models.Tenant, error) {
	for _, t := range f.tenants {
		if t.Slug == slug {
			return t, nil
		}
	}
	return models.Tenant{}, gorm.ErrRecordNotFound
}

func (f *fakeTenantRepository) ReadByInternalID(internalTenantID uuid.UUID) (models.Tenant, error) {
	for _, t := range f.tenants {
		if t.InternalTenantID == internalTenantID {
			return t, nil
		}
	}
	return models.Tenant{}, gorm.ErrRecordNotFound
}

func (f *fakeTenantRepository) ActiveTenants() ([]models.Tenant, error) {
	var out []models.Tenant
	for _, t := range f.tenants {
		if t.IsActive {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTenantRepository) Save(tx *gorm.DB, tenant *models.Tenant) error {
	if tenant.ID == uuid.Nil {
		tenant.ID = uuid.New()
	}
	f.tenants = append(f.tenants, *tenant)
	return nil
}

type fakeTenantFrameworkRepository struct {
	edges []models.TenantFramework
}

func (f *fakeTenantFrameworkRepository) FindEdge(tenantID uuid.UUID, frameworkID uuid.UUID) (models.TenantFramework, error) {
	for _, e := range f.edges {
		if e.TenantID == tenantID && e.FrameworkID == frameworkID {
			return e, nil
		}
	}
	return models.TenantFramework{}, gorm.ErrRecordNotFound
}

func (f *fakeTenantFrameworkRepository) FindByTenant(tenantID uuid.UUID) ([]models.TenantFramework, error) {
	var out []models.TenantFramework
	for _, e := range f.edges {
		if e.TenantID == tenantID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeTenantFrameworkRepository) Save(tx *gorm.DB, edge *models.TenantFramework) error {
	if edge.ID == uuid.Nil {
		edge.ID = uuid.New()
	}
	for i, e := range f.edges {
		if e.ID == edge.ID {
			f.edges[i] = *edge
			return nil
		}
	}
	f.edges = append(f.edges, *edge)
	return nil
}

func (f *fakeTenantFrameworkRepository) Transaction(fn func(tx *gorm.DB) error) error {
	return fn(nil)
}

type fakeIntentRepository struct {
	intents []models.UniversalIntent
	events  []models.IntentStatusEvent
}

func (f *fakeIntentRepository) ReadByIntentID(intentID string) (models.UniversalIntent, error) {
	for _, in := range f.intents {
		if in.IntentID == intentID {
			return in, nil
		}
	}
	return models.UniversalIntent{}, gorm.ErrRecordNotFound
}

func (f *fakeIntentRepository) FindByCategory(category string) ([]models.UniversalIntent, error) {
	var out []models.UniversalIntent
	for _, in := range f.intents {
		if in.Category == category {
			out = append(out, in)
		}
	}
	return out, nil
}

func (f *fakeIntentRepository) All() ([]models.UniversalIntent, error) {
	return f.intents, nil
}

func (f *fakeIntentRepository) Save(tx *gorm.DB, intent *models.UniversalIntent) error {
	if intent.ID == uuid.Nil {
		intent.ID = uuid.New()
	}
	for i, in := range f.intents {
		if in.IntentID == intent.IntentID {
			f.intents[i] = *intent
			return nil
		}
	}
	f.intents = append(f.intents, *intent)
	return nil
}

func (f *fakeIntentRepository) CreateStatusEvent(tx *gorm.DB, event *models.IntentStatusEvent) error {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	f.events = append(f.events, *event)
	return nil
}

func (f *fakeIntentRepository) Transaction(fn func(tx *gorm.DB) error) error {
	return fn(nil)
}

type fakeCrosswalkRepository struct {
	rows []models.IntentFrameworkCrosswalk
}

func (f *fakeCrosswalkRepository) FindByIntentID(intentID string) ([]models.IntentFrameworkCrosswalk, error) {
	var out []models.IntentFrameworkCrosswalk
	for _, r := range f.rows {
		if r.IntentID == intentID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeCrosswalkRepository) FindByIntentIDAndFramework(intentID string, frameworkCode string) ([]models.IntentFrameworkCrosswalk, error) {
	var out []models.IntentFrameworkCrosswalk
	for _, r := range f.rows {
		if r.IntentID == intentID && r.FrameworkCode == frameworkCode {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeCrosswalkRepository) All() ([]models.IntentFrameworkCrosswalk, error) {
	return f.rows, nil
}

func (f *fakeCrosswalkRepository) Create(tx *gorm.DB, crosswalk *models.IntentFrameworkCrosswalk) error {
	for _, r := range f.rows {
		if r.IntentID == crosswalk.IntentID && r.FrameworkCode == crosswalk.FrameworkCode && r.ControlReference == crosswalk.ControlReference {
			return shared.NewError(shared.KindIntegrityViolation, "crosswalk edge already exists")
		}
	}
	if crosswalk.ID == uuid.Nil {
		crosswalk.ID = uuid.New()
	}
	f.rows = append(f.rows, *crosswalk)
	return nil
}

type fakeEvidenceRepository struct {
	rows []models.Evidence
}

func (f *fakeEvidenceRepository) Read(id uuid.UUID) (models.Evidence, error) {
	for _, e := range f.rows {
		if e.ID == id {
			return e, nil
		}
	}
	return models.Evidence{}, gorm.ErrRecordNotFound
}

func (f *fakeEvidenceRepository) FindByControl(controlID uuid.UUID) ([]models.Evidence, error) {
	var out []models.Evidence
	for _, e := range f.rows {
		if e.ControlID == controlID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEvidenceRepository) FindClone(controlID uuid.UUID, title string, filePath string, masterIntentID string) (models.Evidence, error) {
	for _, e := range f.rows {
		if e.ControlID == controlID && e.Title == title && e.FilePath == filePath && e.MasterIntentID != nil && *e.MasterIntentID == masterIntentID {
			return e, nil
		}
	}
	return models.Evidence{}, gorm.ErrRecordNotFound
}

func (f *fakeEvidenceRepository) FindGravityClones(tenantID uuid.UUID, masterIntentID string, excludeID uuid.UUID) ([]models.Evidence, error) {
	var out []models.Evidence
	for _, e := range f.rows {
		if e.ID == excludeID || e.TenantID != tenantID {
			continue
		}
		if e.ValidationSource != models.ValidationSourceAutomatedGravity {
			continue
		}
		if e.MasterIntentID != nil && *e.MasterIntentID == masterIntentID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEvidenceRepository) Create(tx *gorm.DB, evidence *models.Evidence) error {
	if evidence.ID == uuid.Nil {
		evidence.ID = uuid.New()
	}
	f.rows = append(f.rows, *evidence)
	return nil
}

func (f *fakeEvidenceRepository) Delete(tx *gorm.DB, id uuid.UUID) error {
	for i, e := range f.rows {
		if e.ID == id {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeEvidenceRepository) DeleteBatch(tx *gorm.DB, evidence []models.Evidence) error {
	for _, e := range evidence {
		_ = f.Delete(tx, e.ID)
	}
	return nil
}

func (f *fakeEvidenceRepository) Transaction(fn func(tx *gorm.DB) error) error {
	return fn(nil)
}

type fakeComplianceResultRepository struct {
	rows []models.ComplianceResult
}

func (f *fakeComplianceResultRepository) FindByTenantAndControl(tenantID uuid.UUID, controlID uuid.UUID) (models.ComplianceResult, error) {
	for _, r := range f.rows {
		if r.TenantID == tenantID && r.ControlID == controlID {
			return r, nil
		}
	}
	return models.ComplianceResult{}, gorm.ErrRecordNotFound
}

func (f *fakeComplianceResultRepository) FindByTenant(tenantID uuid.UUID) ([]models.ComplianceResult, error) {
	var out []models.ComplianceResult
	for _, r := range f.rows {
		if r.TenantID == tenantID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeComplianceResultRepository) Save(tx *gorm.DB, result *models.ComplianceResult) error {
	for i, r := range f.rows {
		if r.TenantID == result.TenantID && r.ControlID == result.ControlID {
			if result.ID == uuid.Nil {
				result.ID = r.ID
			}
			f.rows[i] = *result
			return nil
		}
	}
	if result.ID == uuid.Nil {
		result.ID = uuid.New()
	}
	f.rows = append(f.rows, *result)
	return nil
}

func (f *fakeComplianceResultRepository) Transaction(fn func(tx *gorm.DB) error) error {
	return fn(nil)
}

type fakeIntentImpactQueue struct {
	enqueued []string
}

func (f *fakeIntentImpactQueue) EnqueueIntentImpact(intentID string) {
	f.enqueued = append(f.enqueued, intentID)
}

// interface conformance
var (
	_ shared.FrameworkRepository        = (*fakeFrameworkRepository)(nil)
	_ shared.CanonicalProcessRepository = (*fakeProcessRepository)(nil)
	_ shared.ControlRepository          = (*fakeControlRepository)(nil)
	_ shared.TenantRepository           = (*fakeTenantRepository)(nil)
	_ shared.TenantFrameworkRepository  = (*fakeTenantFrameworkRepository)(nil)
	_ shared.IntentRepository           = (*fakeIntentRepository)(nil)
	_ shared.CrosswalkRepository        = (*fakeCrosswalkRepository)(nil)
	_ shared.EvidenceRepository         = (*fakeEvidenceRepository)(nil)
	_ shared.ComplianceResultRepository = (*fakeComplianceResultRepository)(nil)
	_ shared.IntentImpactQueue          = (*fakeIntentImpactQueue)(nil)
)

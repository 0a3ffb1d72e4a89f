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
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package repositories

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"

	"github.com/l3montree-dev/crossguard/database/models"
)

type tenantRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.Tenant]
}

func NewTenantRepository(db *gorm.DB) *tenantRepository {
	return &tenantRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.Tenant](db),
	}
}

// tenantSlug returns the explicit slug or derives one from the name.
func tenantSlug(tenant models.Tenant) string {
	if tenant.Slug != "" {
		return tenant.Slug
	}
	return slug.Make(tenant.Name)
}

func (g *tenantRepository) Create(tx *gorm.DB, tenant *models.Tenant) error {
	firstFreeSlug, err := g.firstFreeSlug(tenantSlug(*tenant))
	if err != nil {
		return fmt.Errorf("could not generate next slug: %w", err)
	}
	tenant.Slug = firstFreeSlug

	if tenant.InternalTenantID == uuid.Nil {
		tenant.InternalTenantID = uuid.New()
	}

	return g.GetDB(tx).Create(tenant).Error
}

func (g *tenantRepository) ReadBySlug(slug string) (models.Tenant, error) {
	var tenant models.Tenant
	err := g.db.Where("slug = ?", slug).First(&tenant).Error
	return tenant, err
}

func (g *tenantRepository) ReadByInternalID(internalTenantID uuid.UUID) (models.Tenant, error) {
	var tenant models.Tenant
	err := g.db.Where("internal_tenant_id = ?", internalTenantID).First(&tenant).Error
	return tenant, err
}

func (g *tenantRepository) ActiveTenants() ([]models.Tenant, error) {
	var tenants []models.Tenant
	err := g.db.Where("is_active = true").Find(&tenants).Error
	return tenants, err
}

func (g *tenantRepository) firstFreeSlug(base string) (string, error) {
	candidate := base
	for i := 1; ; i++ {
		var count int64
		if err := g.db.Model(&models.Tenant{}).Where("slug = ?", candidate).Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
}

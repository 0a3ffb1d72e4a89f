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
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/l3montree-dev/crossguard/database/models"
)

type canonicalProcessRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.CanonicalProcess]
}

func NewCanonicalProcessRepository(db *gorm.DB) *canonicalProcessRepository {
	return &canonicalProcessRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.CanonicalProcess](db),
	}
}

// FindForFramework returns the processes scoped to the framework plus the
// global ones (framework_code unset).
func (g *canonicalProcessRepository) FindForFramework(frameworkCode string) ([]models.CanonicalProcess, error) {
	var processes []models.CanonicalProcess
	err := g.db.Where("framework_code = ? OR framework_code IS NULL", frameworkCode).
		Order("name ASC").
		Find(&processes).Error
	return processes, err
}

func (g *canonicalProcessRepository) ReadByName(name string, frameworkCode *string) (models.CanonicalProcess, error) {
	var process models.CanonicalProcess
	query := g.db.Where("name = ?", name)
	if frameworkCode != nil {
		query = query.Where("framework_code = ? OR framework_code IS NULL", *frameworkCode)
	}
	err := query.First(&process).Error
	return process, err
}

func (g *canonicalProcessRepository) SubProcessesWithControls(processID uuid.UUID) ([]models.SubProcess, error) {
	var subProcesses []models.SubProcess
	err := g.db.Preload("Controls").Where("process_id = ?", processID).Find(&subProcesses).Error
	return subProcesses, err
}

func (g *canonicalProcessRepository) SaveSubProcess(tx *gorm.DB, subProcess *models.SubProcess) error {
	return g.GetDB(tx).Save(subProcess).Error
}

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
	"github.com/l3montree-dev/crossguard/shared"
)

type crosswalkRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.IntentFrameworkCrosswalk]
}

func NewCrosswalkRepository(db *gorm.DB) *crosswalkRepository {
	return &crosswalkRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.IntentFrameworkCrosswalk](db),
	}
}

func (g *crosswalkRepository) FindByIntentID(intentID string) ([]models.IntentFrameworkCrosswalk, error) {
	var crosswalks []models.IntentFrameworkCrosswalk
	err := g.db.Where("intent_id = ?", intentID).Find(&crosswalks).Error
	return crosswalks, err
}

func (g *crosswalkRepository) FindByIntentIDAndFramework(intentID string, frameworkCode string) ([]models.IntentFrameworkCrosswalk, error) {
	var crosswalks []models.IntentFrameworkCrosswalk
	err := g.db.Where("intent_id = ? AND framework_code = ?", intentID, frameworkCode).Find(&crosswalks).Error
	return crosswalks, err
}

func (g *crosswalkRepository) Create(tx *gorm.DB, crosswalk *models.IntentFrameworkCrosswalk) error {
	err := g.GetDB(tx).Create(crosswalk).Error
	if err != nil && isUniqueConstraintError(err) {
		return shared.WrapError(shared.KindIntegrityViolation, "duplicate crosswalk edge", err)
	}
	return err
}

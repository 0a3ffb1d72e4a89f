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

type intentRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.UniversalIntent]
}

func NewIntentRepository(db *gorm.DB) *intentRepository {
	return &intentRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.UniversalIntent](db),
	}
}

func (g *intentRepository) ReadByIntentID(intentID string) (models.UniversalIntent, error) {
	var intent models.UniversalIntent
	err := g.db.Where("intent_id = ?", intentID).First(&intent).Error
	return intent, err
}

func (g *intentRepository) FindByCategory(category string) ([]models.UniversalIntent, error) {
	var intents []models.UniversalIntent
	err := g.db.Where("category = ?", category).Find(&intents).Error
	return intents, err
}

func (g *intentRepository) CreateStatusEvent(tx *gorm.DB, event *models.IntentStatusEvent) error {
	return g.GetDB(tx).Create(event).Error
}

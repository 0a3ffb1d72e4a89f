package transformer

import (
	"github.com/l3montree-dev/crossguard/database/models"
	"github.com/l3montree-dev/crossguard/dtos"
	"github.com/l3montree-dev/crossguard/utils"
)

func IntentDTOFromModel(intent models.UniversalIntent) dtos.IntentDTO {
	return dtos.IntentDTO{
		IntentID:    intent.IntentID,
		Description: intent.Description,
		Category:    intent.Category,
		Status:      string(intent.Status),
		UpdatedAt:   intent.UpdatedAt,
	}
}

func IntentDTOsFromModels(intents []models.UniversalIntent) []dtos.IntentDTO {
	return utils.Map(intents, IntentDTOFromModel)
}

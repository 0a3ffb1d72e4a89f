package transformer

import (
	"github.com/l3montree-dev/crossguard/database/models"
	"github.com/l3montree-dev/crossguard/dtos"
	"github.com/l3montree-dev/crossguard/utils"
)

// ControlDTOFromModel maps a control to its public shape. The internal tenant
// suffix is stripped here - it must never round-trip out of the API.
func ControlDTOFromModel(control models.Control, frameworkCode string) dtos.ControlDTO {
	return dtos.ControlDTO{
		ID:               control.ID,
		ControlID:        control.PublicControlID(),
		FrameworkCode:    frameworkCode,
		Title:            control.Title,
		Description:      control.Description,
		Status:           string(control.Status),
		Category:         control.Category,
		Domain:           control.Domain,
		IsApplicable:     control.IsApplicable,
		Classification:   string(control.Classification),
		AutomationStatus: control.AutomationStatus,
		CreatedAt:        control.CreatedAt,
	}
}

func ControlDTOsFromModels(controls []models.Control, frameworkCode string) []dtos.ControlDTO {
	return utils.Map(controls, func(control models.Control) dtos.ControlDTO {
		return ControlDTOFromModel(control, frameworkCode)
	})
}

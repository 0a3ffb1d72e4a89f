package dtos

import "github.com/google/uuid"

type EntitlementDTO struct {
	FrameworkID uuid.UUID `json:"frameworkId"`
	Code        string    `json:"code"`
	Name        string    `json:"name"`
	IsActive    bool      `json:"isActive"`
	IsLocked    bool      `json:"isLocked"`
}

type EntitlementListDTO struct {
	Frameworks []EntitlementDTO `json:"frameworks"`
}

type ToggleFrameworksRequest struct {
	FrameworkIDs []uuid.UUID `json:"framework_ids" validate:"required"`
}

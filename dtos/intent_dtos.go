package dtos

import "time"

type IntentPatchRequest struct {
	Status string `json:"status" validate:"required,oneof=pending in_progress completed"`
}

type IntentDTO struct {
	IntentID    string    `json:"intentId"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Status      string    `json:"status"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

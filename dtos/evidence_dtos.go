package dtos

import (
	"time"

	"github.com/google/uuid"
)

type EvidenceCreateRequest struct {
	ControlID      uuid.UUID `json:"control_id" validate:"required"`
	Title          string    `json:"title" validate:"required"`
	FilePath       string    `json:"file_path" validate:"required"`
	Description    string    `json:"description"`
	FileSize       int64     `json:"file_size"`
	FileType       string    `json:"file_type"`
	MasterIntentID *string   `json:"master_intent_id"`
}

type EvidenceDTO struct {
	ID               uuid.UUID `json:"id"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	FilePath         string    `json:"filePath"`
	FileSize         int64     `json:"fileSize"`
	FileType         string    `json:"fileType"`
	ControlID        uuid.UUID `json:"controlId"`
	MasterIntentID   *string   `json:"masterIntentId"`
	ValidationSource string    `json:"validationSource"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"createdAt"`
	// PropagatedTo is only populated on create responses when gravity ran.
	PropagatedTo int `json:"propagatedTo,omitempty"`
}

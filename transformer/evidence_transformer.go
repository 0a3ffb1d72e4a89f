package transformer

import (
	"github.com/l3montree-dev/crossguard/database/models"
	"github.com/l3montree-dev/crossguard/dtos"
)

func EvidenceCreateRequestToModel(req dtos.EvidenceCreateRequest) models.Evidence {
	return models.Evidence{
		Title:            req.Title,
		Description:      req.Description,
		FilePath:         req.FilePath,
		FileSize:         req.FileSize,
		FileType:         req.FileType,
		ControlID:        req.ControlID,
		MasterIntentID:   req.MasterIntentID,
		ValidationSource: models.ValidationSourceManualUpload,
	}
}

func EvidenceDTOFromModel(evidence models.Evidence) dtos.EvidenceDTO {
	return dtos.EvidenceDTO{
		ID:               evidence.ID,
		Title:            evidence.Title,
		Description:      evidence.Description,
		FilePath:         evidence.FilePath,
		FileSize:         evidence.FileSize,
		FileType:         evidence.FileType,
		ControlID:        evidence.ControlID,
		MasterIntentID:   evidence.MasterIntentID,
		ValidationSource: evidence.ValidationSource,
		Status:           evidence.Status,
		CreatedAt:        evidence.CreatedAt,
	}
}

package dto

import (
	"barprep_backend/internals/features/exams/exams/model"
	"barprep_backend/internals/features/exams/exams/service"
)

type ExamDTO struct {
	ExamID       string  `json:"exam_id"`
	FrontendID   string  `json:"frontend_id"`
	ExamType     string  `json:"exam_type"`
	PricingType  string  `json:"pricing_type"`
	ExamSet      *string `json:"exam_set,omitempty"`
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	Price        int64   `json:"price"`
	ExamTime     string  `json:"exam_time"`
	AttemptCount *int    `json:"attempt_count,omitempty"`
}

type UpdateExamRequest struct {
	Title        *string `json:"title" validate:"omitempty,min=3,max=200"`
	Description  *string `json:"description"`
	Price        *int64  `json:"price" validate:"omitempty,gte=0"`
	ExamTime     *string `json:"exam_time" validate:"omitempty,max=50"`
	AttemptCount *int    `json:"attempt_count" validate:"omitempty,gte=0"`
}

func ToExamDTO(e *model.ExamModel) ExamDTO {
	return ExamDTO{
		ExamID:       e.ExamID.String(),
		FrontendID:   service.FrontendExamID(e),
		ExamType:     e.ExamType,
		PricingType:  e.ExamPricingType,
		ExamSet:      e.ExamSet,
		Title:        e.ExamTitle,
		Description:  e.ExamDescription,
		Price:        e.ExamPrice,
		ExamTime:     e.ExamTime,
		AttemptCount: e.ExamAttemptCount,
	}
}

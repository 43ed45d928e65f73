package model

import (
	"time"

	"github.com/google/uuid"
)

type QuestionModel struct {
	QuestionID uuid.UUID `gorm:"column:question_id;type:uuid;default:gen_random_uuid();primaryKey" json:"question_id"`

	QuestionExamID uuid.UUID `gorm:"column:question_exam_id;type:uuid;not null;index" json:"question_exam_id"`

	QuestionText     string `gorm:"column:question_text;type:text;not null" json:"question_text"`
	QuestionPosition int    `gorm:"column:question_position;not null;default:0" json:"question_position"`

	Options []OptionModel `gorm:"foreignKey:OptionQuestionID;constraint:OnDelete:CASCADE" json:"options,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (QuestionModel) TableName() string {
	return "questions"
}

// At least one option per question must be correct; that is enforced at
// input validation, not by the database.
type OptionModel struct {
	OptionID uuid.UUID `gorm:"column:option_id;type:uuid;default:gen_random_uuid();primaryKey" json:"option_id"`

	OptionQuestionID uuid.UUID `gorm:"column:option_question_id;type:uuid;not null;index" json:"option_question_id"`

	OptionText      string `gorm:"column:option_text;type:text;not null" json:"option_text"`
	OptionIsCorrect bool   `gorm:"column:option_is_correct;not null;default:false" json:"option_is_correct"`
	OptionPosition  int    `gorm:"column:option_position;not null;default:0" json:"option_position"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (OptionModel) TableName() string {
	return "options"
}

package model

import (
	"time"

	"github.com/google/uuid"

	examModel "barprep_backend/internals/features/exams/exams/model"
)

// CartModel is one pending purchase intent per (user, exam). Rows are
// ephemeral: deleted on checkout completion (by the payment webhook) or on
// explicit removal.
type CartModel struct {
	CartID uuid.UUID `gorm:"column:cart_id;type:uuid;default:gen_random_uuid();primaryKey" json:"cart_id"`

	CartUserID uuid.UUID `gorm:"column:cart_user_id;type:uuid;not null;uniqueIndex:idx_carts_user_exam" json:"cart_user_id"`
	CartExamID uuid.UUID `gorm:"column:cart_exam_id;type:uuid;not null;uniqueIndex:idx_carts_user_exam" json:"cart_exam_id"`

	// Price snapshot at the time the exam was added.
	CartPrice int64 `gorm:"column:cart_price;not null;default:0" json:"cart_price"`

	Exam *examModel.ExamModel `gorm:"foreignKey:CartExamID" json:"exam,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (CartModel) TableName() string {
	return "carts"
}

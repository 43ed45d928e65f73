package model

import (
	"time"

	"github.com/google/uuid"
)

/* ===== Enums (mirror DB check constraints) ===== */

const (
	ExamTypeBarrister = "BARRISTER"
	ExamTypeSolicitor = "SOLICITOR"
)

const (
	PricingTypeFree = "FREE"
	PricingTypePaid = "PAID"
)

const (
	ExamSetA = "SET_A"
	ExamSetB = "SET_B"
)

// ExamModel rows are created lazily the first time the (type, pricing, set)
// triple is addressed; free exams carry a null exam_set.
type ExamModel struct {
	ExamID uuid.UUID `gorm:"column:exam_id;type:uuid;default:gen_random_uuid();primaryKey" json:"exam_id"`

	ExamType        string  `gorm:"column:exam_type;type:varchar(12);not null;uniqueIndex:idx_exams_identity" json:"exam_type"`
	ExamPricingType string  `gorm:"column:exam_pricing_type;type:varchar(6);not null;uniqueIndex:idx_exams_identity" json:"exam_pricing_type"`
	ExamSet         *string `gorm:"column:exam_set;type:varchar(8);uniqueIndex:idx_exams_identity" json:"exam_set,omitempty"`

	ExamTitle       string `gorm:"column:exam_title;type:varchar(200);not null" json:"exam_title"`
	ExamDescription string `gorm:"column:exam_description;type:text" json:"exam_description"`

	// Minor currency units (pence).
	ExamPrice int64 `gorm:"column:exam_price;not null;default:0;check:exam_price >= 0" json:"exam_price"`

	// Free-text duration shown to candidates, e.g. "2 hours 30 minutes".
	ExamTime string `gorm:"column:exam_time;type:varchar(50)" json:"exam_time"`

	// Attempts one purchase entitles a user to; null means unlimited.
	ExamAttemptCount *int `gorm:"column:exam_attempt_count" json:"exam_attempt_count,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (ExamModel) TableName() string {
	return "exams"
}

func (e *ExamModel) IsPaid() bool {
	return e.ExamPricingType == PricingTypePaid
}

// HasQuota reports whether a purchase of this exam is attempt-limited.
func (e *ExamModel) HasQuota() bool {
	return e.IsPaid() && e.ExamAttemptCount != nil && *e.ExamAttemptCount > 0
}

package model

import (
	"time"

	"github.com/google/uuid"
)

/* ===== Payment status (terminal: SUCCEEDED, FAILED) ===== */

const (
	PaymentStatusPending   = "PENDING"
	PaymentStatusSucceeded = "SUCCEEDED"
	PaymentStatusFailed    = "FAILED"
)

// PaymentModel is one-to-one with an order. The gateway intent id is
// nullable because the synchronous checkout path may persist the row before
// the gateway call returns; the webhook backfills it when needed.
type PaymentModel struct {
	PaymentID uuid.UUID `gorm:"column:payment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"payment_id"`

	PaymentOrderID uuid.UUID `gorm:"column:payment_order_id;type:uuid;not null;uniqueIndex" json:"payment_order_id"`

	PaymentAmount   int64  `gorm:"column:payment_amount;not null;check:payment_amount >= 0" json:"payment_amount"`
	PaymentCurrency string `gorm:"column:payment_currency;type:varchar(8);not null;default:'gbp'" json:"payment_currency"`

	PaymentStatus string `gorm:"column:payment_status;type:varchar(10);not null;default:'PENDING'" json:"payment_status"`

	PaymentIntentID     *string `gorm:"column:payment_intent_id;type:varchar(100);uniqueIndex" json:"payment_intent_id,omitempty"`
	PaymentClientSecret *string `gorm:"column:payment_client_secret;type:varchar(200)" json:"-"`

	PaymentPaidAt   *time.Time `gorm:"column:payment_paid_at" json:"payment_paid_at,omitempty"`
	PaymentFailedAt *time.Time `gorm:"column:payment_failed_at" json:"payment_failed_at,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (PaymentModel) TableName() string {
	return "payments"
}

func (p *PaymentModel) IsTerminal() bool {
	return p.PaymentStatus != PaymentStatusPending
}

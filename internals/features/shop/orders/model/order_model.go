package model

import (
	"time"

	"github.com/google/uuid"

	examModel "barprep_backend/internals/features/exams/exams/model"
)

/* ===== Order status (terminal: COMPLETED, CANCELLED, FAILED) ===== */

const (
	OrderStatusPending   = "PENDING"
	OrderStatusCompleted = "COMPLETED"
	OrderStatusCancelled = "CANCELLED"
	OrderStatusFailed    = "FAILED"
)

type OrderModel struct {
	OrderID uuid.UUID `gorm:"column:order_id;type:uuid;default:gen_random_uuid();primaryKey" json:"order_id"`

	OrderUserID uuid.UUID `gorm:"column:order_user_id;type:uuid;not null;index" json:"order_user_id"`

	OrderTotalAmount int64  `gorm:"column:order_total_amount;not null;check:order_total_amount >= 0" json:"order_total_amount"`
	OrderStatus      string `gorm:"column:order_status;type:varchar(10);not null;default:'PENDING'" json:"order_status"`

	// Billing snapshot at checkout time.
	OrderBillingName       string `gorm:"column:order_billing_name;type:varchar(100)" json:"order_billing_name"`
	OrderBillingEmail      string `gorm:"column:order_billing_email;type:varchar(255)" json:"order_billing_email"`
	OrderBillingPhone      string `gorm:"column:order_billing_phone;type:varchar(30)" json:"order_billing_phone"`
	OrderBillingAddress    string `gorm:"column:order_billing_address;type:varchar(255)" json:"order_billing_address"`
	OrderBillingCity       string `gorm:"column:order_billing_city;type:varchar(100)" json:"order_billing_city"`
	OrderBillingPostalCode string `gorm:"column:order_billing_postal_code;type:varchar(20)" json:"order_billing_postal_code"`
	OrderBillingCountry    string `gorm:"column:order_billing_country;type:varchar(60)" json:"order_billing_country"`

	Items []OrderItemModel `gorm:"foreignKey:OrderItemOrderID;constraint:OnDelete:CASCADE" json:"items,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (OrderModel) TableName() string {
	return "orders"
}

func (o *OrderModel) IsTerminal() bool {
	return o.OrderStatus != OrderStatusPending
}

// OrderItemModel snapshots one purchased exam's price within an order. The
// attempt quota of a paid exam is scoped to the order item that granted
// access, not to the exam as a whole.
type OrderItemModel struct {
	OrderItemID uuid.UUID `gorm:"column:order_item_id;type:uuid;default:gen_random_uuid();primaryKey" json:"order_item_id"`

	OrderItemOrderID uuid.UUID `gorm:"column:order_item_order_id;type:uuid;not null;index" json:"order_item_order_id"`
	OrderItemExamID  uuid.UUID `gorm:"column:order_item_exam_id;type:uuid;not null;index" json:"order_item_exam_id"`

	OrderItemPrice int64 `gorm:"column:order_item_price;not null" json:"order_item_price"`

	Exam *examModel.ExamModel `gorm:"foreignKey:OrderItemExamID" json:"exam,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (OrderItemModel) TableName() string {
	return "order_items"
}

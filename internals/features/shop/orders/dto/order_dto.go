package dto

import (
	"time"

	examService "barprep_backend/internals/features/exams/exams/service"
	"barprep_backend/internals/features/shop/orders/model"
)

type OrderItemDTO struct {
	OrderItemID string `json:"order_item_id"`
	ExamID      string `json:"exam_id"`
	FrontendID  string `json:"frontend_id,omitempty"`
	Title       string `json:"title,omitempty"`
	Price       int64  `json:"price"`
}

type OrderDTO struct {
	OrderID      string         `json:"order_id"`
	UserID       string         `json:"user_id"`
	TotalAmount  int64          `json:"total_amount"`
	Status       string         `json:"status"`
	BillingName  string         `json:"billing_name"`
	BillingEmail string         `json:"billing_email"`
	Items        []OrderItemDTO `json:"items"`
	CreatedAt    time.Time      `json:"created_at"`
}

func ToOrderDTO(o model.OrderModel) OrderDTO {
	items := make([]OrderItemDTO, 0, len(o.Items))
	for _, item := range o.Items {
		d := OrderItemDTO{
			OrderItemID: item.OrderItemID.String(),
			ExamID:      item.OrderItemExamID.String(),
			Price:       item.OrderItemPrice,
		}
		if item.Exam != nil {
			d.FrontendID = examService.FrontendExamID(item.Exam)
			d.Title = item.Exam.ExamTitle
		}
		items = append(items, d)
	}
	return OrderDTO{
		OrderID:      o.OrderID.String(),
		UserID:       o.OrderUserID.String(),
		TotalAmount:  o.OrderTotalAmount,
		Status:       o.OrderStatus,
		BillingName:  o.OrderBillingName,
		BillingEmail: o.OrderBillingEmail,
		Items:        items,
		CreatedAt:    o.CreatedAt,
	}
}

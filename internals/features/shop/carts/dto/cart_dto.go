package dto

import (
	"time"

	examService "barprep_backend/internals/features/exams/exams/service"
	"barprep_backend/internals/features/shop/carts/model"
)

type AddToCartRequest struct {
	ExamID string `json:"exam_id" validate:"required"` // frontend exam identifier
}

type CartItemDTO struct {
	CartID     string    `json:"cart_id"`
	FrontendID string    `json:"frontend_id"`
	Title      string    `json:"title"`
	Price      int64     `json:"price"`
	AddedAt    time.Time `json:"added_at"`
}

func ToCartItemDTO(cart model.CartModel) CartItemDTO {
	out := CartItemDTO{
		CartID:  cart.CartID.String(),
		Price:   cart.CartPrice,
		AddedAt: cart.CreatedAt,
	}
	if cart.Exam != nil {
		out.FrontendID = examService.FrontendExamID(cart.Exam)
		out.Title = cart.Exam.ExamTitle
	}
	return out
}

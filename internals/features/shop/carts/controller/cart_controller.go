package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	examService "barprep_backend/internals/features/exams/exams/service"
	"barprep_backend/internals/features/shop/carts/dto"
	"barprep_backend/internals/features/shop/carts/model"
	helper "barprep_backend/internals/helpers"
	authMiddleware "barprep_backend/internals/middlewares/auth"
)

var validateCart = validator.New()

type CartController struct {
	DB *gorm.DB
}

func NewCartController(db *gorm.DB) *CartController {
	return &CartController{DB: db}
}

// =======================
// List cart
// =======================
func (ctrl *CartController) ListCart(c *fiber.Ctx) error {
	userID, err := uuid.Parse(authMiddleware.UserID(c))
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Not signed in")
	}

	var carts []model.CartModel
	if err := ctrl.DB.Preload("Exam").
		Where("cart_user_id = ?", userID).
		Order("created_at DESC").
		Find(&carts).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch cart")
	}

	resp := make([]dto.CartItemDTO, 0, len(carts))
	var total int64
	for _, cart := range carts {
		resp = append(resp, dto.ToCartItemDTO(cart))
		total += cart.CartPrice
	}
	return helper.JsonOK(c, "", fiber.Map{
		"items": resp,
		"total": total,
	})
}

// =======================
// Add exam to cart
// =======================
func (ctrl *CartController) AddToCart(c *fiber.Ctx) error {
	userID, err := uuid.Parse(authMiddleware.UserID(c))
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Not signed in")
	}

	var body dto.AddToCartRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateCart.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	examType, pricingType, examSet, err := examService.ParseFrontendExamID(body.ExamID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Exam not found")
	}
	exam, err := examService.ResolveOrCreateExam(ctrl.DB, examType, pricingType, examSet)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to resolve exam")
	}
	if !exam.IsPaid() {
		return helper.JsonError(c, fiber.StatusBadRequest, "Free exams cannot be added to the cart")
	}

	var existing model.CartModel
	err = ctrl.DB.First(&existing, "cart_user_id = ? AND cart_exam_id = ?", userID, exam.ExamID).Error
	if err == nil {
		return helper.JsonError(c, fiber.StatusConflict, "This exam is already in your cart")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check cart")
	}

	cart := model.CartModel{
		CartUserID: userID,
		CartExamID: exam.ExamID,
		CartPrice:  exam.ExamPrice,
	}
	if err := ctrl.DB.Create(&cart).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to add to cart")
	}
	cart.Exam = exam

	return helper.JsonCreated(c, "Added to cart", dto.ToCartItemDTO(cart))
}

// =======================
// Remove one item
// =======================
func (ctrl *CartController) RemoveFromCart(c *fiber.Ctx) error {
	userID, err := uuid.Parse(authMiddleware.UserID(c))
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Not signed in")
	}

	result := ctrl.DB.Delete(&model.CartModel{}, "cart_id = ? AND cart_user_id = ?", c.Params("id"), userID)
	if result.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to remove from cart")
	}
	if result.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Cart item not found")
	}
	return helper.JsonDeleted(c, "Removed from cart", fiber.Map{"cart_id": c.Params("id")})
}

// =======================
// Clear cart
// =======================
func (ctrl *CartController) ClearCart(c *fiber.Ctx) error {
	userID, err := uuid.Parse(authMiddleware.UserID(c))
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Not signed in")
	}

	if err := ctrl.DB.Where("cart_user_id = ?", userID).
		Delete(&model.CartModel{}).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to clear cart")
	}
	return helper.JsonDeleted(c, "Cart cleared", nil)
}

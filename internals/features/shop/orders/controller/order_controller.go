package controller

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	notifModel "barprep_backend/internals/features/admin/notifications/model"
	notifService "barprep_backend/internals/features/admin/notifications/service"
	"barprep_backend/internals/features/shop/orders/dto"
	"barprep_backend/internals/features/shop/orders/model"
	helper "barprep_backend/internals/helpers"
	authMiddleware "barprep_backend/internals/middlewares/auth"
)

type OrderController struct {
	DB *gorm.DB
}

func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{DB: db}
}

// =======================
// My orders (signed-in user)
// =======================
func (ctrl *OrderController) ListMyOrders(c *fiber.Ctx) error {
	userID, err := uuid.Parse(authMiddleware.UserID(c))
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Not signed in")
	}

	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.Model(&model.OrderModel{}).
		Where("order_user_id = ?", userID).
		Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count orders")
	}

	var orders []model.OrderModel
	if err := ctrl.DB.Preload("Items.Exam").
		Where("order_user_id = ?", userID).
		Order("created_at DESC").
		Offset(paging.Offset).
		Limit(paging.Limit).
		Find(&orders).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch orders")
	}

	resp := make([]dto.OrderDTO, 0, len(orders))
	for _, o := range orders {
		resp = append(resp, dto.ToOrderDTO(o))
	}
	return helper.JsonList(c, "", resp, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

func (ctrl *OrderController) GetMyOrder(c *fiber.Ctx) error {
	userID, err := uuid.Parse(authMiddleware.UserID(c))
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Not signed in")
	}
	orderID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid order id")
	}

	var order model.OrderModel
	if err := ctrl.DB.Preload("Items.Exam").
		Where("order_id = ? AND order_user_id = ?", orderID, userID).
		First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Order not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch order")
	}
	return helper.JsonOK(c, "", dto.ToOrderDTO(order))
}

// =======================
// Admin order management
// =======================
func (ctrl *OrderController) ListOrders(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	countQ := ctrl.DB.Model(&model.OrderModel{})
	listQ := ctrl.DB.Model(&model.OrderModel{})
	if status := c.Query("status"); status != "" {
		countQ = countQ.Where("order_status = ?", status)
		listQ = listQ.Where("order_status = ?", status)
	}

	var total int64
	if err := countQ.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count orders")
	}

	var orders []model.OrderModel
	if err := listQ.Preload("Items.Exam").
		Order("created_at DESC").
		Offset(paging.Offset).
		Limit(paging.Limit).
		Find(&orders).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch orders")
	}

	resp := make([]dto.OrderDTO, 0, len(orders))
	for _, o := range orders {
		resp = append(resp, dto.ToOrderDTO(o))
	}
	return helper.JsonList(c, "", resp, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

func (ctrl *OrderController) GetOrder(c *fiber.Ctx) error {
	orderID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid order id")
	}

	var order model.OrderModel
	if err := ctrl.DB.Preload("Items.Exam").
		Where("order_id = ?", orderID).
		First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Order not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch order")
	}
	return helper.JsonOK(c, "", dto.ToOrderDTO(order))
}

// CancelOrder moves a pending order to CANCELLED. Terminal orders (completed,
// failed, already cancelled) are immutable since payments reconcile against
// them.
func (ctrl *OrderController) CancelOrder(c *fiber.Ctx) error {
	orderID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid order id")
	}

	var order model.OrderModel
	if err := ctrl.DB.Where("order_id = ?", orderID).First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Order not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch order")
	}
	if order.IsTerminal() {
		return helper.JsonError(c, fiber.StatusConflict, "Only pending orders can be cancelled")
	}

	if err := ctrl.DB.Model(&order).
		Update("order_status", model.OrderStatusCancelled).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to cancel order")
	}
	order.OrderStatus = model.OrderStatusCancelled

	notifService.RecordActivity(ctrl.DB, notifService.Activity{
		ID:          notifService.ActivityID(notifModel.ActivityTypeOrder, order.OrderID),
		Type:        notifModel.ActivityTypeOrder,
		Action:      "cancelled",
		Description: fmt.Sprintf("Order %s cancelled by admin", order.OrderID),
		Email:       order.OrderBillingEmail,
		Time:        order.UpdatedAt,
	})

	return helper.JsonUpdated(c, "Order cancelled", dto.ToOrderDTO(order))
}

package controller

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"barprep_backend/internals/features/admin/contacts/dto"
	"barprep_backend/internals/features/admin/contacts/model"
	notifModel "barprep_backend/internals/features/admin/notifications/model"
	notifService "barprep_backend/internals/features/admin/notifications/service"
	helper "barprep_backend/internals/helpers"
	"barprep_backend/internals/mailer"
)

var validateContact = validator.New()

type ContactController struct {
	DB   *gorm.DB
	Mail *mailer.Mailer
}

func NewContactController(db *gorm.DB, mail *mailer.Mailer) *ContactController {
	return &ContactController{DB: db, Mail: mail}
}

// =======================
// Submit contact message (public)
// =======================
func (ctrl *ContactController) CreateContact(c *fiber.Ctx) error {
	var req dto.CreateContactRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateContact.Struct(req); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	contact := model.ContactModel{
		ContactName:    req.Name,
		ContactEmail:   req.Email,
		ContactMessage: req.Message,
	}
	if err := ctrl.DB.Create(&contact).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save message")
	}

	notifService.RecordActivity(ctrl.DB, notifService.Activity{
		ID:          notifService.ActivityID(notifModel.ActivityTypeContact, contact.ContactID),
		Type:        notifModel.ActivityTypeContact,
		Action:      "submitted",
		Description: fmt.Sprintf("%s sent a contact message", contact.ContactName),
		User:        contact.ContactName,
		Email:       contact.ContactEmail,
		Time:        contact.CreatedAt,
	})

	if ctrl.Mail != nil {
		ctrl.Mail.Send(contact.ContactEmail,
			"We received your message",
			fmt.Sprintf("Hi %s,\n\nThanks for getting in touch. We aim to reply within two working days.", contact.ContactName))
	}

	return helper.JsonCreated(c, "Message received", dto.ToContactDTO(contact))
}

// =======================
// Read one message (public, id acts as the receipt)
// =======================
func (ctrl *ContactController) GetContact(c *fiber.Ctx) error {
	contactID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid contact id")
	}

	var contact model.ContactModel
	if err := ctrl.DB.Where("contact_id = ?", contactID).First(&contact).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Message not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch message")
	}
	return helper.JsonOK(c, "", dto.ToContactDTO(contact))
}

// =======================
// Admin inbox
// =======================
func (ctrl *ContactController) ListContacts(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.ContactModel{})
	if c.Query("unread") == "true" {
		q = q.Where("contact_is_read = false")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count messages")
	}

	var contacts []model.ContactModel
	if err := q.Order("created_at DESC").
		Offset(paging.Offset).
		Limit(paging.Limit).
		Find(&contacts).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch messages")
	}

	resp := make([]dto.ContactDTO, 0, len(contacts))
	for _, ct := range contacts {
		resp = append(resp, dto.ToContactDTO(ct))
	}
	return helper.JsonList(c, "", resp, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

func (ctrl *ContactController) UpdateContact(c *fiber.Ctx) error {
	contactID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid contact id")
	}

	var req dto.UpdateContactRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateContact.Struct(req); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	var contact model.ContactModel
	if err := ctrl.DB.Where("contact_id = ?", contactID).First(&contact).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Message not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch message")
	}

	if err := ctrl.DB.Model(&contact).
		Update("contact_is_read", *req.IsRead).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update message")
	}
	contact.ContactIsRead = *req.IsRead

	return helper.JsonUpdated(c, "Message updated", dto.ToContactDTO(contact))
}

func (ctrl *ContactController) DeleteContact(c *fiber.Ctx) error {
	contactID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid contact id")
	}

	res := ctrl.DB.Where("contact_id = ?", contactID).Delete(&model.ContactModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete message")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Message not found")
	}
	return helper.JsonDeleted(c, "Message deleted", fiber.Map{"contact_id": contactID})
}

package service

import (
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	contactModel "barprep_backend/internals/features/admin/contacts/model"
	"barprep_backend/internals/features/admin/notifications/model"
	attemptModel "barprep_backend/internals/features/exams/attempts/model"
	questionModel "barprep_backend/internals/features/exams/questions/model"
	orderModel "barprep_backend/internals/features/shop/orders/model"
	paymentModel "barprep_backend/internals/features/shop/payments/model"
	userModel "barprep_backend/internals/features/users/user/model"
)

// CollectActivities reads every source table whole and projects the rows
// into the common activity shape. There is no time-windowing and no
// DB-side pagination: the feed is assembled in memory on each call.
func CollectActivities(db *gorm.DB) ([]Activity, error) {
	var users []userModel.UserModel
	if err := db.Find(&users).Error; err != nil {
		return nil, fmt.Errorf("collect users: %w", err)
	}

	userByID := make(map[uuid.UUID]userModel.UserModel, len(users))
	for _, u := range users {
		userByID[u.UserID] = u
	}

	var questions []questionModel.QuestionModel
	if err := db.Find(&questions).Error; err != nil {
		return nil, fmt.Errorf("collect questions: %w", err)
	}

	var orders []orderModel.OrderModel
	if err := db.Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("collect orders: %w", err)
	}

	orderByID := make(map[uuid.UUID]orderModel.OrderModel, len(orders))
	for _, o := range orders {
		orderByID[o.OrderID] = o
	}

	var payments []paymentModel.PaymentModel
	if err := db.Find(&payments).Error; err != nil {
		return nil, fmt.Errorf("collect payments: %w", err)
	}

	var attempts []attemptModel.ExamAttemptModel
	if err := db.Find(&attempts).Error; err != nil {
		return nil, fmt.Errorf("collect attempts: %w", err)
	}

	var contacts []contactModel.ContactModel
	if err := db.Find(&contacts).Error; err != nil {
		return nil, fmt.Errorf("collect contacts: %w", err)
	}

	out := make([]Activity, 0,
		len(users)+len(questions)+len(orders)+len(payments)+len(attempts)+len(contacts))

	for _, u := range users {
		out = append(out, Activity{
			ID:          ActivityID(model.ActivityTypeUser, u.UserID),
			Type:        model.ActivityTypeUser,
			Action:      "registered",
			Description: fmt.Sprintf("%s created an account", u.UserName),
			User:        u.UserName,
			Email:       u.UserEmail,
			Time:        u.CreatedAt,
		})
	}

	for _, q := range questions {
		out = append(out, Activity{
			ID:          ActivityID(model.ActivityTypeQuestion, q.QuestionID),
			Type:        model.ActivityTypeQuestion,
			Action:      "added",
			Description: "A question was added to an exam",
			Metadata: map[string]any{
				"exam_id": q.QuestionExamID.String(),
			},
			Time: q.CreatedAt,
		})
	}

	for _, o := range orders {
		buyer := userByID[o.OrderUserID]
		out = append(out, Activity{
			ID:          ActivityID(model.ActivityTypeOrder, o.OrderID),
			Type:        model.ActivityTypeOrder,
			Action:      strings.ToLower(o.OrderStatus),
			Description: fmt.Sprintf("Order %s is %s", shortID(o.OrderID), strings.ToLower(o.OrderStatus)),
			User:        buyer.UserName,
			Email:       buyer.UserEmail,
			Metadata: map[string]any{
				"order_id":     o.OrderID.String(),
				"total_amount": o.OrderTotalAmount,
			},
			Time: o.UpdatedAt,
		})
	}

	for _, p := range payments {
		order := orderByID[p.PaymentOrderID]
		buyer := userByID[order.OrderUserID]
		out = append(out, Activity{
			ID:          ActivityID(model.ActivityTypePayment, p.PaymentID),
			Type:        model.ActivityTypePayment,
			Action:      strings.ToLower(p.PaymentStatus),
			Description: fmt.Sprintf("Payment of %d %s is %s", p.PaymentAmount, strings.ToUpper(p.PaymentCurrency), strings.ToLower(p.PaymentStatus)),
			User:        buyer.UserName,
			Email:       buyer.UserEmail,
			Metadata: map[string]any{
				"payment_id": p.PaymentID.String(),
				"order_id":   p.PaymentOrderID.String(),
			},
			Time: p.UpdatedAt,
		})
	}

	for _, a := range attempts {
		candidate := userByID[a.AttemptUserID]
		out = append(out, Activity{
			ID:          ActivityID(model.ActivityTypeAttempt, a.AttemptID),
			Type:        model.ActivityTypeAttempt,
			Action:      "submitted",
			Description: fmt.Sprintf("%s scored %.1f%% on an exam", candidate.UserName, a.AttemptScore),
			User:        candidate.UserName,
			Email:       candidate.UserEmail,
			Metadata: map[string]any{
				"attempt_id": a.AttemptID.String(),
				"exam_id":    a.AttemptExamID.String(),
				"score":      a.AttemptScore,
			},
			Time: a.AttemptSubmittedAt,
		})
	}

	for _, ct := range contacts {
		out = append(out, Activity{
			ID:          ActivityID(model.ActivityTypeContact, ct.ContactID),
			Type:        model.ActivityTypeContact,
			Action:      "submitted",
			Description: fmt.Sprintf("%s sent a contact message", ct.ContactName),
			User:        ct.ContactName,
			Email:       ct.ContactEmail,
			Time:        ct.CreatedAt,
		})
	}

	return out, nil
}

func shortID(id uuid.UUID) string {
	return id.String()[:8]
}

// UpsertActivity persists one notification keyed by its activity id.
func UpsertActivity(db *gorm.DB, act Activity) error {
	row := model.NotificationModel{
		NotificationActivityID:  act.ID,
		NotificationType:        act.Type,
		NotificationAction:      act.Action,
		NotificationDescription: act.Description,
		NotificationUserName:    act.User,
		NotificationUserEmail:   act.Email,
		NotificationMetadata:    datatypes.JSONMap(act.Metadata),
		NotificationActivityAt:  act.Time,
	}
	return db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "notification_activity_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"notification_action",
			"notification_description",
			"notification_user_name",
			"notification_user_email",
			"notification_metadata",
			"notification_activity_at",
		}),
	}).Create(&row).Error
}

// RecordActivity is the fire-and-forget variant used as a side effect by the
// submission and webhook paths. Notification failures must never abort the
// operation they are attached to, so errors are logged and dropped.
func RecordActivity(db *gorm.DB, act Activity) {
	if err := UpsertActivity(db, act); err != nil {
		log.Printf("[ERROR] record activity %s: %v", act.ID, err)
	}
}

// SyncNotifications aggregates the live feed and upserts one notification
// row per activity. Safe to run repeatedly.
func SyncNotifications(db *gorm.DB) (int, error) {
	activities, err := CollectActivities(db)
	if err != nil {
		return 0, err
	}
	synced := 0
	for _, act := range activities {
		if err := UpsertActivity(db, act); err != nil {
			log.Printf("[ERROR] sync activity %s: %v", act.ID, err)
			continue
		}
		synced++
	}
	return synced, nil
}

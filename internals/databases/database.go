package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"barprep_backend/internals/configs"
	contactModel "barprep_backend/internals/features/admin/contacts/model"
	notificationModel "barprep_backend/internals/features/admin/notifications/model"
	attemptModel "barprep_backend/internals/features/exams/attempts/model"
	examModel "barprep_backend/internals/features/exams/exams/model"
	questionModel "barprep_backend/internals/features/exams/questions/model"
	cartModel "barprep_backend/internals/features/shop/carts/model"
	orderModel "barprep_backend/internals/features/shop/orders/model"
	paymentModel "barprep_backend/internals/features/shop/payments/model"
	userModel "barprep_backend/internals/features/users/user/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("[INFO] Connecting to PostgreSQL...")

	sslmode := configs.GetEnv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=barprep&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // keeps PgBouncer transaction pooling happy
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
	if err != nil {
		log.Fatalf("[ERROR] DB connection failed: %v", err)
	}
	DB = db
	log.Println("[INFO] DB connected.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("[WARN] pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// Migrate keeps the schema in sync with the models. Exam rows themselves are
// never seeded here; they are created lazily on first access.
func Migrate() {
	err := DB.AutoMigrate(
		&userModel.UserModel{},
		&examModel.ExamModel{},
		&questionModel.QuestionModel{},
		&questionModel.OptionModel{},
		&cartModel.CartModel{},
		&orderModel.OrderModel{},
		&orderModel.OrderItemModel{},
		&paymentModel.PaymentModel{},
		&attemptModel.ExamAttemptModel{},
		&notificationModel.NotificationModel{},
		&contactModel.ContactModel{},
	)
	if err != nil {
		log.Fatalf("[ERROR] migration failed: %v", err)
	}
	log.Println("[INFO] Migration complete.")
}

func WarmUpQueries() {
	go func() {
		time.Sleep(500 * time.Millisecond)
		if err := ping(); err != nil {
			log.Printf("[WARN] warm-up ping err: %v", err)
		}
	}()
}

func ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

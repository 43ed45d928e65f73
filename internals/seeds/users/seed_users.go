package users

import (
	"encoding/json"
	"log"
	"os"

	"gorm.io/gorm"

	authService "barprep_backend/internals/features/users/auth/service"
	"barprep_backend/internals/features/users/user/model"
)

type UserSeed struct {
	UserName string `json:"user_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// SeedUsersFromJSON loads bootstrap accounts (typically the first admin).
// Existing emails are skipped, so the seed is safe to rerun.
func SeedUsersFromJSON(db *gorm.DB, filePath string) {
	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("[ERROR] read user seed %s: %v", filePath, err)
	}

	var inputs []UserSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Fatalf("[ERROR] decode user seed: %v", err)
	}

	for _, data := range inputs {
		var existing model.UserModel
		if err := db.Where("user_email = ?", data.Email).First(&existing).Error; err == nil {
			log.Printf("[INFO] user %s already exists, skipped", data.Email)
			continue
		}

		hash, err := authService.HashPassword(data.Password)
		if err != nil {
			log.Printf("[ERROR] hash password for %s: %v", data.Email, err)
			continue
		}

		role := data.Role
		if role == "" {
			role = "USER"
		}
		user := model.UserModel{
			UserName:         data.UserName,
			UserEmail:        data.Email,
			UserPasswordHash: &hash,
			UserRole:         role,
		}
		if err := db.Create(&user).Error; err != nil {
			log.Printf("[ERROR] seed user %s: %v", data.Email, err)
			continue
		}
		log.Printf("[INFO] seeded user %s (%s)", data.Email, role)
	}
}

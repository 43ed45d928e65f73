package seeds

import (
	"gorm.io/gorm"

	seedExams "barprep_backend/internals/seeds/exams"
	seedUsers "barprep_backend/internals/seeds/users"
)

// RunAllSeeds bootstraps a fresh database: the first admin account plus a
// starter question bank. Every seeder is idempotent.
func RunAllSeeds(db *gorm.DB) {
	seedUsers.SeedUsersFromJSON(db, "internals/seeds/users/data_users.json")
	seedExams.SeedQuestionsFromJSON(db, "internals/seeds/exams/data_questions.json")
}

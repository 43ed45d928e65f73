package exams

import (
	"encoding/json"
	"log"
	"os"

	"gorm.io/gorm"

	examService "barprep_backend/internals/features/exams/exams/service"
	questionModel "barprep_backend/internals/features/exams/questions/model"
)

type OptionSeed struct {
	Text      string `json:"text"`
	IsCorrect bool   `json:"is_correct"`
}

type QuestionSeed struct {
	ExamID   string       `json:"exam_id"` // frontend slug, e.g. barrister-paid-set-a
	Text     string       `json:"text"`
	Options  []OptionSeed `json:"options"`
	Position int          `json:"position"`
}

// SeedQuestionsFromJSON populates exams with a starter question bank. Exams
// are resolved (created if absent) from the slug in each entry; a question
// whose text already exists on the exam is skipped.
func SeedQuestionsFromJSON(db *gorm.DB, filePath string) {
	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("[ERROR] read question seed %s: %v", filePath, err)
	}

	var inputs []QuestionSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Fatalf("[ERROR] decode question seed: %v", err)
	}

	for _, data := range inputs {
		examType, pricingType, examSet, err := examService.ParseFrontendExamID(data.ExamID)
		if err != nil {
			log.Printf("[ERROR] seed question: %v", err)
			continue
		}
		exam, err := examService.ResolveOrCreateExam(db, examType, pricingType, examSet)
		if err != nil {
			log.Printf("[ERROR] seed question: resolve exam %s: %v", data.ExamID, err)
			continue
		}

		var existing questionModel.QuestionModel
		if err := db.Where("question_exam_id = ? AND question_text = ?", exam.ExamID, data.Text).
			First(&existing).Error; err == nil {
			continue
		}

		question := questionModel.QuestionModel{
			QuestionExamID:   exam.ExamID,
			QuestionText:     data.Text,
			QuestionPosition: data.Position,
		}
		for i, opt := range data.Options {
			question.Options = append(question.Options, questionModel.OptionModel{
				OptionText:      opt.Text,
				OptionIsCorrect: opt.IsCorrect,
				OptionPosition:  i,
			})
		}
		if err := db.Create(&question).Error; err != nil {
			log.Printf("[ERROR] seed question on %s: %v", data.ExamID, err)
			continue
		}
	}
	log.Printf("[INFO] question seed %s applied", filePath)
}

package dto

import (
	"testing"

	"github.com/google/uuid"

	"barprep_backend/internals/features/exams/questions/model"
)

func TestHasCorrectOption(t *testing.T) {
	if HasCorrectOption(nil) {
		t.Error("empty option list reported a correct option")
	}
	if HasCorrectOption([]OptionInput{{Text: "a"}, {Text: "b"}}) {
		t.Error("all-incorrect options reported a correct option")
	}
	if !HasCorrectOption([]OptionInput{{Text: "a"}, {Text: "b", IsCorrect: true}}) {
		t.Error("correct option not found")
	}
}

func TestTakeQuestionDTOHidesCorrectness(t *testing.T) {
	q := model.QuestionModel{
		QuestionID:   uuid.New(),
		QuestionText: "Which court hears first-instance criminal trials?",
		Options: []model.OptionModel{
			{OptionID: uuid.New(), OptionText: "Crown Court", OptionIsCorrect: true, OptionPosition: 0},
			{OptionID: uuid.New(), OptionText: "Court of Appeal", OptionPosition: 1},
		},
	}

	take := ToTakeQuestionDTO(q)
	if len(take.Options) != 2 {
		t.Fatalf("options = %d, want 2", len(take.Options))
	}
	// TakeOptionDTO has no correctness field at all; the most a test can
	// assert is that the visible fields carried over.
	if take.Options[0].Text != "Crown Court" || take.Options[1].Position != 1 {
		t.Errorf("take view lost option data: %+v", take.Options)
	}

	admin := ToQuestionDTO(q)
	if !admin.Options[0].IsCorrect || admin.Options[1].IsCorrect {
		t.Errorf("admin view correctness wrong: %+v", admin.Options)
	}
}

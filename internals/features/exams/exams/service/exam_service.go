package service

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"barprep_backend/internals/features/exams/exams/model"
)

var ErrInvalidExamIdentity = errors.New("invalid exam identity")

// ResolveOrCreateExam is the single path that creates exam rows. Every
// endpoint addressing an exam by its (type, pricing, set) triple goes
// through here instead of duplicating get-or-create logic.
func ResolveOrCreateExam(db *gorm.DB, examType, pricingType string, examSet *string) (*model.ExamModel, error) {
	examType = strings.ToUpper(strings.TrimSpace(examType))
	pricingType = strings.ToUpper(strings.TrimSpace(pricingType))

	if err := validateIdentity(examType, pricingType, examSet); err != nil {
		return nil, err
	}

	cond := map[string]any{
		"exam_type":         examType,
		"exam_pricing_type": pricingType,
	}
	if examSet != nil {
		cond["exam_set"] = *examSet
	} else {
		cond["exam_set"] = nil
	}

	exam := model.ExamModel{
		ExamType:        examType,
		ExamPricingType: pricingType,
		ExamSet:         examSet,
		ExamTitle:       defaultTitle(examType, pricingType, examSet),
	}
	if err := db.Where(cond).FirstOrCreate(&exam).Error; err != nil {
		return nil, err
	}
	return &exam, nil
}

func validateIdentity(examType, pricingType string, examSet *string) error {
	switch examType {
	case model.ExamTypeBarrister, model.ExamTypeSolicitor:
	default:
		return fmt.Errorf("%w: exam type %q", ErrInvalidExamIdentity, examType)
	}

	switch pricingType {
	case model.PricingTypeFree:
		if examSet != nil {
			return fmt.Errorf("%w: free exams have no set", ErrInvalidExamIdentity)
		}
	case model.PricingTypePaid:
		if examSet == nil {
			return fmt.Errorf("%w: paid exams need a set", ErrInvalidExamIdentity)
		}
		if *examSet != model.ExamSetA && *examSet != model.ExamSetB {
			return fmt.Errorf("%w: exam set %q", ErrInvalidExamIdentity, *examSet)
		}
	default:
		return fmt.Errorf("%w: pricing type %q", ErrInvalidExamIdentity, pricingType)
	}
	return nil
}

func defaultTitle(examType, pricingType string, examSet *string) string {
	name := strings.ToLower(examType)
	name = strings.ToUpper(name[:1]) + name[1:]
	title := name + " Practice Exam"
	if pricingType == model.PricingTypeFree {
		return title + " (Free)"
	}
	if examSet != nil {
		set := strings.ReplaceAll(*examSet, "SET_", "Set ")
		return title + " " + set
	}
	return title
}

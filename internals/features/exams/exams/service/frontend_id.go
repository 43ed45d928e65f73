package service

import (
	"fmt"
	"strings"

	"barprep_backend/internals/features/exams/exams/model"
)

// Frontend exam identifiers are the slugs the web client addresses exams by:
//
//	barrister-free
//	solicitor-free
//	barrister-paid-set-a
//	solicitor-paid-set-b
//
// They encode the same (type, pricing, set) triple that identifies an exam
// row.

// ParseFrontendExamID maps a slug to the exam identity triple.
func ParseFrontendExamID(id string) (examType, pricingType string, examSet *string, err error) {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(id)), "-")

	if len(parts) == 2 && parts[1] == "free" {
		examType, err = parseExamType(parts[0])
		if err != nil {
			return "", "", nil, err
		}
		return examType, model.PricingTypeFree, nil, nil
	}

	if len(parts) == 4 && parts[1] == "paid" && parts[2] == "set" {
		examType, err = parseExamType(parts[0])
		if err != nil {
			return "", "", nil, err
		}
		var set string
		switch parts[3] {
		case "a":
			set = model.ExamSetA
		case "b":
			set = model.ExamSetB
		default:
			return "", "", nil, fmt.Errorf("%w: unknown set %q", ErrInvalidExamIdentity, parts[3])
		}
		return examType, model.PricingTypePaid, &set, nil
	}

	return "", "", nil, fmt.Errorf("%w: %q", ErrInvalidExamIdentity, id)
}

// FrontendExamID is the inverse of ParseFrontendExamID.
func FrontendExamID(exam *model.ExamModel) string {
	base := strings.ToLower(exam.ExamType)
	if exam.ExamPricingType == model.PricingTypeFree {
		return base + "-free"
	}
	set := ""
	if exam.ExamSet != nil {
		set = strings.ToLower(strings.ReplaceAll(*exam.ExamSet, "_", "-"))
	}
	return base + "-paid-" + set
}

func parseExamType(s string) (string, error) {
	switch s {
	case "barrister":
		return model.ExamTypeBarrister, nil
	case "solicitor":
		return model.ExamTypeSolicitor, nil
	default:
		return "", fmt.Errorf("%w: unknown exam type %q", ErrInvalidExamIdentity, s)
	}
}

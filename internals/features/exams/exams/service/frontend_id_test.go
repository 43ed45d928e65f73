package service

import (
	"errors"
	"testing"

	"barprep_backend/internals/features/exams/exams/model"
)

func TestParseFrontendExamID(t *testing.T) {
	setA := model.ExamSetA
	setB := model.ExamSetB

	cases := []struct {
		id      string
		examT   string
		pricing string
		set     *string
	}{
		{"barrister-free", model.ExamTypeBarrister, model.PricingTypeFree, nil},
		{"solicitor-free", model.ExamTypeSolicitor, model.PricingTypeFree, nil},
		{"barrister-paid-set-a", model.ExamTypeBarrister, model.PricingTypePaid, &setA},
		{"solicitor-paid-set-b", model.ExamTypeSolicitor, model.PricingTypePaid, &setB},
		{"  Barrister-Free  ", model.ExamTypeBarrister, model.PricingTypeFree, nil},
	}

	for _, tc := range cases {
		t.Run(tc.id, func(t *testing.T) {
			examT, pricing, set, err := ParseFrontendExamID(tc.id)
			if err != nil {
				t.Fatalf("ParseFrontendExamID(%q): %v", tc.id, err)
			}
			if examT != tc.examT || pricing != tc.pricing {
				t.Errorf("got (%s, %s), want (%s, %s)", examT, pricing, tc.examT, tc.pricing)
			}
			switch {
			case tc.set == nil && set != nil:
				t.Errorf("set = %q, want nil", *set)
			case tc.set != nil && (set == nil || *set != *tc.set):
				t.Errorf("set = %v, want %q", set, *tc.set)
			}
		})
	}
}

func TestParseFrontendExamIDRejectsGarbage(t *testing.T) {
	for _, id := range []string{
		"",
		"barrister",
		"judge-free",
		"barrister-paid",
		"barrister-paid-set-c",
		"barrister-free-set-a",
		"barrister-paid-bundle-a",
	} {
		if _, _, _, err := ParseFrontendExamID(id); !errors.Is(err, ErrInvalidExamIdentity) {
			t.Errorf("ParseFrontendExamID(%q) = %v, want ErrInvalidExamIdentity", id, err)
		}
	}
}

func TestFrontendExamIDRoundTrip(t *testing.T) {
	for _, id := range []string{
		"barrister-free",
		"solicitor-free",
		"barrister-paid-set-a",
		"solicitor-paid-set-b",
	} {
		examT, pricing, set, err := ParseFrontendExamID(id)
		if err != nil {
			t.Fatalf("parse %q: %v", id, err)
		}
		exam := &model.ExamModel{
			ExamType:        examT,
			ExamPricingType: pricing,
			ExamSet:         set,
		}
		if got := FrontendExamID(exam); got != id {
			t.Errorf("FrontendExamID = %q, want %q", got, id)
		}
	}
}

package service

import (
	"errors"
	"testing"

	"barprep_backend/internals/features/exams/exams/model"
)

func TestValidateIdentity(t *testing.T) {
	setA := model.ExamSetA
	bogus := "SET_Z"

	cases := []struct {
		name    string
		examT   string
		pricing string
		set     *string
		ok      bool
	}{
		{"free barrister", model.ExamTypeBarrister, model.PricingTypeFree, nil, true},
		{"paid solicitor set a", model.ExamTypeSolicitor, model.PricingTypePaid, &setA, true},
		{"free with set", model.ExamTypeBarrister, model.PricingTypeFree, &setA, false},
		{"paid without set", model.ExamTypeBarrister, model.PricingTypePaid, nil, false},
		{"paid unknown set", model.ExamTypeBarrister, model.PricingTypePaid, &bogus, false},
		{"unknown type", "JUDGE", model.PricingTypeFree, nil, false},
		{"unknown pricing", model.ExamTypeBarrister, "TRIAL", nil, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := validateIdentity(tc.examT, tc.pricing, tc.set)
			if tc.ok && err != nil {
				t.Fatalf("validateIdentity: %v", err)
			}
			if !tc.ok && !errors.Is(err, ErrInvalidExamIdentity) {
				t.Fatalf("validateIdentity = %v, want ErrInvalidExamIdentity", err)
			}
		})
	}
}

func TestDefaultTitle(t *testing.T) {
	setB := model.ExamSetB

	if got := defaultTitle(model.ExamTypeBarrister, model.PricingTypeFree, nil); got != "Barrister Practice Exam (Free)" {
		t.Errorf("free title = %q", got)
	}
	if got := defaultTitle(model.ExamTypeSolicitor, model.PricingTypePaid, &setB); got != "Solicitor Practice Exam Set B" {
		t.Errorf("paid title = %q", got)
	}
}

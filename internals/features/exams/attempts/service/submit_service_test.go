package service

import (
	"strings"
	"testing"
)

func TestValidateTotals(t *testing.T) {
	base := SubmitInput{
		TotalQuestions:  20,
		AnsweredCount:   18,
		CorrectCount:    12,
		IncorrectCount:  6,
		UnansweredCount: 2,
		Score:           60,
	}

	if err := ValidateTotals(base); err != nil {
		t.Fatalf("valid input rejected: %v", err)
	}

	cases := []struct {
		name    string
		mutate  func(*SubmitInput)
		wantMsg string
	}{
		{
			"answered mismatch",
			func(in *SubmitInput) { in.UnansweredCount = 5 },
			"must equal total",
		},
		{
			"correctness mismatch",
			func(in *SubmitInput) { in.CorrectCount = 13 },
			"must equal answered",
		},
		{
			"score below range",
			func(in *SubmitInput) { in.Score = -1 },
			"out of range",
		},
		{
			"score above range",
			func(in *SubmitInput) { in.Score = 100.5 },
			"out of range",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := base
			tc.mutate(&in)
			err := ValidateTotals(in)
			if err == nil {
				t.Fatal("invalid input accepted")
			}
			if !strings.Contains(err.Error(), tc.wantMsg) {
				t.Errorf("error %q does not mention %q", err, tc.wantMsg)
			}
		})
	}
}

func TestValidateTotalsAllUnanswered(t *testing.T) {
	in := SubmitInput{
		TotalQuestions:  10,
		UnansweredCount: 10,
		Score:           0,
	}
	if err := ValidateTotals(in); err != nil {
		t.Fatalf("fully skipped paper rejected: %v", err)
	}
}

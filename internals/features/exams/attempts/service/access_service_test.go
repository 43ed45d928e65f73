package service

import "testing"

func intPtr(n int) *int { return &n }

func TestRemainingAttempts(t *testing.T) {
	cases := []struct {
		name  string
		count *int
		used  int64
		want  *int
	}{
		{"unlimited when nil", nil, 5, nil},
		{"unlimited when zero", intPtr(0), 5, nil},
		{"fresh quota", intPtr(3), 0, intPtr(3)},
		{"partially used", intPtr(3), 2, intPtr(1)},
		{"exhausted", intPtr(3), 3, intPtr(0)},
		{"clamped at zero", intPtr(3), 7, intPtr(0)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := RemainingAttempts(tc.count, tc.used)
			switch {
			case tc.want == nil && got != nil:
				t.Fatalf("RemainingAttempts = %d, want nil", *got)
			case tc.want != nil && got == nil:
				t.Fatalf("RemainingAttempts = nil, want %d", *tc.want)
			case tc.want != nil && *got != *tc.want:
				t.Fatalf("RemainingAttempts = %d, want %d", *got, *tc.want)
			}
		})
	}
}

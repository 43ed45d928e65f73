package helper

import "testing"

func TestBuildPaginationFromPage(t *testing.T) {
	cases := []struct {
		name       string
		total      int64
		page       int
		perPage    int
		totalPages int
		hasNext    bool
		hasPrev    bool
	}{
		{"first of three", 50, 1, 20, 3, true, false},
		{"middle", 50, 2, 20, 3, true, true},
		{"last partial", 50, 3, 20, 3, false, true},
		{"empty", 0, 1, 20, 1, false, false},
		{"exact fit", 40, 2, 20, 2, false, true},
		{"defaults on zero", 5, 0, 0, 1, false, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := BuildPaginationFromPage(tc.total, tc.page, tc.perPage)
			if p.TotalPages != tc.totalPages {
				t.Errorf("TotalPages = %d, want %d", p.TotalPages, tc.totalPages)
			}
			if p.HasNext != tc.hasNext {
				t.Errorf("HasNext = %v, want %v", p.HasNext, tc.hasNext)
			}
			if p.HasPrev != tc.hasPrev {
				t.Errorf("HasPrev = %v, want %v", p.HasPrev, tc.hasPrev)
			}
			if p.Total != tc.total {
				t.Errorf("Total = %d, want %d", p.Total, tc.total)
			}
		})
	}
}

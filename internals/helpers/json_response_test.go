package helper

import "testing"

func TestBuildPagination(t *testing.T) {
	tests := []struct {
		name      string
		total     int64
		page      int
		limit     int
		wantPages int
	}{
		{"pas habis dibagi", 40, 1, 20, 2},
		{"sisa satu halaman", 41, 1, 20, 3},
		{"kosong tetap satu halaman", 0, 1, 20, 1},
		{"satu item", 1, 1, 20, 1},
		{"limit nol jatuh ke default", 100, 1, 0, 5},
		{"page nol dinormalisasi", 10, 0, 10, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := BuildPagination(tt.total, tt.page, tt.limit)
			if p.TotalPages != tt.wantPages {
				t.Errorf("TotalPages = %d, want %d", p.TotalPages, tt.wantPages)
			}
			if p.Total != tt.total {
				t.Errorf("Total = %d, want %d", p.Total, tt.total)
			}
			if p.Page < 1 {
				t.Errorf("Page harus >= 1, got %d", p.Page)
			}
		})
	}
}

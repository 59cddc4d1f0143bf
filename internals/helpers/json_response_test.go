package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPagination(t *testing.T) {
	tests := []struct {
		name       string
		total      int64
		page       int
		perPage    int
		wantPages  int
		wantNext   bool
		wantPrev   bool
	}{
		{"halaman pertama dari tiga", 50, 1, 20, 3, true, false},
		{"halaman tengah", 50, 2, 20, 3, true, true},
		{"halaman terakhir pas", 60, 3, 20, 3, false, true},
		{"data kosong tetap satu halaman", 0, 1, 20, 1, false, false},
		{"perPage nol pakai default", 40, 1, 0, 2, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := BuildPagination(tt.total, tt.page, tt.perPage)
			assert.Equal(t, tt.wantPages, p.TotalPages)
			assert.Equal(t, tt.wantNext, p.HasNext)
			assert.Equal(t, tt.wantPrev, p.HasPrev)
			assert.Equal(t, tt.total, p.Total)
		})
	}
}

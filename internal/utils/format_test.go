package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/warungdigital/warung-backend/internal/utils"
)

func TestFormatRupiah(t *testing.T) {
	assert.Equal(t, "Rp 15000", utils.FormatRupiah(15000))
	assert.Equal(t, "Rp 50000", utils.FormatRupiah(50000))
	assert.Equal(t, "Rp 0", utils.FormatRupiah(0))
}

func TestTitleCaseName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"budi", "Budi"},
		{"budi santoso", "Budi Santoso"},
		{"  SITI aminah  ", "Siti Aminah"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, utils.TitleCaseName(tt.in))
	}
}

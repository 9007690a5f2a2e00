package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateOTP(t *testing.T) {
	otp := GenerateOTP()
	assert.Len(t, otp, 6)
	for _, ch := range otp {
		assert.True(t, ch >= '0' && ch <= '9')
	}
}

func TestGetFileURL(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{"empty path", "", ""},
		{"saved thumbnail", "public/thumbnails/abc.png", "/thumbnails/abc.png"},
		{"explicit relative prefix", "./public/thumbnails/abc.png", "/thumbnails/abc.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetFileURL(tt.path))
		})
	}
}

func TestRoundPercent(t *testing.T) {
	tests := []struct {
		name      string
		completed int64
		total     int64
		want      int
	}{
		{"empty module", 0, 0, 0},
		{"nothing done", 0, 8, 0},
		{"everything done", 8, 8, 100},
		{"one of three rounds down", 1, 3, 33},
		{"two of three rounds up", 2, 3, 67},
		{"exact half rounds up", 1, 2, 50},
		{"five of eight", 5, 8, 63},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RoundPercent(tt.completed, tt.total))
		})
	}
}

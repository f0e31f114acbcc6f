package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBumpMemberNumber(t *testing.T) {
	tests := []struct {
		last string
		want string
	}{
		{"", "M0001"},
		{"M0001", "M0002"},
		{"M0099", "M0100"},
		{"M9999", "M10000"},
		{"M10000", "M10001"},
		{"M123456", "M123457"},
	}
	for _, tt := range tests {
		t.Run(tt.last+"->"+tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, bumpMemberNumber(tt.last))
		})
	}
}

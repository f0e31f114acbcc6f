package helper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{"date only", "2024-03-15", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)},
		{"rfc3339", "2024-03-15T10:30:00Z", time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)},
		{"no zone", "2024-03-15T10:30:00", time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)},
		{"padded", "  2024-03-15  ", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got))
		})
	}
}

func TestParseDateRejectsGarbage(t *testing.T) {
	for _, input := range []string{"", "   ", "15/03/2024", "yesterday", "2024-13-01"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseDate(input)
			assert.ErrorIs(t, err, ErrBadDate)
		})
	}
}

func TestDayBounds(t *testing.T) {
	in := time.Date(2024, 3, 15, 14, 22, 5, 123, time.UTC)
	start, end := DayBounds(in)

	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), start)
	assert.True(t, end.Before(time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC)))
	assert.True(t, end.After(time.Date(2024, 3, 15, 23, 59, 59, 0, time.UTC)))
}

func TestDayBoundsNormalizesZone(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*3600)
	in := time.Date(2024, 3, 15, 2, 0, 0, 0, loc) // 2024-03-14T21:00Z

	start, _ := DayBounds(in)
	assert.Equal(t, time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC), start)
}

package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRunAt(t *testing.T) {
	hour, minute, err := parseRunAt("07:00")
	require.NoError(t, err)
	assert.Equal(t, 7, hour)
	assert.Equal(t, 0, minute)

	hour, minute, err = parseRunAt("23:45")
	require.NoError(t, err)
	assert.Equal(t, 23, hour)
	assert.Equal(t, 45, minute)
}

func TestParseRunAt_Invalid(t *testing.T) {
	_, _, err := parseRunAt("7am")
	assert.Error(t, err)

	_, _, err = parseRunAt("25:00")
	assert.Error(t, err)
}

func TestNextRunAfter(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{
			name: "before today's run fires today",
			now:  time.Date(2024, 3, 15, 5, 30, 0, 0, time.UTC),
			want: time.Date(2024, 3, 15, 7, 0, 0, 0, time.UTC),
		},
		{
			name: "after today's run fires tomorrow",
			now:  time.Date(2024, 3, 15, 8, 0, 0, 0, time.UTC),
			want: time.Date(2024, 3, 16, 7, 0, 0, 0, time.UTC),
		},
		{
			name: "exactly at the run time fires tomorrow",
			now:  time.Date(2024, 3, 15, 7, 0, 0, 0, time.UTC),
			want: time.Date(2024, 3, 16, 7, 0, 0, 0, time.UTC),
		},
		{
			name: "month rollover",
			now:  time.Date(2024, 3, 31, 9, 0, 0, 0, time.UTC),
			want: time.Date(2024, 4, 1, 7, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := nextRunAfter(tt.now, 7, 0)
			assert.Equal(t, tt.want, got)
		})
	}
}

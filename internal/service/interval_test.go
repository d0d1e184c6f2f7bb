package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(DateLayout, value)
	require.NoError(t, err)
	return parsed
}

func stay(t *testing.T, checkIn, checkOut string) StayRange {
	t.Helper()
	return NewStayRange(date(t, checkIn), date(t, checkOut))
}

func TestOverlapsHalfOpen(t *testing.T) {
	tests := []struct {
		name string
		a, b StayRange
		want bool
	}{
		{"disjoint before", stay(t, "2025-01-01", "2025-01-05"), stay(t, "2025-01-10", "2025-01-12"), false},
		{"disjoint after", stay(t, "2025-01-10", "2025-01-12"), stay(t, "2025-01-01", "2025-01-05"), false},
		{"touching boundary is same-day turnover", stay(t, "2025-01-01", "2025-01-05"), stay(t, "2025-01-05", "2025-01-10"), false},
		{"touching boundary reversed", stay(t, "2025-01-05", "2025-01-10"), stay(t, "2025-01-01", "2025-01-05"), false},
		{"one night shared", stay(t, "2025-01-01", "2025-01-05"), stay(t, "2025-01-04", "2025-01-06"), true},
		{"contained", stay(t, "2025-01-01", "2025-01-10"), stay(t, "2025-01-03", "2025-01-05"), true},
		{"identical", stay(t, "2025-01-01", "2025-01-05"), stay(t, "2025-01-01", "2025-01-05"), true},
		{"zero-night range strictly inside still overlaps", stay(t, "2025-01-03", "2025-01-03"), stay(t, "2025-01-01", "2025-01-05"), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a), "overlap must be symmetric")
		})
	}
}

func TestOverlapsZeroNight(t *testing.T) {
	// A zero-night range has CheckIn == CheckOut, so CheckIn < other.CheckOut
	// && CheckOut > other.CheckIn can only hold when it sits strictly inside
	// the other range.
	zero := stay(t, "2025-01-05", "2025-01-05")
	assert.False(t, zero.Overlaps(stay(t, "2025-01-05", "2025-01-10")))
	assert.False(t, zero.Overlaps(stay(t, "2025-01-01", "2025-01-05")))
	assert.True(t, zero.Overlaps(stay(t, "2025-01-01", "2025-01-10")))
}

func TestNewStayRangeNormalizesTimeOfDay(t *testing.T) {
	in := time.Date(2025, 3, 1, 14, 30, 0, 0, time.FixedZone("CET", 3600))
	out := time.Date(2025, 3, 5, 11, 0, 0, 0, time.UTC)
	r := NewStayRange(in, out)
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), r.CheckIn)
	assert.Equal(t, time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC), r.CheckOut)
}

func TestInverted(t *testing.T) {
	assert.True(t, stay(t, "2025-01-05", "2025-01-01").Inverted())
	assert.False(t, stay(t, "2025-01-01", "2025-01-05").Inverted())
	assert.False(t, stay(t, "2025-01-01", "2025-01-01").Inverted(), "zero-night range is not inverted")
}

package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	date, err := ParseDate("2026-03-13")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 13, 0, 0, 0, 0, time.UTC), date)

	_, err = ParseDate("13-03-2026")
	assert.Error(t, err)
}

func TestParseTimeOfDay(t *testing.T) {
	tod, err := ParseTimeOfDay("18:30")
	require.NoError(t, err)
	assert.Equal(t, 18, tod.Hour())
	assert.Equal(t, 30, tod.Minute())

	_, err = ParseTimeOfDay("25:00")
	assert.Error(t, err)
}

func TestCombineDateTime(t *testing.T) {
	date, _ := ParseDate("2026-03-13")
	tod, _ := ParseTimeOfDay("18:00")

	combined := CombineDateTime(date, tod)
	assert.Equal(t, time.Date(2026, 3, 13, 18, 0, 0, 0, time.UTC), combined)
}

func TestDateOnly(t *testing.T) {
	ts := time.Date(2026, 3, 13, 23, 59, 59, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 3, 13, 0, 0, 0, 0, time.UTC), DateOnly(ts))

	// A non-UTC timestamp is normalized to its UTC calendar date.
	loc := time.FixedZone("UTC+7", 7*3600)
	ts = time.Date(2026, 3, 14, 2, 0, 0, 0, loc)
	assert.Equal(t, time.Date(2026, 3, 13, 0, 0, 0, 0, time.UTC), DateOnly(ts))
}

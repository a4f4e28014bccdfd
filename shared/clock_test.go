package shared

import (
	"github.com/stretchr/testify/assert"
	"testing"
	"time"
)

func Test_LocalDate_ConvertsToZone(t *testing.T) {

	// 2024-03-15 23:30 UTC is already the 16th in Tokyo
	utc := time.Date(2024, 3, 15, 23, 30, 0, 0, time.UTC)

	y, m, d := LocalDate(utc, "Asia/Tokyo")
	assert.Equal(t, 2024, y)
	assert.Equal(t, time.March, m)
	assert.Equal(t, 16, d)

	y, m, d = LocalDate(utc, "America/New_York")
	assert.Equal(t, 15, d)
	assert.Equal(t, time.March, m)
	assert.Equal(t, 2024, y)
}

func Test_LocalDate_FallsBackToUtc(t *testing.T) {

	utc := time.Date(2024, 3, 15, 23, 30, 0, 0, time.UTC)

	_, _, d := LocalDate(utc, "")
	assert.Equal(t, 15, d)

	_, _, d = LocalDate(utc, "Not/AZone")
	assert.Equal(t, 15, d)
}

func Test_SameLocalDay(t *testing.T) {

	morning := time.Date(2024, 3, 15, 1, 0, 0, 0, time.UTC)
	evening := time.Date(2024, 3, 15, 23, 0, 0, 0, time.UTC)
	nextDay := time.Date(2024, 3, 16, 1, 0, 0, 0, time.UTC)

	assert.True(t, SameLocalDay(morning, evening, "UTC"))
	assert.False(t, SameLocalDay(evening, nextDay, "UTC"))

	// 23:00 UTC and 01:00 UTC next day are the same evening in New York
	assert.True(t, SameLocalDay(evening, nextDay, "America/New_York"))
	// And different days in Tokyo
	assert.False(t, SameLocalDay(morning, evening, "Asia/Tokyo"))
}

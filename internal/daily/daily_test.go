package daily

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateKey(t *testing.T) {
	ts := time.Date(2024, 3, 9, 23, 30, 0, 0, time.FixedZone("ET", -5*3600))
	// 23:30 ET is already the next day in UTC.
	assert.Equal(t, "2024-03-10", DateKey(ts))
}

func TestWordIndex(t *testing.T) {
	day := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	const n = 1 << 30
	a := WordIndex(day, "salt", n)
	assert.Equal(t, a, WordIndex(day.Add(5*time.Hour), "salt", n), "same date, same index")
	assert.GreaterOrEqual(t, a, 0)
	assert.Less(t, a, n)

	assert.NotEqual(t, a, WordIndex(day.AddDate(0, 0, 1), "salt", n), "different dates differ for this salt")
	assert.NotEqual(t, a, WordIndex(day, "other", n), "different salts differ for this date")

	assert.Equal(t, 0, WordIndex(day, "salt", 0))
}

package dates_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freddykhant/northstar/internal/dates"
)

func TestParse(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		d, err := dates.Parse("2025-01-10")
		require.NoError(t, err)
		assert.Equal(t, "2025-01-10", d.String())
	})

	t.Run("Invalid", func(t *testing.T) {
		for _, s := range []string{
			"",
			"2025-1-10",
			"2025-01-10T00:00:00Z",
			"10-01-2025",
			"2025-13-01",
			"2025-02-30",
			"not a date",
		} {
			_, err := dates.Parse(s)
			assert.ErrorIs(t, err, dates.ErrInvalidDate, "input %q", s)
		}
	})
}

func TestArithmetic(t *testing.T) {
	d := dates.Date("2025-01-31")
	assert.Equal(t, dates.Date("2025-02-01"), d.Next())
	assert.Equal(t, dates.Date("2025-01-30"), d.Prev())
	assert.Equal(t, dates.Date("2024-12-31"), dates.Date("2025-01-01").Prev())
	assert.Equal(t, dates.Date("2024-02-29"), dates.Date("2024-02-28").Next())

	assert.True(t, dates.Date("2025-01-01").Before(dates.Date("2025-01-02")))
	assert.True(t, dates.Date("2025-02-01").After(dates.Date("2025-01-31")))

	assert.Equal(t, 6, dates.Date("2025-01-01").DaysBetween(dates.Date("2025-01-07")))
	assert.Equal(t, -1, dates.Date("2025-01-02").DaysBetween(dates.Date("2025-01-01")))
}

func TestRange(t *testing.T) {
	t.Run("Inclusive", func(t *testing.T) {
		days := dates.Range(dates.Date("2025-01-30"), dates.Date("2025-02-02"))
		assert.Equal(t, []dates.Date{"2025-01-30", "2025-01-31", "2025-02-01", "2025-02-02"}, days)
	})

	t.Run("SingleDay", func(t *testing.T) {
		days := dates.Range(dates.Date("2025-01-01"), dates.Date("2025-01-01"))
		assert.Equal(t, []dates.Date{"2025-01-01"}, days)
	})

	t.Run("Inverted", func(t *testing.T) {
		assert.Nil(t, dates.Range(dates.Date("2025-01-02"), dates.Date("2025-01-01")))
	})
}

func TestWeekday(t *testing.T) {
	// 2025-01-01 was a Wednesday.
	assert.Equal(t, time.Wednesday, dates.Date("2025-01-01").Weekday())
	assert.Equal(t, time.Sunday, dates.Date("2025-01-05").Weekday())
}

func TestScan(t *testing.T) {
	t.Run("FromTime", func(t *testing.T) {
		var d dates.Date
		require.NoError(t, d.Scan(time.Date(2025, 3, 9, 15, 30, 0, 0, time.UTC)))
		assert.Equal(t, dates.Date("2025-03-09"), d)
	})

	t.Run("FromString", func(t *testing.T) {
		var d dates.Date
		require.NoError(t, d.Scan("2025-03-09"))
		assert.Equal(t, dates.Date("2025-03-09"), d)
	})

	t.Run("FromStringWithTimeSuffix", func(t *testing.T) {
		var d dates.Date
		require.NoError(t, d.Scan("2025-03-09T00:00:00Z"))
		assert.Equal(t, dates.Date("2025-03-09"), d)
	})

	t.Run("Nil", func(t *testing.T) {
		d := dates.Date("2025-03-09")
		require.NoError(t, d.Scan(nil))
		assert.Equal(t, dates.Date(""), d)
	})
}

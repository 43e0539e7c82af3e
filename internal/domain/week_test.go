package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestWeekBounds(t *testing.T) {
	tests := []struct {
		name      string
		d         time.Time
		wantStart string
		wantEnd   string
	}{
		{
			name:      "mid week wednesday",
			d:         date(2025, time.September, 3),
			wantStart: "2025-09-01",
			wantEnd:   "2025-09-07",
		},
		{
			name:      "monday is its own start",
			d:         date(2025, time.September, 1),
			wantStart: "2025-09-01",
			wantEnd:   "2025-09-07",
		},
		{
			name:      "sunday is its own end",
			d:         date(2025, time.September, 7),
			wantStart: "2025-09-01",
			wantEnd:   "2025-09-07",
		},
		{
			name:      "week crossing month boundary",
			d:         date(2025, time.July, 31),
			wantStart: "2025-07-28",
			wantEnd:   "2025-08-03",
		},
		{
			name:      "week crossing year boundary",
			d:         date(2026, time.January, 1),
			wantStart: "2025-12-29",
			wantEnd:   "2026-01-04",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := WeekBounds(tt.d)

			assert.Equal(t, tt.wantStart, FormatISODate(start))
			assert.Equal(t, tt.wantEnd, FormatISODate(end))
		})
	}
}

func TestWeekBounds_Properties(t *testing.T) {
	// Every day of several consecutive weeks: start is a Monday, end a
	// Sunday, the span is six days and d falls inside it.
	d := date(2025, time.August, 1)
	for i := 0; i < 28; i++ {
		cur := d.AddDate(0, 0, i)
		start, end := WeekBounds(cur)

		require.Equal(t, Monday, WeekdayIndex(start))
		require.Equal(t, Sunday, WeekdayIndex(end))
		require.Equal(t, 6, int(end.Sub(start).Hours()/24))
		require.False(t, cur.Before(start))
		require.False(t, cur.After(end))
	}
}

func TestWeekdayName(t *testing.T) {
	// 2025-09-01 is a Monday.
	monday := date(2025, time.September, 1)
	want := []string{"Lunes", "Martes", "Miércoles", "Jueves", "Viernes", "Sábado", "Domingo"}

	for i, name := range want {
		assert.Equal(t, name, WeekdayName(monday.AddDate(0, 0, i)))
	}
}

func TestWeekdayIndexes_RoundTrip(t *testing.T) {
	for idx, name := range WeekdayNames {
		got, ok := WeekdayIndexes[lower(name)]
		require.True(t, ok, "missing reverse mapping for %s", name)
		assert.Equal(t, idx, got)
	}
}

func lower(s string) string {
	out := []rune(s)
	for i, r := range out {
		if r >= 'A' && r <= 'Z' {
			out[i] = r + ('a' - 'A')
		}
	}
	// Only the leading letter of the labels is uppercase ASCII; accented
	// runes are already lowercase.
	return string(out)
}

func TestParseISODate(t *testing.T) {
	d, err := ParseISODate("2025-09-03")
	require.NoError(t, err)
	assert.Equal(t, "2025-09-03", FormatISODate(d))

	_, err = ParseISODate("03/09/2025")
	assert.Error(t, err)
}

package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimeToMinutes(t *testing.T) {
	m, err := TimeToMinutes("11:30")
	assert.NoError(t, err)
	assert.Equal(t, 690, m)

	m, err = TimeToMinutes("00:00")
	assert.NoError(t, err)
	assert.Equal(t, 0, m)

	m, err = TimeToMinutes("23:59")
	assert.NoError(t, err)
	assert.Equal(t, 1439, m)
}

func TestTimeToMinutesRejectsMalformed(t *testing.T) {
	for _, bad := range []string{"", "9", "9:xx", "xx:30", "24:00", "12:60", "-1:00", "11:30:00"} {
		_, err := TimeToMinutes(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestMinutesToTime(t *testing.T) {
	assert.Equal(t, "00:05", MinutesToTime(5))
	assert.Equal(t, "13:00", MinutesToTime(780))
	assert.Equal(t, "23:59", MinutesToTime(1439))
}

func TestNowMinutesAndDayName(t *testing.T) {
	monday := time.Date(2026, 1, 19, 12, 0, 0, 0, time.Local)
	assert.Equal(t, "Monday", DayName(monday))
	assert.Equal(t, 720, NowMinutes(monday))
}

func TestDaysUntil(t *testing.T) {
	now := time.Date(2026, 1, 10, 18, 45, 0, 0, time.Local)

	d, err := DaysUntil("2026-01-10", now)
	assert.NoError(t, err)
	assert.Equal(t, 0, d)

	d, err = DaysUntil("2026-01-20", now)
	assert.NoError(t, err)
	assert.Equal(t, 10, d)

	d, err = DaysUntil("2026-01-08", now)
	assert.NoError(t, err)
	assert.Equal(t, -2, d)

	_, err = DaysUntil("not-a-date", now)
	assert.Error(t, err)
}

func TestFormatMinutes(t *testing.T) {
	assert.Equal(t, "30m", FormatMinutes(30))
	assert.Equal(t, "1h 5m", FormatMinutes(65))
	assert.Equal(t, "2h", FormatMinutes(120))
	assert.Equal(t, "0m", FormatMinutes(-10))
}

func TestFormat12Hour(t *testing.T) {
	assert.Equal(t, "02:30 PM", Format12Hour("14:30"))
	assert.Equal(t, "12:05 AM", Format12Hour("00:05"))
	assert.Equal(t, "12:00 PM", Format12Hour("12:00"))
	assert.Equal(t, "9:xx", Format12Hour("9:xx"))
}

func TestFormatCountdown(t *testing.T) {
	assert.Equal(t, "Today", FormatCountdown(0))
	assert.Equal(t, "Tomorrow", FormatCountdown(1))
	assert.Equal(t, "5 days", FormatCountdown(5))
	assert.Equal(t, "1 week", FormatCountdown(10))
	assert.Equal(t, "3 weeks", FormatCountdown(21))
	assert.Equal(t, "Yesterday", FormatCountdown(-1))
	assert.Equal(t, "4 days ago", FormatCountdown(-4))
}

package gametime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

// etClock builds an instant whose Eastern wall-clock reads the given values.
func etClock(t *testing.T, year int, month time.Month, day, hour, min int) time.Time {
	t.Helper()
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	return time.Date(year, month, day, hour, min, 0, 0, loc)
}

func TestParseGameTime(t *testing.T) {
	tests := []struct {
		input  string
		hour   int
		minute int
		ok     bool
	}{
		{"7:30 PM", 19, 30, true},
		{"7:30 pm ET", 19, 30, true},
		{"10:00 AM EST", 10, 0, true},
		{"12:00 PM", 12, 0, true},
		{"12:30 AM", 0, 30, true},
		{"11:59 PM EDT", 23, 59, true},
		{"TBD", 0, 0, false},
		{"Scheduled", 0, 0, false},
		{"", 0, 0, false},
		{"Final", 0, 0, false},
	}

	for _, tt := range tests {
		hour, minute, ok := ParseGameTime(tt.input)
		assert.Equal(t, tt.ok, ok, "input %q", tt.input)
		if tt.ok {
			assert.Equal(t, tt.hour, hour, "input %q", tt.input)
			assert.Equal(t, tt.minute, minute, "input %q", tt.input)
		}
	}
}

func TestHasGameStarted_PastDate(t *testing.T) {
	now := etClock(t, 2025, time.March, 15, 12, 0)
	// Past-dated games are started no matter what the time string says.
	assert.True(t, HasGameStarted("2020-01-01", nil, now))
	assert.True(t, HasGameStarted("2020-01-01", strPtr("garbage"), now))
	assert.True(t, HasGameStarted("2025-03-14", strPtr("TBD"), now))
}

func TestHasGameStarted_FutureDate(t *testing.T) {
	now := etClock(t, 2025, time.March, 15, 23, 59)
	assert.False(t, HasGameStarted("2025-03-16", strPtr("7:00 PM"), now))
	assert.False(t, HasGameStarted("2099-01-01", nil, now))
}

func TestHasGameStarted_SameDaySentinels(t *testing.T) {
	now := etClock(t, 2025, time.March, 15, 22, 0)
	assert.False(t, HasGameStarted("2025-03-15", nil, now))
	assert.False(t, HasGameStarted("2025-03-15", strPtr("TBD"), now))
	assert.False(t, HasGameStarted("2025-03-15", strPtr("Scheduled"), now))
	assert.False(t, HasGameStarted("2025-03-15", strPtr("12:00 AM"), now))
	// Unparseable times fail open
	assert.False(t, HasGameStarted("2025-03-15", strPtr("postponed"), now))
}

func TestHasGameStarted_SameDayTimes(t *testing.T) {
	// 7:00 PM ET game
	game := strPtr("7:00 PM ET")
	assert.False(t, HasGameStarted("2025-03-15", game, etClock(t, 2025, time.March, 15, 18, 59)))
	assert.True(t, HasGameStarted("2025-03-15", game, etClock(t, 2025, time.March, 15, 19, 0)))
	assert.True(t, HasGameStarted("2025-03-15", game, etClock(t, 2025, time.March, 15, 19, 1)))

	// Late tip: before 23:59 it hasn't started, at 23:59 it has
	late := strPtr("11:59 PM")
	assert.False(t, HasGameStarted("2025-03-15", late, etClock(t, 2025, time.March, 15, 23, 58)))
	assert.True(t, HasGameStarted("2025-03-15", late, etClock(t, 2025, time.March, 15, 23, 59)))
}

func TestHasGameStarted_UsesEasternDate(t *testing.T) {
	// 1:00 UTC on March 16 is still 21:00 March 15 in New York, so a
	// March 15 game at 10:00 PM ET has not started yet.
	nowUTC := time.Date(2025, time.March, 16, 1, 0, 0, 0, time.UTC)
	assert.False(t, HasGameStarted("2025-03-15", strPtr("10:00 PM"), nowUTC))
	assert.True(t, HasGameStarted("2025-03-15", strPtr("9:00 PM"), nowUTC))
}

func TestHasGameStarted_InvalidDate(t *testing.T) {
	now := etClock(t, 2025, time.March, 15, 12, 0)
	assert.False(t, HasGameStarted("not-a-date", strPtr("7:00 PM"), now))
}

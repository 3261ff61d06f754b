package gametime

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// NBA schedule times are published in US Eastern time, so every comparison
// happens in that zone regardless of where the service runs.
var eastern = mustLoadEastern()

func mustLoadEastern() *time.Location {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		panic("gametime: load America/New_York: " + err.Error())
	}
	return loc
}

// EasternDate formats t's calendar date in the scheduling timezone.
func EasternDate(t time.Time) string {
	return t.In(eastern).Format("2006-01-02")
}

var clockPattern = regexp.MustCompile(`(?i)(\d{1,2}):(\d{2})\s*(AM|PM)`)

// ParseGameTime extracts a 24-hour clock time from a schedule time string
// like "7:30 PM" or "10:00 pm ET". Trailing timezone abbreviations are
// stripped before matching. Returns ok=false when the string carries no
// concrete time.
func ParseGameTime(timeStr string) (hour, minute int, ok bool) {
	clean := strings.TrimSpace(timeStr)
	for _, tz := range []string{"ET", "EST", "EDT"} {
		clean = strings.TrimSpace(strings.TrimSuffix(clean, tz))
	}

	caps := clockPattern.FindStringSubmatch(clean)
	if caps == nil {
		return 0, 0, false
	}

	hour, _ = strconv.Atoi(caps[1])
	minute, _ = strconv.Atoi(caps[2])

	switch strings.ToUpper(caps[3]) {
	case "PM":
		if hour != 12 {
			hour += 12
		}
	case "AM":
		if hour == 12 {
			hour = 0
		}
	}

	return hour, minute, true
}

// HasGameStarted reports whether a scheduled game has tipped off, comparing
// the game's calendar date and free-text time string against now in Eastern
// time. A past date is always started; a future date never is. For same-day
// games, placeholder times ("TBD", "Scheduled", "12:00 AM") and anything
// unparseable count as not started. Callers pass now explicitly and should
// read the clock once per request.
func HasGameStarted(gameDate string, gameTime *string, now time.Time) bool {
	nowET := now.In(eastern)

	parsed, err := time.ParseInLocation("2006-01-02", gameDate, eastern)
	if err != nil {
		return false
	}

	gameDay := parsed.Format("2006-01-02")
	today := nowET.Format("2006-01-02")

	if gameDay > today {
		return false
	}
	if gameDay < today {
		return true
	}

	// Game is today, so the time string decides.
	if gameTime == nil {
		return false
	}
	ts := *gameTime
	if ts == "TBD" || ts == "Scheduled" || ts == "12:00 AM" {
		return false
	}

	hour, minute, ok := ParseGameTime(ts)
	if !ok {
		return false
	}

	return nowET.Hour() > hour || (nowET.Hour() == hour && nowET.Minute() >= minute)
}

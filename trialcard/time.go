package trialcard

import (
	"fmt"
	"regexp"
	"time"
)

// gameTimeLayout is the wire format of the scheduled time. Game time is UTC.
const gameTimeLayout = "2006-01-02 15:04"

var gameTimePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}$`)

// ParseGameTime parses a "YYYY-MM-DD HH:MM" game-time string.
func ParseGameTime(s string) (time.Time, error) {
	if !gameTimePattern.MatchString(s) {
		return time.Time{}, fmt.Errorf("time %q is not in the format YYYY-MM-DD HH:MM", s)
	}
	t, err := time.ParseInLocation(gameTimeLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("time %q is not a valid date: %w", s, err)
	}
	return t, nil
}

func FormatGameTime(t time.Time) string {
	return t.UTC().Format(gameTimeLayout)
}

// DefaultTime is the scheduled time used when the host gives none: NA trials
// run at 23:59 game time that day, EU trials at 21:00 Central European time,
// which is 19:00 UTC during summer time and 20:00 UTC otherwise.
func DefaultTime(region Region, now time.Time) time.Time {
	now = now.UTC()
	if region == RegionNA {
		return time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 0, 0, time.UTC)
	}
	hour := 20
	if berlin, err := time.LoadLocation("Europe/Berlin"); err == nil {
		if _, offset := now.In(berlin).Zone(); offset == 2*60*60 {
			hour = 19
		}
	}
	return time.Date(now.Year(), now.Month(), now.Day(), hour, 0, 0, 0, time.UTC)
}

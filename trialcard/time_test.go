package trialcard

import (
	"testing"
	"time"
)

func TestParseGameTime(t *testing.T) {
	got, err := ParseGameTime("2026-03-14 23:59")
	if err != nil {
		t.Fatalf("ParseGameTime: %v", err)
	}
	want := time.Date(2026, 3, 14, 23, 59, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}

	for _, bad := range []string{"", "tomorrow", "2026-3-14 23:59", "2026-03-14", "23:59", "2026-13-40 25:61"} {
		if _, err := ParseGameTime(bad); err == nil {
			t.Errorf("ParseGameTime(%q) succeeded, want error", bad)
		}
	}
}

func TestFormatGameTimeRoundTrip(t *testing.T) {
	in := time.Date(2026, 11, 2, 7, 5, 0, 0, time.UTC)
	s := FormatGameTime(in)
	if s != "2026-11-02 07:05" {
		t.Errorf("FormatGameTime = %q", s)
	}
	out, err := ParseGameTime(s)
	if err != nil {
		t.Fatalf("ParseGameTime: %v", err)
	}
	if !out.Equal(in) {
		t.Errorf("round trip: got %v, want %v", out, in)
	}
}

func TestDefaultTimeNA(t *testing.T) {
	now := time.Date(2026, 7, 10, 4, 30, 0, 0, time.UTC)
	got := DefaultTime(RegionNA, now)
	want := time.Date(2026, 7, 10, 23, 59, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestDefaultTimeEU(t *testing.T) {
	// July: central Europe is on summer time, 21:00 local is 19:00 UTC.
	summer := time.Date(2026, 7, 10, 4, 30, 0, 0, time.UTC)
	if got := DefaultTime(RegionEU, summer); got.Hour() != 19 {
		t.Errorf("summer default hour = %d, want 19", got.Hour())
	}
	// January: standard time, 21:00 local is 20:00 UTC.
	winter := time.Date(2026, 1, 10, 4, 30, 0, 0, time.UTC)
	if got := DefaultTime(RegionEU, winter); got.Hour() != 20 {
		t.Errorf("winter default hour = %d, want 20", got.Hour())
	}
}

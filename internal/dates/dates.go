// Normalize relative posting phrases ("3 days ago", "Vor 3 Tagen",
// "dagen geleden") into absolute calendar dates.

package dates

import (
	"strconv"
	"strings"
	"time"
)

type bucket int

const (
	bucketToday bucket = iota
	bucketDaysAgo
)

// rule matches when every part is contained in the lowercased input.
type rule struct {
	locale string
	parts  []string
	bucket bucket
	// impliedDays is used only for the Dutch singular phrasing that carries
	// no numeral ("dag geleden" means one day ago). Every other days-ago
	// rule requires an integer token and fails without one; "vor einigen
	// Tagen" and "30+ days ago" report a vague range, not a date.
	impliedDays int
}

// rules are evaluated top to bottom, first match wins. English is checked
// before German before Dutch; locales share keywords ("dag" is a substring
// of "dagen"), so the order is part of the contract.
var rules = []rule{
	{locale: "en", parts: []string{"just posted"}, bucket: bucketToday},
	{locale: "en", parts: []string{"today"}, bucket: bucketToday},
	{locale: "en", parts: []string{"days ago"}, bucket: bucketDaysAgo},
	{locale: "en", parts: []string{"day ago"}, bucket: bucketDaysAgo},
	{locale: "de", parts: []string{"heute"}, bucket: bucketToday},
	{locale: "de", parts: []string{"gerade geschaltet"}, bucket: bucketToday},
	{locale: "de", parts: []string{"vor", "tag"}, bucket: bucketDaysAgo},
	{locale: "nl", parts: []string{"vandaag"}, bucket: bucketToday},
	{locale: "nl", parts: []string{"zojuist geplaatst"}, bucket: bucketToday},
	{locale: "nl", parts: []string{"dagen geleden"}, bucket: bucketDaysAgo},
	{locale: "nl", parts: []string{"dag geleden"}, bucket: bucketDaysAgo, impliedDays: 1},
}

// Normalize converts a locale-specific relative-date phrase into an absolute
// calendar date (midnight UTC, no time-of-day). The second return value is
// false when the phrase is not recognized; such listings must not be
// persisted. "Active X days ago" style phrases report elapsed activity, not
// a posting date, and are deliberately left unrecognized.
func Normalize(raw string) (time.Time, bool) {
	return NormalizeFrom(raw, time.Now())
}

// NormalizeFrom is Normalize with an injectable reference time for tests.
func NormalizeFrom(raw string, now time.Time) (time.Time, bool) {
	text := strings.ToLower(strings.TrimSpace(raw))
	if text == "" {
		return time.Time{}, false
	}

	for _, r := range rules {
		if !matches(text, r.parts) {
			continue
		}
		switch r.bucket {
		case bucketToday:
			return truncate(now), true
		case bucketDaysAgo:
			days, ok := firstInt(text)
			if !ok {
				if r.impliedDays == 0 {
					return time.Time{}, false
				}
				days = r.impliedDays
			}
			return truncate(now.AddDate(0, 0, -days)), true
		}
	}

	return time.Time{}, false
}

func matches(text string, parts []string) bool {
	for _, p := range parts {
		if !strings.Contains(text, p) {
			return false
		}
	}
	return true
}

// firstInt returns the first whitespace-delimited integer token anywhere
// in the text. The count sits before the trigger in English ("3 days ago")
// and after it in German ("Vor 3 Tagen"), so a whole-text scan is the one
// strategy that covers both; these phrases never carry a second number.
func firstInt(text string) (int, bool) {
	for _, tok := range strings.Fields(text) {
		if n, err := strconv.Atoi(tok); err == nil {
			return n, true
		}
	}
	return 0, false
}

func truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

package parse

import (
	"strings"
	"time"
)

// Date layouts tried per family. Go accepts 1-2 digit values for the
// non-padded verbs, so each list stays short; order encodes the
// day/month disambiguation preference.
var dottedDateLayouts = []string{
	"2.1.2006",
	"2.1.06",
}

var slashDateLayouts = []string{
	// US order first, then European, then dotted day-first for the
	// dash-delimited dotted shapes that fall through to this family.
	"1/2/2006",
	"1/2/06",
	"2/1/2006",
	"2/1/06",
	"2.1.2006",
	"2.1.06",
}

var timeLayouts = []string{
	"15:04",
	"15:04:05",
	"3:04 PM",
	"3:04:05 PM",
}

// parseTimestamp brute-forces the date/time layout cross product for the
// family implied by the winning line pattern. The zero time is returned
// when no combination parses; the caller substitutes "now" and counts it.
func parseTimestamp(dateTok, timeTok string, family dateFamily) time.Time {
	dateLayouts := slashDateLayouts
	if family == familyDotted {
		dateLayouts = dottedDateLayouts
	}

	timeTok = normalizeTime(timeTok)

	for _, dl := range dateLayouts {
		for _, tl := range timeLayouts {
			t, err := time.ParseInLocation(dl+" "+tl, dateTok+" "+timeTok, time.Local)
			if err != nil {
				continue
			}
			return t
		}
	}
	return time.Time{}
}

// normalizeTime uppercases a trailing meridiem marker and guarantees a
// single space before it, so one 12h layout per shape suffices.
func normalizeTime(s string) string {
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return s
	}
	suffix := s[len(s)-2:]
	switch strings.ToUpper(suffix) {
	case "AM", "PM":
		head := strings.TrimSpace(s[:len(s)-2])
		return head + " " + strings.ToUpper(suffix)
	}
	return s
}

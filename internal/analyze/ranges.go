package analyze

import (
	"time"

	"github.com/tomerva/chatscope/internal/parse"
)

// nowFunc is swapped out in tests.
var nowFunc = time.Now

// DefaultDateRange returns the last calendar month, clamped so it never
// starts before the transcript's first message.
func DefaultDateRange(chat parse.ChatData) parse.DateRange {
	now := nowFunc()
	start := now.AddDate(0, -1, 0)
	if len(chat.Messages) > 0 && start.Before(chat.DateRange.Start) {
		start = chat.DateRange.Start
	}
	return parse.DateRange{Start: start, End: now, Label: "Last Month"}
}

// DateRangePresets returns the ladder of analysis windows offered to the
// caller, anchored to now. Presets that start before the first message are
// dropped; a two-week-old chat has no use for a "last 6 months" window.
func DateRangePresets(chat parse.ChatData) []parse.DateRange {
	now := nowFunc()
	first := chat.DateRange.Start

	candidates := []parse.DateRange{
		{Start: now.AddDate(0, 0, -7), End: now, Label: "Last Week"},
		{Start: now.AddDate(0, -1, 0), End: now, Label: "Last Month"},
		{Start: now.AddDate(0, -3, 0), End: now, Label: "Last 3 Months"},
		{Start: now.AddDate(0, -6, 0), End: now, Label: "Last 6 Months"},
		{Start: first, End: now, Label: "All Time"},
	}

	var presets []parse.DateRange
	for _, c := range candidates {
		if c.Label != "All Time" && c.Start.Before(first) {
			continue
		}
		presets = append(presets, c)
	}
	return presets
}

// PresetByLabel finds a preset by its label, case-sensitively. The second
// return is false when no preset matches.
func PresetByLabel(chat parse.ChatData, label string) (parse.DateRange, bool) {
	for _, p := range DateRangePresets(chat) {
		if p.Label == label {
			return p, true
		}
	}
	return parse.DateRange{}, false
}

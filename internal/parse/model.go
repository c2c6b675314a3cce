package parse

import "time"

// Message is a single utterance from the transcript. Content may span
// multiple physical lines joined with "\n".
type Message struct {
	Timestamp       time.Time
	Author          string // "System" for non-authored events
	Content         string
	IsSystemMessage bool
}

// ChatData is the result of parsing one transcript.
type ChatData struct {
	Messages      []Message
	Participants  []string
	DateRange     DateRange
	TotalMessages int
}

// DateRange is an inclusive [Start, End] analysis window.
type DateRange struct {
	Start time.Time
	End   time.Time
	Label string
}

// Contains reports whether t falls inside the window, boundaries included.
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// Diagnostics counts non-fatal anomalies encountered during a parse.
// Unmatched lines and fallback timestamps silently distort the output,
// so the doctor command surfaces them.
type Diagnostics struct {
	TotalLines         int
	MatchedMessages    int
	MatchedSystem      int
	ContinuationLines  int
	UnmatchedLines     int
	FallbackTimestamps int
}

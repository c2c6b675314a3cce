package parse

import (
	"strings"
	"testing"
	"time"
)

func TestParseAllLineFormats(t *testing.T) {
	want := time.Date(2023, 12, 31, 10, 30, 0, 0, time.Local)
	wantSec := time.Date(2023, 12, 31, 10, 30, 25, 0, time.Local)

	cases := []struct {
		name string
		line string
		ts   time.Time
	}{
		{"us slash am/pm", "12/31/23, 10:30 AM - John: Hello there!", want},
		{"bracketed slash seconds", "[12/31/23, 10:30:25] John: Hello there!", wantSec},
		{"dotted dash", "31.12.23, 10:30 - John: Hello there!", want},
		{"full year slash", "12/31/2023, 10:30 - John: Hello there!", want},
		{"european slash 24h", "31/12/23, 22:30 - John: Hello there!", time.Date(2023, 12, 31, 22, 30, 0, 0, time.Local)},
		{"bracketed dotted full year", "[31.12.2023, 10:30:25] John: Hello there!", wantSec},
		{"no comma", "12/31/23 10:30 - John: Hello there!", want},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			chat := Parse(tc.line)
			if len(chat.Messages) != 1 {
				t.Fatalf("got %d messages, want 1", len(chat.Messages))
			}
			m := chat.Messages[0]
			if !m.Timestamp.Equal(tc.ts) {
				t.Errorf("timestamp = %v, want %v", m.Timestamp, tc.ts)
			}
			if m.Author != "John" {
				t.Errorf("author = %q, want John", m.Author)
			}
			if m.Content != "Hello there!" {
				t.Errorf("content = %q", m.Content)
			}
			if m.IsSystemMessage {
				t.Error("authored message classified as system")
			}
		})
	}
}

func TestParseTwoAuthors(t *testing.T) {
	chat := Parse("12/31/23, 10:30 AM - John: Hi\n12/31/23, 10:31 AM - Jane: Hello")

	if chat.TotalMessages != 2 {
		t.Fatalf("TotalMessages = %d, want 2", chat.TotalMessages)
	}
	if len(chat.Participants) != 2 {
		t.Fatalf("participants = %v, want John and Jane", chat.Participants)
	}
	got := map[string]bool{}
	for _, p := range chat.Participants {
		got[p] = true
	}
	if !got["John"] || !got["Jane"] {
		t.Errorf("participants = %v, want John and Jane", chat.Participants)
	}
	if !chat.DateRange.Start.Equal(chat.Messages[0].Timestamp) {
		t.Error("DateRange.Start != first message timestamp")
	}
	if !chat.DateRange.End.Equal(chat.Messages[1].Timestamp) {
		t.Error("DateRange.End != last message timestamp")
	}
}

func TestParseContinuationLines(t *testing.T) {
	text := "12/31/23, 10:30 - John: line one\nsecond line\nthird line\n12/31/23, 10:31 - Jane: ok"
	chat := Parse(text)

	if len(chat.Messages) != 2 {
		t.Fatalf("got %d messages, want 2", len(chat.Messages))
	}
	want := "line one\nsecond line\nthird line"
	if chat.Messages[0].Content != want {
		t.Errorf("content = %q, want %q", chat.Messages[0].Content, want)
	}
	// Round-trip: splitting on \n reconstructs the physical lines.
	if lines := strings.Split(chat.Messages[0].Content, "\n"); len(lines) != 3 {
		t.Errorf("got %d content lines, want 3", len(lines))
	}
}

func TestParseSystemEventWithAuthor(t *testing.T) {
	chat := Parse(`1/1/24, 09:00 - John: created group "Test"`)

	if len(chat.Messages) != 1 {
		t.Fatalf("got %d messages, want 1", len(chat.Messages))
	}
	if !chat.Messages[0].IsSystemMessage {
		t.Error("group-creation line not classified as system")
	}
	if len(chat.Participants) != 0 {
		t.Errorf("participants = %v, want none", chat.Participants)
	}
}

func TestParseSystemEventNoAuthor(t *testing.T) {
	chat := Parse("1/1/24, 09:00 - Messages and calls are end-to-end encrypted.")

	if len(chat.Messages) != 1 {
		t.Fatalf("got %d messages, want 1", len(chat.Messages))
	}
	m := chat.Messages[0]
	if m.Author != SystemAuthor {
		t.Errorf("author = %q, want %q", m.Author, SystemAuthor)
	}
	if !m.IsSystemMessage {
		t.Error("encryption banner not classified as system")
	}
	if len(chat.Participants) != 0 {
		t.Errorf("participants = %v, want none", chat.Participants)
	}
}

func TestParticipantFiltering(t *testing.T) {
	longName := strings.Repeat("x", 51)
	text := "1/1/24, 09:00 - +12345678901: hi\n" +
		"1/1/24, 09:01 - " + longName + ": hi\n" +
		"1/1/24, 09:02 - Jane: hi"
	chat := Parse(text)

	if chat.TotalMessages != 3 {
		t.Fatalf("TotalMessages = %d, want 3 (filtered authors keep their messages)", chat.TotalMessages)
	}
	if len(chat.Participants) != 1 || chat.Participants[0] != "Jane" {
		t.Errorf("participants = %v, want [Jane]", chat.Participants)
	}
}

func TestParseSortsByTimestamp(t *testing.T) {
	text := "1/2/24, 09:00 - John: later\n1/1/24, 09:00 - Jane: earlier"
	chat := Parse(text)

	if len(chat.Messages) != 2 {
		t.Fatalf("got %d messages, want 2", len(chat.Messages))
	}
	for i := 1; i < len(chat.Messages); i++ {
		if chat.Messages[i].Timestamp.Before(chat.Messages[i-1].Timestamp) {
			t.Fatal("messages not sorted by timestamp ascending")
		}
	}
	if chat.Messages[0].Author != "Jane" {
		t.Errorf("first message author = %q, want Jane", chat.Messages[0].Author)
	}
}

func TestParseEmptyTranscript(t *testing.T) {
	chat := Parse("")

	if len(chat.Messages) != 0 {
		t.Errorf("got %d messages, want 0", len(chat.Messages))
	}
	if chat.TotalMessages != 0 {
		t.Errorf("TotalMessages = %d, want 0", chat.TotalMessages)
	}
	if chat.DateRange.Start.IsZero() || chat.DateRange.End.IsZero() {
		t.Error("empty transcript should fall back to now for the date range")
	}
}

func TestParseUnmatchedLinesDropped(t *testing.T) {
	p := New()
	chat := p.Parse("garbage before any message\n12/31/23, 10:30 - John: hi")

	if len(chat.Messages) != 1 {
		t.Fatalf("got %d messages, want 1", len(chat.Messages))
	}
	if got := p.Diagnostics().UnmatchedLines; got != 1 {
		t.Errorf("UnmatchedLines = %d, want 1", got)
	}
}

func TestFallbackTimestamp(t *testing.T) {
	fixed := time.Date(2024, 6, 1, 12, 0, 0, 0, time.Local)
	p := New(withClock(func() time.Time { return fixed }))
	chat := p.Parse("99/99/99, 10:30 - John: hi")

	if len(chat.Messages) != 1 {
		t.Fatalf("got %d messages, want 1", len(chat.Messages))
	}
	if !chat.Messages[0].Timestamp.Equal(fixed) {
		t.Errorf("timestamp = %v, want clock fallback %v", chat.Messages[0].Timestamp, fixed)
	}
	if got := p.Diagnostics().FallbackTimestamps; got != 1 {
		t.Errorf("FallbackTimestamps = %d, want 1", got)
	}
}

func TestWithSystemMarkers(t *testing.T) {
	p := New(WithSystemMarkers([]string{"cambió el nombre"}))
	chat := p.Parse("1/1/24, 09:00 - Ana: Cambió el nombre del grupo")

	if !chat.Messages[0].IsSystemMessage {
		t.Error("extra marker not applied")
	}
}

func TestDiagnosticsCounters(t *testing.T) {
	p := New()
	text := "noise\n12/31/23, 10:30 - John: hi\ncontinued\n1/1/24, 09:00 - Messages and calls are end-to-end encrypted."
	p.Parse(text)

	d := p.Diagnostics()
	if d.TotalLines != 4 {
		t.Errorf("TotalLines = %d, want 4", d.TotalLines)
	}
	if d.MatchedMessages != 1 {
		t.Errorf("MatchedMessages = %d, want 1", d.MatchedMessages)
	}
	if d.MatchedSystem != 1 {
		t.Errorf("MatchedSystem = %d, want 1", d.MatchedSystem)
	}
	if d.ContinuationLines != 1 {
		t.Errorf("ContinuationLines = %d, want 1", d.ContinuationLines)
	}
	if d.UnmatchedLines != 1 {
		t.Errorf("UnmatchedLines = %d, want 1", d.UnmatchedLines)
	}
}

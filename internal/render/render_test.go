package render

import (
	"strings"
	"testing"
	"time"

	"github.com/tomerva/chatscope/internal/analyze"
	"github.com/tomerva/chatscope/internal/parse"
)

func sampleChat() parse.ChatData {
	base := time.Date(2024, 3, 15, 10, 0, 0, 0, time.Local)
	msgs := []parse.Message{
		{Timestamp: base, Author: "John", Content: "hello world 😂"},
		{Timestamp: base.Add(10 * time.Minute), Author: "Jane", Content: "hi there"},
		{Timestamp: base.Add(25 * time.Hour), Author: "John", Content: "new day"},
	}
	return parse.ChatData{
		Messages:      msgs,
		Participants:  []string{"John", "Jane"},
		TotalMessages: len(msgs),
		DateRange:     parse.DateRange{Start: msgs[0].Timestamp, End: msgs[2].Timestamp},
	}
}

func TestReportContainsAllSections(t *testing.T) {
	chat := sampleChat()
	data := analyze.Analyze(chat, nil)

	out := Report(data, chat, chat.DateRange, Options{NoColor: true})

	for _, section := range []string{
		"=== Overview ===",
		"=== Messages by Participant ===",
		"=== Messages by Day ===",
		"=== Messages by Hour ===",
		"=== Response Times ===",
		"=== Conversation Starters ===",
		"=== Emoji Usage ===",
		"=== Word Frequency ===",
		"=== Insights ===",
	} {
		if !strings.Contains(out, section) {
			t.Errorf("report missing %q", section)
		}
	}
	if strings.Contains(out, "\033[") {
		t.Error("NoColor report still contains ANSI escapes")
	}
	if !strings.Contains(out, "John") {
		t.Error("report does not mention a participant")
	}
}

func TestReportEmptyData(t *testing.T) {
	data := analyze.Analyze(parse.ChatData{}, nil)
	window := parse.DateRange{Start: time.Now(), End: time.Now(), Label: "All Time"}

	out := Report(data, parse.ChatData{}, window, Options{NoColor: true})

	if !strings.Contains(out, "(no data)") {
		t.Error("empty report should render (no data) placeholders")
	}
}

func TestDailyChartCompressesLongRanges(t *testing.T) {
	data := analyze.AnalyticsData{}
	for i := 0; i < 40; i++ {
		data.MessagesByDay = append(data.MessagesByDay, analyze.DayCount{
			Date:  time.Date(2024, 1, 1+i, 0, 0, 0, 0, time.Local).Format("2006-01-02"),
			Count: i + 1,
		})
	}

	out := Plain(DailyChart(data, Options{TopN: 10}))

	if !strings.Contains(out, "(last 10 of 40 days)") {
		t.Errorf("missing compression note:\n%s", out)
	}
	if strings.Contains(out, "2024-01-01") {
		t.Error("oldest day should be dropped from a compressed chart")
	}
	if !strings.Contains(out, "2024-02-09") {
		t.Error("newest day missing from compressed chart")
	}
}

func TestBarRowScaling(t *testing.T) {
	row := Plain(barRow("tiny", 1, 1000, 80))
	if !strings.Contains(row, "█") {
		t.Errorf("nonzero count should render at least one bar cell: %q", row)
	}

	zero := Plain(barRow("none", 0, 1000, 80))
	if strings.Contains(zero, "█") {
		t.Errorf("zero count should render no bar: %q", zero)
	}
}

func TestFormatMinutes(t *testing.T) {
	if got := formatMinutes(45); got != "45m" {
		t.Errorf("formatMinutes(45) = %q", got)
	}
	if got := formatMinutes(90); got != "1.5h" {
		t.Errorf("formatMinutes(90) = %q", got)
	}
}

func TestPlainStripsEscapes(t *testing.T) {
	in := colorTitle + "hello" + colorReset + " plain"
	if got := Plain(in); got != "hello plain" {
		t.Errorf("Plain = %q", got)
	}
}

package render

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/tomerva/chatscope/internal/analyze"
	"github.com/tomerva/chatscope/internal/parse"
)

const (
	colorReset   = "\033[0m"
	colorTitle   = "\033[1;34m" // bold blue
	colorBar     = "\033[36m"   // cyan
	colorValue   = "\033[1;32m" // bold green
	colorDim     = "\033[2m"
	colorBoldRed = "\033[1;31m"
)

type Options struct {
	Width   int  // total output width (0 = 80)
	NoColor bool // strip ANSI codes for non-terminal output
	TopN    int  // rows per chart (0 = 10)
}

func (o Options) width() int {
	if o.Width <= 0 {
		return 80
	}
	return o.Width
}

func (o Options) topN() int {
	if o.TopN <= 0 {
		return 10
	}
	return o.TopN
}

// Report renders the full analytics report: every chart section plus the
// derived insights.
func Report(data analyze.AnalyticsData, chat parse.ChatData, window parse.DateRange, opts Options) string {
	var b strings.Builder

	b.WriteString(Overview(data, chat, window, opts))
	b.WriteString("\n")
	b.WriteString(ParticipantChart(data, opts))
	b.WriteString("\n")
	b.WriteString(DailyChart(data, opts))
	b.WriteString("\n")
	b.WriteString(HourlyChart(data, opts))
	b.WriteString("\n")
	b.WriteString(ResponseTimeTable(data, opts))
	b.WriteString("\n")
	b.WriteString(StarterChart(data, opts))
	b.WriteString("\n")
	b.WriteString(EmojiChart(data, opts))
	b.WriteString("\n")
	b.WriteString(WordChart(data, opts))
	b.WriteString("\n")
	b.WriteString(InsightList(analyze.GenerateInsights(data, chat), opts))

	out := b.String()
	if opts.NoColor {
		out = Plain(out)
	}
	return out
}

// Overview renders the header block with counts and the active window.
func Overview(data analyze.AnalyticsData, chat parse.ChatData, window parse.DateRange, opts Options) string {
	var b strings.Builder
	b.WriteString(title("Overview"))
	label := window.Label
	if label == "" {
		label = "Custom"
	}
	fmt.Fprintf(&b, "  Window:       %s%s%s (%s - %s)\n",
		colorValue, label, colorReset,
		window.Start.Format("2006-01-02"), window.End.Format("2006-01-02"))
	fmt.Fprintf(&b, "  Messages:     %s%d%s of %d total\n",
		colorValue, data.FilteredMessageCount, colorReset, data.TotalMessageCount)
	fmt.Fprintf(&b, "  Participants: %s%d%s\n", colorValue, len(chat.Participants), colorReset)
	if data.MostActiveDay != "" {
		fmt.Fprintf(&b, "  Busiest day:  %s%s%s\n", colorValue, data.MostActiveDay, colorReset)
	}
	if data.FilteredMessageCount > 0 {
		fmt.Fprintf(&b, "  Busiest hour: %s%02d:00%s\n", colorValue, data.MostActiveHour, colorReset)
		fmt.Fprintf(&b, "  Avg length:   %s%d chars%s\n", colorValue, data.AverageMessageLength, colorReset)
	}
	return b.String()
}

// ParticipantChart renders per-participant message counts as bars.
func ParticipantChart(data analyze.AnalyticsData, opts Options) string {
	var b strings.Builder
	b.WriteString(title("Messages by Participant"))
	if len(data.MessagesByParticipant) == 0 {
		b.WriteString(empty())
		return b.String()
	}
	rows := data.MessagesByParticipant
	if len(rows) > opts.topN() {
		rows = rows[:opts.topN()]
	}
	max := rows[0].Count
	for _, r := range rows {
		b.WriteString(barRow(r.Name, r.Count, max, opts.width()))
	}
	return b.String()
}

// DailyChart renders the per-day histogram. Long chats are compressed to
// the most recent days so the report stays readable.
func DailyChart(data analyze.AnalyticsData, opts Options) string {
	var b strings.Builder
	b.WriteString(title("Messages by Day"))
	if len(data.MessagesByDay) == 0 {
		b.WriteString(empty())
		return b.String()
	}

	days := data.MessagesByDay
	if len(days) > opts.topN() {
		days = days[len(days)-opts.topN():]
		fmt.Fprintf(&b, "  %s(last %d of %d days)%s\n", colorDim, len(days), len(data.MessagesByDay), colorReset)
	}
	max := 0
	for _, d := range days {
		if d.Count > max {
			max = d.Count
		}
	}
	for _, d := range days {
		b.WriteString(barRow(d.Date, d.Count, max, opts.width()))
	}
	return b.String()
}

// HourlyChart renders the 24-bucket hour-of-day histogram.
func HourlyChart(data analyze.AnalyticsData, opts Options) string {
	var b strings.Builder
	b.WriteString(title("Messages by Hour"))
	max := 0
	for _, h := range data.MessagesByHour {
		if h.Count > max {
			max = h.Count
		}
	}
	if max == 0 {
		b.WriteString(empty())
		return b.String()
	}
	for _, h := range data.MessagesByHour {
		b.WriteString(barRow(fmt.Sprintf("%02d:00", h.Hour), h.Count, max, opts.width()))
	}
	return b.String()
}

// ResponseTimeTable renders per-participant reply latency.
func ResponseTimeTable(data analyze.AnalyticsData, opts Options) string {
	var b strings.Builder
	b.WriteString(title("Response Times"))
	rt := data.ResponseTimes
	if len(rt.ByParticipant) == 0 {
		b.WriteString(empty())
		return b.String()
	}
	for _, p := range rt.ByParticipant {
		fmt.Fprintf(&b, "  %-22s %s%s%s avg over %d replies\n",
			truncate(p.Name, 22), colorValue, formatMinutes(p.AverageMinutes), colorReset, p.Count)
	}
	fmt.Fprintf(&b, "  %sOverall average: %s | fastest: %s | slowest: %s%s\n",
		colorDim, formatMinutes(rt.AverageMinutes), rt.FastestResponder, rt.SlowestResponder, colorReset)
	return b.String()
}

// StarterChart renders conversation-start attribution.
func StarterChart(data analyze.AnalyticsData, opts Options) string {
	var b strings.Builder
	b.WriteString(title("Conversation Starters"))
	if len(data.ConversationStarters) == 0 {
		b.WriteString(empty())
		return b.String()
	}
	max := data.ConversationStarters[0].Count
	for _, s := range data.ConversationStarters {
		label := fmt.Sprintf("%s (%d%%)", s.Name, s.Percentage)
		b.WriteString(barRow(label, s.Count, max, opts.width()))
	}
	return b.String()
}

// EmojiChart renders the top emoji and per-participant usage.
func EmojiChart(data analyze.AnalyticsData, opts Options) string {
	var b strings.Builder
	b.WriteString(title("Emoji Usage"))
	ea := data.EmojiAnalysis
	if ea.TotalEmojis == 0 {
		b.WriteString(empty())
		return b.String()
	}
	fmt.Fprintf(&b, "  Total: %s%d%s\n", colorValue, ea.TotalEmojis, colorReset)
	max := ea.TopEmojis[0].Count
	for _, e := range ea.TopEmojis {
		b.WriteString(barRow(e.Emoji, e.Count, max, opts.width()))
	}
	for _, p := range ea.ByParticipant {
		fmt.Fprintf(&b, "  %s%-22s %d emojis%s\n", colorDim, truncate(p.Name, 22), p.Count, colorReset)
	}
	return b.String()
}

// WordChart renders the word-frequency top list.
func WordChart(data analyze.AnalyticsData, opts Options) string {
	var b strings.Builder
	b.WriteString(title("Word Frequency"))
	if len(data.WordFrequency) == 0 {
		b.WriteString(empty())
		return b.String()
	}
	rows := data.WordFrequency
	if len(rows) > opts.topN() {
		rows = rows[:opts.topN()]
	}
	max := rows[0].Count
	for _, w := range rows {
		b.WriteString(barRow(w.Word, w.Count, max, opts.width()))
	}
	return b.String()
}

// InsightList renders the generated insights.
func InsightList(insights []analyze.Insight, opts Options) string {
	var b strings.Builder
	b.WriteString(title("Insights"))
	if len(insights) == 0 {
		b.WriteString(empty())
		return b.String()
	}
	for _, ins := range insights {
		fmt.Fprintf(&b, "  %s%s%s: %s %s(%s)%s\n",
			colorBoldRed, ins.Title, colorReset, ins.Description, colorDim, ins.Value, colorReset)
	}
	return b.String()
}

func title(s string) string {
	return fmt.Sprintf("%s=== %s ===%s\n", colorTitle, s, colorReset)
}

func empty() string {
	return "  " + colorDim + "(no data)" + colorReset + "\n"
}

// barRow renders one labelled horizontal bar scaled against max.
func barRow(label string, count, max, width int) string {
	const labelWidth = 22
	barMax := width - labelWidth - 10
	if barMax < 10 {
		barMax = 10
	}
	n := 0
	if max > 0 {
		n = count * barMax / max
	}
	if n == 0 && count > 0 {
		n = 1
	}
	return fmt.Sprintf("  %-*s %s%s%s %d\n",
		labelWidth, truncate(label, labelWidth), colorBar, strings.Repeat("█", n), colorReset, count)
}

func truncate(s string, max int) string {
	if runewidth.StringWidth(s) <= max {
		return s
	}
	return runewidth.Truncate(s, max, "…")
}

func formatMinutes(m float64) string {
	if m >= 60 {
		return fmt.Sprintf("%.1fh", m/60)
	}
	return fmt.Sprintf("%.0fm", m)
}

// Plain removes ANSI escape sequences for non-terminal output.
func Plain(s string) string {
	var b strings.Builder
	i := 0
	for i < len(s) {
		if i+1 < len(s) && s[i] == '\033' && s[i+1] == '[' {
			j := i + 2
			for j < len(s) && s[j] != 'm' {
				j++
			}
			if j < len(s) {
				j++
			}
			i = j
			continue
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String()
}

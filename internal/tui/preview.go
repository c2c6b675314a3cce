package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tomerva/chatscope/internal/analyze"
	"github.com/tomerva/chatscope/internal/render"
)

// loadChartCmd returns a tea.Cmd that renders the selected chart async.
func (m model) loadChartCmd(chartID string) tea.Cmd {
	presetIdx := m.presetIdx
	return func() tea.Msg {
		return chartRenderedMsg{
			chartID:   chartID,
			presetIdx: presetIdx,
			content:   m.renderChart(chartID, true),
		}
	}
}

// renderChart maps a chart ID to its render function. Plain text (no ANSI)
// is used for clipboard copies.
func (m model) renderChart(chartID string, color bool) string {
	opts := render.Options{
		Width: m.chartWidth(),
		TopN:  24,
	}
	window := m.presets[m.presetIdx]

	var out string
	switch chartID {
	case "overview":
		out = render.Overview(m.data, m.chat, window, opts)
	case "participants":
		out = render.ParticipantChart(m.data, opts)
	case "daily":
		out = render.DailyChart(m.data, opts)
	case "hourly":
		out = render.HourlyChart(m.data, opts)
	case "response":
		out = render.ResponseTimeTable(m.data, opts)
	case "starters":
		out = render.StarterChart(m.data, opts)
	case "emoji":
		out = render.EmojiChart(m.data, opts)
	case "words":
		out = render.WordChart(m.data, opts)
	case "insights":
		out = render.InsightList(analyze.GenerateInsights(m.data, m.chat), opts)
	}
	if !color {
		out = render.Plain(out)
	}
	return out
}

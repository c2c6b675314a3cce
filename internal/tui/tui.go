package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tomerva/chatscope/internal/analyze"
	"github.com/tomerva/chatscope/internal/parse"
)

// chartDef is one selectable chart in the left panel.
type chartDef struct {
	id   string
	name string
}

var charts = []chartDef{
	{"overview", "Overview"},
	{"participants", "Messages by Participant"},
	{"daily", "Messages by Day"},
	{"hourly", "Messages by Hour"},
	{"response", "Response Times"},
	{"starters", "Conversation Starters"},
	{"emoji", "Emoji Usage"},
	{"words", "Word Frequency"},
	{"insights", "Insights"},
}

// message types

type analyticsMsg struct {
	presetIdx int
	data      analyze.AnalyticsData
}

type chartRenderedMsg struct {
	chartID   string
	presetIdx int
	content   string
}

// model

type model struct {
	chat     parse.ChatData
	analyzer *analyze.Analyzer
	presets  []parse.DateRange

	presetIdx int
	data      analyze.AnalyticsData
	haveData  bool

	cursor     int
	listOffset int
	chartView  viewport.Model
	chartKey   string // "chartID:presetIdx" to avoid duplicate renders
	copied     bool

	width    int
	height   int
	ready    bool
	quitting bool
}

func initialModel(chat parse.ChatData, analyzer *analyze.Analyzer) model {
	presets := analyze.DateRangePresets(chat)
	presetIdx := len(presets) - 1 // default to All Time
	if presetIdx < 0 {
		presetIdx = 0
		presets = []parse.DateRange{analyze.DefaultDateRange(chat)}
	}
	return model{
		chat:      chat,
		analyzer:  analyzer,
		presets:   presets,
		presetIdx: presetIdx,
		chartView: viewport.New(0, 0),
	}
}

// Run starts the dashboard and blocks until it exits.
func Run(chat parse.ChatData, analyzer *analyze.Analyzer) error {
	m := initialModel(chat, analyzer)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

// Init triggers the initial analytics pass.
func (m model) Init() tea.Cmd {
	return m.doAnalyze(m.presetIdx)
}

// Update handles messages.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.chartView = viewport.New(m.chartWidth(), m.panelHeight())
		m.chartKey = ""
		if m.haveData {
			cmds = append(cmds, m.loadCurrentChart())
		}
		return m, tea.Batch(cmds...)

	case tea.KeyMsg:
		m.copied = false
		switch {
		case key.Matches(msg, keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, keys.Up):
			if m.cursor > 0 {
				m.cursor--
				m.adjustListScroll(m.panelHeight())
				cmds = append(cmds, m.loadCurrentChart())
			}
			return m, tea.Batch(cmds...)

		case key.Matches(msg, keys.Down):
			if m.cursor < len(charts)-1 {
				m.cursor++
				m.adjustListScroll(m.panelHeight())
				cmds = append(cmds, m.loadCurrentChart())
			}
			return m, tea.Batch(cmds...)

		case key.Matches(msg, keys.PrevRange):
			if m.presetIdx > 0 {
				m.presetIdx--
				cmds = append(cmds, m.doAnalyze(m.presetIdx))
			}
			return m, tea.Batch(cmds...)

		case key.Matches(msg, keys.NextRange):
			if m.presetIdx < len(m.presets)-1 {
				m.presetIdx++
				cmds = append(cmds, m.doAnalyze(m.presetIdx))
			}
			return m, tea.Batch(cmds...)

		case key.Matches(msg, keys.Copy):
			if m.haveData {
				if err := clipboard.WriteAll(m.renderChart(charts[m.cursor].id, false)); err == nil {
					m.copied = true
				}
			}
			return m, nil

		case key.Matches(msg, keys.ChartUp):
			m.chartView.LineUp(m.panelHeight() / 2)
			return m, nil

		case key.Matches(msg, keys.ChartDn):
			m.chartView.LineDown(m.panelHeight() / 2)
			return m, nil

		case key.Matches(msg, keys.PageUp):
			m.chartView.LineUp(m.panelHeight())
			return m, nil

		case key.Matches(msg, keys.PageDown):
			m.chartView.LineDown(m.panelHeight())
			return m, nil
		}
		return m, nil

	case analyticsMsg:
		if msg.presetIdx != m.presetIdx {
			return m, nil // stale, preset changed again meanwhile
		}
		m.data = msg.data
		m.haveData = true
		m.chartKey = ""
		cmds = append(cmds, m.loadCurrentChart())
		return m, tea.Batch(cmds...)

	case chartRenderedMsg:
		if msg.presetIdx != m.presetIdx || msg.chartID != charts[m.cursor].id {
			return m, nil // stale render
		}
		m.chartView.SetContent(msg.content)
		m.chartView.GotoTop()
		m.chartKey = chartCacheKey(msg.chartID, msg.presetIdx)
		return m, nil
	}

	return m, tea.Batch(cmds...)
}

// View renders the full dashboard.
func (m model) View() string {
	if m.quitting || !m.ready {
		return ""
	}

	listW := m.listWidth()
	chartW := m.chartWidth()
	panelH := m.panelHeight()

	listContent := m.renderList(listW, panelH)
	listPanel := stylePanelBorder.
		Width(listW).
		Height(panelH).
		Render(listContent)

	m.chartView.Width = chartW
	m.chartView.Height = panelH
	chartPanel := styleActiveBorder.
		Width(chartW).
		Height(panelH).
		Render(m.chartView.View())

	panels := lipgloss.JoinHorizontal(lipgloss.Top, listPanel, chartPanel)
	return lipgloss.JoinVertical(lipgloss.Left, panels, m.statusBar())
}

// helper methods

func (m model) listWidth() int {
	if m.width <= 0 {
		return 30
	}
	w := m.width*30/100 - 4
	if w < 20 {
		w = 20
	}
	return w
}

func (m model) chartWidth() int {
	if m.width <= 0 {
		return 60
	}
	w := m.width*70/100 - 4
	if w < 20 {
		w = 20
	}
	return w
}

func (m model) panelHeight() int {
	if m.height <= 0 {
		return 20
	}
	// Subtract status bar (1) + borders (4)
	h := m.height - 5
	if h < 5 {
		h = 5
	}
	return h
}

func (m model) statusBar() string {
	preset := m.presets[m.presetIdx]
	var parts []string
	parts = append(parts, fmt.Sprintf("range: %s (%d/%d)",
		stylePreset.Render(preset.Label), m.presetIdx+1, len(m.presets)))
	if m.haveData {
		parts = append(parts, fmt.Sprintf("%d messages", m.data.FilteredMessageCount))
	}
	parts = append(parts, "up/dn chart")
	parts = append(parts, "left/right range")
	if m.copied {
		parts = append(parts, "copied!")
	} else {
		parts = append(parts, "c copy")
	}
	parts = append(parts, "esc quit")
	return styleStatusBar.Render(strings.Join(parts, " | "))
}

func (m model) doAnalyze(presetIdx int) tea.Cmd {
	chat := m.chat
	analyzer := m.analyzer
	window := m.presets[presetIdx]
	return func() tea.Msg {
		data := analyzer.Analyze(chat, &window)
		return analyticsMsg{presetIdx: presetIdx, data: data}
	}
}

func (m model) loadCurrentChart() tea.Cmd {
	if !m.haveData {
		return nil
	}
	id := charts[m.cursor].id
	key := chartCacheKey(id, m.presetIdx)
	if key == m.chartKey {
		return nil // already showing this chart
	}
	return m.loadChartCmd(id)
}

func chartCacheKey(chartID string, presetIdx int) string {
	return fmt.Sprintf("%s:%d", chartID, presetIdx)
}

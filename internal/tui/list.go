package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// linesPerItem is the number of terminal lines each chart entry occupies.
const linesPerItem = 1

// renderList renders the left panel: the selectable chart list.
func (m model) renderList(width, height int) string {
	var lines []string
	for i, c := range charts {
		if i < m.listOffset {
			continue
		}
		if len(lines)+linesPerItem > height {
			break
		}
		lines = append(lines, formatChartLine(c, width, i == m.cursor))
	}

	// Pad remaining lines
	for len(lines) < height {
		lines = append(lines, strings.Repeat(" ", width))
	}

	return strings.Join(lines, "\n")
}

func formatChartLine(c chartDef, width int, selected bool) string {
	name := c.name
	nameMax := width - 2
	if nameMax < 0 {
		nameMax = 0
	}
	if runewidth.StringWidth(name) > nameMax {
		name = runewidth.Truncate(name, nameMax, "")
	}
	if selected {
		return styleListSelected.Render("> " + name)
	}
	return styleListNormal.Render("  " + name)
}

// adjustListScroll keeps the cursor visible within the list panel.
func (m *model) adjustListScroll(listHeight int) {
	visibleItems := listHeight / linesPerItem
	if visibleItems < 1 {
		visibleItems = 1
	}
	if m.cursor < m.listOffset {
		m.listOffset = m.cursor
	}
	if m.cursor >= m.listOffset+visibleItems {
		m.listOffset = m.cursor - visibleItems + 1
	}
}

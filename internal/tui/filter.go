package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/matheuskafuri/grid7/internal/news"
	"github.com/matheuskafuri/grid7/internal/state"
)

// nextCategory steps through news.Categories, wrapping at either end.
func nextCategory(c news.Category, step int) news.Category {
	cats := news.Categories()
	i := 0
	for j, cc := range cats {
		if cc == c {
			i = j
			break
		}
	}
	n := len(cats)
	return cats[((i+step)%n+n)%n]
}

func renderTabs(active state.Tab) string {
	sep := tabSeparatorStyle.Render(" │ ")
	tab := func(t state.Tab, label string) string {
		if t == active {
			return tabActiveStyle.Render(label)
		}
		return tabInactiveStyle.Render(label)
	}
	return tab(state.TabNews, "1 News") + sep + tab(state.TabLaunches, "2 Launches")
}

// renderCategoryBar lays out the category filters, stopping before the
// row would exceed width.
func renderCategoryBar(active news.Category, width int) string {
	sep := tabSeparatorStyle.Render(" · ")
	var row string
	for i, c := range news.Categories() {
		style := tabInactiveStyle
		if c == active {
			style = tabActiveStyle
		}
		candidate := row
		if i > 0 {
			candidate += sep
		}
		candidate += style.Render(string(c))
		if lipgloss.Width(candidate) > width-2 && row != "" {
			break
		}
		row = candidate
	}
	return lipgloss.NewStyle().Width(width).PaddingLeft(1).Render(row)
}

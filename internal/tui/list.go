package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/matheuskafuri/grid7/internal/briefing"
)

func relativeTime(t time.Time, now time.Time) string {
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh", int(d.Hours()))
	case d < 7*24*time.Hour:
		return fmt.Sprintf("%dd", int(d.Hours()/24))
	default:
		return t.Format("Jan 2")
	}
}

// renderCard draws one feed card. speaking marks the article being read
// aloud.
func renderCard(c briefing.Card, selected, speaking bool, width int, now time.Time) string {
	if width < 20 {
		width = 40
	}
	inner := width - 4

	a := c.Article
	marker := "  "
	title := itemTitleStyle.Render(truncateStr(a.Title, inner-2))
	if selected {
		marker = itemSelectedStyle.Render("> ")
		title = itemSelectedStyle.Render(truncateStr(a.Title, inner-2))
	}

	meta := categoryStyle(a.Category).Render(string(a.Category)) +
		itemTimeStyle.Render(" · ") + itemSourceStyle.Render(a.Source) +
		itemTimeStyle.Render(fmt.Sprintf(" · %s · %d min", relativeTime(a.Timestamp, now), c.ReadingTime))
	if speaking {
		meta += noticeStyle.Render("  ♪ reading")
	}

	body := itemBodyStyle.Render(truncateStr(c.Excerpt, inner*2))

	style := cardStyle
	if selected {
		style = cardActiveStyle
	}
	return style.Width(width - 2).Render(marker + title + "\n" + meta + "\n" + body)
}

func truncateStr(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}

// visibleRange returns the window [start, end) of n items of itemHeight
// lines that keeps cursor on screen.
func visibleRange(n, cursor, height, itemHeight int) (int, int) {
	visible := height / itemHeight
	if visible < 1 {
		visible = 1
	}
	start := 0
	if cursor >= visible {
		start = cursor - visible + 1
	}
	end := start + visible
	if end > n {
		end = n
		start = max(end-visible, 0)
	}
	return start, end
}

func lipglossCenter(s string, width, height int) string {
	pad := max((width-len(s))/2, 0)
	return strings.Repeat("\n", height/3) + strings.Repeat(" ", pad) + s
}

func wrapText(s string, width int) string {
	if width <= 0 {
		return s
	}
	words := strings.Fields(s)
	if len(words) == 0 {
		return ""
	}

	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if len(line)+1+len(w) > width {
			lines = append(lines, line)
			line = w
		} else {
			line += " " + w
		}
	}
	lines = append(lines, line)
	return strings.Join(lines, "\n")
}

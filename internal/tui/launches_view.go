package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/matheuskafuri/grid7/internal/news"
	"github.com/matheuskafuri/grid7/internal/timeline"
)

// renderLaunches draws the upcoming launch timeline.
func renderLaunches(events []news.LaunchEvent, cursor, width, height int, now time.Time) string {
	if len(events) == 0 {
		return lipglossCenter("No upcoming launches", width, height)
	}

	// date line, product line, description line, gap
	start, end := visibleRange(len(events), cursor, height, 4)
	inner := max(width-6, 20)

	var b strings.Builder
	for i := start; i < end; i++ {
		e := events[i]
		marker := "  "
		name := itemTitleStyle.Render(e.ProductName)
		if i == cursor {
			marker = itemSelectedStyle.Render("> ")
			name = itemSelectedStyle.Render(e.ProductName)
		}

		b.WriteString(marker + itemTimeStyle.Render(e.Date.Format("Mon Jan 2, 2006")) +
			"  " + noticeStyle.Render(timeline.Countdown(e, now)) + "\n")
		b.WriteString("  │ " + name + itemTimeStyle.Render(" · ") + itemSourceStyle.Render(e.Company) +
			"  " + launchTypeStyle(e.Type).Render(fmt.Sprintf("[%s]", e.Type)) + "\n")
		b.WriteString("  │ " + itemBodyStyle.Render(truncateStr(e.Description, inner)))
		if i < end-1 {
			b.WriteString("\n\n")
		}
	}
	return b.String()
}

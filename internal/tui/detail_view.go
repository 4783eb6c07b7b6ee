package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/matheuskafuri/grid7/internal/news"
	"github.com/matheuskafuri/grid7/internal/signal"
)

// renderDetail draws the article modal. scroll skips leading body lines;
// a non-nil breakdown is shown under the metadata.
func renderDetail(a news.Article, breakdown *signal.Breakdown, speaking bool, width, height, scroll int) string {
	contentWidth := min(width-8, 90)
	if contentWidth < 20 {
		contentWidth = 20
	}

	title := modalTitleStyle.Width(contentWidth).Render(a.Title)
	meta := categoryStyle(a.Category).Render(string(a.Category)) +
		itemTimeStyle.Render(fmt.Sprintf(" · %s · %s", a.Source, a.Timestamp.Format("Jan 2, 2006 15:04")))
	if a.Score > 0 {
		meta += itemTimeStyle.Render(fmt.Sprintf(" · signal %.1f", a.Score))
	}

	text := a.Content
	if text == "" {
		text = a.Summary
	}
	if text == "" {
		text = "(No content available)"
	}
	var signalLines []string
	if breakdown != nil {
		signalLines = renderBreakdown(*breakdown)
	}

	bodyLines := strings.Split(wrapText(text, contentWidth), "\n")
	// title, meta, link and hints take roughly ten rows with padding
	room := max(height-14-len(signalLines), 3)
	if scroll > 0 && scroll < len(bodyLines) {
		bodyLines = bodyLines[scroll:]
	}
	if len(bodyLines) > room {
		bodyLines = bodyLines[:room]
	}
	body := itemBodyStyle.Render(strings.Join(bodyLines, "\n"))

	link := linkStyle.Width(contentWidth).Render(a.Link())

	speak := "p speak"
	if speaking {
		speak = "p stop reading"
	}
	hints := helpDimStyle.Render(fmt.Sprintf("o open  c share  %s  i signal  ↑/↓ scroll  esc close", speak))

	parts := []string{title, meta}
	if len(signalLines) > 0 {
		parts = append(parts, "")
		parts = append(parts, signalLines...)
	}
	parts = append(parts, "", body, "", link, "", hints)
	content := lipgloss.JoinVertical(lipgloss.Left, parts...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, modalStyle.Render(content))
}

func renderBreakdown(b signal.Breakdown) []string {
	bar := func(label string, v float64) string {
		filled := min(max(int(v*10+0.5), 0), 10)
		return itemTimeStyle.Render(fmt.Sprintf("  %-9s", label)) +
			noticeStyle.Render(strings.Repeat("█", filled)) +
			helpDimStyle.Render(strings.Repeat("░", 10-filled)) +
			itemTimeStyle.Render(fmt.Sprintf(" %.2f", v))
	}
	return []string{
		itemBodyStyle.Render(fmt.Sprintf("Signal %.1f", b.Final)),
		bar("recency", b.Recency),
		bar("source", b.SourceWeight),
		bar("depth", b.Depth),
		bar("keywords", b.KeywordDensity),
	}
}

package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/matheuskafuri/grid7/internal/subscribe"
)

func renderSubscribe(st subscribe.Status, input, spin string, width, height int) string {
	title := modalTitleStyle.Render("Subscribe to the Grid7 briefing")

	var body, hints string
	switch st.Phase {
	case subscribe.Generating, subscribe.Sending:
		body = spin + " " + itemBodyStyle.Render(st.Message)
		hints = "esc hide"
	case subscribe.Sent:
		body = successStyle.Render("Transmission complete.") + "\n" + itemBodyStyle.Render(st.Message)
		hints = "enter done"
	case subscribe.Failed:
		body = errorStyle.Render(st.Message)
		hints = "r retry  esc close"
	default:
		body = itemBodyStyle.Render("Daily intelligence briefing, delivered.") + "\n\n" + input
		if st.Message != "" {
			body += "\n" + errorStyle.Render(st.Message)
		}
		hints = "enter subscribe  esc cancel"
	}

	content := lipgloss.JoinVertical(lipgloss.Left, title, body, "", helpDimStyle.Render(hints))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, modalStyle.Width(min(width-4, 64)).Render(content))
}

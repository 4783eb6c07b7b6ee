package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var asciiLogo = []string{
	` ██████╗ ██████╗ ██╗██████╗ ███████╗`,
	`██╔════╝ ██╔══██╗██║██╔══██╗╚════██║`,
	`██║  ███╗██████╔╝██║██║  ██║    ██╔╝`,
	`██║   ██║██╔══██╗██║██║  ██║   ██╔╝ `,
	`╚██████╔╝██║  ██║██║██████╔╝   ██║  `,
	` ╚═════╝ ╚═╝  ╚═╝╚═╝╚═════╝    ╚═╝  `,
}

const tagline = "Tech intelligence, decrypted."

func renderSplash(width, height int, spin string) string {
	logoStyle := lipgloss.NewStyle().Foreground(colorPrimary)

	var lines []string
	for _, l := range asciiLogo {
		lines = append(lines, logoStyle.Render(l))
	}
	lines = append(lines, "", helpDimStyle.Render(tagline), "")
	lines = append(lines, spin+" "+itemBodyStyle.Render("Establishing uplink..."))
	lines = append(lines, "", helpDimStyle.Render("press any key"))

	content := strings.Join(lines, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

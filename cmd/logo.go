package cmd

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

const logoRaw = `


 ██████╗ ██╗  ██╗███████╗███████╗ ██████╗██████╗ ███████╗████████╗███████╗
██╔════╝ ██║  ██║██╔════╝██╔════╝██╔════╝██╔══██╗██╔════╝╚══██╔══╝██╔════╝
██║  ███╗███████║███████╗█████╗  ██║     ██████╔╝█████╗     ██║   ███████╗
██║   ██║██╔══██║╚════██║██╔══╝  ██║     ██╔══██╗██╔══╝     ██║   ╚════██║
╚██████╔╝██║  ██║███████║███████╗╚██████╗██║  ██║███████╗   ██║   ███████║
 ╚═════╝ ╚═╝  ╚═╝╚══════╝╚══════╝ ╚═════╝╚═╝  ╚═╝╚══════╝   ╚═╝   ╚══════╝
`

var (
	gradientStart = "#2dba4e" // actions green
	gradientEnd   = "#0969da" // link blue
)

func renderLogo() string {
	lines := strings.Split(strings.TrimPrefix(logoRaw, "\n"), "\n")

	// Box drawing glyphs are multi-byte, measure in runes
	maxWidth := 0
	for _, line := range lines {
		if n := utf8.RuneCountInString(line); n > maxWidth {
			maxWidth = n
		}
	}
	if maxWidth == 0 {
		return ""
	}

	startColor, _ := colorful.Hex(gradientStart)
	endColor, _ := colorful.Hex(gradientEnd)

	var result strings.Builder
	for _, line := range lines {
		col := 0
		for _, char := range line {
			if char == ' ' {
				result.WriteRune(char)
			} else {
				c := startColor.BlendLuv(endColor, float64(col)/float64(maxWidth))
				style := lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex()))
				result.WriteString(style.Render(string(char)))
			}
			col++
		}
		result.WriteString("\n")
	}

	return result.String()
}

var logo = renderLogo()

package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/seiyeolo/park-golf-master/internal/ui/theme"
)

const bannerArt = `
 ┏━┓┏━┓┏━┓╻┏    ┏━╸┏━┓╻  ┏━╸
 ┣━┛┣━┫┣┳┛┣┻┓   ┃╺┓┃ ┃┃  ┣╸
 ╹  ╹ ╹╹┗╸╹ ╹   ┗━┛┗━┛┗━╸╹   `

const bannerCompact = "P A R K   G O L F"

const flagArt = `   |>
   |
 __|__ ○`

// RenderBanner returns the banner styled in the primary color.
// Uses a compact fallback for terminals narrower than 40 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 40 {
		return style.Render(bannerCompact)
	}
	return lipgloss.NewStyle().Foreground(theme.Accent).Render(flagArt) + "\n" + style.Render(bannerArt)
}

package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/careermap/pkg/controller"
)

var (
	colorCyan   = lipgloss.Color("36")
	colorGreen  = lipgloss.Color("35")
	colorYellow = lipgloss.Color("220")
	colorRed    = lipgloss.Color("167")
	colorBlue   = lipgloss.Color("75")
	colorWhite  = lipgloss.Color("255")
	colorGray   = lipgloss.Color("245")
	colorDim    = lipgloss.Color("240")
)

var (
	styleTitle    = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleDim      = lipgloss.NewStyle().Foreground(colorDim)
	styleValue    = lipgloss.NewStyle().Foreground(colorWhite)
	styleMatch    = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleSelected = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleLink     = lipgloss.NewStyle().Foreground(colorBlue).Underline(true)
	styleBadge    = lipgloss.NewStyle().Foreground(colorYellow)

	styleTabActive   = lipgloss.NewStyle().Bold(true).Foreground(colorWhite).Background(colorCyan).Padding(0, 1)
	styleTabInactive = lipgloss.NewStyle().Foreground(colorGray).Padding(0, 1)

	stylePanel = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorDim).Padding(0, 1)
	styleModal = lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(colorCyan).Padding(0, 1)
)

func notificationStyle(k controller.Kind) lipgloss.Style {
	switch k {
	case controller.KindSuccess:
		return lipgloss.NewStyle().Foreground(colorGreen)
	case controller.KindError:
		return lipgloss.NewStyle().Foreground(colorRed)
	case controller.KindWarning:
		return lipgloss.NewStyle().Foreground(colorYellow)
	default:
		return lipgloss.NewStyle().Foreground(colorGray)
	}
}

// Terminal stand-ins for the notification icons.
var kindGlyph = map[controller.Kind]string{
	controller.KindInfo:    "›",
	controller.KindSuccess: "✓",
	controller.KindError:   "✗",
	controller.KindWarning: "!",
}

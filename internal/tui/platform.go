package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"calwatch/internal/host"
)

// ColorCapable resolves the display.color setting. "auto" asks the terminal.
func ColorCapable(setting string) bool {
	switch setting {
	case "on":
		return true
	case "off":
		return false
	}
	return profileHasColor(lipgloss.ColorProfile())
}

func profileHasColor(p termenv.Profile) bool {
	return p != termenv.Ascii
}

// NewPlatform describes the emulated display for shape ("rect" or "round")
func NewPlatform(shape, color string) host.Platform {
	p := host.Platform{DisplayShape: host.ShapeRect, Color: ColorCapable(color)}
	if shape == "round" {
		p.DisplayShape = host.ShapeRound
	}
	return p
}

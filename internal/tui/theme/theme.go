// Package theme provides color themes for the TUI.
package theme

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme holds all colors for a TUI theme.
type Theme struct {
	Name      string
	Bg        string // base background
	BgPanel   string // overlay and field backgrounds
	Fg        string // primary foreground
	FgMuted   string // placeholders, muted elements
	Accent    string // borders, titles, selected days
	Selection string // in-range day highlight
	Error     string // rejected input, misordered ranges
	Hover     string // cursor day, hover previews
}

// Catppuccin variants.
var themes = map[string]Theme{
	"mocha": {
		Name:      "mocha",
		Bg:        "#1e1e2e",
		BgPanel:   "#313244",
		Fg:        "#cdd6f4",
		FgMuted:   "#6c7086",
		Accent:    "#89b4fa",
		Selection: "#45475a",
		Error:     "#f38ba8",
		Hover:     "#f9e2af",
	},
	"macchiato": {
		Name:      "macchiato",
		Bg:        "#24273a",
		BgPanel:   "#363a4f",
		Fg:        "#cad3f5",
		FgMuted:   "#6e738d",
		Accent:    "#8aadf4",
		Selection: "#494d64",
		Error:     "#ed8796",
		Hover:     "#eed49f",
	},
	"frappe": {
		Name:      "frappe",
		Bg:        "#303446",
		BgPanel:   "#414559",
		Fg:        "#c6d0f5",
		FgMuted:   "#737994",
		Accent:    "#8caaee",
		Selection: "#51576d",
		Error:     "#e78284",
		Hover:     "#e5c890",
	},
	"latte": {
		Name:      "latte",
		Bg:        "#eff1f5",
		BgPanel:   "#ccd0da",
		Fg:        "#4c4f69",
		FgMuted:   "#8c8fa1",
		Accent:    "#1e66f5",
		Selection: "#bcc0cc",
		Error:     "#d20f39",
		Hover:     "#df8e1d",
	},
}

// Load returns a theme by name, falling back to mocha for unknown
// names. The error reports the fallback so callers can warn.
func Load(name string) (*Theme, error) {
	if name == "" {
		name = "mocha"
	}
	name = strings.ToLower(name)

	t, ok := themes[name]
	if !ok {
		fallback := themes["mocha"]
		return &fallback, fmt.Errorf("unknown theme %q, using mocha", name)
	}
	return &t, nil
}

// Names returns the available theme names.
func Names() []string {
	return []string{"mocha", "macchiato", "frappe", "latte"}
}

// IsAvailable reports whether name is a known theme.
func IsAvailable(name string) bool {
	_, ok := themes[strings.ToLower(name)]
	return ok
}

// Color returns a lipgloss.Color for the given hex string.
func Color(hex string) lipgloss.Color {
	return lipgloss.Color(hex)
}

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// compositeOverlay draws overlay on top of base at character position
// (x, y). Base is normalized to width x height first; overlay rows are
// spliced in with width-aware cuts so styled content survives.
func compositeOverlay(base, overlay string, x, y, width, height int) string {
	if width <= 0 || height <= 0 || overlay == "" {
		return base
	}

	baseLines := normalizeLines(base, width, height)
	overlayLines := strings.Split(overlay, "\n")
	for len(overlayLines) > 0 && overlayLines[len(overlayLines)-1] == "" {
		overlayLines = overlayLines[:len(overlayLines)-1]
	}

	for i, line := range overlayLines {
		row := y + i
		if row < 0 || row >= height {
			continue
		}
		lineWidth := lipgloss.Width(line)
		if x+lineWidth > width {
			line = ansi.Cut(line, 0, width-x)
			lineWidth = width - x
		}

		baseLine := baseLines[row]
		leftSlice := ansi.Cut(baseLine, 0, x)
		rightSlice := ansi.Cut(baseLine, x+lineWidth, width)
		baseLines[row] = leftSlice + line + rightSlice
	}

	return strings.Join(baseLines, "\n")
}

// normalizeLines pads or trims content to exactly width x height.
func normalizeLines(content string, width, height int) []string {
	lines := strings.Split(content, "\n")
	for len(lines) < height {
		lines = append(lines, "")
	}
	if len(lines) > height {
		lines = lines[:height]
	}

	for i, line := range lines {
		lineWidth := lipgloss.Width(line)
		if lineWidth > width {
			lines[i] = ansi.Cut(line, 0, width)
			continue
		}
		if lineWidth < width {
			lines[i] = line + strings.Repeat(" ", width-lineWidth)
		}
	}

	return lines
}

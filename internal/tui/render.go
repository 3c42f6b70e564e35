package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/linksound/wavekit/internal/waveform"
	"github.com/linksound/wavekit/pkg/numeric"
)

// Block characters for amplitude visualization (8 levels, bottom to top).
// Index 0 = empty (space), 1-8 = increasing fill levels.
const blockChars = " ▁▂▃▄▅▆▇█"

// Render draws a frame into a width×height character grid. Linear layouts
// become vertical bars; the circular layout becomes a radial dot plot.
func Render(frame waveform.Frame, width, height int) string {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	if len(frame.Geometry) == 0 {
		return renderEmpty(width, height)
	}

	if frame.Layout == waveform.LayoutCircular {
		return renderCircular(frame, width, height)
	}

	return renderBars(frame, width, height)
}

// renderBars renders linear geometry as block-character columns, one column
// per display cell, colored from the style's gradient left to right.
func renderBars(frame waveform.Frame, width, height int) string {
	levels := make([]int, width)
	maxLevel := height * 8

	for _, bar := range frame.Geometry {
		col := numeric.Clamp(int(bar.X*float64(width)), 0, width-1)
		level := int(normalizedHeight(bar.Height, frame.Style.MinHeight, frame.Style.MaxHeight) * float64(maxLevel))
		if level > levels[col] {
			levels[col] = level
		}
	}

	runes := []rune(blockChars)

	var sb strings.Builder
	for row := 0; row < height; row++ {
		if row > 0 {
			sb.WriteString("\n")
		}

		for col := 0; col < width; col++ {
			idx := blockIndexForRow(levels[col], row, height)
			cell := string(runes[idx])
			frac := float64(col) / float64(max(width-1, 1))
			sb.WriteString(barStyle(frame, frac).Render(cell))
		}
	}

	return sb.String()
}

// renderCircular plots each bar at its unit-circle position scaled by its
// normalized height, with a dim ring marking the full radius.
func renderCircular(frame waveform.Frame, width, height int) string {
	grid := make([][]string, height)
	for y := range grid {
		grid[y] = make([]string, width)
		for x := range grid[y] {
			grid[y][x] = " "
		}
	}

	// Terminal cells are roughly twice as tall as wide.
	cx, cy := float64(width)/2, float64(height)/2
	rx, ry := cx-1, cy-1

	plot := func(ux, uy, extent float64, cell string, style lipgloss.Style) {
		x := int(cx + ux*extent*rx)
		y := int(cy + uy*extent*ry)
		if x >= 0 && x < width && y >= 0 && y < height {
			grid[y][x] = style.Render(cell)
		}
	}

	n := len(frame.Geometry)
	for i, bar := range frame.Geometry {
		frac := float64(i) / float64(max(n-1, 1))
		extent := normalizedHeight(bar.Height, frame.Style.MinHeight, frame.Style.MaxHeight)

		// Draw the bar as a ray from the center out to its extent.
		steps := max(1, int(extent*ry*2))
		for s := 1; s <= steps; s++ {
			t := float64(s) / float64(steps)
			plot(bar.X, bar.Y, extent*t, "•", barStyle(frame, frac))
		}
	}

	rows := make([]string, height)
	for y := range grid {
		rows[y] = strings.Join(grid[y], "")
	}

	return strings.Join(rows, "\n")
}

// renderEmpty renders a baseline for when there is no geometry yet.
func renderEmpty(width, height int) string {
	var sb strings.Builder
	for row := 0; row < height; row++ {
		if row > 0 {
			sb.WriteString("\n")
		}
		if row == height-1 {
			sb.WriteString(strings.Repeat("▁", width))
		} else {
			sb.WriteString(strings.Repeat(" ", width))
		}
	}
	return sb.String()
}

// blockIndexForRow returns the block character index (0-8) for a column
// level at a row. Row 0 is the top.
func blockIndexForRow(level, row, height int) int {
	rowFromBottom := height - 1 - row
	fill := level - rowFromBottom*8

	if fill <= 0 {
		return 0
	}
	if fill >= 8 {
		return 8
	}
	return fill
}

// normalizedHeight maps a bar height from [minH,maxH] back to [0,1].
func normalizedHeight(h, minH, maxH float64) float64 {
	if maxH <= minH {
		return 0
	}
	return numeric.Clamp((h-minH)/(maxH-minH), 0, 1)
}

// barStyle picks the gradient stop for a horizontal fraction of the layout.
func barStyle(frame waveform.Frame, frac float64) lipgloss.Style {
	stops := frame.Style.ColorStops
	if len(stops) == 0 {
		return lipgloss.NewStyle()
	}

	idx := numeric.Clamp(int(frac*float64(len(stops))), 0, len(stops)-1)
	return lipgloss.NewStyle().Foreground(stops[idx])
}

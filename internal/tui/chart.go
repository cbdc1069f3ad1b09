package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/LukeFitzGit/MyGymLog/internal/models"
)

const chartHeight = 6

// RenderTrendCard draws one exercise's estimated-1RM series as a bordered
// column chart. A single point is not a trend, so short series render a hint
// instead.
func RenderTrendCard(title string, points []models.TrendPoint) string {
	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Padding(0, 2)

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccentMain))

	header := titleStyle.Render(fmt.Sprintf("%s (Est. 1RM)", title))

	if len(points) < 2 {
		emptyStyle := lipgloss.NewStyle().
			Italic(true).
			Foreground(lipgloss.Color(ColorDisabledText))
		return cardStyle.Render(header + "\n\n" +
			emptyStyle.Render(fmt.Sprintf("Need more %s data to show trend.", title)))
	}

	return cardStyle.Render(header + "\n\n" + renderColumns(points))
}

// renderColumns scales the series into chartHeight rows of block columns,
// with the value axis on the left and first/last date labels underneath
func renderColumns(points []models.TrendPoint) string {
	minValue, maxValue := points[0].Value, points[0].Value
	for _, p := range points {
		if p.Value < minValue {
			minValue = p.Value
		}
		if p.Value > maxValue {
			maxValue = p.Value
		}
	}

	// Column height in eighth-blocks; a flat series still draws one row
	span := maxValue - minValue
	levels := make([]int, len(points))
	for i, p := range points {
		if span == 0 {
			levels[i] = chartHeight * 8 / 2
			continue
		}
		levels[i] = 8 + (p.Value-minValue)*(chartHeight*8-8)/span
	}

	blocks := []rune(" ▁▂▃▄▅▆▇█")
	lineStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))
	axisStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))

	var b strings.Builder
	for row := chartHeight - 1; row >= 0; row-- {
		switch row {
		case chartHeight - 1:
			b.WriteString(axisStyle.Render(fmt.Sprintf("%5d ", maxValue)))
		case 0:
			b.WriteString(axisStyle.Render(fmt.Sprintf("%5d ", minValue)))
		default:
			b.WriteString(strings.Repeat(" ", 6))
		}

		var line strings.Builder
		for _, level := range levels {
			remaining := level - row*8
			switch {
			case remaining >= 8:
				line.WriteRune(blocks[8])
			case remaining > 0:
				line.WriteRune(blocks[remaining])
			default:
				line.WriteRune(blocks[0])
			}
			line.WriteRune(' ')
		}
		b.WriteString(lineStyle.Render(line.String()))
		b.WriteString("\n")
	}

	first, last := points[0].Label, points[len(points)-1].Label
	width := len(points) * 2
	gap := width - len(first) - len(last)
	if gap < 1 {
		gap = 1
	}
	b.WriteString(strings.Repeat(" ", 6))
	b.WriteString(axisStyle.Render(first + strings.Repeat(" ", gap) + last))
	return b.String()
}

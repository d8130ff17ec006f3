package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/tablero/internal/models"
)

// HeaderProps describes the line above the columns
type HeaderProps struct {
	Layout models.Layout
	Total  int
	Hidden int
	Width  int
}

// RenderHeader renders "tablero  <layout> layout · N tasks · M hidden"
func RenderHeader(p HeaderProps) string {
	parts := []string{
		fmt.Sprintf("%s layout", p.Layout.Name),
		pluralize(p.Total, "task"),
	}
	if p.Hidden > 0 {
		parts = append(parts, fmt.Sprintf("%d hidden", p.Hidden))
	}

	left := TitleStyle.Render("tablero")
	right := SubtleStyle.Render(strings.Join(parts, " · "))

	gap := max(p.Width-lipgloss.Width(left)-lipgloss.Width(right), 2)
	return left + strings.Repeat(" ", gap) + right
}

func pluralize(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

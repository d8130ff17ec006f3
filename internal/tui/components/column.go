package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/tui/theme"
)

// ColumnProps is everything RenderColumn needs; it never reads the board
type ColumnProps struct {
	Status models.Status
	Tasks  []models.Task

	Selected bool
	// SelectedTask is the index of the selected card, -1 for none
	SelectedTask int
	// DropTarget marks the column under a dragged card
	DropTarget bool
	// Dragging is the id of the card being dragged, 0 for none
	Dragging models.TaskID

	// Height is the total column height including borders (0 for auto)
	Height       int
	ScrollOffset int
}

// VisibleTasks returns how many cards fit in a column of the given height
func VisibleTasks(height int) int {
	if height <= 0 {
		return 1 << 30
	}
	return max((height-columnOverhead)/TaskCardHeight, 1)
}

// RenderColumn renders a complete column with its title and cards
//
// Layout:
//
//	{Column Name} ({count})
//	▲ more above (if scrolled down)
//	{Task 1}
//	{Task 2}
//	...
//	▼ more below (if more tasks below)
func RenderColumn(p ColumnProps) string {
	header := TitleStyle.Render(fmt.Sprintf("%s (%d)", p.Status.Label(), len(p.Tasks)))
	if p.DropTarget {
		header = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(theme.DropTarget)).
			Render("↓ " + p.Status.Label())
	}

	lines := []string{header}

	if len(p.Tasks) == 0 {
		lines = append(lines, "", lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Subtle)).
			Italic(true).
			Render("No tasks"))
	} else {
		visible := VisibleTasks(p.Height)
		start := min(max(0, p.ScrollOffset), len(p.Tasks)-1)
		end := min(start+visible, len(p.Tasks))

		// The top indicator line is always reserved so cards do not jump
		if start > 0 {
			lines = append(lines, IndicatorStyle.Render("▲ more above"))
		} else {
			lines = append(lines, "")
		}

		for i, task := range p.Tasks[start:end] {
			lines = append(lines, RenderTask(task, CardState{
				Selected: p.Selected && start+i == p.SelectedTask,
				Dragging: p.Dragging != 0 && task.ID == p.Dragging,
			}))
		}

		if end < len(p.Tasks) {
			lines = append(lines, IndicatorStyle.Render("▼ more below"))
		}
	}

	style := ColumnStyle
	switch {
	case p.DropTarget:
		style = style.BorderForeground(lipgloss.Color(theme.DropTarget))
	case p.Selected:
		style = style.BorderForeground(lipgloss.Color(theme.SelectedBorder))
	}
	if p.Height > 0 {
		style = style.Height(p.Height)
	}

	return style.Render(strings.Join(lines, "\n"))
}

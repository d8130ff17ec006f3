package components

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/tui/theme"
)

// CardState is the transient UI state a card renders with
type CardState struct {
	Selected bool
	// Dragging marks the card picked up by the current gesture
	Dragging bool
}

// RenderTask renders a single task as a fixed-size card
//
//	┏━━━━━━━━━━━━━━━━━━━━━━━━━━┓
//	┃ {Task Title}             ┃
//	┃ #id · priority · due     ┃
//	┃ @assignee #tag           ┃
//	┗━━━━━━━━━━━━━━━━━━━━━━━━━━┛
func RenderTask(task models.Task, cs CardState) string {
	bg := theme.TaskBg
	border := theme.TaskBorder
	switch {
	case cs.Dragging:
		bg = theme.SelectedBg
		border = theme.Dragging
	case cs.Selected:
		bg = theme.SelectedBg
		border = theme.SelectedBorder
	}

	lines := []string{
		renderCardTitle(task, cs),
		renderCardMetadata(task, bg),
		renderCardPeople(task, bg),
	}

	return TaskStyle.
		BorderForeground(lipgloss.Color(border)).
		BorderBackground(lipgloss.Color(bg)).
		Background(lipgloss.Color(bg)).
		Render(strings.Join(lines, "\n"))
}

func renderCardTitle(task models.Task, cs CardState) string {
	prefix := ""
	if cs.Dragging {
		prefix = "✥ "
	}
	title := ansi.Truncate(prefix+task.Title, taskTextWidth, "…")
	return lipgloss.NewStyle().Bold(true).Render(title)
}

// renderCardMetadata renders id, priority and due date on one line
func renderCardMetadata(task models.Task, bg string) string {
	sep := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle)).
		Background(lipgloss.Color(bg)).
		Render(" · ")

	id := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle)).
		Background(lipgloss.Color(bg)).
		Render(fmt.Sprintf("#%d", task.ID))

	priority := lipgloss.NewStyle().
		Foreground(lipgloss.Color(task.Priority.Color())).
		Background(lipgloss.Color(bg)).
		Render(string(task.Priority))

	parts := []string{id, priority}
	if task.DueDate != nil {
		dueStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Subtle)).
			Background(lipgloss.Color(bg))
		if task.Overdue(time.Now()) {
			dueStyle = dueStyle.Foreground(lipgloss.Color(theme.ErrorFg)).Bold(true)
		}
		parts = append(parts, dueStyle.Render(task.DueDate.Format("Jan 02")))
	}

	return ansi.Truncate(strings.Join(parts, sep), taskTextWidth, "…")
}

// renderCardPeople renders the assignee and tags, or a muted placeholder
func renderCardPeople(task models.Task, bg string) string {
	var parts []string
	if task.AssignedTo != "" {
		parts = append(parts, "@"+task.AssignedTo)
	}
	for _, tag := range task.Tags {
		parts = append(parts, "#"+tag)
	}

	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Accent)).
		Background(lipgloss.Color(bg))
	if len(parts) == 0 {
		return style.Foreground(lipgloss.Color(theme.Subtle)).Italic(true).Render("unassigned")
	}
	return style.Render(ansi.Truncate(strings.Join(parts, " "), taskTextWidth, "…"))
}

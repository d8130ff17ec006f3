package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/tablero/internal/markdown"
	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/tui/theme"
)

// DetailInnerWidth is the content width of a detail panel width cells wide
func DetailInnerWidth(width int) int {
	return max(width, 30) - DetailBoxStyle.GetHorizontalFrameSize()
}

// DetailChrome is the number of rows the frame and key hints add around
// the scrollable content
func DetailChrome() int {
	return DetailBoxStyle.GetVerticalFrameSize() + 2
}

// DetailContent renders the scrollable body of the detail panel opened by a
// card click: title, fields and the markdown description
func DetailContent(task models.Task, width int) string {
	inner := DetailInnerWidth(width)

	label := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle)).Width(10)
	row := func(name, value string) string {
		return label.Render(name) + value
	}

	rows := []string{
		TitleStyle.Render(fmt.Sprintf("#%d %s", task.ID, task.Title)),
		"",
		row("Status", task.Status.Label()),
		row("Priority", lipgloss.NewStyle().Foreground(lipgloss.Color(task.Priority.Color())).Render(string(task.Priority))),
	}
	if task.AssignedTo != "" {
		rows = append(rows, row("Assignee", "@"+task.AssignedTo))
	}
	if len(task.Tags) > 0 {
		rows = append(rows, row("Tags", "#"+strings.Join(task.Tags, " #")))
	}
	if task.DueDate != nil {
		rows = append(rows, row("Due", task.DueDate.Format("2006-01-02")))
	}
	if !task.UpdatedAt.IsZero() {
		rows = append(rows, row("Updated", task.UpdatedAt.Format("2006-01-02 15:04")))
	}

	rows = append(rows, "")
	if task.Description == "" {
		rows = append(rows, SubtleStyle.Italic(true).Render("No description"))
	} else {
		rows = append(rows, markdown.Render(task.Description, inner))
	}

	return strings.Join(rows, "\n")
}

// RenderDetail frames detail content with its key hints. scroll is shown
// beside the hints when the content overflows.
func RenderDetail(content string, width int, scroll string) string {
	hints := "esc: close  e: edit title"
	if scroll != "" {
		hints += "  j/k: scroll  " + scroll
	}
	return DetailBoxStyle.Width(max(width, 30)).Render(content + "\n\n" + SubtleStyle.Render(hints))
}

// RenderEditor frames the title input
func RenderEditor(task models.Task, input string, width int) string {
	width = max(width, 30)
	content := strings.Join([]string{
		TitleStyle.Render(fmt.Sprintf("Edit title of #%d", task.ID)),
		"",
		input,
		"",
		SubtleStyle.Render("enter: save  esc: cancel"),
	}, "\n")
	return EditBoxStyle.Width(width).Render(content)
}

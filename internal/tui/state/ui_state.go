package state

import "github.com/thenoetrevino/tablero/internal/models"

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	NormalMode Mode = iota // Default navigation mode, including keyboard drag
	DetailMode             // Task detail panel opened by a card click
	EditMode               // Inline title editor opened by an edit request
	HelpMode               // Displaying help screen
)

// String returns the mode name shown in the status bar
func (m Mode) String() string {
	switch m {
	case NormalMode:
		return "NORMAL"
	case DetailMode:
		return "DETAIL"
	case EditMode:
		return "EDIT"
	case HelpMode:
		return "HELP"
	default:
		return "UNKNOWN"
	}
}

// Column geometry shared by the renderer and the viewport maths
const (
	ColumnWidth   = 32 // total rendered width including border and padding
	ColumnSpacing = 1
	reservedWidth = 2 // scroll arrows either side of the board
)

// UIState manages the user interface state.
// This includes navigation (column/task selection), the drag hover column,
// viewport scrolling, terminal dimensions, and the current interaction mode.
// Nothing here is task data: the board owns that.
type UIState struct {
	selectedColumn int
	selectedTask   int

	// hoverColumn is the column a dragged card would land on
	hoverColumn int

	width  int
	height int

	mode Mode

	// viewportOffset is the index of the leftmost visible column
	viewportOffset int
	viewportSize   int

	// taskScrollOffsets tracks the index of the first visible card per status
	taskScrollOffsets map[models.Status]int

	// detailTask is the task the detail panel shows
	detailTask models.TaskID
	// editTask is the task the title editor is bound to
	editTask models.TaskID
}

// NewUIState creates a new UIState with default values.
func NewUIState() *UIState {
	return &UIState{
		mode:              NormalMode,
		viewportSize:      1, // recalculated when width is set
		taskScrollOffsets: make(map[models.Status]int),
	}
}

// SelectedColumn returns the index of the currently selected column.
func (s *UIState) SelectedColumn() int {
	return s.selectedColumn
}

// SetSelectedColumn updates the selected column index.
func (s *UIState) SetSelectedColumn(index int) {
	s.selectedColumn = max(0, index)
}

// SelectedTask returns the index of the currently selected task.
func (s *UIState) SelectedTask() int {
	return s.selectedTask
}

// SetSelectedTask updates the selected task index.
func (s *UIState) SetSelectedTask(index int) {
	s.selectedTask = max(0, index)
}

// HoverColumn returns the column index under a dragged card.
func (s *UIState) HoverColumn() int {
	return s.hoverColumn
}

// SetHoverColumn updates the drag hover column.
func (s *UIState) SetHoverColumn(index int) {
	s.hoverColumn = max(0, index)
}

// Width returns the current terminal width.
func (s *UIState) Width() int {
	return s.width
}

// SetWidth updates the terminal width and recalculates viewport size.
func (s *UIState) SetWidth(width int) {
	s.width = width
	s.calculateViewportSize()
}

// Height returns the current terminal height.
func (s *UIState) Height() int {
	return s.height
}

// SetHeight updates the terminal height.
func (s *UIState) SetHeight(height int) {
	s.height = height
}

// ContentHeight returns the available height for the columns.
// This is terminal height minus header and status bar, with a minimum of 5.
func (s *UIState) ContentHeight() int {
	const headerHeight = 2    // header + gap line
	const statusBarHeight = 2 // gap line + status bar
	return max(s.height-headerHeight-statusBarHeight, 5)
}

// Mode returns the current interaction mode.
func (s *UIState) Mode() Mode {
	return s.mode
}

// SetMode updates the current interaction mode.
func (s *UIState) SetMode(mode Mode) {
	s.mode = mode
}

// ViewportOffset returns the index of the leftmost visible column.
func (s *UIState) ViewportOffset() int {
	return s.viewportOffset
}

// SetViewportOffset updates the viewport offset.
func (s *UIState) SetViewportOffset(offset int) {
	s.viewportOffset = max(0, offset)
}

// ViewportSize returns the number of columns that fit on screen.
func (s *UIState) ViewportSize() int {
	return s.viewportSize
}

// calculateViewportSize works out how many columns fit in the terminal
// width, always at least one.
func (s *UIState) calculateViewportSize() {
	if s.width == 0 {
		s.viewportSize = 1
		return
	}
	available := s.width - reservedWidth
	s.viewportSize = max(1, available/(ColumnWidth+ColumnSpacing))
}

// ClampViewport keeps the viewport inside [0, columnsLen).
func (s *UIState) ClampViewport(columnsLen int) {
	if columnsLen == 0 {
		s.viewportOffset = 0
		return
	}
	if s.viewportOffset+s.viewportSize > columnsLen {
		s.viewportOffset = max(0, columnsLen-s.viewportSize)
	}
}

// EnsureSelectionVisible adjusts the viewport so column index is on screen.
// Used for both the selected column and the drag hover column.
func (s *UIState) EnsureSelectionVisible(index int) {
	if index < s.viewportOffset {
		s.viewportOffset = index
	}
	if index >= s.viewportOffset+s.viewportSize {
		s.viewportOffset = index - s.viewportSize + 1
	}
}

// ResetSelection resets both column and task selection to zero.
func (s *UIState) ResetSelection() {
	s.selectedColumn = 0
	s.selectedTask = 0
	s.hoverColumn = 0
	s.viewportOffset = 0
}

// TaskScrollOffset returns the vertical scroll offset for a given column.
func (s *UIState) TaskScrollOffset(status models.Status) int {
	return s.taskScrollOffsets[status]
}

// SetTaskScrollOffset updates the vertical scroll offset for a given column.
func (s *UIState) SetTaskScrollOffset(status models.Status, offset int) {
	s.taskScrollOffsets[status] = max(0, offset)
}

// EnsureTaskVisible adjusts the scroll offset so the selected card is on screen.
//
// Parameters:
//   - status: the column containing the task
//   - selectedTaskIdx: index of the selected task within the column
//   - visibleCount: number of cards that can be displayed at once
func (s *UIState) EnsureTaskVisible(status models.Status, selectedTaskIdx int, visibleCount int) {
	offset := s.TaskScrollOffset(status)
	visibleCount = max(1, visibleCount)

	if selectedTaskIdx < offset {
		s.taskScrollOffsets[status] = selectedTaskIdx
	}
	if selectedTaskIdx >= offset+visibleCount {
		s.taskScrollOffsets[status] = selectedTaskIdx - visibleCount + 1
	}
}

// ClampTaskScroll pulls a column's offset back after the column shrank.
func (s *UIState) ClampTaskScroll(status models.Status, taskCount int, visibleCount int) {
	maxOffset := max(0, taskCount-max(1, visibleCount))
	if s.taskScrollOffsets[status] > maxOffset {
		s.taskScrollOffsets[status] = maxOffset
	}
}

// DetailTask returns the task the detail panel is showing.
func (s *UIState) DetailTask() models.TaskID {
	return s.detailTask
}

// OpenDetail switches to DetailMode for id.
func (s *UIState) OpenDetail(id models.TaskID) {
	s.detailTask = id
	s.mode = DetailMode
}

// EditTask returns the task the title editor is bound to.
func (s *UIState) EditTask() models.TaskID {
	return s.editTask
}

// OpenEditor switches to EditMode for id.
func (s *UIState) OpenEditor(id models.TaskID) {
	s.editTask = id
	s.mode = EditMode
}

// CloseOverlay returns to NormalMode and forgets the detail/edit target.
func (s *UIState) CloseOverlay() {
	s.detailTask = 0
	s.editTask = 0
	s.mode = NormalMode
}

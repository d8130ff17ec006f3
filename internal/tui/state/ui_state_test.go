package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/thenoetrevino/tablero/internal/models"
)

// TestCalculateViewportSize_ZeroWidth ensures viewport defaults to 1 when terminal width is 0.
// Edge case: Terminal not fully initialized yet.
func TestCalculateViewportSize_ZeroWidth(t *testing.T) {
	s := NewUIState()
	s.SetWidth(0)

	assert.Equal(t, 1, s.ViewportSize())
}

// TestCalculateViewportSize_NarrowTerminal keeps at least one column on screen.
func TestCalculateViewportSize_NarrowTerminal(t *testing.T) {
	s := NewUIState()
	s.SetWidth(20)

	assert.Equal(t, 1, s.ViewportSize())
}

func TestCalculateViewportSize_WideTerminal(t *testing.T) {
	s := NewUIState()
	s.SetWidth(2 + 5*(ColumnWidth+ColumnSpacing))

	assert.Equal(t, 5, s.ViewportSize())
}

// TestEnsureSelectionVisible_SelectionBeyondViewport ensures viewport auto-scrolls to show selection.
func TestEnsureSelectionVisible_SelectionBeyondViewport(t *testing.T) {
	s := NewUIState()
	s.SetWidth(2 + 2*(ColumnWidth+ColumnSpacing))
	assert.Equal(t, 2, s.ViewportSize())

	s.EnsureSelectionVisible(3)
	assert.Equal(t, 2, s.ViewportOffset())

	s.EnsureSelectionVisible(0)
	assert.Equal(t, 0, s.ViewportOffset())
}

func TestClampViewport(t *testing.T) {
	s := NewUIState()
	s.SetWidth(2 + 2*(ColumnWidth+ColumnSpacing))
	s.SetViewportOffset(4)

	s.ClampViewport(5)
	assert.Equal(t, 3, s.ViewportOffset())

	s.ClampViewport(0)
	assert.Equal(t, 0, s.ViewportOffset())
}

func TestSetters_NeverGoNegative(t *testing.T) {
	s := NewUIState()
	s.SetSelectedColumn(-1)
	s.SetSelectedTask(-3)
	s.SetHoverColumn(-2)
	s.SetTaskScrollOffset(models.StatusTodo, -5)

	assert.Zero(t, s.SelectedColumn())
	assert.Zero(t, s.SelectedTask())
	assert.Zero(t, s.HoverColumn())
	assert.Zero(t, s.TaskScrollOffset(models.StatusTodo))
}

func TestEnsureTaskVisible(t *testing.T) {
	s := NewUIState()

	s.EnsureTaskVisible(models.StatusReview, 6, 3)
	assert.Equal(t, 4, s.TaskScrollOffset(models.StatusReview))

	s.EnsureTaskVisible(models.StatusReview, 1, 3)
	assert.Equal(t, 1, s.TaskScrollOffset(models.StatusReview))

	// Other columns are untouched
	assert.Zero(t, s.TaskScrollOffset(models.StatusDone))
}

func TestClampTaskScroll(t *testing.T) {
	s := NewUIState()
	s.SetTaskScrollOffset(models.StatusNew, 8)

	s.ClampTaskScroll(models.StatusNew, 5, 3)
	assert.Equal(t, 2, s.TaskScrollOffset(models.StatusNew))

	s.ClampTaskScroll(models.StatusNew, 1, 3)
	assert.Zero(t, s.TaskScrollOffset(models.StatusNew))
}

func TestOverlayTransitions(t *testing.T) {
	s := NewUIState()

	s.OpenDetail(7)
	assert.Equal(t, DetailMode, s.Mode())
	assert.Equal(t, models.TaskID(7), s.DetailTask())

	s.CloseOverlay()
	assert.Equal(t, NormalMode, s.Mode())
	assert.Zero(t, s.DetailTask())

	s.OpenEditor(3)
	assert.Equal(t, EditMode, s.Mode())
	assert.Equal(t, models.TaskID(3), s.EditTask())

	s.CloseOverlay()
	assert.Zero(t, s.EditTask())
}

func TestNotificationState_KeepsNewest(t *testing.T) {
	n := NewNotificationState()
	for _, msg := range []string{"a", "b", "c", "d"} {
		n.Add(LevelInfo, msg)
	}

	all := n.All()
	assert.Len(t, all, 3)
	assert.Equal(t, "b", all[0].Message)

	latest, ok := n.Latest()
	assert.True(t, ok)
	assert.Equal(t, "d", latest.Message)

	n.Add(LevelError, "boom")
	n.ClearLevel(LevelInfo)
	assert.Len(t, n.All(), 1)

	n.Clear()
	assert.False(t, n.HasAny())
	_, ok = n.Latest()
	assert.False(t, ok)
}

func TestDataSourceString(t *testing.T) {
	assert.Equal(t, "live", SourceLive.String())
	assert.Equal(t, "mock data", SourceMock.String())
	assert.Equal(t, "Connected", Connected.String())
}

package notifications

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/thenoetrevino/tablero/internal/tui/state"
)

func TestFromLevel(t *testing.T) {
	assert.Equal(t, Info, FromLevel(state.LevelInfo))
	assert.Equal(t, Warning, FromLevel(state.LevelWarning))
	assert.Equal(t, Error, FromLevel(state.LevelError))
}

func TestRenderInline_ContainsIconAndMessage(t *testing.T) {
	out := ansi.Strip(RenderInlineFromState(state.Notification{
		Level:   state.LevelError,
		Message: "status update failed",
	}))

	assert.Contains(t, out, "✕ status update failed")
}

func TestRender_HasTitleAndBody(t *testing.T) {
	out := ansi.Strip(Render(Warning, "serving mock data"))

	assert.Contains(t, out, "⚠ Warning")
	assert.Contains(t, out, "serving mock data")
}

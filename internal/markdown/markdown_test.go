package markdown

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestRender_Empty(t *testing.T) {
	assert.Equal(t, "", Render("   ", 40))
}

func TestRender_KeepsText(t *testing.T) {
	out := ansi.Strip(Render("Ship the **pricing** page", 60))
	assert.Contains(t, out, "pricing")
	assert.Contains(t, out, "Ship the")
}

func TestRender_CachesPerWidth(t *testing.T) {
	a, err := getRenderer(33)
	assert.NoError(t, err)
	b, err := getRenderer(33)
	assert.NoError(t, err)
	assert.Same(t, a, b)
}

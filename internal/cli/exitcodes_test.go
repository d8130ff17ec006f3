package cli

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/thenoetrevino/tablero/internal/api"
	"github.com/thenoetrevino/tablero/internal/config"
	"github.com/thenoetrevino/tablero/internal/models"
)

func TestExitCodeFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"explicit", Exit(ExitUsage, errors.New("bad flags")), ExitUsage},
		{"not found", &api.APIError{StatusCode: http.StatusNotFound}, ExitNotFound},
		{"bad request", &api.APIError{StatusCode: http.StatusBadRequest}, ExitValidation},
		{"invalid status", fmt.Errorf("parse: %w", models.ErrInvalidStatus), ExitValidation},
		{"invalid config", fmt.Errorf("%w: layout", config.ErrInvalidConfig), ExitDataErr},
		{"other", errors.New("boom"), ExitError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCodeFor(tt.err))
		})
	}
}

func TestReported_PlainErrorIsNot(t *testing.T) {
	assert.False(t, Reported(errors.New("x")))
	assert.False(t, Reported(Exit(ExitError, errors.New("x"))))
}

func TestParseStatusArg(t *testing.T) {
	s, err := ParseStatusArg("In Progress")
	assert.NoError(t, err)
	assert.Equal(t, models.StatusInProgress, s)

	_, err = ParseStatusArg("blocked")
	assert.ErrorIs(t, err, models.ErrInvalidStatus)
	assert.Contains(t, err.Error(), "new, todo, in_progress, review, done")
}

package events

import (
	"errors"
	"fmt"
	"os"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyDaemonError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{"missing socket", fmt.Errorf("dial: %w", os.ErrNotExist), ErrSocketNotFound},
		{"permission", fmt.Errorf("dial: %w", os.ErrPermission), ErrSocketPermission},
		{"refused", fmt.Errorf("dial: %w", syscall.ECONNREFUSED), ErrConnectionRefused},
		{"other", errors.New("boom"), ErrHubNotRunning},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyDaemonError(tt.err)
			assert.Equal(t, tt.want, got.Code)
			assert.NotEmpty(t, got.Hint)
			assert.ErrorIs(t, got, tt.err)
		})
	}

	assert.Nil(t, ClassifyDaemonError(nil))
}

package cli

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestCommandError(t *testing.T) {
	err := NewCommandError(2)
	assert.Equal(t, err.ExitCode(), 2)
	assert.Equal(t, err.Error(), "command failed")
}

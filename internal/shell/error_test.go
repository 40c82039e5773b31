package shell

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExitError(t *testing.T) {
	assert.Equal(t, "shell exited with 2", NewExitError(2).Error())
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, ExitCode(nil))
	assert.Equal(t, 2, ExitCode(NewExitError(2)))
	assert.Equal(t, 3, ExitCode(fmt.Errorf("wrapped: %w", NewExitError(3))))
	assert.Equal(t, 1, ExitCode(assert.AnError))
}

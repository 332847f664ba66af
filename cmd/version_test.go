package cmd_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/RgDivine/recordkeep/cmd"
)

func TestVersion(t *testing.T) {
	t.Parallel()

	// runtime/debug.ReadBuildInfo()'s info.Settings is always empty when
	// called from a Go test, so only the fallback version is observable here.

	t.Run("show version", func(t *testing.T) {
		t.Parallel()

		output, err := cmd.TestExecute(t, cmd.Version("warehouse"))
		assert.NoError(t, err)
		assert.Contains(t, output, "warehouse version: ", "should start with program name and `version:`")
		assert.Contains(t, output, " from ", "should contain a date indicator")
	})

	t.Run("no program name", func(t *testing.T) {
		t.Parallel()

		output, err := cmd.TestExecute(t, cmd.Version(""))
		assert.NoError(t, err)
		assert.Contains(t, output[:8], "version:", "should not start with leading space")
		assert.NotContains(t, output, "%!(EXTRA", "should not contain fmt placeholder count mismatch error")
	})

	t.Run("don't allow sub commands", func(t *testing.T) {
		t.Parallel()

		output, err := cmd.TestExecute(t, cmd.Version(""), "sub-command")
		assert.Error(t, err)
		assert.Contains(t, output, "unknown command")
	})
}

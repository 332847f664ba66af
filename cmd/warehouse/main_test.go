package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/RgDivine/recordkeep/cmd"
)

func TestWarehouseCmd(t *testing.T) {
	t.Parallel()

	t.Run("run demo", func(t *testing.T) {
		t.Parallel()

		output, err := cmd.TestExecute(t, newRootCmd())
		assert.NoError(t, err)

		assert.Contains(t, output, "Electronics")
		assert.Contains(t, output, "Laptop")
		assert.Contains(t, output, "increased stock of item 1 to 15")
		assert.Contains(t, output, "could not remove item 999")
	})

	t.Run("version", func(t *testing.T) {
		t.Parallel()

		output, err := cmd.TestExecute(t, newRootCmd(), "version")
		assert.NoError(t, err)
		assert.Contains(t, output, "warehouse version:")
	})
}

package cmd_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"

	"github.com/RgDivine/recordkeep/cmd"
)

var errCmdFailed = errors.New("cmd failed")

func TestTestExecute(t *testing.T) {
	t.Parallel()

	t.Run("capture stdout", func(t *testing.T) {
		t.Parallel()

		rootCmd := &cobra.Command{Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "Hello World")
		}}

		output, err := cmd.TestExecute(t, rootCmd)
		assert.NoError(t, err)
		assert.Contains(t, output, "Hello World")
	})

	t.Run("capture stderr", func(t *testing.T) {
		t.Parallel()

		rootCmd := &cobra.Command{Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.ErrOrStderr(), "some status message")
		}}

		output, err := cmd.TestExecute(t, rootCmd)
		assert.NoError(t, err)
		assert.Contains(t, output, "some status message")
	})

	t.Run("failing command", func(t *testing.T) {
		t.Parallel()

		rootCmd := &cobra.Command{RunE: func(_ *cobra.Command, _ []string) error {
			return errCmdFailed
		}}

		_, err := cmd.TestExecute(t, rootCmd)
		assert.ErrorIs(t, err, errCmdFailed)
	})

	t.Run("pass args", func(t *testing.T) {
		t.Parallel()

		rootCmd := &cobra.Command{Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), args[0])
		}}

		output, err := cmd.TestExecute(t, rootCmd, "some-arg")
		assert.NoError(t, err)
		assert.Contains(t, output, "some-arg")
	})
}

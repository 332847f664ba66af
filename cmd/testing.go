package cmd

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
)

// TestExecute is a helper that executes a cobra command and returns its
// combined output and error.
func TestExecute(t *testing.T, command *cobra.Command, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	command.SetOut(buf)
	command.SetErr(buf)
	command.SetArgs(args)

	_, err := command.ExecuteC()

	return buf.String(), err //nolint:wrapcheck // return the command's error unchanged on purpose
}

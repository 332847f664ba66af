// Package cmd offers helpers shared by the demo binaries.
package cmd

import (
	"fmt"
	"runtime/debug"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

// Version returns a `version` command to be added to any cobra (root) command.
func Version(name string) *cobra.Command {
	short := "Print " + name + " version"
	if strings.TrimSpace(name) == "" {
		short = "Print version"
	}

	return &cobra.Command{
		Use:                   "version",
		Short:                 short,
		Args:                  cobra.NoArgs,
		DisableFlagsInUseLine: true,
		Run: func(cmd *cobra.Command, _ []string) {
			hash, ts := versionHashAndTimestamp()

			if strings.TrimSpace(name) != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "%s version: %s from %s\n", name, hash, ts)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "version: %s from %s\n", hash, ts)
			}
		},
	}
}

// versionHashAndTimestamp returns the last commit hash and commit timestamp.
// The information is only available to binaries built with `go build`,
// `go run` and `go test` fall back to a generic version.
func versionHashAndTimestamp() (string, string) {
	var (
		hash     string
		ts       string
		modified bool
	)

	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			switch setting.Key {
			case "vcs.revision":
				hash = setting.Value
			case "vcs.time":
				ts = setting.Value
			case "vcs.modified":
				modified = setting.Value == "true"
			}
		}
	}

	if modified || hash == "" {
		return "@latest", time.Now().UTC().Format("2006-01-02T15:04:05Z")
	}

	return hash, ts
}

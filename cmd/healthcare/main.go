// The healthcare binary runs the patient and prescription tracking demo.
package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/RgDivine/recordkeep"
	"github.com/RgDivine/recordkeep/alog"
	"github.com/RgDivine/recordkeep/cmd"
	"github.com/RgDivine/recordkeep/healthcare"
	"github.com/RgDivine/recordkeep/repository"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:                   "healthcare",
		Short:                 "Healthcare tracks patients and their prescriptions.",
		Args:                  cobra.NoArgs,
		DisableFlagsInUseLine: true,
		RunE: func(c *cobra.Command, _ []string) error {
			config := recordkeep.Config{}

			err := recordkeep.DefaultViper().Unmarshal(&config)
			if err != nil {
				return fmt.Errorf("could not load configuration: %w", err)
			}

			var level slog.Level
			if err := level.UnmarshalText([]byte(config.Log.Level)); err != nil {
				level = slog.LevelInfo
			}

			logger := alog.New(
				alog.WithLevel(level),
				alog.WithHandler(slog.NewTextHandler(c.ErrOrStderr(), nil)),
			)

			var opts []repository.Option
			if config.Store.Enabled {
				opts = append(opts, repository.WithStore(repository.NewJSONStore(config.Store.Path)))
			}

			return healthcare.NewManager(logger, c.OutOrStdout(), opts...).Run(c.Context())
		},
	}

	rootCmd.AddCommand(cmd.Version("healthcare"))

	return rootCmd
}

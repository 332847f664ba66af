// The warehouse binary runs the inventory tracking demo.
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
	"github.com/RgDivine/recordkeep/repository"
	"github.com/RgDivine/recordkeep/warehouse"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:                   "warehouse",
		Short:                 "Warehouse tracks the stock of inventory items.",
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

			return warehouse.NewManager(logger, c.OutOrStdout(), opts...).Run(c.Context())
		},
	}

	rootCmd.AddCommand(cmd.Version("warehouse"))

	return rootCmd
}

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"exifio/internal/catalog"
	"exifio/internal/scan"
)

const timeRounding = time.Millisecond

func newScanCommand(ctx *commandContext) *cobra.Command {
	var workers int
	var verbose bool

	cmd := &cobra.Command{
		Use:   "scan DIR",
		Short: "Recursively scan a directory and catalog image metadata",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if workers > 0 {
				cfg.Scan.Workers = workers
			}

			store, err := catalog.Open(cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			scanner := scan.New(cfg, store, ctx.ensureLogger())
			if verbose {
				scanner.OnFile = func(path string, entry catalog.Entry, err error) {
					if err != nil {
						fmt.Fprintf(cmd.ErrOrStderr(), "skip %s: %v\n", path, err)
						return
					}
					fmt.Fprintf(cmd.OutOrStdout(), "%s (%d tags)\n", path, entry.TagCount)
				}
			}
			summary, err := scanner.Run(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(
				[]string{"Scanned", "With EXIF", "Failed", "Duration"},
				[][]string{{
					fmt.Sprintf("%d", summary.Scanned),
					fmt.Sprintf("%d", summary.WithExif),
					fmt.Sprintf("%d", summary.Failed),
					summary.Duration.Round(timeRounding).String(),
				}},
				[]columnAlignment{alignRight, alignRight, alignRight, alignRight},
			))
			return nil
		},
	}

	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "Override the configured worker count")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Print each file as it is cataloged")
	return cmd
}

package main

import (
	"fmt"
	"sort"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"exifio/internal/catalog"
)

func newCatalogCommand(ctx *commandContext) *cobra.Command {
	catalogCmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect and maintain the scan catalog",
	}

	catalogCmd.AddCommand(newCatalogListCommand(ctx))
	catalogCmd.AddCommand(newCatalogStatsCommand(ctx))
	catalogCmd.AddCommand(newCatalogPruneCommand(ctx))
	catalogCmd.AddCommand(newCatalogRemoveCommand(ctx))

	return catalogCmd
}

func (c *commandContext) withStore(fn func(*catalog.Store) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	store, err := catalog.Open(cfg)
	if err != nil {
		return err
	}
	defer store.Close()
	return fn(store)
}

func newCatalogListCommand(ctx *commandContext) *cobra.Command {
	var format string
	var cameraMake string
	var limit int
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List cataloged files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store *catalog.Store) error {
				entries, err := store.List(cmd.Context(), catalog.ListFilter{
					Format:     format,
					CameraMake: cameraMake,
					Limit:      limit,
				})
				if err != nil {
					return err
				}

				if jsonOut {
					return writeJSON(cmd, entries)
				}

				if len(entries) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "Catalog is empty")
					return nil
				}

				rows := make([][]string, 0, len(entries))
				for _, entry := range entries {
					camera := entry.CameraMake
					if entry.CameraModel != "" {
						if camera != "" {
							camera += " "
						}
						camera += entry.CameraModel
					}
					rows = append(rows, []string{
						entry.Path,
						entry.Format,
						humanize.Bytes(uint64(entry.SizeBytes)),
						camera,
						entry.DateTimeOriginal,
						fmt.Sprintf("%d", entry.TagCount),
						humanize.Time(entry.ScannedAt),
					})
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(
					[]string{"Path", "Format", "Size", "Camera", "Taken", "Tags", "Scanned"},
					rows,
					[]columnAlignment{alignLeft, alignLeft, alignRight, alignLeft, alignLeft, alignRight, alignLeft},
				))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&format, "format", "", "Only list entries with this container format (JPEG, PNG, TIFF, WEBP)")
	cmd.Flags().StringVar(&cameraMake, "make", "", "Only list entries with this camera make")
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of entries to list (0 = all)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit JSON instead of a table")
	return cmd
}

func newCatalogStatsCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show catalog totals grouped by format",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store *catalog.Store) error {
				stats, err := store.Stats(cmd.Context())
				if err != nil {
					return err
				}

				if jsonOut {
					return writeJSON(cmd, stats)
				}

				formats := make([]string, 0, len(stats.ByFormat))
				for format := range stats.ByFormat {
					formats = append(formats, format)
				}
				sort.Strings(formats)

				rows := make([][]string, 0, len(formats)+1)
				for _, format := range formats {
					rows = append(rows, []string{format, fmt.Sprintf("%d", stats.ByFormat[format])})
				}
				rows = append(rows, []string{"Total", fmt.Sprintf("%d", stats.Total)})

				out := cmd.OutOrStdout()
				fmt.Fprintln(out, renderTable(
					[]string{"Format", "Files"},
					rows,
					[]columnAlignment{alignLeft, alignRight},
				))
				fmt.Fprintf(out, "Total size: %s\n", humanize.Bytes(uint64(stats.TotalBytes)))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit JSON instead of a table")
	return cmd
}

func newCatalogPruneCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "prune",
		Short: "Drop catalog entries whose files no longer exist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store *catalog.Store) error {
				pruned, err := store.Prune(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Pruned %d entr%s\n", pruned, pluralY(pruned))
				return nil
			})
		},
	}
}

func newCatalogRemoveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "remove PATH",
		Short: "Drop one catalog entry by file path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store *catalog.Store) error {
				removed, err := store.Remove(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				if !removed {
					return fmt.Errorf("no catalog entry for %s", args[0])
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", args[0])
				return nil
			})
		},
	}
}

func pluralY(n int64) string {
	if n == 1 {
		return "y"
	}
	return "ies"
}

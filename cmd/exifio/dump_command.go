package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"exifio"
	"exifio/internal/exif"
)

// dump prints one line per field with numeric IDs, wire types, and element
// counts. It is the low-level companion to show.
func newDumpCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump FILE",
		Short: "Dump raw EXIF fields with tag IDs and wire types",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			md, format, err := exifio.DecodeFile(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "# %s format=%s order=%s fields=%d\n", args[0], format, orderName(md), md.Len())

			for _, dir := range exif.Dirs {
				for _, field := range md.Fields(dir) {
					fmt.Fprintf(out, "%s\t0x%04X\t%s\t%s\tcount=%d\tbytes=%d\t%s\n",
						dir,
						field.ID,
						field.Name(dir),
						field.Value.Type,
						field.Value.Count,
						len(field.Value.Data),
						exif.Render(dir, field.ID, field.Value),
					)
				}
			}
			if n := len(md.Thumbnail); n > 0 {
				fmt.Fprintf(out, "# thumbnail bytes=%d\n", n)
			}
			return nil
		},
	}
	return cmd
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"exifio"
	"exifio/internal/exif"
)

type showField struct {
	ID    string `json:"id"`
	Tag   string `json:"tag"`
	Type  string `json:"type"`
	Value string `json:"value"`
}

type showPayload struct {
	File           string                 `json:"file"`
	Format         string                 `json:"format"`
	ByteOrder      string                 `json:"byte_order"`
	Dirs           map[string][]showField `json:"dirs"`
	ThumbnailBytes int                    `json:"thumbnail_bytes,omitempty"`
}

func newShowCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "show FILE",
		Short: "Display the EXIF metadata of an image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			md, format, err := exifio.DecodeFile(args[0])
			if err != nil {
				return err
			}

			if jsonOut {
				return writeJSON(cmd, buildShowPayload(args[0], format, md))
			}

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			fmt.Fprintf(out, "%s (%s, %s)\n", args[0], format, orderName(md))

			for _, dir := range exif.Dirs {
				fields := md.Fields(dir)
				if len(fields) == 0 {
					continue
				}
				rows := make([][]string, 0, len(fields))
				for _, field := range fields {
					rows = append(rows, []string{
						field.Name(dir),
						field.Value.Type.String(),
						exif.Render(dir, field.ID, field.Value),
					})
				}
				fmt.Fprintln(out, renderSectionHeader(dir.String(), colorize))
				fmt.Fprintln(out, renderTable(
					[]string{"Tag", "Type", "Value"},
					rows,
					[]columnAlignment{alignLeft, alignLeft, alignLeft},
				))
			}

			if n := len(md.Thumbnail); n > 0 {
				fmt.Fprintf(out, "Embedded thumbnail: %d bytes\n", n)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit JSON instead of tables")
	return cmd
}

func buildShowPayload(path string, format exifio.Format, md *exif.Metadata) showPayload {
	payload := showPayload{
		File:           path,
		Format:         format.String(),
		ByteOrder:      orderName(md),
		Dirs:           make(map[string][]showField),
		ThumbnailBytes: len(md.Thumbnail),
	}
	for _, dir := range exif.Dirs {
		fields := md.Fields(dir)
		if len(fields) == 0 {
			continue
		}
		list := make([]showField, 0, len(fields))
		for _, field := range fields {
			list = append(list, showField{
				ID:    fmt.Sprintf("0x%04X", field.ID),
				Tag:   field.Name(dir),
				Type:  field.Value.Type.String(),
				Value: exif.Render(dir, field.ID, field.Value),
			})
		}
		payload.Dirs[dir.String()] = list
	}
	return payload
}

func orderName(md *exif.Metadata) string {
	if md.Order == nil {
		return "big-endian"
	}
	if md.Order.String() == "LittleEndian" {
		return "little-endian"
	}
	return "big-endian"
}

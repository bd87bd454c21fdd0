package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"exifio"
	"exifio/internal/exif"
	"exifio/internal/fileutil"
	"exifio/internal/logging"
)

func newSetCommand(ctx *commandContext) *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "set FILE TAG=VALUE...",
		Short: "Set EXIF tags and rewrite the file",
		Long: `Set EXIF tags and rewrite the file in place (or to --output).

TAG is a tag name such as Artist, Photo.ExposureTime, or GPSInfo.GPSLatitude.
Unqualified names search the Image, Photo, GPS, and Interoperability
directories in that order. VALUE is parsed according to the tag's type:
strings verbatim, integers space-separated, rationals as "n/d".`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			md, _, err := exifio.DecodeFile(path)
			if errors.Is(err, exifio.ErrNoExif) {
				md = exif.NewMetadata()
			} else if err != nil {
				return err
			}

			names := make([]string, 0, len(args)-1)
			for _, assignment := range args[1:] {
				tagName, text, ok := strings.Cut(assignment, "=")
				if !ok {
					return fmt.Errorf("expected TAG=VALUE, got %q", assignment)
				}
				dir, id, ok := exif.LookupTag(tagName)
				if !ok {
					return fmt.Errorf("unknown tag %q", tagName)
				}
				value, err := exif.ParseValue(dir, id, text)
				if err != nil {
					return fmt.Errorf("parse value for %s: %w", tagName, err)
				}
				md.Set(dir, id, value)
				names = append(names, fmt.Sprintf("%s.%s", dir, exif.TagName(dir, id)))
			}

			md.Order = ctx.writeOrder(md.Order)
			target := path
			if outputPath != "" {
				target = outputPath
				if err := fileutil.CopyFile(path, target); err != nil {
					return fmt.Errorf("copy to %s: %w", target, err)
				}
			}
			if err := exifio.WriteFile(target, md); err != nil {
				return err
			}

			logger := logging.NewComponentLogger(ctx.ensureLogger(), "edit")
			logger.Info("tags written",
				slog.String("path", target),
				slog.String("tags", strings.Join(names, ",")),
			)
			fmt.Fprintf(cmd.OutOrStdout(), "Set %s on %s\n", strings.Join(names, ", "), target)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write the edited image to this path instead of in place")
	return cmd
}

func newRemoveCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove FILE TAG...",
		Short: "Remove EXIF tags and rewrite the file",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			md, _, err := exifio.DecodeFile(path)
			if err != nil {
				return err
			}

			removed := 0
			for _, tagName := range args[1:] {
				dir, id, ok := exif.LookupTag(tagName)
				if !ok {
					return fmt.Errorf("unknown tag %q", tagName)
				}
				if md.Remove(dir, id) {
					removed++
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "%s.%s not present\n", dir, exif.TagName(dir, id))
				}
			}
			if removed == 0 {
				return nil
			}

			md.Order = ctx.writeOrder(md.Order)
			if err := exifio.WriteFile(path, md); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %d tag(s) from %s\n", removed, path)
			return nil
		},
	}
	return cmd
}

func newStripCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "strip FILE...",
		Short: "Remove the whole EXIF block from images",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, path := range args {
				err := exifio.StripFile(path)
				switch {
				case errors.Is(err, exifio.ErrNoExif):
					fmt.Fprintf(out, "%s: no EXIF metadata\n", path)
				case err != nil:
					return fmt.Errorf("strip %s: %w", path, err)
				default:
					fmt.Fprintf(out, "%s: stripped\n", path)
				}
			}
			return nil
		},
	}
	return cmd
}

func newThumbnailCommand(ctx *commandContext) *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "thumbnail FILE",
		Short: "Extract the embedded EXIF thumbnail",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			thumb, err := exifio.Thumbnail(args[0])
			if err != nil {
				return err
			}

			target := outputPath
			if target == "" {
				target = args[0] + ".thumb.jpg"
			}
			if err := writeThumbnail(target, thumb); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d bytes to %s\n", len(thumb), target)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Destination path (default FILE.thumb.jpg)")
	return cmd
}

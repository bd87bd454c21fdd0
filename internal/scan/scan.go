// Package scan walks directory trees and catalogs the EXIF metadata of every
// image it can decode. A single walker feeds a pool of decode workers; a
// collector goroutine owns all catalog writes so the database sees one writer.
package scan

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"

	"exifio"
	"exifio/internal/catalog"
	"exifio/internal/config"
	"exifio/internal/exif"
	"exifio/internal/logging"
)

// Summary reports the outcome of one scan run.
type Summary struct {
	Scanned  int
	WithExif int
	Failed   int
	Duration time.Duration
}

// Scanner walks directories and records results in the catalog.
type Scanner struct {
	cfg    *config.Config
	store  *catalog.Store
	logger *slog.Logger

	// OnFile, when set, is called from the collector for every inspected
	// file after its catalog write. Failed files pass a zero entry and the
	// decode error.
	OnFile func(path string, entry catalog.Entry, err error)
}

// New returns a Scanner writing to store. A nil logger disables logging.
func New(cfg *config.Config, store *catalog.Store, logger *slog.Logger) *Scanner {
	return &Scanner{
		cfg:    cfg,
		store:  store,
		logger: logging.NewComponentLogger(logger, "scan"),
	}
}

type fileResult struct {
	path  string
	entry catalog.Entry
	noTag bool
	err   error
}

// Run scans root recursively and upserts an entry for every decodable image.
// Per-file decode failures are counted and logged but do not abort the run;
// walk errors and context cancellation do.
func (s *Scanner) Run(ctx context.Context, root string) (Summary, error) {
	root, err := config.ExpandPath(root)
	if err != nil {
		return Summary{}, err
	}
	info, err := os.Stat(root)
	if err != nil {
		return Summary{}, err
	}
	if !info.IsDir() {
		return Summary{}, errors.New("scan root is not a directory")
	}

	start := time.Now()
	// The collector can bail out early on a catalog failure; cancelling here
	// unblocks the walker and workers so Run never strands a goroutine.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	paths := make(chan string)
	results := make(chan fileResult)

	g.Go(func() error {
		defer close(paths)
		return s.walk(gctx, root, paths)
	})

	workers, wctx := errgroup.WithContext(gctx)
	for i := 0; i < s.cfg.Scan.Workers; i++ {
		workers.Go(func() error {
			for path := range paths {
				select {
				case results <- s.inspect(path):
				case <-wctx.Done():
					return wctx.Err()
				}
			}
			return nil
		})
	}
	g.Go(func() error {
		defer close(results)
		return workers.Wait()
	})

	var summary Summary
	var storeErr error
collect:
	for res := range results {
		summary.Scanned++
		switch {
		case res.err != nil:
			summary.Failed++
			s.logger.Warn("skipping file", slog.String("path", res.path), slog.Any("error", res.err))
		default:
			if !res.noTag {
				summary.WithExif++
			}
			if _, err := s.store.Upsert(ctx, res.entry); err != nil {
				storeErr = err
				cancel()
				break collect
			}
		}
		if s.OnFile != nil {
			s.OnFile(res.path, res.entry, res.err)
		}
	}
	for range results {
	}

	if err := g.Wait(); err != nil && storeErr == nil {
		return summary, err
	}
	if storeErr != nil {
		return summary, storeErr
	}
	summary.Duration = time.Since(start)
	s.logger.Info("scan complete",
		slog.String("root", root),
		slog.Int("scanned", summary.Scanned),
		slog.Int("with_exif", summary.WithExif),
		slog.Int("failed", summary.Failed),
		slog.Duration("duration", summary.Duration),
	)
	return summary, nil
}

// walk emits every regular file under root whose extension passes the scan
// filter. Symlinks are skipped unless scan.follow_symlinks is set, and even
// then only links to regular files are followed.
func (s *Scanner) walk(ctx context.Context, root string, paths chan<- string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if d.Type()&fs.ModeSymlink != 0 {
			if !s.cfg.Scan.FollowSymlinks {
				return nil
			}
			target, statErr := os.Stat(path)
			if statErr != nil || !target.Mode().IsRegular() {
				return nil
			}
		} else if !d.Type().IsRegular() {
			return nil
		}
		if !s.cfg.ScansExtension(filepath.Ext(path)) {
			return nil
		}
		select {
		case paths <- path:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	})
}

func (s *Scanner) inspect(path string) fileResult {
	info, err := os.Stat(path)
	if err != nil {
		return fileResult{path: path, err: err}
	}

	md, format, err := exifio.DecodeFile(path)
	entry := catalog.Entry{
		Path:      path,
		Format:    format.String(),
		SizeBytes: info.Size(),
		ModTime:   info.ModTime(),
	}
	if errors.Is(err, exifio.ErrNoExif) {
		return fileResult{path: path, entry: entry, noTag: true}
	}
	if err != nil {
		return fileResult{path: path, err: err}
	}

	entry.CameraMake = md.GetString(exif.DirImage, 0x010F)
	entry.CameraModel = md.GetString(exif.DirImage, 0x0110)
	entry.DateTimeOriginal = md.GetString(exif.DirPhoto, 0x9003)
	entry.TagCount = md.Len()
	return fileResult{path: path, entry: entry}
}

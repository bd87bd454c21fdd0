package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gofrs/flock"
	_ "modernc.org/sqlite"

	"exifio/internal/config"
)

// Entry is one cataloged image file.
type Entry struct {
	ID               string
	Path             string
	Format           string
	SizeBytes        int64
	ModTime          time.Time
	CameraMake       string
	CameraModel      string
	DateTimeOriginal string
	TagCount         int
	ScannedAt        time.Time
}

// Stats aggregates catalog contents for diagnostic output.
type Stats struct {
	Total      int
	TotalBytes int64
	ByFormat   map[string]int
}

// Store manages catalog persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
	lock *flock.Flock
}

// Open initializes or connects to the catalog database. The catalog lock file
// is acquired first so only one exifio process writes at a time.
func Open(cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	lock := flock.New(cfg.LockPath())
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire catalog lock: %w", err)
	}
	if !ok {
		return nil, errors.New("another exifio process is using the catalog")
	}

	dbPath := cfg.CatalogPath()
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		_ = lock.Unlock()
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			_ = lock.Unlock()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: dbPath, lock: lock}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		_ = lock.Unlock()
		return nil, err
	}

	return store, nil
}

// Close closes the database connection and releases the catalog lock.
func (s *Store) Close() error {
	if s == nil {
		return nil
	}
	var err error
	if s.db != nil {
		err = s.db.Close()
	}
	if s.lock != nil {
		if unlockErr := s.lock.Unlock(); err == nil {
			err = unlockErr
		}
	}
	return err
}

// Upsert inserts or refreshes the entry for entry.Path. The entry's ID is
// assigned on first insert and preserved across refreshes.
func (s *Store) Upsert(ctx context.Context, entry Entry) (Entry, error) {
	if entry.Path == "" {
		return Entry{}, errors.New("entry path is empty")
	}
	if entry.ID == "" {
		entry.ID = newEntryID()
	}
	if entry.ScannedAt.IsZero() {
		entry.ScannedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO entries (
            id, path, format, size_bytes, mod_time,
            camera_make, camera_model, date_time_original, tag_count, scanned_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
        ON CONFLICT(path) DO UPDATE SET
            format = excluded.format,
            size_bytes = excluded.size_bytes,
            mod_time = excluded.mod_time,
            camera_make = excluded.camera_make,
            camera_model = excluded.camera_model,
            date_time_original = excluded.date_time_original,
            tag_count = excluded.tag_count,
            scanned_at = excluded.scanned_at`,
		entry.ID,
		entry.Path,
		entry.Format,
		entry.SizeBytes,
		entry.ModTime.UTC().Format(time.RFC3339Nano),
		nullableString(entry.CameraMake),
		nullableString(entry.CameraModel),
		nullableString(entry.DateTimeOriginal),
		entry.TagCount,
		entry.ScannedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return Entry{}, fmt.Errorf("upsert entry: %w", err)
	}

	stored, err := s.GetByPath(ctx, entry.Path)
	if err != nil {
		return Entry{}, err
	}
	if stored == nil {
		return Entry{}, fmt.Errorf("entry %q missing after upsert", entry.Path)
	}
	return *stored, nil
}

// GetByPath fetches the entry for a file path, or nil when absent.
func (s *Store) GetByPath(ctx context.Context, path string) (*Entry, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+entryColumns+` FROM entries WHERE path = ?`, path)
	entry, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get entry: %w", err)
	}
	return entry, nil
}

// ListFilter narrows List results. Zero values mean no filtering.
type ListFilter struct {
	Format     string
	CameraMake string
	Limit      int
}

// List returns entries ordered by path, narrowed by the filter.
func (s *Store) List(ctx context.Context, filter ListFilter) ([]*Entry, error) {
	query := `SELECT ` + entryColumns + ` FROM entries`
	var conds []string
	var args []any
	if filter.Format != "" {
		conds = append(conds, `format = ?`)
		args = append(args, filter.Format)
	}
	if filter.CameraMake != "" {
		conds = append(conds, `camera_make = ?`)
		args = append(args, filter.CameraMake)
	}
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, ` AND `)
	}
	query += ` ORDER BY path`
	if filter.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	defer rows.Close()

	var entries []*Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// Remove deletes the entry for a file path.
func (s *Store) Remove(ctx context.Context, path string) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM entries WHERE path = ?`, path)
	if err != nil {
		return false, fmt.Errorf("delete entry: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return affected > 0, nil
}

// Prune removes entries whose files no longer exist on disk.
func (s *Store) Prune(ctx context.Context) (int64, error) {
	entries, err := s.List(ctx, ListFilter{})
	if err != nil {
		return 0, err
	}

	var pruned int64
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return pruned, err
		}
		if _, err := os.Stat(entry.Path); err == nil || !errors.Is(err, os.ErrNotExist) {
			continue
		}
		removed, err := s.Remove(ctx, entry.Path)
		if err != nil {
			return pruned, err
		}
		if removed {
			pruned++
		}
	}
	return pruned, nil
}

// Stats returns entry counts grouped by format plus totals.
func (s *Store) Stats(ctx context.Context) (Stats, error) {
	stats := Stats{ByFormat: make(map[string]int)}

	rows, err := s.db.QueryContext(ctx, `SELECT format, COUNT(1), COALESCE(SUM(size_bytes), 0) FROM entries GROUP BY format`)
	if err != nil {
		return Stats{}, fmt.Errorf("catalog stats: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			format string
			count  int
			bytes  int64
		)
		if err := rows.Scan(&format, &count, &bytes); err != nil {
			return Stats{}, err
		}
		stats.ByFormat[format] = count
		stats.Total += count
		stats.TotalBytes += bytes
	}
	return stats, rows.Err()
}

const entryColumns = "id, path, format, size_bytes, mod_time, camera_make, camera_model, date_time_original, tag_count, scanned_at"

func scanEntry(scanner interface{ Scan(dest ...any) error }) (*Entry, error) {
	var (
		id          string
		path        string
		format      string
		sizeBytes   int64
		modRaw      string
		cameraMake  sql.NullString
		cameraModel sql.NullString
		dateTime    sql.NullString
		tagCount    int
		scannedRaw  string
	)

	if err := scanner.Scan(
		&id,
		&path,
		&format,
		&sizeBytes,
		&modRaw,
		&cameraMake,
		&cameraModel,
		&dateTime,
		&tagCount,
		&scannedRaw,
	); err != nil {
		return nil, err
	}

	entry := &Entry{
		ID:               id,
		Path:             path,
		Format:           format,
		SizeBytes:        sizeBytes,
		CameraMake:       cameraMake.String,
		CameraModel:      cameraModel.String,
		DateTimeOriginal: dateTime.String,
		TagCount:         tagCount,
	}
	if modTime, err := time.Parse(time.RFC3339Nano, modRaw); err == nil {
		entry.ModTime = modTime
	}
	if scannedAt, err := time.Parse(time.RFC3339Nano, scannedRaw); err == nil {
		entry.ScannedAt = scannedAt
	}
	return entry, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}

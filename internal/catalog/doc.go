// Package catalog persists scan results in SQLite.
//
// The Store manages the database connection, schema initialization, and the
// queries the CLI exposes: upserts keyed by file path, listing, pruning of
// entries whose files disappeared, and aggregate stats. A file lock next to
// the database keeps concurrent exifio invocations from interleaving writes.
//
// The database is a rebuildable index over the filesystem, not an archive;
// schema changes bump the version in schema.go and users rescan to adopt the
// new schema.
package catalog

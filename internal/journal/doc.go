// Package journal persists per-file outcomes of map generation runs in
// SQLite.
//
// The journal is purely observational: generation works identically with it
// disabled, and the batch never reads it back. Each run gets an identifier
// and one entry per input file recording whether a map was generated,
// skipped, or failed, along with the computed region sizes.
//
// The database is transient history rather than a long-term archive. Schema
// changes bump the version in schema.go; users delete the database to adopt
// the new schema.
package journal

// Package sqlite persists generation history in SQLite.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that
// requires no CGO. Store owns the connection and hands out the port
// implementations backed by it:
//
//   - HistoryStore: one row per generation session
//
// # Schema
//
// The schema is managed through versioned migrations embedded from the
// migrations/ directory. Each migration is a pair of .up.sql and .down.sql
// files; applied versions are recorded in schema_migrations.
//
// # Data Location
//
// By default, the database is stored at ~/.leetgen/data/history.db
package sqlite

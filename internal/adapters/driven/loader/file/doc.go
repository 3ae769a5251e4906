// Package file loads question databases from a local directory.
//
// Loader reads the configured ordered list of database files, decoding each
// as JSON or YAML by extension. Watcher reports when one of those files
// changes so the catalog can reload it.
package file

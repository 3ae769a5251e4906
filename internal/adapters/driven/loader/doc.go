// Package loader decodes question database documents.
//
// Subpackages provide DatabaseLoader implementations:
//   - file: reads databases from a local directory and watches it for changes
//   - github: reads databases from a path in a GitHub repository
//
// Both share Decode, which accepts JSON or YAML and decides the document
// kind once, so nothing downstream re-inspects the raw shape.
package loader

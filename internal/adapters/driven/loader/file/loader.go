package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/exponent-labs/leetgen/internal/adapters/driven/loader"
	"github.com/exponent-labs/leetgen/internal/core/domain"
	"github.com/exponent-labs/leetgen/internal/core/ports/driven"
	"github.com/exponent-labs/leetgen/internal/logger"
)

// Verify interface compliance.
var _ driven.DatabaseLoader = (*Loader)(nil)

// Loader reads database documents from a directory.
type Loader struct {
	dir   string
	files []string
}

// NewLoader creates a loader for files inside dir. Files are loaded in order
// and each file name becomes the database name.
func NewLoader(dir string, files []string) *Loader {
	return &Loader{
		dir:   dir,
		files: append([]string(nil), files...),
	}
}

// Location returns the directory databases are read from.
func (l *Loader) Location() string {
	return l.dir
}

// Files returns the configured file names.
func (l *Loader) Files() []string {
	return append([]string(nil), l.files...)
}

// Load reads every configured file. Failures are collected per database.
func (l *Loader) Load(ctx context.Context) ([]domain.Document, []error) {
	defer logger.Timer("load databases from " + l.dir)()

	docs := make([]domain.Document, 0, len(l.files))
	var errs []error

	for _, name := range l.files {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}

		doc, err := l.loadFile(name)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		docs = append(docs, doc)
	}

	return docs, errs
}

func (l *Loader) loadFile(name string) (domain.Document, error) {
	path := filepath.Join(l.dir, name)

	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Document{}, &domain.DatabaseLoadError{
			Database: name,
			Location: path,
			Err:      fmt.Errorf("failed to read file: %w", err),
		}
	}

	doc, err := loader.Decode(name, data)
	if err != nil {
		return domain.Document{}, &domain.DatabaseLoadError{
			Database: name,
			Location: path,
			Err:      err,
		}
	}

	logger.Debug("decoded %s as %s document", name, doc.Kind)
	return doc, nil
}

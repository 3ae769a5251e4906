package github

import (
	"context"
	"fmt"
	"io/fs"

	"github.com/exponent-labs/leetgen/internal/adapters/driven/loader"
	"github.com/exponent-labs/leetgen/internal/core/domain"
	"github.com/exponent-labs/leetgen/internal/core/ports/driven"
	"github.com/exponent-labs/leetgen/internal/logger"
)

// Verify interface compliance.
var _ driven.DatabaseLoader = (*Loader)(nil)

// Loader reads database documents from a repository directory.
type Loader struct {
	client *Client
	cfg    Config
}

// NewLoader creates a loader for cfg.
func NewLoader(client *Client, cfg Config) *Loader {
	cfg.Files = append([]string(nil), cfg.Files...)
	return &Loader{client: client, cfg: cfg}
}

// Location returns the repository directory, e.g. github.com/o/r/dbs@main.
func (l *Loader) Location() string {
	return l.cfg.location()
}

// Files returns the configured file names.
func (l *Loader) Files() []string {
	return append([]string(nil), l.cfg.Files...)
}

// Load fetches and decodes every configured file.
// A file the API reports as missing wraps fs.ErrNotExist.
func (l *Loader) Load(ctx context.Context) ([]domain.Document, []error) {
	defer logger.Timer("load databases from " + l.Location())()

	docs := make([]domain.Document, 0, len(l.cfg.Files))
	var errs []error

	for _, name := range l.cfg.Files {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}

		doc, err := l.loadFile(ctx, name)
		if err != nil {
			errs = append(errs, err)
			if IsRateLimited(err) {
				break
			}
			continue
		}
		docs = append(docs, doc)
	}

	return docs, errs
}

func (l *Loader) loadFile(ctx context.Context, name string) (domain.Document, error) {
	path := l.cfg.filePath(name)
	loadErr := &domain.DatabaseLoadError{
		Database: name,
		Location: fmt.Sprintf("github.com/%s/%s/%s", l.cfg.Owner, l.cfg.Repo, path),
	}

	data, err := l.client.FileContent(ctx, l.cfg.Owner, l.cfg.Repo, path, l.cfg.Ref)
	if err != nil {
		if IsNotFound(err) {
			err = fmt.Errorf("%w: %w", fs.ErrNotExist, err)
		}
		loadErr.Err = err
		return domain.Document{}, loadErr
	}

	doc, err := loader.Decode(name, data)
	if err != nil {
		loadErr.Err = err
		return domain.Document{}, loadErr
	}

	logger.Debug("fetched %s (%d bytes) as %s document", path, len(data), doc.Kind)
	return doc, nil
}

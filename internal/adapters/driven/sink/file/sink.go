// Package file writes rendered question batches to local files.
package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/exponent-labs/leetgen/internal/core/domain"
	"github.com/exponent-labs/leetgen/internal/core/ports/driven"
)

// Verify interface compliance.
var _ driven.OutputSink = (*Sink)(nil)

// Sink writes content to files. Relative targets resolve against a base directory.
type Sink struct {
	baseDir string
}

// NewSink creates a sink. An empty baseDir uses the working directory.
func NewSink(baseDir string) *Sink {
	return &Sink{baseDir: baseDir}
}

// Write creates parent directories and writes content to target with 0644 perms.
func (s *Sink) Write(ctx context.Context, target, content string) (string, error) {
	if target == "" {
		return "", fmt.Errorf("%w: empty output path", domain.ErrInvalidInput)
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	path := target
	if !filepath.IsAbs(path) && s.baseDir != "" {
		path = filepath.Join(s.baseDir, path)
	}
	path, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve output path: %w", err)
	}

	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return "", fmt.Errorf("%w: %s is a directory", domain.ErrInvalidInput, path)
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("failed to stat output: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("failed to write output: %w", err)
	}
	return path, nil
}

package github

import (
	"fmt"
	"path"
	"strings"

	"github.com/exponent-labs/leetgen/internal/core/domain"
)

// Config locates database files in a repository.
type Config struct {
	Owner string
	Repo  string

	// Path is the directory inside the repository; empty means the root.
	Path string

	// Ref is a branch, tag or commit; empty uses the default branch.
	Ref string

	// Files are the database file names to load, in order.
	Files []string
}

// ParseRepo splits "owner/name".
func ParseRepo(s string) (owner, repo string, err error) {
	owner, repo, ok := strings.Cut(strings.TrimSpace(s), "/")
	if !ok || owner == "" || repo == "" || strings.Contains(repo, "/") {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidRepo, s)
	}
	return owner, strings.TrimSuffix(repo, ".git"), nil
}

// ConfigFromSettings builds a Config from application settings.
func ConfigFromSettings(gs domain.GitHubSettings, files []string) (Config, error) {
	owner, repo, err := ParseRepo(gs.Repo)
	if err != nil {
		return Config{}, err
	}
	return Config{
		Owner: owner,
		Repo:  repo,
		Path:  strings.Trim(gs.Path, "/"),
		Ref:   gs.Ref,
		Files: append([]string(nil), files...),
	}, nil
}

// filePath returns the repository path of a database file.
func (c Config) filePath(name string) string {
	if c.Path == "" {
		return name
	}
	return path.Join(c.Path, name)
}

// location describes the configured directory, e.g. github.com/o/r/dbs@main.
func (c Config) location() string {
	loc := "github.com/" + c.Owner + "/" + c.Repo
	if c.Path != "" {
		loc += "/" + c.Path
	}
	if c.Ref != "" {
		loc += "@" + c.Ref
	}
	return loc
}

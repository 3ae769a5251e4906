package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultAppSettings(t *testing.T) {
	s := DefaultAppSettings()

	assert.Equal(t, "leetcode-databases", s.Databases.Dir)
	assert.Len(t, s.Databases.Files, 5)
	assert.Equal(t, "main-question-database.json", s.Databases.Default)
	assert.Equal(t, FormatMarkdown, s.Generate.Format)
	assert.Equal(t, 1, s.Generate.Count)
	assert.Equal(t, DifficultyBeginner, s.Progression.Start)
	assert.Equal(t, 2, s.Progression.CountPerLevel)
	assert.True(t, s.History.Enabled)
	assert.False(t, s.GitHub.IsConfigured())
}

func TestDefaultDatabaseFiles_ReturnsFreshSlice(t *testing.T) {
	files := DefaultDatabaseFiles()
	files[0] = "changed.json"
	assert.Equal(t, "main-question-database.json", DefaultDatabaseFiles()[0])
}

func TestGitHubSettings_IsConfigured(t *testing.T) {
	assert.True(t, GitHubSettings{Repo: "owner/repo"}.IsConfigured())
	assert.False(t, GitHubSettings{Path: "dbs"}.IsConfigured())
}

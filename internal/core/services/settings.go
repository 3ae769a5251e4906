package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/exponent-labs/leetgen/internal/core/domain"
	"github.com/exponent-labs/leetgen/internal/core/ports/driven"
	"github.com/exponent-labs/leetgen/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
//
//nolint:gosec // G101: These are config key names, not actual credentials.
const (
	keyDatabaseDir     = "databases.dir"
	keyDatabaseFiles   = "databases.files"
	keyDatabaseDefault = "databases.default"
	keyGenerateFormat  = "generate.format"
	keyGenerateCount   = "generate.count"
	keyProgStart       = "progression.start"
	keyProgCount       = "progression.count"
	keyHistoryEnabled  = "history.enabled"
	keyGitHubRepo      = "github.repo"
	keyGitHubPath      = "github.path"
	keyGitHubRef       = "github.ref"
	keyGitHubToken     = "github.token"
)

var settingKeys = []string{
	keyDatabaseDir,
	keyDatabaseFiles,
	keyDatabaseDefault,
	keyGenerateFormat,
	keyGenerateCount,
	keyProgStart,
	keyProgCount,
	keyHistoryEnabled,
	keyGitHubRepo,
	keyGitHubPath,
	keyGitHubRef,
	keyGitHubToken,
}

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
	}
}

// Get retrieves current application settings.
// Missing or invalid values fall back to defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	files := s.configStore.GetStringSlice(keyDatabaseFiles)
	if len(files) == 0 {
		files = defaults.Databases.Files
	}
	defaultDB := s.getString(keyDatabaseDefault, "")
	if defaultDB == "" {
		defaultDB = files[0]
	}

	settings := &domain.AppSettings{
		Databases: domain.DatabaseSettings{
			Dir:     s.getString(keyDatabaseDir, defaults.Databases.Dir),
			Files:   files,
			Default: defaultDB,
		},
		Generate: domain.GenerateSettings{
			Format: s.getFormat(defaults.Generate.Format),
			Count:  s.getPositiveInt(keyGenerateCount, defaults.Generate.Count),
		},
		Progression: domain.ProgressionSettings{
			Start:         s.getDifficulty(defaults.Progression.Start),
			CountPerLevel: s.getPositiveInt(keyProgCount, defaults.Progression.CountPerLevel),
		},
		History: domain.HistorySettings{
			Enabled: s.getBool(keyHistoryEnabled, defaults.History.Enabled),
		},
		GitHub: domain.GitHubSettings{
			Repo:  s.configStore.GetString(keyGitHubRepo),
			Path:  s.getString(keyGitHubPath, defaults.GitHub.Path),
			Ref:   s.configStore.GetString(keyGitHubRef),
			Token: s.configStore.GetString(keyGitHubToken),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	values := []struct {
		key   string
		value any
	}{
		{keyDatabaseDir, settings.Databases.Dir},
		{keyDatabaseFiles, settings.Databases.Files},
		{keyDatabaseDefault, settings.Databases.Default},
		{keyGenerateFormat, settings.Generate.Format.String()},
		{keyGenerateCount, settings.Generate.Count},
		{keyProgStart, settings.Progression.Start.String()},
		{keyProgCount, settings.Progression.CountPerLevel},
		{keyHistoryEnabled, settings.History.Enabled},
		{keyGitHubRepo, settings.GitHub.Repo},
		{keyGitHubPath, settings.GitHub.Path},
		{keyGitHubRef, settings.GitHub.Ref},
	}
	for _, v := range values {
		if err := s.configStore.Set(v.key, v.value); err != nil {
			return fmt.Errorf("save %s: %w", v.key, err)
		}
	}

	// Only persist a token when one is given
	if settings.GitHub.Token != "" {
		if err := s.configStore.Set(keyGitHubToken, settings.GitHub.Token); err != nil {
			return fmt.Errorf("save %s: %w", keyGitHubToken, err)
		}
	}

	return s.configStore.Save()
}

// Set validates and stores a single setting.
func (s *SettingsService) Set(key, value string) error {
	parsed, err := parseSetting(key, value)
	if err != nil {
		return err
	}
	if err := s.configStore.Set(key, parsed); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return s.configStore.Save()
}

// Keys lists the settable keys.
func (s *SettingsService) Keys() []string {
	out := make([]string, len(settingKeys))
	copy(out, settingKeys)
	return out
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

func parseSetting(key, value string) (any, error) {
	switch key {
	case keyDatabaseDir, keyDatabaseDefault, keyGitHubPath, keyGitHubRef, keyGitHubToken:
		return value, nil
	case keyGitHubRepo:
		if value != "" {
			owner, name, ok := strings.Cut(value, "/")
			if !ok || owner == "" || name == "" || strings.Contains(name, "/") {
				return nil, fmt.Errorf("%w: %s must be owner/name", domain.ErrInvalidInput, key)
			}
		}
		return value, nil
	case keyDatabaseFiles:
		var files []string
		for _, f := range strings.Split(value, ",") {
			if f = strings.TrimSpace(f); f != "" {
				files = append(files, f)
			}
		}
		if len(files) == 0 {
			return nil, fmt.Errorf("%w: %s needs at least one file", domain.ErrInvalidInput, key)
		}
		return files, nil
	case keyGenerateFormat:
		f, err := domain.ParseOutputFormat(value)
		if err != nil {
			return nil, err
		}
		return f.String(), nil
	case keyProgStart:
		d, err := domain.ParseDifficulty(value)
		if err != nil {
			return nil, err
		}
		return d.String(), nil
	case keyGenerateCount, keyProgCount:
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("%w: %s must be a positive integer", domain.ErrInvalidInput, key)
		}
		return n, nil
	case keyHistoryEnabled:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return nil, fmt.Errorf("%w: %s must be true or false", domain.ErrInvalidInput, key)
		}
		return b, nil
	default:
		return nil, fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getPositiveInt(key string, defaultVal int) int {
	val := s.configStore.GetInt(key)
	if val <= 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}

func (s *SettingsService) getFormat(defaultVal domain.OutputFormat) domain.OutputFormat {
	format := domain.OutputFormat(s.configStore.GetString(keyGenerateFormat))
	if !format.IsValid() {
		return defaultVal
	}
	return format
}

func (s *SettingsService) getDifficulty(defaultVal domain.Difficulty) domain.Difficulty {
	d := domain.Difficulty(s.configStore.GetString(keyProgStart))
	if !d.IsValid() {
		return defaultVal
	}
	return d
}

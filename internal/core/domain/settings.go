package domain

// DefaultDatabaseDir is the directory searched for database files.
const DefaultDatabaseDir = "leetcode-databases"

// DefaultDatabaseFiles is the ordered list of database files loaded at startup.
func DefaultDatabaseFiles() []string {
	return []string{
		"main-question-database.json",
		"variable-manipulation-database.json",
		"array-operations-database.json",
		"hashmap-operations-database.json",
		"advanced-algorithms-database.json",
	}
}

// DatabaseSettings locates the database documents.
type DatabaseSettings struct {
	// Dir is the directory holding the database files.
	Dir string

	// Files is the ordered list of file names to load.
	Files []string

	// Default is the database used when none is named.
	Default string
}

// GenerateSettings holds single-batch defaults.
type GenerateSettings struct {
	// Format is the default output format.
	Format OutputFormat

	// Count is the default number of questions.
	Count int
}

// ProgressionSettings holds progression defaults.
type ProgressionSettings struct {
	// Start is the default starting difficulty.
	Start Difficulty

	// CountPerLevel is the default batch size per level.
	CountPerLevel int
}

// HistorySettings controls the generation history log.
type HistorySettings struct {
	// Enabled records each session to the history store.
	Enabled bool
}

// GitHubSettings points the loader at a repository instead of a local directory.
type GitHubSettings struct {
	// Repo is "owner/name"; empty disables the GitHub loader.
	Repo string

	// Path is the directory inside the repository.
	Path string

	// Ref is the branch, tag or commit; empty uses the default branch.
	Ref string

	// Token is an optional access token for private repositories.
	Token string
}

// IsConfigured returns true if a repository is set.
func (g GitHubSettings) IsConfigured() bool {
	return g.Repo != ""
}

// AppSettings holds all application settings.
type AppSettings struct {
	Databases   DatabaseSettings
	Generate    GenerateSettings
	Progression ProgressionSettings
	History     HistorySettings
	GitHub      GitHubSettings
}

// DefaultAppSettings returns settings with the generator's defaults.
func DefaultAppSettings() AppSettings {
	files := DefaultDatabaseFiles()
	return AppSettings{
		Databases: DatabaseSettings{
			Dir:     DefaultDatabaseDir,
			Files:   files,
			Default: files[0],
		},
		Generate: GenerateSettings{
			Format: FormatMarkdown,
			Count:  1,
		},
		Progression: ProgressionSettings{
			Start:         DifficultyBeginner,
			CountPerLevel: 2,
		},
		History: HistorySettings{
			Enabled: true,
		},
		GitHub: GitHubSettings{
			Path: DefaultDatabaseDir,
		},
	}
}

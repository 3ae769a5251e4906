package domain

// DocumentKind tags which of the two database shapes a document uses.
// It is decided once when the document is loaded.
type DocumentKind int

// Known document kinds.
const (
	// KindUnknown has neither shape key; it normalises to an empty pool.
	KindUnknown DocumentKind = iota

	// KindTemplate groups categories under difficulty levels ("question_templates").
	KindTemplate

	// KindCategory tags each category with a single difficulty ("question_categories").
	KindCategory
)

// String returns the string representation.
func (k DocumentKind) String() string {
	switch k {
	case KindTemplate:
		return "template"
	case KindCategory:
		return "category"
	default:
		return "unknown"
	}
}

// Metadata is the optional descriptive block of a database document.
type Metadata struct {
	// Name is the display name.
	Name string

	// Description is free text.
	Description string

	// TotalQuestions is the advertised question count.
	TotalQuestions int

	// DataStructures enumerates the data-structure tags the database covers.
	DataStructures []string
}

// Category is a named, ordered list of question records.
type Category struct {
	// Name is the category key in the source document.
	Name string

	// Difficulty is the category's own tag; only category-shape documents carry it.
	// Empty means the tag is absent.
	Difficulty string

	// Questions are the category's records in document order
	// ("examples" in template shape, "questions" in category shape).
	Questions []Question
}

// Level groups categories under one difficulty in template-shape documents.
type Level struct {
	// Difficulty is the level key in the source document.
	Difficulty string

	// Categories are the level's categories in document order.
	Categories []Category
}

// Document is one loaded question database.
// Documents are read-only once loaded; selection works on copies.
type Document struct {
	// Name is the logical database name used for lookup.
	Name string

	// Kind tags which body is populated.
	Kind DocumentKind

	// Metadata is the optional descriptive block.
	Metadata Metadata

	// Levels holds the body of a KindTemplate document.
	Levels []Level

	// Categories holds the body of a KindCategory document.
	Categories []Category
}

// DatabaseInfo summarises one database for display.
type DatabaseInfo struct {
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	TotalQuestions int      `json:"total_questions"`
	Difficulties   []string `json:"difficulties"`
	DataStructures []string `json:"data_structures"`
}

// LoadReport lists the outcome of loading a set of databases.
type LoadReport struct {
	// Loaded are the database names that loaded, in load order.
	Loaded []string

	// Failures are the per-database errors, usually *DatabaseLoadError.
	Failures []error

	// Entries holds one outcome per database in configured order.
	// Failures not tied to a database come last with an empty name.
	Entries []LoadEntry
}

// LoadEntry is the outcome of loading one database.
type LoadEntry struct {
	Database string

	// Err is nil when the database loaded.
	Err error
}

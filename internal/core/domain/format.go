package domain

import "fmt"

// OutputFormat selects how questions are rendered.
type OutputFormat string

// Supported output formats.
const (
	// FormatMarkdown is the section-labelled long form.
	FormatMarkdown OutputFormat = "markdown"

	// FormatJSON is the lossless structured serialisation.
	FormatJSON OutputFormat = "json"
)

// IsValid returns true if the format is supported.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatMarkdown, FormatJSON:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (f OutputFormat) String() string {
	return string(f)
}

// ParseOutputFormat validates an output format selector.
func ParseOutputFormat(s string) (OutputFormat, error) {
	f := OutputFormat(s)
	if !f.IsValid() {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, s)
	}
	return f, nil
}

package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultTheme(t *testing.T) {
	theme := DefaultTheme()

	assert.NotEmpty(t, theme.Primary)
	assert.NotEmpty(t, theme.Secondary)
	assert.NotEmpty(t, theme.Error)
	assert.NotEqual(t, theme.Primary, theme.Secondary)
}

func TestNewStyles_NilThemeUsesDefault(t *testing.T) {
	s := NewStyles(nil)

	assert.Equal(t, DefaultTheme(), s.Theme())
}

func TestStyles_RenderHeading(t *testing.T) {
	s := DefaultStyles()

	assert.Contains(t, s.RenderHeading("# Two Sum"), "# Two Sum")
}

func TestStyles_RenderDifficulty(t *testing.T) {
	s := DefaultStyles()

	for _, d := range []string{"beginner", "easy", "medium", "hard", "expert"} {
		assert.Contains(t, s.RenderDifficulty(d), d)
	}
	assert.Len(t, s.Difficulty, 4)
}

package styles

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sucyhan/polydiff-2023-sub000/internal/core/domain"
)

func TestDefaultTheme_ColoursAreDistinct(t *testing.T) {
	theme := DefaultTheme()

	palette := []lipgloss.Color{
		theme.Primary,
		theme.Secondary,
		theme.Muted,
		theme.Success,
		theme.Warning,
		theme.Error,
	}

	seen := make(map[string]bool)
	for _, c := range palette {
		s := string(c)
		assert.NotEmpty(t, s)
		assert.False(t, seen[s], "duplicate colour: %s", s)
		seen[s] = true
	}
}

func TestNewStyles_NilThemeUsesDefault(t *testing.T) {
	styles := NewStyles(nil)

	require.NotNil(t, styles)
	assert.Equal(t, DefaultTheme(), styles.Theme())
}

func TestPlainStyles_RenderUnchanged(t *testing.T) {
	styles := PlainStyles()

	assert.Equal(t, "Games", styles.Title.Render("Games"))
	assert.Equal(t, "[Facile]", styles.Difficulty(domain.DifficultyEasy))
	assert.Equal(t, "[Difficile]", styles.Difficulty(domain.DifficultyHard))
}

func TestFor_NonTerminalIsPlain(t *testing.T) {
	styles := For(&bytes.Buffer{})

	assert.Equal(t, "x", styles.Hard.Render("x"))
}

func TestDifficulty_ContainsLabel(t *testing.T) {
	styles := DefaultStyles()

	assert.Contains(t, styles.Difficulty(domain.DifficultyHard), "Difficile")
	assert.Contains(t, styles.Difficulty(domain.DifficultyEasy), "Facile")
}

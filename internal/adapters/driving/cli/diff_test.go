package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sucyhan/polydiff-2023-sub000/internal/core/domain"
)

func TestDiffCmd_Use(t *testing.T) {
	assert.Equal(t, "diff <original> <modified>", diffCmd.Use)
}

func TestDiffCmd_Flags(t *testing.T) {
	flag := diffCmd.Flags().Lookup("radius")
	require.NotNil(t, flag)
	assert.Equal(t, "r", flag.Shorthand)
	assert.Equal(t, "-1", flag.DefValue)

	for _, name := range []string{"json", "mask", "preview"} {
		assert.NotNil(t, diffCmd.Flags().Lookup(name), name)
	}
}

func TestDiffCmd_RequiresTwoArgs(t *testing.T) {
	_, err := execute(t, "diff", "only-one.png")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 2 arg(s)")
}

func TestDiffCmd_NoService(t *testing.T) {
	SetServices(nil)

	_, err := execute(t, "diff", "a.png", "b.png")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "diff service not configured")
}

func TestDiffCmd_PrintsDifferences(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	original, modified := writePair(t, t.TempDir(), "park")

	out, err := execute(t, "diff", original, modified)

	require.NoError(t, err)
	assert.Contains(t, out, "3 difference(s)")
	assert.Contains(t, out, "[Facile]")
	assert.Contains(t, out, "120x40")
	assert.Contains(t, out, "#0")
	assert.Contains(t, out, "#2")
}

func TestDiffCmd_JSON(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	original, modified := writePair(t, t.TempDir(), "park")

	out, err := execute(t, "diff", "--json", "--radius", "0", original, modified)

	require.NoError(t, err)
	var diffs domain.ImageDiffs
	require.NoError(t, json.Unmarshal([]byte(out), &diffs))
	require.Len(t, diffs.Differences, 3)
	assert.Equal(t, domain.DifficultyEasy, diffs.Difficulty)
	assert.Equal(t, domain.Difference{domain.Rect(10, 10, 14, 14)}, diffs.Differences[0])
	assert.Contains(t, out, `"point1"`)
}

func TestDiffCmd_IdenticalImages(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	original, _ := writePair(t, t.TempDir(), "same")

	out, err := execute(t, "diff", "--json", original, original)

	require.NoError(t, err)
	assert.Contains(t, out, `"differences": []`)
}

func TestDiffCmd_WritesMaskAndPreview(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	dir := t.TempDir()
	original, modified := writePair(t, dir, "park")
	maskPath := filepath.Join(dir, "out", "mask.png")
	previewPath := filepath.Join(dir, "out", "preview.png")

	out, err := execute(t, "diff", "--mask", maskPath, "--preview", previewPath, original, modified)

	require.NoError(t, err)
	assert.FileExists(t, maskPath)
	assert.FileExists(t, previewPath)
	assert.Contains(t, out, "Mask written to")
	assert.Contains(t, out, "Preview written to")
}

func TestDiffCmd_MissingFile(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	_, err := execute(t, "diff", filepath.Join(t.TempDir(), "nope.png"), "b.png")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "diff failed")
}

func TestDiffCmd_UnsupportedFormat(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	path := filepath.Join(t.TempDir(), "notes.png")
	require.NoError(t, os.WriteFile(path, []byte("not an image"), 0o600))

	_, err := execute(t, "diff", path, path)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
}

func TestResolveRadius(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	assert.Equal(t, 9, resolveRadius(9))
	assert.Equal(t, 0, resolveRadius(0))
	assert.Equal(t, 3, resolveRadius(-1))

	require.NoError(t, settingsService.Set("game.default_radius", "15"))
	assert.Equal(t, 15, resolveRadius(-1))

	SetServices(nil)
	assert.Equal(t, domain.DefaultAppSettings().Game.DefaultRadius, resolveRadius(-1))
}

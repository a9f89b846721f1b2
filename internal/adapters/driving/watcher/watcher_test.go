package watcher

import (
	"context"
	"image"
	"image/color"
	"image/draw"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sucyhan/polydiff-2023-sub000/internal/adapters/driven/imagefile"
	"github.com/sucyhan/polydiff-2023-sub000/internal/adapters/driven/storage/memory"
	"github.com/sucyhan/polydiff-2023-sub000/internal/core/domain"
	"github.com/sucyhan/polydiff-2023-sub000/internal/core/services"
)

func TestParsePair(t *testing.T) {
	tests := []struct {
		file string
		name string
		role string
		ok   bool
	}{
		{"garden_original.png", "garden", RoleOriginal, true},
		{"/drop/garden_modified.jpg", "garden", RoleModified, true},
		{"two_words_original.webp", "two_words", RoleOriginal, true},
		{"garden_modified.PNG", "garden", RoleModified, true},
		{"_original.png", "", "", false},
		{"garden.png", "", "", false},
		{"garden_original.txt", "", "", false},
		{"garden_copy.png", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			name, role, ok := ParsePair(tt.file)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.name, name)
			assert.Equal(t, tt.role, role)
		})
	}
}

// newGameService returns a game service over memory stores that accepts
// any image size and at least one difference.
func newGameService(t *testing.T) (*services.GameService, *memory.GameStore) {
	t.Helper()
	config := memory.NewConfigStore()
	settings := services.NewSettingsService(config)
	require.NoError(t, settings.Set("image.width", "0"))
	require.NoError(t, settings.Set("game.min_differences", "1"))

	store := memory.NewGameStore()
	return services.NewGameService(store, services.NewDiffService(), settings), store
}

func writePair(t *testing.T, dir, name string, squares int) {
	t.Helper()
	original := image.NewRGBA(image.Rect(0, 0, 80, 40))
	draw.Draw(original, original.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	modified := image.NewRGBA(original.Bounds())
	copy(modified.Pix, original.Pix)
	for i := 0; i < squares; i++ {
		r := image.Rect(5+25*i, 10, 10+25*i, 15)
		draw.Draw(modified, r, image.NewUniform(color.Black), image.Point{}, draw.Src)
	}

	loader := imagefile.NewLoader()
	require.NoError(t, loader.SavePNG(filepath.Join(dir, name+"_original.png"), original))
	require.NoError(t, loader.SavePNG(filepath.Join(dir, name+"_modified.png"), modified))
}

func TestWatcher_Sync(t *testing.T) {
	dir := t.TempDir()
	games, store := newGameService(t)
	writePair(t, dir, "beach", 2)
	writePair(t, dir, "attic", 3)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "lonely_original.png"), nil, 0600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hi"), 0600))

	var events []Event
	w := New(dir, games, imagefile.NewLoader())
	w.OnEvent = func(e Event) { events = append(events, e) }

	require.NoError(t, w.Sync(context.Background()))

	require.Len(t, events, 2)
	assert.Equal(t, "attic", events[0].Name)
	require.NoError(t, events[0].Err)
	assert.Len(t, events[0].Game.Differences, 3)
	assert.Equal(t, "beach", events[1].Name)
	require.NoError(t, events[1].Err)
	assert.Len(t, events[1].Game.Differences, 2)

	list, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 2)

	// Unchanged pairs are not imported twice.
	require.NoError(t, w.Sync(context.Background()))
	assert.Len(t, events, 2)
}

func TestWatcher_Sync_ReportsFailures(t *testing.T) {
	dir := t.TempDir()
	games, _ := newGameService(t)
	writePair(t, dir, "identical", 0)

	var events []Event
	w := New(dir, games, imagefile.NewLoader())
	w.OnEvent = func(e Event) { events = append(events, e) }

	require.NoError(t, w.Sync(context.Background()))

	require.Len(t, events, 1)
	assert.ErrorIs(t, events[0].Err, domain.ErrDifferenceCount)
	assert.Nil(t, events[0].Game)
}

func TestWatcher_Sync_MissingDir(t *testing.T) {
	games, _ := newGameService(t)
	w := New(filepath.Join(t.TempDir(), "nope"), games, imagefile.NewLoader())

	assert.Error(t, w.Sync(context.Background()))
}

func TestWatcher_Run_ImportsDroppedPair(t *testing.T) {
	dir := t.TempDir()
	games, _ := newGameService(t)

	events := make(chan Event, 4)
	w := New(dir, games, imagefile.NewLoader())
	w.Settle = 50 * time.Millisecond
	w.OnEvent = func(e Event) { events <- e }

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	// Give the watcher time to register before dropping files.
	time.Sleep(100 * time.Millisecond)
	writePair(t, dir, "kitchen", 1)

	select {
	case e := <-events:
		require.NoError(t, e.Err)
		assert.Equal(t, "kitchen", e.Name)
		assert.Len(t, e.Game.Differences, 1)
	case <-time.After(5 * time.Second):
		t.Fatal("pair was not imported")
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestWatcher_Run_MissingDir(t *testing.T) {
	games, _ := newGameService(t)
	w := New(filepath.Join(t.TempDir(), "nope"), games, imagefile.NewLoader())

	err := w.Run(context.Background())

	assert.Error(t, err)
}

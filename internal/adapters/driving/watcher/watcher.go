// Package watcher creates games from image pairs dropped into a directory.
//
// A pair is two files named <name>_original.<ext> and <name>_modified.<ext>.
// Once both halves exist and have stopped changing, the watcher loads them
// and runs the game creation workflow with <name> as the game name.
package watcher

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/sucyhan/polydiff-2023-sub000/internal/adapters/driven/imagefile"
	"github.com/sucyhan/polydiff-2023-sub000/internal/core/domain"
	"github.com/sucyhan/polydiff-2023-sub000/internal/core/ports/driven"
	"github.com/sucyhan/polydiff-2023-sub000/internal/core/ports/driving"
	"github.com/sucyhan/polydiff-2023-sub000/internal/logger"
)

// Roles of the two halves of a pair.
const (
	RoleOriginal = "original"
	RoleModified = "modified"
)

// DefaultSettle is how long a pair must be quiet before it is imported.
const DefaultSettle = 500 * time.Millisecond

// Event reports the outcome of importing one pair.
type Event struct {
	// Name is the pair name, used as the game name.
	Name string

	// Game is the created game, nil on failure.
	Game *domain.Game

	// Err is the import failure, nil on success.
	Err error
}

// Watcher imports image pairs from a directory.
type Watcher struct {
	dir    string
	games  driving.GameService
	images driven.ImageLoader

	// Radius is passed to game creation; negative selects the default.
	Radius int

	// Settle is the quiet period before a pair is imported.
	Settle time.Duration

	// OnEvent receives every import outcome. May be nil.
	OnEvent func(Event)

	imported map[string]stamp
}

// stamp identifies the file versions a pair was imported from.
type stamp struct {
	original, modified time.Time
}

// New creates a watcher for dir.
func New(dir string, games driving.GameService, images driven.ImageLoader) *Watcher {
	return &Watcher{
		dir:      dir,
		games:    games,
		images:   images,
		Radius:   -1,
		Settle:   DefaultSettle,
		imported: make(map[string]stamp),
	}
}

// ParsePair splits a file name into its pair name and role.
// ok is false for files that are not half of a pair.
func ParsePair(filename string) (name, role string, ok bool) {
	base := filepath.Base(filename)
	if !imagefile.Supported(base) {
		return "", "", false
	}
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	for _, r := range []string{RoleOriginal, RoleModified} {
		suffix := "_" + r
		if strings.HasSuffix(stem, suffix) && len(stem) > len(suffix) {
			return strings.TrimSuffix(stem, suffix), r, true
		}
	}
	return "", "", false
}

// Sync imports every complete pair currently in the directory that has
// not been imported in its present form.
func (w *Watcher) Sync(ctx context.Context) error {
	entries, err := os.ReadDir(w.dir)
	if err != nil {
		return fmt.Errorf("reading %s: %w", w.dir, err)
	}

	names := make(map[string]bool)
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if name, _, ok := ParsePair(e.Name()); ok {
			names[name] = true
		}
	}

	sorted := make([]string, 0, len(names))
	for name := range names {
		sorted = append(sorted, name)
	}
	sort.Strings(sorted)

	for _, name := range sorted {
		if err := ctx.Err(); err != nil {
			return err
		}
		w.importPair(ctx, name)
	}
	return nil
}

// Run imports existing pairs, then watches the directory until ctx is done.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer fw.Close()

	if err := fw.Add(w.dir); err != nil {
		return fmt.Errorf("watching %s: %w", w.dir, err)
	}
	logger.Info("Watching %s", w.dir)

	if err := w.Sync(ctx); err != nil {
		return err
	}

	settle := w.Settle
	if settle <= 0 {
		settle = DefaultSettle
	}
	ticker := time.NewTicker(settle / 2)
	defer ticker.Stop()

	// Last event time per pair name.
	pending := make(map[string]time.Time)

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if name, role, ok := ParsePair(ev.Name); ok {
				logger.Debug("%s: %s half changed (%s)", name, role, ev.Op)
				pending[name] = time.Now()
			}

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Watcher error: %v", err)

		case now := <-ticker.C:
			for name, last := range pending {
				if now.Sub(last) < settle {
					continue
				}
				delete(pending, name)
				w.importPair(ctx, name)
			}
		}
	}
}

// importPair creates a game from the pair called name if both halves exist
// and differ from the last imported versions.
func (w *Watcher) importPair(ctx context.Context, name string) {
	original, origInfo, err := w.find(name, RoleOriginal)
	if err != nil {
		return
	}
	modified, modInfo, err := w.find(name, RoleModified)
	if err != nil {
		return
	}

	current := stamp{original: origInfo.ModTime(), modified: modInfo.ModTime()}
	if prev, ok := w.imported[name]; ok && prev == current {
		return
	}
	w.imported[name] = current

	game, err := w.create(ctx, name, original, modified)
	if err != nil {
		logger.Warn("Import of %s failed: %v", name, err)
	}
	if w.OnEvent != nil {
		w.OnEvent(Event{Name: name, Game: game, Err: err})
	}
}

func (w *Watcher) create(ctx context.Context, name, originalPath, modifiedPath string) (*domain.Game, error) {
	original, err := w.images.Load(originalPath)
	if err != nil {
		return nil, err
	}
	modified, err := w.images.Load(modifiedPath)
	if err != nil {
		return nil, err
	}
	return w.games.Create(ctx, domain.GameDraft{
		Name:     name,
		Original: original,
		Modified: modified,
		Radius:   w.Radius,
	})
}

var errNoHalf = errors.New("pair half missing")

// find locates the half of a pair with the given role. When several
// extensions exist the lexically first file wins.
func (w *Watcher) find(name, role string) (string, os.FileInfo, error) {
	entries, err := os.ReadDir(w.dir)
	if err != nil {
		return "", nil, err
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		n, r, ok := ParsePair(e.Name())
		if !ok || n != name || r != role {
			continue
		}
		info, err := e.Info()
		if err != nil {
			return "", nil, err
		}
		return filepath.Join(w.dir, e.Name()), info, nil
	}
	return "", nil, errNoHalf
}

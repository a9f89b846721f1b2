package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/sucyhan/polydiff-2023-sub000/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/sucyhan/polydiff-2023-sub000/internal/core/domain"
	"github.com/sucyhan/polydiff-2023-sub000/internal/core/ports/driven"
)

// DatabaseFile is the name of the database inside the data directory.
const DatabaseFile = "polydiff.db"

// Store is a SQLite-based storage that provides access to
// the store interfaces through wrapper types.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store in the specified data directory.
// If dataDir is empty, defaults to ~/.polydiff/data/polydiff.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".polydiff", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, DatabaseFile)

	// WAL lets the watcher and the CLI share the file.
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// GameStore returns a GameStore interface backed by this store.
func (s *Store) GameStore() driven.GameStore {
	return &gameStore{store: s}
}

// migrate runs all pending migrations, recording each applied version.
func (s *Store) migrate(fsys fs.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		if name := entry.Name(); strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// "001_initial.up.sql" -> 1
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}
		if version <= currentVersion {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if err := s.apply(version, string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
	}

	return nil
}

func (s *Store) apply(version int, script string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if _, err := tx.Exec(script); err != nil {
		return err
	}
	if _, err := tx.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
		return err
	}
	return tx.Commit()
}

// ==================== Game Store ====================

// gameStore implements driven.GameStore.
type gameStore struct {
	store *Store
}

var _ driven.GameStore = (*gameStore)(nil)

const gameColumns = `id, name, radius, width, height, difficulty, differences, created_at`

// Save stores or updates a game.
func (s *gameStore) Save(ctx context.Context, game *domain.Game) error {
	if game == nil || game.ID == "" {
		return domain.ErrInvalidInput
	}

	differencesJSON, err := json.Marshal(game.Differences)
	if err != nil {
		return fmt.Errorf("marshalling differences: %w", err)
	}

	_, err = s.store.db.ExecContext(ctx, `
		INSERT INTO games (id, name, radius, width, height, difficulty, difference_count, differences, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			radius = excluded.radius,
			width = excluded.width,
			height = excluded.height,
			difficulty = excluded.difficulty,
			difference_count = excluded.difference_count,
			differences = excluded.differences
	`, game.ID, game.Name, game.Radius, game.Width, game.Height,
		string(game.Difficulty), len(game.Differences), string(differencesJSON), game.CreatedAt.UTC())
	if err != nil {
		return fmt.Errorf("saving game: %w", err)
	}
	return nil
}

// Get retrieves a game by ID.
func (s *gameStore) Get(ctx context.Context, id string) (*domain.Game, error) {
	row := s.store.db.QueryRowContext(ctx, `SELECT `+gameColumns+` FROM games WHERE id = ?`, id)

	game, err := scanGame(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return game, nil
}

// List returns all games, newest first.
func (s *gameStore) List(ctx context.Context) ([]*domain.Game, error) {
	rows, err := s.store.db.QueryContext(ctx,
		`SELECT `+gameColumns+` FROM games ORDER BY created_at DESC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("querying games: %w", err)
	}
	defer rows.Close()

	games := []*domain.Game{}
	for rows.Next() {
		game, err := scanGame(rows)
		if err != nil {
			return nil, err
		}
		games = append(games, game)
	}
	return games, rows.Err()
}

// Delete removes a game.
func (s *gameStore) Delete(ctx context.Context, id string) error {
	res, err := s.store.db.ExecContext(ctx, "DELETE FROM games WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting game: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting game: %w", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanGame(row scanner) (*domain.Game, error) {
	var game domain.Game
	var difficulty, differencesJSON string
	var createdAt sql.NullTime
	if err := row.Scan(&game.ID, &game.Name, &game.Radius, &game.Width, &game.Height,
		&difficulty, &differencesJSON, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning game: %w", err)
	}

	if err := json.Unmarshal([]byte(differencesJSON), &game.Differences); err != nil {
		return nil, fmt.Errorf("unmarshalling differences: %w", err)
	}
	game.Difficulty = domain.Difficulty(difficulty)
	if createdAt.Valid {
		game.CreatedAt = createdAt.Time.UTC()
	}

	return &game, nil
}

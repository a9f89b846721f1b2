package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver

	"github.com/sucyhan/polydiff-2023-sub000/internal/adapters/driven/storage/postgres/migrations"
	"github.com/sucyhan/polydiff-2023-sub000/internal/core/domain"
	"github.com/sucyhan/polydiff-2023-sub000/internal/core/ports/driven"
)

// Store is a PostgreSQL-backed store.
type Store struct {
	db *sql.DB
}

// NewStore connects to dsn, checks the connection and applies pending
// migrations.
func NewStore(ctx context.Context, dsn string) (*Store, error) {
	if strings.TrimSpace(dsn) == "" {
		return nil, fmt.Errorf("%w: empty postgres dsn", domain.ErrInvalidInput)
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(time.Hour)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, err)
	}

	s := &Store{db: db}
	if err := s.migrate(ctx, migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the connection pool.
func (s *Store) Close() error {
	return s.db.Close()
}

// GameStore returns a GameStore interface backed by this store.
func (s *Store) GameStore() driven.GameStore {
	return &gameStore{db: s.db}
}

func (s *Store) migrate(ctx context.Context, fsys fs.FS) error {
	const ddl = `
create table if not exists schema_migrations (
    version    integer primary key,
    applied_at timestamptz not null default now()
)`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var current int
	if err := s.db.QueryRowContext(ctx,
		`select coalesce(max(version), 0) from schema_migrations`).Scan(&current); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	names, err := fs.Glob(fsys, "*.up.sql")
	if err != nil {
		return fmt.Errorf("listing migrations: %w", err)
	}
	sort.Strings(names)

	for _, name := range names {
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil || version <= current {
			continue
		}
		script, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, string(script)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
		if _, err := tx.ExecContext(ctx,
			`insert into schema_migrations(version) values ($1)`, version); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("committing migration %s: %w", name, err)
		}
	}
	return nil
}

// gameStore implements driven.GameStore.
type gameStore struct {
	db *sql.DB
}

var _ driven.GameStore = (*gameStore)(nil)

// Save inserts or replaces a game. created_at is kept from the first insert.
func (r *gameStore) Save(ctx context.Context, game *domain.Game) error {
	if game == nil || game.ID == "" {
		return domain.ErrInvalidInput
	}
	js, err := json.Marshal(game.Differences)
	if err != nil {
		return fmt.Errorf("marshalling differences: %w", err)
	}

	const q = `
insert into games(id, name, radius, width, height, difficulty, difference_count, differences, created_at)
values ($1,$2,$3,$4,$5,$6,$7,$8,$9)
on conflict (id)
do update set name=excluded.name, radius=excluded.radius, width=excluded.width,
              height=excluded.height, difficulty=excluded.difficulty,
              difference_count=excluded.difference_count, differences=excluded.differences`
	_, err = r.db.ExecContext(ctx, q, game.ID, game.Name, game.Radius, game.Width, game.Height,
		string(game.Difficulty), len(game.Differences), js, game.CreatedAt.UTC())
	if err != nil {
		return fmt.Errorf("saving game: %w", err)
	}
	return nil
}

// Get retrieves a game by ID.
func (r *gameStore) Get(ctx context.Context, id string) (*domain.Game, error) {
	const q = `select id, name, radius, width, height, difficulty, differences, created_at
	           from games where id=$1`
	game, err := scanGame(r.db.QueryRowContext(ctx, q, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return game, err
}

// List returns all games, newest first.
func (r *gameStore) List(ctx context.Context) ([]*domain.Game, error) {
	const q = `select id, name, radius, width, height, difficulty, differences, created_at
	           from games order by created_at desc, id asc`
	rows, err := r.db.QueryContext(ctx, q)
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
func (r *gameStore) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `delete from games where id=$1`, id)
	if err != nil {
		return fmt.Errorf("deleting game: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanGame(row scanner) (*domain.Game, error) {
	var (
		game       domain.Game
		difficulty string
		js         []byte
		ts         time.Time
	)
	if err := row.Scan(&game.ID, &game.Name, &game.Radius, &game.Width, &game.Height,
		&difficulty, &js, &ts); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning game: %w", err)
	}
	if err := json.Unmarshal(js, &game.Differences); err != nil {
		return nil, fmt.Errorf("unmarshalling differences: %w", err)
	}
	game.Difficulty = domain.Difficulty(difficulty)
	game.CreatedAt = ts.UTC()
	return &game, nil
}

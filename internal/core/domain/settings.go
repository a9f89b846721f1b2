package domain

import (
	"fmt"
	"slices"
)

const unknownDescription = "Unknown"

// StorageDriver selects the backend used to persist games.
type StorageDriver string

// Available storage drivers.
const (
	// StorageDriverSQLite stores games in a local SQLite database.
	StorageDriverSQLite StorageDriver = "sqlite"

	// StorageDriverPostgres stores games in a PostgreSQL database.
	StorageDriverPostgres StorageDriver = "postgres"

	// StorageDriverMemory keeps games in memory for the process lifetime.
	StorageDriverMemory StorageDriver = "memory"
)

// IsValid returns true if the storage driver is recognised.
func (d StorageDriver) IsValid() bool {
	switch d {
	case StorageDriverSQLite, StorageDriverPostgres, StorageDriverMemory:
		return true
	default:
		return false
	}
}

// RequiresDSN returns true if this driver needs a connection string.
func (d StorageDriver) RequiresDSN() bool {
	return d == StorageDriverPostgres
}

// String returns the string representation.
func (d StorageDriver) String() string {
	return string(d)
}

// Description returns a human-readable description of the driver.
func (d StorageDriver) Description() string {
	switch d {
	case StorageDriverSQLite:
		return "SQLite (local file)"
	case StorageDriverPostgres:
		return "PostgreSQL (server)"
	case StorageDriverMemory:
		return "Memory (not persisted)"
	default:
		return unknownDescription
	}
}

// AllStorageDrivers returns all available storage drivers.
func AllStorageDrivers() []StorageDriver {
	return []StorageDriver{
		StorageDriverSQLite,
		StorageDriverPostgres,
		StorageDriverMemory,
	}
}

// GameSettings holds the rules of the game creation workflow.
type GameSettings struct {
	// DefaultRadius is used when the creator does not pick a radius.
	DefaultRadius int

	// AllowedRadii lists the radii a creator may pick from.
	AllowedRadii []int

	// MinDifferences and MaxDifferences bound the number of differences
	// a valid game must have.
	MinDifferences int
	MaxDifferences int
}

// RadiusAllowed returns true if radius is one of the allowed radii.
// An empty allow-list accepts any non-negative radius.
func (g GameSettings) RadiusAllowed(radius int) bool {
	if radius < 0 {
		return false
	}
	if len(g.AllowedRadii) == 0 {
		return true
	}
	return slices.Contains(g.AllowedRadii, radius)
}

// ImageSettings holds the expected image dimensions.
// A zero width or height disables the size check.
type ImageSettings struct {
	Width  int
	Height int
}

// Enforced returns true if images must match the configured size.
func (i ImageSettings) Enforced() bool {
	return i.Width > 0 && i.Height > 0
}

// StorageSettings holds game persistence configuration.
type StorageSettings struct {
	// Driver selects the storage backend.
	Driver StorageDriver

	// DSN is the connection string (for PostgreSQL).
	DSN string

	// DataDir is the directory of the SQLite database.
	// Empty selects ~/.polydiff/data.
	DataDir string
}

// AppSettings holds all application settings.
type AppSettings struct {
	// Game holds the creation workflow rules.
	Game GameSettings

	// Image holds the expected image size.
	Image ImageSettings

	// Storage holds persistence settings.
	Storage StorageSettings
}

// Validate checks that the settings are internally consistent.
func (s *AppSettings) Validate() error {
	if s.Game.MinDifferences < 0 || s.Game.MaxDifferences < s.Game.MinDifferences {
		return fmt.Errorf("%w: difference bounds [%d, %d]",
			ErrInvalidInput, s.Game.MinDifferences, s.Game.MaxDifferences)
	}
	for _, r := range s.Game.AllowedRadii {
		if r < 0 {
			return fmt.Errorf("%w: negative radius %d", ErrInvalidInput, r)
		}
	}
	if !s.Game.RadiusAllowed(s.Game.DefaultRadius) {
		return fmt.Errorf("%w: default radius %d is not allowed", ErrInvalidRadius, s.Game.DefaultRadius)
	}
	if s.Image.Width < 0 || s.Image.Height < 0 {
		return fmt.Errorf("%w: image size %dx%d", ErrInvalidInput, s.Image.Width, s.Image.Height)
	}
	if !s.Storage.Driver.IsValid() {
		return fmt.Errorf("%w: storage driver %q", ErrInvalidInput, s.Storage.Driver)
	}
	if s.Storage.Driver.RequiresDSN() && s.Storage.DSN == "" {
		return fmt.Errorf("%w: storage driver %q requires a dsn", ErrInvalidInput, s.Storage.Driver)
	}
	return nil
}

// DefaultAppSettings returns settings with sensible defaults.
// The game rules match the reference 640×480 game.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Game: GameSettings{
			DefaultRadius:  3,
			AllowedRadii:   []int{0, 3, 9, 15},
			MinDifferences: 3,
			MaxDifferences: 9,
		},
		Image: ImageSettings{
			Width:  640,
			Height: 480,
		},
		Storage: StorageSettings{
			Driver: StorageDriverSQLite,
		},
	}
}

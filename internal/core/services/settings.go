package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sucyhan/polydiff-2023-sub000/internal/core/domain"
	"github.com/sucyhan/polydiff-2023-sub000/internal/core/ports/driven"
	"github.com/sucyhan/polydiff-2023-sub000/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyDefaultRadius  = "game.default_radius"
	keyAllowedRadii   = "game.allowed_radii"
	keyMinDifferences = "game.min_differences"
	keyMaxDifferences = "game.max_differences"
	keyImageWidth     = "image.width"
	keyImageHeight    = "image.height"
	keyStorageDriver  = "storage.driver"
	keyStorageDSN     = "storage.dsn"
	keyStorageDataDir = "storage.data_dir"
)

var settingKeys = []string{
	keyDefaultRadius,
	keyAllowedRadii,
	keyMinDifferences,
	keyMaxDifferences,
	keyImageWidth,
	keyImageHeight,
	keyStorageDriver,
	keyStorageDSN,
	keyStorageDataDir,
}

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Game: domain.GameSettings{
			DefaultRadius:  s.getInt(keyDefaultRadius, defaults.Game.DefaultRadius),
			AllowedRadii:   s.getIntSlice(keyAllowedRadii, defaults.Game.AllowedRadii),
			MinDifferences: s.getInt(keyMinDifferences, defaults.Game.MinDifferences),
			MaxDifferences: s.getInt(keyMaxDifferences, defaults.Game.MaxDifferences),
		},
		Image: domain.ImageSettings{
			Width:  s.getInt(keyImageWidth, defaults.Image.Width),
			Height: s.getInt(keyImageHeight, defaults.Image.Height),
		},
		Storage: domain.StorageSettings{
			Driver:  s.getDriver(defaults.Storage.Driver),
			DSN:     s.configStore.GetString(keyStorageDSN),
			DataDir: s.configStore.GetString(keyStorageDataDir),
		},
	}

	return settings, nil
}

// Save validates and persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if settings == nil {
		return fmt.Errorf("%w: nil settings", domain.ErrInvalidInput)
	}
	if err := settings.Validate(); err != nil {
		return err
	}

	values := []struct {
		key   string
		value any
	}{
		{keyDefaultRadius, settings.Game.DefaultRadius},
		{keyAllowedRadii, settings.Game.AllowedRadii},
		{keyMinDifferences, settings.Game.MinDifferences},
		{keyMaxDifferences, settings.Game.MaxDifferences},
		{keyImageWidth, settings.Image.Width},
		{keyImageHeight, settings.Image.Height},
		{keyStorageDriver, settings.Storage.Driver.String()},
		{keyStorageDSN, settings.Storage.DSN},
		{keyStorageDataDir, settings.Storage.DataDir},
	}
	for _, v := range values {
		if err := s.configStore.Set(v.key, v.value); err != nil {
			return fmt.Errorf("save %s: %w", v.key, err)
		}
	}

	return nil
}

// Set parses value for key and persists the updated settings.
// The whole configuration is validated before anything is written.
func (s *SettingsService) Set(key, value string) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	value = strings.TrimSpace(value)
	switch key {
	case keyDefaultRadius:
		err = parseIntInto(value, &settings.Game.DefaultRadius)
	case keyAllowedRadii:
		settings.Game.AllowedRadii, err = parseIntList(value)
	case keyMinDifferences:
		err = parseIntInto(value, &settings.Game.MinDifferences)
	case keyMaxDifferences:
		err = parseIntInto(value, &settings.Game.MaxDifferences)
	case keyImageWidth:
		err = parseIntInto(value, &settings.Image.Width)
	case keyImageHeight:
		err = parseIntInto(value, &settings.Image.Height)
	case keyStorageDriver:
		driver := domain.StorageDriver(value)
		if !driver.IsValid() {
			return fmt.Errorf("%w: storage driver %q (want one of %v)",
				domain.ErrInvalidInput, value, domain.AllStorageDrivers())
		}
		settings.Storage.Driver = driver
	case keyStorageDSN:
		settings.Storage.DSN = value
	case keyStorageDataDir:
		settings.Storage.DataDir = value
	default:
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}

	return s.Save(settings)
}

// Keys returns the recognised setting keys.
func (s *SettingsService) Keys() []string {
	keys := make([]string, len(settingKeys))
	copy(keys, settingKeys)
	return keys
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// Helper methods for reading config with defaults.
// Zero is a meaningful value for most keys, so presence is checked explicitly.

func (s *SettingsService) getInt(key string, defaultVal int) int {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetInt(key)
}

func (s *SettingsService) getIntSlice(key string, defaultVal []int) []int {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetIntSlice(key)
}

func (s *SettingsService) getDriver(defaultVal domain.StorageDriver) domain.StorageDriver {
	driver := domain.StorageDriver(s.configStore.GetString(keyStorageDriver))
	if !driver.IsValid() {
		return defaultVal
	}
	return driver
}

func parseIntInto(value string, dst *int) error {
	n, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("%w: %q is not an integer", domain.ErrInvalidInput, value)
	}
	*dst = n
	return nil
}

// parseIntList parses a comma-separated list such as "0,3,9,15".
// An empty string yields an empty list.
func parseIntList(value string) ([]int, error) {
	value = strings.Trim(value, "[]")
	if strings.TrimSpace(value) == "" {
		return []int{}, nil
	}
	parts := strings.Split(value, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		var n int
		if err := parseIntInto(strings.TrimSpace(p), &n); err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

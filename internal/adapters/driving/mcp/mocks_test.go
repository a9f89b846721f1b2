package mcp

import (
	"context"
	"image"

	"github.com/sucyhan/polydiff-2023-sub000/internal/core/domain"
)

// mockDiffService is a mock implementation of driving.DiffService.
type mockDiffService struct {
	result *domain.DiffResult
	err    error

	gotRadius int
}

func (m *mockDiffService) Find(_ context.Context, _, _ *image.RGBA, radius int) (*domain.DiffResult, error) {
	m.gotRadius = radius
	return m.result, m.err
}

// mockImageLoader is a mock implementation of driven.ImageLoader.
type mockImageLoader struct {
	images map[string]*image.RGBA
	err    error
}

func (m *mockImageLoader) Load(path string) (*image.RGBA, error) {
	if m.err != nil {
		return nil, m.err
	}
	if img, ok := m.images[path]; ok {
		return img, nil
	}
	return image.NewRGBA(image.Rect(0, 0, 4, 4)), nil
}

func (m *mockImageLoader) SavePNG(_ string, _ image.Image) error {
	return m.err
}

// mockGameService is a mock implementation of driving.GameService.
type mockGameService struct {
	game      *domain.Game
	summaries []domain.GameSummary
	check     domain.CheckResult
	err       error

	gotDraft domain.GameDraft
	gotClick domain.Point
	gotFound []int
}

func (m *mockGameService) Create(_ context.Context, draft domain.GameDraft) (*domain.Game, error) {
	m.gotDraft = draft
	return m.game, m.err
}

func (m *mockGameService) Get(_ context.Context, _ string) (*domain.Game, error) {
	return m.game, m.err
}

func (m *mockGameService) List(_ context.Context) ([]domain.GameSummary, error) {
	return m.summaries, m.err
}

func (m *mockGameService) Delete(_ context.Context, _ string) error {
	return m.err
}

func (m *mockGameService) Check(
	_ context.Context,
	_ string,
	click domain.Point,
	found []int,
) (domain.CheckResult, error) {
	m.gotClick = click
	m.gotFound = found
	return m.check, m.err
}

// mockSettingsService is a mock implementation of driving.SettingsService.
type mockSettingsService struct {
	settings *domain.AppSettings
	err      error
}

func (m *mockSettingsService) Get() (*domain.AppSettings, error) {
	return m.settings, m.err
}

func (m *mockSettingsService) Save(_ *domain.AppSettings) error { return m.err }

func (m *mockSettingsService) Set(_, _ string) error { return m.err }

func (m *mockSettingsService) Keys() []string { return nil }

func (m *mockSettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

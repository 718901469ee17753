package store

import (
	"context"
	"encoding/json"
	"errors"

	"karigar-api/internal/model"
)

// ErrInvalidSetting is returned when a setting key or value is not among the
// recognized options.
var ErrInvalidSetting = errors.New("unknown setting key or value")

func (s *Store) loadSettings(ctx context.Context) (model.Settings, error) {
	raw, err := s.read(ctx, keySettings)
	if err != nil {
		return model.Settings{}, err
	}
	if raw == nil {
		return model.DefaultSettings(), nil
	}

	var settings model.Settings
	if err := json.Unmarshal(raw, &settings); err != nil {
		if resetErr := s.resetCorrupted(ctx, keySettings, err); resetErr != nil {
			return model.Settings{}, resetErr
		}
		return model.DefaultSettings(), nil
	}

	// Fill any field an older blob left empty.
	defaults := model.DefaultSettings()
	if settings.Theme == "" {
		settings.Theme = defaults.Theme
	}
	if settings.Language == "" {
		settings.Language = defaults.Language
	}
	if settings.Region == "" {
		settings.Region = defaults.Region
	}
	return settings, nil
}

// GetSettings returns the stored preferences with defaults applied.
func (s *Store) GetSettings(ctx context.Context) (model.Settings, error) {
	return s.loadSettings(ctx)
}

// SetSetting updates one recognized preference and returns the full settings
// afterwards. Unrecognized keys or values yield ErrInvalidSetting.
func (s *Store) SetSetting(ctx context.Context, key, value string) (model.Settings, error) {
	if !model.ValidSetting(key, value) {
		return model.Settings{}, ErrInvalidSetting
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	settings, err := s.loadSettings(ctx)
	if err != nil {
		return model.Settings{}, err
	}

	switch key {
	case "theme":
		settings.Theme = value
	case "language":
		settings.Language = value
	case "region":
		settings.Region = value
	}

	if err := s.write(ctx, keySettings, settings); err != nil {
		return model.Settings{}, err
	}
	return settings, nil
}

// CurrencySymbol returns the display symbol for the stored region.
func (s *Store) CurrencySymbol(ctx context.Context) (string, error) {
	settings, err := s.loadSettings(ctx)
	if err != nil {
		return "", err
	}
	symbol, ok := model.CurrencySymbols[settings.Region]
	if !ok {
		symbol = model.CurrencySymbols[model.DefaultSettings().Region]
	}
	return symbol, nil
}

package usecase

import (
	"context"
	"fmt"

	"github.com/orbitlabs/missionctl/internal/domain"
)

// UpdateSettingsInput carries the preference changes. Nil fields keep their
// stored value.
type UpdateSettingsInput struct {
	SoundEnabled *bool           // Toggle sound feedback
	SortBy       *domain.SortKey // Default sort key
}

// UpdateSettingsOutput contains the settings as persisted.
type UpdateSettingsOutput struct {
	Settings domain.Settings
}

// UpdateSettings is the use case for changing user preferences. Settings are
// persisted on every change.
type UpdateSettings struct {
	settings domain.SettingsRepository
	logger   domain.Logger
}

// NewUpdateSettings creates a new UpdateSettings use case.
func NewUpdateSettings(settings domain.SettingsRepository, logger domain.Logger) *UpdateSettings {
	return &UpdateSettings{
		settings: settings,
		logger:   logger,
	}
}

// Execute applies and persists the preference changes.
func (uc *UpdateSettings) Execute(_ context.Context, in UpdateSettingsInput) (*UpdateSettingsOutput, error) {
	current, err := uc.settings.Load()
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	if in.SoundEnabled != nil {
		current.SoundEnabled = *in.SoundEnabled
	}
	if in.SortBy != nil {
		if !in.SortBy.IsValid() {
			return nil, domain.ErrInvalidSortKey
		}
		current.SortBy = *in.SortBy
	}

	if err := uc.settings.Save(current); err != nil {
		return nil, fmt.Errorf("save settings: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info("", "settings", fmt.Sprintf("updated: sound=%t sort=%s", current.SoundEnabled, current.SortBy))
	}
	return &UpdateSettingsOutput{Settings: current}, nil
}

package database

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"portfolio/constants"
)

func DefaultSettings() Settings {
	return Settings{
		SiteName:        constants.APP_NAME,
		SiteDescription: "Personal portfolio and blog",
		MetaTitle:       constants.APP_NAME,
	}
}

// GetSettings returns the settings row, creating it with defaults the first
// time it is read.
func (s *Store) GetSettings(ctx context.Context) (*Settings, error) {
	var settings Settings
	err := s.db.WithContext(ctx).Order("id ASC").First(&settings).Error
	if err == nil {
		return &settings, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	settings = DefaultSettings()
	if err := s.db.WithContext(ctx).Create(&settings).Error; err != nil {
		return nil, err
	}
	return &settings, nil
}

// UpdateSettings merges the provided fields into the settings row.
func (s *Store) UpdateSettings(ctx context.Context, patch SettingsPatch) (*Settings, error) {
	current, err := s.GetSettings(ctx)
	if err != nil {
		return nil, err
	}
	return updateByID[Settings](ctx, s.db, current.ID, patch.updates())
}

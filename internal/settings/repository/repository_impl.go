package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	settingsdomain "github.com/kyberbiz/kyberbiz/internal/settings/domain"
)

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) settingsdomain.Repository {
	return &repository{db: db}
}

func (r *repository) GetBranding(ctx context.Context) (*settingsdomain.BrandingProfile, error) {
	var profile settingsdomain.BrandingProfile
	err := r.db.WithContext(ctx).
		First(&profile, "id = ?", settingsdomain.SettingsRowID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *repository) SaveBranding(ctx context.Context, profile *settingsdomain.BrandingProfile) error {
	profile.ID = settingsdomain.SettingsRowID
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(profile).Error
}

func (r *repository) GetSMTP(ctx context.Context) (*settingsdomain.SMTPSettings, error) {
	var settings settingsdomain.SMTPSettings
	err := r.db.WithContext(ctx).
		First(&settings, "id = ?", settingsdomain.SettingsRowID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *repository) SaveSMTP(ctx context.Context, settings *settingsdomain.SMTPSettings) error {
	settings.ID = settingsdomain.SettingsRowID
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(settings).Error
}

func (r *repository) GetPayPal(ctx context.Context) (*settingsdomain.PayPalSettings, error) {
	var settings settingsdomain.PayPalSettings
	err := r.db.WithContext(ctx).
		First(&settings, "id = ?", settingsdomain.SettingsRowID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *repository) SavePayPal(ctx context.Context, settings *settingsdomain.PayPalSettings) error {
	settings.ID = settingsdomain.SettingsRowID
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(settings).Error
}

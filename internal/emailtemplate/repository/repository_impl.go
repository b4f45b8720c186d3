package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	templatedomain "github.com/kyberbiz/kyberbiz/internal/emailtemplate/domain"
)

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) templatedomain.Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context) ([]templatedomain.EmailTemplate, error) {
	var templates []templatedomain.EmailTemplate
	err := r.db.WithContext(ctx).
		Order("created_at ASC, id ASC").
		Find(&templates).Error
	if err != nil {
		return nil, err
	}
	return templates, nil
}

func (r *repository) FindByID(ctx context.Context, id string) (*templatedomain.EmailTemplate, error) {
	var template templatedomain.EmailTemplate
	err := r.db.WithContext(ctx).First(&template, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &template, nil
}

func (r *repository) Create(ctx context.Context, template *templatedomain.EmailTemplate) error {
	return r.db.WithContext(ctx).Create(template).Error
}

func (r *repository) CreateBatch(ctx context.Context, templates []templatedomain.EmailTemplate) error {
	return r.db.WithContext(ctx).Create(&templates).Error
}

func (r *repository) Update(ctx context.Context, template *templatedomain.EmailTemplate) error {
	return r.db.WithContext(ctx).Save(template).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Delete(&templatedomain.EmailTemplate{}, "id = ?", id).Error
}

func (r *repository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&templatedomain.EmailTemplate{}).
		Count(&count).Error
	return count, err
}

func (r *repository) SetDefault(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&templatedomain.EmailTemplate{}).
			Where("is_default = ?", true).
			Update("is_default", false).Error; err != nil {
			return err
		}
		result := tx.Model(&templatedomain.EmailTemplate{}).
			Where("id = ?", id).
			Update("is_default", true)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return templatedomain.ErrNotFound
		}
		return nil
	})
}

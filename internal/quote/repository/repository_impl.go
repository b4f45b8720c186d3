package repository

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"

	quotedomain "github.com/kyberbiz/kyberbiz/internal/quote/domain"
)

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) quotedomain.Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, quote *quotedomain.Quote) error {
	return r.db.WithContext(ctx).Create(quote).Error
}

func (r *repository) List(ctx context.Context) ([]quotedomain.Quote, error) {
	var quotes []quotedomain.Quote
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&quotes).Error
	if err != nil {
		return nil, err
	}
	return quotes, nil
}

func (r *repository) FindByID(ctx context.Context, id snowflake.ID) (*quotedomain.Quote, error) {
	var quote quotedomain.Quote
	err := r.db.WithContext(ctx).First(&quote, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &quote, nil
}

func (r *repository) Update(ctx context.Context, quote *quotedomain.Quote) error {
	return r.db.WithContext(ctx).Save(quote).Error
}

func (r *repository) Delete(ctx context.Context, id snowflake.ID) error {
	return r.db.WithContext(ctx).
		Delete(&quotedomain.Quote{}, "id = ?", id).Error
}

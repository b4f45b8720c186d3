package repository

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"

	invoicedomain "github.com/kyberbiz/kyberbiz/internal/invoice/domain"
)

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) invoicedomain.Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, invoice *invoicedomain.Invoice) error {
	return r.db.WithContext(ctx).Create(invoice).Error
}

func (r *repository) List(ctx context.Context) ([]invoicedomain.Invoice, error) {
	var invoices []invoicedomain.Invoice
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&invoices).Error
	if err != nil {
		return nil, err
	}
	return invoices, nil
}

func (r *repository) FindByID(ctx context.Context, id snowflake.ID) (*invoicedomain.Invoice, error) {
	var invoice invoicedomain.Invoice
	err := r.db.WithContext(ctx).First(&invoice, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &invoice, nil
}

func (r *repository) Update(ctx context.Context, invoice *invoicedomain.Invoice) error {
	return r.db.WithContext(ctx).Save(invoice).Error
}

func (r *repository) Delete(ctx context.Context, id snowflake.ID) error {
	return r.db.WithContext(ctx).
		Delete(&invoicedomain.Invoice{}, "id = ?", id).Error
}

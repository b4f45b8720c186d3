package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"

	"github.com/kyberbiz/kyberbiz/internal/billing"
)

// QuoteStatus is the lifecycle state of a quote.
type QuoteStatus string

const (
	StatusDraft     QuoteStatus = "draft"
	StatusSent      QuoteStatus = "sent"
	StatusAccepted  QuoteStatus = "accepted"
	StatusDeclined  QuoteStatus = "declined"
	StatusConverted QuoteStatus = "converted"
)

// Quote is a priced offer that can be converted into an invoice. Totals are
// derived from Items on every create and full update, never edited directly.
type Quote struct {
	ID            snowflake.ID                         `gorm:"primaryKey" json:"id,string"`
	Number        string                               `gorm:"type:text;not null;uniqueIndex" json:"number"`
	ClientName    string                               `gorm:"type:text;not null" json:"client_name"`
	ClientEmail   string                               `gorm:"type:text" json:"client_email"`
	ClientAddress string                               `gorm:"type:text" json:"client_address"`
	Items         datatypes.JSONSlice[billing.LineItem] `gorm:"not null" json:"items"`
	Subtotal      float64                              `gorm:"not null" json:"subtotal"`
	Tax           float64                              `gorm:"not null" json:"tax"`
	Total         float64                              `gorm:"not null" json:"total"`
	Status        QuoteStatus                          `gorm:"type:text;not null" json:"status"`
	ValidUntil    *time.Time                           `gorm:"column:valid_until" json:"valid_until,omitempty"`
	Notes         string                               `gorm:"type:text" json:"notes"`
	InvoiceID     *snowflake.ID                        `gorm:"column:invoice_id" json:"invoice_id,string,omitempty"`
	CreatedAt     time.Time                            `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time                            `gorm:"not null" json:"updated_at"`
}

func (Quote) TableName() string { return "quotes" }

// Input is the write model for create and full update.
type Input struct {
	ClientName    string             `json:"client_name"`
	ClientEmail   string             `json:"client_email"`
	ClientAddress string             `json:"client_address"`
	Items         []billing.LineItem `json:"items"`
	ValidUntil    *time.Time         `json:"valid_until"`
	Notes         string             `json:"notes"`
}

func (in Input) Validate() error {
	if in.ClientName == "" {
		return ErrInvalidClientName
	}
	for _, item := range in.Items {
		if item.Description == "" {
			return ErrInvalidItem
		}
	}
	return nil
}

package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"

	"github.com/kyberbiz/kyberbiz/internal/billing"
)

// InvoiceStatus is the lifecycle state of an invoice.
type InvoiceStatus string

const (
	StatusDraft   InvoiceStatus = "draft"
	StatusSent    InvoiceStatus = "sent"
	StatusPaid    InvoiceStatus = "paid"
	StatusOverdue InvoiceStatus = "overdue"
)

// Invoice is a billable document. Totals derive from Items on create and
// full update; status transitions happen only through Send and MarkPaid.
type Invoice struct {
	ID            snowflake.ID                          `gorm:"primaryKey" json:"id,string"`
	Number        string                                `gorm:"type:text;not null;uniqueIndex" json:"number"`
	ClientName    string                                `gorm:"type:text;not null" json:"client_name"`
	ClientEmail   string                                `gorm:"type:text" json:"client_email"`
	ClientAddress string                                `gorm:"type:text" json:"client_address"`
	Items         datatypes.JSONSlice[billing.LineItem] `gorm:"not null" json:"items"`
	Subtotal      float64                               `gorm:"not null" json:"subtotal"`
	Tax           float64                               `gorm:"not null" json:"tax"`
	Total         float64                               `gorm:"not null" json:"total"`
	Status        InvoiceStatus                         `gorm:"type:text;not null" json:"status"`
	DueDate       *time.Time                            `gorm:"column:due_date" json:"due_date,omitempty"`
	Notes         string                                `gorm:"type:text" json:"notes"`
	PaymentLink   string                                `gorm:"column:payment_link;type:text" json:"payment_link,omitempty"`
	PaymentID     string                                `gorm:"column:payment_id;type:text" json:"payment_id,omitempty"`
	PaidAt        *time.Time                            `gorm:"column:paid_at" json:"paid_at,omitempty"`
	QuoteID       *snowflake.ID                         `gorm:"column:quote_id" json:"quote_id,string,omitempty"`
	CreatedAt     time.Time                             `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time                             `gorm:"not null" json:"updated_at"`
}

func (Invoice) TableName() string { return "invoices" }

// Input is the write model for create and full update.
type Input struct {
	ClientName    string             `json:"client_name"`
	ClientEmail   string             `json:"client_email"`
	ClientAddress string             `json:"client_address"`
	Items         []billing.LineItem `json:"items"`
	DueDate       *time.Time         `json:"due_date"`
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

// PublicInvoice is the unauthenticated payment-page view. The PayPal client
// id is present only when the integration is configured.
type PublicInvoice struct {
	Invoice        *Invoice `json:"invoice"`
	CompanyName    string   `json:"company_name"`
	LogoURL        string   `json:"logo_url,omitempty"`
	PrimaryColor   string   `json:"primary_color"`
	PayPalClientID string   `json:"paypal_client_id,omitempty"`
}

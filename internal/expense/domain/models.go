package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Category groups expenses for reporting.
type Category struct {
	ID        snowflake.ID `gorm:"primaryKey" json:"id,string"`
	Name      string       `gorm:"type:text;not null;uniqueIndex" json:"name"`
	CreatedAt time.Time    `gorm:"not null" json:"created_at"`
}

func (Category) TableName() string { return "categories" }

// Vendor is a payee expenses can reference.
type Vendor struct {
	ID        snowflake.ID `gorm:"primaryKey" json:"id,string"`
	Name      string       `gorm:"type:text;not null" json:"name"`
	Email     string       `gorm:"type:text" json:"email"`
	Phone     string       `gorm:"type:text" json:"phone"`
	Notes     string       `gorm:"type:text" json:"notes"`
	CreatedAt time.Time    `gorm:"not null" json:"created_at"`
}

func (Vendor) TableName() string { return "vendors" }

// Expense is a recorded cost. The category reference is required and
// validated; the vendor reference is optional but validated when present.
type Expense struct {
	ID          snowflake.ID  `gorm:"primaryKey" json:"id,string"`
	Description string        `gorm:"type:text;not null" json:"description"`
	Amount      float64       `gorm:"not null" json:"amount"`
	Date        time.Time     `gorm:"not null" json:"date"`
	CategoryID  snowflake.ID  `gorm:"column:category_id;not null;index" json:"category_id,string"`
	VendorID    *snowflake.ID `gorm:"column:vendor_id;index" json:"vendor_id,string,omitempty"`
	Notes       string        `gorm:"type:text" json:"notes"`
	CreatedAt   time.Time     `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time     `gorm:"not null" json:"updated_at"`
}

func (Expense) TableName() string { return "expenses" }

// ExpenseInput is the write model for expense create and update.
type ExpenseInput struct {
	Description string        `json:"description"`
	Amount      float64       `json:"amount"`
	Date        time.Time     `json:"date"`
	CategoryID  snowflake.ID  `json:"category_id,string"`
	VendorID    *snowflake.ID `json:"vendor_id,string"`
	Notes       string        `json:"notes"`
}

func (in ExpenseInput) Validate() error {
	if in.Description == "" {
		return ErrInvalidDescription
	}
	if in.Amount <= 0 {
		return ErrInvalidAmount
	}
	if in.CategoryID == 0 {
		return ErrUnknownCategory
	}
	return nil
}

// CategoryInput is the write model for categories.
type CategoryInput struct {
	Name string `json:"name"`
}

// VendorInput is the write model for vendors.
type VendorInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Notes string `json:"notes"`
}

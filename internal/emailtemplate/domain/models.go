package domain

import (
	"strings"
	"time"
)

// BuiltinPrefix marks the seeded starter templates. Ids carrying it are
// immutable and non-deletable.
const BuiltinPrefix = "default-"

// Themes lists the accepted visual styles for stored templates. "bold" is
// an email-only style with no PDF counterpart.
var Themes = []string{"professional", "modern", "minimal", "bold", "classic"}

// ValidTheme reports whether id names one of the accepted styles.
func ValidTheme(id string) bool {
	for _, t := range Themes {
		if t == id {
			return true
		}
	}
	return false
}

// EmailTemplate is a stored notification layout. Bodies hold {placeholder}
// tokens substituted at send time.
type EmailTemplate struct {
	ID        string    `gorm:"primaryKey;type:text" json:"id"`
	Name      string    `gorm:"type:text;not null" json:"name"`
	Subject   string    `gorm:"type:text;not null" json:"subject"`
	Body      string    `gorm:"type:text;not null" json:"body"`
	Theme     string    `gorm:"type:text;not null" json:"theme"`
	IsDefault bool      `gorm:"column:is_default;not null" json:"is_default"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (EmailTemplate) TableName() string { return "email_templates" }

// IsBuiltin reports whether the template is one of the seeded starters.
func (t EmailTemplate) IsBuiltin() bool {
	return strings.HasPrefix(t.ID, BuiltinPrefix)
}

// Input is the write model for create and update.
type Input struct {
	Name    string `json:"name"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
	Theme   string `json:"theme"`
}

func (in Input) Validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return ErrInvalidName
	}
	if strings.TrimSpace(in.Subject) == "" {
		return ErrInvalidSubject
	}
	if strings.TrimSpace(in.Body) == "" {
		return ErrInvalidBody
	}
	if !ValidTheme(in.Theme) {
		return ErrInvalidTheme
	}
	return nil
}

package domain

import "time"

// Settings rows are singletons; SettingsRowID pins each table to one row.
const SettingsRowID int64 = 1

// BrandingProfile is the company identity shown on documents and emails.
type BrandingProfile struct {
	ID             int64     `gorm:"primaryKey" json:"-"`
	CompanyName    string    `gorm:"type:text;not null" json:"company_name"`
	Tagline        string    `gorm:"type:text" json:"tagline"`
	LogoURL        string    `gorm:"column:logo_url;type:text" json:"logo_url"`
	PrimaryColor   string    `gorm:"type:text;not null" json:"primary_color"`
	SecondaryColor string    `gorm:"type:text;not null" json:"secondary_color"`
	AccentColor    string    `gorm:"type:text;not null" json:"accent_color"`
	Address        string    `gorm:"type:text" json:"address"`
	Phone          string    `gorm:"type:text" json:"phone"`
	Email          string    `gorm:"type:text" json:"email"`
	Website        string    `gorm:"type:text" json:"website"`
	UpdatedAt      time.Time `gorm:"not null" json:"updated_at"`
}

func (BrandingProfile) TableName() string { return "branding_settings" }

// DefaultBranding is served until a profile has been saved.
func DefaultBranding() BrandingProfile {
	return BrandingProfile{
		ID:             SettingsRowID,
		CompanyName:    "KyberBusiness",
		PrimaryColor:   "#06b6d4",
		SecondaryColor: "#d946ef",
		AccentColor:    "#10b981",
	}
}

// SMTPSettings stores the outbound mail endpoint. The password is kept
// encrypted at rest and never leaves the service undecrypted except through
// Resolve.
type SMTPSettings struct {
	ID                 int64     `gorm:"primaryKey"`
	Host               string    `gorm:"type:text;not null"`
	Port               int       `gorm:"not null"`
	Username           string    `gorm:"type:text"`
	PasswordCiphertext string    `gorm:"column:password_ciphertext;type:text"`
	FromEmail          string    `gorm:"column:from_email;type:text;not null"`
	FromName           string    `gorm:"column:from_name;type:text"`
	UpdatedAt          time.Time `gorm:"not null"`
}

func (SMTPSettings) TableName() string { return "smtp_settings" }

// PayPalSettings stores the checkout integration. The client id is treated
// as a credential and encrypted at rest.
type PayPalSettings struct {
	ID                 int64     `gorm:"primaryKey"`
	ClientIDCiphertext string    `gorm:"column:client_id_ciphertext;type:text"`
	Environment        string    `gorm:"type:text;not null"`
	UpdatedAt          time.Time `gorm:"not null"`
}

func (PayPalSettings) TableName() string { return "paypal_settings" }

// PayPal environments.
const (
	PayPalSandbox = "sandbox"
	PayPalLive    = "live"
)

// SMTPView is the masked read model; the password itself is never returned.
type SMTPView struct {
	Host        string    `json:"host"`
	Port        int       `json:"port"`
	Username    string    `json:"username"`
	FromEmail   string    `json:"from_email"`
	FromName    string    `json:"from_name"`
	HasPassword bool      `json:"has_password"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// PayPalView is the masked read model for the PayPal integration.
type PayPalView struct {
	Environment string    `json:"environment"`
	Configured  bool      `json:"configured"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// BrandingInput is the write model for SaveBranding.
type BrandingInput struct {
	CompanyName    string `json:"company_name"`
	Tagline        string `json:"tagline"`
	LogoURL        string `json:"logo_url"`
	PrimaryColor   string `json:"primary_color"`
	SecondaryColor string `json:"secondary_color"`
	AccentColor    string `json:"accent_color"`
	Address        string `json:"address"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
	Website        string `json:"website"`
}

// SMTPInput is the write model for SaveSMTP. An empty Password keeps the
// previously stored one.
type SMTPInput struct {
	Host      string `json:"host"`
	Port      int    `json:"port"`
	Username  string `json:"username"`
	Password  string `json:"password"`
	FromEmail string `json:"from_email"`
	FromName  string `json:"from_name"`
}

// PayPalInput is the write model for SavePayPal.
type PayPalInput struct {
	ClientID    string `json:"client_id"`
	Environment string `json:"environment"`
}

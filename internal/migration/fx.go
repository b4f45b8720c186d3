package migration

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/kyberbiz/kyberbiz/internal/config"
	emailtemplatedomain "github.com/kyberbiz/kyberbiz/internal/emailtemplate/domain"
	expensedomain "github.com/kyberbiz/kyberbiz/internal/expense/domain"
	invoicedomain "github.com/kyberbiz/kyberbiz/internal/invoice/domain"
	quotedomain "github.com/kyberbiz/kyberbiz/internal/quote/domain"
	settingsdomain "github.com/kyberbiz/kyberbiz/internal/settings/domain"
)

// Module prepares the schema on startup. Postgres runs the versioned SQL
// migrations; the sqlite and mysql development dialects fall back to gorm
// auto-migration.
var Module = fx.Module("migrations",
	fx.Invoke(func(conn *gorm.DB, cfg config.Config) error {
		if cfg.DBType != "postgres" {
			return conn.AutoMigrate(
				&quotedomain.Quote{},
				&invoicedomain.Invoice{},
				&emailtemplatedomain.EmailTemplate{},
				&settingsdomain.BrandingProfile{},
				&settingsdomain.SMTPSettings{},
				&settingsdomain.PayPalSettings{},
				&expensedomain.Category{},
				&expensedomain.Vendor{},
				&expensedomain.Expense{},
			)
		}

		sqlDB, err := conn.DB()
		if err != nil {
			return err
		}
		return RunMigrations(sqlDB)
	}),
)

package main

import (
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"

	"github.com/kyberbiz/kyberbiz/internal/cipher"
	"github.com/kyberbiz/kyberbiz/internal/config"
	"github.com/kyberbiz/kyberbiz/internal/document/pdf"
	"github.com/kyberbiz/kyberbiz/internal/emailtemplate"
	"github.com/kyberbiz/kyberbiz/internal/expense"
	"github.com/kyberbiz/kyberbiz/internal/invoice"
	"github.com/kyberbiz/kyberbiz/internal/logger"
	"github.com/kyberbiz/kyberbiz/internal/mailer"
	"github.com/kyberbiz/kyberbiz/internal/migration"
	"github.com/kyberbiz/kyberbiz/internal/quote"
	"github.com/kyberbiz/kyberbiz/internal/ratelimit"
	"github.com/kyberbiz/kyberbiz/internal/report"
	"github.com/kyberbiz/kyberbiz/internal/server"
	"github.com/kyberbiz/kyberbiz/internal/settings"
	"github.com/kyberbiz/kyberbiz/pkg/db"
	"github.com/kyberbiz/kyberbiz/pkg/telemetry"
)

func main() {
	app := fx.New(
		// Core infrastructure
		config.Module,
		logger.Module,
		fx.Provide(newSnowflakeNode),
		fx.Provide(telemetry.NewMetrics),
		db.Module,
		migration.Module,
		cipher.Module,

		// Document and mail engines
		pdf.Module,
		mailer.Module,

		// Record features
		settings.Module,
		quote.Module,
		invoice.Module,
		emailtemplate.Module,
		expense.Module,
		report.Module,

		ratelimit.Module,
		server.Module,
	)
	app.Run()
}

func newSnowflakeNode() (*snowflake.Node, error) {
	return snowflake.NewNode(1)
}

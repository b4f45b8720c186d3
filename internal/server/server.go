package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/kyberbiz/kyberbiz/internal/config"
	emailtemplatedomain "github.com/kyberbiz/kyberbiz/internal/emailtemplate/domain"
	expensedomain "github.com/kyberbiz/kyberbiz/internal/expense/domain"
	invoicedomain "github.com/kyberbiz/kyberbiz/internal/invoice/domain"
	quotedomain "github.com/kyberbiz/kyberbiz/internal/quote/domain"
	"github.com/kyberbiz/kyberbiz/internal/ratelimit"
	reportdomain "github.com/kyberbiz/kyberbiz/internal/report/domain"
	settingsdomain "github.com/kyberbiz/kyberbiz/internal/settings/domain"
	"github.com/kyberbiz/kyberbiz/pkg/telemetry"
)

// Module wires the gin engine, the HTTP server lifecycle and all route
// handlers.
var Module = fx.Module("http.server",
	fx.Provide(registerGin),
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

type EngineParams struct {
	fx.In

	Logger  *zap.Logger
	Metrics *telemetry.Metrics `optional:"true"`
}

func NewEngine(p EngineParams) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogger(p.Logger))
	if p.Metrics != nil {
		r.Use(p.Metrics.GinMiddleware())
	}
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func registerGin(p EngineParams) *gin.Engine {
	return NewEngine(p)
}

func run(lc fx.Lifecycle, r *gin.Engine, cfg config.Config, log *zap.Logger) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Info("http server listening", zap.String("addr", srv.Addr))
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal("http server failed", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine           *gin.Engine
	cfg              config.Config
	quoteSvc         quotedomain.Service
	invoiceSvc       invoicedomain.Service
	emailTemplateSvc emailtemplatedomain.Service
	settingsSvc      settingsdomain.Service
	expenseSvc       expensedomain.Service
	reportSvc        reportdomain.Service
	publicLimiter    *ratelimit.PublicLimiter
}

type ServerParams struct {
	fx.In

	Gin              *gin.Engine
	Cfg              config.Config
	QuoteSvc         quotedomain.Service
	InvoiceSvc       invoicedomain.Service
	EmailTemplateSvc emailtemplatedomain.Service
	SettingsSvc      settingsdomain.Service
	ExpenseSvc       expensedomain.Service
	ReportSvc        reportdomain.Service
	PublicLimiter    *ratelimit.PublicLimiter `optional:"true"`
}

func NewServer(p ServerParams) *Server {
	svc := &Server{
		engine:           p.Gin,
		cfg:              p.Cfg,
		quoteSvc:         p.QuoteSvc,
		invoiceSvc:       p.InvoiceSvc,
		emailTemplateSvc: p.EmailTemplateSvc,
		settingsSvc:      p.SettingsSvc,
		expenseSvc:       p.ExpenseSvc,
		reportSvc:        p.ReportSvc,
		publicLimiter:    p.PublicLimiter,
	}

	svc.registerAPIRoutes()
	svc.registerPublicRoutes()

	return svc
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerAPIRoutes() {
	api := s.engine.Group("/api", ActorContext())
	write := RequireRole(RoleAccountant, RoleAdmin)
	admin := RequireRole(RoleAdmin)

	quotes := api.Group("/quotes")
	quotes.GET("", s.ListQuotes)
	quotes.POST("", write, s.CreateQuote)
	quotes.GET("/:id", s.GetQuote)
	quotes.PUT("/:id", write, s.UpdateQuote)
	quotes.DELETE("/:id", write, s.DeleteQuote)
	quotes.GET("/:id/pdf", s.QuotePDF)
	quotes.POST("/:id/send", write, s.SendQuote)
	quotes.POST("/:id/convert", write, s.ConvertQuote)

	invoices := api.Group("/invoices")
	invoices.GET("", s.ListInvoices)
	invoices.POST("", write, s.CreateInvoice)
	invoices.GET("/:id", s.GetInvoice)
	invoices.PUT("/:id", write, s.UpdateInvoice)
	invoices.DELETE("/:id", write, s.DeleteInvoice)
	invoices.GET("/:id/pdf", s.InvoicePDF)
	invoices.POST("/:id/send", write, s.SendInvoice)

	api.GET("/pdf-templates", s.ListPDFTemplates)

	templates := api.Group("/email-templates")
	templates.GET("", s.ListEmailTemplates)
	templates.POST("", admin, s.CreateEmailTemplate)
	templates.GET("/:id", s.GetEmailTemplate)
	templates.PUT("/:id", admin, s.UpdateEmailTemplate)
	templates.DELETE("/:id", admin, s.DeleteEmailTemplate)
	templates.POST("/:id/default", admin, s.SetDefaultEmailTemplate)

	settings := api.Group("/settings")
	settings.GET("/branding", s.GetBranding)
	settings.PUT("/branding", admin, s.SaveBranding)
	settings.GET("/smtp", s.GetSMTP)
	settings.PUT("/smtp", admin, s.SaveSMTP)
	settings.GET("/paypal", s.GetPayPal)
	settings.PUT("/paypal", admin, s.SavePayPal)

	expenses := api.Group("/expenses")
	expenses.GET("", s.ListExpenses)
	expenses.POST("", write, s.CreateExpense)
	expenses.GET("/:id", s.GetExpense)
	expenses.PUT("/:id", write, s.UpdateExpense)
	expenses.DELETE("/:id", write, s.DeleteExpense)

	categories := api.Group("/categories")
	categories.GET("", s.ListCategories)
	categories.POST("", write, s.CreateCategory)
	categories.DELETE("/:id", write, s.DeleteCategory)

	vendors := api.Group("/vendors")
	vendors.GET("", s.ListVendors)
	vendors.POST("", write, s.CreateVendor)
	vendors.DELETE("/:id", write, s.DeleteVendor)

	reports := api.Group("/reports")
	reports.GET("/summary", s.ReportSummary)
	reports.GET("/dashboard", s.ReportDashboard)
}

// registerPublicRoutes exposes the unauthenticated payment page surface.
func (s *Server) registerPublicRoutes() {
	public := s.engine.Group("/api/public", PublicRateLimit(s.publicLimiter))

	public.GET("/branding", s.GetPublicBranding)
	public.GET("/invoices/:id", s.GetPublicInvoice)
	public.POST("/invoices/:id/pay", s.PayPublicInvoice)
}

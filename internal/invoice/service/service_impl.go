package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/kyberbiz/kyberbiz/internal/billing"
	"github.com/kyberbiz/kyberbiz/internal/config"
	"github.com/kyberbiz/kyberbiz/internal/document"
	"github.com/kyberbiz/kyberbiz/internal/document/pdf"
	invoicedomain "github.com/kyberbiz/kyberbiz/internal/invoice/domain"
	"github.com/kyberbiz/kyberbiz/internal/mailer"
	settingsdomain "github.com/kyberbiz/kyberbiz/internal/settings/domain"
	"github.com/kyberbiz/kyberbiz/pkg/telemetry"
)

type ServiceParam struct {
	fx.In

	Repository invoicedomain.Repository
	Settings   settingsdomain.Service
	Writer     *pdf.Writer
	Dispatcher *mailer.Dispatcher
	Metrics    *telemetry.Metrics `optional:"true"`
	Config     config.Config
	Profile    *config.DocumentProfileHolder
	Node       *snowflake.Node
	Logger     *zap.Logger
}

type service struct {
	repo       invoicedomain.Repository
	settings   settingsdomain.Service
	writer     *pdf.Writer
	dispatcher *mailer.Dispatcher
	metrics    *telemetry.Metrics
	cfg        config.Config
	profile    *config.DocumentProfileHolder
	node       *snowflake.Node
	log        *zap.Logger
}

func NewService(p ServiceParam) invoicedomain.Service {
	return &service{
		repo:       p.Repository,
		settings:   p.Settings,
		writer:     p.Writer,
		dispatcher: p.Dispatcher,
		metrics:    p.Metrics,
		cfg:        p.Config,
		profile:    p.Profile,
		node:       p.Node,
		log:        p.Logger.Named("invoice.service"),
	}
}

func (s *service) Create(ctx context.Context, input invoicedomain.Input) (*invoicedomain.Invoice, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	totals := billing.Compute(input.Items)
	invoice := &invoicedomain.Invoice{
		ID:            s.node.Generate(),
		Number:        billing.NewNumber(billing.InvoicePrefix, now),
		ClientName:    input.ClientName,
		ClientEmail:   input.ClientEmail,
		ClientAddress: input.ClientAddress,
		Items:         datatypes.NewJSONSlice(input.Items),
		Subtotal:      totals.Subtotal,
		Tax:           totals.Tax,
		Total:         totals.Total,
		Status:        invoicedomain.StatusDraft,
		DueDate:       input.DueDate,
		Notes:         input.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.repo.Create(ctx, invoice); err != nil {
		return nil, err
	}
	s.log.Info("invoice created",
		zap.String("invoice_id", invoice.ID.String()),
		zap.String("number", invoice.Number),
		zap.Float64("total", invoice.Total),
	)
	return invoice, nil
}

func (s *service) List(ctx context.Context) ([]invoicedomain.Invoice, error) {
	return s.repo.List(ctx)
}

func (s *service) Get(ctx context.Context, id snowflake.ID) (*invoicedomain.Invoice, error) {
	invoice, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, invoicedomain.ErrNotFound
	}
	return invoice, nil
}

func (s *service) Update(ctx context.Context, id snowflake.ID, input invoicedomain.Input) (*invoicedomain.Invoice, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	invoice, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	totals := billing.Compute(input.Items)
	invoice.ClientName = input.ClientName
	invoice.ClientEmail = input.ClientEmail
	invoice.ClientAddress = input.ClientAddress
	invoice.Items = datatypes.NewJSONSlice(input.Items)
	invoice.Subtotal = totals.Subtotal
	invoice.Tax = totals.Tax
	invoice.Total = totals.Total
	invoice.DueDate = input.DueDate
	invoice.Notes = input.Notes
	invoice.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, invoice); err != nil {
		return nil, err
	}
	return invoice, nil
}

func (s *service) Delete(ctx context.Context, id snowflake.ID) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *service) RenderPDF(ctx context.Context, id snowflake.ID, theme string) (*document.File, error) {
	invoice, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.render(ctx, invoice, theme)
}

func (s *service) Send(ctx context.Context, id snowflake.ID, theme string) (*invoicedomain.SendResult, error) {
	invoice, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice.ClientEmail == "" {
		return nil, invoicedomain.ErrNoRecipient
	}

	// Resolve the transport before doing any work so a missing SMTP
	// configuration fails without a network call.
	server, err := s.settings.ResolveSMTP(ctx)
	if err != nil {
		return nil, err
	}

	invoice.PaymentLink = s.paymentLink(invoice.ID)

	file, err := s.render(ctx, invoice, theme)
	if err != nil {
		return nil, err
	}
	branding, err := s.settings.Branding(ctx)
	if err != nil {
		return nil, err
	}

	receipt, err := s.dispatcher.Send(ctx, server, "invoice", invoiceEmail(invoice, branding, file.Bytes))
	if err != nil {
		return nil, err
	}

	// Only a successful dispatch moves a draft forward.
	if invoice.Status == invoicedomain.StatusDraft {
		invoice.Status = invoicedomain.StatusSent
	}
	invoice.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, invoice); err != nil {
		return nil, err
	}

	s.log.Info("invoice sent",
		zap.String("invoice_id", invoice.ID.String()),
		zap.String("message_id", receipt.MessageID),
	)
	return &invoicedomain.SendResult{Invoice: invoice, MessageID: receipt.MessageID}, nil
}

func (s *service) MarkPaid(ctx context.Context, id snowflake.ID, paymentID string) (*invoicedomain.Invoice, error) {
	invoice, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice.Status == invoicedomain.StatusPaid {
		return nil, invoicedomain.ErrAlreadyPaid
	}

	now := time.Now().UTC()
	invoice.Status = invoicedomain.StatusPaid
	invoice.PaymentID = paymentID
	invoice.PaidAt = &now
	invoice.UpdatedAt = now
	if err := s.repo.Update(ctx, invoice); err != nil {
		return nil, err
	}

	s.log.Info("invoice paid",
		zap.String("invoice_id", invoice.ID.String()),
		zap.String("payment_id", paymentID),
	)
	return invoice, nil
}

func (s *service) GetPublic(ctx context.Context, id snowflake.ID) (*invoicedomain.PublicInvoice, error) {
	invoice, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	branding, err := s.settings.PublicBranding(ctx)
	if err != nil {
		return nil, err
	}

	public := &invoicedomain.PublicInvoice{
		Invoice:      invoice,
		CompanyName:  branding.CompanyName,
		LogoURL:      branding.LogoURL,
		PrimaryColor: branding.PrimaryColor,
	}

	clientID, err := s.settings.ResolvePayPalClientID(ctx)
	switch {
	case err == nil:
		public.PayPalClientID = clientID
	case errors.Is(err, settingsdomain.ErrNotConfigured):
		// Payment page still works without PayPal.
	default:
		return nil, err
	}
	return public, nil
}

func (s *service) render(ctx context.Context, invoice *invoicedomain.Invoice, theme string) (*document.File, error) {
	if theme == "" {
		theme = s.profile.Get().DefaultTheme
	}
	branding, err := s.settings.Branding(ctx)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	doc, err := document.Render(document.Record{
		Kind:          document.KindInvoice,
		Number:        invoice.Number,
		ClientName:    invoice.ClientName,
		ClientEmail:   invoice.ClientEmail,
		ClientAddress: invoice.ClientAddress,
		CreatedAt:     invoice.CreatedAt.UTC().Format(time.RFC3339),
		DueDate:       isoOrEmpty(invoice.DueDate),
		Status:        string(invoice.Status),
		Items:         invoice.Items,
		Totals: billing.Totals{
			Subtotal: invoice.Subtotal,
			Tax:      invoice.Tax,
			Total:    invoice.Total,
		},
		Notes:       invoice.Notes,
		PaymentLink: invoice.PaymentLink,
	}, document.Branding{
		CompanyName:  branding.CompanyName,
		PrimaryColor: branding.PrimaryColor,
		LogoURL:      branding.LogoURL,
	}, theme)
	if err != nil {
		return nil, err
	}

	data, err := s.writer.Write(doc)
	if err != nil {
		return nil, err
	}
	s.metrics.ObserveDocumentRendered("invoice", doc.Style.Theme.ID, time.Since(start))

	return &document.File{Name: invoice.Number + ".pdf", Bytes: data}, nil
}

func (s *service) paymentLink(id snowflake.ID) string {
	return strings.TrimSuffix(s.cfg.FrontendBaseURL, "/") + "/pay/" + id.String()
}

package service

import (
	"context"
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
	quotedomain "github.com/kyberbiz/kyberbiz/internal/quote/domain"
	settingsdomain "github.com/kyberbiz/kyberbiz/internal/settings/domain"
	"github.com/kyberbiz/kyberbiz/pkg/telemetry"
)

type ServiceParam struct {
	fx.In

	Repository quotedomain.Repository
	Invoices   invoicedomain.Repository
	Settings   settingsdomain.Service
	Writer     *pdf.Writer
	Dispatcher *mailer.Dispatcher
	Metrics    *telemetry.Metrics `optional:"true"`
	Profile    *config.DocumentProfileHolder
	Node       *snowflake.Node
	Logger     *zap.Logger
}

type service struct {
	repo       quotedomain.Repository
	invoices   invoicedomain.Repository
	settings   settingsdomain.Service
	writer     *pdf.Writer
	dispatcher *mailer.Dispatcher
	metrics    *telemetry.Metrics
	profile    *config.DocumentProfileHolder
	node       *snowflake.Node
	log        *zap.Logger
}

func NewService(p ServiceParam) quotedomain.Service {
	return &service{
		repo:       p.Repository,
		invoices:   p.Invoices,
		settings:   p.Settings,
		writer:     p.Writer,
		dispatcher: p.Dispatcher,
		metrics:    p.Metrics,
		profile:    p.Profile,
		node:       p.Node,
		log:        p.Logger.Named("quote.service"),
	}
}

func (s *service) Create(ctx context.Context, input quotedomain.Input) (*quotedomain.Quote, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	totals := billing.Compute(input.Items)
	quote := &quotedomain.Quote{
		ID:            s.node.Generate(),
		Number:        billing.NewNumber(billing.QuotePrefix, now),
		ClientName:    input.ClientName,
		ClientEmail:   input.ClientEmail,
		ClientAddress: input.ClientAddress,
		Items:         datatypes.NewJSONSlice(input.Items),
		Subtotal:      totals.Subtotal,
		Tax:           totals.Tax,
		Total:         totals.Total,
		Status:        quotedomain.StatusDraft,
		ValidUntil:    input.ValidUntil,
		Notes:         input.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.repo.Create(ctx, quote); err != nil {
		return nil, err
	}
	s.log.Info("quote created",
		zap.String("quote_id", quote.ID.String()),
		zap.String("number", quote.Number),
		zap.Float64("total", quote.Total),
	)
	return quote, nil
}

func (s *service) List(ctx context.Context) ([]quotedomain.Quote, error) {
	return s.repo.List(ctx)
}

func (s *service) Get(ctx context.Context, id snowflake.ID) (*quotedomain.Quote, error) {
	quote, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if quote == nil {
		return nil, quotedomain.ErrNotFound
	}
	return quote, nil
}

func (s *service) Update(ctx context.Context, id snowflake.ID, input quotedomain.Input) (*quotedomain.Quote, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	quote, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	totals := billing.Compute(input.Items)
	quote.ClientName = input.ClientName
	quote.ClientEmail = input.ClientEmail
	quote.ClientAddress = input.ClientAddress
	quote.Items = datatypes.NewJSONSlice(input.Items)
	quote.Subtotal = totals.Subtotal
	quote.Tax = totals.Tax
	quote.Total = totals.Total
	quote.ValidUntil = input.ValidUntil
	quote.Notes = input.Notes
	quote.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, quote); err != nil {
		return nil, err
	}
	return quote, nil
}

func (s *service) Delete(ctx context.Context, id snowflake.ID) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// ConvertToInvoice copies client fields, items, totals and notes onto a new
// draft invoice with a fresh number. The quote moves to converted and stays
// there; converting again fails.
func (s *service) ConvertToInvoice(ctx context.Context, id snowflake.ID) (*invoicedomain.Invoice, error) {
	quote, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if quote.Status == quotedomain.StatusConverted {
		return nil, quotedomain.ErrAlreadyConverted
	}

	now := time.Now().UTC()
	invoice := &invoicedomain.Invoice{
		ID:            s.node.Generate(),
		Number:        billing.NewNumber(billing.InvoicePrefix, now),
		ClientName:    quote.ClientName,
		ClientEmail:   quote.ClientEmail,
		ClientAddress: quote.ClientAddress,
		Items:         quote.Items,
		Subtotal:      quote.Subtotal,
		Tax:           quote.Tax,
		Total:         quote.Total,
		Status:        invoicedomain.StatusDraft,
		Notes:         quote.Notes,
		QuoteID:       &quote.ID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.invoices.Create(ctx, invoice); err != nil {
		return nil, err
	}

	quote.Status = quotedomain.StatusConverted
	quote.InvoiceID = &invoice.ID
	quote.UpdatedAt = now
	if err := s.repo.Update(ctx, quote); err != nil {
		return nil, err
	}

	s.log.Info("quote converted",
		zap.String("quote_id", quote.ID.String()),
		zap.String("invoice_id", invoice.ID.String()),
	)
	return invoice, nil
}

func (s *service) RenderPDF(ctx context.Context, id snowflake.ID, theme string) (*document.File, error) {
	quote, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.render(ctx, quote, theme)
}

func (s *service) Send(ctx context.Context, id snowflake.ID, theme string) (*quotedomain.SendResult, error) {
	quote, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if quote.ClientEmail == "" {
		return nil, quotedomain.ErrNoRecipient
	}

	// A missing SMTP configuration fails before any rendering work.
	server, err := s.settings.ResolveSMTP(ctx)
	if err != nil {
		return nil, err
	}

	file, err := s.render(ctx, quote, theme)
	if err != nil {
		return nil, err
	}
	branding, err := s.settings.Branding(ctx)
	if err != nil {
		return nil, err
	}

	receipt, err := s.dispatcher.Send(ctx, server, "quote", quoteEmail(quote, branding, file.Bytes))
	if err != nil {
		return nil, err
	}

	if quote.Status == quotedomain.StatusDraft {
		quote.Status = quotedomain.StatusSent
	}
	quote.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, quote); err != nil {
		return nil, err
	}

	s.log.Info("quote sent",
		zap.String("quote_id", quote.ID.String()),
		zap.String("message_id", receipt.MessageID),
	)
	return &quotedomain.SendResult{Quote: quote, MessageID: receipt.MessageID}, nil
}

func (s *service) render(ctx context.Context, quote *quotedomain.Quote, theme string) (*document.File, error) {
	if theme == "" {
		theme = s.profile.Get().DefaultTheme
	}
	branding, err := s.settings.Branding(ctx)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	doc, err := document.Render(document.Record{
		Kind:          document.KindQuote,
		Number:        quote.Number,
		ClientName:    quote.ClientName,
		ClientEmail:   quote.ClientEmail,
		ClientAddress: quote.ClientAddress,
		CreatedAt:     quote.CreatedAt.UTC().Format(time.RFC3339),
		ValidUntil:    isoOrEmpty(quote.ValidUntil),
		Items:         quote.Items,
		Totals: billing.Totals{
			Subtotal: quote.Subtotal,
			Tax:      quote.Tax,
			Total:    quote.Total,
		},
		Notes: quote.Notes,
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
	s.metrics.ObserveDocumentRendered("quote", doc.Style.Theme.ID, time.Since(start))

	return &document.File{Name: quote.Number + ".pdf", Bytes: data}, nil
}

func isoOrEmpty(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

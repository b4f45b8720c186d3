package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"

	"github.com/kyberbiz/kyberbiz/internal/document"
)

// SendResult reports a dispatched invoice email.
type SendResult struct {
	Invoice   *Invoice `json:"invoice"`
	MessageID string   `json:"message_id"`
}

type Service interface {
	Create(ctx context.Context, input Input) (*Invoice, error)
	List(ctx context.Context) ([]Invoice, error)
	Get(ctx context.Context, id snowflake.ID) (*Invoice, error)
	Update(ctx context.Context, id snowflake.ID, input Input) (*Invoice, error)
	Delete(ctx context.Context, id snowflake.ID) error

	RenderPDF(ctx context.Context, id snowflake.ID, theme string) (*document.File, error)

	// Send stores a payment link on the invoice, emails the PDF to the
	// client and flips draft to sent.
	Send(ctx context.Context, id snowflake.ID, theme string) (*SendResult, error)

	// MarkPaid records an external payment and sets status paid. Reachable
	// without authentication from the public payment page.
	MarkPaid(ctx context.Context, id snowflake.ID, paymentID string) (*Invoice, error)

	// GetPublic returns the payment-page view for an invoice, including the
	// decrypted PayPal client id when the integration is configured.
	GetPublic(ctx context.Context, id snowflake.ID) (*PublicInvoice, error)
}

package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"

	"github.com/kyberbiz/kyberbiz/internal/document"
	invoicedomain "github.com/kyberbiz/kyberbiz/internal/invoice/domain"
)

// SendResult reports a dispatched quote email.
type SendResult struct {
	Quote     *Quote `json:"quote"`
	MessageID string `json:"message_id"`
}

type Service interface {
	Create(ctx context.Context, input Input) (*Quote, error)
	List(ctx context.Context) ([]Quote, error)
	Get(ctx context.Context, id snowflake.ID) (*Quote, error)
	Update(ctx context.Context, id snowflake.ID, input Input) (*Quote, error)
	Delete(ctx context.Context, id snowflake.ID) error

	// ConvertToInvoice copies the quote into a new draft invoice and marks
	// the quote converted. One-way; converting twice fails.
	ConvertToInvoice(ctx context.Context, id snowflake.ID) (*invoicedomain.Invoice, error)

	RenderPDF(ctx context.Context, id snowflake.ID, theme string) (*document.File, error)

	// Send emails the quote PDF to the client and flips draft to sent.
	Send(ctx context.Context, id snowflake.ID, theme string) (*SendResult, error)
}

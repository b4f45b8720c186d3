package mailer

import (
	"context"
	"errors"
	"fmt"
	"net/smtp"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kyberbiz/kyberbiz/pkg/telemetry"
)

// ErrDeliveryFailed wraps transport errors so callers can distinguish an
// unreachable or rejecting SMTP server from local failures.
var ErrDeliveryFailed = errors.New("delivery_failed")

// Server is a resolved SMTP endpoint with plaintext credentials. Callers
// decrypt stored credentials just before dispatch and never persist this.
type Server struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string
	FromName  string
}

// Addr returns the host:port dial address.
func (s Server) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// From returns the display form of the sender address.
func (s Server) From() string {
	if s.FromName == "" {
		return s.FromEmail
	}
	return fmt.Sprintf("%s <%s>", s.FromName, s.FromEmail)
}

// Receipt describes a successfully handed-off message.
type Receipt struct {
	MessageID string
	SentAt    time.Time
}

// Transport delivers an encoded message to an SMTP server.
type Transport interface {
	Deliver(ctx context.Context, server Server, to []string, raw []byte) error
}

// SMTPTransport delivers through net/smtp with PLAIN auth.
type SMTPTransport struct{}

func NewSMTPTransport() *SMTPTransport {
	return &SMTPTransport{}
}

func (t *SMTPTransport) Deliver(_ context.Context, server Server, to []string, raw []byte) error {
	auth := smtp.PlainAuth("", server.Username, server.Password, server.Host)
	return smtp.SendMail(server.Addr(), auth, server.FromEmail, to, raw)
}

// Dispatcher encodes and sends email. It is stateless and makes exactly one
// delivery attempt per call; retry policy belongs to the caller.
type Dispatcher struct {
	transport Transport
	metrics   *telemetry.Metrics
	log       *zap.Logger
}

func NewDispatcher(transport Transport, metrics *telemetry.Metrics, log *zap.Logger) *Dispatcher {
	return &Dispatcher{
		transport: transport,
		metrics:   metrics,
		log:       log.Named("mailer.dispatcher"),
	}
}

// Send encodes msg and hands it to the transport. kind labels the message
// for metrics ("quote", "invoice").
func (d *Dispatcher) Send(ctx context.Context, server Server, kind string, msg Message) (Receipt, error) {
	now := time.Now().UTC()
	messageID := fmt.Sprintf("%s@%s", uuid.NewString(), server.Host)

	raw, err := encode(server.From(), messageID, now, msg)
	if err != nil {
		return Receipt{}, fmt.Errorf("encode message: %w", err)
	}

	err = d.transport.Deliver(ctx, server, msg.To, raw)
	d.metrics.ObserveEmailDispatched(kind, err)
	if err != nil {
		d.log.Warn("email delivery failed",
			zap.String("kind", kind),
			zap.String("smtp_host", server.Host),
			zap.Error(err),
		)
		return Receipt{}, fmt.Errorf("%w via %s: %w", ErrDeliveryFailed, server.Addr(), err)
	}

	d.log.Info("email dispatched",
		zap.String("kind", kind),
		zap.String("message_id", messageID),
		zap.Int("recipients", len(msg.To)),
		zap.Int("attachments", len(msg.Attachments)),
	)
	return Receipt{MessageID: messageID, SentAt: now}, nil
}

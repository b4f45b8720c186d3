package mailer

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"io"
	"mime"
	"mime/multipart"
	"net/mail"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/kyberbiz/kyberbiz/pkg/telemetry"
)

type fakeTransport struct {
	deliveries int
	server     Server
	to         []string
	raw        []byte
	err        error
}

func (f *fakeTransport) Deliver(_ context.Context, server Server, to []string, raw []byte) error {
	f.deliveries++
	f.server = server
	f.to = to
	f.raw = raw
	return f.err
}

func testServer() Server {
	return Server{
		Host:      "smtp.test",
		Port:      587,
		Username:  "mailer",
		Password:  "secret",
		FromEmail: "billing@orbit.test",
		FromName:  "Orbit Labs",
	}
}

func newTestDispatcher(t *testing.T, transport Transport) *Dispatcher {
	t.Helper()
	metrics := telemetry.NewMetricsFor(prometheus.NewRegistry())
	return NewDispatcher(transport, metrics, zaptest.NewLogger(t))
}

func TestDispatcherSend(t *testing.T) {
	transport := &fakeTransport{}
	d := newTestDispatcher(t, transport)

	receipt, err := d.Send(context.Background(), testServer(), "invoice", Message{
		To:       []string{"client@acme.test"},
		Subject:  "Invoice INV-001",
		HTMLBody: "<p>Total: $110.00</p>",
		Attachments: []Attachment{{
			Filename:    "invoice-INV-001.pdf",
			ContentType: "application/pdf",
			Data:        []byte("%PDF-1.4 fake"),
		}},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, transport.deliveries)
	assert.NotEmpty(t, receipt.MessageID)
	assert.Contains(t, receipt.MessageID, "@smtp.test")
	assert.False(t, receipt.SentAt.IsZero())

	parsed, err := mail.ReadMessage(bytes.NewReader(transport.raw))
	require.NoError(t, err)
	assert.Equal(t, "Orbit Labs <billing@orbit.test>", parsed.Header.Get("From"))
	assert.Equal(t, "client@acme.test", parsed.Header.Get("To"))
	assert.Equal(t, "<"+receipt.MessageID+">", parsed.Header.Get("Message-ID"))

	mediaType, params, err := mime.ParseMediaType(parsed.Header.Get("Content-Type"))
	require.NoError(t, err)
	require.Equal(t, "multipart/mixed", mediaType)

	reader := multipart.NewReader(parsed.Body, params["boundary"])

	html, err := reader.NextPart()
	require.NoError(t, err)
	assert.Contains(t, html.Header.Get("Content-Type"), "text/html")
	body, err := io.ReadAll(html)
	require.NoError(t, err)
	assert.Equal(t, "<p>Total: $110.00</p>", string(body))

	attachment, err := reader.NextPart()
	require.NoError(t, err)
	assert.Contains(t, attachment.Header.Get("Content-Type"), "application/pdf")
	assert.Contains(t, attachment.Header.Get("Content-Disposition"), "invoice-INV-001.pdf")
	encoded, err := io.ReadAll(attachment)
	require.NoError(t, err)
	decoded, err := base64.StdEncoding.DecodeString(strings.ReplaceAll(string(encoded), "\r\n", ""))
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4 fake", string(decoded))

	_, err = reader.NextPart()
	assert.ErrorIs(t, err, io.EOF)
}

func TestDispatcherSendFailure(t *testing.T) {
	transport := &fakeTransport{err: errors.New("connection refused")}
	d := newTestDispatcher(t, transport)

	_, err := d.Send(context.Background(), testServer(), "quote", Message{
		To:       []string{"client@acme.test"},
		Subject:  "Quote",
		HTMLBody: "<p>hi</p>",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "smtp.test:587")
	assert.Equal(t, 1, transport.deliveries, "exactly one attempt per call")
}

func TestServerFrom(t *testing.T) {
	assert.Equal(t, "Orbit Labs <billing@orbit.test>", testServer().From())
	assert.Equal(t, "billing@orbit.test", Server{FromEmail: "billing@orbit.test"}.From())
}

package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/kyberbiz/kyberbiz/internal/config"
	emailtemplatedomain "github.com/kyberbiz/kyberbiz/internal/emailtemplate/domain"
	expensedomain "github.com/kyberbiz/kyberbiz/internal/expense/domain"
	invoicedomain "github.com/kyberbiz/kyberbiz/internal/invoice/domain"
	quotedomain "github.com/kyberbiz/kyberbiz/internal/quote/domain"
	reportdomain "github.com/kyberbiz/kyberbiz/internal/report/domain"
	settingsdomain "github.com/kyberbiz/kyberbiz/internal/settings/domain"
)

type fakeQuoteService struct {
	quotedomain.Service

	createCalls int
	getErr      error
	convertErr  error
}

func (f *fakeQuoteService) Create(ctx context.Context, input quotedomain.Input) (*quotedomain.Quote, error) {
	f.createCalls++
	if err := input.Validate(); err != nil {
		return nil, err
	}
	return &quotedomain.Quote{
		ID:         snowflake.ID(100),
		Number:     "QT-20260101-DEADBEEF",
		ClientName: input.ClientName,
		Status:     quotedomain.StatusDraft,
	}, nil
}

func (f *fakeQuoteService) Get(ctx context.Context, id snowflake.ID) (*quotedomain.Quote, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return &quotedomain.Quote{ID: id, Status: quotedomain.StatusDraft}, nil
}

func (f *fakeQuoteService) ConvertToInvoice(ctx context.Context, id snowflake.ID) (*invoicedomain.Invoice, error) {
	if f.convertErr != nil {
		return nil, f.convertErr
	}
	return &invoicedomain.Invoice{ID: snowflake.ID(200), Status: invoicedomain.StatusDraft}, nil
}

type fakeInvoiceService struct {
	invoicedomain.Service

	sendErr error
}

func (f *fakeInvoiceService) GetPublic(ctx context.Context, id snowflake.ID) (*invoicedomain.PublicInvoice, error) {
	return &invoicedomain.PublicInvoice{
		Invoice:     &invoicedomain.Invoice{ID: id, Status: invoicedomain.StatusSent},
		CompanyName: "KyberBusiness",
	}, nil
}

func (f *fakeInvoiceService) Send(ctx context.Context, id snowflake.ID, theme string) (*invoicedomain.SendResult, error) {
	if f.sendErr != nil {
		return nil, f.sendErr
	}
	return &invoicedomain.SendResult{MessageID: "mid"}, nil
}

type fakeEmailTemplateService struct{ emailtemplatedomain.Service }
type fakeSettingsService struct{ settingsdomain.Service }
type fakeExpenseService struct{ expensedomain.Service }
type fakeReportService struct{ reportdomain.Service }

type harness struct {
	engine   *gin.Engine
	quotes   *fakeQuoteService
	invoices *fakeInvoiceService
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	gin.SetMode(gin.TestMode)

	engine := NewEngine(EngineParams{Logger: zaptest.NewLogger(t)})
	quotes := &fakeQuoteService{}
	invoices := &fakeInvoiceService{}

	NewServer(ServerParams{
		Gin:              engine,
		Cfg:              config.Config{Environment: "test"},
		QuoteSvc:         quotes,
		InvoiceSvc:       invoices,
		EmailTemplateSvc: &fakeEmailTemplateService{},
		SettingsSvc:      &fakeSettingsService{},
		ExpenseSvc:       &fakeExpenseService{},
		ReportSvc:        &fakeReportService{},
	})

	return &harness{engine: engine, quotes: quotes, invoices: invoices}
}

func (h *harness) do(method, path, role string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if role != "" {
		req.Header.Set(HeaderActorID, "42")
		req.Header.Set(HeaderActorRole, role)
	}
	rec := httptest.NewRecorder()
	h.engine.ServeHTTP(rec, req)
	return rec
}

func errorType(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Error.Type
}

func TestActorRequired(t *testing.T) {
	h := newHarness(t)

	rec := h.do(http.MethodGet, "/api/quotes/100", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "unauthorized", errorType(t, rec))
}

func TestViewerCannotWrite(t *testing.T) {
	h := newHarness(t)

	rec := h.do(http.MethodPost, "/api/quotes", RoleViewer, quotedomain.Input{ClientName: "Acme"})
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Zero(t, h.quotes.createCalls)

	rec = h.do(http.MethodGet, "/api/quotes/100", RoleViewer, nil)
	assert.Equal(t, http.StatusOK, rec.Code, "reads stay open to viewers")
}

func TestAccountantCreatesQuote(t *testing.T) {
	h := newHarness(t)

	rec := h.do(http.MethodPost, "/api/quotes", RoleAccountant, quotedomain.Input{ClientName: "Acme"})
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, 1, h.quotes.createCalls)
}

func TestValidationMapsToBadRequest(t *testing.T) {
	h := newHarness(t)

	rec := h.do(http.MethodPost, "/api/quotes", RoleAdmin, quotedomain.Input{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "validation_error", errorType(t, rec))
}

func TestNotFoundMapping(t *testing.T) {
	h := newHarness(t)
	h.quotes.getErr = quotedomain.ErrNotFound

	rec := h.do(http.MethodGet, "/api/quotes/100", RoleViewer, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not_found", errorType(t, rec))
}

func TestConflictMapping(t *testing.T) {
	h := newHarness(t)
	h.quotes.convertErr = quotedomain.ErrAlreadyConverted

	rec := h.do(http.MethodPost, "/api/quotes/100/convert", RoleAdmin, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "conflict", errorType(t, rec))
}

func TestNotConfiguredMapping(t *testing.T) {
	h := newHarness(t)
	h.invoices.sendErr = settingsdomain.ErrNotConfigured

	rec := h.do(http.MethodPost, "/api/invoices/100/send", RoleAccountant, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "not_configured", errorType(t, rec))
}

func TestPublicInvoiceNeedsNoActor(t *testing.T) {
	h := newHarness(t)

	rec := h.do(http.MethodGet, "/api/public/invoices/100", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestListPDFTemplates(t *testing.T) {
	h := newHarness(t)

	rec := h.do(http.MethodGet, "/api/pdf-templates", RoleViewer, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data []struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 4)

	names := make(map[string]string, len(resp.Data))
	for _, theme := range resp.Data {
		names[theme.ID] = theme.Name
	}
	assert.Equal(t, "Professional", names["professional"])
	assert.Equal(t, "Classic", names["classic"])
}

func TestInvalidIDParam(t *testing.T) {
	h := newHarness(t)

	rec := h.do(http.MethodGet, "/api/quotes/not-a-number", RoleViewer, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "validation_error", errorType(t, rec))
}

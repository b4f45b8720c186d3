package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	emailtemplatedomain "github.com/kyberbiz/kyberbiz/internal/emailtemplate/domain"
	expensedomain "github.com/kyberbiz/kyberbiz/internal/expense/domain"
	invoicedomain "github.com/kyberbiz/kyberbiz/internal/invoice/domain"
	"github.com/kyberbiz/kyberbiz/internal/mailer"
	quotedomain "github.com/kyberbiz/kyberbiz/internal/quote/domain"
	reportdomain "github.com/kyberbiz/kyberbiz/internal/report/domain"
	settingsdomain "github.com/kyberbiz/kyberbiz/internal/settings/domain"
)

type ValidationError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

func (v ValidationErrors) Error() string {
	return "validation error"
}

type errorPayload struct {
	Type    string            `json:"type"`
	Message string            `json:"message"`
	Errors  []ValidationError `json:"errors,omitempty"`
}

type errorResponse struct {
	Error errorPayload `json:"error"`
}

var (
	ErrUnauthorized   = errors.New("unauthorized")
	ErrForbidden      = errors.New("forbidden")
	ErrNotFound       = errors.New("not_found")
	ErrInvalidRequest = errors.New("invalid_request")
	ErrRateLimited    = errors.New("rate_limited")
)

func ErrorHandlingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		lastErr := c.Errors.Last()
		if lastErr == nil {
			return
		}

		status, payload := mapError(lastErr.Err)
		c.AbortWithStatusJSON(status, errorResponse{Error: payload})
	}
}

func AbortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

func invalidRequestError() error {
	return newValidationError("request", "invalid_request", "invalid request")
}

func newValidationError(field, code, message string) error {
	return &ValidationErrors{
		Errors: []ValidationError{
			{
				Field:   field,
				Code:    code,
				Message: message,
			},
		},
	}
}

func mapError(err error) (int, errorPayload) {
	if vErr := asValidationErrors(err); vErr != nil {
		return http.StatusBadRequest, errorPayload{
			Type:    "validation_error",
			Message: "validation error",
			Errors:  vErr.Errors,
		}
	}

	if isValidationError(err) {
		code := validationErrorCode(err)
		return http.StatusBadRequest, errorPayload{
			Type:    "validation_error",
			Message: "validation error",
			Errors: []ValidationError{
				{
					Field:   validationErrorField(code),
					Code:    code,
					Message: "invalid value",
				},
			},
		}
	}

	switch {
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized, errorPayload{
			Type:    "unauthorized",
			Message: "unauthorized",
		}
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden, errorPayload{
			Type:    "forbidden",
			Message: "forbidden",
		}
	case errors.Is(err, ErrRateLimited):
		return http.StatusTooManyRequests, errorPayload{
			Type:    "rate_limited",
			Message: "too many requests",
		}
	case errors.Is(err, settingsdomain.ErrNotConfigured):
		return http.StatusBadRequest, errorPayload{
			Type:    "not_configured",
			Message: "required settings are missing",
		}
	case isConflictError(err):
		return http.StatusConflict, errorPayload{
			Type:    "conflict",
			Message: err.Error(),
		}
	case isNotFoundError(err):
		return http.StatusNotFound, errorPayload{
			Type:    "not_found",
			Message: "not found",
		}
	case errors.Is(err, mailer.ErrDeliveryFailed):
		return http.StatusBadGateway, errorPayload{
			Type:    "delivery_failed",
			Message: "email delivery failed",
		}
	default:
		return http.StatusInternalServerError, errorPayload{
			Type:    "internal_error",
			Message: "internal server error",
		}
	}
}

func asValidationErrors(err error) *ValidationErrors {
	var vErr *ValidationErrors
	if errors.As(err, &vErr) && vErr != nil {
		return vErr
	}
	return nil
}

func isValidationError(err error) bool {
	switch {
	case errors.Is(err, ErrInvalidRequest),
		errors.Is(err, quotedomain.ErrInvalidClientName),
		errors.Is(err, quotedomain.ErrInvalidItem),
		errors.Is(err, quotedomain.ErrNoRecipient),
		errors.Is(err, invoicedomain.ErrInvalidClientName),
		errors.Is(err, invoicedomain.ErrInvalidItem),
		errors.Is(err, invoicedomain.ErrNoRecipient),
		errors.Is(err, emailtemplatedomain.ErrInvalidName),
		errors.Is(err, emailtemplatedomain.ErrInvalidSubject),
		errors.Is(err, emailtemplatedomain.ErrInvalidBody),
		errors.Is(err, emailtemplatedomain.ErrInvalidTheme),
		errors.Is(err, expensedomain.ErrInvalidDescription),
		errors.Is(err, expensedomain.ErrInvalidAmount),
		errors.Is(err, expensedomain.ErrInvalidName),
		errors.Is(err, expensedomain.ErrUnknownCategory),
		errors.Is(err, expensedomain.ErrUnknownVendor),
		errors.Is(err, settingsdomain.ErrInvalidColor),
		errors.Is(err, settingsdomain.ErrInvalidHost),
		errors.Is(err, settingsdomain.ErrInvalidPort),
		errors.Is(err, settingsdomain.ErrInvalidFromEmail),
		errors.Is(err, settingsdomain.ErrInvalidEnvironment),
		errors.Is(err, settingsdomain.ErrInvalidClientID),
		errors.Is(err, reportdomain.ErrInvalidRange):
		return true
	default:
		return false
	}
}

func isConflictError(err error) bool {
	switch {
	case errors.Is(err, quotedomain.ErrAlreadyConverted),
		errors.Is(err, invoicedomain.ErrAlreadyPaid),
		errors.Is(err, emailtemplatedomain.ErrBuiltin),
		errors.Is(err, expensedomain.ErrInUse),
		errors.Is(err, expensedomain.ErrDuplicateName):
		return true
	default:
		return false
	}
}

func isNotFoundError(err error) bool {
	switch {
	case errors.Is(err, ErrNotFound),
		errors.Is(err, quotedomain.ErrNotFound),
		errors.Is(err, invoicedomain.ErrNotFound),
		errors.Is(err, emailtemplatedomain.ErrNotFound),
		errors.Is(err, expensedomain.ErrNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		return true
	default:
		return false
	}
}

func validationErrorCode(err error) string {
	if errors.Is(err, ErrInvalidRequest) {
		return "invalid_request"
	}
	return err.Error()
}

func validationErrorField(code string) string {
	if code == "invalid_request" {
		return "request"
	}
	if strings.HasPrefix(code, "invalid_") {
		return strings.TrimPrefix(code, "invalid_")
	}
	return ""
}

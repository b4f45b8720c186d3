package mailer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubstitute(t *testing.T) {
	t.Run("ReplacesKnownTokens", func(t *testing.T) {
		out := Substitute("Invoice #{invoice_number} total {total}", map[string]string{
			"invoice_number": "INV-001",
			"total":          "150.00",
		})
		assert.Equal(t, "Invoice #INV-001 total 150.00", out)
	})

	t.Run("UnknownTokensBecomeEmpty", func(t *testing.T) {
		out := Substitute("Hello {client_name}, see {payment_link}", map[string]string{
			"client_name": "Acme",
		})
		assert.Equal(t, "Hello Acme, see ", out)
	})

	t.Run("RepeatedTokens", func(t *testing.T) {
		out := Substitute("{company_name} - {company_name}", map[string]string{
			"company_name": "Orbit",
		})
		assert.Equal(t, "Orbit - Orbit", out)
	})

	t.Run("LeavesNonTokenBracesAlone", func(t *testing.T) {
		out := Substitute("css { color: red } and {UPPER}", nil)
		assert.Equal(t, "css { color: red } and {UPPER}", out)
	})

	t.Run("NoTokens", func(t *testing.T) {
		assert.Equal(t, "plain text", Substitute("plain text", nil))
	})
}

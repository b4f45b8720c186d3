package billing

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"
)

// Document number prefixes.
const (
	QuotePrefix   = "QT"
	InvoicePrefix = "INV"
)

// NewNumber builds a human-readable document number:
// {PREFIX}-{YYYYMMDD}-{8 uppercase hex chars}.
func NewNumber(prefix string, now time.Time) string {
	buf := make([]byte, 4)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand does not fail on supported platforms; fall back to
		// a time-derived suffix rather than panic inside a request.
		return fmt.Sprintf("%s-%s-%08X", prefix, now.UTC().Format("20060102"), now.UnixNano()&0xFFFFFFFF)
	}
	return fmt.Sprintf("%s-%s-%s", prefix, now.UTC().Format("20060102"), strings.ToUpper(hex.EncodeToString(buf)))
}

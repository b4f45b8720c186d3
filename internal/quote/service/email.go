package service

import (
	"fmt"

	"github.com/kyberbiz/kyberbiz/internal/billing"
	"github.com/kyberbiz/kyberbiz/internal/mailer"
	quotedomain "github.com/kyberbiz/kyberbiz/internal/quote/domain"
	settingsdomain "github.com/kyberbiz/kyberbiz/internal/settings/domain"
)

// quoteEmailBody is the ad-hoc message sent with a quote PDF, independent
// of the managed email-template collection.
const quoteEmailBody = `<div style="font-family:Arial,Helvetica,sans-serif;max-width:600px;margin:0 auto;">
  <div style="background:{primary_color};padding:24px;text-align:center;">
    {logo_html}
    <h1 style="color:#ffffff;margin:8px 0 0;">{company_name}</h1>
  </div>
  <div style="padding:24px;color:#1f2937;">
    <p>Hi {client_name},</p>
    <p>Please find attached quote <strong>#{quote_number}</strong> for <strong>${total}</strong>.</p>
    <p>This quote is valid until {valid_until}.</p>
    <p>We look forward to working with you!</p>
  </div>
</div>`

func quoteEmailVars(quote *quotedomain.Quote, branding *settingsdomain.BrandingProfile) map[string]string {
	vars := map[string]string{
		"quote_number":    quote.Number,
		"total":           billing.FormatAmount(quote.Total),
		"client_name":     quote.ClientName,
		"company_name":    branding.CompanyName,
		"primary_color":   branding.PrimaryColor,
		"secondary_color": branding.SecondaryColor,
		"accent_color":    branding.AccentColor,
	}
	if quote.ValidUntil != nil {
		vars["valid_until"] = quote.ValidUntil.Format("2006-01-02")
	}
	if branding.LogoURL != "" {
		vars["logo_html"] = fmt.Sprintf(`<img src="%s" alt="%s" style="max-height:60px;"/>`, branding.LogoURL, branding.CompanyName)
	}
	return vars
}

func quoteEmail(quote *quotedomain.Quote, branding *settingsdomain.BrandingProfile, pdf []byte) mailer.Message {
	return mailer.Message{
		To:       []string{quote.ClientEmail},
		Subject:  fmt.Sprintf("Quote %s from %s", quote.Number, branding.CompanyName),
		HTMLBody: mailer.Substitute(quoteEmailBody, quoteEmailVars(quote, branding)),
		Attachments: []mailer.Attachment{{
			Filename:    quote.Number + ".pdf",
			ContentType: "application/pdf",
			Data:        pdf,
		}},
	}
}

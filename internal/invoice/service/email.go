package service

import (
	"fmt"
	"time"

	"github.com/kyberbiz/kyberbiz/internal/billing"
	invoicedomain "github.com/kyberbiz/kyberbiz/internal/invoice/domain"
	"github.com/kyberbiz/kyberbiz/internal/mailer"
	settingsdomain "github.com/kyberbiz/kyberbiz/internal/settings/domain"
)

// invoiceEmailBody is the ad-hoc message sent with an invoice PDF. It is
// deliberately independent of the managed email-template collection.
const invoiceEmailBody = `<div style="font-family:Arial,Helvetica,sans-serif;max-width:600px;margin:0 auto;">
  <div style="background:{primary_color};padding:24px;text-align:center;">
    {logo_html}
    <h1 style="color:#ffffff;margin:8px 0 0;">{company_name}</h1>
  </div>
  <div style="padding:24px;color:#1f2937;">
    <p>Hi {client_name},</p>
    <p>Please find attached invoice <strong>#{invoice_number}</strong> for <strong>${total}</strong>.</p>
    <p>Due date: {due_date}</p>
    <p style="text-align:center;margin:32px 0;">
      <a href="{payment_link}" style="background:{accent_color};color:#ffffff;padding:12px 28px;text-decoration:none;border-radius:6px;">Pay Now</a>
    </p>
    <p>Thank you for your business!</p>
  </div>
</div>`

func invoiceEmailVars(invoice *invoicedomain.Invoice, branding *settingsdomain.BrandingProfile) map[string]string {
	vars := map[string]string{
		"invoice_number":  invoice.Number,
		"total":           billing.FormatAmount(invoice.Total),
		"payment_link":    invoice.PaymentLink,
		"client_name":     invoice.ClientName,
		"company_name":    branding.CompanyName,
		"primary_color":   branding.PrimaryColor,
		"secondary_color": branding.SecondaryColor,
		"accent_color":    branding.AccentColor,
	}
	if invoice.DueDate != nil {
		vars["due_date"] = invoice.DueDate.Format("2006-01-02")
	}
	if branding.LogoURL != "" {
		vars["logo_html"] = fmt.Sprintf(`<img src="%s" alt="%s" style="max-height:60px;"/>`, branding.LogoURL, branding.CompanyName)
	}
	return vars
}

func invoiceEmail(invoice *invoicedomain.Invoice, branding *settingsdomain.BrandingProfile, pdf []byte) mailer.Message {
	return mailer.Message{
		To:       []string{invoice.ClientEmail},
		Subject:  fmt.Sprintf("Invoice %s from %s", invoice.Number, branding.CompanyName),
		HTMLBody: mailer.Substitute(invoiceEmailBody, invoiceEmailVars(invoice, branding)),
		Attachments: []mailer.Attachment{{
			Filename:    invoice.Number + ".pdf",
			ContentType: "application/pdf",
			Data:        pdf,
		}},
	}
}

func isoOrEmpty(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

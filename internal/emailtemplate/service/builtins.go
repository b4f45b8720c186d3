package service

import (
	"time"

	templatedomain "github.com/kyberbiz/kyberbiz/internal/emailtemplate/domain"
)

// builtinTemplates are the starter layouts seeded on first read. Their ids
// carry the reserved "default-" prefix; professional starts as the default.
func builtinTemplates(now time.Time) []templatedomain.EmailTemplate {
	return []templatedomain.EmailTemplate{
		{
			ID:        "default-professional",
			Name:      "Professional",
			Theme:     "professional",
			Subject:   "Invoice #{invoice_number} from {company_name}",
			IsDefault: true,
			Body: `<div style="font-family:Arial,Helvetica,sans-serif;max-width:600px;margin:0 auto;">
  <div style="background:{primary_color};padding:24px;text-align:center;">{logo_html}
    <h1 style="color:#ffffff;margin:8px 0 0;">{company_name}</h1>
  </div>
  <div style="padding:24px;color:#1f2937;">
    <p>Dear {client_name},</p>
    <p>Please find attached invoice <strong>#{invoice_number}</strong> for <strong>${total}</strong>, due {due_date}.</p>
    <p style="text-align:center;"><a href="{payment_link}" style="background:{primary_color};color:#ffffff;padding:12px 28px;text-decoration:none;border-radius:6px;">View &amp; Pay</a></p>
    <p>Thank you for your business.</p>
  </div>
</div>`,
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:      "default-modern",
			Name:    "Modern",
			Theme:   "modern",
			Subject: "{company_name} — invoice #{invoice_number}",
			Body: `<div style="font-family:'Segoe UI',Helvetica,sans-serif;max-width:600px;margin:0 auto;border-radius:12px;overflow:hidden;border:1px solid #e5e7eb;">
  <div style="background:linear-gradient(135deg,{primary_color},{secondary_color});padding:32px;text-align:center;">{logo_html}
    <h1 style="color:#ffffff;margin:8px 0 0;font-weight:300;">{company_name}</h1>
  </div>
  <div style="padding:32px;color:#111827;">
    <p>Hi {client_name} 👋</p>
    <p>Your invoice <strong>#{invoice_number}</strong> for <strong>${total}</strong> is ready.</p>
    <p style="text-align:center;"><a href="{payment_link}" style="background:{accent_color};color:#ffffff;padding:14px 32px;text-decoration:none;border-radius:8px;">Pay ${total}</a></p>
  </div>
</div>`,
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:      "default-minimal",
			Name:    "Minimal",
			Theme:   "minimal",
			Subject: "Invoice #{invoice_number}",
			Body: `<div style="font-family:Helvetica,Arial,sans-serif;max-width:560px;margin:0 auto;color:#000000;">
  <p>{client_name},</p>
  <p>Invoice #{invoice_number} — ${total}. Due {due_date}.</p>
  <p><a href="{payment_link}" style="color:{primary_color};">Pay online</a></p>
  <p>{company_name}</p>
</div>`,
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:      "default-bold",
			Name:    "Bold",
			Theme:   "bold",
			Subject: "ACTION REQUIRED: invoice #{invoice_number} from {company_name}",
			Body: `<div style="font-family:Arial Black,Arial,sans-serif;max-width:600px;margin:0 auto;">
  <div style="background:#111827;padding:28px;text-align:center;">{logo_html}
    <h1 style="color:{accent_color};margin:8px 0 0;text-transform:uppercase;">{company_name}</h1>
  </div>
  <div style="padding:28px;color:#111827;">
    <p>Hello {client_name},</p>
    <p style="font-size:18px;">Invoice <strong>#{invoice_number}</strong> — <strong style="color:{primary_color};">${total}</strong></p>
    <p>Due {due_date}.</p>
    <p style="text-align:center;"><a href="{payment_link}" style="background:{primary_color};color:#ffffff;padding:16px 36px;text-decoration:none;font-weight:bold;">PAY NOW</a></p>
  </div>
</div>`,
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:      "default-classic",
			Name:    "Classic",
			Theme:   "classic",
			Subject: "Invoice #{invoice_number} enclosed — {company_name}",
			Body: `<div style="font-family:Georgia,'Times New Roman',serif;max-width:600px;margin:0 auto;color:#1f2937;">
  <div style="border-bottom:3px double #374151;padding:16px 0;text-align:center;">{logo_html}
    <h1 style="margin:8px 0 0;">{company_name}</h1>
  </div>
  <div style="padding:24px 0;">
    <p>Dear {client_name},</p>
    <p>Enclosed please find invoice <em>#{invoice_number}</em> in the amount of <strong>${total}</strong>, payable by {due_date}.</p>
    <p>Payment may be remitted online: <a href="{payment_link}">{payment_link}</a></p>
    <p>With kind regards,<br/>{company_name}</p>
  </div>
</div>`,
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
}

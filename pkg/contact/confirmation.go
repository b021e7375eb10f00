package contact

import (
	"github.com/nicksnyder/go-i18n/v2/i18n"

	"github.com/cyboglabs/cybot/pkg/locale"
)

// Confirmation is the reply shown after an inquiry is stored
func Confirmation(inquiry Inquiry, localizer *i18n.Localizer) string {
	normalized := inquiry.Normalize()
	data := map[string]string{"Name": normalized.Name, "Email": normalized.Email}
	switch normalized.Type {
	case TypeCareers:
		return locale.Text(localizer, "contact-confirmation-careers", data)
	case TypeSupport:
		return locale.Text(localizer, "contact-confirmation-support", data)
	default:
		return locale.Text(localizer, "contact-confirmation-general", data)
	}
}

// Alert is the short text sent to the on-call phone for an inquiry
func Alert(inquiry Inquiry) string {
	normalized := inquiry.Normalize()
	return locale.Text(locale.LoadLocalizer("en"), "contact-alert", map[string]string{
		"Type":    normalized.Type,
		"Name":    normalized.Name,
		"Email":   normalized.Email,
		"Subject": normalized.Subject,
	})
}

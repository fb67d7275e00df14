package board

import (
	"net/url"
	"strings"
	"unicode"

	"github.com/iammorganparry/seans/internal/models"
)

// DefaultReminderTemplate is the message sent ahead of an appointment.
const DefaultReminderTemplate = "Merhaba Sayın {client}, {date} tarihinde saat {time} randevunuzu hatırlatmak isteriz."

const waBase = "https://wa.me/"

// ReminderMessage fills the template with the session's client, date and time.
func ReminderMessage(template string, sess *models.Session) string {
	r := strings.NewReplacer(
		"{client}", sess.ClientName,
		"{date}", sess.Date.String(),
		"{time}", sess.Time.String(),
	)
	return r.Replace(template)
}

// BuildReminderLink composes a WhatsApp deep link for phone carrying message.
// Every non-digit is dropped from phone; a phone without digits yields an
// empty number segment.
func BuildReminderLink(phone, message string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, phone)
	return waBase + digits + "?text=" + encodeText(message)
}

// encodeText percent-encodes s for a query value, spaces as %20.
func encodeText(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// HasDigits reports whether phone contains at least one ASCII digit.
func HasDigits(phone string) bool {
	return strings.IndexFunc(phone, func(r rune) bool {
		return r < unicode.MaxASCII && unicode.IsDigit(r)
	}) >= 0
}

package telegram

import (
	"strings"
	"time"
)

// htmlEscaper neutralizes the characters Telegram's HTML parse mode treats as
// markup. All five replacements happen in one simultaneous pass, so the "&" of
// an inserted entity is never itself re-escaped ("&" conceptually goes first).
// Escaping already-escaped text a second time visibly double-escapes it:
// "&amp;" becomes "&amp;amp;". That is intentional single-pass behavior.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// EscapeHTML escapes user-supplied text for inclusion in an HTML-mode message
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

// FormatContactMessage builds the fixed notification template for one contact
// form submission. The company line is included only when company is non-blank.
// Internal newlines in the message are preserved; the timestamp uses the
// server's local clock in day/month numeric, two-digit hour:minute form.
func FormatContactMessage(name, email, company, message string) string {
	var b strings.Builder

	b.WriteString("<b>📬 New Contact Form Submission</b>\n\n")
	b.WriteString("<b>Name:</b> " + EscapeHTML(name) + "\n")
	b.WriteString("<b>Email:</b> " + EscapeHTML(email) + "\n")
	if strings.TrimSpace(company) != "" {
		b.WriteString("<b>Company:</b> " + EscapeHTML(company) + "\n")
	}
	b.WriteString("\n<b>Message:</b>\n")
	b.WriteString(EscapeHTML(message))
	b.WriteString("\n\n<i>Received: " + time.Now().Format("02/01/2006, 15:04") + "</i>")

	return b.String()
}

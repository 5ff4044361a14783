package otp

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var nonDigits = regexp.MustCompile(`\D`)

func digitsOnly(s string) string { return nonDigits.ReplaceAllString(s, "") }

// FormatPhoneNumber masks a locally-detected number to first-3 plus last-3
// digits. Inputs with fewer than 6 digits (including the literal "Unknown")
// are returned unchanged.
func FormatPhoneNumber(number string) string {
	if number == "" {
		return "Unknown"
	}
	digits := digitsOnly(number)
	if len(digits) < 6 {
		return number
	}
	return digits[:3] + "*****" + digits[len(digits)-3:]
}

// MaskNumber masks a feed number to first-5 plus last-3 digits when it has
// more than 6, and always +-prefixes the result.
func MaskNumber(number string) string {
	clean := digitsOnly(number)
	masked := clean
	if len(clean) > 6 {
		masked = clean[:5] + "*****" + clean[len(clean)-3:]
	}
	if masked == "" {
		masked = "N/A"
	}
	if !strings.HasPrefix(masked, "+") {
		masked = "+" + masked
	}
	return masked
}

var markupEscaper = strings.NewReplacer(
	"_", `\_`, "*", `\*`, "[", `\[`, "]", `\]`,
	"(", `\(`, ")", `\)`, ">", `\>`, "#", `\#`,
	"+", `\+`, "-", `\-`, "=", `\=`, "|", `\|`,
	"{", `\{`, "}", `\}`, ".", `\.`, "!", `\!`,
)

// EscapeMarkup backslash-escapes the punctuation MarkdownV2 reserves. Every
// interpolated field of a MarkdownV2 message must pass through here or
// Telegram rejects the whole send.
func EscapeMarkup(text string) string { return markupEscaper.Replace(text) }

// FormatReceivedAt renders a feed timestamp shifted to UTC+6 (the audience
// timezone) as dd-mm-yyyy 12-hour. Unparseable values pass through raw.
func FormatReceivedAt(raw string) string {
	if raw == "" || raw == "N/A" {
		return raw
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		t, err = time.Parse("2006-01-02T15:04:05", raw)
		if err != nil {
			return raw
		}
	}
	return t.Add(6 * time.Hour).Format("02-01-2006 03:04:05 PM")
}

// LocalAlert is the announcement for an OTP detected in the monitored group.
// Rendered with legacy Markdown; fields are interpolated as-is.
type LocalAlert struct {
	Application string
	Number      string // already masked
	OTP         string
	Country     string
	DetectedAt  time.Time
	FullText    string
}

func (a LocalAlert) Render() string {
	var b strings.Builder
	fmt.Fprintf(&b, "*%s* OTP Detected!\n\n", a.Application)
	fmt.Fprintf(&b, "Number: %s\n", a.Number)
	fmt.Fprintf(&b, "OTP: %s\n", a.OTP)
	fmt.Fprintf(&b, "Application: %s\n", a.Application)
	fmt.Fprintf(&b, "Country: %s\n", a.Country)
	fmt.Fprintf(&b, "Time: %s\n\n", a.DetectedAt.UTC().Format("2006-01-02 15:04:05")+" UTC")
	fmt.Fprintf(&b, "Full Message:\n%s", a.FullText)
	return b.String()
}

// SuccessAlert is the announcement for a record fetched from the
// success-numbers feed. Rendered with MarkdownV2; every field is escaped.
type SuccessAlert struct {
	Service    string
	Number     string // already masked
	OTP        string
	Country    string
	ReceivedAt string // raw feed timestamp
	FullText   string
}

func (a SuccessAlert) Render() string {
	var b strings.Builder
	fmt.Fprintf(&b, "📬 \"%s\" OTP Received\\!\n\n", EscapeMarkup(a.Service))
	fmt.Fprintf(&b, "Number: %s\n", EscapeMarkup(a.Number))
	fmt.Fprintf(&b, "🔐OTP: %s\n", EscapeMarkup(a.OTP))
	fmt.Fprintf(&b, "Country: %s\n", EscapeMarkup(a.Country))
	fmt.Fprintf(&b, "Time: %s\n\n", EscapeMarkup(FormatReceivedAt(a.ReceivedAt)))
	fmt.Fprintf(&b, "Full Message:\n%s", EscapeMarkup(a.FullText))
	return b.String()
}

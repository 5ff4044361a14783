// Package otp holds the pure text heuristics of the relay: passcode,
// application and phone extraction, number masking, markup escaping, and the
// country calling-code table.
package otp

import (
	"regexp"
	"strings"
)

// otpPatterns are tried in declaration order; the first match of the first
// rule that matches wins. Bare runs come before labeled forms, so a phone
// number can satisfy the digit-run rule. Accepted limitation.
var otpPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b\d{4,8}\b`),
	regexp.MustCompile(`(?i)\b[A-Z0-9]{4,8}\b`),
	regexp.MustCompile(`(?i)verification code[:\s]*(\d+)`),
	regexp.MustCompile(`(?i)your code[:\s]*(\d+)`),
	regexp.MustCompile(`(?i)otp[:\s]*(\d+)`),
	regexp.MustCompile(`(?i)code[:\s]*(\d+)`),
	regexp.MustCompile(`(?i)pin[:\s]*(\d+)`),
}

// PatternCount reports how many passcode rules are loaded. Shown by /status.
func PatternCount() int { return len(otpPatterns) }

// ExtractOTP returns the first passcode-looking token in text. Labeled rules
// yield their capture group, bare rules the whole match.
func ExtractOTP(text string) (string, bool) {
	for _, re := range otpPatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		for _, group := range m[1:] {
			if group != "" {
				return group, true
			}
		}
		return m[0], true
	}
	return "", false
}

// appTable maps service keywords to display names. Iteration order is part of
// the contract: the first keyword found in the text wins.
var appTable = []struct{ keyword, name string }{
	{"claude", "Claude"},
	{"openai", "OpenAI"},
	{"chatgpt", "ChatGPT"},
	{"google", "Google"},
	{"facebook", "Facebook"},
	{"instagram", "Instagram"},
	{"twitter", "Twitter"},
	{"x.com", "X (Twitter)"},
	{"whatsapp", "WhatsApp"},
	{"telegram", "Telegram"},
	{"discord", "Discord"},
	{"microsoft", "Microsoft"},
	{"apple", "Apple"},
	{"amazon", "Amazon"},
	{"netflix", "Netflix"},
	{"spotify", "Spotify"},
	{"uber", "Uber"},
	{"paypal", "PayPal"},
	{"tiktok", "TikTok"},
	{"snapchat", "Snapchat"},
	{"linkedin", "LinkedIn"},
	{"signal", "Signal"},
	{"viber", "Viber"},
	{"imo", "IMO"},
	{"airbnb", "Airbnb"},
}

// ExtractApplicationName does a case-insensitive substring lookup against the
// service table; unknown services fall back to "Unknown App".
func ExtractApplicationName(text string) string {
	lower := strings.ToLower(text)
	for _, e := range appTable {
		if strings.Contains(lower, e.keyword) {
			return e.name
		}
	}
	return "Unknown App"
}

// phonePatterns are regional-to-generic, tried in order. Among all matches of
// the first rule that produces any, the longest one wins.
var phonePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\+\d{10,15}`),
	regexp.MustCompile(`\b00\d{9,14}\b`),
	regexp.MustCompile(`\b8801\d{8,9}\b`),
	regexp.MustCompile(`\+?\d{9,15}`),
}

// ExtractPhoneNumber returns the longest phone-looking substring of text.
func ExtractPhoneNumber(text string) (string, bool) {
	if text == "" {
		return "", false
	}
	for _, re := range phonePatterns {
		matches := re.FindAllString(text, -1)
		if len(matches) == 0 {
			continue
		}
		best := matches[0]
		for _, m := range matches[1:] {
			if len(m) > len(best) {
				best = m
			}
		}
		return best, true
	}
	return "", false
}

package model

import "strconv"

// SuccessNumber is one record from the remote success-numbers feed. Records
// are immutable once fetched; ID is the deduplication key.
type SuccessNumber struct {
	ID          int64
	PhoneNumber string
	OTPCode     string
	Service     string
	Country     string
	ReceivedAt  string // as delivered (RFC 3339); kept raw so unparseable values survive
	FullMessage string
}

// Key is the identifier stored in the seen set.
func (n *SuccessNumber) Key() string { return strconv.FormatInt(n.ID, 10) }

// Extraction is the per-message result of the OTP detection pipeline.
// Ephemeral; never stored.
type Extraction struct {
	OTP         string
	Application string
	PhoneNumber string
}

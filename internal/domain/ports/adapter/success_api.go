package adapter

import (
	"context"
	"time"

	"telegram-otp-relay/internal/domain/model"
)

// SuccessNumbersAPI is the hex port for the remote success-numbers service.
type SuccessNumbersAPI interface {
	// FetchRecent returns up to limit records from the first feed page.
	// A non-zero after constrains results to receivedAt >= after; a zero
	// value fetches the most recent records unconstrained.
	FetchRecent(ctx context.Context, limit int, after time.Time) ([]model.SuccessNumber, error)

	// Count reports the total number of success records upstream.
	Count(ctx context.Context) (int, error)

	// PhoneCountry resolves the country name for a phone number.
	PhoneCountry(ctx context.Context, number string) (string, error)
}

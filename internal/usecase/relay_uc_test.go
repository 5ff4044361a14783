//go:build !integration

package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"telegram-otp-relay/internal/usecase"
)

func TestRelayUseCase(t *testing.T) {
	ctx := context.Background()
	testLogger := newTestLogger()

	t.Run("should announce a detected otp with the resolved country", func(t *testing.T) {
		// --- Arrange ---
		api := &MockSuccessAPI{PhoneCountryFunc: func(ctx context.Context, number string) (string, error) {
			return "Bangladesh", nil
		}}
		uc := usecase.NewRelayUseCase(api, usecase.NewRelayStats(), testLogger)

		// --- Act ---
		reply, ok := uc.HandleGroupMessage(ctx, "+8801712345678 Rented", "Your WhatsApp code is 443311")

		// --- Assert ---
		if !ok {
			t.Fatal("expected an announcement for a message carrying an otp")
		}
		if !strings.HasPrefix(reply, "*WhatsApp* OTP Detected!") {
			t.Errorf("expected WhatsApp header, got: %q", reply)
		}
		if !strings.Contains(reply, "Number: 880*****678") {
			t.Errorf("expected masked title number, got: %q", reply)
		}
		if !strings.Contains(reply, "OTP: 443311") {
			t.Errorf("expected extracted otp, got: %q", reply)
		}
		if !strings.Contains(reply, "Country: Bangladesh") {
			t.Errorf("expected resolved country, got: %q", reply)
		}
		if !strings.Contains(reply, "Full Message:\nYour WhatsApp code is 443311") {
			t.Errorf("expected full original text, got: %q", reply)
		}
	})

	t.Run("should stay silent for messages without an otp", func(t *testing.T) {
		api := &MockSuccessAPI{}
		uc := usecase.NewRelayUseCase(api, usecase.NewRelayStats(), testLogger)

		reply, ok := uc.HandleGroupMessage(ctx, "Some Group", "hi ok no")
		if ok || reply != "" {
			t.Errorf("expected no announcement, got ok=%v reply=%q", ok, reply)
		}
		if len(api.CountryCalls) != 0 {
			t.Error("expected no country lookup for a silent message")
		}
	})

	t.Run("should prefer the chat title number over one in the body", func(t *testing.T) {
		api := &MockSuccessAPI{}
		uc := usecase.NewRelayUseCase(api, usecase.NewRelayStats(), testLogger)

		reply, ok := uc.HandleGroupMessage(ctx, "+15551234567 line 4", "code 9921 sent to +8801712345678")
		if !ok {
			t.Fatal("expected an announcement")
		}
		if !strings.Contains(reply, "Number: 155*****567") {
			t.Errorf("expected the title number to win, got: %q", reply)
		}
		if len(api.CountryCalls) != 1 || api.CountryCalls[0] != "+15551234567" {
			t.Errorf("expected lookup for the title number, got %v", api.CountryCalls)
		}
	})

	t.Run("should degrade to Unknown when the country lookup fails", func(t *testing.T) {
		api := &MockSuccessAPI{PhoneCountryFunc: func(ctx context.Context, number string) (string, error) {
			return "", errors.New("dial tcp: connection refused")
		}}
		uc := usecase.NewRelayUseCase(api, usecase.NewRelayStats(), testLogger)

		reply, ok := uc.HandleGroupMessage(ctx, "+8801712345678", "otp: 5566")
		if !ok {
			t.Fatal("expected an announcement despite the failed lookup")
		}
		if !strings.Contains(reply, "Country: Unknown") {
			t.Errorf("expected Unknown country, got: %q", reply)
		}
	})

	t.Run("should skip the lookup entirely when no number was found", func(t *testing.T) {
		api := &MockSuccessAPI{}
		uc := usecase.NewRelayUseCase(api, usecase.NewRelayStats(), testLogger)

		reply, ok := uc.HandleGroupMessage(ctx, "OTP Group", "Your verification code is 774411")
		if !ok {
			t.Fatal("expected an announcement")
		}
		if !strings.Contains(reply, "Number: Unknown") {
			t.Errorf("expected Unknown number, got: %q", reply)
		}
		if len(api.CountryCalls) != 0 {
			t.Errorf("expected no remote lookup without a number, got %v", api.CountryCalls)
		}
	})

	t.Run("should count detections in the shared stats", func(t *testing.T) {
		api := &MockSuccessAPI{}
		stats := usecase.NewRelayStats()
		uc := usecase.NewRelayUseCase(api, stats, testLogger)

		uc.HandleGroupMessage(ctx, "g", "code: 1234")
		uc.HandleGroupMessage(ctx, "g", "hi ok no")
		if got := stats.View().Detected; got != 1 {
			t.Errorf("expected 1 detection recorded, got %d", got)
		}
	})
}

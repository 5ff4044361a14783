// File: internal/infra/otpapi/client.go
package otpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"telegram-otp-relay/internal/config"
	"telegram-otp-relay/internal/domain"
	"telegram-otp-relay/internal/domain/model"
	"telegram-otp-relay/internal/domain/ports/adapter"
	"telegram-otp-relay/internal/infra/metrics"
)

var _ adapter.SuccessNumbersAPI = (*Client)(nil)

// Client implements adapter.SuccessNumbersAPI against the REST feed. Every
// call carries the X-API-Key header and the configured client timeout, so a
// hung endpoint can never stall a poll tick past its deadline.
type Client struct {
	baseURL string
	key     string
	client  *http.Client
}

func NewClient(cfg config.APIConfig) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("api base url empty")
	}
	if _, err := url.Parse(cfg.BaseURL); err != nil {
		return nil, fmt.Errorf("invalid api base url: %w", err)
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		key:     cfg.Key,
		client:  &http.Client{Timeout: cfg.Timeout},
	}, nil
}

// FetchRecent fetches the first feed page. A non-zero after is forwarded as
// the ISO-8601 "after" query parameter.
func (c *Client) FetchRecent(ctx context.Context, limit int, after time.Time) ([]model.SuccessNumber, error) {
	q := url.Values{}
	q.Set("page", "1")
	q.Set("limit", strconv.Itoa(limit))
	if !after.IsZero() {
		q.Set("after", after.UTC().Format(time.RFC3339))
	}

	var out struct {
		Data struct {
			Numbers []struct {
				ID          int64  `json:"id"`
				PhoneNumber string `json:"phoneNumber"`
				OTPCode     string `json:"otpCode"`
				Service     string `json:"service"`
				Country     string `json:"country"`
				ReceivedAt  string `json:"receivedAt"`
				FullMessage string `json:"fullMessage"`
			} `json:"numbers"`
		} `json:"data"`
	}
	if err := c.get(ctx, "success-numbers", c.baseURL+"/success-numbers?"+q.Encode(), &out); err != nil {
		return nil, err
	}

	records := make([]model.SuccessNumber, 0, len(out.Data.Numbers))
	for _, n := range out.Data.Numbers {
		records = append(records, model.SuccessNumber{
			ID:          n.ID,
			PhoneNumber: n.PhoneNumber,
			OTPCode:     n.OTPCode,
			Service:     n.Service,
			Country:     n.Country,
			ReceivedAt:  n.ReceivedAt,
			FullMessage: n.FullMessage,
		})
	}
	return records, nil
}

// Count reports the upstream total of success records.
func (c *Client) Count(ctx context.Context) (int, error) {
	var out struct {
		Data struct {
			TotalSuccessNumbers int `json:"totalSuccessNumbers"`
		} `json:"data"`
	}
	if err := c.get(ctx, "count", c.baseURL+"/success-numbers/count", &out); err != nil {
		return 0, err
	}
	return out.Data.TotalSuccessNumbers, nil
}

// PhoneCountry resolves the country for a number; a 200 without a country
// field degrades to "Unknown".
func (c *Client) PhoneCountry(ctx context.Context, number string) (string, error) {
	var out struct {
		Country string `json:"country"`
	}
	if err := c.get(ctx, "phone-country", c.baseURL+"/phone-country/"+url.PathEscape(number), &out); err != nil {
		return "", err
	}
	if out.Country == "" {
		return "Unknown", nil
	}
	return out.Country, nil
}

func (c *Client) get(ctx context.Context, endpoint, rawURL string, out any) error {
	start := time.Now()
	ok := false
	defer func() {
		metrics.ObserveAPIRequest(endpoint, ok, int(time.Since(start).Milliseconds()))
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}
	if c.key != "" {
		req.Header.Set("X-API-Key", c.key)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%s: %w", endpoint, domain.ErrNotFound)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s http %d: %w", endpoint, resp.StatusCode, domain.ErrUnavailable)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", endpoint, err)
	}
	ok = true
	return nil
}

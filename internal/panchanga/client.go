package panchanga

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	findEndpoint = "/rpc"
	userAgent    = "panchanga-api/1.0"
)

// ClientConfig holds the provider client settings.
type ClientConfig struct {
	BaseURL        string
	ConnectTimeout time.Duration // TCP connect timeout
	RequestTimeout time.Duration // total per-request timeout
}

// Client fetches raw panchanga responses from the upstream provider. A single
// attempt is made per request; any failure is reported to the caller, which
// serves the fallback record instead.
type Client struct {
	client *resty.Client
	logger *slog.Logger
}

// NewClient creates a provider client with bounded connect and request
// timeouts so a slow provider cannot pin request workers.
func NewClient(cfg ClientConfig, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}

	dialer := &net.Dialer{Timeout: cfg.ConnectTimeout}
	transport := &http.Transport{DialContext: dialer.DialContext}

	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetHeader("User-Agent", userAgent).
		SetTimeout(cfg.RequestTimeout).
		SetTransport(transport).
		SetRetryCount(0)

	client.OnAfterResponse(func(c *resty.Client, resp *resty.Response) error {
		logger.Debug("provider response",
			slog.String("url", resp.Request.URL),
			slog.Int("status", resp.StatusCode()),
			slog.String("duration", resp.Time().String()),
			slog.Int("body_bytes", len(resp.Body())))
		return nil
	})

	return &Client{client: client, logger: logger}
}

// Fetch retrieves the raw provider response for the request. The request date
// is reformatted to MM/DD/YYYY and the time to h:mm AM/PM before the call.
func (c *Client) Fetch(ctx context.Context, req Request) (string, error) {
	date, err := ParseDate(req.Date)
	if err != nil {
		return "", fmt.Errorf("format provider date: %w", err)
	}

	c.logger.Info("calling panchanga provider",
		slog.String("city", req.City),
		slog.String("date", req.Date),
		slog.String("time", req.Time),
		slog.String("timezone", req.Timezone))

	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"action":           "findSankalpam",
			"cityfld":          req.City,
			"latfld":           strconv.FormatFloat(req.Lat, 'f', 6, 64),
			"lngfld":           strconv.FormatFloat(req.Lng, 'f', 6, 64),
			"tzfld":            req.Timezone,
			"sankalpamdatestr": ProviderDate(date),
			"sankalpamtimestr": NormalizeTime(req.Time),
		}).
		Get(findEndpoint)

	if err != nil {
		return "", fmt.Errorf("provider request failed: %w", err)
	}
	if !resp.IsSuccess() {
		return "", fmt.Errorf("provider returned status %d", resp.StatusCode())
	}
	return string(resp.Body()), nil
}

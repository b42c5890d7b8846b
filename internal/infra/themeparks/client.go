package themeparks

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/KasumiMercury/park-live-board/internal/domain"
	"github.com/KasumiMercury/park-live-board/internal/observability/logging"
	"github.com/KasumiMercury/park-live-board/internal/observability/tracing"
)

const DefaultTimeout = 30 * time.Second

type Client struct {
	baseURL       string
	destinationID string
	httpClient    *http.Client
}

func NewClient(baseURL, destinationID string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:       baseURL,
		destinationID: destinationID,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// GetLiveData fetches the live feed of the whole destination. Any transport
// error, non-2xx status or undecodable body fails the call.
func (c *Client) GetLiveData(ctx context.Context) ([]domain.LiveEntity, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}
	u = u.JoinPath("entity", c.destinationID, "live")

	ctx, span := tracing.StartExternalAPISpan(ctx, "get_live_data", u.String())
	defer span.End()

	entities, err := c.getLiveData(ctx, u)
	tracing.RecordError(span, "fetch", err)
	return entities, err
}

func (c *Client) getLiveData(ctx context.Context, u *url.URL) ([]domain.LiveEntity, error) {
	slog.DebugContext(ctx, "fetching live data",
		slog.String("url", u.String()),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	requestID := logging.ValidateAndExtractRequestID(logging.RequestIDFromContext(ctx))
	req.Header.Set("x-request-id", requestID)
	tracing.InjectToHTTPRequest(ctx, req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.ErrorContext(ctx, "failed to send request to live feed",
			slog.String("url", u.String()),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		slog.ErrorContext(ctx, "unexpected status code from live feed",
			slog.String("url", u.String()),
			slog.Int("status_code", resp.StatusCode),
		)
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		slog.ErrorContext(ctx, "failed to read response body from live feed",
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var liveResp LiveResponse
	if err := json.Unmarshal(body, &liveResp); err != nil {
		slog.ErrorContext(ctx, "failed to decode response from live feed",
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	entities := ToDomain(liveResp.LiveData)

	slog.DebugContext(ctx, "successfully fetched live data",
		slog.Int("count", len(entities)),
	)

	return entities, nil
}

package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/KasumiMercury/park-live-board/internal/domain"
	"github.com/KasumiMercury/park-live-board/internal/observability/tracing"
)

var (
	ErrEmptyLocation    = errors.New("catalog location is empty")
	ErrUnexpectedStatus = errors.New("unexpected status code from catalog")
)

// Loader reads the static catalog from a local path or an http(s) URL.
type Loader struct {
	location   string
	httpClient *http.Client
}

func NewLoader(location string, timeout time.Duration) *Loader {
	return &Loader{
		location: location,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (l *Loader) Load(ctx context.Context) ([]domain.StaticPoint, error) {
	if l.location == "" {
		return nil, ErrEmptyLocation
	}

	var (
		body []byte
		err  error
	)
	if isRemote(l.location) {
		body, err = l.fetch(ctx)
	} else {
		body, err = os.ReadFile(l.location)
		if err != nil {
			err = fmt.Errorf("failed to read catalog file: %w", err)
		}
	}
	if err != nil {
		return nil, err
	}

	return Parse(body)
}

// Parse decodes a catalog document. Entries without a name are skipped.
func Parse(body []byte) ([]domain.StaticPoint, error) {
	var entries []Entry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}

	points := make([]domain.StaticPoint, 0, len(entries))
	for _, e := range entries {
		if strings.TrimSpace(e.Name) == "" {
			continue
		}
		points = append(points, e.ToDomain())
	}
	return points, nil
}

func (l *Loader) fetch(ctx context.Context) ([]byte, error) {
	ctx, span := tracing.StartExternalAPISpan(ctx, "get_catalog", l.location)
	defer span.End()

	body, err := l.doFetch(ctx)
	tracing.RecordError(span, "load_catalog", err)
	return body, err
}

func (l *Loader) doFetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.location, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	tracing.InjectToHTTPRequest(ctx, req)

	resp, err := l.httpClient.Do(req)
	if err != nil {
		slog.ErrorContext(ctx, "failed to fetch catalog",
			slog.String("url", l.location),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		slog.ErrorContext(ctx, "unexpected status code from catalog",
			slog.String("url", l.location),
			slog.Int("status_code", resp.StatusCode),
		)
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return body, nil
}

func isRemote(location string) bool {
	return strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://")
}

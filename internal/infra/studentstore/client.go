// Package studentstore reads per-user timetable and exam snapshots from
// the persisted document store. The subsystem never writes back; the store
// is owned by the CRUD layer of the app.
package studentstore

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/Demma22/REMI-APP-sub000/internal/domain"
	"github.com/Demma22/REMI-APP-sub000/internal/observability/tracing"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// GetUserRecord fetches the user document holding the timetable and exam
// list used as planner input.
func (c *Client) GetUserRecord(ctx context.Context, userID string) (*domain.UserRecord, error) {
	ctx, span := tracing.StartHostCallSpan(ctx, "studentstore.get_user")
	defer span.End()

	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}
	u = u.JoinPath("users", userID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("student store request failed: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			slog.WarnContext(ctx, "failed to close response body", slog.String("error", err.Error()))
		}
	}()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("student store returned status %d: %s", resp.StatusCode, string(body))
	}

	var record domain.UserRecord
	if err := json.NewDecoder(resp.Body).Decode(&record); err != nil {
		return nil, fmt.Errorf("failed to decode user record: %w", err)
	}

	slog.DebugContext(ctx, "fetched user record",
		slog.String("user_id", userID),
		slog.Int("timetable_days", len(record.Timetable)),
		slog.Int("exam_count", len(record.Exams)),
	)

	return &record, nil
}

// Package advisor calls the external style recommendation service. The
// storefront treats it as an optional enrichment: callers get a typed
// error when the service is unreachable and decide how to degrade.
package advisor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	apperrors "github.com/Nwachukwuchinedu/Creative-Stitches/pkg/errors"
	"github.com/Nwachukwuchinedu/Creative-Stitches/pkg/httpclient"
)

// Request describes the shopper context sent to the recommendation service.
type Request struct {
	UserPreferences string `json:"user_preferences" validate:"required"`
	TrendingFashion string `json:"trending_fashion" validate:"required"`
}

// Recommendation is the advice returned for one suggested style.
type Recommendation struct {
	Style  string `json:"style"`
	Reason string `json:"reason,omitempty"`
}

// Response is the recommendation service payload.
type Response struct {
	StyleRecommendations []Recommendation `json:"style_recommendations"`
}

// Client talks to the style recommendation service.
type Client struct {
	baseURL string
	http    *httpclient.Client
	logger  *slog.Logger
}

// New creates an advisor client against baseURL.
func New(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	cfg := httpclient.DefaultConfig()
	cfg.Timeout = timeout
	// Shoppers wait on this call; keep the retry budget short.
	cfg.MaxRetries = 2
	cfg.RetryWaitMin = 200 * time.Millisecond
	cfg.RetryWaitMax = time.Second
	return &Client{
		baseURL: baseURL,
		http:    httpclient.New(cfg),
		logger:  logger,
	}
}

// Recommend asks the service for style suggestions matching the shopper's
// stated preferences and current trends.
func (c *Client) Recommend(ctx context.Context, req Request) (Response, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return Response{}, apperrors.Internal(fmt.Errorf("encode recommendation request: %w", err))
	}

	resp, err := c.http.Post(ctx, c.baseURL+"/v1/recommendations", "application/json", bytes.NewReader(body))
	if err != nil {
		c.logger.WarnContext(ctx, "style advisor unreachable", slog.String("error", err.Error()))
		return Response{}, apperrors.Unavailable("style advisor unavailable")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.WarnContext(ctx, "style advisor returned error",
			slog.Int("status", resp.StatusCode))
		return Response{}, apperrors.Unavailable(
			fmt.Sprintf("style advisor returned status %d", resp.StatusCode))
	}

	var out Response
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return Response{}, apperrors.Unavailable("decode recommendation response")
	}
	if out.StyleRecommendations == nil {
		out.StyleRecommendations = []Recommendation{}
	}
	return out, nil
}

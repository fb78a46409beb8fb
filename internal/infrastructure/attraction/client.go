package attraction

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// Client stores the attraction score in a remote attraction service
// instead of the local database. It satisfies relationship.Store.
type Client struct {
	httpClient *resty.Client
}

type scoreDocument struct {
	Score int `json:"score"`
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json")

	return &Client{httpClient: httpClient}
}

// Load fetches the current score. A 404 means the service has no score
// recorded yet and maps to zero.
func (c *Client) Load(ctx context.Context) (int, error) {
	var doc scoreDocument

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetResult(&doc).
		Get("/v1/score")
	if err != nil {
		return 0, fmt.Errorf("fetch attraction score: %w", err)
	}
	if resp.StatusCode() == 404 {
		return 0, nil
	}
	if resp.IsError() {
		return 0, fmt.Errorf("fetch attraction score: service returned %d", resp.StatusCode())
	}
	return doc.Score, nil
}

// Save writes the score through to the service.
func (c *Client) Save(ctx context.Context, score int) error {
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(scoreDocument{Score: score}).
		Put("/v1/score")
	if err != nil {
		return fmt.Errorf("persist attraction score: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("persist attraction score: service returned %d", resp.StatusCode())
	}
	return nil
}

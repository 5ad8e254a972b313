// Package qdrant is a small REST client for the Qdrant endpoints the
// harness needs: collection listing, collection metadata, and
// nearest-neighbor queries.
package qdrant

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"qdrant-sink-harness/internal/models"
)

var (
	// ErrUnreachable indicates the database could not be contacted.
	ErrUnreachable = errors.New("qdrant unreachable")

	// ErrCollectionNotFound indicates the named collection does not exist.
	ErrCollectionNotFound = errors.New("collection not found")

	// ErrDimensionMismatch indicates the query vector size disagrees with
	// the collection's configured vector size.
	ErrDimensionMismatch = errors.New("vector dimension mismatch")
)

// DefaultURL is the standard local Qdrant HTTP endpoint.
const DefaultURL = "http://localhost:6333"

// Client talks to a Qdrant server over its HTTP API.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a client for the given base URL, defaulting to
// DefaultURL when empty.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// ListCollections returns the names of all collections.
func (c *Client) ListCollections(ctx context.Context) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/collections", nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, unexpectedStatus(resp)
	}

	var result struct {
		Result struct {
			Collections []struct {
				Name string `json:"name"`
			} `json:"collections"`
		} `json:"result"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	names := make([]string, len(result.Result.Collections))
	for i, col := range result.Result.Collections {
		names[i] = col.Name
	}
	return names, nil
}

// DescribeCollection fetches point count, status and vector configuration
// for one collection. A missing collection maps to ErrCollectionNotFound.
func (c *Client) DescribeCollection(ctx context.Context, name string) (models.CollectionInfo, error) {
	var info models.CollectionInfo
	if name == "" {
		return info, errors.New("collection name required")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/collections/"+name, nil)
	if err != nil {
		return info, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return info, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return info, fmt.Errorf("%w: %s", ErrCollectionNotFound, name)
	}
	if resp.StatusCode != http.StatusOK {
		return info, unexpectedStatus(resp)
	}

	var result struct {
		Result struct {
			Status      string `json:"status"`
			PointsCount int64  `json:"points_count"`
			Config      struct {
				Params struct {
					Vectors struct {
						Size     int    `json:"size"`
						Distance string `json:"distance"`
					} `json:"vectors"`
				} `json:"params"`
			} `json:"config"`
		} `json:"result"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return info, fmt.Errorf("decoding response: %w", err)
	}

	info = models.CollectionInfo{
		Name:        name,
		PointsCount: result.Result.PointsCount,
		Status:      result.Result.Status,
		VectorSize:  result.Result.Config.Params.Vectors.Size,
		Distance:    result.Result.Config.Params.Vectors.Distance,
	}
	return info, nil
}

// Search runs a nearest-neighbor query and returns at most limit hits in
// the server's ranking order. The order is owned by Qdrant and never
// re-sorted here.
func (c *Client) Search(ctx context.Context, collection string, vector []float32, limit int) ([]models.Hit, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("limit must be positive, got %d", limit)
	}

	body, err := json.Marshal(map[string]any{
		"query":        vector,
		"limit":        limit,
		"with_payload": true,
	})
	if err != nil {
		return nil, fmt.Errorf("marshaling query: %w", err)
	}

	url := fmt.Sprintf("%s/collections/%s/points/query", c.baseURL, collection)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s", ErrCollectionNotFound, collection)
	}
	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(resp.Body)
		if strings.Contains(strings.ToLower(string(msg)), "dimension") {
			return nil, fmt.Errorf("%w: %s", ErrDimensionMismatch, strings.TrimSpace(string(msg)))
		}
		return nil, fmt.Errorf("unexpected status code %d: %s", resp.StatusCode, string(msg))
	}

	var result struct {
		Result struct {
			Points []struct {
				Score   float64        `json:"score"`
				Payload map[string]any `json:"payload"`
			} `json:"points"`
		} `json:"result"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	hits := make([]models.Hit, len(result.Result.Points))
	for i, pt := range result.Result.Points {
		hits[i] = models.Hit{Score: pt.Score, Payload: pt.Payload}
	}
	return hits, nil
}

func unexpectedStatus(resp *http.Response) error {
	msg, _ := io.ReadAll(resp.Body)
	return fmt.Errorf("unexpected status code %d: %s", resp.StatusCode, string(msg))
}

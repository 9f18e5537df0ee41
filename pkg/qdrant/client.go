package qdrant

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ErrNotFound is returned when the collection does not exist.
var ErrNotFound = errors.New("qdrant: not found")

// Client is the Qdrant HTTP API client.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a new Qdrant client.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// WithAPIKey sets the api-key header sent with every request.
func (c *Client) WithAPIKey(apiKey string) *Client {
	c.apiKey = apiKey
	return c
}

// CreateCollection creates a new collection with the given configuration.
func (c *Client) CreateCollection(ctx context.Context, req CreateCollectionRequest) error {
	return c.do(ctx, http.MethodPut, "/collections/"+req.Name, req, nil, http.StatusOK, http.StatusCreated)
}

// GetCollection returns collection info, or ErrNotFound.
func (c *Client) GetCollection(ctx context.Context, name string) (*CollectionInfo, error) {
	var resp CollectionInfoResponse
	if err := c.do(ctx, http.MethodGet, "/collections/"+name, nil, &resp, http.StatusOK); err != nil {
		return nil, err
	}
	return &resp.Result, nil
}

// EnsureCollection creates the collection unless it already exists.
func (c *Client) EnsureCollection(ctx context.Context, req CreateCollectionRequest) error {
	_, err := c.GetCollection(ctx, req.Name)
	if err == nil {
		return nil
	}
	if !errors.Is(err, ErrNotFound) {
		return err
	}
	return c.CreateCollection(ctx, req)
}

// UpsertPoints inserts or updates points (vectors) in a collection.
func (c *Client) UpsertPoints(ctx context.Context, collectionName string, req UpsertPointsRequest) error {
	path := fmt.Sprintf("/collections/%s/points?wait=true", collectionName)
	return c.do(ctx, http.MethodPut, path, req, nil, http.StatusOK)
}

// ScrollPoints pages through points matching the request filter.
func (c *Client) ScrollPoints(ctx context.Context, collectionName string, req ScrollRequest) (*ScrollResponse, error) {
	path := fmt.Sprintf("/collections/%s/points/scroll", collectionName)

	var resp ScrollResponse
	if err := c.do(ctx, http.MethodPost, path, req, &resp, http.StatusOK); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ScrollAll follows next_page_offset until every matching point has been read.
func (c *Client) ScrollAll(ctx context.Context, collectionName string, req ScrollRequest) ([]RecordPoint, error) {
	var points []RecordPoint
	for {
		resp, err := c.ScrollPoints(ctx, collectionName, req)
		if err != nil {
			return nil, err
		}
		points = append(points, resp.Result.Points...)
		if resp.Result.NextPageOffset == nil {
			return points, nil
		}
		req.Offset = resp.Result.NextPageOffset
	}
}

// SearchPoints performs semantic search in a collection.
func (c *Client) SearchPoints(ctx context.Context, collectionName string, req SearchRequest) (*SearchResponse, error) {
	path := fmt.Sprintf("/collections/%s/points/search", collectionName)

	var resp SearchResponse
	if err := c.do(ctx, http.MethodPost, path, req, &resp, http.StatusOK); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeletePoints deletes points by IDs.
func (c *Client) DeletePoints(ctx context.Context, collectionName string, ids []string) error {
	path := fmt.Sprintf("/collections/%s/points/delete?wait=true", collectionName)
	return c.do(ctx, http.MethodPost, path, DeletePointsRequest{Points: ids}, nil, http.StatusOK)
}

// DeletePointsByFilter deletes every point matching filter.
func (c *Client) DeletePointsByFilter(ctx context.Context, collectionName string, filter Filter) error {
	path := fmt.Sprintf("/collections/%s/points/delete?wait=true", collectionName)
	return c.do(ctx, http.MethodPost, path, DeleteByFilterRequest{Filter: filter}, nil, http.StatusOK)
}

func (c *Client) do(ctx context.Context, method, path string, in, out any, okStatus ...int) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("api-key", c.apiKey)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to call qdrant API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: %s", ErrNotFound, path)
	}

	ok := false
	for _, s := range okStatus {
		if resp.StatusCode == s {
			ok = true
			break
		}
	}
	if !ok {
		var errResp ErrorResponse
		if jsonErr := json.NewDecoder(resp.Body).Decode(&errResp); jsonErr == nil && errResp.Status.Error != "" {
			return fmt.Errorf("qdrant API error (%d): %s", resp.StatusCode, errResp.Status.Error)
		}
		return fmt.Errorf("qdrant API error: %d", resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

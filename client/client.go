// Package client is a typed Go client for the asset inventory API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"itam/internal/models"
)

const (
	requestTimeout = 10 * time.Second
	getRetries     = 2
)

// APIError is a non-2xx response decoded from the server's error envelope.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

// SetToken installs the bearer token used on subsequent requests.
func (c *Client) SetToken(token string) { c.token = token }

// ClearToken drops the session. Also called automatically on any 401.
func (c *Client) ClearToken() { c.token = "" }

func (c *Client) Token() string { return c.token }

// ListParams are the query parameters shared by the list endpoints.
// Filters carries the exact-match and range parameters by their query
// names, e.g. "department" or "po_date_from".
type ListParams struct {
	Page          int
	Limit         int
	SortKey       string
	SortDirection string
	Search        string
	Filters       map[string]string
}

func (p ListParams) values() url.Values {
	v := url.Values{}
	if p.Page > 0 {
		v.Set("page", strconv.Itoa(p.Page))
	}
	if p.Limit > 0 {
		v.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.SortKey != "" {
		v.Set("sort_key", p.SortKey)
	}
	if p.SortDirection != "" {
		v.Set("sort_direction", p.SortDirection)
	}
	if p.Search != "" {
		v.Set("search", p.Search)
	}
	for key, val := range p.Filters {
		if val != "" {
			v.Set(key, val)
		}
	}
	return v
}

// Pagination mirrors the server's pagination block.
type Pagination struct {
	CurrentPage int `json:"currentPage"`
	TotalPages  int `json:"totalPages"`
	Limit       int `json:"limit"`
	Total       int `json:"total"`
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	data, err := c.doRaw(ctx, method, path, query, body)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

func (c *Client) doRaw(ctx context.Context, method, path string, query url.Values, body interface{}) ([]byte, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
	}

	attempts := 1
	if method == http.MethodGet {
		attempts += getRetries
	}

	var lastErr error
	for i := 0; i < attempts; i++ {
		var reader io.Reader
		if payload != nil {
			reader = bytes.NewReader(payload)
		}
		req, err := http.NewRequestWithContext(ctx, method, u, reader)
		if err != nil {
			return nil, err
		}
		if payload != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		if c.token != "" {
			req.Header.Set("Authorization", "Bearer "+c.token)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			continue
		}
		data, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastErr = err
			continue
		}

		if resp.StatusCode >= 400 {
			if resp.StatusCode == http.StatusUnauthorized {
				c.ClearToken()
			}
			var envelope struct {
				Error string `json:"error"`
			}
			_ = json.Unmarshal(data, &envelope)
			if envelope.Error == "" {
				envelope.Error = http.StatusText(resp.StatusCode)
			}
			return nil, &APIError{StatusCode: resp.StatusCode, Message: envelope.Error}
		}
		return data, nil
	}
	return nil, fmt.Errorf("%s %s: %w", method, path, lastErr)
}

// ParseCategoryList accepts the two list shapes the API has produced over
// time, a bare array or a {data: [...]} envelope, and rejects anything
// else rather than guessing.
func ParseCategoryList(data []byte) ([]models.Category, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("empty category response")
	}

	if trimmed[0] == '[' {
		var list []models.Category
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return nil, fmt.Errorf("decode category list: %w", err)
		}
		return list, nil
	}

	var envelope struct {
		Data *[]models.Category `json:"data"`
	}
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return nil, fmt.Errorf("decode category list: %w", err)
	}
	if envelope.Data == nil {
		return nil, fmt.Errorf("unrecognized category response shape")
	}
	return *envelope.Data, nil
}

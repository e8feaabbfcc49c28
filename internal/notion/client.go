package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const defaultBaseURL = "https://api.notion.com/v1"

// Credentials identify one Notion integration and the database it may read.
type Credentials struct {
	APIKey     string
	DatabaseID string
}

func (c Credentials) Valid() bool {
	return c.APIKey != "" && c.DatabaseID != ""
}

// Client is a thin REST client for the Notion API. It performs no pacing or
// retries itself; callers route requests through a Limiter.
type Client struct {
	baseURL    string
	version    string
	httpClient *http.Client
}

type Option func(*Client)

// WithBaseURL points the client at a different endpoint (tests).
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(baseURL, "/")
	}
}

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

func NewClient(version string, timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		baseURL:    defaultBaseURL,
		version:    version,
		httpClient: &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// QueryRequest is the body of one database query (one page of results).
type QueryRequest struct {
	StartCursor string          `json:"start_cursor,omitempty"`
	PageSize    int             `json:"page_size,omitempty"`
	Filter      json.RawMessage `json:"filter,omitempty"`
	Sorts       []Sort          `json:"sorts,omitempty"`
}

type Sort struct {
	Timestamp string `json:"timestamp,omitempty"`
	Property  string `json:"property,omitempty"`
	Direction string `json:"direction"`
}

type QueryResponse struct {
	Results    []Page  `json:"results"`
	HasMore    bool    `json:"has_more"`
	NextCursor *string `json:"next_cursor"`
}

// QueryDatabase fetches a single page of database records.
func (c *Client) QueryDatabase(ctx context.Context, creds Credentials, req QueryRequest) (*QueryResponse, error) {
	path := fmt.Sprintf("/databases/%s/query", url.PathEscape(FormatDatabaseID(creds.DatabaseID)))

	var resp QueryResponse
	if err := c.do(ctx, creds.APIKey, http.MethodPost, path, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Database is the metadata of a Notion database.
type Database struct {
	ID    string     `json:"id"`
	Title []RichText `json:"title"`
}

func (d Database) TitleText() string {
	return joinPlainText(d.Title)
}

func (c *Client) RetrieveDatabase(ctx context.Context, creds Credentials) (*Database, error) {
	path := fmt.Sprintf("/databases/%s", url.PathEscape(FormatDatabaseID(creds.DatabaseID)))

	var db Database
	if err := c.do(ctx, creds.APIKey, http.MethodGet, path, nil, &db); err != nil {
		return nil, err
	}
	return &db, nil
}

// UpdatePageSelect writes a select property value on a page. A label missing
// from the database's configured options surfaces as a validation error.
func (c *Client) UpdatePageSelect(ctx context.Context, apiKey, pageID, propertyName, label string) error {
	body := map[string]any{
		"properties": map[string]any{
			propertyName: map[string]any{
				"select": map[string]any{"name": label},
			},
		},
	}

	path := fmt.Sprintf("/pages/%s", url.PathEscape(pageID))
	return c.do(ctx, apiKey, http.MethodPatch, path, body, nil)
}

func (c *Client) do(ctx context.Context, apiKey, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("Notion-Version", c.version)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("notion request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read notion response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return parseAPIError(resp, data)
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("invalid notion response JSON: %w", err)
		}
	}
	return nil
}

func parseAPIError(resp *http.Response, data []byte) error {
	apiErr := &APIError{Status: resp.StatusCode}

	var body struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &body); err == nil && body.Code != "" {
		apiErr.Code = ErrorCode(body.Code)
		apiErr.Message = body.Message
	} else {
		apiErr.Code = codeFromStatus(resp.StatusCode)
		apiErr.Message = http.StatusText(resp.StatusCode)
	}

	if retryAfter := resp.Header.Get("Retry-After"); retryAfter != "" {
		if seconds, err := strconv.ParseFloat(retryAfter, 64); err == nil {
			apiErr.RetryAfter = seconds
		}
	}

	return apiErr
}

func codeFromStatus(status int) ErrorCode {
	switch status {
	case http.StatusUnauthorized:
		return CodeUnauthorized
	case http.StatusNotFound:
		return CodeObjectNotFound
	case http.StatusTooManyRequests:
		return CodeRateLimited
	case http.StatusBadRequest:
		return CodeValidationError
	case http.StatusServiceUnavailable:
		return CodeServiceUnavailable
	default:
		return CodeInternalServerError
	}
}

var databaseIDPattern = regexp.MustCompile(`^[0-9a-f]{8}-?[0-9a-f]{4}-?[0-9a-f]{4}-?[0-9a-f]{4}-?[0-9a-f]{12}$`)

// IsValidAPIKeyFormat checks the shape of an integration token without
// calling the API ("secret_" and "ntn_" prefixes).
func IsValidAPIKeyFormat(apiKey string) bool {
	if len(apiKey) < 20 {
		return false
	}
	return strings.HasPrefix(apiKey, "secret_") || strings.HasPrefix(apiKey, "ntn_")
}

func IsValidDatabaseIDFormat(databaseID string) bool {
	if len(databaseID) < 32 {
		return false
	}
	return databaseIDPattern.MatchString(strings.ToLower(databaseID))
}

// FormatDatabaseID normalizes a 32-hex database id into dashed UUID form.
// Anything else is returned unchanged.
func FormatDatabaseID(databaseID string) string {
	clean := strings.ReplaceAll(databaseID, "-", "")
	if len(clean) != 32 {
		return databaseID
	}

	return fmt.Sprintf("%s-%s-%s-%s-%s",
		clean[0:8], clean[8:12], clean[12:16], clean[16:20], clean[20:])
}

// ExtractDatabaseIDFromURL pulls a database id out of a Notion URL, tolerating
// page-title prefixes and view query parameters.
func ExtractDatabaseIDFromURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	if !strings.Contains(parsed.Hostname(), "notion.so") && !strings.Contains(parsed.Hostname(), "notion.site") {
		return ""
	}

	segments := strings.Split(parsed.Path, "/")
	last := segments[len(segments)-1]
	clean := strings.ReplaceAll(last, "-", "")

	if len(clean) < 32 {
		return ""
	}
	return clean[len(clean)-32:]
}

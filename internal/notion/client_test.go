//go:build unit

package notion_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"quoteshare/internal/notion"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDatabaseID = "0123456789abcdef0123456789abcdef"

func testCreds() notion.Credentials {
	return notion.Credentials{APIKey: "secret_0123456789abcdefgh", DatabaseID: testDatabaseID}
}

func newTestClient(t *testing.T, handler http.Handler) *notion.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return notion.NewClient("2022-06-28", 5*time.Second, notion.WithBaseURL(server.URL))
}

func TestClient_QueryDatabase(t *testing.T) {
	var gotReq notion.QueryRequest
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/databases/01234567-89ab-cdef-0123-456789abcdef/query", r.URL.Path)
		assert.Equal(t, "Bearer secret_0123456789abcdefgh", r.Header.Get("Authorization"))
		assert.Equal(t, "2022-06-28", r.Header.Get("Notion-Version"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		json.NewEncoder(w).Encode(map[string]any{
			"results": []map[string]any{
				{"id": "page-1", "properties": map[string]any{
					"상태": map[string]any{"type": "select", "select": map[string]any{"name": "승인"}},
				}},
			},
			"has_more":    false,
			"next_cursor": nil,
		})
	}))

	resp, err := client.QueryDatabase(context.Background(), testCreds(), notion.QueryRequest{PageSize: 50})
	require.NoError(t, err)

	assert.Equal(t, 50, gotReq.PageSize)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, "page-1", resp.Results[0].ID)
	assert.Equal(t, "승인", notion.GetSelect(notion.PropertyByName(resp.Results[0].Properties, "상태")))
	assert.False(t, resp.HasMore)
}

func TestClient_ParsesAPIError(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]any{
			"code":    "unauthorized",
			"message": "API token is invalid.",
		})
	}))

	_, err := client.QueryDatabase(context.Background(), testCreds(), notion.QueryRequest{})
	require.Error(t, err)

	var apiErr *notion.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, notion.CodeUnauthorized, apiErr.Code)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.False(t, notion.IsRetryable(apiErr))
}

func TestClient_ErrorCodeFromStatusWhenBodyUnparseable(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("<html>down</html>"))
	}))

	_, err := client.RetrieveDatabase(context.Background(), testCreds())

	var apiErr *notion.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, notion.CodeServiceUnavailable, apiErr.Code)
	assert.True(t, notion.IsRetryable(apiErr))
}

func TestClient_ReadsRetryAfterHeader(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "2.5")
		w.WriteHeader(http.StatusTooManyRequests)
		json.NewEncoder(w).Encode(map[string]any{"code": "rate_limited", "message": "rate limited"})
	}))

	_, err := client.QueryDatabase(context.Background(), testCreds(), notion.QueryRequest{})

	seconds, ok := notion.RetryAfterSeconds(err)
	require.True(t, ok)
	assert.Equal(t, 2.5, seconds)
}

func TestClient_UpdatePageSelect(t *testing.T) {
	var gotBody map[string]any
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/pages/page-9", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte(`{}`))
	}))

	err := client.UpdatePageSelect(context.Background(), testCreds().APIKey, "page-9", "상태", "조회됨")
	require.NoError(t, err)

	want := map[string]any{
		"properties": map[string]any{
			"상태": map[string]any{"select": map[string]any{"name": "조회됨"}},
		},
	}
	assert.Equal(t, want, gotBody)
}

func TestIsValidAPIKeyFormat(t *testing.T) {
	testCases := []struct {
		name  string
		key   string
		valid bool
	}{
		{name: "secret prefix", key: "secret_0123456789abcdefgh", valid: true},
		{name: "ntn prefix", key: "ntn_0123456789abcdefghij", valid: true},
		{name: "wrong prefix", key: "token_0123456789abcdefgh", valid: false},
		{name: "too short", key: "secret_abc", valid: false},
		{name: "empty", key: "", valid: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.valid, notion.IsValidAPIKeyFormat(tc.key))
		})
	}
}

func TestDatabaseIDHelpers(t *testing.T) {
	t.Run("format dashes a 32-hex id", func(t *testing.T) {
		assert.Equal(t, "01234567-89ab-cdef-0123-456789abcdef", notion.FormatDatabaseID(testDatabaseID))
	})

	t.Run("format leaves other input alone", func(t *testing.T) {
		assert.Equal(t, "not-an-id", notion.FormatDatabaseID("not-an-id"))
	})

	t.Run("validate accepts dashed and dashless", func(t *testing.T) {
		assert.True(t, notion.IsValidDatabaseIDFormat(testDatabaseID))
		assert.True(t, notion.IsValidDatabaseIDFormat("01234567-89ab-cdef-0123-456789abcdef"))
		assert.False(t, notion.IsValidDatabaseIDFormat("xyz"))
	})

	t.Run("extract from workspace url", func(t *testing.T) {
		got := notion.ExtractDatabaseIDFromURL("https://www.notion.so/myteam/Quotes-0123456789abcdef0123456789abcdef?v=abc123")
		assert.Equal(t, testDatabaseID, got)
	})

	t.Run("extract rejects foreign hosts", func(t *testing.T) {
		assert.Empty(t, notion.ExtractDatabaseIDFromURL("https://evil.example/Quotes-0123456789abcdef0123456789abcdef"))
	})
}

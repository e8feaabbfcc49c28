package notion

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

const DefaultPageSize = 100

// FetchOptions tune one listing walk.
type FetchOptions struct {
	PageSize    int
	StartCursor string
	// ModifiedSince restricts the listing to records edited after the given
	// time, newest first. Nil fetches the full listing.
	ModifiedSince *time.Time
}

// FetchResult is the materialized listing of one database.
type FetchResult struct {
	Pages      []Page
	TotalCount int
}

// Fetcher walks a database listing cursor-by-cursor, routing every page
// request through the shared limiter.
type Fetcher struct {
	client  *Client
	limiter *Limiter
}

func NewFetcher(client *Client, limiter *Limiter) *Fetcher {
	return &Fetcher{client: client, limiter: limiter}
}

// FetchAll materializes the full result set for one listing. Every page uses
// the same filter and sort; a page fetch that exhausts retries aborts the
// whole walk (no partial-success mode). Results keep listing order and are
// never de-duplicated here.
func (f *Fetcher) FetchAll(ctx context.Context, creds Credentials, opts FetchOptions) (*FetchResult, error) {
	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	var filter json.RawMessage
	var sorts []Sort
	if opts.ModifiedSince != nil {
		filter = lastEditedAfterFilter(*opts.ModifiedSince)
		sorts = []Sort{{Timestamp: "last_edited_time", Direction: "descending"}}
	}

	var pages []Page
	cursor := opts.StartCursor
	for {
		req := QueryRequest{
			StartCursor: cursor,
			PageSize:    pageSize,
			Filter:      filter,
			Sorts:       sorts,
		}

		var resp *QueryResponse
		err := f.limiter.Execute(ctx, func(ctx context.Context) error {
			var opErr error
			resp, opErr = f.client.QueryDatabase(ctx, creds, req)
			return opErr
		})
		if err != nil {
			return nil, err
		}

		pages = append(pages, resp.Results...)
		if !resp.HasMore || resp.NextCursor == nil {
			break
		}
		cursor = *resp.NextCursor
	}

	return &FetchResult{Pages: pages, TotalCount: len(pages)}, nil
}

// FetchModifiedSince fetches only records edited after since (incremental
// sync path).
func (f *Fetcher) FetchModifiedSince(ctx context.Context, creds Credentials, since time.Time, pageSize int) (*FetchResult, error) {
	return f.FetchAll(ctx, creds, FetchOptions{PageSize: pageSize, ModifiedSince: &since})
}

// ConnectionInfo is the result of a connection probe.
type ConnectionInfo struct {
	DatabaseName string
	// PageCount is the size of the first probe page; -1 when more pages exist.
	PageCount int
}

// TestConnection verifies that the credentials can read the database: fetches
// its metadata and probes the first listing page.
func (f *Fetcher) TestConnection(ctx context.Context, creds Credentials) (*ConnectionInfo, error) {
	var db *Database
	err := f.limiter.Execute(ctx, func(ctx context.Context) error {
		var opErr error
		db, opErr = f.client.RetrieveDatabase(ctx, creds)
		return opErr
	})
	if err != nil {
		return nil, err
	}

	var probe *QueryResponse
	err = f.limiter.Execute(ctx, func(ctx context.Context) error {
		var opErr error
		probe, opErr = f.client.QueryDatabase(ctx, creds, QueryRequest{PageSize: 1})
		return opErr
	})
	if err != nil {
		return nil, err
	}

	info := &ConnectionInfo{DatabaseName: db.TitleText(), PageCount: len(probe.Results)}
	if probe.HasMore {
		info.PageCount = -1
	}
	return info, nil
}

func lastEditedAfterFilter(since time.Time) json.RawMessage {
	return json.RawMessage(fmt.Sprintf(
		`{"timestamp":"last_edited_time","last_edited_time":{"after":%q}}`,
		since.UTC().Format(time.RFC3339),
	))
}

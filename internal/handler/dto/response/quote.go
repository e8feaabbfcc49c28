package response

import "quoteshare/internal/usecase/queries"

type QuoteListResponse struct {
	Quotes []queries.QuoteSummaryView `json:"quotes"`
	Total  int                        `json:"total"`
}

type ShareTokenResponse struct {
	ShareID string `json:"share_id"`
}

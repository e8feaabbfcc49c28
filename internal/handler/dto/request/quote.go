package request

type UpdateQuoteStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type SyncRequest struct {
	// Force runs a full sync even when incremental fetching is enabled.
	Force bool `json:"force"`
}

package request

type UpdateNotionSettingsRequest struct {
	// APIKey is the integration token ("secret_..." or "ntn_...").
	APIKey string `json:"api_key" binding:"required"`
	// DatabaseID accepts a raw database id or a full Notion URL.
	DatabaseID string `json:"database_id" binding:"required"`
}

type TestConnectionRequest struct {
	APIKey     string `json:"api_key"`
	DatabaseID string `json:"database_id"`
}

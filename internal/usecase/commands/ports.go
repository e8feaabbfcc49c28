package commands

import (
	"context"
	"time"

	"quoteshare/internal/domain/quote"
	"quoteshare/internal/notion"
	"quoteshare/internal/usecase/shared"

	"github.com/google/uuid"
)

type UserRepository interface {
	NotionSettings(ctx context.Context, id uuid.UUID) (*shared.NotionSettingsSnapshot, error)
	UpdateNotionSettings(ctx context.Context, id uuid.UUID, apiKeyCiphertext, databaseID string) error
	UpdateLastSyncAt(ctx context.Context, id uuid.UUID, at time.Time) error
}

type QuoteRepository interface {
	UpsertBatch(ctx context.Context, rows []quote.UpsertRow) error
	FindRefsByUser(ctx context.Context, userID uuid.UUID) (map[string]quote.StoredRef, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status quote.Status) error
	UpdateShareID(ctx context.Context, id uuid.UUID, shareID string) error
}

// PageFetcher is the paginated listing port over the source API.
type PageFetcher interface {
	FetchAll(ctx context.Context, creds notion.Credentials, opts notion.FetchOptions) (*notion.FetchResult, error)
	TestConnection(ctx context.Context, creds notion.Credentials) (*notion.ConnectionInfo, error)
}

// StatusWriter pushes quote status changes back to the source database.
type StatusWriter interface {
	UpdateStatus(ctx context.Context, apiKey, pageID string, status quote.Status, propertyName string) notion.UpdateStatusResult
}

// Cipher seals and opens stored API keys.
type Cipher interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
}

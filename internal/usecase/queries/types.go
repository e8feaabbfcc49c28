package queries

import (
	"time"

	"quoteshare/internal/domain/quote"

	"github.com/google/uuid"
)

// AuthorizedUserView represents read-optimized user data for auth decisions
type AuthorizedUserView struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	CompanyName *string   `json:"company_name,omitempty"`
}

// QuoteSummaryView represents one row of an owner's quote listing
type QuoteSummaryView struct {
	ID          uuid.UUID    `json:"id"`
	QuoteNumber string       `json:"quote_number"`
	ClientName  string       `json:"client_name"`
	TotalAmount float64      `json:"total_amount"`
	IssueDate   time.Time    `json:"issue_date"`
	ValidUntil  *time.Time   `json:"valid_until,omitempty"`
	Status      quote.Status `json:"status"`
	ShareID     string       `json:"share_id"`
	CreatedAt   time.Time    `json:"created_at"`
}

// QuoteDetailView represents the full owner-facing quote
type QuoteDetailView struct {
	ID            uuid.UUID    `json:"id"`
	UserID        uuid.UUID    `json:"-"`
	NotionPageID  string       `json:"notion_page_id"`
	QuoteNumber   string       `json:"quote_number"`
	ClientName    string       `json:"client_name"`
	ClientContact *string      `json:"client_contact,omitempty"`
	ClientPhone   *string      `json:"client_phone,omitempty"`
	ClientEmail   *string      `json:"client_email,omitempty"`
	Items         []quote.Item `json:"items"`
	TotalAmount   float64      `json:"total_amount"`
	IssueDate     time.Time    `json:"issue_date"`
	ValidUntil    *time.Time   `json:"valid_until,omitempty"`
	Notes         *string      `json:"notes,omitempty"`
	ShareID       string       `json:"share_id"`
	Status        quote.Status `json:"status"`
	SentAt        *time.Time   `json:"sent_at,omitempty"`
	SentTo        *string      `json:"sent_to,omitempty"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

// SharedQuoteView is the public share-link rendition: no origin ids, no
// send metadata.
type SharedQuoteView struct {
	QuoteNumber   string       `json:"quote_number"`
	ClientName    string       `json:"client_name"`
	ClientContact *string      `json:"client_contact,omitempty"`
	Items         []quote.Item `json:"items"`
	TotalAmount   float64      `json:"total_amount"`
	IssueDate     time.Time    `json:"issue_date"`
	ValidUntil    *time.Time   `json:"valid_until,omitempty"`
	Notes         *string      `json:"notes,omitempty"`
	Status        quote.Status `json:"status"`
}

// NotionSettingsView is the masked settings read model; the stored API key
// never leaves the server.
type NotionSettingsView struct {
	Connected    bool       `json:"connected"`
	APIKeyMasked string     `json:"api_key_masked,omitempty"`
	DatabaseID   string     `json:"database_id,omitempty"`
	LastSyncAt   *time.Time `json:"last_sync_at,omitempty"`
}

// SyncStatusView reports the owner's sync state
type SyncStatusView struct {
	Connected  bool       `json:"connected"`
	LastSyncAt *time.Time `json:"last_sync_at,omitempty"`
	QuoteCount int64      `json:"quote_count"`
}

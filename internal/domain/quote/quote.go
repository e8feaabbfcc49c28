// Package quote holds the canonical quote model shared by the Notion sync
// engine, the persistence layer, and the share-link surface.
package quote

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// ShareTokenLength is the length of the opaque share-link token.
const ShareTokenLength = 16

// CanonicalInput is the internal representation of one external quote record
// after mapping. NotionPageID is the reconciliation join key.
type CanonicalInput struct {
	UserID        uuid.UUID
	NotionPageID  string
	QuoteNumber   string
	ClientName    string
	ClientContact *string
	ClientPhone   *string
	ClientEmail   *string
	Items         []Item
	TotalAmount   float64
	IssueDate     time.Time
	ValidUntil    *time.Time
	Notes         *string
	Status        Status
}

// StoredRef is the minimal view of an already-persisted quote needed during
// reconciliation: the stable identifiers sync must never regenerate.
type StoredRef struct {
	ID         uuid.UUID
	ShareToken string
}

// NewShareToken derives a fresh 16-char lowercase-hex share token from a UUID.
// Collision probability at this length is negligible for per-owner quote sets.
func NewShareToken() string {
	raw := strings.ReplaceAll(uuid.New().String(), "-", "")
	return raw[:ShareTokenLength]
}

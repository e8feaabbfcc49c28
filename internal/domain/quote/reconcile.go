package quote

import (
	"time"

	"github.com/google/uuid"
)

// UpsertRow is one row of a reconciliation batch, keyed by NotionPageID at
// the storage layer. Sent metadata and creation timestamps are owned by the
// store and never carried here; the upsert must leave them untouched.
type UpsertRow struct {
	ID            uuid.UUID
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
	ShareToken    string
	Status        Status
	UpdatedAt     time.Time
}

// ReconcileResult aggregates one reconciliation pass.
type ReconcileResult struct {
	Batch        []UpsertRow
	NewCount     int
	UpdatedCount int
}

// Reconcile merges freshly mapped records against previously stored ones.
// Records whose origin id is already known reuse the stored internal id and
// share token; unseen records get a new id and token. Applying the batch and
// reconciling the same input again yields updates only, with identical rows.
func Reconcile(fresh []CanonicalInput, existing map[string]StoredRef, now time.Time) ReconcileResult {
	result := ReconcileResult{Batch: make([]UpsertRow, 0, len(fresh))}

	for _, input := range fresh {
		row := UpsertRow{
			UserID:        input.UserID,
			NotionPageID:  input.NotionPageID,
			QuoteNumber:   input.QuoteNumber,
			ClientName:    input.ClientName,
			ClientContact: input.ClientContact,
			ClientPhone:   input.ClientPhone,
			ClientEmail:   input.ClientEmail,
			Items:         input.Items,
			TotalAmount:   input.TotalAmount,
			IssueDate:     input.IssueDate,
			ValidUntil:    input.ValidUntil,
			Notes:         input.Notes,
			Status:        input.Status,
			UpdatedAt:     now,
		}

		if ref, ok := existing[input.NotionPageID]; ok {
			row.ID = ref.ID
			row.ShareToken = ref.ShareToken
			result.UpdatedCount++
		} else {
			row.ID = uuid.New()
			row.ShareToken = NewShareToken()
			result.NewCount++
		}

		result.Batch = append(result.Batch, row)
	}

	return result
}

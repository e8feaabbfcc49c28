package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const quoteColumns = `id, user_id, notion_page_id, quote_number, client_name,
       client_contact, client_phone, client_email, items, total_amount,
       issue_date, valid_until, notes, share_id, status, sent_at, sent_to,
       created_at, updated_at`

// upsertQuote keys on the origin page id. The update branch deliberately
// leaves share_id, sent_at, sent_to and created_at alone: those columns are
// owned by this side, not by the source database.
const upsertQuote = `
INSERT INTO quotes (
    id, user_id, notion_page_id, quote_number, client_name,
    client_contact, client_phone, client_email, items, total_amount,
    issue_date, valid_until, notes, share_id, status, updated_at
) VALUES (
    $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16
)
ON CONFLICT (notion_page_id) DO UPDATE SET
    quote_number   = EXCLUDED.quote_number,
    client_name    = EXCLUDED.client_name,
    client_contact = EXCLUDED.client_contact,
    client_phone   = EXCLUDED.client_phone,
    client_email   = EXCLUDED.client_email,
    items          = EXCLUDED.items,
    total_amount   = EXCLUDED.total_amount,
    issue_date     = EXCLUDED.issue_date,
    valid_until    = EXCLUDED.valid_until,
    notes          = EXCLUDED.notes,
    status         = EXCLUDED.status,
    updated_at     = EXCLUDED.updated_at
`

type UpsertQuoteParams struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	NotionPageID  string
	QuoteNumber   string
	ClientName    string
	ClientContact pgtype.Text
	ClientPhone   pgtype.Text
	ClientEmail   pgtype.Text
	Items         []byte
	TotalAmount   pgtype.Numeric
	IssueDate     pgtype.Date
	ValidUntil    pgtype.Date
	Notes         pgtype.Text
	ShareID       string
	Status        string
	UpdatedAt     pgtype.Timestamptz
}

// UpsertQuotes applies a whole reconciled batch over one round trip.
func (q *Queries) UpsertQuotes(ctx context.Context, db DBTX, args []UpsertQuoteParams) error {
	batch := &pgx.Batch{}
	for _, arg := range args {
		batch.Queue(upsertQuote,
			arg.ID,
			arg.UserID,
			arg.NotionPageID,
			arg.QuoteNumber,
			arg.ClientName,
			arg.ClientContact,
			arg.ClientPhone,
			arg.ClientEmail,
			arg.Items,
			arg.TotalAmount,
			arg.IssueDate,
			arg.ValidUntil,
			arg.Notes,
			arg.ShareID,
			arg.Status,
			arg.UpdatedAt,
		)
	}

	results := db.SendBatch(ctx, batch)
	defer results.Close()

	for range args {
		if _, err := results.Exec(); err != nil {
			return err
		}
	}
	return results.Close()
}

const findQuoteRefsByUserID = `
SELECT notion_page_id, id, share_id
FROM quotes
WHERE user_id = $1
`

type FindQuoteRefsByUserIDRow struct {
	NotionPageID string
	ID           uuid.UUID
	ShareID      string
}

func (q *Queries) FindQuoteRefsByUserID(ctx context.Context, db DBTX, userID uuid.UUID) ([]FindQuoteRefsByUserIDRow, error) {
	rows, err := db.Query(ctx, findQuoteRefsByUserID, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []FindQuoteRefsByUserIDRow
	for rows.Next() {
		var r FindQuoteRefsByUserIDRow
		if err := rows.Scan(&r.NotionPageID, &r.ID, &r.ShareID); err != nil {
			return nil, err
		}
		items = append(items, r)
	}
	return items, rows.Err()
}

const listQuotesByUserID = `
SELECT ` + quoteColumns + `
FROM quotes
WHERE user_id = $1
ORDER BY issue_date DESC, created_at DESC
`

func (q *Queries) ListQuotesByUserID(ctx context.Context, db DBTX, userID uuid.UUID) ([]Quotes, error) {
	rows, err := db.Query(ctx, listQuotesByUserID, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Quotes
	for rows.Next() {
		var r Quotes
		if err := scanQuote(rows, &r); err != nil {
			return nil, err
		}
		items = append(items, r)
	}
	return items, rows.Err()
}

const findQuoteByID = `
SELECT ` + quoteColumns + `
FROM quotes
WHERE id = $1
`

func (q *Queries) FindQuoteByID(ctx context.Context, db DBTX, id uuid.UUID) (Quotes, error) {
	var r Quotes
	err := scanQuote(db.QueryRow(ctx, findQuoteByID, id), &r)
	return r, err
}

const findQuoteByShareID = `
SELECT ` + quoteColumns + `
FROM quotes
WHERE share_id = $1
`

func (q *Queries) FindQuoteByShareID(ctx context.Context, db DBTX, shareID string) (Quotes, error) {
	var r Quotes
	err := scanQuote(db.QueryRow(ctx, findQuoteByShareID, shareID), &r)
	return r, err
}

const updateQuoteStatus = `
UPDATE quotes
SET status = $2, updated_at = now()
WHERE id = $1
`

type UpdateQuoteStatusParams struct {
	ID     uuid.UUID
	Status string
}

func (q *Queries) UpdateQuoteStatus(ctx context.Context, db DBTX, arg UpdateQuoteStatusParams) error {
	_, err := db.Exec(ctx, updateQuoteStatus, arg.ID, arg.Status)
	return err
}

const updateQuoteShareID = `
UPDATE quotes
SET share_id = $2, updated_at = now()
WHERE id = $1
`

type UpdateQuoteShareIDParams struct {
	ID      uuid.UUID
	ShareID string
}

func (q *Queries) UpdateQuoteShareID(ctx context.Context, db DBTX, arg UpdateQuoteShareIDParams) error {
	_, err := db.Exec(ctx, updateQuoteShareID, arg.ID, arg.ShareID)
	return err
}

const updateQuoteSentInfo = `
UPDATE quotes
SET status = 'SENT', sent_at = $2, sent_to = $3, updated_at = now()
WHERE id = $1
`

type UpdateQuoteSentInfoParams struct {
	ID     uuid.UUID
	SentAt pgtype.Timestamptz
	SentTo pgtype.Text
}

func (q *Queries) UpdateQuoteSentInfo(ctx context.Context, db DBTX, arg UpdateQuoteSentInfoParams) error {
	_, err := db.Exec(ctx, updateQuoteSentInfo, arg.ID, arg.SentAt, arg.SentTo)
	return err
}

const countQuotesByUserID = `
SELECT count(*)
FROM quotes
WHERE user_id = $1
`

func (q *Queries) CountQuotesByUserID(ctx context.Context, db DBTX, userID uuid.UUID) (int64, error) {
	var count int64
	err := db.QueryRow(ctx, countQuotesByUserID, userID).Scan(&count)
	return count, err
}

func scanQuote(row pgx.Row, r *Quotes) error {
	return row.Scan(
		&r.ID,
		&r.UserID,
		&r.NotionPageID,
		&r.QuoteNumber,
		&r.ClientName,
		&r.ClientContact,
		&r.ClientPhone,
		&r.ClientEmail,
		&r.Items,
		&r.TotalAmount,
		&r.IssueDate,
		&r.ValidUntil,
		&r.Notes,
		&r.ShareID,
		&r.Status,
		&r.SentAt,
		&r.SentTo,
		&r.CreatedAt,
		&r.UpdatedAt,
	)
}

package repository

import (
	"context"
	"encoding/json"

	"quoteshare/internal/domain/quote"
	"quoteshare/internal/infra"
	"quoteshare/internal/infra/sqlc"
	"quoteshare/internal/pkg/pgconv"
	"quoteshare/internal/usecase/queries"

	"github.com/google/uuid"
)

type QuoteQueries interface {
	UpsertQuotes(ctx context.Context, db sqlc.DBTX, args []sqlc.UpsertQuoteParams) error
	FindQuoteRefsByUserID(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) ([]sqlc.FindQuoteRefsByUserIDRow, error)
	ListQuotesByUserID(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) ([]sqlc.Quotes, error)
	FindQuoteByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Quotes, error)
	FindQuoteByShareID(ctx context.Context, db sqlc.DBTX, shareID string) (sqlc.Quotes, error)
	UpdateQuoteStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateQuoteStatusParams) error
	UpdateQuoteShareID(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateQuoteShareIDParams) error
	UpdateQuoteSentInfo(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateQuoteSentInfoParams) error
	CountQuotesByUserID(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) (int64, error)
}

type QuoteRepository struct {
	queries QuoteQueries
	db      sqlc.DBTX
}

func NewQuoteRepository(queries QuoteQueries, db sqlc.DBTX) *QuoteRepository {
	return &QuoteRepository{
		queries: queries,
		db:      db,
	}
}

// UpsertBatch writes one reconciled batch keyed by origin page id.
func (r *QuoteRepository) UpsertBatch(ctx context.Context, rows []quote.UpsertRow) error {
	if len(rows) == 0 {
		return nil
	}

	args := make([]sqlc.UpsertQuoteParams, 0, len(rows))
	for _, row := range rows {
		arg, err := toUpsertQuoteParams(row)
		if err != nil {
			return infra.WrapRepoErr("failed to encode quote row", err)
		}
		args = append(args, arg)
	}

	if err := r.queries.UpsertQuotes(ctx, r.db, args); err != nil {
		return infra.WrapRepoErr("failed to upsert quote batch", err)
	}
	return nil
}

// FindRefsByUser loads the stored identity of every quote the user owns,
// keyed by origin page id.
func (r *QuoteRepository) FindRefsByUser(ctx context.Context, userID uuid.UUID) (map[string]quote.StoredRef, error) {
	rows, err := r.queries.FindQuoteRefsByUserID(ctx, r.db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load quote refs", err)
	}

	refs := make(map[string]quote.StoredRef, len(rows))
	for _, row := range rows {
		refs[row.NotionPageID] = quote.StoredRef{ID: row.ID, ShareToken: row.ShareID}
	}
	return refs, nil
}

func (r *QuoteRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]queries.QuoteSummaryView, error) {
	rows, err := r.queries.ListQuotesByUserID(ctx, r.db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list quotes", err)
	}

	views := make([]queries.QuoteSummaryView, 0, len(rows))
	for _, row := range rows {
		view, err := toQuoteSummaryView(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert quote row", err)
		}
		views = append(views, view)
	}
	return views, nil
}

func (r *QuoteRepository) FindByID(ctx context.Context, id uuid.UUID) (*queries.QuoteDetailView, error) {
	row, err := r.queries.FindQuoteByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("quote not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find quote by ID", err)
	}
	return toQuoteDetailView(row)
}

func (r *QuoteRepository) FindByShareID(ctx context.Context, shareID string) (*queries.QuoteDetailView, error) {
	row, err := r.queries.FindQuoteByShareID(ctx, r.db, shareID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("quote not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find quote by share id", err)
	}
	return toQuoteDetailView(row)
}

func (r *QuoteRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status quote.Status) error {
	err := r.queries.UpdateQuoteStatus(ctx, r.db, sqlc.UpdateQuoteStatusParams{ID: id, Status: string(status)})
	if err != nil {
		return infra.WrapRepoErr("failed to update quote status", err)
	}
	return nil
}

func (r *QuoteRepository) UpdateShareID(ctx context.Context, id uuid.UUID, shareID string) error {
	err := r.queries.UpdateQuoteShareID(ctx, r.db, sqlc.UpdateQuoteShareIDParams{ID: id, ShareID: shareID})
	if err != nil {
		return infra.WrapRepoErr("failed to update quote share id", err)
	}
	return nil
}

func (r *QuoteRepository) UpdateSentInfo(ctx context.Context, id uuid.UUID, arg sqlc.UpdateQuoteSentInfoParams) error {
	arg.ID = id
	if err := r.queries.UpdateQuoteSentInfo(ctx, r.db, arg); err != nil {
		return infra.WrapRepoErr("failed to update quote sent info", err)
	}
	return nil
}

func (r *QuoteRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	count, err := r.queries.CountQuotesByUserID(ctx, r.db, userID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count quotes", err)
	}
	return count, nil
}

func toUpsertQuoteParams(row quote.UpsertRow) (sqlc.UpsertQuoteParams, error) {
	items, err := json.Marshal(row.Items)
	if err != nil {
		return sqlc.UpsertQuoteParams{}, err
	}

	amount, err := pgconv.Float64ToNumeric(row.TotalAmount)
	if err != nil {
		return sqlc.UpsertQuoteParams{}, err
	}

	return sqlc.UpsertQuoteParams{
		ID:            row.ID,
		UserID:        row.UserID,
		NotionPageID:  row.NotionPageID,
		QuoteNumber:   row.QuoteNumber,
		ClientName:    row.ClientName,
		ClientContact: pgconv.StringPtrToPgtype(row.ClientContact),
		ClientPhone:   pgconv.StringPtrToPgtype(row.ClientPhone),
		ClientEmail:   pgconv.StringPtrToPgtype(row.ClientEmail),
		Items:         items,
		TotalAmount:   amount,
		IssueDate:     pgconv.DateToPgtype(row.IssueDate),
		ValidUntil:    pgconv.DatePtrToPgtype(row.ValidUntil),
		Notes:         pgconv.StringPtrToPgtype(row.Notes),
		ShareID:       row.ShareToken,
		Status:        string(row.Status),
		UpdatedAt:     pgconv.TimeToPgtype(row.UpdatedAt),
	}, nil
}

func toQuoteSummaryView(row sqlc.Quotes) (queries.QuoteSummaryView, error) {
	amount, err := pgconv.Float64FromNumeric(row.TotalAmount)
	if err != nil {
		return queries.QuoteSummaryView{}, err
	}

	return queries.QuoteSummaryView{
		ID:          row.ID,
		QuoteNumber: row.QuoteNumber,
		ClientName:  row.ClientName,
		TotalAmount: amount,
		IssueDate:   pgconv.DateFromPgtype(row.IssueDate),
		ValidUntil:  pgconv.DatePtrFromPgtype(row.ValidUntil),
		Status:      quote.Status(row.Status),
		ShareID:     row.ShareID,
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
	}, nil
}

func toQuoteDetailView(row sqlc.Quotes) (*queries.QuoteDetailView, error) {
	amount, err := pgconv.Float64FromNumeric(row.TotalAmount)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert quote amount", err)
	}

	items := []quote.Item{}
	if len(row.Items) > 0 {
		if err := json.Unmarshal(row.Items, &items); err != nil {
			return nil, infra.WrapRepoErr("failed to decode quote items", err)
		}
	}

	return &queries.QuoteDetailView{
		ID:            row.ID,
		UserID:        row.UserID,
		NotionPageID:  row.NotionPageID,
		QuoteNumber:   row.QuoteNumber,
		ClientName:    row.ClientName,
		ClientContact: pgconv.StringPtrFromPgtype(row.ClientContact),
		ClientPhone:   pgconv.StringPtrFromPgtype(row.ClientPhone),
		ClientEmail:   pgconv.StringPtrFromPgtype(row.ClientEmail),
		Items:         items,
		TotalAmount:   amount,
		IssueDate:     pgconv.DateFromPgtype(row.IssueDate),
		ValidUntil:    pgconv.DatePtrFromPgtype(row.ValidUntil),
		Notes:         pgconv.StringPtrFromPgtype(row.Notes),
		ShareID:       row.ShareID,
		Status:        quote.Status(row.Status),
		SentAt:        pgconv.TimePtrFromPgtype(row.SentAt),
		SentTo:        pgconv.StringPtrFromPgtype(row.SentTo),
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:     pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

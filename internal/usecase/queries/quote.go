package queries

import (
	"context"
	"strings"

	"quoteshare/internal/infra"
	"quoteshare/internal/pkg/errs"
	"quoteshare/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrQuoteAccess = errs.New("quote access denied")

type QuoteQueries interface {
	ListQuotes(ctx context.Context, ownerID uuid.UUID) ([]QuoteSummaryView, error)
	GetQuote(ctx context.Context, ownerID, quoteID uuid.UUID) (*QuoteDetailView, error)
	GetSyncStatus(ctx context.Context, ownerID uuid.UUID) (*SyncStatusView, error)
	GetNotionSettings(ctx context.Context, ownerID uuid.UUID) (*NotionSettingsView, error)
}

type QuoteReadStore interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]QuoteSummaryView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*QuoteDetailView, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}

type SettingsReadStore interface {
	NotionSettings(ctx context.Context, id uuid.UUID) (*shared.NotionSettingsSnapshot, error)
}

type quoteQueriesImpl struct {
	quotes   QuoteReadStore
	settings SettingsReadStore
}

func NewQuoteQueries(quotes QuoteReadStore, settings SettingsReadStore) QuoteQueries {
	return &quoteQueriesImpl{
		quotes:   quotes,
		settings: settings,
	}
}

func (q *quoteQueriesImpl) ListQuotes(ctx context.Context, ownerID uuid.UUID) ([]QuoteSummaryView, error) {
	return q.quotes.ListByUser(ctx, ownerID)
}

func (q *quoteQueriesImpl) GetQuote(ctx context.Context, ownerID, quoteID uuid.UUID) (*QuoteDetailView, error) {
	detail, err := q.quotes.FindByID(ctx, quoteID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrQuoteNotFound
		}
		return nil, err
	}
	if detail.UserID != ownerID {
		return nil, ErrQuoteAccess
	}
	return detail, nil
}

func (q *quoteQueriesImpl) GetSyncStatus(ctx context.Context, ownerID uuid.UUID) (*SyncStatusView, error) {
	settings, err := q.settings.NotionSettings(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	count, err := q.quotes.CountByUser(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	return &SyncStatusView{
		Connected:  settings.Configured(),
		LastSyncAt: settings.LastSyncAt,
		QuoteCount: count,
	}, nil
}

func (q *quoteQueriesImpl) GetNotionSettings(ctx context.Context, ownerID uuid.UUID) (*NotionSettingsView, error) {
	settings, err := q.settings.NotionSettings(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	view := &NotionSettingsView{
		Connected:  settings.Configured(),
		LastSyncAt: settings.LastSyncAt,
	}
	if settings.DatabaseID != nil {
		view.DatabaseID = *settings.DatabaseID
	}
	if settings.Configured() {
		view.APIKeyMasked = maskAPIKey()
	}
	return view, nil
}

// maskAPIKey never derives anything from the stored key; the placeholder only
// signals that a key exists.
func maskAPIKey() string {
	return strings.Repeat("•", 12)
}

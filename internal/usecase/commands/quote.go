package commands

import (
	"context"
	"log/slog"

	"quoteshare/internal/domain/quote"
	"quoteshare/internal/infra"
	"quoteshare/internal/pkg/config"
	"quoteshare/internal/pkg/errs"
	"quoteshare/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrQuoteAccessDenied = errs.New("quote access denied")
	ErrInvalidStatus     = errs.New("invalid quote status")
)

// QuoteReader is the read slice of quote storage the commands need.
type QuoteReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*queries.QuoteDetailView, error)
	FindByShareID(ctx context.Context, shareID string) (*queries.QuoteDetailView, error)
}

// StatusUpdateResult reports a status change plus the outcome of the
// best-effort source write-back.
type StatusUpdateResult struct {
	Status        quote.Status `json:"status"`
	NotionUpdated bool         `json:"notion_updated"`
	Warning       string       `json:"warning,omitempty"`
}

type QuoteCommands interface {
	RegenerateShareToken(ctx context.Context, ownerID, quoteID uuid.UUID) (string, error)
	UpdateStatus(ctx context.Context, ownerID, quoteID uuid.UUID, status quote.Status) (*StatusUpdateResult, error)
	ViewShared(ctx context.Context, shareID string) (*queries.SharedQuoteView, error)
}

type quoteCommandsImpl struct {
	reader QuoteStore
	users  UserRepository
	writer StatusWriter
	cipher Cipher
	cfg    config.NotionConfig
	logger *slog.Logger
}

// QuoteStore bundles the read and write slices a single aggregate operation
// touches.
type QuoteStore interface {
	QuoteReader
	QuoteRepository
}

func NewQuoteCommands(
	quotes QuoteStore,
	users UserRepository,
	writer StatusWriter,
	cipher Cipher,
	cfg config.NotionConfig,
	logger *slog.Logger,
) QuoteCommands {
	if logger == nil {
		logger = slog.Default()
	}
	return &quoteCommandsImpl{
		reader: quotes,
		users:  users,
		writer: writer,
		cipher: cipher,
		cfg:    cfg,
		logger: logger,
	}
}

// RegenerateShareToken replaces the quote's share token. This is the only
// operation that ever changes it; the old link stops working immediately.
func (q *quoteCommandsImpl) RegenerateShareToken(ctx context.Context, ownerID, quoteID uuid.UUID) (string, error) {
	detail, err := q.ownedQuote(ctx, ownerID, quoteID)
	if err != nil {
		return "", err
	}

	token := quote.NewShareToken()
	if err := q.reader.UpdateShareID(ctx, detail.ID, token); err != nil {
		return "", err
	}

	q.logger.Info("share token regenerated", "quote_id", quoteID)
	return token, nil
}

// UpdateStatus changes the quote's status and mirrors it to the source
// database best-effort: a write-back failure surfaces as a warning, never as
// a failed operation.
func (q *quoteCommandsImpl) UpdateStatus(ctx context.Context, ownerID, quoteID uuid.UUID, status quote.Status) (*StatusUpdateResult, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	detail, err := q.ownedQuote(ctx, ownerID, quoteID)
	if err != nil {
		return nil, err
	}

	if err := q.reader.UpdateStatus(ctx, detail.ID, status); err != nil {
		return nil, err
	}

	result := &StatusUpdateResult{Status: status}
	q.writeBack(ctx, ownerID, detail.NotionPageID, status, result)
	return result, nil
}

// ViewShared renders a quote through its public share link. The first view of
// a draft or freshly sent quote flips it to VIEWED, mirrored to the source.
func (q *quoteCommandsImpl) ViewShared(ctx context.Context, shareID string) (*queries.SharedQuoteView, error) {
	detail, err := q.reader.FindByShareID(ctx, shareID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrQuoteNotFound
		}
		return nil, err
	}

	if detail.Status == quote.StatusDraft || detail.Status == quote.StatusSent {
		if err := q.reader.UpdateStatus(ctx, detail.ID, quote.StatusViewed); err != nil {
			q.logger.Warn("failed to mark quote viewed", "quote_id", detail.ID, "error", err.Error())
		} else {
			detail.Status = quote.StatusViewed
			q.writeBack(ctx, detail.UserID, detail.NotionPageID, quote.StatusViewed, nil)
		}
	}

	return &queries.SharedQuoteView{
		QuoteNumber:   detail.QuoteNumber,
		ClientName:    detail.ClientName,
		ClientContact: detail.ClientContact,
		Items:         detail.Items,
		TotalAmount:   detail.TotalAmount,
		IssueDate:     detail.IssueDate,
		ValidUntil:    detail.ValidUntil,
		Notes:         detail.Notes,
		Status:        detail.Status,
	}, nil
}

func (q *quoteCommandsImpl) ownedQuote(ctx context.Context, ownerID, quoteID uuid.UUID) (*queries.QuoteDetailView, error) {
	detail, err := q.reader.FindByID(ctx, quoteID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrQuoteNotFound
		}
		return nil, err
	}
	if detail.UserID != ownerID {
		return nil, ErrQuoteAccessDenied
	}
	return detail, nil
}

// writeBack mirrors a status change to the source database. result may be nil
// for fire-and-forget callers.
func (q *quoteCommandsImpl) writeBack(ctx context.Context, ownerID uuid.UUID, pageID string, status quote.Status, result *StatusUpdateResult) {
	apiKey, err := q.resolveAPIKey(ctx, ownerID)
	if err != nil {
		q.logger.Warn("skipping notion write-back", "page_id", pageID, "error", err.Error())
		if result != nil {
			result.Warning = "노션 연동이 설정되지 않아 노션에는 반영되지 않았습니다."
		}
		return
	}

	updated := q.writer.UpdateStatus(ctx, apiKey, pageID, status, "")
	if result == nil {
		return
	}
	result.NotionUpdated = updated.Success
	if !updated.Success {
		result.Warning = updated.Error
	}
}

func (q *quoteCommandsImpl) resolveAPIKey(ctx context.Context, ownerID uuid.UUID) (string, error) {
	if q.cfg.HasEnvCredentials() {
		return q.cfg.APIKey, nil
	}

	settings, err := q.users.NotionSettings(ctx, ownerID)
	if err != nil {
		return "", err
	}
	if !settings.Configured() {
		return "", errs.ErrNotionNotConfigured
	}
	return q.cipher.Decrypt(*settings.APIKeyCiphertext)
}

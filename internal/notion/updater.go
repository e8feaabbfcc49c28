package notion

import (
	"context"
	"errors"
	"log/slog"

	"quoteshare/internal/domain/quote"
)

// UpdateStatusResult is the per-page outcome of a status write-back.
type UpdateStatusResult struct {
	PageID  string
	Success bool
	Error   string
}

// Updater writes quote statuses back to the source database. Write-backs are
// best-effort: callers log failures and keep going, they never roll back the
// quote-side change.
type Updater struct {
	client  *Client
	limiter *Limiter
	logger  *slog.Logger
}

func NewUpdater(client *Client, limiter *Limiter, logger *slog.Logger) *Updater {
	if logger == nil {
		logger = slog.Default()
	}
	return &Updater{client: client, limiter: limiter, logger: logger}
}

// UpdateStatus sets the page's status select property to the canonical label
// for status. Option/property mismatches are validation errors and are not
// retried.
func (u *Updater) UpdateStatus(ctx context.Context, apiKey, pageID string, status quote.Status, propertyName string) UpdateStatusResult {
	if propertyName == "" {
		propertyName = StatusPropertyName
	}
	label := quote.NotionLabel(status)

	err := u.limiter.Execute(ctx, func(ctx context.Context) error {
		return u.client.UpdatePageSelect(ctx, apiKey, pageID, propertyName, label)
	})
	if err == nil {
		u.logger.Info("notion status updated", "page_id", pageID, "status", label)
		return UpdateStatusResult{PageID: pageID, Success: true}
	}

	u.logger.Warn("notion status update failed", "page_id", pageID, "error", err.Error())
	return UpdateStatusResult{PageID: pageID, Error: describeUpdateError(err, propertyName)}
}

// UpdateStatuses applies a batch of write-backs sequentially; the limiter
// paces each one.
func (u *Updater) UpdateStatuses(ctx context.Context, apiKey string, updates map[string]quote.Status, propertyName string) []UpdateStatusResult {
	results := make([]UpdateStatusResult, 0, len(updates))
	for pageID, status := range updates {
		results = append(results, u.UpdateStatus(ctx, apiKey, pageID, status, propertyName))
	}
	return results
}

func describeUpdateError(err error, propertyName string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case CodeUnauthorized, CodeRestrictedResource:
			return "노션 Integration에 페이지 수정 권한이 없습니다. 노션 설정에서 'Update content' 권한을 확인해주세요."
		case CodeValidationError:
			return "노션 데이터베이스에 '" + propertyName + "' 속성이 없거나, 해당 상태값이 Select 옵션에 없습니다."
		}
	}
	return err.Error()
}

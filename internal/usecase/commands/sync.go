package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"quoteshare/internal/domain/quote"
	"quoteshare/internal/notion"
	"quoteshare/internal/pkg/clock"
	"quoteshare/internal/pkg/config"
	"quoteshare/internal/pkg/errs"
	"quoteshare/internal/usecase/shared"

	"github.com/google/uuid"
)

// SyncResult is the caller-facing outcome of one sync run. Message is a
// user-facing Korean summary; systemic failures carry success=false and an
// error description instead of bubbling an error to the handler.
type SyncResult struct {
	Success      bool      `json:"success"`
	Message      string    `json:"message"`
	NewCount     int       `json:"new_count"`
	UpdatedCount int       `json:"updated_count"`
	// DeletedCount is always zero: rows absent from the source stay in place.
	DeletedCount int       `json:"deleted_count"`
	TotalCount   int       `json:"total_count"`
	Errors       []string  `json:"errors,omitempty"`
	SyncedAt     time.Time `json:"synced_at"`
}

type SyncCommands interface {
	Run(ctx context.Context, ownerID uuid.UUID, force bool) *SyncResult
}

type syncCommandsImpl struct {
	users   UserRepository
	quotes  QuoteRepository
	fetcher PageFetcher
	cipher  Cipher
	clock   clock.Clock
	cfg     config.NotionConfig
	syncCfg config.SyncConfig
	logger  *slog.Logger

	mu       sync.Mutex
	inFlight map[uuid.UUID]bool
}

func NewSyncCommands(
	users UserRepository,
	quotes QuoteRepository,
	fetcher PageFetcher,
	cipher Cipher,
	clk clock.Clock,
	cfg config.NotionConfig,
	syncCfg config.SyncConfig,
	logger *slog.Logger,
) SyncCommands {
	if logger == nil {
		logger = slog.Default()
	}
	return &syncCommandsImpl{
		users:    users,
		quotes:   quotes,
		fetcher:  fetcher,
		cipher:   cipher,
		clock:    clk,
		cfg:      cfg,
		syncCfg:  syncCfg,
		logger:   logger,
		inFlight: make(map[uuid.UUID]bool),
	}
}

// Run executes one full sync pass for the owner. It never propagates a panic
// or an error: every failure mode is folded into the result.
func (s *syncCommandsImpl) Run(ctx context.Context, ownerID uuid.UUID, force bool) (result *SyncResult) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("sync panicked", "user_id", ownerID, "panic", fmt.Sprint(r))
			result = s.failed("동기화 중 오류가 발생했습니다.")
		}
	}()

	if !s.acquire(ownerID) {
		return s.failed("이미 동기화가 진행 중입니다.")
	}
	defer s.release(ownerID)

	settings, err := s.users.NotionSettings(ctx, ownerID)
	if err != nil {
		s.logger.Error("failed to load notion settings", "user_id", ownerID, "error", err.Error())
		return s.failed("노션 설정을 불러오지 못했습니다.")
	}

	creds, lastSyncAt, err := s.resolveCredentials(settings)
	if err != nil {
		s.logger.Warn("sync requested without configuration", "user_id", ownerID, "error", err.Error())
		return s.failed("노션 연동이 설정되지 않았습니다. 설정에서 API 키와 데이터베이스 ID를 등록해주세요.")
	}

	opts := notion.FetchOptions{PageSize: s.syncCfg.PageSize}
	if s.syncCfg.Incremental && !force && lastSyncAt != nil {
		opts.ModifiedSince = lastSyncAt
	}

	fetched, err := s.fetcher.FetchAll(ctx, creds, opts)
	if err != nil {
		s.logger.Error("notion fetch failed", "user_id", ownerID, "error", err.Error())
		return s.failed(describeFetchError(err))
	}

	now := s.clock.Now()

	if len(fetched.Pages) == 0 {
		if err := s.users.UpdateLastSyncAt(ctx, ownerID, now); err != nil {
			s.logger.Warn("failed to record sync time", "user_id", ownerID, "error", err.Error())
		}
		return &SyncResult{Success: true, Message: "동기화할 견적서가 없습니다.", SyncedAt: now}
	}

	inputs := make([]quote.CanonicalInput, 0, len(fetched.Pages))
	var recordErrors []string
	for _, page := range fetched.Pages {
		input, err := notion.MapPage(page, ownerID, notion.DefaultMapping, now)
		if err != nil {
			s.logger.Warn("skipping unusable record", "user_id", ownerID, "page_id", page.ID, "error", err.Error())
			recordErrors = append(recordErrors, page.ID+": "+err.Error())
			continue
		}
		inputs = append(inputs, input)
	}

	existing, err := s.quotes.FindRefsByUser(ctx, ownerID)
	if err != nil {
		s.logger.Error("failed to load existing quotes", "user_id", ownerID, "error", err.Error())
		return s.failed("기존 견적서를 불러오지 못했습니다.")
	}

	reconciled := quote.Reconcile(inputs, existing, now)

	if err := s.quotes.UpsertBatch(ctx, reconciled.Batch); err != nil {
		s.logger.Error("failed to store quotes", "user_id", ownerID, "error", err.Error())
		return s.failed("견적서 저장에 실패했습니다.")
	}

	if err := s.users.UpdateLastSyncAt(ctx, ownerID, now); err != nil {
		s.logger.Warn("failed to record sync time", "user_id", ownerID, "error", err.Error())
	}

	s.logger.Info("sync completed",
		"user_id", ownerID,
		"total", len(reconciled.Batch),
		"new", reconciled.NewCount,
		"updated", reconciled.UpdatedCount,
	)

	return &SyncResult{
		Success:      true,
		Message:      summaryMessage(reconciled.NewCount, reconciled.UpdatedCount),
		NewCount:     reconciled.NewCount,
		UpdatedCount: reconciled.UpdatedCount,
		TotalCount:   len(reconciled.Batch),
		Errors:       recordErrors,
		SyncedAt:     now,
	}
}

// resolveCredentials prefers process-level environment credentials; otherwise
// the owner's stored settings are decrypted.
func (s *syncCommandsImpl) resolveCredentials(settings *shared.NotionSettingsSnapshot) (notion.Credentials, *time.Time, error) {
	if s.cfg.HasEnvCredentials() {
		return notion.Credentials{APIKey: s.cfg.APIKey, DatabaseID: s.cfg.DatabaseID}, settings.LastSyncAt, nil
	}

	if !settings.Configured() {
		return notion.Credentials{}, nil, errs.ErrNotionNotConfigured
	}

	apiKey, err := s.cipher.Decrypt(*settings.APIKeyCiphertext)
	if err != nil {
		return notion.Credentials{}, nil, err
	}

	return notion.Credentials{APIKey: apiKey, DatabaseID: *settings.DatabaseID}, settings.LastSyncAt, nil
}

func (s *syncCommandsImpl) acquire(ownerID uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inFlight[ownerID] {
		return false
	}
	s.inFlight[ownerID] = true
	return true
}

func (s *syncCommandsImpl) release(ownerID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, ownerID)
}

func (s *syncCommandsImpl) failed(message string) *SyncResult {
	return &SyncResult{Success: false, Message: message, SyncedAt: s.clock.Now()}
}

func summaryMessage(newCount, updatedCount int) string {
	if newCount == 0 && updatedCount == 0 {
		return "변경 사항 없음"
	}
	return fmt.Sprintf("동기화 완료: %d개 추가, %d개 업데이트", newCount, updatedCount)
}

func describeFetchError(err error) string {
	if notion.IsRateLimited(err) {
		return "노션 API 요청 한도를 초과했습니다. 잠시 후 다시 시도해주세요."
	}

	var apiErr *notion.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case notion.CodeUnauthorized:
			return "노션 API 키가 올바르지 않습니다."
		case notion.CodeObjectNotFound:
			return "노션 데이터베이스를 찾을 수 없습니다. 데이터베이스 ID와 공유 설정을 확인해주세요."
		}
	}
	return "노션에서 견적서를 가져오지 못했습니다."
}

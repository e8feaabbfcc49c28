package commands

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"quoteshare/internal/notion"
	"quoteshare/internal/pkg/config"
	"quoteshare/internal/pkg/errs"

	"github.com/google/uuid"
)

// TestConnectionResult is the user-facing outcome of a connection probe.
type TestConnectionResult struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	DatabaseName string `json:"database_name,omitempty"`
}

type SettingsCommands interface {
	Update(ctx context.Context, ownerID uuid.UUID, apiKey, databaseID string) error
	TestConnection(ctx context.Context, ownerID uuid.UUID, apiKey, databaseID string) (*TestConnectionResult, error)
}

type settingsCommandsImpl struct {
	users   UserRepository
	fetcher PageFetcher
	cipher  Cipher
	cfg     config.NotionConfig
	logger  *slog.Logger
}

func NewSettingsCommands(users UserRepository, fetcher PageFetcher, cipher Cipher, cfg config.NotionConfig, logger *slog.Logger) SettingsCommands {
	if logger == nil {
		logger = slog.Default()
	}
	return &settingsCommandsImpl{
		users:   users,
		fetcher: fetcher,
		cipher:  cipher,
		cfg:     cfg,
		logger:  logger,
	}
}

// Update validates and stores one user's integration credentials. The API key
// is sealed before it touches storage; the database id accepts either a raw
// id or a full Notion URL.
func (s *settingsCommandsImpl) Update(ctx context.Context, ownerID uuid.UUID, apiKey, databaseID string) error {
	apiKey = strings.TrimSpace(apiKey)
	if !notion.IsValidAPIKeyFormat(apiKey) {
		return errs.ErrInvalidAPIKeyFormat
	}

	databaseID, err := normalizeDatabaseID(databaseID)
	if err != nil {
		return err
	}

	ciphertext, err := s.cipher.Encrypt(apiKey)
	if err != nil {
		return errs.Wrap(err, "failed to seal api key")
	}

	if err := s.users.UpdateNotionSettings(ctx, ownerID, ciphertext, databaseID); err != nil {
		return err
	}

	s.logger.Info("notion settings updated", "user_id", ownerID)
	return nil
}

// TestConnection probes the database with the given credentials; empty
// arguments fall back to the stored (or environment) configuration.
func (s *settingsCommandsImpl) TestConnection(ctx context.Context, ownerID uuid.UUID, apiKey, databaseID string) (*TestConnectionResult, error) {
	creds, err := s.resolveProbeCredentials(ctx, ownerID, apiKey, databaseID)
	if err != nil {
		return nil, err
	}

	info, err := s.fetcher.TestConnection(ctx, creds)
	if err != nil {
		s.logger.Warn("notion connection test failed", "user_id", ownerID, "error", err.Error())
		return &TestConnectionResult{Success: false, Message: describeConnectionError(err)}, nil
	}

	return &TestConnectionResult{
		Success:      true,
		Message:      "노션 데이터베이스에 연결되었습니다.",
		DatabaseName: info.DatabaseName,
	}, nil
}

func (s *settingsCommandsImpl) resolveProbeCredentials(ctx context.Context, ownerID uuid.UUID, apiKey, databaseID string) (notion.Credentials, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey != "" && databaseID != "" {
		normalized, err := normalizeDatabaseID(databaseID)
		if err != nil {
			return notion.Credentials{}, err
		}
		return notion.Credentials{APIKey: apiKey, DatabaseID: normalized}, nil
	}

	if s.cfg.HasEnvCredentials() {
		return notion.Credentials{APIKey: s.cfg.APIKey, DatabaseID: s.cfg.DatabaseID}, nil
	}

	settings, err := s.users.NotionSettings(ctx, ownerID)
	if err != nil {
		return notion.Credentials{}, err
	}
	if !settings.Configured() {
		return notion.Credentials{}, errs.ErrNotionNotConfigured
	}

	storedKey, err := s.cipher.Decrypt(*settings.APIKeyCiphertext)
	if err != nil {
		return notion.Credentials{}, errs.Wrap(err, "failed to open stored api key")
	}
	return notion.Credentials{APIKey: storedKey, DatabaseID: *settings.DatabaseID}, nil
}

func normalizeDatabaseID(databaseID string) (string, error) {
	databaseID = strings.TrimSpace(databaseID)

	if strings.HasPrefix(databaseID, "http://") || strings.HasPrefix(databaseID, "https://") {
		extracted := notion.ExtractDatabaseIDFromURL(databaseID)
		if extracted == "" {
			return "", errs.ErrInvalidDatabaseIDFormat
		}
		databaseID = extracted
	}

	if !notion.IsValidDatabaseIDFormat(databaseID) {
		return "", errs.ErrInvalidDatabaseIDFormat
	}
	return notion.FormatDatabaseID(databaseID), nil
}

func describeConnectionError(err error) string {
	var apiErr *notion.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case notion.CodeUnauthorized:
			return "API 키가 올바르지 않습니다."
		case notion.CodeObjectNotFound:
			return "데이터베이스를 찾을 수 없습니다. Integration에 데이터베이스가 공유되어 있는지 확인해주세요."
		case notion.CodeRateLimited:
			return "요청 한도를 초과했습니다. 잠시 후 다시 시도해주세요."
		}
	}
	return "노션에 연결할 수 없습니다."
}

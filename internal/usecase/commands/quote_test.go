//go:build unit

package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"quoteshare/internal/domain/quote"
	"quoteshare/internal/infra"
	"quoteshare/internal/notion"
	"quoteshare/internal/pkg/config"
	"quoteshare/internal/pkg/errs"
	"quoteshare/internal/usecase/commands"
	"quoteshare/internal/usecase/queries"
	"quoteshare/internal/usecase/shared"
	commandsmock "quoteshare/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type quoteFixture struct {
	store  *commandsmock.MockQuoteStore
	users  *commandsmock.MockUserRepository
	writer *commandsmock.MockStatusWriter
	cipher *commandsmock.MockCipher
}

func newQuoteCommands(ctrl *gomock.Controller, cfg config.NotionConfig) (commands.QuoteCommands, *quoteFixture) {
	f := &quoteFixture{
		store:  commandsmock.NewMockQuoteStore(ctrl),
		users:  commandsmock.NewMockUserRepository(ctrl),
		writer: commandsmock.NewMockStatusWriter(ctrl),
		cipher: commandsmock.NewMockCipher(ctrl),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cmds := commands.NewQuoteCommands(f.store, f.users, f.writer, f.cipher, cfg, logger)
	return cmds, f
}

func envNotionConfig() config.NotionConfig {
	return config.NotionConfig{APIKey: "ntn_envkey", DatabaseID: "11111111-2222-3333-4444-555555555555"}
}

func quoteDetail(owner uuid.UUID, status quote.Status) *queries.QuoteDetailView {
	return &queries.QuoteDetailView{
		ID:           uuid.New(),
		UserID:       owner,
		NotionPageID: "page-1",
		QuoteNumber:  "Q-2024-001",
		ClientName:   "에이컴퍼니",
		TotalAmount:  1500000,
		ShareID:      "abcdef0123456789",
		Status:       status,
	}
}

func notFoundErr() error {
	return infra.WrapRepoErr("quote not found", assert.AnError, infra.KindNotFound)
}

func TestQuoteCommands_RegenerateShareToken(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()

	t.Run("success: issues a fresh token and stores it", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		cmds, f := newQuoteCommands(ctrl, config.NotionConfig{})
		detail := quoteDetail(owner, quote.StatusSent)

		var stored string
		f.store.EXPECT().FindByID(ctx, detail.ID).Return(detail, nil)
		f.store.EXPECT().UpdateShareID(ctx, detail.ID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, shareID string) error {
				stored = shareID
				return nil
			})

		token, err := cmds.RegenerateShareToken(ctx, owner, detail.ID)

		require.NoError(t, err)
		assert.Equal(t, stored, token)
		assert.Len(t, token, quote.ShareTokenLength)
		assert.NotEqual(t, detail.ShareID, token)
	})

	t.Run("error: unknown quote", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		cmds, f := newQuoteCommands(ctrl, config.NotionConfig{})
		quoteID := uuid.New()

		f.store.EXPECT().FindByID(ctx, quoteID).Return(nil, notFoundErr())

		_, err := cmds.RegenerateShareToken(ctx, owner, quoteID)
		assert.ErrorIs(t, err, errs.ErrQuoteNotFound)
	})

	t.Run("error: quote owned by someone else", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		cmds, f := newQuoteCommands(ctrl, config.NotionConfig{})
		detail := quoteDetail(uuid.New(), quote.StatusSent)

		f.store.EXPECT().FindByID(ctx, detail.ID).Return(detail, nil)

		_, err := cmds.RegenerateShareToken(ctx, owner, detail.ID)
		assert.ErrorIs(t, err, commands.ErrQuoteAccessDenied)
	})
}

func TestQuoteCommands_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()

	t.Run("error: unknown status value", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		cmds, _ := newQuoteCommands(ctrl, config.NotionConfig{})

		_, err := cmds.UpdateStatus(ctx, owner, uuid.New(), quote.Status("SHIPPED"))
		assert.ErrorIs(t, err, commands.ErrInvalidStatus)
	})

	t.Run("success: status stored and mirrored to the source", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		cmds, f := newQuoteCommands(ctrl, envNotionConfig())
		detail := quoteDetail(owner, quote.StatusSent)

		f.store.EXPECT().FindByID(ctx, detail.ID).Return(detail, nil)
		f.store.EXPECT().UpdateStatus(ctx, detail.ID, quote.StatusApproved).Return(nil)
		f.writer.EXPECT().UpdateStatus(ctx, "ntn_envkey", detail.NotionPageID, quote.StatusApproved, "").
			Return(notion.UpdateStatusResult{PageID: detail.NotionPageID, Success: true})

		result, err := cmds.UpdateStatus(ctx, owner, detail.ID, quote.StatusApproved)

		require.NoError(t, err)
		assert.Equal(t, quote.StatusApproved, result.Status)
		assert.True(t, result.NotionUpdated)
		assert.Empty(t, result.Warning)
	})

	t.Run("success with warning: no integration configured for write-back", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		cmds, f := newQuoteCommands(ctrl, config.NotionConfig{})
		detail := quoteDetail(owner, quote.StatusSent)

		f.store.EXPECT().FindByID(ctx, detail.ID).Return(detail, nil)
		f.store.EXPECT().UpdateStatus(ctx, detail.ID, quote.StatusRejected).Return(nil)
		f.users.EXPECT().NotionSettings(ctx, owner).Return(&shared.NotionSettingsSnapshot{}, nil)

		result, err := cmds.UpdateStatus(ctx, owner, detail.ID, quote.StatusRejected)

		require.NoError(t, err)
		assert.Equal(t, quote.StatusRejected, result.Status)
		assert.False(t, result.NotionUpdated)
		assert.Equal(t, "노션 연동이 설정되지 않아 노션에는 반영되지 않았습니다.", result.Warning)
	})

	t.Run("success with warning: source rejected the write-back", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		cmds, f := newQuoteCommands(ctrl, envNotionConfig())
		detail := quoteDetail(owner, quote.StatusSent)

		f.store.EXPECT().FindByID(ctx, detail.ID).Return(detail, nil)
		f.store.EXPECT().UpdateStatus(ctx, detail.ID, quote.StatusCompleted).Return(nil)
		f.writer.EXPECT().UpdateStatus(ctx, "ntn_envkey", detail.NotionPageID, quote.StatusCompleted, "").
			Return(notion.UpdateStatusResult{PageID: detail.NotionPageID, Success: false, Error: "page archived"})

		result, err := cmds.UpdateStatus(ctx, owner, detail.ID, quote.StatusCompleted)

		require.NoError(t, err)
		assert.False(t, result.NotionUpdated)
		assert.Equal(t, "page archived", result.Warning)
	})

	t.Run("error: storage failure surfaces", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		cmds, f := newQuoteCommands(ctrl, envNotionConfig())
		detail := quoteDetail(owner, quote.StatusSent)

		f.store.EXPECT().FindByID(ctx, detail.ID).Return(detail, nil)
		f.store.EXPECT().UpdateStatus(ctx, detail.ID, quote.StatusApproved).Return(assert.AnError)

		_, err := cmds.UpdateStatus(ctx, owner, detail.ID, quote.StatusApproved)
		assert.Error(t, err)
	})
}

func TestQuoteCommands_ViewShared(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()

	t.Run("first view of a sent quote flips it to viewed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		cmds, f := newQuoteCommands(ctrl, envNotionConfig())
		detail := quoteDetail(owner, quote.StatusSent)

		f.store.EXPECT().FindByShareID(ctx, detail.ShareID).Return(detail, nil)
		f.store.EXPECT().UpdateStatus(ctx, detail.ID, quote.StatusViewed).Return(nil)
		f.writer.EXPECT().UpdateStatus(ctx, "ntn_envkey", detail.NotionPageID, quote.StatusViewed, "").
			Return(notion.UpdateStatusResult{PageID: detail.NotionPageID, Success: true})

		view, err := cmds.ViewShared(ctx, detail.ShareID)

		require.NoError(t, err)
		assert.Equal(t, quote.StatusViewed, view.Status)
		assert.Equal(t, detail.QuoteNumber, view.QuoteNumber)
		assert.Equal(t, detail.ClientName, view.ClientName)
	})

	t.Run("approved quote renders without a status change", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		cmds, f := newQuoteCommands(ctrl, envNotionConfig())
		detail := quoteDetail(owner, quote.StatusApproved)

		f.store.EXPECT().FindByShareID(ctx, detail.ShareID).Return(detail, nil)

		view, err := cmds.ViewShared(ctx, detail.ShareID)

		require.NoError(t, err)
		assert.Equal(t, quote.StatusApproved, view.Status)
	})

	t.Run("failed status flip degrades to the stored status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		cmds, f := newQuoteCommands(ctrl, envNotionConfig())
		detail := quoteDetail(owner, quote.StatusDraft)

		f.store.EXPECT().FindByShareID(ctx, detail.ShareID).Return(detail, nil)
		f.store.EXPECT().UpdateStatus(ctx, detail.ID, quote.StatusViewed).Return(assert.AnError)

		view, err := cmds.ViewShared(ctx, detail.ShareID)

		require.NoError(t, err)
		assert.Equal(t, quote.StatusDraft, view.Status)
	})

	t.Run("error: unknown share token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		cmds, f := newQuoteCommands(ctrl, config.NotionConfig{})

		f.store.EXPECT().FindByShareID(ctx, "0000000000000000").Return(nil, notFoundErr())

		_, err := cmds.ViewShared(ctx, "0000000000000000")
		assert.ErrorIs(t, err, errs.ErrQuoteNotFound)
	})
}

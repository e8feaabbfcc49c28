//go:build unit

package repository_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"quoteshare/internal/domain/quote"
	"quoteshare/internal/infra"
	"quoteshare/internal/infra/repository"
	"quoteshare/internal/infra/sqlc"
	"quoteshare/internal/pkg/pgconv"
	repositorymock "quoteshare/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("mockDBTX.QueryRow was called unexpectedly. Use the query mock instead.")
}

func (m *mockDBTX) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults {
	panic("mockDBTX.SendBatch was called unexpectedly. Use the query mock instead.")
}

func storedQuoteRow(t *testing.T, id, userID uuid.UUID) sqlc.Quotes {
	t.Helper()

	amount, err := pgconv.Float64ToNumeric(1500000)
	require.NoError(t, err)
	items, err := json.Marshal([]quote.Item{{Name: "디자인 작업", Quantity: 1, UnitPrice: 1500000, Amount: 1500000}})
	require.NoError(t, err)

	return sqlc.Quotes{
		ID:           id,
		UserID:       userID,
		NotionPageID: "page-1",
		QuoteNumber:  "Q-2024-001",
		ClientName:   "에이컴퍼니",
		Items:        items,
		TotalAmount:  amount,
		IssueDate:    pgconv.DateToPgtype(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)),
		ShareID:      "abcdef0123456789",
		Status:       "SENT",
		CreatedAt:    pgconv.TimeToPgtype(time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)),
		UpdatedAt:    pgconv.TimeToPgtype(time.Date(2024, 6, 2, 10, 0, 0, 0, time.UTC)),
	}
}

func TestQuoteRepository_UpsertBatch(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("success: rows converted to upsert params", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockQuoteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewQuoteRepository(mockQueries, mockDB)

		row := quote.UpsertRow{
			ID:           uuid.New(),
			UserID:       userID,
			NotionPageID: "page-1",
			QuoteNumber:  "Q-2024-001",
			ClientName:   "에이컴퍼니",
			Items:        []quote.Item{{Name: "개발", Quantity: 2, UnitPrice: 500000, Amount: 1000000}},
			TotalAmount:  1000000,
			IssueDate:    time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
			ShareToken:   "abcdef0123456789",
			Status:       quote.StatusDraft,
			UpdatedAt:    time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC),
		}

		mockQueries.EXPECT().UpsertQuotes(ctx, mockDB, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, args []sqlc.UpsertQuoteParams) error {
				require.Len(t, args, 1)
				arg := args[0]
				assert.Equal(t, row.ID, arg.ID)
				assert.Equal(t, row.NotionPageID, arg.NotionPageID)
				assert.Equal(t, "abcdef0123456789", arg.ShareID)
				assert.Equal(t, "DRAFT", arg.Status)

				var items []quote.Item
				require.NoError(t, json.Unmarshal(arg.Items, &items))
				assert.Equal(t, row.Items, items)

				amount, err := pgconv.Float64FromNumeric(arg.TotalAmount)
				require.NoError(t, err)
				assert.InDelta(t, 1000000, amount, 0.001)
				return nil
			})

		err := repo.UpsertBatch(ctx, []quote.UpsertRow{row})
		assert.NoError(t, err)
	})

	t.Run("success: empty batch touches nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockQuoteQueries(ctrl)
		repo := repository.NewQuoteRepository(mockQueries, &mockDBTX{})

		assert.NoError(t, repo.UpsertBatch(ctx, nil))
	})

	t.Run("error: database failure classified", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockQuoteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewQuoteRepository(mockQueries, mockDB)

		mockQueries.EXPECT().UpsertQuotes(ctx, mockDB, gomock.Any()).
			Return(errors.New("database connection error"))

		err := repo.UpsertBatch(ctx, []quote.UpsertRow{{ID: uuid.New(), UserID: userID, IssueDate: time.Now()}})
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestQuoteRepository_FindRefsByUser(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("success: rows keyed by origin page id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockQuoteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewQuoteRepository(mockQueries, mockDB)

		id1, id2 := uuid.New(), uuid.New()
		mockQueries.EXPECT().FindQuoteRefsByUserID(ctx, mockDB, userID).
			Return([]sqlc.FindQuoteRefsByUserIDRow{
				{NotionPageID: "page-1", ID: id1, ShareID: "1111111111111111"},
				{NotionPageID: "page-2", ID: id2, ShareID: "2222222222222222"},
			}, nil)

		refs, err := repo.FindRefsByUser(ctx, userID)

		require.NoError(t, err)
		assert.Equal(t, map[string]quote.StoredRef{
			"page-1": {ID: id1, ShareToken: "1111111111111111"},
			"page-2": {ID: id2, ShareToken: "2222222222222222"},
		}, refs)
	})

	t.Run("error: database failure classified", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockQuoteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewQuoteRepository(mockQueries, mockDB)

		mockQueries.EXPECT().FindQuoteRefsByUserID(ctx, mockDB, userID).
			Return(nil, errors.New("database connection error"))

		_, err := repo.FindRefsByUser(ctx, userID)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestQuoteRepository_FindByID(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	quoteID := uuid.New()

	t.Run("success: row converted to the detail view", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockQuoteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewQuoteRepository(mockQueries, mockDB)

		mockQueries.EXPECT().FindQuoteByID(ctx, mockDB, quoteID).
			Return(storedQuoteRow(t, quoteID, userID), nil)

		detail, err := repo.FindByID(ctx, quoteID)

		require.NoError(t, err)
		assert.Equal(t, quoteID, detail.ID)
		assert.Equal(t, userID, detail.UserID)
		assert.Equal(t, "Q-2024-001", detail.QuoteNumber)
		assert.Equal(t, quote.StatusSent, detail.Status)
		assert.InDelta(t, 1500000, detail.TotalAmount, 0.001)
		require.Len(t, detail.Items, 1)
		assert.Equal(t, "디자인 작업", detail.Items[0].Name)
	})

	t.Run("error: missing quote maps to not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockQuoteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewQuoteRepository(mockQueries, mockDB)

		mockQueries.EXPECT().FindQuoteByID(ctx, mockDB, quoteID).
			Return(sqlc.Quotes{}, pgx.ErrNoRows)

		_, err := repo.FindByID(ctx, quoteID)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestQuoteRepository_FindByShareID(t *testing.T) {
	ctx := context.Background()

	t.Run("error: unknown share id maps to not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockQuoteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewQuoteRepository(mockQueries, mockDB)

		mockQueries.EXPECT().FindQuoteByShareID(ctx, mockDB, "0000000000000000").
			Return(sqlc.Quotes{}, pgx.ErrNoRows)

		_, err := repo.FindByShareID(ctx, "0000000000000000")
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestQuoteRepository_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	quoteID := uuid.New()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockQuoteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewQuoteRepository(mockQueries, mockDB)

		mockQueries.EXPECT().UpdateQuoteStatus(ctx, mockDB, sqlc.UpdateQuoteStatusParams{ID: quoteID, Status: "APPROVED"}).
			Return(nil)

		assert.NoError(t, repo.UpdateStatus(ctx, quoteID, quote.StatusApproved))
	})

	t.Run("error: database failure classified", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockQuoteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewQuoteRepository(mockQueries, mockDB)

		mockQueries.EXPECT().UpdateQuoteStatus(ctx, mockDB, gomock.Any()).
			Return(errors.New("database connection error"))

		err := repo.UpdateStatus(ctx, quoteID, quote.StatusApproved)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

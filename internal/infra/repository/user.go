package repository

import (
	"context"
	"time"

	"quoteshare/internal/infra"
	"quoteshare/internal/infra/sqlc"
	"quoteshare/internal/pkg/pgconv"
	"quoteshare/internal/usecase/queries"
	"quoteshare/internal/usecase/shared"

	"github.com/google/uuid"
)

type UserQueries interface {
	FindUserByEmail(ctx context.Context, db sqlc.DBTX, email string) (sqlc.Users, error)
	FindUserByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Users, error)
	UpdateUserNotionSettings(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateUserNotionSettingsParams) error
	UpdateUserLastSyncAt(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateUserLastSyncAtParams) error
}

type UserRepository struct {
	queries UserQueries
	db      sqlc.DBTX
}

func NewUserRepository(queries UserQueries, db sqlc.DBTX) *UserRepository {
	return &UserRepository{
		queries: queries,
		db:      db,
	}
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	row, err := r.queries.FindUserByEmail(ctx, r.db, email)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}

	return toAuthorizedUserView(row), row.PasswordHash, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	row, err := r.queries.FindUserByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}

	return toAuthorizedUserView(row), nil
}

// NotionSettings returns the stored integration state; the API key field is
// AEAD ciphertext, decrypted only inside the sync/settings usecases.
func (r *UserRepository) NotionSettings(ctx context.Context, id uuid.UUID) (*shared.NotionSettingsSnapshot, error) {
	row, err := r.queries.FindUserByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load notion settings", err)
	}

	return &shared.NotionSettingsSnapshot{
		APIKeyCiphertext: pgconv.StringPtrFromPgtype(row.NotionApiKey),
		DatabaseID:       pgconv.StringPtrFromPgtype(row.NotionDatabaseID),
		LastSyncAt:       pgconv.TimePtrFromPgtype(row.LastSyncAt),
	}, nil
}

func (r *UserRepository) UpdateNotionSettings(ctx context.Context, id uuid.UUID, apiKeyCiphertext, databaseID string) error {
	err := r.queries.UpdateUserNotionSettings(ctx, r.db, sqlc.UpdateUserNotionSettingsParams{
		ID:               id,
		NotionApiKey:     pgconv.StringToPgtype(apiKeyCiphertext),
		NotionDatabaseID: pgconv.StringToPgtype(databaseID),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update notion settings", err)
	}
	return nil
}

func (r *UserRepository) UpdateLastSyncAt(ctx context.Context, id uuid.UUID, at time.Time) error {
	err := r.queries.UpdateUserLastSyncAt(ctx, r.db, sqlc.UpdateUserLastSyncAtParams{
		ID:         id,
		LastSyncAt: pgconv.TimeToPgtype(at),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update last sync time", err)
	}
	return nil
}

func toAuthorizedUserView(row sqlc.Users) *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:          row.ID,
		Email:       row.Email,
		CompanyName: pgconv.StringPtrFromPgtype(row.CompanyName),
	}
}

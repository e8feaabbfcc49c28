package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const findUserByEmail = `
SELECT id, email, password_hash, company_name, notion_api_key, notion_database_id,
       last_sync_at, created_at, updated_at
FROM users
WHERE email = $1
`

func (q *Queries) FindUserByEmail(ctx context.Context, db DBTX, email string) (Users, error) {
	row := db.QueryRow(ctx, findUserByEmail, email)
	var u Users
	err := row.Scan(
		&u.ID,
		&u.Email,
		&u.PasswordHash,
		&u.CompanyName,
		&u.NotionApiKey,
		&u.NotionDatabaseID,
		&u.LastSyncAt,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	return u, err
}

const findUserByID = `
SELECT id, email, password_hash, company_name, notion_api_key, notion_database_id,
       last_sync_at, created_at, updated_at
FROM users
WHERE id = $1
`

func (q *Queries) FindUserByID(ctx context.Context, db DBTX, id uuid.UUID) (Users, error) {
	row := db.QueryRow(ctx, findUserByID, id)
	var u Users
	err := row.Scan(
		&u.ID,
		&u.Email,
		&u.PasswordHash,
		&u.CompanyName,
		&u.NotionApiKey,
		&u.NotionDatabaseID,
		&u.LastSyncAt,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	return u, err
}

const updateUserNotionSettings = `
UPDATE users
SET notion_api_key = $2, notion_database_id = $3, updated_at = now()
WHERE id = $1
`

type UpdateUserNotionSettingsParams struct {
	ID               uuid.UUID
	NotionApiKey     pgtype.Text
	NotionDatabaseID pgtype.Text
}

func (q *Queries) UpdateUserNotionSettings(ctx context.Context, db DBTX, arg UpdateUserNotionSettingsParams) error {
	_, err := db.Exec(ctx, updateUserNotionSettings, arg.ID, arg.NotionApiKey, arg.NotionDatabaseID)
	return err
}

const updateUserLastSyncAt = `
UPDATE users
SET last_sync_at = $2, updated_at = now()
WHERE id = $1
`

type UpdateUserLastSyncAtParams struct {
	ID         uuid.UUID
	LastSyncAt pgtype.Timestamptz
}

func (q *Queries) UpdateUserLastSyncAt(ctx context.Context, db DBTX, arg UpdateUserLastSyncAtParams) error {
	_, err := db.Exec(ctx, updateUserLastSyncAt, arg.ID, arg.LastSyncAt)
	return err
}

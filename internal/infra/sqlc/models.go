package sqlc

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Users struct {
	ID               uuid.UUID
	Email            string
	PasswordHash     string
	CompanyName      pgtype.Text
	NotionApiKey     pgtype.Text
	NotionDatabaseID pgtype.Text
	LastSyncAt       pgtype.Timestamptz
	CreatedAt        pgtype.Timestamptz
	UpdatedAt        pgtype.Timestamptz
}

type Quotes struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	NotionPageID  string
	QuoteNumber   string
	ClientName    string
	ClientContact pgtype.Text
	ClientPhone   pgtype.Text
	ClientEmail   pgtype.Text
	Items         []byte
	TotalAmount   pgtype.Numeric
	IssueDate     pgtype.Date
	ValidUntil    pgtype.Date
	Notes         pgtype.Text
	ShareID       string
	Status        string
	SentAt        pgtype.Timestamptz
	SentTo        pgtype.Text
	CreatedAt     pgtype.Timestamptz
	UpdatedAt     pgtype.Timestamptz
}

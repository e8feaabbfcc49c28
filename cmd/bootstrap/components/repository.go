package components

import (
	"quoteshare/internal/infra/repository"
	"quoteshare/internal/infra/sqlc"
	"quoteshare/internal/usecase/commands"
	"quoteshare/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewSQLQueries,
		NewDBTX,
		func(q *sqlc.Queries) repository.UserQueries { return q },
		func(q *sqlc.Queries) repository.QuoteQueries { return q },
		repository.NewUserRepository,
		repository.NewQuoteRepository,
		// One concrete repository serves several usecase-side ports.
		func(r *repository.UserRepository) commands.UserRepository { return r },
		func(r *repository.UserRepository) commands.AuthUserReader { return r },
		func(r *repository.UserRepository) queries.UserReadStore { return r },
		func(r *repository.UserRepository) queries.SettingsReadStore { return r },
		func(r *repository.QuoteRepository) commands.QuoteStore { return r },
		func(r *repository.QuoteRepository) commands.QuoteRepository { return r },
		func(r *repository.QuoteRepository) queries.QuoteReadStore { return r },
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}

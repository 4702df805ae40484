package repository

import (
	"context"

	"rental-sales-api/internal/infra"
	"rental-sales-api/internal/pkg/pgconv"
	"rental-sales-api/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*readmodel.UserRM, error) {
	var (
		rm        readmodel.UserRM
		lastLogin pgtype.Timestamptz
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)

	err := r.pool.QueryRow(ctx,
		`SELECT id, email, password_hash, role, is_active, last_login, created_at, updated_at
		 FROM users WHERE email = $1`, email,
	).Scan(&rm.ID, &rm.Email, &rm.PasswordHash, &rm.Role, &rm.IsActive, &lastLogin, &createdAt, &updatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by email", err)
	}

	rm.LastLogin = pgconv.TimePtrFromPgtype(lastLogin)
	rm.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	rm.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &rm, nil
}

func (r *UserRepository) RecordLogin(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE users SET last_login = now(), updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to record user login", err)
	}
	return nil
}

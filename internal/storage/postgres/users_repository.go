package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/eventdesk/server/internal/domain/users"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var _ users.Repository = (*UserRepository)(nil)

const userColumns = `id, full_name, email, password_hash, profile_image_url, created_at, updated_at`

// uniqueViolation is the postgres error code for unique constraint failures.
const uniqueViolation = "23505"

func (r *UserRepository) Create(ctx context.Context, user users.User) (users.User, error) {
	row := r.queryer().QueryRow(ctx, `
INSERT INTO users (full_name, email, password_hash, profile_image_url)
VALUES ($1, $2, $3, $4)
RETURNING `+userColumns,
		user.FullName,
		user.Email,
		user.PasswordHash,
		user.ProfileImageURL,
	)

	created, err := scanUser(row)
	if err != nil {
		if isUniqueViolation(err) {
			return users.User{}, users.ErrEmailTaken
		}
		return users.User{}, fmt.Errorf("create user: %w", err)
	}
	return created, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*users.User, error) {
	row := r.queryer().QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)

	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, users.ErrNotFound
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return &user, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*users.User, error) {
	row := r.queryer().QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)

	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, users.ErrNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &user, nil
}

func (r *UserRepository) Update(ctx context.Context, user users.User) (users.User, error) {
	row := r.queryer().QueryRow(ctx, `
UPDATE users
   SET full_name = $2, email = $3, password_hash = $4, profile_image_url = $5,
       updated_at = now()
 WHERE id = $1
RETURNING `+userColumns,
		user.ID,
		user.FullName,
		user.Email,
		user.PasswordHash,
		user.ProfileImageURL,
	)

	updated, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return users.User{}, users.ErrNotFound
		}
		if isUniqueViolation(err) {
			return users.User{}, users.ErrEmailTaken
		}
		return users.User{}, fmt.Errorf("update user: %w", err)
	}
	return updated, nil
}

func (r *UserRepository) queryer() queryer {
	if r.tx != nil {
		return r.tx
	}
	return r.pool
}

func scanUser(row pgx.Row) (users.User, error) {
	var user users.User
	err := row.Scan(
		&user.ID,
		&user.FullName,
		&user.Email,
		&user.PasswordHash,
		&user.ProfileImageURL,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return users.User{}, err
	}
	return user, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

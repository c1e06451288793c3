package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"collab-srv/internal/model"
	"collab-srv/internal/user/repository"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const userColumns = `id, email, username, first_name, last_name, profile_image_url, password_hash, language_preference, user_type, created_at, updated_at`

// CreateUser - Insert a new account
func (r *implRepository) CreateUser(ctx context.Context, opt repository.CreateUserOptions) (model.User, error) {
	id := uuid.New().String()
	now := time.Now()

	query := `
		INSERT INTO users (id, email, password_hash, language_preference, user_type, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + userColumns

	row := r.db.QueryRowContext(ctx, query,
		id, opt.Email, opt.PasswordHash, opt.LanguagePreference, opt.UserType, now, now,
	)

	u, err := scanUser(row)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return model.User{}, repository.ErrDuplicate
		}
		return model.User{}, fmt.Errorf("CreateUser: %w", err)
	}
	return u, nil
}

// GetUserByID - Load an account by id
func (r *implRepository) GetUserByID(ctx context.Context, id string) (model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.getOne(ctx, query, id)
}

// GetUserByEmail - Load an account by email
func (r *implRepository) GetUserByEmail(ctx context.Context, email string) (model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return r.getOne(ctx, query, email)
}

// GetUserByUsername - Load an account by username
func (r *implRepository) GetUserByUsername(ctx context.Context, username string) (model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`
	return r.getOne(ctx, query, username)
}

// UpdateLanguage - Persist the user's language preference
func (r *implRepository) UpdateLanguage(ctx context.Context, userID, language string) (model.User, error) {
	query := `
		UPDATE users SET language_preference = $1, updated_at = $2
		WHERE id = $3
		RETURNING ` + userColumns

	row := r.db.QueryRowContext(ctx, query, language, time.Now(), userID)
	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, repository.ErrNotFound
		}
		return model.User{}, fmt.Errorf("UpdateLanguage: %w", err)
	}
	return u, nil
}

// UpdateUsername - Persist the user's username
func (r *implRepository) UpdateUsername(ctx context.Context, userID, username string) (model.User, error) {
	query := `
		UPDATE users SET username = $1, updated_at = $2
		WHERE id = $3
		RETURNING ` + userColumns

	row := r.db.QueryRowContext(ctx, query, username, time.Now(), userID)
	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, repository.ErrNotFound
		}
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return model.User{}, repository.ErrDuplicate
		}
		return model.User{}, fmt.Errorf("UpdateUsername: %w", err)
	}
	return u, nil
}

func (r *implRepository) getOne(ctx context.Context, query string, arg interface{}) (model.User, error) {
	row := r.db.QueryRowContext(ctx, query, arg)
	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, repository.ErrNotFound
		}
		return model.User{}, fmt.Errorf("getOne: %w", err)
	}
	return u, nil
}

// scanUser - Scan one row into a model.User, handling nullable columns
func scanUser(row *sql.Row) (model.User, error) {
	var u model.User
	var email, username, firstName, lastName, profileImageURL, passwordHash sql.NullString

	err := row.Scan(
		&u.ID, &email, &username, &firstName, &lastName, &profileImageURL,
		&passwordHash, &u.LanguagePreference, &u.UserType, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return model.User{}, err
	}

	u.Email = email.String
	u.Username = username.String
	u.FirstName = firstName.String
	u.LastName = lastName.String
	u.ProfileImageURL = profileImageURL.String
	u.PasswordHash = passwordHash.String

	return u, nil
}

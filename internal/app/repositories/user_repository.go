package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/memitrading/memi/internal/app/models"
	"github.com/memitrading/memi/internal/db"
	"github.com/memitrading/memi/internal/pkg/apperrors"
	"github.com/memitrading/memi/internal/pkg/dberrors"
	"github.com/memitrading/memi/internal/pkg/logger"
)

var userColumns = []string{"id", "username", "email", "password", "role", "created_at", "updated_at"}

func scanUser(row rowScanner) (*models.User, error) {
	u := &models.User{}
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.Password, &u.Role, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

// UserRepository handles admin user database operations
type UserRepository struct {
	db db.DBTX
	sb squirrel.StatementBuilderType
	t  *table[models.User]
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(conn db.DBTX) *UserRepository {
	return &UserRepository{
		db: conn,
		sb: statementBuilder(),
		t:  newTable(conn, "users", userColumns, []string{"id ASC"}, scanUser),
	}
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	u, err := r.t.get(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return nil, apperrors.ErrUserNotFound
	}
	return u, err
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getBy(ctx, "email", email)
}

// GetByUsername retrieves a user by username
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.getBy(ctx, "username", username)
}

func (r *UserRepository) getBy(ctx context.Context, column, value string) (*models.User, error) {
	sql, args, err := r.sb.Select(userColumns...).
		From("users").
		Where(squirrel.Eq{column: value}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get user query: %w", err)
	}

	u, err := scanUser(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		logger.Error().Err(err).Str("column", column).Msg("Error getting user")
		return nil, fmt.Errorf("error getting user by %s: %w", column, err)
	}
	return u, nil
}

// EmailExists checks if an email already exists
func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	sql, args, err := r.sb.Select("1").
		Prefix("SELECT EXISTS (").
		From("users").
		Where(squirrel.Eq{"email": email}).
		Suffix(")").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build email exists query: %w", err)
	}

	var exists bool
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&exists); err != nil {
		logger.Error().Err(err).Msg("Error checking email existence")
		return false, fmt.Errorf("error checking email: %w", err)
	}
	return exists, nil
}

// Create inserts a user whose password is already hashed
func (r *UserRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	role := user.Role
	if role == "" {
		role = models.RoleAdmin
	}

	created, err := r.t.insert(ctx, map[string]interface{}{
		"username": user.Username,
		"email":    user.Email,
		"password": user.Password,
		"role":     role,
	})
	if err != nil {
		switch {
		case dberrors.IsDuplicateConstraintError(err, "users_email_key"):
			return nil, apperrors.ErrEmailAlreadyExists
		case dberrors.IsDuplicateConstraintError(err, "users_username_key"):
			return nil, apperrors.ErrUsernameAlreadyExists
		}
		return nil, err
	}
	return created, nil
}

// UpdatePassword replaces the stored password hash
func (r *UserRepository) UpdatePassword(ctx context.Context, id int64, hash string) error {
	_, err := r.t.update(ctx, id, map[string]interface{}{"password": hash})
	if errors.Is(err, ErrNotFound) {
		return apperrors.ErrUserNotFound
	}
	return err
}

// Count returns the number of users
func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	return r.t.count(ctx, nil)
}

package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/patriciamaedppuaso/Elective4-ETR/internal/db"
	"github.com/patriciamaedppuaso/Elective4-ETR/internal/logger"
)

type Repository interface {
	Create(ctx context.Context, fullname, email, hashed string, role Role) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	GetUsers(ctx context.Context, filter Filter) ([]*User, error)
	UpdatePassword(ctx context.Context, userID uint, hashed string) error
	ToggleActive(ctx context.Context, userID uint) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, fullname, email, hashed string, role Role) (*User, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "Create"),
		zap.String("email", email),
	)

	u := &User{
		Fullname: fullname,
		Email:    email,
		Password: hashed,
		Role:     role,
		IsActive: true,
	}

	err := r.db.QueryRowContext(ctx, `
		INSERT INTO users (fullname, email, password, role)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, fullname, email, hashed, role).Scan(&u.ID)
	if err != nil {
		if db.IsUniqueViolation(err) {
			log.Warn("email already registered")
			return nil, ErrEmailExists
		}
		log.Error("failed to insert user", zap.Error(err))
		return nil, err
	}

	return u, nil
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*User, error) {
	var u User
	err := r.db.QueryRowContext(ctx, `
		SELECT id, fullname, email, password, role, is_active
		FROM users
		WHERE email = $1
	`, email).Scan(&u.ID, &u.Fullname, &u.Email, &u.Password, &u.Role, &u.IsActive)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repository) GetUsers(ctx context.Context, filter Filter) ([]*User, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "GetUsers"),
	)

	where := []string{"1=1"}
	args := []any{}

	if filter.Search != "" {
		where = append(where, fmt.Sprintf(
			"(fullname ILIKE $%d OR email ILIKE $%d)",
			len(args)+1, len(args)+1,
		))
		args = append(args, "%"+filter.Search+"%")
	}

	if filter.Role != "" {
		where = append(where, fmt.Sprintf("role = $%d", len(args)+1))
		args = append(args, filter.Role)
	}

	switch filter.Status {
	case "active":
		where = append(where, "is_active = TRUE")
	case "inactive":
		where = append(where, "is_active = FALSE")
	}

	query := `
		SELECT id, fullname, email, role, is_active
		FROM users
		WHERE ` + strings.Join(where, " AND ") + `
		ORDER BY id DESC
	`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("query failed", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var users []*User
	for rows.Next() {
		var u User
		if err := rows.Scan(&u.ID, &u.Fullname, &u.Email, &u.Role, &u.IsActive); err != nil {
			log.Error("row scan failed", zap.Error(err))
			return nil, err
		}
		users = append(users, &u)
	}

	return users, rows.Err()
}

func (r *repository) UpdatePassword(ctx context.Context, userID uint, hashed string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE users SET password = $1 WHERE id = $2
	`, hashed, userID)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	return nil
}

func (r *repository) ToggleActive(ctx context.Context, userID uint) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE users SET is_active = NOT is_active WHERE id = $1
	`, userID)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	return nil
}

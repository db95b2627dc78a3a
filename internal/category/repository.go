package category

import (
	"context"
	"database/sql"

	"go.uber.org/zap"

	"github.com/patriciamaedppuaso/Elective4-ETR/internal/logger"
)

type Repository interface {
	GetCategories(ctx context.Context) ([]*Category, error)
	AddCategory(ctx context.Context, name string) (*Category, error)
	RenameCategory(ctx context.Context, id uint, name string) error
	DeleteCategory(ctx context.Context, id uint) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetCategories(ctx context.Context) ([]*Category, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "GetCategories"),
	)

	query := `
		SELECT c.id, c.name, COUNT(p.id)
		FROM categories c
		LEFT JOIN products p ON p.category_id = c.id
		GROUP BY c.id
		ORDER BY c.name
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("query failed", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var categories []*Category
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.Name, &c.TotalProducts); err != nil {
			log.Error("row scan failed", zap.Error(err))
			return nil, err
		}
		categories = append(categories, &c)
	}

	return categories, rows.Err()
}

func (r *repository) AddCategory(ctx context.Context, name string) (*Category, error) {
	var c Category
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO categories (name) VALUES ($1) RETURNING id, name`, name,
	).Scan(&c.ID, &c.Name)
	if err != nil {
		return nil, err
	}

	return &c, nil
}

func (r *repository) RenameCategory(ctx context.Context, id uint, name string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE categories SET name = $1 WHERE id = $2`, name, id)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrCategoryNotFound
	}

	return nil
}

// DeleteCategory refuses deletion while any product still references the
// category. The count check and the delete share one transaction.
func (r *repository) DeleteCategory(ctx context.Context, id uint) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var count int
	err = tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM products WHERE category_id = $1`, id,
	).Scan(&count)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrCategoryInUse
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrCategoryNotFound
	}

	return tx.Commit()
}

package cart

import (
	"context"
	"database/sql"
	"errors"

	"go.uber.org/zap"

	"github.com/patriciamaedppuaso/Elective4-ETR/internal/logger"
)

type Repository interface {
	GetLine(ctx context.Context, userID, productID uint) (*CartLine, error)
	InsertLine(ctx context.Context, userID, productID uint, quantity int) error
	IncrementLine(ctx context.Context, userID, productID uint) error
	UpdateQuantity(ctx context.Context, userID, productID uint, quantity int) error
	DeleteLine(ctx context.Context, userID, productID uint) (bool, error)
	GetItems(ctx context.Context, userID uint) ([]Item, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetLine(ctx context.Context, userID, productID uint) (*CartLine, error) {
	query := `
		SELECT user_id, product_id, quantity, created_at, updated_at
		FROM cart_items
		WHERE user_id = $1 AND product_id = $2
	`

	var line CartLine
	err := r.db.QueryRowContext(ctx, query, userID, productID).Scan(
		&line.UserID, &line.ProductID, &line.Quantity, &line.CreatedAt, &line.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &line, nil
}

func (r *repository) InsertLine(ctx context.Context, userID, productID uint, quantity int) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "InsertLine"),
		zap.Uint("user_id", userID),
		zap.Uint("product_id", productID),
	)

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO cart_items (user_id, product_id, quantity)
		VALUES ($1, $2, $3)
	`, userID, productID, quantity)
	if err != nil {
		log.Error("failed to insert cart line", zap.Error(err))
		return err
	}

	log.Debug("cart line inserted")
	return nil
}

func (r *repository) IncrementLine(ctx context.Context, userID, productID uint) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE cart_items
		SET quantity = quantity + 1, updated_at = NOW()
		WHERE user_id = $1 AND product_id = $2
	`, userID, productID)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrLineNotFound
	}

	return nil
}

func (r *repository) UpdateQuantity(ctx context.Context, userID, productID uint, quantity int) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE cart_items
		SET quantity = $1, updated_at = NOW()
		WHERE user_id = $2 AND product_id = $3
	`, quantity, userID, productID)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrLineNotFound
	}

	return nil
}

// DeleteLine removes a line and reports whether one existed.
func (r *repository) DeleteLine(ctx context.Context, userID, productID uint) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM cart_items
		WHERE user_id = $1 AND product_id = $2
	`, userID, productID)
	if err != nil {
		return false, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}

func (r *repository) GetItems(ctx context.Context, userID uint) ([]Item, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "GetItems"),
		zap.Uint("user_id", userID),
	)

	query := `
		SELECT
			p.id, p.name, p.price, p.stock, c.quantity,
			(p.price * c.quantity) AS subtotal
		FROM cart_items c
		JOIN products p ON c.product_id = p.id
		WHERE c.user_id = $1
		ORDER BY c.created_at
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		log.Error("query failed", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		var it Item
		if err := rows.Scan(
			&it.ProductID, &it.ProductName, &it.Price, &it.Stock, &it.Quantity, &it.Subtotal,
		); err != nil {
			log.Error("row scan failed", zap.Error(err))
			return nil, err
		}
		items = append(items, it)
	}

	if err := rows.Err(); err != nil {
		log.Error("rows iteration failed", zap.Error(err))
		return nil, err
	}

	log.Debug("cart items fetched", zap.Int("count", len(items)))

	return items, nil
}

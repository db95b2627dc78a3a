package inventory

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/patriciamaedppuaso/Elective4-ETR/internal/db"
	"github.com/patriciamaedppuaso/Elective4-ETR/internal/logger"
)

type Repository interface {
	AdjustStock(ctx context.Context, input AdjustInput) (*LogEntry, error)
	GetLogs(ctx context.Context) ([]*LogEntry, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// AdjustStock moves the stock counter and appends the audit row in one
// transaction. The product row is locked first so adjustments serialize with
// concurrent checkouts against the same counter.
func (r *repository) AdjustStock(ctx context.Context, input AdjustInput) (*LogEntry, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "AdjustStock"),
		zap.Uint("product_id", input.ProductID),
		zap.String("change_type", string(input.ChangeType)),
		zap.Int("quantity", input.Quantity),
	)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("failed to begin transaction", zap.Error(err))
		return nil, classify(err)
	}

	committed := false
	defer func() {
		if !committed {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error("failed to rollback adjustment", zap.Error(rbErr))
			}
		}
	}()

	var previous int
	err = tx.QueryRowContext(ctx, `
		SELECT stock FROM products WHERE id = $1 FOR UPDATE
	`, input.ProductID).Scan(&previous)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		log.Error("failed to lock product row", zap.Error(err))
		return nil, classify(err)
	}

	var next int
	switch input.ChangeType {
	case ChangeAdd:
		next = previous + input.Quantity
	case ChangeRemove:
		next = previous - input.Quantity
		if next < 0 {
			log.Warn("removal clamped at zero",
				zap.Int("previous_stock", previous),
				zap.Int("requested", input.Quantity),
			)
			next = 0
		}
	case ChangeAdjust:
		next = input.Quantity
	default:
		return nil, ErrInvalidChangeType
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE products SET stock = $1 WHERE id = $2
	`, next, input.ProductID)
	if err != nil {
		log.Error("failed to update stock", zap.Error(err))
		return nil, classify(err)
	}

	entry := &LogEntry{
		ProductID:     input.ProductID,
		ChangeType:    input.ChangeType,
		Quantity:      input.Quantity,
		PreviousStock: previous,
		NewStock:      next,
		Remarks:       input.Remarks,
	}

	err = tx.QueryRowContext(ctx, `
		INSERT INTO inventory_logs (product_id, change_type, quantity, previous_stock, new_stock, remarks)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`, input.ProductID, input.ChangeType, input.Quantity, previous, next, input.Remarks).
		Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		log.Error("failed to append log row", zap.Error(err))
		return nil, classify(err)
	}

	if err := tx.Commit(); err != nil {
		log.Error("failed to commit adjustment", zap.Error(err))
		return nil, classify(err)
	}
	committed = true

	log.Info("stock adjusted",
		zap.Int("previous_stock", previous),
		zap.Int("new_stock", next),
	)

	return entry, nil
}

// GetLogs returns the full audit trail joined with product names, newest
// first.
func (r *repository) GetLogs(ctx context.Context) ([]*LogEntry, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "GetLogs"),
	)

	rows, err := r.db.QueryContext(ctx, `
		SELECT
			l.id, l.product_id, p.name, l.change_type, l.quantity,
			l.previous_stock, l.new_stock, l.remarks, l.created_at
		FROM inventory_logs l
		JOIN products p ON p.id = l.product_id
		ORDER BY l.created_at DESC
	`)
	if err != nil {
		log.Error("query failed", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var entries []*LogEntry
	for rows.Next() {
		var e LogEntry
		if err := rows.Scan(
			&e.ID, &e.ProductID, &e.ProductName, &e.ChangeType, &e.Quantity,
			&e.PreviousStock, &e.NewStock, &e.Remarks, &e.CreatedAt,
		); err != nil {
			log.Error("row scan failed", zap.Error(err))
			return nil, err
		}
		entries = append(entries, &e)
	}

	return entries, rows.Err()
}

func classify(err error) error {
	if err == nil {
		return nil
	}
	if db.IsTxConflict(err) {
		return fmt.Errorf("%w: %v", ErrTxConflict, err)
	}
	return err
}

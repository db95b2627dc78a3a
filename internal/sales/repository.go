package sales

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"github.com/patriciamaedppuaso/Elective4-ETR/internal/logger"
)

type Repository interface {
	GetBuckets(ctx context.Context, granularity Granularity) ([]*Bucket, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// GetBuckets aggregates revenue-recognized orders (Approved, Shipped,
// Delivered) into period buckets, most recent first. Pending and Declined
// orders never contribute.
func (r *repository) GetBuckets(ctx context.Context, granularity Granularity) ([]*Bucket, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "GetBuckets"),
		zap.String("granularity", string(granularity)),
	)

	if !granularity.Valid() {
		return nil, ErrInvalidGranularity
	}

	// truncUnit is one of a fixed set of literals, never caller input.
	query := fmt.Sprintf(`
		SELECT
			date_trunc('%s', o.created_at) AS period,
			COUNT(DISTINCT o.id) AS total_orders,
			COALESCE(SUM(oi.quantity * oi.price), 0) AS total_sales
		FROM orders o
		JOIN order_items oi ON o.id = oi.order_id
		WHERE o.status IN ('Approved', 'Shipped', 'Delivered')
		GROUP BY period
		ORDER BY period DESC
	`, granularity.truncUnit())

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("query failed", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var buckets []*Bucket
	for rows.Next() {
		var b Bucket
		if err := rows.Scan(&b.Start, &b.TotalOrders, &b.TotalSales); err != nil {
			log.Error("row scan failed", zap.Error(err))
			return nil, err
		}
		buckets = append(buckets, &b)
	}

	return buckets, rows.Err()
}

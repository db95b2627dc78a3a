package order

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/patriciamaedppuaso/Elective4-ETR/internal/db"
	"github.com/patriciamaedppuaso/Elective4-ETR/internal/logger"
)

type Repository interface {
	CreateCheckout(ctx context.Context, input CheckoutInput) (*Order, error)
	GetOrders(ctx context.Context, userID uint, status string, limit, page int) ([]*Order, int, error)
	CountByStatus(ctx context.Context, userID uint) (StatusCounts, error)
	GetOrderDetail(ctx context.Context, orderID uint) (*Order, error)
	GetAdminOrders(ctx context.Context, filter AdminFilter) ([]*Order, error)
	ApproveOrder(ctx context.Context, orderID uint) error
	DeclineOrder(ctx context.Context, orderID uint, reason string) error
	ForceStatus(ctx context.Context, orderID uint, status Status) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// checkoutLine is a selected cart line joined with the locked product row.
type checkoutLine struct {
	ProductID   uint
	ProductName string
	CartQty     int
	Price       decimal.Decimal
	Stock       int
}

// CreateCheckout runs the whole checkout protocol in one transaction: order
// insert, product row locks, stock checks, stock decrements, order line
// snapshots and cart line deletions. Any failure rolls everything back.
func (r *repository) CreateCheckout(ctx context.Context, input CheckoutInput) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "CreateCheckout"),
		zap.Uint("user_id", input.UserID),
		zap.Int("selected", len(input.SelectedIDs)),
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
				log.Error("failed to rollback checkout", zap.Error(rbErr))
			} else {
				log.Debug("checkout rolled back")
			}
		}
	}()

	order := &Order{
		UserID:        input.UserID,
		PaymentMethod: input.PaymentMethod,
		PaymentProof:  input.PaymentProof,
		Status:        StatusPending,
	}

	err = tx.QueryRowContext(ctx, `
		INSERT INTO orders (user_id, payment_method, payment_proof, status)
		VALUES ($1, $2, $3, 'Pending')
		RETURNING id, created_at
	`, input.UserID, input.PaymentMethod, input.PaymentProof).
		Scan(&order.ID, &order.CreatedAt)
	if err != nil {
		log.Error("failed to insert order", zap.Error(err))
		return nil, classify(err)
	}

	// Lock the product rows so concurrent checkouts against the same
	// product serialize instead of both reading stale stock.
	rows, err := tx.QueryContext(ctx, `
		SELECT c.product_id, p.name, c.quantity, p.price, p.stock
		FROM cart_items c
		JOIN products p ON c.product_id = p.id
		WHERE c.user_id = $1 AND c.product_id = ANY($2)
		FOR UPDATE OF p
	`, input.UserID, pq.Array(input.SelectedIDs))
	if err != nil {
		log.Error("failed to load cart lines", zap.Error(err))
		return nil, classify(err)
	}

	var lines []checkoutLine
	for rows.Next() {
		var l checkoutLine
		if err := rows.Scan(&l.ProductID, &l.ProductName, &l.CartQty, &l.Price, &l.Stock); err != nil {
			rows.Close()
			return nil, classify(err)
		}
		lines = append(lines, l)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, classify(err)
	}

	if len(lines) == 0 {
		log.Warn("no selected items found in cart")
		return nil, ErrNothingToCheckout
	}

	for _, l := range lines {
		qty := l.CartQty
		if override, ok := input.Overrides[l.ProductID]; ok {
			qty = override
		}

		// A non-positive quantity would turn the decrement below into a
		// stock increase or a zero-quantity order line.
		if qty <= 0 {
			log.Warn("non-positive effective quantity aborts checkout",
				zap.Uint("product_id", l.ProductID),
				zap.Int("quantity", qty),
			)
			return nil, ErrInvalidQuantity
		}

		if qty > l.Stock {
			log.Warn("stock shortfall aborts checkout",
				zap.Uint("product_id", l.ProductID),
				zap.Int("requested", qty),
				zap.Int("available", l.Stock),
			)
			return nil, &InsufficientStockError{
				ProductID:   l.ProductID,
				ProductName: l.ProductName,
				Available:   l.Stock,
			}
		}

		res, err := tx.ExecContext(ctx, `
			UPDATE products
			SET stock = stock - $1
			WHERE id = $2 AND stock >= $1
		`, qty, l.ProductID)
		if err != nil {
			log.Error("failed to decrement stock", zap.Error(err))
			return nil, classify(err)
		}
		if affected, _ := res.RowsAffected(); affected == 0 {
			// The row is locked, so this only fires if stock moved
			// between our read and write. Treat as a shortfall.
			return nil, &InsufficientStockError{
				ProductID:   l.ProductID,
				ProductName: l.ProductName,
				Available:   l.Stock,
			}
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO order_items (order_id, product_id, quantity, price)
			VALUES ($1, $2, $3, $4)
		`, order.ID, l.ProductID, qty, l.Price)
		if err != nil {
			log.Error("failed to insert order line", zap.Error(err))
			return nil, classify(err)
		}

		_, err = tx.ExecContext(ctx, `
			DELETE FROM cart_items
			WHERE user_id = $1 AND product_id = $2
		`, input.UserID, l.ProductID)
		if err != nil {
			log.Error("failed to delete cart line", zap.Error(err))
			return nil, classify(err)
		}

		order.Lines = append(order.Lines, Line{
			OrderID:     order.ID,
			ProductID:   l.ProductID,
			ProductName: l.ProductName,
			Quantity:    qty,
			Price:       l.Price,
		})
	}

	if err := tx.Commit(); err != nil {
		log.Error("failed to commit checkout", zap.Error(err))
		return nil, classify(err)
	}
	committed = true

	log.Info("checkout committed",
		zap.Uint("order_id", order.ID),
		zap.Int("lines", len(order.Lines)),
	)

	return order, nil
}

// statusPredicate expands the derived Processing bucket.
func statusPredicate(status string, argIndex int) (string, []any) {
	if status == StatusProcessing {
		return "status IN ('Pending', 'Approved')", nil
	}
	return fmt.Sprintf("status = $%d", argIndex), []any{status}
}

func (r *repository) GetOrders(
	ctx context.Context,
	userID uint,
	status string,
	limit, page int,
) ([]*Order, int, error) {

	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "GetOrders"),
		zap.Uint("user_id", userID),
		zap.String("status", status),
	)

	if limit <= 0 {
		limit = 10
	}
	if page <= 0 {
		page = 1
	}
	offset := (page - 1) * limit

	args := []any{userID}
	predicate, extra := statusPredicate(status, len(args)+1)
	args = append(args, extra...)

	var total int
	countQuery := `SELECT COUNT(*) FROM orders WHERE user_id = $1 AND ` + predicate
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		log.Error("count query failed", zap.Error(err))
		return nil, 0, err
	}

	query := fmt.Sprintf(`
		SELECT id, user_id, payment_method, payment_proof, status, decline_reason, created_at
		FROM orders
		WHERE user_id = $1 AND %s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, predicate, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("query failed", zap.Error(err))
		return nil, 0, err
	}
	defer rows.Close()

	var orders []*Order
	for rows.Next() {
		var o Order
		if err := rows.Scan(
			&o.ID, &o.UserID, &o.PaymentMethod, &o.PaymentProof,
			&o.Status, &o.DeclineReason, &o.CreatedAt,
		); err != nil {
			log.Error("row scan failed", zap.Error(err))
			return nil, 0, err
		}
		orders = append(orders, &o)
	}

	return orders, total, rows.Err()
}

func (r *repository) CountByStatus(ctx context.Context, userID uint) (StatusCounts, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT status, COUNT(*)
		FROM orders
		WHERE user_id = $1
		GROUP BY status
	`, userID)
	if err != nil {
		return StatusCounts{}, err
	}
	defer rows.Close()

	var counts StatusCounts
	for rows.Next() {
		var status Status
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return StatusCounts{}, err
		}

		switch status {
		case StatusPending, StatusApproved:
			counts.Processing += n
		case StatusShipped:
			counts.Shipped = n
		case StatusDelivered:
			counts.Delivered = n
		case StatusDeclined:
			counts.Declined = n
		}
	}

	return counts, rows.Err()
}

func (r *repository) GetOrderDetail(ctx context.Context, orderID uint) (*Order, error) {
	var o Order
	err := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, payment_method, payment_proof, status, decline_reason, created_at
		FROM orders
		WHERE id = $1
	`, orderID).Scan(
		&o.ID, &o.UserID, &o.PaymentMethod, &o.PaymentProof,
		&o.Status, &o.DeclineReason, &o.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT oi.product_id, p.name, oi.quantity, oi.price
		FROM order_items oi
		JOIN products p ON oi.product_id = p.id
		WHERE oi.order_id = $1
	`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var l Line
		l.OrderID = o.ID
		if err := rows.Scan(&l.ProductID, &l.ProductName, &l.Quantity, &l.Price); err != nil {
			return nil, err
		}
		o.Lines = append(o.Lines, l)
	}

	return &o, rows.Err()
}

func (r *repository) GetAdminOrders(ctx context.Context, filter AdminFilter) ([]*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "GetAdminOrders"),
	)

	where := []string{"1=1"}
	args := []any{}

	if filter.Search != "" {
		where = append(where, fmt.Sprintf(
			"(u.fullname ILIKE $%d OR o.id::text ILIKE $%d)",
			len(args)+1, len(args)+1,
		))
		args = append(args, "%"+filter.Search+"%")
	}

	if filter.Status != "" {
		if filter.Status == StatusProcessing {
			where = append(where, "o.status IN ('Pending', 'Approved')")
		} else {
			where = append(where, fmt.Sprintf("o.status = $%d", len(args)+1))
			args = append(args, filter.Status)
		}
	}

	query := `
		SELECT
			o.id, o.user_id, u.fullname, o.payment_method, o.payment_proof,
			o.status, o.decline_reason, o.created_at
		FROM orders o
		JOIN users u ON o.user_id = u.id
		WHERE ` + strings.Join(where, " AND ") + `
		ORDER BY o.created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("query failed", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var orders []*Order
	for rows.Next() {
		var o Order
		if err := rows.Scan(
			&o.ID, &o.UserID, &o.CustomerName, &o.PaymentMethod, &o.PaymentProof,
			&o.Status, &o.DeclineReason, &o.CreatedAt,
		); err != nil {
			log.Error("row scan failed", zap.Error(err))
			return nil, err
		}
		orders = append(orders, &o)
	}

	return orders, rows.Err()
}

// ApproveOrder is guarded on Pending; outside Pending it is a silent no-op.
func (r *repository) ApproveOrder(ctx context.Context, orderID uint) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE orders
		SET status = 'Approved', decline_reason = NULL
		WHERE id = $1 AND status = 'Pending'
	`, orderID)
	return classify(err)
}

// DeclineOrder is guarded on Pending; outside Pending it is a silent no-op.
func (r *repository) DeclineOrder(ctx context.Context, orderID uint, reason string) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE orders
		SET status = 'Declined', decline_reason = $1
		WHERE id = $2 AND status = 'Pending'
	`, reason, orderID)
	return classify(err)
}

// ForceStatus deliberately skips the transition guards. Admin-only path for
// Shipped/Delivered progression.
func (r *repository) ForceStatus(ctx context.Context, orderID uint, status Status) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE orders SET status = $1 WHERE id = $2
	`, status, orderID)
	if err != nil {
		return classify(err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrOrderNotFound
	}

	return nil
}

// classify maps driver-level conflicts onto the retryable sentinel.
func classify(err error) error {
	if err == nil {
		return nil
	}
	if db.IsTxConflict(err) {
		return fmt.Errorf("%w: %v", ErrTxConflict, err)
	}
	return err
}

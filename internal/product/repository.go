package product

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
	GetProducts(ctx context.Context, filter Filter, limit, page int) ([]*Product, int, error)
	GetProduct(ctx context.Context, id uint) (*Product, error)
	GetBrands(ctx context.Context) ([]string, error)
	CreateProduct(ctx context.Context, params CreateParams) (*Product, error)
	UpdateProduct(ctx context.Context, id uint, params UpdateParams) error
	DeleteProduct(ctx context.Context, id uint) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// buildFilter turns a Filter into WHERE predicates with positional args.
func buildFilter(filter Filter) ([]string, []any) {
	where := []string{"1=1"}
	args := []any{}

	if filter.Search != "" {
		where = append(where, fmt.Sprintf("p.name ILIKE $%d", len(args)+1))
		args = append(args, "%"+filter.Search+"%")
	}

	if filter.CategoryID != 0 {
		where = append(where, fmt.Sprintf("c.id = $%d", len(args)+1))
		args = append(args, filter.CategoryID)
	}

	if filter.Condition != "" {
		where = append(where, fmt.Sprintf("p.condition_type = $%d", len(args)+1))
		args = append(args, filter.Condition)
	}

	if filter.Brand != "" {
		where = append(where, fmt.Sprintf("p.brand = $%d", len(args)+1))
		args = append(args, filter.Brand)
	}

	switch filter.StockStatus {
	case StockAvailable:
		where = append(where, "p.stock > 0")
	case StockSoldOut:
		where = append(where, "p.stock = 0")
	case StockLow:
		where = append(where, fmt.Sprintf("p.stock > 0 AND p.stock <= %d", lowStockThreshold))
	}

	return where, args
}

func (r *repository) GetProducts(
	ctx context.Context,
	filter Filter,
	limit, page int,
) ([]*Product, int, error) {

	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "GetProducts"),
		zap.Int("limit", limit),
		zap.Int("page", page),
	)

	if limit <= 0 {
		limit = 20
	}
	if page <= 0 {
		page = 1
	}
	offset := (page - 1) * limit

	where, args := buildFilter(filter)
	whereClause := strings.Join(where, " AND ")

	base := `
		FROM products p
		JOIN categories c ON p.category_id = c.id
		WHERE ` + whereClause

	var total int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) "+base, args...).Scan(&total); err != nil {
		log.Error("count query failed", zap.Error(err))
		return nil, 0, err
	}

	// Sold-out products sink to the bottom, newest first within each group.
	query := `
		SELECT
			p.id, p.name, p.description, p.price, p.stock,
			p.condition_type, p.brand, p.category_id, c.name, p.image, p.created_at
	` + base + fmt.Sprintf(`
		ORDER BY p.stock = 0, p.id DESC
		LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("query failed", zap.Error(err))
		return nil, 0, err
	}
	defer rows.Close()

	var products []*Product
	for rows.Next() {
		var p Product
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock,
			&p.Condition, &p.Brand, &p.CategoryID, &p.CategoryName, &p.Image, &p.CreatedAt,
		); err != nil {
			log.Error("row scan failed", zap.Error(err))
			return nil, 0, err
		}
		products = append(products, &p)
	}

	if err := rows.Err(); err != nil {
		log.Error("rows iteration failed", zap.Error(err))
		return nil, 0, err
	}

	log.Debug("products fetched", zap.Int("count", len(products)), zap.Int("total", total))

	return products, total, nil
}

func (r *repository) GetProduct(ctx context.Context, id uint) (*Product, error) {
	query := `
		SELECT
			p.id, p.name, p.description, p.price, p.stock,
			p.condition_type, p.brand, p.category_id, c.name, p.image, p.created_at
		FROM products p
		JOIN categories c ON p.category_id = c.id
		WHERE p.id = $1
	`

	var p Product
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock,
		&p.Condition, &p.Brand, &p.CategoryID, &p.CategoryName, &p.Image, &p.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}

	return &p, nil
}

func (r *repository) GetBrands(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT DISTINCT brand FROM products WHERE brand IS NOT NULL ORDER BY brand`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var brands []string
	for rows.Next() {
		var b string
		if err := rows.Scan(&b); err != nil {
			return nil, err
		}
		brands = append(brands, b)
	}

	return brands, rows.Err()
}

func (r *repository) CreateProduct(ctx context.Context, params CreateParams) (*Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "CreateProduct"),
		zap.String("name", params.Name),
	)

	query := `
		INSERT INTO products
			(name, description, price, stock, condition_type, brand, category_id, image)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING id, created_at
	`

	p := Product{
		Name:        params.Name,
		Description: params.Description,
		Price:       params.Price,
		Stock:       params.Stock,
		Condition:   params.Condition,
		Brand:       params.Brand,
		CategoryID:  params.CategoryID,
		Image:       params.Image,
	}

	err := r.db.QueryRowContext(ctx, query,
		params.Name, params.Description, params.Price, params.Stock,
		params.Condition, params.Brand, params.CategoryID, params.Image,
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		log.Error("failed to insert product", zap.Error(err))
		return nil, err
	}

	log.Info("product created", zap.Uint("product_id", p.ID))

	return &p, nil
}

func (r *repository) UpdateProduct(ctx context.Context, id uint, params UpdateParams) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE products SET
			name = $1,
			description = $2,
			price = $3,
			stock = $4,
			condition_type = $5,
			brand = $6,
			category_id = $7,
			image = $8
		WHERE id = $9
	`,
		params.Name, params.Description, params.Price, params.Stock,
		params.Condition, params.Brand, params.CategoryID, params.Image, id,
	)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrProductNotFound
	}

	return nil
}

func (r *repository) DeleteProduct(ctx context.Context, id uint) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		if db.IsForeignKeyViolation(err) {
			return ErrProductReferenced
		}
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrProductNotFound
	}

	return nil
}

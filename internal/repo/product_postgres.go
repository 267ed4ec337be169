package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rogerio-castellano/flowershop/internal/models"
)

// PostgresProductRepository stores products relationally: a base products
// table plus one attribute sub-table per type, keyed by the generated
// product id.
type PostgresProductRepository struct {
	db *sql.DB
}

func NewPostgresProductRepository(db *sql.DB) *PostgresProductRepository {
	return &PostgresProductRepository{db: db}
}

const productSelect = `
	SELECT p.id, p.name, p.quantity, p.price, p.type,
	       COALESCE(f.color, ''), COALESCE(t.height, 0), COALESCE(d.material, '')
	FROM products p
	LEFT JOIN flower_attributes f ON f.product_id = p.id
	LEFT JOIN tree_attributes t ON t.product_id = p.id
	LEFT JOIN decoration_attributes d ON d.product_id = p.id`

func scanProduct(row interface{ Scan(...any) error }) (models.Product, error) {
	var p models.Product
	err := row.Scan(&p.ID, &p.Name, &p.Quantity, &p.Price, &p.Type, &p.Color, &p.Height, &p.Material)
	return p, err
}

func (r *PostgresProductRepository) Create(p models.Product) (models.Product, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return models.Product{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `INSERT INTO products (name, quantity, price, type) VALUES ($1, $2, $3, $4) RETURNING id`
	if err := tx.QueryRowContext(ctx, query, p.Name, p.Quantity, p.Price, p.Type).Scan(&p.ID); err != nil {
		return models.Product{}, fmt.Errorf("failed to insert product: %w", err)
	}

	var attrQuery string
	var attrValue any
	switch p.Type {
	case models.Flower:
		attrQuery = `INSERT INTO flower_attributes (product_id, color) VALUES ($1, $2)`
		attrValue = p.Color
	case models.Tree:
		attrQuery = `INSERT INTO tree_attributes (product_id, height) VALUES ($1, $2)`
		attrValue = p.Height
	case models.Decoration:
		attrQuery = `INSERT INTO decoration_attributes (product_id, material) VALUES ($1, $2)`
		attrValue = p.Material
	default:
		return models.Product{}, fmt.Errorf("unknown product type %q", p.Type)
	}
	if _, err := tx.ExecContext(ctx, attrQuery, p.ID, attrValue); err != nil {
		return models.Product{}, fmt.Errorf("failed to insert product attribute: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return models.Product{}, fmt.Errorf("failed to commit product insert: %w", err)
	}
	return p, nil
}

func (r *PostgresProductRepository) GetByID(id int) (models.Product, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	p, err := scanProduct(r.db.QueryRowContext(ctx, productSelect+` WHERE p.id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, ErrProductNotFound
	}
	if err != nil {
		return models.Product{}, fmt.Errorf("failed to fetch product: %w", err)
	}
	return p, nil
}

func (r *PostgresProductRepository) GetLast() (models.Product, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	p, err := scanProduct(r.db.QueryRowContext(ctx, productSelect+` ORDER BY p.id DESC LIMIT 1`))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, ErrProductNotFound
	}
	if err != nil {
		return models.Product{}, fmt.Errorf("failed to fetch last product: %w", err)
	}
	return p, nil
}

func (r *PostgresProductRepository) GetAll() ([]models.Product, error) {
	return r.query(productSelect + ` ORDER BY p.id`)
}

func (r *PostgresProductRepository) GetByType(t models.ProductType) ([]models.Product, error) {
	return r.query(productSelect+` WHERE p.type = $1 ORDER BY p.id`, t)
}

func (r *PostgresProductRepository) query(query string, args ...any) ([]models.Product, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate products: %w", err)
	}
	return products, nil
}

func (r *PostgresProductRepository) Update(p models.Product) (models.Product, error) {
	query := `UPDATE products SET name = $1, quantity = $2, price = $3 WHERE id = $4`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, p.Name, p.Quantity, p.Price, p.ID)
	if err != nil {
		return models.Product{}, fmt.Errorf("failed to update product: %w", err)
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return models.Product{}, ErrProductNotFound
	}
	return p, nil
}

func (r *PostgresProductRepository) Delete(id int) error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, q := range []string{
		`DELETE FROM flower_attributes WHERE product_id = $1`,
		`DELETE FROM tree_attributes WHERE product_id = $1`,
		`DELETE FROM decoration_attributes WHERE product_id = $1`,
	} {
		if _, err := tx.ExecContext(ctx, q, id); err != nil {
			return fmt.Errorf("failed to delete product attribute: %w", err)
		}
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrProductNotFound
	}
	return tx.Commit()
}

func (r *PostgresProductRepository) SeedCatalog() error {
	for _, p := range seedCatalog() {
		if _, err := r.Create(p); err != nil {
			return fmt.Errorf("failed to seed catalog: %w", err)
		}
	}
	return nil
}

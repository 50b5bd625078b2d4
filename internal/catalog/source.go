package catalog

import (
	"context"
	"errors"
	"fmt"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("product not found")

// Source is where the storefront reads its products from.
type Source interface {
	ListProducts(ctx context.Context) ([]Product, error)
	ProductByID(ctx context.Context, id string) (Product, error)
}

// Static serves a fixed in-memory list.
type Static struct{ Products []Product }

func (s Static) ListProducts(context.Context) ([]Product, error) {
	out := make([]Product, len(s.Products))
	copy(out, s.Products)
	return out, nil
}

func (s Static) ProductByID(_ context.Context, id string) (Product, error) {
	for _, p := range s.Products {
		if p.ID == id {
			return p, nil
		}
	}
	return Product{}, ErrNotFound
}

// Repo reads the products table.
type Repo struct{ DB *pgxpool.Pool }

const productColumns = `id, name, price, COALESCE(original_price, ''), COALESCE(image, ''),
	COALESCE(discount, ''), COALESCE(category, ''), rating, review_count`

const productsSchema = `
CREATE TABLE IF NOT EXISTS products (
	id             TEXT PRIMARY KEY,
	position       INT NOT NULL DEFAULT 0,
	name           TEXT NOT NULL,
	price          TEXT NOT NULL,
	original_price TEXT,
	image          TEXT,
	discount       TEXT,
	category       TEXT,
	rating         DOUBLE PRECISION NOT NULL DEFAULT 0,
	review_count   INT NOT NULL DEFAULT 0
)`

const insertProduct = `INSERT INTO products (id, position, name, price, original_price, image, discount, category, rating, review_count)
VALUES ($1, $2, $3, $4, NULLIF($5, ''), NULLIF($6, ''), NULLIF($7, ''), NULLIF($8, ''), $9, $10)
ON CONFLICT (id) DO NOTHING`

// Migrate creates the products table and fills it with seed when it is empty.
func (r *Repo) Migrate(ctx context.Context, seed []Product) error {
	if _, err := r.DB.Exec(ctx, productsSchema); err != nil {
		return fmt.Errorf("create products: %w", err)
	}
	var n int
	if err := r.DB.QueryRow(ctx, `SELECT count(*) FROM products`).Scan(&n); err != nil {
		return fmt.Errorf("count products: %w", err)
	}
	if n > 0 || len(seed) == 0 {
		return nil
	}
	if err := r.DB.SendBatch(ctx, seedBatch(seed)).Close(); err != nil {
		return fmt.Errorf("seed products: %w", err)
	}
	return nil
}

// seedBatch queues one insert per product; position keeps the seed order.
func seedBatch(products []Product) *pgx.Batch {
	b := &pgx.Batch{}
	for i, p := range products {
		b.Queue(insertProduct, p.ID, i, p.Name, p.Price, p.OriginalPrice, p.Image, p.Discount, p.Category, p.Rating, p.Reviews)
	}
	return b
}

func (r *Repo) ListProducts(ctx context.Context) ([]Product, error) {
	rows, err := r.DB.Query(ctx, `SELECT `+productColumns+` FROM products ORDER BY position, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *Repo) ProductByID(ctx context.Context, id string) (Product, error) {
	p, err := scanProduct(r.DB.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id=$1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return Product{}, ErrNotFound
	}
	return p, err
}

func scanProduct(row pgx.Row) (Product, error) {
	var p Product
	err := row.Scan(&p.ID, &p.Name, &p.Price, &p.OriginalPrice, &p.Image, &p.Discount, &p.Category, &p.Rating, &p.Reviews)
	return p, err
}

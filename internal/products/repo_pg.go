package products

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

const candidateColumns = `
p.id, p.name, p.category, p.sub_category, p.primary_style, p.price,
p.image_url, p.removed_background_image_url, p.purchase_url, b.name`

// FindCandidates queries one category of outfit candidates.
func (r *PGRepo) FindCandidates(ctx context.Context, filter CandidateFilter) ([]Product, error) {
	if filter.Category == "" {
		return nil, ErrInvalidInput
	}
	limit := filter.Limit
	if limit <= 0 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}

	var b strings.Builder
	b.WriteString(`SELECT ` + candidateColumns + `
FROM products p
JOIN brands b ON p.brand_id = b.id
WHERE p.category = $1
  AND p.is_active = TRUE
  AND p.deleted_at IS NULL
  AND p.removed_background_image_url IS NOT NULL
  AND p.price <= $2`)

	args := []any{filter.Category, filter.MaxPrice}

	// Accessories match every style; other categories require a style hit on
	// either the product or its brand.
	if filter.Category != CategoryAccessory && len(filter.Styles) > 0 {
		placeholders := make([]string, 0, len(filter.Styles))
		for _, style := range filter.Styles {
			args = append(args, style)
			placeholders = append(placeholders, fmt.Sprintf("$%d", len(args)))
		}
		list := strings.Join(placeholders, ", ")
		fmt.Fprintf(&b, "\n  AND (p.primary_style IN (%s) OR b.primary_style IN (%s))", list, list)
	}

	args = append(args, limit)
	fmt.Fprintf(&b, "\nORDER BY p.id ASC\nLIMIT $%d", len(args))

	rows, err := r.DB.QueryContext(ctx, b.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, product)
	}
	return out, rows.Err()
}

// GetByID fetches a single product.
func (r *PGRepo) GetByID(ctx context.Context, id int64) (Product, error) {
	const query = `SELECT ` + candidateColumns + `
FROM products p
JOIN brands b ON p.brand_id = b.id
WHERE p.id = $1 AND p.deleted_at IS NULL
LIMIT 1`

	row := r.DB.QueryRowContext(ctx, query, id)
	product, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Product{}, ErrNotFound
		}
		return Product{}, err
	}
	return product, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (Product, error) {
	var p Product
	var subCategory sql.NullString
	var primaryStyle sql.NullString
	var nobgURL sql.NullString
	var purchaseURL sql.NullString
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Category,
		&subCategory,
		&primaryStyle,
		&p.Price,
		&p.ImageURL,
		&nobgURL,
		&purchaseURL,
		&p.Brand,
	)
	if err != nil {
		return Product{}, err
	}
	if subCategory.Valid {
		p.SubCategory = subCategory.String
	}
	if primaryStyle.Valid {
		p.PrimaryStyle = primaryStyle.String
	}
	if nobgURL.Valid {
		p.NobgImageURL = nobgURL.String
	}
	if purchaseURL.Valid {
		p.PurchaseURL = purchaseURL.String
	}
	return p, nil
}

var _ Repo = (*PGRepo)(nil)

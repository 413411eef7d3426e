package categories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oraExperience/ora-electronics/internal/domain/catalog"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

// ProductsByName resolves a category case-insensitively (URL input like
// "mobiles" must match the stored "Mobiles") and returns its products plus
// the canonical display name. An unknown category yields an empty page with
// the name "Unknown", not an error.
func (r *Repo) ProductsByName(ctx context.Context, name string, limit int) (string, []catalog.RailProduct, error) {
	if name == "" {
		return "Unknown", []catalog.RailProduct{}, nil
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	var (
		categoryID  int64
		displayName string
	)
	err := r.db.QueryRow(ctx,
		`SELECT id, name FROM category WHERE name ILIKE $1 LIMIT 1`, name,
	).Scan(&categoryID, &displayName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "Unknown", []catalog.RailProduct{}, nil
		}
		return "", nil, fmt.Errorf("resolve category %q: %w", name, err)
	}

	rows, err := r.db.Query(ctx, `
		SELECT name, image
		FROM products
		WHERE parent_category_id = $1
		ORDER BY id
		LIMIT $2
	`, categoryID, limit)
	if err != nil {
		return "", nil, fmt.Errorf("products for category %q: %w", displayName, err)
	}
	defer rows.Close()

	out := []catalog.RailProduct{}
	for rows.Next() {
		var p catalog.RailProduct
		if err := rows.Scan(&p.Name, &p.ImageURL); err != nil {
			return "", nil, err
		}
		p.Price = "See stores for pricing"
		out = append(out, p)
	}
	return displayName, out, rows.Err()
}

package products

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oraExperience/ora-electronics/internal/domain/catalog"
)

var ErrNotFound = errors.New("product not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

// Search runs the free-text product search. An empty query returns the full
// catalog, newest first.
func (r *Repo) Search(ctx context.Context, q string, limit, offset int) ([]catalog.ProductSummary, error) {
	sql, args := BuildSearchQuery(SearchTerms(q), limit, offset)

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	defer rows.Close()

	return scanSummaries(rows)
}

// ByEntity returns the products mapped to a curated list, with the same
// aggregation and ordering as Search.
func (r *Repo) ByEntity(ctx context.Context, entityID int64, limit, offset int) ([]catalog.ProductSummary, error) {
	rows, err := r.db.Query(ctx, `
		SELECT p.name, p.image, p.key_name, v.name AS vertical_name,
		       MIN(spm.price) AS min_price,
		       COUNT(DISTINCT spm.store_id) AS store_count
		FROM entity_product_mapping epm
		JOIN products p ON epm.product_id = p.id
		JOIN vertical v ON p.vertical_id = v.id
		LEFT JOIN store_product_mapping spm ON p.id = spm.product_id
		WHERE epm.entity_id = $1
		GROUP BY p.id, p.name, p.image, p.key_name, v.name
		ORDER BY p.id DESC
		LIMIT $2 OFFSET $3
	`, entityID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("products by entity %d: %w", entityID, err)
	}
	defer rows.Close()

	return scanSummaries(rows)
}

func scanSummaries(rows pgx.Rows) ([]catalog.ProductSummary, error) {
	out := []catalog.ProductSummary{}
	for rows.Next() {
		var s catalog.ProductSummary
		if err := rows.Scan(&s.Name, &s.Image, &s.KeyName, &s.VerticalName, &s.MinPrice, &s.StoreCount); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// ByKeyName loads the full product record, including its reviews.
func (r *Repo) ByKeyName(ctx context.Context, keyName string) (*catalog.Product, error) {
	var p catalog.Product
	err := r.db.QueryRow(ctx, `
		SELECT p.id, p.name, p.key_name, p.image, p.highlights,
		       COALESCE(p.storage, ''), COALESCE(p.ram, ''), COALESCE(p.colour, ''),
		       p.vertical_id, v.name AS vertical_name,
		       p.rating, p.rating_count, p.review_count,
		       p.specifications, p.mrp,
		       p.parent_category_id, p.sub_category_id,
		       parent_cat.name AS parent_category_name,
		       sub_cat.name AS sub_category_name
		FROM products p
		LEFT JOIN category parent_cat ON p.parent_category_id = parent_cat.id
		LEFT JOIN category sub_cat ON p.sub_category_id = sub_cat.id
		LEFT JOIN vertical v ON p.vertical_id = v.id
		WHERE p.key_name = $1
		LIMIT 1
	`, keyName).Scan(
		&p.ID, &p.Name, &p.KeyName, &p.Image, &p.Highlights,
		&p.Storage, &p.RAM, &p.Colour,
		&p.VerticalID, &p.VerticalName,
		&p.Rating, &p.RatingCount, &p.ReviewCount,
		&p.Specifications, &p.MRP,
		&p.ParentCategoryID, &p.SubCategoryID,
		&p.ParentCategoryName, &p.SubCategoryName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("product by key_name %q: %w", keyName, err)
	}

	reviews, err := r.ReviewsByProduct(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	p.Reviews = reviews
	return &p, nil
}

func (r *Repo) ReviewsByProduct(ctx context.Context, productID int64) ([]catalog.Review, error) {
	rows, err := r.db.Query(ctx, `
		SELECT rr.review, rr.rating, rr.created_at, rr.images AS review_images,
		       u.name AS user_name, u.user_image
		FROM ratings_reviews rr
		LEFT JOIN users u ON rr.user_id = u.id
		WHERE rr.entity_type = 'product' AND rr.entity_id = $1
	`, productID)
	if err != nil {
		return nil, fmt.Errorf("reviews for product %d: %w", productID, err)
	}
	defer rows.Close()

	out := []catalog.Review{}
	for rows.Next() {
		var rv catalog.Review
		if err := rows.Scan(&rv.Review, &rv.Rating, &rv.CreatedAt, &rv.ReviewImages, &rv.UserName, &rv.UserImage); err != nil {
			return nil, err
		}
		out = append(out, rv)
	}
	return out, rows.Err()
}

// VariantsByVertical returns every sibling SKU in a vertical. The variant
// cascade and selector extraction run on this set client-side.
func (r *Repo) VariantsByVertical(ctx context.Context, verticalID int64) ([]catalog.Variant, error) {
	rows, err := r.db.Query(ctx, `
		SELECT COALESCE(storage, ''), COALESCE(ram, ''), COALESCE(colour, ''), key_name
		FROM products
		WHERE vertical_id = $1
	`, verticalID)
	if err != nil {
		return nil, fmt.Errorf("variants for vertical %d: %w", verticalID, err)
	}
	defer rows.Close()

	out := []catalog.Variant{}
	for rows.Next() {
		var v catalog.Variant
		if err := rows.Scan(&v.Storage, &v.RAM, &v.Colour, &v.KeyName); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

// Similar picks the single cheapest product of every vertical except the
// given one. Verticals with no store mappings drop out: a similar product
// without a price is useless on the page.
func (r *Repo) Similar(ctx context.Context, excludeVerticalID int64) ([]catalog.SimilarProduct, error) {
	rows, err := r.db.Query(ctx, `
		WITH vertical_min_prices AS (
			SELECT
			  v.id AS vertical_id,
			  v.name AS vertical_name,
			  p.name AS product_name,
			  p.key_name,
			  p.image AS product_image,
			  MIN(spm.price) AS min_price,
			  ROW_NUMBER() OVER (PARTITION BY v.id ORDER BY MIN(spm.price) ASC) AS rn
			FROM vertical v
			INNER JOIN products p ON v.id = p.vertical_id
			INNER JOIN store_product_mapping spm ON p.id = spm.product_id
			WHERE v.id != $1
			GROUP BY v.id, v.name, p.id, p.name, p.key_name, p.image
		)
		SELECT vertical_name, product_name, key_name, COALESCE(product_image, ''), min_price
		FROM vertical_min_prices
		WHERE rn = 1
		ORDER BY vertical_id ASC
	`, excludeVerticalID)
	if err != nil {
		return nil, fmt.Errorf("similar products (excluding vertical %d): %w", excludeVerticalID, err)
	}
	defer rows.Close()

	out := []catalog.SimilarProduct{}
	for rows.Next() {
		var s catalog.SimilarProduct
		if err := rows.Scan(&s.VerticalName, &s.ProductName, &s.KeyName, &s.ProductImage, &s.Price); err != nil {
			return nil, err
		}
		if s.ProductImage == "" {
			s.ProductImage = "https://via.placeholder.com/160x160?text=No+Image"
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// PopularPills returns the curated search suggestions, rank ascending.
func (r *Repo) PopularPills(ctx context.Context) ([]catalog.Pill, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, header
		FROM entity
		WHERE entity_type = 'POPULAR_PILLS' AND page = 'SEARCH'
		ORDER BY "rank" ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("popular pills: %w", err)
	}
	defer rows.Close()

	out := []catalog.Pill{}
	for rows.Next() {
		var p catalog.Pill
		if err := rows.Scan(&p.ID, &p.Header); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// HomeRails returns the HOME page rails in rank order, each with its mapped
// products.
func (r *Repo) HomeRails(ctx context.Context, limitPerRail int) ([]catalog.Rail, error) {
	if limitPerRail < 1 {
		limitPerRail = 12
	}
	rows, err := r.db.Query(ctx, `
		SELECT id, header
		FROM entity
		WHERE page = 'HOME' AND entity_type = 'RAIL'
		ORDER BY "rank" ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("home rails: %w", err)
	}
	rails := []catalog.Rail{}
	for rows.Next() {
		var rail catalog.Rail
		if err := rows.Scan(&rail.ID, &rail.Header); err != nil {
			rows.Close()
			return nil, err
		}
		rails = append(rails, rail)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range rails {
		prods, err := r.railProducts(ctx, rails[i].ID, limitPerRail)
		if err != nil {
			return nil, err
		}
		rails[i].Products = prods
	}
	return rails, nil
}

func (r *Repo) railProducts(ctx context.Context, entityID int64, limit int) ([]catalog.RailProduct, error) {
	rows, err := r.db.Query(ctx, `
		SELECT p.name, p.image
		FROM entity_product_mapping m
		INNER JOIN products p ON m.product_id = p.id
		WHERE m.entity_id = $1
		LIMIT $2
	`, entityID, limit)
	if err != nil {
		return nil, fmt.Errorf("rail %d products: %w", entityID, err)
	}
	defer rows.Close()

	out := []catalog.RailProduct{}
	for rows.Next() {
		var p catalog.RailProduct
		if err := rows.Scan(&p.Name, &p.ImageURL); err != nil {
			return nil, err
		}
		p.Price = "See stores for pricing"
		out = append(out, p)
	}
	return out, rows.Err()
}

// Top returns the first N catalog products for the homepage strip.
func (r *Repo) Top(ctx context.Context, limit int) ([]catalog.RailProduct, error) {
	if limit < 1 || limit > 100 {
		limit = 3
	}
	rows, err := r.db.Query(ctx, `SELECT name, image FROM products ORDER BY id LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("top products: %w", err)
	}
	defer rows.Close()

	out := []catalog.RailProduct{}
	for rows.Next() {
		var p catalog.RailProduct
		if err := rows.Scan(&p.Name, &p.ImageURL); err != nil {
			return nil, err
		}
		p.Price = "See stores for pricing"
		out = append(out, p)
	}
	return out, rows.Err()
}

package stores

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oraExperience/ora-electronics/internal/domain/store"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

// ForProduct returns the stores carrying a product, cheapest first.
func (r *Repo) ForProduct(ctx context.Context, keyName string) ([]store.Listing, error) {
	rows, err := r.db.Query(ctx, `
		SELECT s.name, s.image, s.rating, s.latitude, s.longitude, s.city,
		       spm.price, spm.offers, spm.affiliate_link
		FROM store s
		JOIN store_product_mapping spm ON s.id = spm.store_id
		JOIN products p ON spm.product_id = p.id
		WHERE p.key_name = $1
		ORDER BY spm.price ASC
	`, keyName)
	if err != nil {
		return nil, fmt.Errorf("stores for product %q: %w", keyName, err)
	}
	defer rows.Close()

	out := []store.Listing{}
	for rows.Next() {
		var (
			l         store.Listing
			city      *string
			rawOffers *string
		)
		if err := rows.Scan(&l.Name, &l.Image, &l.Rating, &l.Latitude, &l.Longitude, &city,
			&l.Price, &rawOffers, &l.AffiliateLink); err != nil {
			return nil, err
		}
		l.City = "Local Area"
		if city != nil && *city != "" {
			l.City = *city
		}
		l.Offers = []string{}
		if rawOffers != nil {
			l.Offers = ParseOffers(*rawOffers)
		}
		// Placeholder until store geolocation lands; the UI renders it
		// as "x.x km".
		l.Distance = fmt.Sprintf("%.1f", rand.Float64()*3+1)
		out = append(out, l)
	}
	return out, rows.Err()
}

package images

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type GalleryImage struct {
	ImageURL string `json:"image_url"`
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

// GalleryForProduct returns the vertical image gallery of a product in
// stored order.
func (r *Repo) GalleryForProduct(ctx context.Context, keyName string) ([]GalleryImage, error) {
	rows, err := r.db.Query(ctx, `
		SELECT ei.image_url
		FROM entity_image ei
		JOIN products p ON p.id = ei.entity_id
		WHERE ei.entity_type = 'product'
		  AND ei.image_type = 'vertical_image_gallery'
		  AND p.key_name = $1
		ORDER BY ei.id ASC
	`, keyName)
	if err != nil {
		return nil, fmt.Errorf("gallery for product %q: %w", keyName, err)
	}
	defer rows.Close()

	out := []GalleryImage{}
	for rows.Next() {
		var img GalleryImage
		if err := rows.Scan(&img.ImageURL); err != nil {
			return nil, err
		}
		out = append(out, img)
	}
	return out, rows.Err()
}

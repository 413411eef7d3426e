package verticals

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oraExperience/ora-electronics/internal/domain/catalog"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

func (r *Repo) ListAll(ctx context.Context) ([]catalog.Vertical, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM vertical ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list verticals: %w", err)
	}
	defer rows.Close()

	out := []catalog.Vertical{}
	for rows.Next() {
		var v catalog.Vertical
		if err := rows.Scan(&v.ID, &v.Name); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

package products

import (
	"fmt"
	"strconv"
	"strings"
)

const DefaultLimit = 20

// PageParams validates pagination input. Anything non-positive or
// non-numeric collapses to the defaults instead of erroring.
func PageParams(pageStr, limitStr string) (page, limit, offset int) {
	page = 1
	if n, err := strconv.Atoi(strings.TrimSpace(pageStr)); err == nil && n > 0 {
		page = n
	}
	limit = DefaultLimit
	if n, err := strconv.Atoi(strings.TrimSpace(limitStr)); err == nil && n > 0 {
		limit = n
	}
	offset = (page - 1) * limit
	return page, limit, offset
}

// SearchTerms splits a free-text query on whitespace. Empty input yields no
// terms.
func SearchTerms(q string) []string {
	return strings.Fields(strings.TrimSpace(q))
}

// BuildSearchQuery assembles the product search statement. Every term is an
// independent ILIKE substring predicate on the product name and all terms
// are AND-ed, so term order never matters. Results are id-descending: the
// ordering contract is recency, never price or relevance.
func BuildSearchQuery(terms []string, limit, offset int) (string, []any) {
	args := []any{limit, offset}

	var where string
	if len(terms) > 0 {
		preds := make([]string, len(terms))
		for i, term := range terms {
			preds[i] = fmt.Sprintf("p.name ILIKE $%d", i+3)
			args = append(args, "%"+term+"%")
		}
		where = "WHERE " + strings.Join(preds, " AND ")
	}

	sql := fmt.Sprintf(`
		SELECT
		  p.name,
		  p.image,
		  p.key_name,
		  v.name AS vertical_name,
		  MIN(spm.price) AS min_price,
		  COUNT(DISTINCT spm.store_id) AS store_count
		FROM products p
		JOIN vertical v ON p.vertical_id = v.id
		LEFT JOIN store_product_mapping spm ON p.id = spm.product_id
		%s
		GROUP BY p.id, p.name, p.image, p.key_name, v.name
		ORDER BY p.id DESC
		LIMIT $1 OFFSET $2
	`, where)

	return sql, args
}

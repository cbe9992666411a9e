package products

import "context"

// CandidateFilter narrows a per-category candidate query.
type CandidateFilter struct {
	Category string
	Styles   []string
	MaxPrice int64
	Limit    int
}

// Repo defines read operations on the product catalog.
type Repo interface {
	// FindCandidates returns active products in a category matching any of the
	// style tags (product or brand style), under the price ceiling, with a
	// background-removed image, ordered by ID.
	FindCandidates(ctx context.Context, filter CandidateFilter) ([]Product, error)
	GetByID(ctx context.Context, id int64) (Product, error)
}

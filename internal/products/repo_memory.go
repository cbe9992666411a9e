package products

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory Repo used for dev runs without a database and
// for tests.
type MemoryRepo struct {
	mu    sync.RWMutex
	items map[int64]Product
}

// NewMemoryRepo creates an empty in-memory repo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{items: make(map[int64]Product)}
}

// Seed inserts or replaces products.
func (r *MemoryRepo) Seed(items ...Product) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, item := range items {
		r.items[item.ID] = item
	}
}

// FindCandidates filters seeded products the same way the Postgres repo does.
func (r *MemoryRepo) FindCandidates(ctx context.Context, filter CandidateFilter) ([]Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if filter.Category == "" {
		return nil, ErrInvalidInput
	}
	limit := filter.Limit
	if limit <= 0 {
		limit = 10
	}

	styleSet := make(map[string]struct{}, len(filter.Styles))
	for _, s := range filter.Styles {
		styleSet[s] = struct{}{}
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []Product
	for _, p := range r.items {
		if p.Category != filter.Category {
			continue
		}
		if p.NobgImageURL == "" {
			continue
		}
		if filter.MaxPrice > 0 && p.Price > filter.MaxPrice {
			continue
		}
		if filter.Category != CategoryAccessory && len(styleSet) > 0 {
			if _, ok := styleSet[p.PrimaryStyle]; !ok {
				continue
			}
		}
		out = append(out, p)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// GetByID fetches a seeded product.
func (r *MemoryRepo) GetByID(ctx context.Context, id int64) (Product, error) {
	if err := ctx.Err(); err != nil {
		return Product{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.items[id]
	if !ok {
		return Product{}, ErrNotFound
	}
	return p, nil
}

var _ Repo = (*MemoryRepo)(nil)

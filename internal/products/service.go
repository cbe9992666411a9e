package products

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"outfit-backend/internal/shared/cache"
	"outfit-backend/internal/shared/metrics"
	"outfit-backend/internal/shared/telemetry"
	"outfit-backend/internal/styles"
)

const unlimitedBudget = 10_000_000

// Service fetches outfit candidates from the catalog, read-through cached.
type Service struct {
	Repo     Repo
	Cache    cache.Cache
	CacheTTL time.Duration
}

// CandidatesByQuiz returns per-category candidate products for the parsed
// quiz answers. Shoes use their own style table; all other categories use the
// clothing style table.
func (s *Service) CandidatesByQuiz(ctx context.Context, occasion, style string, budget int64, limitPerCategory int) (map[string][]Product, error) {
	mappedStyles := styles.MappedStyles(occasion, style)
	shoeStyles := styles.ShoeStyles(occasion, style)
	maxPrice := NormalizeBudget(budget)

	telemetry.Info("candidates.query", map[string]any{
		"occasion":    occasion,
		"style":       style,
		"styles":      mappedStyles,
		"shoe_styles": shoeStyles,
		"max_price":   maxPrice,
	})

	result := make(map[string][]Product, len(CandidateCategories))
	for _, category := range CandidateCategories {
		categoryStyles := mappedStyles
		if category == CategoryShoes {
			categoryStyles = shoeStyles
		}
		found, err := s.candidates(ctx, CandidateFilter{
			Category: category,
			Styles:   categoryStyles,
			MaxPrice: maxPrice,
			Limit:    limitPerCategory,
		})
		if err != nil {
			return nil, fmt.Errorf("find candidates for %s: %w", category, err)
		}
		result[category] = found
	}
	return result, nil
}

func (s *Service) candidates(ctx context.Context, filter CandidateFilter) ([]Product, error) {
	if s.Cache == nil {
		return s.Repo.FindCandidates(ctx, filter)
	}

	key := candidateCacheKey(filter)
	if raw, ok, err := s.Cache.Get(ctx, key); err != nil {
		telemetry.Error("candidates.cache_get", map[string]any{"key": key, "error": err.Error()})
	} else if ok {
		var cached []Product
		if err := json.Unmarshal(raw, &cached); err == nil {
			metrics.IncCandidateCacheHit()
			return cached, nil
		}
	}
	metrics.IncCandidateCacheMiss()

	found, err := s.Repo.FindCandidates(ctx, filter)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(found); err == nil {
		ttl := s.CacheTTL
		if ttl <= 0 {
			ttl = 5 * time.Minute
		}
		if err := s.Cache.Set(ctx, key, raw, ttl); err != nil {
			telemetry.Error("candidates.cache_set", map[string]any{"key": key, "error": err.Error()})
		}
	}
	return found, nil
}

// NormalizeBudget clamps a budget to a usable price ceiling. Non-positive
// budgets fall back to the 500,000 KRW default; anything at or above the
// unlimited marker is treated as effectively no ceiling.
func NormalizeBudget(budget int64) int64 {
	if budget <= 0 {
		return 500_000
	}
	if budget >= unlimitedBudget {
		return unlimitedBudget
	}
	return budget
}

func candidateCacheKey(filter CandidateFilter) string {
	return fmt.Sprintf("candidates:v1:%s:%s:%d:%d",
		filter.Category,
		strings.Join(filter.Styles, ","),
		filter.MaxPrice,
		filter.Limit,
	)
}

package recommendations

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/sony/gobreaker/v2"

	"outfit-backend/internal/llm"
	"outfit-backend/internal/products"
	"outfit-backend/internal/quiz"
	"outfit-backend/internal/shared/telemetry"
	"outfit-backend/internal/styles"
)

// Service orchestrates the quiz-to-outfits pipeline: parse answers, collect
// candidates, ask the model for outfit picks, and shape the response.
type Service struct {
	Products           *products.Service
	LLM                llm.Client
	MaxPerCategory     int
	MaxRecommendations int
	FallbackOnLLMError bool

	breaker *gobreaker.CircuitBreaker[json.RawMessage]
}

// NewService wires the pipeline with a circuit breaker in front of the model
// so a flapping provider fails fast instead of stacking up slow requests.
func NewService(productSvc *products.Service, client llm.Client, maxPerCategory, maxRecommendations int, fallbackOnLLMError bool) *Service {
	breaker := gobreaker.NewCircuitBreaker[json.RawMessage](gobreaker.Settings{
		Name:    "llm-selection",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			telemetry.Info("llm.breaker_state", map[string]any{
				"name": name,
				"from": from.String(),
				"to":   to.String(),
			})
		},
	})

	return &Service{
		Products:           productSvc,
		LLM:                client,
		MaxPerCategory:     maxPerCategory,
		MaxRecommendations: maxRecommendations,
		FallbackOnLLMError: fallbackOnLLMError,
		breaker:            breaker,
	}
}

// Recommend runs the full pipeline for one request. It returns
// ErrNoCandidates when the filters match nothing and ErrLLMUnavailable when
// selection fails and fallback is disabled.
func (s *Service) Recommend(ctx context.Context, req Request, requestID string) (Response, error) {
	parsed := quiz.Parse(req.Answers)

	telemetry.Info("recommend.start", map[string]any{
		"session_id": req.SessionID,
		"occasion":   parsed.Occasion,
		"style":      parsed.Style,
		"body_type":  parsed.BodyType,
		"budget":     parsed.Budget,
	})

	candidates, err := s.collectCandidates(ctx, req, parsed)
	if err != nil {
		return Response{}, err
	}
	if countCandidates(candidates) == 0 {
		return Response{}, ErrNoCandidates
	}

	outfits, err := s.selectOutfits(ctx, candidates, parsed, req.ExcludeCombinations, requestID)
	if err != nil {
		if !s.FallbackOnLLMError {
			return Response{}, fmt.Errorf("%w: %s", ErrLLMUnavailable, err.Error())
		}
		telemetry.Error("recommend.llm_fallback", map[string]any{
			"session_id": req.SessionID,
			"error":      err.Error(),
		})
		outfits = fallbackSelection(candidates, products.NormalizeBudget(parsed.Budget), s.maxRecommendations())
	}

	outfits = dropExcluded(outfits, req.ExcludeCombinations)
	if len(outfits) == 0 {
		return Response{}, ErrNoCandidates
	}
	if len(outfits) > s.maxRecommendations() {
		outfits = outfits[:s.maxRecommendations()]
	}

	return s.toResponse(outfits, parsed), nil
}

// collectCandidates prefers the inline product list when the caller supplied
// one; otherwise it queries the catalog by quiz filters.
func (s *Service) collectCandidates(ctx context.Context, req Request, parsed quiz.Parsed) (map[string][]products.Product, error) {
	if req.AvailableProducts != nil {
		if len(*req.AvailableProducts) == 0 {
			return nil, ErrEmptyProducts
		}
		return s.groupInlineProducts(*req.AvailableProducts, parsed.Budget), nil
	}
	return s.Products.CandidatesByQuiz(ctx, parsed.Occasion, parsed.Style, parsed.Budget, s.maxPerCategory())
}

// groupInlineProducts buckets caller-supplied products per category, keeping
// only valid categories and items under budget, capped per category.
func (s *Service) groupInlineProducts(inline []ProductDto, budget int64) map[string][]products.Product {
	maxPrice := products.NormalizeBudget(budget)
	grouped := make(map[string][]products.Product)
	for _, dto := range inline {
		product := dto.toProduct()
		if !products.IsValidCategory(product.Category) {
			telemetry.Info("recommend.skip_product", map[string]any{
				"product_id": product.ID,
				"category":   product.Category,
				"reason":     "invalid category",
			})
			continue
		}
		if product.Price > maxPrice {
			continue
		}
		if len(grouped[product.Category]) >= s.maxPerCategory() {
			continue
		}
		grouped[product.Category] = append(grouped[product.Category], product)
	}
	return grouped
}

func (s *Service) selectOutfits(ctx context.Context, candidates map[string][]products.Product, parsed quiz.Parsed, excluded [][]int64, requestID string) ([]selectedOutfit, error) {
	input := llm.SelectionInput{
		Candidates:          toCandidateItems(candidates),
		Occasion:            parsed.Occasion,
		Style:               parsed.Style,
		BodyType:            parsed.BodyType,
		Budget:              products.NormalizeBudget(parsed.Budget),
		NumOutfits:          s.maxRecommendations(),
		ExcludeCombinations: excluded,
	}

	client := newRetryingLLM(s.LLM, requestID)
	raw, err := s.breaker.Execute(func() (json.RawMessage, error) {
		return client.SelectOutfits(ctx, input)
	})
	if err != nil {
		return nil, err
	}
	return parseSelection(raw, candidates)
}

func toCandidateItems(candidates map[string][]products.Product) map[string][]llm.CandidateItem {
	out := make(map[string][]llm.CandidateItem, len(candidates))
	for category, items := range candidates {
		slim := make([]llm.CandidateItem, 0, len(items))
		for _, item := range items {
			slim = append(slim, llm.CandidateItem{
				ID:    item.ID,
				Name:  item.Name,
				Brand: item.Brand,
				Price: item.Price,
				Style: item.PrimaryStyle,
			})
		}
		out[category] = slim
	}
	return out
}

func (s *Service) toResponse(outfits []selectedOutfit, parsed quiz.Parsed) Response {
	resp := Response{
		RecommendedOutfits: make([]OutfitRecommendation, 0, len(outfits)),
	}
	for i, outfit := range outfits {
		resp.RecommendedOutfits = append(resp.RecommendedOutfits, OutfitRecommendation{
			DisplayOrder: i + 1,
			Occasion:     styles.OccasionDisplay(parsed.Occasion),
			Season:       "all",
			Style:        styles.StyleDisplay(parsed.Style),
			Reason:       outfit.Reason,
			Status:       "completed",
			Result:       toOutfitResult(outfit),
		})
	}
	return resp
}

func toOutfitResult(outfit selectedOutfit) OutfitResult {
	items := make([]RecommendedItem, 0, len(outfit.Items))
	var total int64
	for category, product := range outfit.Items {
		items = append(items, RecommendedItem{
			ProductID: product.ID,
			Category:  category,
			Name:      product.Name,
			Brand:     product.Brand,
			Price:     product.Price,
			ImageURL:  product.NobgImageURL,
			LinkURL:   product.PurchaseURL,
		})
		total += product.Price
	}
	sort.Slice(items, func(a, b int) bool {
		return displayRank(items[a].Category) < displayRank(items[b].Category)
	})
	return OutfitResult{
		Success:    true,
		Message:    "추천 완료",
		TotalPrice: total,
		Items:      items,
	}
}

func (s *Service) maxPerCategory() int {
	if s.MaxPerCategory > 0 {
		return s.MaxPerCategory
	}
	return 10
}

func (s *Service) maxRecommendations() int {
	if s.MaxRecommendations > 0 {
		return s.MaxRecommendations
	}
	return 3
}

func displayRank(category string) int {
	for i, c := range products.DisplayOrder {
		if c == category {
			return i
		}
	}
	return len(products.DisplayOrder)
}

func countCandidates(candidates map[string][]products.Product) int {
	total := 0
	for _, items := range candidates {
		total += len(items)
	}
	return total
}

package recommendations

import (
	"fmt"

	"outfit-backend/internal/products"
	"outfit-backend/internal/shared/telemetry"
)

// fallbackSelection composes outfits without the model: walk the candidate
// pool per category, rotating through items so variants differ, always
// staying under the budget. Used only when LLM fallback is enabled.
func fallbackSelection(candidates map[string][]products.Product, budget int64, numOutfits int) []selectedOutfit {
	telemetry.Info("selection.fallback", map[string]any{
		"budget":      budget,
		"num_outfits": numOutfits,
	})

	var outfits []selectedOutfit
	for i := 0; i < numOutfits; i++ {
		outfit := selectedOutfit{
			Reason: fmt.Sprintf("추천 코디 %d번입니다.", i+1),
			Items:  make(map[string]products.Product),
		}

		var total int64
		for _, category := range products.CandidateCategories {
			pool := candidates[category]
			if len(pool) == 0 {
				continue
			}
			pick := pool[i%len(pool)]
			if budget > 0 && total+pick.Price > budget {
				pick = cheapest(pool)
			}
			if budget > 0 && total+pick.Price > budget {
				continue
			}
			outfit.Items[category] = pick
			total += pick.Price
		}

		if len(outfit.Items) > 0 {
			outfits = append(outfits, outfit)
		}
	}
	return outfits
}

func cheapest(pool []products.Product) products.Product {
	best := pool[0]
	for _, p := range pool[1:] {
		if p.Price < best.Price {
			best = p
		}
	}
	return best
}

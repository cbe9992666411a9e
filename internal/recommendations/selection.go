package recommendations

import (
	"encoding/json"
	"fmt"

	"outfit-backend/internal/products"
	"outfit-backend/internal/shared/telemetry"
)

// selectedOutfit is one outfit after resolving model picks back to products.
type selectedOutfit struct {
	Reason string
	Items  map[string]products.Product
}

type rawOutfit struct {
	OutfitNumber  int              `json:"outfit_number"`
	Reason        string           `json:"reason"`
	SelectedItems map[string]int64 `json:"selected_items"`
}

type rawSelection struct {
	Outfits []rawOutfit `json:"outfits"`
}

const defaultReason = "추천 코디입니다."

// parseSelection resolves the model's JSON answer against the candidate pool.
// It accepts either {"outfits":[...]} or a bare array; unknown product IDs are
// dropped with a warning, and outfits with no resolvable items are discarded.
func parseSelection(raw json.RawMessage, candidates map[string][]products.Product) ([]selectedOutfit, error) {
	var outfits []rawOutfit

	var wrapped rawSelection
	if err := json.Unmarshal(raw, &wrapped); err == nil && len(wrapped.Outfits) > 0 {
		outfits = wrapped.Outfits
	} else if err := json.Unmarshal(raw, &outfits); err != nil {
		return nil, fmt.Errorf("parse llm selection: %w", err)
	}

	idToProduct := make(map[int64]products.Product)
	for _, items := range candidates {
		for _, item := range items {
			idToProduct[item.ID] = item
		}
	}

	var out []selectedOutfit
	for _, rawO := range outfits {
		outfit := selectedOutfit{
			Reason: rawO.Reason,
			Items:  make(map[string]products.Product),
		}
		if outfit.Reason == "" {
			outfit.Reason = defaultReason
		}

		for category, productID := range rawO.SelectedItems {
			product, ok := idToProduct[productID]
			if !ok {
				telemetry.Error("selection.unknown_product", map[string]any{
					"product_id": productID,
					"category":   category,
				})
				continue
			}
			outfit.Items[product.Category] = product
		}

		if len(outfit.Items) > 0 {
			out = append(out, outfit)
		}
	}

	return out, nil
}

// matchesCombination reports whether the outfit consists of exactly the given
// product IDs. Repeated IDs in the combination count once.
func (o selectedOutfit) matchesCombination(combo []int64) bool {
	want := make(map[int64]struct{}, len(combo))
	for _, id := range combo {
		want[id] = struct{}{}
	}
	if len(want) == 0 || len(want) != len(o.Items) {
		return false
	}
	for _, item := range o.Items {
		if _, ok := want[item.ID]; !ok {
			return false
		}
	}
	return true
}

// dropExcluded removes outfits matching any previously seen combination.
func dropExcluded(outfits []selectedOutfit, excluded [][]int64) []selectedOutfit {
	if len(excluded) == 0 {
		return outfits
	}
	var out []selectedOutfit
	for _, outfit := range outfits {
		seen := false
		for _, combo := range excluded {
			if outfit.matchesCombination(combo) {
				seen = true
				break
			}
		}
		if !seen {
			out = append(out, outfit)
		}
	}
	return out
}

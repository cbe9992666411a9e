package products

// Catalog categories, uppercase on the wire.
const (
	CategoryTop       = "TOP"
	CategoryBottom    = "BOTTOM"
	CategoryOuter     = "OUTER"
	CategoryShoes     = "SHOES"
	CategoryAccessory = "ACCESSORY"
)

// CandidateCategories are the categories queried for outfit candidates.
// Accessories are optional extras and not part of the candidate pool.
var CandidateCategories = []string{CategoryTop, CategoryBottom, CategoryOuter, CategoryShoes}

// DisplayOrder fixes the item order inside an outfit response.
var DisplayOrder = []string{CategoryTop, CategoryBottom, CategoryOuter, CategoryShoes, CategoryAccessory}

// IsValidCategory reports whether cat is one of the defined categories.
func IsValidCategory(cat string) bool {
	switch cat {
	case CategoryTop, CategoryBottom, CategoryOuter, CategoryShoes, CategoryAccessory:
		return true
	default:
		return false
	}
}

// Product is a catalog item as this service sees it. The upstream backend
// owns the catalog; this service only reads it.
type Product struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Category     string `json:"category"`
	SubCategory  string `json:"subCategory,omitempty"`
	PrimaryStyle string `json:"primaryStyle,omitempty"`
	Price        int64  `json:"price"`
	Brand        string `json:"brand"`
	ImageURL     string `json:"imageUrl"`
	NobgImageURL string `json:"nobgImageUrl,omitempty"`
	PurchaseURL  string `json:"purchaseUrl,omitempty"`
}

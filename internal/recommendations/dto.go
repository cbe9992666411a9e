package recommendations

import (
	"strings"

	"outfit-backend/internal/products"
	"outfit-backend/internal/quiz"
)

// Request is the upstream backend's recommendation request. AvailableProducts
// is a pointer so an omitted array (query the catalog) can be told apart from
// an explicitly empty one (rejected with 400).
type Request struct {
	SessionID           int64          `json:"sessionId" binding:"required"`
	Answers             []quiz.Answer  `json:"answers" binding:"required"`
	AvailableProducts   *[]ProductDto  `json:"availableProducts,omitempty"`
	ExcludeCombinations [][]int64      `json:"excludeCombinations,omitempty"`
}

// ProductDto is a catalog item as supplied inline by the upstream backend.
type ProductDto struct {
	ID       int64    `json:"id" binding:"required"`
	Name     string   `json:"name" binding:"required"`
	Category string   `json:"category" binding:"required"`
	Brand    string   `json:"brand"`
	Price    int64    `json:"price"`
	ImageURL string   `json:"imageUrl"`
	LinkURL  string   `json:"linkUrl"`
	Style    string   `json:"style"`
	Tags     []string `json:"tags,omitempty"`
}

func (p ProductDto) toProduct() products.Product {
	return products.Product{
		ID:           p.ID,
		Name:         p.Name,
		Category:     strings.ToUpper(strings.TrimSpace(p.Category)),
		PrimaryStyle: p.Style,
		Price:        p.Price,
		Brand:        p.Brand,
		ImageURL:     p.ImageURL,
		NobgImageURL: p.ImageURL,
		PurchaseURL:  p.LinkURL,
	}
}

// ItemPosition locates an item inside a composite image.
type ItemPosition struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// RecommendedItem is one product inside a recommended outfit.
type RecommendedItem struct {
	ProductID int64         `json:"productId"`
	Category  string        `json:"category"`
	Name      string        `json:"name"`
	Brand     string        `json:"brand"`
	Price     int64         `json:"price"`
	ImageURL  string        `json:"imageUrl"`
	LinkURL   string        `json:"linkUrl"`
	Position  *ItemPosition `json:"position,omitempty"`
}

// OutfitResult carries the selected items and totals for one outfit.
type OutfitResult struct {
	Success           bool              `json:"success"`
	Message           string            `json:"message"`
	CompositeImageURL *string           `json:"compositeImageUrl"`
	ImageWidth        *int              `json:"imageWidth"`
	ImageHeight       *int              `json:"imageHeight"`
	TotalPrice        int64             `json:"totalPrice"`
	Items             []RecommendedItem `json:"items"`
}

// OutfitRecommendation is one outfit in the response envelope.
type OutfitRecommendation struct {
	DisplayOrder int          `json:"displayOrder"`
	Occasion     string       `json:"occasion"`
	Season       string       `json:"season"`
	Style        string       `json:"style"`
	Reason       string       `json:"reason"`
	Status       string       `json:"status"`
	JobID        *string      `json:"jobId"`
	CreatedAt    *string      `json:"createdAt"`
	CompletedAt  *string      `json:"completedAt"`
	Result       OutfitResult `json:"result"`
	Error        *string      `json:"error"`
}

// Response is the recommendation response envelope.
type Response struct {
	RecommendedOutfits []OutfitRecommendation `json:"recommendedOutfits"`
}

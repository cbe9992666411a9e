package llm

import (
	"context"
	"encoding/json"
	"errors"
)

// CandidateItem is the slimmed product view shared with the model.
type CandidateItem struct {
	ID    int64
	Name  string
	Brand string
	Price int64
	Style string
}

// SelectionInput captures everything the model needs to compose outfits.
type SelectionInput struct {
	// Candidates maps category (TOP, BOTTOM, ...) to the candidate pool.
	Candidates map[string][]CandidateItem
	Occasion   string
	Style      string
	BodyType   string
	Budget     int64
	NumOutfits int
	// ExcludeCombinations lists product-ID sets the user has already seen.
	ExcludeCombinations [][]int64
}

// Client abstracts LLM providers for outfit selection. Implementations return
// the raw JSON document produced by the model; parsing and validation against
// the candidate pool happen in the recommendation service.
type Client interface {
	SelectOutfits(ctx context.Context, input SelectionInput) (json.RawMessage, error)
}

// ErrNotImplemented is returned by the placeholder client.
var ErrNotImplemented = errors.New("LLM not implemented")

// PlaceholderClient is a stub implementation until provider wiring is added.
type PlaceholderClient struct{}

// SelectOutfits returns ErrNotImplemented.
func (PlaceholderClient) SelectOutfits(ctx context.Context, input SelectionInput) (json.RawMessage, error) {
	_ = ctx
	_ = input
	return nil, ErrNotImplemented
}

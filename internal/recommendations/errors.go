package recommendations

import "errors"

var (
	// ErrNoCandidates means no product matched the quiz filters.
	ErrNoCandidates = errors.New("no product candidates found")
	// ErrEmptyProducts means the caller sent an explicitly empty product list.
	ErrEmptyProducts = errors.New("availableProducts must not be empty")
	// ErrLLMUnavailable means outfit selection failed upstream.
	ErrLLMUnavailable = errors.New("llm selection unavailable")
)

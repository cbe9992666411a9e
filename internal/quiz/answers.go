// Package quiz parses styling-quiz answers into the filter values the
// recommendation pipeline needs.
package quiz

import (
	"strconv"
	"strings"
)

// Answer is a single quiz answer as sent by the upstream backend.
type Answer struct {
	QuestionID      int      `json:"questionId"`
	QuestionText    string   `json:"questionText"`
	SelectedOptions []string `json:"selectedOptions"`
}

// Parsed holds the normalized quiz outcome.
type Parsed struct {
	Occasion string
	Style    string
	BodyType string
	Budget   int64
}

// Defaults used when an answer is missing or unparseable.
const (
	DefaultOccasion = "outdoor"
	DefaultStyle    = "comfortable"
	DefaultBodyType = "none"
	DefaultBudget   = 300_000
)

// UnlimitedBudget is the ceiling applied when the user picked "unlimited".
const UnlimitedBudget = 10_000_000

// Parse extracts occasion, style, body type, and budget from the answers.
// Questions are classified by Korean keywords in the question text, with the
// question ID as a fallback so the upstream can reword questions freely.
func Parse(answers []Answer) Parsed {
	result := Parsed{
		Occasion: DefaultOccasion,
		Style:    DefaultStyle,
		BodyType: DefaultBodyType,
		Budget:   DefaultBudget,
	}

	for _, answer := range answers {
		selected := firstOption(answer.SelectedOptions)
		if selected == "" {
			continue
		}

		switch classify(answer) {
		case questionOccasion:
			result.Occasion = strings.ToLower(selected)
		case questionStyle:
			result.Style = strings.ToLower(selected)
		case questionBodyType:
			result.BodyType = strings.ToLower(selected)
		case questionBudget:
			result.Budget = parseBudget(selected)
		}
	}

	return result
}

type questionKind int

const (
	questionUnknown questionKind = iota
	questionOccasion
	questionStyle
	questionBodyType
	questionBudget
)

func classify(answer Answer) questionKind {
	text := answer.QuestionText
	// Specific keywords first: "가요" is a common sentence ending and would
	// otherwise swallow budget or body-type questions.
	switch {
	case strings.Contains(text, "예산"):
		return questionBudget
	case strings.Contains(text, "체형"):
		return questionBodyType
	case strings.Contains(text, "보이고") || strings.Contains(text, "어떻게"):
		return questionStyle
	case strings.Contains(text, "어디") || strings.Contains(text, "가요"):
		return questionOccasion
	}

	switch answer.QuestionID {
	case 1:
		return questionOccasion
	case 2:
		return questionStyle
	case 3:
		return questionBodyType
	case 4:
		return questionBudget
	}
	return questionUnknown
}

func parseBudget(selected string) int64 {
	if strings.EqualFold(strings.TrimSpace(selected), "unlimited") {
		return UnlimitedBudget
	}
	value, err := strconv.ParseInt(strings.TrimSpace(selected), 10, 64)
	if err != nil || value <= 0 {
		return DefaultBudget
	}
	return value
}

func firstOption(options []string) string {
	for _, opt := range options {
		if trimmed := strings.TrimSpace(opt); trimmed != "" {
			return trimmed
		}
	}
	return ""
}

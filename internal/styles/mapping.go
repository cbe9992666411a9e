// Package styles maps quiz answers (occasion + desired style) to the catalog
// style tags the upstream backend stores on products and brands.
package styles

import (
	"fmt"
	"strings"
)

// Occasions accepted from the quiz.
const (
	OccasionWork    = "work"
	OccasionDate    = "date"
	OccasionMeeting = "meeting"
	OccasionOutdoor = "outdoor"
)

// Desired styles accepted from the quiz.
const (
	StyleClean       = "clean"
	StyleComfortable = "comfortable"
	StyleStylish     = "stylish"
	StyleHip         = "hip"
)

type pair struct {
	occasion string
	style    string
}

// Clothing style tags: hip_hop, minimalist, street, gorpcore, amekaji, cityboy.
var clothingMapping = map[pair][]string{
	{OccasionWork, StyleClean}:       {"minimalist", "cityboy"},
	{OccasionWork, StyleComfortable}: {"minimalist", "amekaji"},
	{OccasionWork, StyleStylish}:     {"cityboy", "minimalist"},
	{OccasionWork, StyleHip}:         {"street", "hip_hop"},

	{OccasionDate, StyleClean}:       {"minimalist", "cityboy"},
	{OccasionDate, StyleComfortable}: {"minimalist", "amekaji"},
	{OccasionDate, StyleStylish}:     {"cityboy", "minimalist"},
	{OccasionDate, StyleHip}:         {"street", "hip_hop"},

	{OccasionMeeting, StyleClean}:       {"minimalist", "cityboy"},
	{OccasionMeeting, StyleComfortable}: {"minimalist", "amekaji"},
	{OccasionMeeting, StyleStylish}:     {"cityboy", "minimalist"},
	{OccasionMeeting, StyleHip}:         {"street", "hip_hop"},

	{OccasionOutdoor, StyleClean}:       {"minimalist", "gorpcore"},
	{OccasionOutdoor, StyleComfortable}: {"gorpcore", "street"},
	{OccasionOutdoor, StyleStylish}:     {"street", "cityboy"},
	{OccasionOutdoor, StyleHip}:         {"hip_hop", "street"},
}

// Shoe brands carry their own style vocabulary, so shoes map separately.
var shoeMapping = map[pair][]string{
	{OccasionWork, StyleClean}:       {"minimalist", "cityboy"},
	{OccasionWork, StyleComfortable}: {"minimalist", "amekaji"},
	{OccasionWork, StyleStylish}:     {"cityboy", "minimalist"},
	{OccasionWork, StyleHip}:         {"street", "hip_hop"},

	{OccasionDate, StyleClean}:       {"minimalist", "cityboy"},
	{OccasionDate, StyleComfortable}: {"minimalist", "amekaji"},
	{OccasionDate, StyleStylish}:     {"cityboy", "minimalist"},
	{OccasionDate, StyleHip}:         {"street", "hip_hop"},

	{OccasionMeeting, StyleClean}:       {"minimalist", "cityboy"},
	{OccasionMeeting, StyleComfortable}: {"minimalist", "amekaji"},
	{OccasionMeeting, StyleStylish}:     {"cityboy", "minimalist"},
	{OccasionMeeting, StyleHip}:         {"street", "hip_hop"},

	{OccasionOutdoor, StyleClean}:       {"minimalist", "gorpcore"},
	{OccasionOutdoor, StyleComfortable}: {"gorpcore", "street"},
	{OccasionOutdoor, StyleStylish}:     {"street", "cityboy"},
	{OccasionOutdoor, StyleHip}:         {"hip_hop", "street"},
}

// defaultStyles is used when a quiz combination has no mapping.
var defaultStyles = []string{"minimalist", "street", "cityboy"}

// MappedStyles returns the clothing style tags for an (occasion, style) pair.
func MappedStyles(occasion, style string) []string {
	key := pair{strings.ToLower(occasion), strings.ToLower(style)}
	if mapped, ok := clothingMapping[key]; ok {
		return append([]string(nil), mapped...)
	}
	return append([]string(nil), defaultStyles...)
}

// ShoeStyles returns the shoe style tags for an (occasion, style) pair.
func ShoeStyles(occasion, style string) []string {
	key := pair{strings.ToLower(occasion), strings.ToLower(style)}
	if mapped, ok := shoeMapping[key]; ok {
		return append([]string(nil), mapped...)
	}
	return append([]string(nil), defaultStyles...)
}

// Korean display names sent back to the upstream backend.
var occasionKR = map[string]string{
	OccasionWork:    "회사",
	OccasionDate:    "데이트",
	OccasionMeeting: "소개팅/모임",
	OccasionOutdoor: "외출",
}

var styleKR = map[string]string{
	StyleClean:       "깔끔",
	StyleComfortable: "편안",
	StyleStylish:     "세련",
	StyleHip:         "힙",
}

// styleContextKR is the adverbial form used in LLM prompts ("멋있게 보이고
// 싶어요"), distinct from the noun form the response DTO carries.
var styleContextKR = map[string]string{
	StyleClean:       "깔끔하게",
	StyleComfortable: "편하게",
	StyleStylish:     "멋있게",
	StyleHip:         "힙하게",
}

var bodyTypeKR = map[string]string{
	"none":   "체형 고민 없음",
	"chubby": "통통한 편",
	"thin":   "마른 편",
	"height": "키 고민",
}

// OccasionDisplay returns the Korean display name for an occasion, falling
// back to the raw value.
func OccasionDisplay(occasion string) string {
	if kr, ok := occasionKR[strings.ToLower(occasion)]; ok {
		return kr
	}
	return occasion
}

// StyleDisplay returns the Korean display name for a style, falling back to
// the raw value.
func StyleDisplay(style string) string {
	if kr, ok := styleKR[strings.ToLower(style)]; ok {
		return kr
	}
	return style
}

// UserContext builds the Korean user description used in LLM prompts,
// e.g. "데이트에 멋있게 보이고 싶어요. 통통한 편."
func UserContext(occasion, style, bodyType string) string {
	occasionStr := OccasionDisplay(occasion)
	styleStr := style
	if kr, ok := styleContextKR[strings.ToLower(style)]; ok {
		styleStr = kr
	}
	bodyStr := bodyType
	if kr, ok := bodyTypeKR[strings.ToLower(bodyType)]; ok {
		bodyStr = kr
	}
	return fmt.Sprintf("%s에 %s 보이고 싶어요. %s.", occasionStr, styleStr, bodyStr)
}

package styles

import (
	"reflect"
	"strings"
	"testing"
)

func TestMappedStylesKnownPair(t *testing.T) {
	got := MappedStyles("date", "stylish")
	want := []string{"cityboy", "minimalist"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("MappedStyles(date, stylish) = %v, want %v", got, want)
	}
}

func TestMappedStylesUnknownPairFallsBack(t *testing.T) {
	got := MappedStyles("festival", "flashy")
	want := []string{"minimalist", "street", "cityboy"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("MappedStyles fallback = %v, want %v", got, want)
	}
}

func TestMappedStylesCaseInsensitive(t *testing.T) {
	if !reflect.DeepEqual(MappedStyles("WORK", "Clean"), MappedStyles("work", "clean")) {
		t.Error("MappedStyles should be case-insensitive")
	}
}

func TestMappedStylesReturnsCopy(t *testing.T) {
	first := MappedStyles("work", "hip")
	first[0] = "mutated"
	second := MappedStyles("work", "hip")
	if second[0] == "mutated" {
		t.Error("MappedStyles must not share backing arrays between calls")
	}
}

func TestShoeStylesKnownPair(t *testing.T) {
	got := ShoeStyles("outdoor", "comfortable")
	want := []string{"gorpcore", "street"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ShoeStyles(outdoor, comfortable) = %v, want %v", got, want)
	}
}

func TestOccasionDisplay(t *testing.T) {
	cases := map[string]string{
		"work":    "회사",
		"date":    "데이트",
		"meeting": "소개팅/모임",
		"outdoor": "외출",
		"unknown": "unknown",
	}
	for in, want := range cases {
		if got := OccasionDisplay(in); got != want {
			t.Errorf("OccasionDisplay(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestStyleDisplay(t *testing.T) {
	cases := map[string]string{
		"clean":       "깔끔",
		"comfortable": "편안",
		"stylish":     "세련",
		"hip":         "힙",
		"other":       "other",
	}
	for in, want := range cases {
		if got := StyleDisplay(in); got != want {
			t.Errorf("StyleDisplay(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestUserContext(t *testing.T) {
	got := UserContext("date", "stylish", "chubby")
	want := "데이트에 멋있게 보이고 싶어요. 통통한 편."
	if got != want {
		t.Errorf("UserContext = %q, want %q", got, want)
	}
}

func TestUserContextUsesAdverbialStyle(t *testing.T) {
	cases := map[string]string{
		"clean":       "깔끔하게",
		"comfortable": "편하게",
		"stylish":     "멋있게",
		"hip":         "힙하게",
	}
	for style, adverb := range cases {
		got := UserContext("work", style, "none")
		if !strings.Contains(got, adverb) {
			t.Errorf("UserContext(%q) = %q, want %q phrasing", style, got, adverb)
		}
		if display := StyleDisplay(style); strings.Contains(got, display+" 보이고") {
			t.Errorf("UserContext(%q) used display name %q instead of %q", style, display, adverb)
		}
	}
}

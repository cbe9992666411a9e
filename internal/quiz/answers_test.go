package quiz

import "testing"

func TestParseClassifiesByQuestionText(t *testing.T) {
	answers := []Answer{
		{QuestionID: 99, QuestionText: "오늘 어디 가요?", SelectedOptions: []string{"Date"}},
		{QuestionID: 98, QuestionText: "어떻게 보이고 싶어요?", SelectedOptions: []string{"Stylish"}},
		{QuestionID: 97, QuestionText: "체형 고민이 있나요?", SelectedOptions: []string{"Chubby"}},
		{QuestionID: 96, QuestionText: "예산은 얼마인가요?", SelectedOptions: []string{"200000"}},
	}

	parsed := Parse(answers)

	if parsed.Occasion != "date" {
		t.Errorf("occasion = %q, want date", parsed.Occasion)
	}
	if parsed.Style != "stylish" {
		t.Errorf("style = %q, want stylish", parsed.Style)
	}
	if parsed.BodyType != "chubby" {
		t.Errorf("bodyType = %q, want chubby", parsed.BodyType)
	}
	if parsed.Budget != 200_000 {
		t.Errorf("budget = %d, want 200000", parsed.Budget)
	}
}

func TestParseOverlappingKeywordsPreferSpecific(t *testing.T) {
	// "~가요?" endings appear on budget and body-type questions too; those
	// must not be mistaken for the occasion question.
	answers := []Answer{
		{QuestionID: 90, QuestionText: "예산은 얼마인가요?", SelectedOptions: []string{"200000"}},
		{QuestionID: 91, QuestionText: "체형 고민이 있으신가요?", SelectedOptions: []string{"chubby"}},
	}

	parsed := Parse(answers)

	if parsed.Budget != 200_000 {
		t.Errorf("budget = %d, want 200000", parsed.Budget)
	}
	if parsed.BodyType != "chubby" {
		t.Errorf("bodyType = %q, want chubby", parsed.BodyType)
	}
	if parsed.Occasion != DefaultOccasion {
		t.Errorf("occasion = %q, want untouched default %q", parsed.Occasion, DefaultOccasion)
	}
}

func TestParseFallsBackToQuestionID(t *testing.T) {
	answers := []Answer{
		{QuestionID: 1, QuestionText: "q1", SelectedOptions: []string{"Work"}},
		{QuestionID: 2, QuestionText: "q2", SelectedOptions: []string{"Clean"}},
		{QuestionID: 3, QuestionText: "q3", SelectedOptions: []string{"Thin"}},
		{QuestionID: 4, QuestionText: "q4", SelectedOptions: []string{"500000"}},
	}

	parsed := Parse(answers)

	if parsed.Occasion != "work" || parsed.Style != "clean" || parsed.BodyType != "thin" || parsed.Budget != 500_000 {
		t.Errorf("unexpected parse result: %+v", parsed)
	}
}

func TestParseDefaultsWhenAnswersMissing(t *testing.T) {
	parsed := Parse(nil)

	if parsed.Occasion != DefaultOccasion {
		t.Errorf("occasion = %q, want %q", parsed.Occasion, DefaultOccasion)
	}
	if parsed.Style != DefaultStyle {
		t.Errorf("style = %q, want %q", parsed.Style, DefaultStyle)
	}
	if parsed.BodyType != DefaultBodyType {
		t.Errorf("bodyType = %q, want %q", parsed.BodyType, DefaultBodyType)
	}
	if parsed.Budget != DefaultBudget {
		t.Errorf("budget = %d, want %d", parsed.Budget, DefaultBudget)
	}
}

func TestParseBudgetUnlimited(t *testing.T) {
	answers := []Answer{
		{QuestionID: 4, QuestionText: "예산", SelectedOptions: []string{"UNLIMITED"}},
	}

	parsed := Parse(answers)
	if parsed.Budget != UnlimitedBudget {
		t.Errorf("budget = %d, want %d", parsed.Budget, UnlimitedBudget)
	}
}

func TestParseBudgetUnparseable(t *testing.T) {
	answers := []Answer{
		{QuestionID: 4, QuestionText: "예산", SelectedOptions: []string{"많이요"}},
	}

	parsed := Parse(answers)
	if parsed.Budget != DefaultBudget {
		t.Errorf("budget = %d, want default %d", parsed.Budget, DefaultBudget)
	}
}

func TestParseSkipsEmptySelections(t *testing.T) {
	answers := []Answer{
		{QuestionID: 1, QuestionText: "어디 가요?", SelectedOptions: []string{"  ", ""}},
	}

	parsed := Parse(answers)
	if parsed.Occasion != DefaultOccasion {
		t.Errorf("occasion = %q, want default %q", parsed.Occasion, DefaultOccasion)
	}
}

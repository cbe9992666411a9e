package openai

import (
	"fmt"
	"strings"

	"outfit-backend/internal/llm"
	"outfit-backend/internal/styles"
)

// Message is a chat message in provider-neutral form.
type Message struct {
	Role    string
	Content string
}

const systemPrompt = "당신은 전문 패션 스타일리스트입니다."

// BuildSelectionPrompt renders the outfit-selection prompt. The model must
// answer with a single JSON object {"outfits":[...]} so the chat API's JSON
// response format can be enforced.
func BuildSelectionPrompt(input llm.SelectionInput) []Message {
	userContext := styles.UserContext(input.Occasion, input.Style, input.BodyType)

	budgetStr := "무제한"
	if input.Budget < 10_000_000 {
		budgetStr = fmt.Sprintf("%s원", formatPrice(input.Budget))
	}

	var candidates strings.Builder
	for _, category := range candidateOrder(input.Candidates) {
		items := input.Candidates[category]
		if len(items) == 0 {
			continue
		}
		fmt.Fprintf(&candidates, "\n## %s 후보:\n", category)
		for i, item := range items {
			fmt.Fprintf(&candidates, "%d. [%d] %s - %s (가격: %s원, 스타일: %s)\n",
				i+1, item.ID, item.Name, item.Brand, formatPrice(item.Price), item.Style)
		}
	}

	var exclusions strings.Builder
	if len(input.ExcludeCombinations) > 0 {
		exclusions.WriteString("\n## 이미 본 조합 (다시 추천하지 마세요):\n")
		for _, combo := range input.ExcludeCombinations {
			ids := make([]string, 0, len(combo))
			for _, id := range combo {
				ids = append(ids, fmt.Sprintf("%d", id))
			}
			fmt.Fprintf(&exclusions, "- [%s]\n", strings.Join(ids, ", "))
		}
	}

	user := fmt.Sprintf(`사용자의 요구사항에 맞는 최적의 코디 조합을 %d개 추천해주세요.

## 사용자 정보:
%s
예산: %s

## 상품 후보:
%s%s
## 요구사항:
1. 총 %d개의 서로 다른 코디 조합을 추천하세요.
2. 각 코디는 TOP, BOTTOM, OUTER, SHOES 카테고리에서 각각 1개씩 선택하세요.
   - 후보가 없는 카테고리는 선택하지 마세요.
3. 각 코디의 총 가격이 예산(%s)을 초과하지 않도록 하세요.
4. 색상 조화, 스타일 통일성을 고려하세요.
5. 체형 고민을 고려하여 적합한 핏을 선택하세요.
6. %d개의 코디는 서로 다양한 느낌을 주도록 구성하세요.

## 응답 형식 (JSON 객체):
{
  "outfits": [
    {
      "outfit_number": 1,
      "reason": "추천 이유 (한글, 1-2문장)",
      "selected_items": {
        "TOP": <상품ID>,
        "BOTTOM": <상품ID>,
        "OUTER": <상품ID>,
        "SHOES": <상품ID>
      }
    }
  ]
}

**반드시 위 JSON 형식으로만 응답하세요. 다른 설명은 추가하지 마세요.**`,
		input.NumOutfits, userContext, budgetStr, candidates.String(), exclusions.String(),
		input.NumOutfits, budgetStr, input.NumOutfits)

	return []Message{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: user},
	}
}

// candidateOrder keeps the prompt deterministic: fixed category order.
func candidateOrder(candidates map[string][]llm.CandidateItem) []string {
	order := []string{"TOP", "BOTTOM", "OUTER", "SHOES", "ACCESSORY"}
	out := make([]string, 0, len(order))
	for _, category := range order {
		if _, ok := candidates[category]; ok {
			out = append(out, category)
		}
	}
	return out
}

// formatPrice renders 1234567 as "1,234,567".
func formatPrice(price int64) string {
	raw := fmt.Sprintf("%d", price)
	if len(raw) <= 3 {
		return raw
	}
	var b strings.Builder
	lead := len(raw) % 3
	if lead > 0 {
		b.WriteString(raw[:lead])
	}
	for i := lead; i < len(raw); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(raw[i : i+3])
	}
	return b.String()
}

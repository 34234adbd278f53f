package matching

import "fmt"

// 替代說明中的固定數值，尚未依食材計算
const (
	ExplanationConfidence       = 85
	CookingTimeReductionMinutes = 2
)

const explanationTemplate = "%s is een goede vervanging voor %s. Betrouwbaarheid: %d%%. Pas de kooktijd aan: %d minuten korter."

// Explanation 替代說明
type Explanation struct {
	Original             string `json:"original"`
	Substitute           string `json:"substitute"`
	Confidence           int    `json:"confidence"`
	TimeReductionMinutes int    `json:"time_reduction_minutes"`
	Text                 string `json:"text"`
}

// GenerateExplanation 產生替代說明文字
func GenerateExplanation(original, substitute string) string {
	return fmt.Sprintf(explanationTemplate, substitute, original, ExplanationConfidence, CookingTimeReductionMinutes)
}

// Explain 產生結構化的替代說明
func Explain(original, substitute string) Explanation {
	return Explanation{
		Original:             original,
		Substitute:           substitute,
		Confidence:           ExplanationConfidence,
		TimeReductionMinutes: CookingTimeReductionMinutes,
		Text:                 GenerateExplanation(original, substitute),
	}
}

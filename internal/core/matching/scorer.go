package matching

import (
	"math"
	"strings"
)

// Score 計算食譜所需食材在庫存中的相符百分比 (0-100)
//
// 只要庫存中有任一項目與食材互為子字串（皆轉小寫後），該食材即視為已具備。
// 食譜食材為空時固定回傳 0。
func Score(recipeIngredients, inventory []string) int {
	if len(recipeIngredients) == 0 {
		return 0
	}

	stock := lowerAll(inventory)
	matched := 0
	for _, ingredient := range recipeIngredients {
		if inStock(strings.ToLower(ingredient), stock) {
			matched++
		}
	}

	return percentage(matched, len(recipeIngredients))
}

// MatchedIngredients 回傳庫存中已具備的食譜食材（保留食譜順序）
func MatchedIngredients(recipeIngredients, inventory []string) []string {
	matched, _ := partition(recipeIngredients, inventory)
	return matched
}

// MissingIngredients 回傳庫存中缺少的食譜食材（保留食譜順序）
func MissingIngredients(recipeIngredients, inventory []string) []string {
	_, missing := partition(recipeIngredients, inventory)
	return missing
}

// partition 將食譜食材分為已具備與缺少兩組
func partition(recipeIngredients, inventory []string) ([]string, []string) {
	stock := lowerAll(inventory)
	matched := make([]string, 0, len(recipeIngredients))
	missing := make([]string, 0)

	for _, ingredient := range recipeIngredients {
		if inStock(strings.ToLower(ingredient), stock) {
			matched = append(matched, ingredient)
		} else {
			missing = append(missing, ingredient)
		}
	}

	return matched, missing
}

// inStock 雙向子字串比對，"kip" 與 "kipfilet" 互相成立
func inStock(ingredient string, stock []string) bool {
	for _, item := range stock {
		if strings.Contains(item, ingredient) || strings.Contains(ingredient, item) {
			return true
		}
	}
	return false
}

func lowerAll(names []string) []string {
	lowered := make([]string, len(names))
	for i, name := range names {
		lowered[i] = strings.ToLower(name)
	}
	return lowered
}

// percentage 四捨五入到整數百分比
func percentage(matched, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(matched) / float64(total)))
}

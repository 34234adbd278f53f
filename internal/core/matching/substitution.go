package matching

import (
	"fmt"
	"sort"
	"strings"

	"cookmind/internal/pkg/common"
)

// NoSuggestion 查無替代食材時的預設顯示文字
const NoSuggestion = "Geen suggestie beschikbaar"

// SubstitutionTable 食材替代對照表，建立後不可變更
type SubstitutionTable struct {
	entries map[string][]string
}

// NewSubstitutionTable 建立替代對照表
// 鍵會轉為小寫；空鍵、空替代清單、轉小寫後重複的鍵都視為驗證錯誤。
func NewSubstitutionTable(entries map[string][]string) (*SubstitutionTable, error) {
	table := &SubstitutionTable{
		entries: make(map[string][]string, len(entries)),
	}

	for name, substitutes := range entries {
		if name == "" {
			return nil, common.NewValidationError("substitution table contains an empty ingredient name")
		}

		key := strings.ToLower(name)
		if _, exists := table.entries[key]; exists {
			return nil, common.NewValidationError(fmt.Sprintf("duplicate ingredient %q in substitution table", key))
		}
		if len(substitutes) == 0 {
			return nil, common.NewValidationError(fmt.Sprintf("ingredient %q has no substitutes", key))
		}
		for i, substitute := range substitutes {
			if substitute == "" {
				return nil, common.NewValidationError(fmt.Sprintf("ingredient %q has an empty substitute at position %d", key, i))
			}
		}

		table.entries[key] = append([]string(nil), substitutes...)
	}

	return table, nil
}

// Lookup 以小寫完全比對查詢替代食材，回傳副本
func (t *SubstitutionTable) Lookup(name string) ([]string, bool) {
	if t == nil {
		return nil, false
	}
	substitutes, ok := t.entries[strings.ToLower(name)]
	if !ok {
		return nil, false
	}
	return append([]string(nil), substitutes...), true
}

// Len 對照表項目數
func (t *SubstitutionTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

// Keys 依字母排序的食材名稱
func (t *SubstitutionTable) Keys() []string {
	if t == nil {
		return nil
	}
	keys := make([]string, 0, len(t.entries))
	for key := range t.entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Entries 回傳整張對照表的深層副本
func (t *SubstitutionTable) Entries() map[string][]string {
	if t == nil {
		return map[string][]string{}
	}
	entries := make(map[string][]string, len(t.entries))
	for key, substitutes := range t.entries {
		entries[key] = append([]string(nil), substitutes...)
	}
	return entries
}

// Suggestion 替代查詢結果，Found 為 false 表示沒有可用的替代食材
type Suggestion struct {
	Ingredient  string   `json:"ingredient"`
	Substitutes []string `json:"substitutes"`
	Found       bool     `json:"found"`
}

// Render 轉成顯示用清單；查無結果時回傳只含 NoSuggestion 的清單
func (s Suggestion) Render() []string {
	if !s.Found {
		return []string{NoSuggestion}
	}
	return append([]string(nil), s.Substitutes...)
}

// Resolver 替代食材查詢器
type Resolver struct {
	table *SubstitutionTable
}

// NewResolver 以注入的對照表建立查詢器，nil 視為空表
func NewResolver(table *SubstitutionTable) *Resolver {
	if table == nil {
		table = &SubstitutionTable{entries: map[string][]string{}}
	}
	return &Resolver{table: table}
}

// Suggest 查詢替代食材，以 Found 明確表示是否有結果
func (r *Resolver) Suggest(missingIngredient string) Suggestion {
	substitutes, ok := r.table.Lookup(missingIngredient)
	if !ok {
		return Suggestion{
			Ingredient:  missingIngredient,
			Substitutes: []string{},
			Found:       false,
		}
	}
	return Suggestion{
		Ingredient:  missingIngredient,
		Substitutes: substitutes,
		Found:       true,
	}
}

// SuggestSubstitutions 回傳替代食材（偏好順序），查無時回傳 [NoSuggestion]
func (r *Resolver) SuggestSubstitutions(missingIngredient string) []string {
	return r.Suggest(missingIngredient).Render()
}

// Table 目前使用的對照表
func (r *Resolver) Table() *SubstitutionTable {
	return r.table
}

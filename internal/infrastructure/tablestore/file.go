package tablestore

import (
	"fmt"
	"os"

	"cookmind/internal/core/matching"
	"cookmind/internal/pkg/common"

	"gopkg.in/yaml.v3"
)

// tableDocument 替代對照表 YAML 檔案格式
//
//	substitutions:
//	  kipfilet: [varkenshaas, tofu, kalkoenfilet]
type tableDocument struct {
	Substitutions map[string][]string `yaml:"substitutions"`
}

// LoadFile 從 YAML 檔案讀取替代對照表
func LoadFile(path string) (*matching.SubstitutionTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, common.ErrTableSource.Wrap(fmt.Errorf("reading substitution file: %w", err))
	}

	return ParseYAML(data)
}

// ParseYAML 解析 YAML 內容並驗證
func ParseYAML(data []byte) (*matching.SubstitutionTable, error) {
	var doc tableDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, common.ErrInvalidTable.Wrap(fmt.Errorf("parsing substitution YAML: %w", err))
	}

	if len(doc.Substitutions) == 0 {
		return nil, common.ErrInvalidTable.Wrap(common.NewValidationError("substitution file has no entries"))
	}

	table, err := matching.NewSubstitutionTable(doc.Substitutions)
	if err != nil {
		return nil, common.ErrInvalidTable.Wrap(err)
	}

	return table, nil
}

// MarshalYAML 將對照表輸出為 YAML
func MarshalYAML(table *matching.SubstitutionTable) ([]byte, error) {
	data, err := yaml.Marshal(tableDocument{Substitutions: table.Entries()})
	if err != nil {
		return nil, fmt.Errorf("encoding substitution YAML: %w", err)
	}
	return data, nil
}

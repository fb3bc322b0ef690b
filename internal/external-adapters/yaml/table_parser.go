// Package yaml provides YAML-based distribution table parsing and encoding.
package yaml

import (
	"fmt"
	"os"

	"github.com/ochairo/xercesdist/internal/domain/entities"
	"gopkg.in/yaml.v3"
)

// yamlTable represents the raw YAML structure of a table file
type yamlTable struct {
	Distributions map[string]yamlPair `yaml:"distributions"`
}

type yamlPair struct {
	Bits32 string `yaml:"bits32"`
	Bits64 string `yaml:"bits64"`
}

// TableParser parses YAML distribution table files
type TableParser struct{}

// NewTableParser creates a new YAML parser
func NewTableParser() *TableParser {
	return &TableParser{}
}

// ParseFile parses a YAML table file into a DistributionTable
func (p *TableParser) ParseFile(filePath string) (*entities.DistributionTable, error) {
	//nolint:gosec // G304: filePath is the table file chosen by the operator
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filePath, err)
	}

	table, err := p.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filePath, err)
	}
	return table, nil
}

// Parse parses YAML bytes into a DistributionTable
func (p *TableParser) Parse(data []byte) (*entities.DistributionTable, error) {
	var raw yamlTable
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if len(raw.Distributions) == 0 {
		return nil, fmt.Errorf("table must define distributions")
	}

	entries := make(map[entities.Family]entities.DistributionPair, len(raw.Distributions))
	for name, pair := range raw.Distributions {
		family, err := entities.ParseFamily(name)
		if err != nil {
			return nil, err
		}
		if _, dup := entries[family]; dup {
			return nil, fmt.Errorf("family %s is defined more than once", family)
		}
		entries[family] = entities.DistributionPair{
			Bits32: pair.Bits32,
			Bits64: pair.Bits64,
		}
	}

	return entities.NewDistributionTable(entries)
}

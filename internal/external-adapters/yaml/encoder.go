package yaml

import (
	"fmt"

	"github.com/ochairo/xercesdist/internal/domain/entities"
	"gopkg.in/yaml.v3"
)

type yamlSelection struct {
	Family  string   `yaml:"family"`
	Width   string   `yaml:"width"`
	Name    string   `yaml:"name"`
	Archive string   `yaml:"archive"`
	IsZip   bool     `yaml:"is_zip"`
	Is64    bool     `yaml:"is_64"`
	Pair    yamlPair `yaml:"pair"`
}

// MarshalTable renders a table in the format TableParser reads.
// Families are emitted in table order.
func MarshalTable(table *entities.DistributionTable) ([]byte, error) {
	distributions := &yaml.Node{Kind: yaml.MappingNode}
	for _, entry := range table.Entries() {
		var value yaml.Node
		if err := value.Encode(yamlPair{Bits32: entry.Pair.Bits32, Bits64: entry.Pair.Bits64}); err != nil {
			return nil, fmt.Errorf("failed to encode %s: %w", entry.Family, err)
		}
		distributions.Content = append(distributions.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: entry.Family.String()},
			&value)
	}

	doc := &yaml.Node{
		Kind: yaml.MappingNode,
		Content: []*yaml.Node{
			{Kind: yaml.ScalarNode, Value: "distributions"},
			distributions,
		},
	}

	out, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal table: %w", err)
	}
	return out, nil
}

// MarshalSelection renders a resolved selection as YAML
func MarshalSelection(sel entities.Selection) ([]byte, error) {
	out, err := yaml.Marshal(yamlSelection{
		Family:  sel.Host.Family.String(),
		Width:   sel.Host.Width.String(),
		Name:    sel.Name,
		Archive: sel.ArchiveName(),
		IsZip:   sel.IsZip,
		Is64:    sel.Is64,
		Pair:    yamlPair{Bits32: sel.Pair.Bits32, Bits64: sel.Pair.Bits64},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal selection: %w", err)
	}
	return out, nil
}

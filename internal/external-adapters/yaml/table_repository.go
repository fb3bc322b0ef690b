package yaml

import (
	"context"
	"fmt"
	"os"

	"github.com/ochairo/xercesdist/internal/domain/entities"
)

// BuiltinSource is the Source() of a repository without a table file
const BuiltinSource = "builtin"

// TableRepository implements repositories.TableRepository.
// An empty path serves the built-in table.
type TableRepository struct {
	path   string
	parser *TableParser
}

// NewTableRepository creates a table repository reading path
func NewTableRepository(path string) *TableRepository {
	return &TableRepository{
		path:   path,
		parser: NewTableParser(),
	}
}

// LoadTable returns the table from the file, or the built-in table
func (r *TableRepository) LoadTable(_ context.Context) (*entities.DistributionTable, error) {
	if r.path == "" {
		return entities.DefaultTable(), nil
	}

	if _, err := os.Stat(r.path); os.IsNotExist(err) {
		return nil, fmt.Errorf("table file not found: %s", r.path)
	}

	return r.parser.ParseFile(r.path)
}

// Source returns the table file path or "builtin"
func (r *TableRepository) Source() string {
	if r.path == "" {
		return BuiltinSource
	}
	return r.path
}

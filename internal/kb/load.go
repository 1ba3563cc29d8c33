package kb

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/cloo-solutions/loanfaq/internal/domain"
)

// LoadFile merges entries from a JSON file over the built-in table, so
// answer copy can be adjusted per deployment without a rebuild. The file
// holds an array of knowledge entries; each row replaces the built-in row
// with the same (loan type, field) key.
func (b *KnowledgeBase) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read knowledge file: %w", err)
	}

	var overrides []domain.KnowledgeEntry
	if err := json.Unmarshal(data, &overrides); err != nil {
		return fmt.Errorf("failed to parse knowledge file %s: %w", path, err)
	}

	for i := range overrides {
		e := &overrides[i]
		if err := e.Validate(); err != nil {
			return fmt.Errorf("knowledge file %s: %w", path, err)
		}
		b.put(e)
	}

	return nil
}

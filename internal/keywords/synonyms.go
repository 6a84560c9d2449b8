package keywords

import (
	"fmt"

	"github.com/JoHn11117/resume-scorer/internal/data"
)

// SynonymTable maps canonical terms to their lexical variants. Lookup is
// bidirectional: a canonical term resolves to its variants, and a variant
// resolves to the canonical term plus its sibling variants. The table is
// immutable after construction.
type SynonymTable struct {
	variants map[string][]string // normalized term -> all other forms
}

// NewSynonymTable builds a table from canonical->variants entries.
func NewSynonymTable(entries map[string][]string) *SynonymTable {
	table := &SynonymTable{variants: make(map[string][]string)}
	for canonical, forms := range entries {
		group := make([]string, 0, len(forms)+1)
		group = append(group, Normalize(canonical))
		for _, form := range forms {
			group = append(group, Normalize(form))
		}
		for _, member := range group {
			for _, other := range group {
				if other != member {
					table.variants[member] = append(table.variants[member], other)
				}
			}
		}
	}
	return table
}

// LoadSynonymTable builds the table from the embedded synonyms file.
func LoadSynonymTable() (*SynonymTable, error) {
	var entries map[string][]string
	if err := data.Load("synonyms.json", &entries); err != nil {
		return nil, fmt.Errorf("loading synonym table: %w", err)
	}
	return NewSynonymTable(entries), nil
}

// Variants returns every other form of the term (empty when the term is
// not in the table). The input is normalized before lookup.
func (t *SynonymTable) Variants(term string) []string {
	return t.variants[Normalize(term)]
}

// Size returns the number of terms with at least one variant.
func (t *SynonymTable) Size() int {
	return len(t.variants)
}

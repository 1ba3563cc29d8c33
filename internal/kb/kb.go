// Package kb holds the static loan knowledge base. The table is built once
// at startup and is read-only afterwards, so lookups are safe to call from
// any number of request goroutines.
package kb

import (
	"fmt"
	"sort"

	"github.com/cloo-solutions/loanfaq/internal/domain"
)

type key struct {
	loanType domain.LoanType
	field    domain.QueryField
}

// KnowledgeBase answers (loan type, query field) lookups.
type KnowledgeBase struct {
	entries map[key]*domain.KnowledgeEntry
}

// New builds a knowledge base from the built-in table.
func New() *KnowledgeBase {
	b := &KnowledgeBase{entries: make(map[key]*domain.KnowledgeEntry)}
	for i := range builtinEntries {
		b.put(&builtinEntries[i])
	}
	return b
}

func (b *KnowledgeBase) put(e *domain.KnowledgeEntry) {
	b.entries[key{e.LoanType, e.Field}] = e
}

// Lookup returns the entry for the given pair.
//
// A value outside the fixed enum sets yields an INVALID_KEY error; a valid
// pair with no entry behind it yields ErrEntryNotFound, which signals a
// configuration gap rather than a user mistake.
func (b *KnowledgeBase) Lookup(loanType domain.LoanType, field domain.QueryField) (*domain.KnowledgeEntry, error) {
	if !domain.IsValidLoanType(loanType) {
		return nil, domain.ErrInvalidLoanType
	}
	if !domain.IsValidQueryField(field) {
		return nil, domain.ErrInvalidQueryField
	}

	entry, ok := b.entries[key{loanType, field}]
	if !ok {
		return nil, domain.ErrEntryNotFound
	}
	return entry, nil
}

// Entries returns every entry ordered by loan type then field.
func (b *KnowledgeBase) Entries() []*domain.KnowledgeEntry {
	out := make([]*domain.KnowledgeEntry, 0, len(b.entries))
	for _, e := range b.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].LoanType != out[j].LoanType {
			return out[i].LoanType < out[j].LoanType
		}
		return out[i].Field < out[j].Field
	})
	return out
}

// MissingPairs reports every (loan type, query field) pair with no entry.
func (b *KnowledgeBase) MissingPairs() []string {
	var missing []string
	for _, lt := range domain.LoanTypes() {
		for _, qf := range domain.QueryFields() {
			if _, ok := b.entries[key{lt, qf}]; !ok {
				missing = append(missing, fmt.Sprintf("%s/%s", lt, qf))
			}
		}
	}
	return missing
}

// Validate checks full coverage and that every entry is well formed.
// An incomplete table is a deployment defect and should fail startup.
func (b *KnowledgeBase) Validate() error {
	if missing := b.MissingPairs(); len(missing) > 0 {
		return fmt.Errorf("knowledge base is missing %d entries: %v", len(missing), missing)
	}
	for _, e := range b.entries {
		if err := e.Validate(); err != nil {
			return fmt.Errorf("knowledge base entry is invalid: %w", err)
		}
	}
	return nil
}

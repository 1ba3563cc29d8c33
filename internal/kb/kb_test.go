package kb

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cloo-solutions/loanfaq/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKnowledgeBase_FullCoverage(t *testing.T) {
	b := New()

	require.NoError(t, b.Validate())
	assert.Empty(t, b.MissingPairs())

	for _, lt := range domain.LoanTypes() {
		for _, qf := range domain.QueryFields() {
			t.Run(string(lt)+"/"+string(qf), func(t *testing.T) {
				entry, err := b.Lookup(lt, qf)
				require.NoError(t, err)
				assert.NotEmpty(t, entry.Text)
			})
		}
	}
}

func TestKnowledgeBase_Lookup_InvalidKey(t *testing.T) {
	b := New()

	_, err := b.Lookup(domain.LoanType("boat"), domain.QueryFieldEligibility)
	assert.ErrorIs(t, err, domain.ErrInvalidLoanType)

	_, err = b.Lookup(domain.LoanTypeHome, domain.QueryField("tenure"))
	assert.ErrorIs(t, err, domain.ErrInvalidQueryField)
}

func TestKnowledgeBase_Lookup_NotFound(t *testing.T) {
	// A valid key with no entry is a configuration defect, distinct from
	// an invalid key.
	b := &KnowledgeBase{entries: map[key]*domain.KnowledgeEntry{}}

	_, err := b.Lookup(domain.LoanTypeHome, domain.QueryFieldEligibility)
	assert.ErrorIs(t, err, domain.ErrEntryNotFound)

	assert.Len(t, b.MissingPairs(), len(domain.LoanTypes())*len(domain.QueryFields()))
	assert.Error(t, b.Validate())
}

func TestKnowledgeBase_Lookup_Deterministic(t *testing.T) {
	b := New()

	first, err := b.Lookup(domain.LoanTypeHome, domain.QueryFieldInterestRate)
	require.NoError(t, err)
	second, err := b.Lookup(domain.LoanTypeHome, domain.QueryFieldInterestRate)
	require.NoError(t, err)

	assert.Same(t, first, second)
}

func TestKnowledgeBase_Entries_Ordered(t *testing.T) {
	b := New()

	entries := b.Entries()
	require.Len(t, entries, len(domain.LoanTypes())*len(domain.QueryFields()))

	for i := 1; i < len(entries); i++ {
		prev, cur := entries[i-1], entries[i]
		if prev.LoanType == cur.LoanType {
			assert.Less(t, string(prev.Field), string(cur.Field))
		}
	}
}

func TestKnowledgeBase_InterestRateEntriesCarryRanges(t *testing.T) {
	b := New()

	for _, lt := range domain.LoanTypes() {
		entry, err := b.Lookup(lt, domain.QueryFieldInterestRate)
		require.NoError(t, err)
		require.NotNil(t, entry.Rate, "rate range missing for %s", lt)
		assert.Greater(t, entry.Rate.Max, 0.0)
		assert.GreaterOrEqual(t, entry.Rate.Max, entry.Rate.Min)
	}
}

func TestKnowledgeBase_LoadFile_Override(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kb.json")
	override := `[{"loan_type":"home","field":"eligibility","text":"Custom home loan eligibility copy."}]`
	require.NoError(t, os.WriteFile(path, []byte(override), 0o644))

	b := New()
	require.NoError(t, b.LoadFile(path))

	entry, err := b.Lookup(domain.LoanTypeHome, domain.QueryFieldEligibility)
	require.NoError(t, err)
	assert.Equal(t, "Custom home loan eligibility copy.", entry.Text)

	// Untouched rows survive the merge.
	require.NoError(t, b.Validate())
}

func TestKnowledgeBase_LoadFile_RejectsInvalidEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kb.json")
	bad := `[{"loan_type":"boat","field":"eligibility","text":"nope"}]`
	require.NoError(t, os.WriteFile(path, []byte(bad), 0o644))

	b := New()
	assert.Error(t, b.LoadFile(path))
}

func TestKnowledgeBase_LoadFile_MissingFile(t *testing.T) {
	b := New()
	assert.Error(t, b.LoadFile(filepath.Join(t.TempDir(), "absent.json")))
}

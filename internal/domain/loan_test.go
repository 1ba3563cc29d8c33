package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLoanType(t *testing.T) {
	tests := []struct {
		input    string
		expected LoanType
	}{
		{"home", LoanTypeHome},
		{"Home", LoanTypeHome},
		{"  CAR  ", LoanTypeCar},
		{"personal", LoanTypePersonal},
		{"business", LoanTypeBusiness},
		{"Education", LoanTypeEducation},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLoanType(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseLoanType_Invalid(t *testing.T) {
	for _, input := range []string{"", "boat", "mortgage", "home loan"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseLoanType(input)
			assert.ErrorIs(t, err, ErrInvalidLoanType)
		})
	}
}

func TestParseQueryField(t *testing.T) {
	tests := []struct {
		input    string
		expected QueryField
	}{
		{"eligibility", QueryFieldEligibility},
		{"interest_rate", QueryFieldInterestRate},
		{"interest-rate", QueryFieldInterestRate},
		{"Interest Rate", QueryFieldInterestRate},
		{"average_amount", QueryFieldAverageAmount},
		{"documentation", QueryFieldDocumentation},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseQueryField(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseQueryField_Invalid(t *testing.T) {
	_, err := ParseQueryField("tenure")
	assert.ErrorIs(t, err, ErrInvalidQueryField)

	_, err = ParseQueryField("")
	assert.ErrorIs(t, err, ErrInvalidQueryField)
}

func TestKnowledgeEntry_Validate(t *testing.T) {
	valid := &KnowledgeEntry{
		LoanType: LoanTypeHome,
		Field:    QueryFieldInterestRate,
		Text:     "Home loan rates range from 8.35% to 9.50% p.a.",
		Rate:     &RateRange{Min: 8.35, Max: 9.5},
	}
	assert.NoError(t, valid.Validate())

	missingRate := &KnowledgeEntry{
		LoanType: LoanTypeHome,
		Field:    QueryFieldInterestRate,
		Text:     "some text",
	}
	assert.Error(t, missingRate.Validate())

	badType := &KnowledgeEntry{
		LoanType: LoanType("boat"),
		Field:    QueryFieldEligibility,
		Text:     "some text",
	}
	assert.Error(t, badType.Validate())

	emptyText := &KnowledgeEntry{
		LoanType: LoanTypeCar,
		Field:    QueryFieldEligibility,
	}
	assert.Error(t, emptyText.Validate())

	var nilEntry *KnowledgeEntry
	assert.Error(t, nilEntry.Validate())
}

func TestRateRange_String(t *testing.T) {
	r := RateRange{Min: 8.35, Max: 9.5}
	assert.Equal(t, "8.35% to 9.50% p.a.", r.String())
}

package service

import (
	"testing"

	"github.com/cloo-solutions/loanfaq/internal/dialogflow"
	"github.com/cloo-solutions/loanfaq/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEligibilityChecker_Verdicts(t *testing.T) {
	checker := NewEligibilityChecker()

	tests := []struct {
		name     string
		loanType domain.LoanType
		params   dialogflow.Params
		contains string
	}{
		{
			name:     "home eligible",
			loanType: domain.LoanTypeHome,
			params:   dialogflow.Params{"age": 25.0, "income": 45000.0},
			contains: "eligible for a home loan",
		},
		{
			name:     "home too young",
			loanType: domain.LoanTypeHome,
			params:   dialogflow.Params{"age": 19.0, "income": 45000.0},
			contains: "at least 21 years old",
		},
		{
			name:     "home income too low",
			loanType: domain.LoanTypeHome,
			params:   dialogflow.Params{"age": 30.0, "income": 12000.0},
			contains: "₹30,000",
		},
		{
			name:     "car eligible at boundary",
			loanType: domain.LoanTypeCar,
			params:   dialogflow.Params{"age": 18.0, "income": 20000.0},
			contains: "eligible for a car loan",
		},
		{
			name:     "personal rejected under 25",
			loanType: domain.LoanTypePersonal,
			params:   dialogflow.Params{"age": 22.0, "income": 60000.0},
			contains: "at least 25 years old",
		},
		{
			name:     "business eligible",
			loanType: domain.LoanTypeBusiness,
			params:   dialogflow.Params{"income": 40000.0},
			contains: "eligible for a business loan",
		},
		{
			name:     "business income too low",
			loanType: domain.LoanTypeBusiness,
			params:   dialogflow.Params{"income": 39999.0},
			contains: "₹40,000",
		},
		{
			name:     "education graduate under 30",
			loanType: domain.LoanTypeEducation,
			params:   dialogflow.Params{"age": 24.0, "qualification": "post graduate"},
			contains: "eligible for an education loan",
		},
		{
			name:     "education too old",
			loanType: domain.LoanTypeEducation,
			params:   dialogflow.Params{"age": 34.0, "qualification": "graduate"},
			contains: "no older than 30",
		},
		{
			name:     "education not a graduate",
			loanType: domain.LoanTypeEducation,
			params:   dialogflow.Params{"age": 24.0, "qualification": "diploma"},
			contains: "must be a graduate",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, err := checker.Check(tt.loanType, tt.params)
			require.NoError(t, err)
			assert.Contains(t, text, tt.contains)
		})
	}
}

func TestEligibilityChecker_PromptsForMissingDetails(t *testing.T) {
	checker := NewEligibilityChecker()

	tests := []struct {
		name     string
		loanType domain.LoanType
		params   dialogflow.Params
		contains string
	}{
		{"home missing both", domain.LoanTypeHome, dialogflow.Params{}, "age and your monthly income"},
		{"car missing income", domain.LoanTypeCar, dialogflow.Params{"age": 30.0}, "age and your monthly income"},
		{"business missing income", domain.LoanTypeBusiness, dialogflow.Params{}, "monthly business income"},
		{"education missing qualification", domain.LoanTypeEducation, dialogflow.Params{"age": 24.0}, "qualification"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, err := checker.Check(tt.loanType, tt.params)
			require.NoError(t, err)
			assert.Contains(t, text, tt.contains)
		})
	}
}

func TestEligibilityChecker_AgeFromGenericNumber(t *testing.T) {
	checker := NewEligibilityChecker()

	// The platform sometimes tags an age with @sys.number instead of the
	// age entity; income comes in as a currency object.
	params := dialogflow.Params{
		"number": 27.0,
		"income": map[string]any{"amount": 50000.0, "currency": "INR"},
	}

	text, err := checker.Check(domain.LoanTypeHome, params)
	require.NoError(t, err)
	assert.Contains(t, text, "eligible for a home loan")
}

func TestEligibilityChecker_InvalidLoanType(t *testing.T) {
	checker := NewEligibilityChecker()

	_, err := checker.Check(domain.LoanType("boat"), dialogflow.Params{})
	assert.ErrorIs(t, err, domain.ErrInvalidLoanType)
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		amount   int64
		expected string
	}{
		{500, "500"},
		{20000, "20,000"},
		{30000, "30,000"},
		{300000, "3,00,000"},
		{3000000, "30,00,000"},
		{15000000, "1,50,00,000"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatAmount(tt.amount))
		})
	}
}

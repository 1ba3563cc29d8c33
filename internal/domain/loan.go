package domain

import "strings"

// LoanType represents one of the five loan categories the bot answers for
type LoanType string

const (
	LoanTypeHome      LoanType = "home"
	LoanTypeCar       LoanType = "car"
	LoanTypePersonal  LoanType = "personal"
	LoanTypeBusiness  LoanType = "business"
	LoanTypeEducation LoanType = "education"
)

// QueryField represents the aspect of a loan the user is asking about
type QueryField string

const (
	QueryFieldEligibility   QueryField = "eligibility"
	QueryFieldInterestRate  QueryField = "interest_rate"
	QueryFieldAverageAmount QueryField = "average_amount"
	QueryFieldDocumentation QueryField = "documentation"
)

// LoanTypes lists every loan category in a stable order.
func LoanTypes() []LoanType {
	return []LoanType{LoanTypeHome, LoanTypeCar, LoanTypePersonal, LoanTypeBusiness, LoanTypeEducation}
}

// QueryFields lists every query field in a stable order.
func QueryFields() []QueryField {
	return []QueryField{QueryFieldEligibility, QueryFieldInterestRate, QueryFieldAverageAmount, QueryFieldDocumentation}
}

// ParseLoanType normalizes a platform-supplied loan type string.
// Values outside the fixed set yield ErrInvalidLoanType.
func ParseLoanType(s string) (LoanType, error) {
	switch LoanType(strings.ToLower(strings.TrimSpace(s))) {
	case LoanTypeHome:
		return LoanTypeHome, nil
	case LoanTypeCar:
		return LoanTypeCar, nil
	case LoanTypePersonal:
		return LoanTypePersonal, nil
	case LoanTypeBusiness:
		return LoanTypeBusiness, nil
	case LoanTypeEducation:
		return LoanTypeEducation, nil
	}
	return "", ErrInvalidLoanType
}

// ParseQueryField normalizes a platform-supplied query field string.
// Hyphens and spaces are accepted in place of underscores.
func ParseQueryField(s string) (QueryField, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	normalized = strings.ReplaceAll(normalized, "-", "_")
	normalized = strings.ReplaceAll(normalized, " ", "_")

	switch QueryField(normalized) {
	case QueryFieldEligibility:
		return QueryFieldEligibility, nil
	case QueryFieldInterestRate:
		return QueryFieldInterestRate, nil
	case QueryFieldAverageAmount:
		return QueryFieldAverageAmount, nil
	case QueryFieldDocumentation:
		return QueryFieldDocumentation, nil
	}
	return "", ErrInvalidQueryField
}

// IsValidLoanType checks if a LoanType is within the fixed set
func IsValidLoanType(t LoanType) bool {
	switch t {
	case LoanTypeHome, LoanTypeCar, LoanTypePersonal, LoanTypeBusiness, LoanTypeEducation:
		return true
	}
	return false
}

// IsValidQueryField checks if a QueryField is within the fixed set
func IsValidQueryField(f QueryField) bool {
	switch f {
	case QueryFieldEligibility, QueryFieldInterestRate, QueryFieldAverageAmount, QueryFieldDocumentation:
		return true
	}
	return false
}

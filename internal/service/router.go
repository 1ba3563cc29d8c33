package service

import (
	"github.com/cloo-solutions/loanfaq/internal/dialogflow"
	"github.com/cloo-solutions/loanfaq/internal/domain"
)

// Intent display names the platform is configured to emit.
const (
	IntentGetEligibility   = "GetEligibility"
	IntentGetInterestRate  = "GetInterestRate"
	IntentGetAverageAmount = "GetAverageAmount"
	IntentGetDocumentation = "GetDocumentation"
	IntentCheckEligibility = "CheckEligibility"
)

// intentFields maps each FAQ intent onto the knowledge base field it asks
// about. CheckEligibility is handled separately since it computes a verdict
// instead of quoting the table.
var intentFields = map[string]domain.QueryField{
	IntentGetEligibility:   domain.QueryFieldEligibility,
	IntentGetInterestRate:  domain.QueryFieldInterestRate,
	IntentGetAverageAmount: domain.QueryFieldAverageAmount,
	IntentGetDocumentation: domain.QueryFieldDocumentation,
}

// entityFlags are per-loan parameters some agent versions emit instead of a
// single loan-type entity. Their presence alone signals the loan type.
var entityFlags = []struct {
	param    string
	loanType domain.LoanType
}{
	{"Home_eligibility", domain.LoanTypeHome},
	{"Car_eligibility", domain.LoanTypeCar},
	{"education_eligibility", domain.LoanTypeEducation},
	{"edu_eligibility", domain.LoanTypeEducation},
	{"personal_eligibility", domain.LoanTypePersonal},
	{"Business_eligibility", domain.LoanTypeBusiness},
}

// RouteKey is the resolved knowledge base lookup key for one request.
type RouteKey struct {
	LoanType domain.LoanType
	Field    domain.QueryField
}

// Router maps a recognized intent plus extracted parameters onto an internal
// lookup key. No fuzzy matching happens here; free text was already resolved
// upstream by the platform.
type Router struct{}

func NewRouter() *Router {
	return &Router{}
}

// Route is total over the configured intent set: every supported intent
// yields a key or a typed domain error, never an unhandled failure.
func (r *Router) Route(intentName string, params dialogflow.Params) (RouteKey, error) {
	field, ok := intentFields[intentName]
	if !ok {
		return RouteKey{}, domain.ErrUnrecognizedIntent
	}

	loanType, err := r.LoanType(params)
	if err != nil {
		return RouteKey{}, err
	}

	// An explicit query-field parameter may narrow the question further
	// (e.g. a generic FAQ intent carrying field=documentation).
	if raw, ok := params.String("query-field", "field"); ok {
		parsed, err := domain.ParseQueryField(raw)
		if err != nil {
			return RouteKey{}, err
		}
		field = parsed
	}

	return RouteKey{LoanType: loanType, Field: field}, nil
}

// Supports reports whether the intent has a route.
func (r *Router) Supports(intentName string) bool {
	if intentName == IntentCheckEligibility {
		return true
	}
	_, ok := intentFields[intentName]
	return ok
}

// LoanType resolves the loan type from the merged parameters. The primary
// signal is the loan-type entity; older agent versions instead set one of
// the per-loan entity flags.
func (r *Router) LoanType(params dialogflow.Params) (domain.LoanType, error) {
	if raw, ok := params.String("loan-type", "loanType", "loan_type"); ok {
		return domain.ParseLoanType(raw)
	}

	for _, flag := range entityFlags {
		if _, ok := params.String(flag.param); ok {
			return flag.loanType, nil
		}
	}

	return "", domain.ErrMissingLoanType
}

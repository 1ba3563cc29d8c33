package domain

import "fmt"

// RateRange is an annual interest rate band in percent.
type RateRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

func (r RateRange) String() string {
	return fmt.Sprintf("%.2f%% to %.2f%% p.a.", r.Min, r.Max)
}

// KnowledgeEntry is one answer in the loan knowledge base, keyed by
// (LoanType, QueryField). Entries are built once at startup and never
// mutated afterwards.
type KnowledgeEntry struct {
	LoanType LoanType   `json:"loan_type"`
	Field    QueryField `json:"field"`

	// Text is the display answer returned to the platform.
	Text string `json:"text"`

	// Rate is set for interest_rate entries.
	Rate *RateRange `json:"rate,omitempty"`

	// AverageAmount is set for average_amount entries, in rupees.
	AverageAmount int64 `json:"average_amount,omitempty"`
}

// Validate checks an entry is well formed
func (e *KnowledgeEntry) Validate() error {
	if e == nil {
		return fmt.Errorf("knowledge entry cannot be nil")
	}
	if !IsValidLoanType(e.LoanType) {
		return fmt.Errorf("knowledge entry loan type is invalid: %s", e.LoanType)
	}
	if !IsValidQueryField(e.Field) {
		return fmt.Errorf("knowledge entry query field is invalid: %s", e.Field)
	}
	if e.Text == "" {
		return fmt.Errorf("knowledge entry text is required for %s/%s", e.LoanType, e.Field)
	}
	if e.Field == QueryFieldInterestRate {
		if e.Rate == nil {
			return fmt.Errorf("interest rate entry for %s is missing its rate range", e.LoanType)
		}
		if e.Rate.Min <= 0 || e.Rate.Max < e.Rate.Min {
			return fmt.Errorf("interest rate range for %s is invalid: %+v", e.LoanType, *e.Rate)
		}
	}
	if e.Field == QueryFieldAverageAmount && e.AverageAmount <= 0 {
		return fmt.Errorf("average amount entry for %s must be positive", e.LoanType)
	}
	return nil
}

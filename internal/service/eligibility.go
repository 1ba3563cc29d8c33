package service

import (
	"fmt"
	"strings"

	"github.com/cloo-solutions/loanfaq/internal/dialogflow"
	"github.com/cloo-solutions/loanfaq/internal/domain"
)

// EligibilityCriteria holds the sanction rules for one loan category.
type EligibilityCriteria struct {
	MinAge           int
	MaxAge           int
	MinMonthlyIncome int64
	NeedsGraduate    bool
}

var eligibilityRules = map[domain.LoanType]EligibilityCriteria{
	domain.LoanTypeHome:      {MinAge: 21, MinMonthlyIncome: 30000},
	domain.LoanTypeCar:       {MinAge: 18, MinMonthlyIncome: 20000},
	domain.LoanTypePersonal:  {MinAge: 25, MinMonthlyIncome: 25000},
	domain.LoanTypeBusiness:  {MinMonthlyIncome: 40000},
	domain.LoanTypeEducation: {MaxAge: 30, NeedsGraduate: true},
}

// EligibilityChecker evaluates loan eligibility from the applicant details
// the platform extracted (age, income, qualification).
type EligibilityChecker struct{}

func NewEligibilityChecker() *EligibilityChecker {
	return &EligibilityChecker{}
}

// Check returns the verdict text for the given loan type, or a prompt asking
// for the details still missing. The evaluation is pure; any conversation
// memory lives on the platform's contexts.
func (c *EligibilityChecker) Check(loanType domain.LoanType, params dialogflow.Params) (string, error) {
	rules, ok := eligibilityRules[loanType]
	if !ok {
		return "", domain.ErrInvalidLoanType
	}

	age, hasAge := params.Number("age", "number")
	income, hasIncome := params.Number("income", "number")
	qualification, hasQualification := params.String("qualification")

	switch loanType {
	case domain.LoanTypeBusiness:
		if !hasIncome {
			return "To check your eligibility for a business loan, I need to know your monthly business income.", nil
		}
		if int64(income) >= rules.MinMonthlyIncome {
			return "Fantastic! You are eligible for a business loan.", nil
		}
		return fmt.Sprintf("Sorry, to be eligible for a business loan, your minimum monthly income must be at least ₹%s.", formatAmount(rules.MinMonthlyIncome)), nil

	case domain.LoanTypeEducation:
		if !hasAge || !hasQualification {
			return "To check your eligibility for an education loan, I need your age and qualification (for example, 'under graduate' or 'post graduate').", nil
		}
		if strings.Contains(strings.ToLower(qualification), "graduate") && int(age) <= rules.MaxAge {
			return "Congratulations! You are eligible for an education loan.", nil
		}
		return fmt.Sprintf("Sorry, you do not meet the criteria for an education loan. You must be a graduate and no older than %d.", rules.MaxAge), nil

	default:
		if !hasAge || !hasIncome {
			return fmt.Sprintf("To check your %s loan eligibility, I need a few more details. What is your age and your monthly income?", loanType), nil
		}
		if int(age) >= rules.MinAge && int64(income) >= rules.MinMonthlyIncome {
			return fmt.Sprintf("Great news! Based on your age and income, you are eligible for a %s loan.", loanType), nil
		}
		return fmt.Sprintf("Sorry, you do not meet the criteria for a %s loan. You must be at least %d years old and have a minimum monthly income of ₹%s.",
			loanType, rules.MinAge, formatAmount(rules.MinMonthlyIncome)), nil
	}
}

// formatAmount renders a rupee amount with Indian digit grouping
// (e.g. 3000000 -> 30,00,000).
func formatAmount(amount int64) string {
	s := fmt.Sprintf("%d", amount)
	if len(s) <= 3 {
		return s
	}

	head := s[:len(s)-3]
	tail := s[len(s)-3:]

	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}

	return strings.Join(groups, ",") + "," + tail
}

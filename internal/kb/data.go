package kb

import "github.com/cloo-solutions/loanfaq/internal/domain"

// builtinEntries is the shipped answer table. Amounts are in rupees; rate
// ranges are annual percentages. Deployments can override individual rows
// with LOANFAQ_KNOWLEDGE_FILE.
var builtinEntries = []domain.KnowledgeEntry{
	// Home loans
	{
		LoanType: domain.LoanTypeHome,
		Field:    domain.QueryFieldEligibility,
		Text:     "To be eligible for a home loan you must be at least 21 years old with a minimum monthly income of ₹30,000.",
	},
	{
		LoanType: domain.LoanTypeHome,
		Field:    domain.QueryFieldInterestRate,
		Text:     "Home loan interest rates currently range from 8.35% to 9.50% p.a., depending on your credit profile and tenure.",
		Rate:     &domain.RateRange{Min: 8.35, Max: 9.50},
	},
	{
		LoanType:      domain.LoanTypeHome,
		Field:         domain.QueryFieldAverageAmount,
		Text:          "Home loans are typically sanctioned for around ₹30,00,000, up to 80% of the property value.",
		AverageAmount: 3000000,
	},
	{
		LoanType: domain.LoanTypeHome,
		Field:    domain.QueryFieldDocumentation,
		Text:     "For a home loan you will need identity and address proof, the last 3 months of salary slips, 6 months of bank statements, and the property sale agreement.",
	},

	// Car loans
	{
		LoanType: domain.LoanTypeCar,
		Field:    domain.QueryFieldEligibility,
		Text:     "To be eligible for a car loan you must be at least 18 years old with a minimum monthly income of ₹20,000.",
	},
	{
		LoanType: domain.LoanTypeCar,
		Field:    domain.QueryFieldInterestRate,
		Text:     "Car loan interest rates currently range from 8.75% to 11.25% p.a. for new vehicles.",
		Rate:     &domain.RateRange{Min: 8.75, Max: 11.25},
	},
	{
		LoanType:      domain.LoanTypeCar,
		Field:         domain.QueryFieldAverageAmount,
		Text:          "Car loans are typically sanctioned for around ₹6,00,000, up to 90% of the on-road price.",
		AverageAmount: 600000,
	},
	{
		LoanType: domain.LoanTypeCar,
		Field:    domain.QueryFieldDocumentation,
		Text:     "For a car loan you will need identity and address proof, income proof for the last 3 months, and the vehicle proforma invoice.",
	},

	// Personal loans
	{
		LoanType: domain.LoanTypePersonal,
		Field:    domain.QueryFieldEligibility,
		Text:     "To be eligible for a personal loan you must be at least 25 years old with a minimum monthly income of ₹25,000.",
	},
	{
		LoanType: domain.LoanTypePersonal,
		Field:    domain.QueryFieldInterestRate,
		Text:     "Personal loan interest rates currently range from 10.50% to 16.00% p.a. since they are unsecured.",
		Rate:     &domain.RateRange{Min: 10.50, Max: 16.00},
	},
	{
		LoanType:      domain.LoanTypePersonal,
		Field:         domain.QueryFieldAverageAmount,
		Text:          "Personal loans are typically sanctioned for around ₹3,00,000 with tenures up to 5 years.",
		AverageAmount: 300000,
	},
	{
		LoanType: domain.LoanTypePersonal,
		Field:    domain.QueryFieldDocumentation,
		Text:     "For a personal loan you will need identity and address proof, the last 3 months of salary slips, and 3 months of bank statements.",
	},

	// Business loans
	{
		LoanType: domain.LoanTypeBusiness,
		Field:    domain.QueryFieldEligibility,
		Text:     "To be eligible for a business loan your business must generate a minimum monthly income of ₹40,000.",
	},
	{
		LoanType: domain.LoanTypeBusiness,
		Field:    domain.QueryFieldInterestRate,
		Text:     "Business loan interest rates currently range from 11.00% to 18.00% p.a., depending on turnover and vintage.",
		Rate:     &domain.RateRange{Min: 11.00, Max: 18.00},
	},
	{
		LoanType:      domain.LoanTypeBusiness,
		Field:         domain.QueryFieldAverageAmount,
		Text:          "Business loans are typically sanctioned for around ₹15,00,000 for established businesses.",
		AverageAmount: 1500000,
	},
	{
		LoanType: domain.LoanTypeBusiness,
		Field:    domain.QueryFieldDocumentation,
		Text:     "For a business loan you will need business registration proof, 2 years of income tax returns, 12 months of bank statements, and GST filings.",
	},

	// Education loans
	{
		LoanType: domain.LoanTypeEducation,
		Field:    domain.QueryFieldEligibility,
		Text:     "To be eligible for an education loan you must be a graduate (or enrolled in a recognized course) and no older than 30.",
	},
	{
		LoanType: domain.LoanTypeEducation,
		Field:    domain.QueryFieldInterestRate,
		Text:     "Education loan interest rates currently range from 8.15% to 11.50% p.a., with concessions for female applicants at many lenders.",
		Rate:     &domain.RateRange{Min: 8.15, Max: 11.50},
	},
	{
		LoanType:      domain.LoanTypeEducation,
		Field:         domain.QueryFieldAverageAmount,
		Text:          "Education loans are typically sanctioned for around ₹10,00,000; amounts above ₹7,50,000 usually require collateral.",
		AverageAmount: 1000000,
	},
	{
		LoanType: domain.LoanTypeEducation,
		Field:    domain.QueryFieldDocumentation,
		Text:     "For an education loan you will need identity proof, the institute admission letter, a fee schedule, academic records, and co-applicant income proof.",
	},
}

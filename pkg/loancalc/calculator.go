// Package loancalc computes home loan eligibility from income, existing
// obligations and property value using a fixed amortization policy.
package loancalc

import "math"

// Lending policy constants. These are fixed policy, not inputs.
const (
	FOIR               = 0.50 // max fraction of income toward all EMIs
	AnnualInterestRate = 8.5  // percent p.a.
	TenureMonths       = 240  // 20 years
	LTVRatio           = 0.80 // max loan fraction of property value
)

// Result is the full eligibility breakdown for one calculation. Computed
// fresh per request, never persisted.
type Result struct {
	EligibleLoanAmount     float64 `json:"eligible_loan_amount"`
	MonthlyEMI             float64 `json:"monthly_emi"`
	TotalMonthlyObligation float64 `json:"total_monthly_obligation"`
	DebtToIncomeRatio      float64 `json:"debt_to_income_ratio"`
	Recommendation         string  `json:"recommendation"`
	MaxLTVAmount           float64 `json:"max_ltv_amount"`
	InterestRate           float64 `json:"interest_rate"`
	TenureYears            int     `json:"tenure_years"`
}

// ComputeEligibility is a pure, total function: it performs no input
// validation and always returns a result. Callers must ensure the three
// values parsed correctly before calling.
//
// The affordable EMI headroom is converted to a principal by inverting the
// annuity formula EMI = P·r·(1+r)^n / ((1+r)^n - 1), the principal is
// capped by LTV, then the actual EMI is recomputed forward from the capped
// principal. When the LTV cap does not bind, the debt-to-income ratio
// lands exactly on FOIR.
func ComputeEligibility(monthlyIncome, existingEMI, propertyValue float64) Result {
	monthlyRate := AnnualInterestRate / 12 / 100

	maxTotalEMI := monthlyIncome * FOIR
	maxNewEMI := maxTotalEMI - existingEMI
	if maxNewEMI < 0 {
		maxNewEMI = 0
	}

	var eligibleLoan float64
	if maxNewEMI > 0 {
		compound := math.Pow(1+monthlyRate, TenureMonths)
		eligibleLoan = maxNewEMI * ((compound - 1) / (monthlyRate * compound))
	}

	maxLoanByLTV := propertyValue * LTVRatio
	eligibleLoan = math.Min(eligibleLoan, maxLoanByLTV)

	var monthlyEMI float64
	if eligibleLoan > 0 {
		compound := math.Pow(1+monthlyRate, TenureMonths)
		monthlyEMI = (eligibleLoan * monthlyRate * compound) / (compound - 1)
	}

	totalObligation := existingEMI + monthlyEMI
	var dtiRatio float64
	if monthlyIncome > 0 {
		dtiRatio = totalObligation / monthlyIncome * 100
	}

	return Result{
		EligibleLoanAmount:     round2(eligibleLoan),
		MonthlyEMI:             round2(monthlyEMI),
		TotalMonthlyObligation: round2(totalObligation),
		DebtToIncomeRatio:      round2(dtiRatio),
		Recommendation:         recommend(dtiRatio),
		MaxLTVAmount:           round2(maxLoanByLTV),
		InterestRate:           AnnualInterestRate,
		TenureYears:            TenureMonths / 12,
	}
}

// recommend maps the debt-to-income ratio to a risk tier. Upper bounds are
// inclusive.
func recommend(dtiRatio float64) string {
	switch {
	case dtiRatio <= 40:
		return "Excellent - Low Risk"
	case dtiRatio <= 50:
		return "Good - Moderate Risk"
	case dtiRatio <= 60:
		return "Moderate - Higher Risk"
	default:
		return "High Risk - Caution Advised"
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

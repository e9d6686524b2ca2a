package loancalc

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 0.05
}

func TestComputeEligibility(t *testing.T) {
	tests := []struct {
		name           string
		income         float64
		existingEMI    float64
		propertyValue  float64
		wantLoan       float64
		wantEMI        float64
		wantObligation float64
		wantDTI        float64
		wantRecommend  string
	}{
		{
			name:           "headroom lands exactly on FOIR",
			income:         80000,
			existingEMI:    15000,
			propertyValue:  5000000,
			wantLoan:       2880771.00,
			wantEMI:        25000.00,
			wantObligation: 40000.00,
			wantDTI:        50.0,
			wantRecommend:  "Good - Moderate Risk",
		},
		{
			name:           "LTV cap binds before FOIR",
			income:         200000,
			existingEMI:    0,
			propertyValue:  1000000,
			wantLoan:       800000.00,
			wantEMI:        6942.59,
			wantObligation: 6942.59,
			wantDTI:        3.47,
			wantRecommend:  "Excellent - Low Risk",
		},
		{
			name:           "existing EMI above FOIR leaves no headroom",
			income:         30000,
			existingEMI:    20000,
			propertyValue:  2000000,
			wantLoan:       0,
			wantEMI:        0,
			wantObligation: 20000.00,
			wantDTI:        66.67,
			wantRecommend:  "High Risk - Caution Advised",
		},
		{
			name:           "zero income yields zero ratio",
			income:         0,
			existingEMI:    0,
			propertyValue:  1000000,
			wantLoan:       0,
			wantEMI:        0,
			wantObligation: 0,
			wantDTI:        0,
			wantRecommend:  "Excellent - Low Risk",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeEligibility(tt.income, tt.existingEMI, tt.propertyValue)

			if !almostEqual(got.EligibleLoanAmount, tt.wantLoan) {
				t.Errorf("EligibleLoanAmount = %.2f, want %.2f", got.EligibleLoanAmount, tt.wantLoan)
			}
			if !almostEqual(got.MonthlyEMI, tt.wantEMI) {
				t.Errorf("MonthlyEMI = %.2f, want %.2f", got.MonthlyEMI, tt.wantEMI)
			}
			if !almostEqual(got.TotalMonthlyObligation, tt.wantObligation) {
				t.Errorf("TotalMonthlyObligation = %.2f, want %.2f", got.TotalMonthlyObligation, tt.wantObligation)
			}
			if !almostEqual(got.DebtToIncomeRatio, tt.wantDTI) {
				t.Errorf("DebtToIncomeRatio = %.2f, want %.2f", got.DebtToIncomeRatio, tt.wantDTI)
			}
			if got.Recommendation != tt.wantRecommend {
				t.Errorf("Recommendation = %q, want %q", got.Recommendation, tt.wantRecommend)
			}
		})
	}
}

func TestComputeEligibilityDeterministic(t *testing.T) {
	first := ComputeEligibility(80000, 15000, 5000000)
	for i := 0; i < 10; i++ {
		got := ComputeEligibility(80000, 15000, 5000000)
		if got != first {
			t.Fatalf("run %d differs: %+v vs %+v", i, got, first)
		}
	}
}

func TestComputeEligibilityPolicyFields(t *testing.T) {
	got := ComputeEligibility(50000, 5000, 10000000)

	if got.InterestRate != AnnualInterestRate {
		t.Errorf("InterestRate = %v, want %v", got.InterestRate, AnnualInterestRate)
	}
	if got.TenureYears != TenureMonths/12 {
		t.Errorf("TenureYears = %d, want %d", got.TenureYears, TenureMonths/12)
	}
	if !almostEqual(got.MaxLTVAmount, 8000000) {
		t.Errorf("MaxLTVAmount = %.2f, want 8000000", got.MaxLTVAmount)
	}
	// LTV does not bind here, so the ratio must land on FOIR exactly.
	if !almostEqual(got.DebtToIncomeRatio, 50.0) {
		t.Errorf("DebtToIncomeRatio = %.2f, want 50.0", got.DebtToIncomeRatio)
	}
}

func TestRecommendBoundaries(t *testing.T) {
	tests := []struct {
		dti  float64
		want string
	}{
		{0, "Excellent - Low Risk"},
		{40, "Excellent - Low Risk"},
		{40.01, "Good - Moderate Risk"},
		{50, "Good - Moderate Risk"},
		{50.01, "Moderate - Higher Risk"},
		{60, "Moderate - Higher Risk"},
		{60.01, "High Risk - Caution Advised"},
		{120, "High Risk - Caution Advised"},
	}

	for _, tt := range tests {
		if got := recommend(tt.dti); got != tt.want {
			t.Errorf("recommend(%v) = %q, want %q", tt.dti, got, tt.want)
		}
	}
}

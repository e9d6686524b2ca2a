package service

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"banking-assistant-be/internal/constant"
	"banking-assistant-be/pkg/dialogue"
	"banking-assistant-be/pkg/loancalc"
)

func humanizeIntent(intent string) string {
	return strings.ReplaceAll(intent, "_", " ")
}

func formatLoanResult(in dialogue.CalculatorInput, r loancalc.Result) string {
	closing := constant.LoanResultHealthyLine
	if r.DebtToIncomeRatio >= 65 {
		closing = constant.LoanResultCautionLine
	}

	return "📊 **Loan Eligibility Results**\n\n" +
		fmt.Sprintf("💼 Monthly Income: ₹%s\n", groupDigits(int64(in.MonthlyIncome))) +
		fmt.Sprintf("💳 Existing EMIs: ₹%s\n", groupDigits(int64(in.ExistingEMI))) +
		fmt.Sprintf("🏠 Property Value: ₹%s\n\n", groupDigits(int64(in.PropertyValue))) +
		fmt.Sprintf("✅ **Maximum Loan Amount:** ₹%s\n", formatAmount(r.EligibleLoanAmount)) +
		fmt.Sprintf("✅ **Monthly EMI @ %s%%:** ₹%s\n", formatRatio(r.InterestRate), formatAmount(r.MonthlyEMI)) +
		fmt.Sprintf("✅ **Total Obligation:** ₹%s\n", formatAmount(r.TotalMonthlyObligation)) +
		fmt.Sprintf("📈 **Debt-to-Income Ratio:** %s%%\n\n", formatRatio(r.DebtToIncomeRatio)) +
		fmt.Sprintf("💡 **Recommendation:** %s\n\n", r.Recommendation) +
		closing
}

// formatAmount renders a 2-decimal-rounded amount with thousands
// separators, dropping cents when they are zero.
func formatAmount(v float64) string {
	cents := int64(math.Round(v * 100))
	whole := cents / 100
	frac := cents % 100
	if frac < 0 {
		frac = -frac
	}
	if frac == 0 {
		return groupDigits(whole)
	}
	return fmt.Sprintf("%s.%02d", groupDigits(whole), frac)
}

func formatRatio(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func groupDigits(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}

	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}

	if neg {
		return "-" + b.String()
	}
	return b.String()
}

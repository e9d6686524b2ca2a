package dialogue

import (
	"fmt"
	"strconv"
	"strings"
)

// CalculatorInput is the parsed triple the loan calculator expects.
type CalculatorInput struct {
	MonthlyIncome int
	ExistingEMI   int
	PropertyValue int
}

// ParseCalculatorInput parses "income, existing_emi, property_value".
// Exactly three comma-separated integers are required; anything else is a
// recoverable format error.
func ParseCalculatorInput(input string) (CalculatorInput, error) {
	parts := strings.Split(input, ",")
	if len(parts) != 3 {
		return CalculatorInput{}, fmt.Errorf("need exactly 3 values, got %d", len(parts))
	}

	values := make([]int, 3)
	for i, part := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return CalculatorInput{}, fmt.Errorf("value %d is not a whole number: %q", i+1, strings.TrimSpace(part))
		}
		values[i] = v
	}

	return CalculatorInput{
		MonthlyIncome: values[0],
		ExistingEMI:   values[1],
		PropertyValue: values[2],
	}, nil
}

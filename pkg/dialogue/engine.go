// Package dialogue holds the state machine primitives of the multi-turn
// orchestrator: trigger evaluation against a stored session context,
// calculator input parsing, and per-session serialization.
package dialogue

import (
	"strings"

	"banking-assistant-be/pkg/knowledge"
	"banking-assistant-be/pkg/store"
)

// Trigger identifies which transition fires for an in-flight dialogue.
type Trigger int

const (
	// TriggerNone: no stored-context transition matched; the input is
	// handled as a fresh query.
	TriggerNone Trigger = iota

	// TriggerCalculatorInput: the session awaits calculator values; the
	// input is consumed as such regardless of content.
	TriggerCalculatorInput

	// TriggerDocs / TriggerSteps: document checklist or application steps
	// requested for the stored loan-eligibility bank.
	TriggerDocs
	TriggerSteps

	// TriggerCalculate: the user asked to run the loan calculator.
	TriggerCalculate

	// TriggerBankSelection: the input names a bank while an intent is
	// stored, resolving (intent, bank).
	TriggerBankSelection
)

// Evaluate applies the transition guards in precedence order against the
// stored context and the (already run) bank detection result. detectedBank
// is empty when the detector found nothing.
func Evaluate(sctx *store.SessionContext, input, detectedBank string) Trigger {
	if sctx == nil {
		return TriggerNone
	}

	if sctx.PendingAction == store.PendingLoanCalculation {
		return TriggerCalculatorInput
	}

	lower := strings.ToLower(input)
	loanFlow := sctx.DetectedIntent == knowledge.IntentLoanEligibility

	if loanFlow && sctx.DetectedBank != "" {
		if lower == "docs" {
			return TriggerDocs
		}
		if lower == "steps" {
			return TriggerSteps
		}
	}

	if loanFlow && strings.Contains(lower, "calculate") {
		return TriggerCalculate
	}

	if detectedBank != "" {
		return TriggerBankSelection
	}

	return TriggerNone
}

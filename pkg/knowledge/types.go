package knowledge

// Bank/platform identifiers. This is a closed set; the detector and the
// knowledge base only ever produce values from it.
const (
	BankSBI       = "SBI"
	BankHDFC      = "HDFC"
	BankICICI     = "ICICI"
	BankAxis      = "Axis"
	BankKotak     = "Kotak"
	BankGooglePay = "Google Pay"
	BankPaytm     = "Paytm"
	BankPhonePe   = "PhonePe"
)

// Intent labels the classifier model emits.
const (
	IntentGreeting           = "greeting_general"
	IntentGoodbye            = "goodbye_general"
	IntentThanks             = "thanks_general"
	IntentPasswordReset      = "account_password_reset"
	IntentAccountStatement   = "account_statement"
	IntentLoanEligibility    = "loan_eligibility_check"
	IntentCardLostBlocked    = "card_lost_blocked"
	IntentUPIPaymentFailure  = "upi_payment_failure"
	IntentBalanceCheck       = "balance_check"
	IntentMiniStatement      = "mini_statement"
	IntentCardActivation     = "card_activation"
	IntentFundTransfer       = "fund_transfer"
	IntentChequeStatus       = "cheque_status"
	IntentUpdateMobileNumber = "update_mobile_number"
)

// Response kinds for simple (bank-independent) entries.
const (
	KindInfo     = "info"
	KindGreeting = "greeting"
	KindGoodbye  = "goodbye"
	KindThanks   = "thanks"
)

// Workflow is one ordered set of user-facing steps for completing a task
// with a specific bank/platform.
type Workflow struct {
	Name   string   `json:"name"`
	Steps  []string `json:"steps"`
	Link   string   `json:"link,omitempty"`
	Urgent bool     `json:"urgent,omitempty"`
}

// WorkflowEntry is the immutable per-bank payload of a bank-keyed intent:
// a headline message plus its sub-workflows.
type WorkflowEntry struct {
	Message             string     `json:"message"`
	Workflows           []Workflow `json:"workflows"`
	CalculatorAvailable bool       `json:"calculator_available,omitempty"`
}

// IntentKnowledge is either a simple entry (fixed message, no bank needed)
// or a bank-keyed entry (per-bank workflows). Exactly one variant is set.
type IntentKnowledge struct {
	// Simple variant
	Kind    string
	Message string

	// Bank-keyed variant
	Banks     map[string]*WorkflowEntry
	BankOrder []string
}

// Simple reports whether this entry resolves without a bank.
func (k *IntentKnowledge) Simple() bool {
	return k.Banks == nil
}

// SupportReference carries per-bank customer support links and helplines.
type SupportReference struct {
	Bank              string `json:"bank"`
	AccountManagement string `json:"account_management"`
	FraudRisk         string `json:"fraud_risk"`
	PaymentProblem    string `json:"payment_problem"`
	InvestmentInfo    string `json:"investment_info"`
	Helpline          string `json:"helpline"`
}

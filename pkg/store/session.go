package store

// SessionContext is the mutable per-conversation record kept while a
// dialogue is mid-flow (bank not chosen yet, or the loan calculator
// engaged). Fully resolved answers never leave a context behind.
type SessionContext struct {
	OriginalQuery  string `json:"original_query"`
	DetectedIntent string `json:"detected_intent"`
	DetectedBank   string `json:"detected_bank,omitempty"`
	PendingAction  string `json:"pending_action,omitempty"`
}

// Pending actions
const (
	PendingNone            = ""
	PendingLoanCalculation = "AWAITING_LOAN_CALCULATION"
)

// Dialogue states. State is never stored directly; it is a pure function
// of the context fields.
const (
	StateIdle                = "IDLE"
	StateAwaitingBank        = "AWAITING_BANK"
	StateBankResolved        = "BANK_RESOLVED"
	StateAwaitingCalculation = "AWAITING_CALCULATION"
)

// State reports the dialogue state this context represents. A nil context
// means no dialogue is in flight.
func (c *SessionContext) State() string {
	switch {
	case c == nil:
		return StateIdle
	case c.PendingAction == PendingLoanCalculation:
		return StateAwaitingCalculation
	case c.DetectedBank != "":
		return StateBankResolved
	default:
		return StateAwaitingBank
	}
}

package dto

import (
	"github.com/google/uuid"

	"banking-assistant-be/pkg/loancalc"
)

type ChatRequest struct {
	SessionId string `json:"session_id" validate:"required"`
	UserInput string `json:"user_input" validate:"required"`
}

type ChatResponse struct {
	UserQuery      string        `json:"user_query"`
	DetectedIntent string        `json:"detected_intent"`
	DetectedBank   *string       `json:"detected_bank"`
	Response       *ResponseBody `json:"response"`
}

// ResponseBody type tags. Consumers switch on Type; only the fields for
// that variant are populated.
const (
	ResponseTypeInfo             = "info"
	ResponseTypeGreeting         = "greeting"
	ResponseTypeGoodbye          = "goodbye"
	ResponseTypeThanks           = "thanks"
	ResponseTypeWorkflow         = "workflow"
	ResponseTypeBankSelection    = "bank_selection"
	ResponseTypeNotFound         = "not_found"
	ResponseTypeCalculatorPrompt = "calculator_prompt"
	ResponseTypeLoanCalculation  = "loan_calculation"
	ResponseTypeError            = "error"
)

// ResponseBody is the tagged union of everything the assistant can answer
// with.
type ResponseBody struct {
	Type    string `json:"type"`
	Message string `json:"message"`

	// workflow
	Workflows []WorkflowDTO `json:"workflows,omitempty"`
	Options   []OptionDTO   `json:"options,omitempty"`
	Helpline  string        `json:"helpline,omitempty"`

	// bank_selection
	AvailableBanks []string `json:"available_banks,omitempty"`

	// loan_calculation
	CalculationData *loancalc.Result `json:"calculation_data,omitempty"`
}

type WorkflowDTO struct {
	Name   string   `json:"name"`
	Steps  []string `json:"steps"`
	Link   string   `json:"link,omitempty"`
	Urgent bool     `json:"urgent,omitempty"`
}

type OptionDTO struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type CreateSessionResponse struct {
	Id uuid.UUID `json:"id"`
}

type SupportReferenceResponse struct {
	Bank              string `json:"bank"`
	AccountManagement string `json:"account_management"`
	FraudRisk         string `json:"fraud_risk"`
	PaymentProblem    string `json:"payment_problem"`
	InvestmentInfo    string `json:"investment_info"`
	Helpline          string `json:"helpline"`
}

type HealthResponse struct {
	Status      string `json:"status"`
	ModelLoaded bool   `json:"model_loaded"`
}

type RootResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
	Version string `json:"version"`
}

package classifier

import (
	"context"
	"strings"

	"banking-assistant-be/pkg/knowledge"
)

// KeywordClassifier is a deterministic, dependency-free provider used for
// local development and tests when no model server is configured. It
// approximates the trained model with keyword rules; like the model, it is
// total and always returns some label.
type KeywordClassifier struct{}

var _ IntentClassifier = &KeywordClassifier{}

func NewKeywordClassifier() *KeywordClassifier {
	return &KeywordClassifier{}
}

type keywordRule struct {
	keywords []string
	intent   string
}

// Rules are checked in order; more specific phrases come first.
var keywordRules = []keywordRule{
	{[]string{"mini statement"}, knowledge.IntentMiniStatement},
	{[]string{"statement", "transaction history"}, knowledge.IntentAccountStatement},
	{[]string{"password", "ipin", "pin reset", "reset my pin"}, knowledge.IntentPasswordReset},
	{[]string{"loan"}, knowledge.IntentLoanEligibility},
	{[]string{"lost", "stolen", "block"}, knowledge.IntentCardLostBlocked},
	{[]string{"activate"}, knowledge.IntentCardActivation},
	{[]string{"upi", "payment failed", "payment failure"}, knowledge.IntentUPIPaymentFailure},
	{[]string{"balance"}, knowledge.IntentBalanceCheck},
	{[]string{"transfer", "neft", "rtgs", "imps"}, knowledge.IntentFundTransfer},
	{[]string{"cheque", "check status"}, knowledge.IntentChequeStatus},
	{[]string{"mobile number", "phone number"}, knowledge.IntentUpdateMobileNumber},
	{[]string{"thank"}, knowledge.IntentThanks},
	{[]string{"bye", "goodbye"}, knowledge.IntentGoodbye},
	{[]string{"hello", "hi ", "hey"}, knowledge.IntentGreeting},
}

func (c *KeywordClassifier) Classify(_ context.Context, text string) (string, error) {
	lower := strings.ToLower(strings.TrimSpace(text)) + " "
	for _, rule := range keywordRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.intent, nil
			}
		}
	}
	return "general_query", nil
}

func (c *KeywordClassifier) Ready(_ context.Context) bool {
	return true
}

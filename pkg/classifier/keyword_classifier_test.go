package classifier

import (
	"context"
	"testing"

	"banking-assistant-be/pkg/knowledge"
)

func TestKeywordClassifier(t *testing.T) {
	c := NewKeywordClassifier()
	ctx := context.Background()

	tests := []struct {
		text string
		want string
	}{
		{"I forgot my password", knowledge.IntentPasswordReset},
		{"check my home loan eligibility", knowledge.IntentLoanEligibility},
		{"my card was stolen", knowledge.IntentCardLostBlocked},
		{"upi payment stuck", knowledge.IntentUPIPaymentFailure},
		{"what is my balance", knowledge.IntentBalanceCheck},
		{"download my account statement", knowledge.IntentAccountStatement},
		{"mini statement please", knowledge.IntentMiniStatement},
		{"neft transfer help", knowledge.IntentFundTransfer},
		{"cheque not cleared", knowledge.IntentChequeStatus},
		{"update my mobile number", knowledge.IntentUpdateMobileNumber},
		{"activate my new card", knowledge.IntentCardActivation},
		{"thank you so much", knowledge.IntentThanks},
		{"goodbye", knowledge.IntentGoodbye},
		{"hello there", knowledge.IntentGreeting},
		{"hi", knowledge.IntentGreeting},
		{"tell me a joke", "general_query"},
		{"", "general_query"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := c.Classify(ctx, tt.text)
			if err != nil {
				t.Fatalf("Classify(%q) error = %v", tt.text, err)
			}
			if got != tt.want {
				t.Errorf("Classify(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestKeywordClassifierRuleOrder(t *testing.T) {
	c := NewKeywordClassifier()

	// "mini statement" must not fall into the generic statement rule.
	got, _ := c.Classify(context.Background(), "sbi mini statement")
	if got != knowledge.IntentMiniStatement {
		t.Errorf("Classify = %q, want %q", got, knowledge.IntentMiniStatement)
	}
}

func TestKeywordClassifierReady(t *testing.T) {
	if !NewKeywordClassifier().Ready(context.Background()) {
		t.Error("keyword classifier should always be ready")
	}
}

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"banking-assistant-be/internal/constant"
	"banking-assistant-be/internal/dto"
	"banking-assistant-be/internal/repository/memory"
	"banking-assistant-be/pkg/knowledge"
	"banking-assistant-be/pkg/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubClassifier returns canned intents keyed by input text, with a fixed
// fallback. It stands in for the external model.
type stubClassifier struct {
	byInput  map[string]string
	fallback string
	err      error
}

func (s *stubClassifier) Classify(_ context.Context, text string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	if intent, ok := s.byInput[text]; ok {
		return intent, nil
	}
	return s.fallback, nil
}

func (s *stubClassifier) Ready(_ context.Context) bool { return s.err == nil }

type nopLogger struct{}

func (nopLogger) Debug(string, string, map[string]interface{}) {}
func (nopLogger) Info(string, string, map[string]interface{})  {}
func (nopLogger) Warn(string, string, map[string]interface{})  {}
func (nopLogger) Error(string, string, map[string]interface{}) {}
func (nopLogger) Sync() error                                  { return nil }

type capturingPublisher struct {
	published []string
}

func (p *capturingPublisher) PublishChatResolved(_ context.Context, _ string, resp *dto.ChatResponse) {
	p.published = append(p.published, resp.Response.Type)
}

type fixture struct {
	svc       IAssistantService
	sessions  *memory.SessionRepository
	publisher *capturingPublisher
}

func newFixture(classifier *stubClassifier) *fixture {
	sessions := memory.NewSessionRepository(time.Minute)
	publisher := &capturingPublisher{}
	svc := NewAssistantService(classifier, knowledge.NewBase(), sessions, publisher, nopLogger{})
	return &fixture{svc: svc, sessions: sessions, publisher: publisher}
}

func chat(t *testing.T, f *fixture, sessionID, input string) *dto.ChatResponse {
	t.Helper()
	resp, err := f.svc.Chat(context.Background(), &dto.ChatRequest{SessionId: sessionID, UserInput: input})
	require.NoError(t, err)
	require.NotNil(t, resp.Response)
	return resp
}

func TestChatWorkflowWithBankNamed(t *testing.T) {
	f := newFixture(&stubClassifier{
		byInput: map[string]string{"reset my sbi password": knowledge.IntentPasswordReset},
	})

	resp := chat(t, f, "s1", "reset my sbi password")

	assert.Equal(t, knowledge.IntentPasswordReset, resp.DetectedIntent)
	require.NotNil(t, resp.DetectedBank)
	assert.Equal(t, knowledge.BankSBI, *resp.DetectedBank)
	assert.Equal(t, dto.ResponseTypeWorkflow, resp.Response.Type)
	assert.NotEmpty(t, resp.Response.Workflows)
	assert.Empty(t, resp.Response.Options)
	assert.NotEmpty(t, resp.Response.Helpline)

	// One-shot resolution stores no context.
	_, ok := f.sessions.Get(context.Background(), "s1")
	assert.False(t, ok)
}

func TestChatBankSelectionDialogue(t *testing.T) {
	f := newFixture(&stubClassifier{
		byInput: map[string]string{"I need a new password": knowledge.IntentPasswordReset},
	})
	ctx := context.Background()

	// Turn 1: intent without a bank prompts for one and stores the context.
	resp := chat(t, f, "s1", "I need a new password")
	assert.Equal(t, dto.ResponseTypeBankSelection, resp.Response.Type)
	assert.Nil(t, resp.DetectedBank)
	assert.Equal(t, []string{
		knowledge.BankSBI, knowledge.BankHDFC, knowledge.BankICICI,
		knowledge.BankAxis, knowledge.BankKotak,
		knowledge.BankGooglePay, knowledge.BankPaytm, knowledge.BankPhonePe,
	}, resp.Response.AvailableBanks)

	sctx, ok := f.sessions.Get(ctx, "s1")
	require.True(t, ok)
	assert.Equal(t, knowledge.IntentPasswordReset, sctx.DetectedIntent)
	assert.Equal(t, "I need a new password", sctx.OriginalQuery)

	// Turn 2: naming the bank resolves the stored intent.
	resp = chat(t, f, "s1", "HDFC")
	assert.Equal(t, knowledge.IntentPasswordReset, resp.DetectedIntent)
	require.NotNil(t, resp.DetectedBank)
	assert.Equal(t, knowledge.BankHDFC, *resp.DetectedBank)
	assert.Equal(t, dto.ResponseTypeWorkflow, resp.Response.Type)
	assert.Empty(t, resp.Response.Options)

	sctx, ok = f.sessions.Get(ctx, "s1")
	require.True(t, ok)
	assert.Equal(t, knowledge.BankHDFC, sctx.DetectedBank)
}

func TestChatLoanDialogueEndToEnd(t *testing.T) {
	f := newFixture(&stubClassifier{
		byInput: map[string]string{"check my home loan eligibility": knowledge.IntentLoanEligibility},
	})
	ctx := context.Background()

	// Turn 1: loan eligibility without a bank.
	resp := chat(t, f, "s1", "check my home loan eligibility")
	assert.Equal(t, dto.ResponseTypeBankSelection, resp.Response.Type)
	assert.Equal(t, []string{knowledge.BankSBI, knowledge.BankHDFC, knowledge.BankICICI}, resp.Response.AvailableBanks)

	// Turn 2: bank selection attaches the calculator options.
	resp = chat(t, f, "s1", "HDFC")
	assert.Equal(t, dto.ResponseTypeWorkflow, resp.Response.Type)
	require.Len(t, resp.Response.Options, 3)
	assert.Equal(t, "calculate", resp.Response.Options[0].Value)
	assert.Equal(t, "docs", resp.Response.Options[1].Value)
	assert.Equal(t, "steps", resp.Response.Options[2].Value)

	sctx, ok := f.sessions.Get(ctx, "s1")
	require.True(t, ok)
	assert.Equal(t, knowledge.BankHDFC, sctx.DetectedBank)

	// Turn 3: "calculate" moves the session to awaiting input.
	resp = chat(t, f, "s1", "calculate")
	assert.Equal(t, constant.IntentLoanCalculatorPrompt, resp.DetectedIntent)
	assert.Equal(t, dto.ResponseTypeCalculatorPrompt, resp.Response.Type)

	sctx, ok = f.sessions.Get(ctx, "s1")
	require.True(t, ok)
	assert.Equal(t, store.PendingLoanCalculation, sctx.PendingAction)
	assert.Equal(t, store.StateAwaitingCalculation, sctx.State())

	// Turn 4: the triple produces the calculation and ends the dialogue.
	resp = chat(t, f, "s1", "80000, 15000, 5000000")
	assert.Equal(t, constant.IntentLoanCalculationResult, resp.DetectedIntent)
	assert.Equal(t, dto.ResponseTypeLoanCalculation, resp.Response.Type)
	require.NotNil(t, resp.Response.CalculationData)
	assert.InDelta(t, 50.0, resp.Response.CalculationData.DebtToIncomeRatio, 0.01)
	assert.InDelta(t, 25000.0, resp.Response.CalculationData.MonthlyEMI, 0.01)
	assert.Equal(t, "Good - Moderate Risk", resp.Response.CalculationData.Recommendation)
	assert.Contains(t, resp.Response.Message, "Good - Moderate Risk")

	_, ok = f.sessions.Get(ctx, "s1")
	assert.False(t, ok, "session context should be cleared after the calculation")
}

func TestChatCalculatorFormatErrorKeepsContext(t *testing.T) {
	f := newFixture(&stubClassifier{
		byInput: map[string]string{"loan eligibility for hdfc": knowledge.IntentLoanEligibility},
	})
	ctx := context.Background()

	chat(t, f, "s1", "loan eligibility for hdfc")
	chat(t, f, "s1", "calculate")

	resp := chat(t, f, "s1", "abc, def")
	assert.Equal(t, constant.IntentError, resp.DetectedIntent)
	assert.Equal(t, dto.ResponseTypeError, resp.Response.Type)

	// The session still awaits input, so a corrected triple works.
	sctx, ok := f.sessions.Get(ctx, "s1")
	require.True(t, ok)
	assert.Equal(t, store.PendingLoanCalculation, sctx.PendingAction)

	resp = chat(t, f, "s1", "80000, 15000, 5000000")
	assert.Equal(t, dto.ResponseTypeLoanCalculation, resp.Response.Type)
}

func TestChatLoanQueryWithBankSkipsSelection(t *testing.T) {
	f := newFixture(&stubClassifier{
		byInput: map[string]string{"hdfc home loan eligibility": knowledge.IntentLoanEligibility},
	})
	ctx := context.Background()

	resp := chat(t, f, "s1", "hdfc home loan eligibility")
	assert.Equal(t, dto.ResponseTypeWorkflow, resp.Response.Type)
	require.NotNil(t, resp.DetectedBank)
	assert.Equal(t, knowledge.BankHDFC, *resp.DetectedBank)

	// The dialogue stays open so calculate/docs/steps can follow directly.
	sctx, ok := f.sessions.Get(ctx, "s1")
	require.True(t, ok)
	assert.Equal(t, knowledge.IntentLoanEligibility, sctx.DetectedIntent)
	assert.Equal(t, knowledge.BankHDFC, sctx.DetectedBank)

	resp = chat(t, f, "s1", "docs")
	assert.Equal(t, constant.IntentLoanDocuments, resp.DetectedIntent)
	assert.Contains(t, resp.Response.Message, "HDFC")

	resp = chat(t, f, "s1", "steps")
	assert.Equal(t, constant.IntentLoanApplicationSteps, resp.DetectedIntent)
	assert.Contains(t, resp.Response.Message, "HDFC")
}

func TestChatUnsupportedBankClearsContext(t *testing.T) {
	f := newFixture(&stubClassifier{
		byInput: map[string]string{"upi payment failed": knowledge.IntentUPIPaymentFailure},
	})
	ctx := context.Background()

	resp := chat(t, f, "s1", "upi payment failed")
	assert.Equal(t, dto.ResponseTypeBankSelection, resp.Response.Type)

	// SBI is not a supported platform for UPI failures.
	resp = chat(t, f, "s1", "sbi")
	assert.Equal(t, dto.ResponseTypeNotFound, resp.Response.Type)

	_, ok := f.sessions.Get(ctx, "s1")
	assert.False(t, ok, "unsupported bank is terminal for the dialogue")
}

func TestChatSimpleIntents(t *testing.T) {
	f := newFixture(&stubClassifier{
		byInput: map[string]string{
			"hello":     knowledge.IntentGreeting,
			"thanks":    knowledge.IntentThanks,
			"bye":       knowledge.IntentGoodbye,
			"rtgs info": "fund_transfer",
		},
	})

	for _, input := range []string{"hello", "thanks", "bye", "rtgs info"} {
		resp := chat(t, f, "s1", input)
		assert.Equal(t, dto.ResponseTypeInfo, resp.Response.Type, "input %q", input)
		assert.NotEmpty(t, resp.Response.Message)
	}
}

func TestChatUnknownIntent(t *testing.T) {
	f := newFixture(&stubClassifier{fallback: "general_query"})

	resp := chat(t, f, "s1", "tell me a joke")
	assert.Equal(t, "general_query", resp.DetectedIntent)
	assert.Equal(t, dto.ResponseTypeNotFound, resp.Response.Type)
	assert.Contains(t, resp.Response.Message, "general query")
}

func TestChatClassifierFailure(t *testing.T) {
	f := newFixture(&stubClassifier{err: errors.New("model unavailable")})

	_, err := f.svc.Chat(context.Background(), &dto.ChatRequest{SessionId: "s1", UserInput: "hello"})
	require.Error(t, err)
	assert.Empty(t, f.publisher.published)
}

func TestChatUnknownStoredIntentFallsThrough(t *testing.T) {
	f := newFixture(&stubClassifier{
		byInput: map[string]string{"hdfc": knowledge.IntentGreeting},
	})
	ctx := context.Background()

	// A context whose intent the knowledge base does not know. The bank
	// mention cannot resolve it, so the turn is classified fresh.
	f.sessions.Save(ctx, "s1", &store.SessionContext{DetectedIntent: "general_query"})

	resp := chat(t, f, "s1", "hdfc")
	assert.Equal(t, knowledge.IntentGreeting, resp.DetectedIntent)
	assert.Equal(t, dto.ResponseTypeInfo, resp.Response.Type)
}

func TestChatSessionsAreIsolated(t *testing.T) {
	f := newFixture(&stubClassifier{
		byInput: map[string]string{
			"loan eligibility": knowledge.IntentLoanEligibility,
			"hello":            knowledge.IntentGreeting,
		},
	})
	ctx := context.Background()

	chat(t, f, "s1", "loan eligibility")

	// A different session is unaffected by s1's open dialogue.
	resp := chat(t, f, "s2", "hello")
	assert.Equal(t, dto.ResponseTypeInfo, resp.Response.Type)

	_, ok := f.sessions.Get(ctx, "s2")
	assert.False(t, ok)
	_, ok = f.sessions.Get(ctx, "s1")
	assert.True(t, ok)
}

func TestChatPublishesResolvedEvents(t *testing.T) {
	f := newFixture(&stubClassifier{
		byInput: map[string]string{"hello": knowledge.IntentGreeting},
	})

	chat(t, f, "s1", "hello")
	require.Len(t, f.publisher.published, 1)
	assert.Equal(t, dto.ResponseTypeInfo, f.publisher.published[0])
}

func TestChatTrimsInput(t *testing.T) {
	f := newFixture(&stubClassifier{
		byInput: map[string]string{"hello": knowledge.IntentGreeting},
	})

	resp := chat(t, f, "s1", "   hello \n")
	assert.Equal(t, knowledge.IntentGreeting, resp.DetectedIntent)
	assert.Equal(t, "hello", resp.UserQuery)
}

func TestSupport(t *testing.T) {
	f := newFixture(&stubClassifier{})

	ref, ok := f.svc.Support(context.Background(), "sbi")
	require.True(t, ok)
	assert.Equal(t, knowledge.BankSBI, ref.Bank)
	assert.NotEmpty(t, ref.Helpline)

	// Aliases resolve the same way chat input does.
	ref, ok = f.svc.Support(context.Background(), "gpay")
	require.True(t, ok)
	assert.Equal(t, knowledge.BankGooglePay, ref.Bank)

	_, ok = f.svc.Support(context.Background(), "unknown bank")
	assert.False(t, ok)
}

func TestCreateSession(t *testing.T) {
	f := newFixture(&stubClassifier{})

	a := f.svc.CreateSession(context.Background())
	b := f.svc.CreateSession(context.Background())
	assert.NotEqual(t, a.Id, b.Id)
}

func TestHealth(t *testing.T) {
	f := newFixture(&stubClassifier{})
	res := f.svc.Health(context.Background())
	assert.Equal(t, "healthy", res.Status)
	assert.True(t, res.ModelLoaded)

	f = newFixture(&stubClassifier{err: errors.New("down")})
	res = f.svc.Health(context.Background())
	assert.False(t, res.ModelLoaded)
}

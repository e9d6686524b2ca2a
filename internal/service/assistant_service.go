package service

import (
	"context"
	"fmt"
	"strings"

	"banking-assistant-be/internal/constant"
	"banking-assistant-be/internal/dto"
	"banking-assistant-be/internal/pkg/logger"
	"banking-assistant-be/internal/repository/contract"
	"banking-assistant-be/pkg/bankdetect"
	"banking-assistant-be/pkg/classifier"
	"banking-assistant-be/pkg/dialogue"
	"banking-assistant-be/pkg/knowledge"
	"banking-assistant-be/pkg/loancalc"
	"banking-assistant-be/pkg/store"

	"github.com/google/uuid"
)

// IAssistantService is the dialogue orchestrator boundary: one request,
// one structured response, with the session context advanced in between.
type IAssistantService interface {
	Chat(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error)
	CreateSession(ctx context.Context) *dto.CreateSessionResponse
	Support(ctx context.Context, bank string) (*dto.SupportReferenceResponse, bool)
	Health(ctx context.Context) *dto.HealthResponse
}

type assistantService struct {
	classifier classifier.IntentClassifier
	kb         *knowledge.Base
	sessions   contract.ISessionRepository
	publisher  IPublisherService
	logger     logger.ILogger

	// Serializes the read-modify-write cycle per session id. Independent
	// sessions stay fully concurrent.
	locks *dialogue.KeyedMutex
}

func NewAssistantService(
	intentClassifier classifier.IntentClassifier,
	kb *knowledge.Base,
	sessions contract.ISessionRepository,
	publisher IPublisherService,
	sysLogger logger.ILogger,
) IAssistantService {
	return &assistantService{
		classifier: intentClassifier,
		kb:         kb,
		sessions:   sessions,
		publisher:  publisher,
		logger:     sysLogger,
		locks:      dialogue.NewKeyedMutex(),
	}
}

func (s *assistantService) Chat(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	input := strings.TrimSpace(req.UserInput)

	unlock := s.locks.Lock(req.SessionId)
	defer unlock()

	resp, err := s.handle(ctx, req.SessionId, input)
	if err != nil {
		s.logger.Error("assistant", "chat failed", map[string]interface{}{
			"session_id": req.SessionId,
			"error":      err.Error(),
		})
		return nil, err
	}

	s.logger.Info("assistant", "chat handled", map[string]interface{}{
		"session_id":    req.SessionId,
		"intent":        resp.DetectedIntent,
		"response_type": resp.Response.Type,
	})
	s.publisher.PublishChatResolved(ctx, req.SessionId, resp)

	return resp, nil
}

// handle walks the transition table: stored-context triggers first, in
// precedence order, then fresh-query composition as the fallback.
func (s *assistantService) handle(ctx context.Context, sessionID, input string) (*dto.ChatResponse, error) {
	if sctx, ok := s.sessions.Get(ctx, sessionID); ok {
		detectedBank, _ := bankdetect.Detect(input)

		switch dialogue.Evaluate(sctx, input, detectedBank) {
		case dialogue.TriggerCalculatorInput:
			return s.runCalculator(ctx, sessionID, sctx, input), nil
		case dialogue.TriggerDocs:
			return s.loanDocuments(sctx, input), nil
		case dialogue.TriggerSteps:
			return s.loanSteps(sctx, input), nil
		case dialogue.TriggerCalculate:
			return s.promptCalculator(ctx, sessionID, sctx, input), nil
		case dialogue.TriggerBankSelection:
			if resp, handled := s.resolveBankSelection(ctx, sessionID, sctx, input, detectedBank); handled {
				return resp, nil
			}
		}
	}

	return s.handleFreshQuery(ctx, sessionID, input)
}

// runCalculator consumes the awaited "income, emi, property" triple. A
// parse failure is recoverable: the context stays in place for a retry.
func (s *assistantService) runCalculator(ctx context.Context, sessionID string, sctx *store.SessionContext, input string) *dto.ChatResponse {
	parsed, err := dialogue.ParseCalculatorInput(input)
	if err != nil {
		return &dto.ChatResponse{
			UserQuery:      input,
			DetectedIntent: constant.IntentError,
			Response: &dto.ResponseBody{
				Type:    dto.ResponseTypeError,
				Message: constant.CalculatorFormatErrorMessage,
			},
		}
	}

	result := loancalc.ComputeEligibility(
		float64(parsed.MonthlyIncome),
		float64(parsed.ExistingEMI),
		float64(parsed.PropertyValue),
	)

	// Terminal outcome: the dialogue is over.
	s.sessions.Delete(ctx, sessionID)

	return &dto.ChatResponse{
		UserQuery:      input,
		DetectedIntent: constant.IntentLoanCalculationResult,
		DetectedBank:   optionalBank(sctx.DetectedBank),
		Response: &dto.ResponseBody{
			Type:            dto.ResponseTypeLoanCalculation,
			Message:         formatLoanResult(parsed, result),
			CalculationData: &result,
		},
	}
}

func (s *assistantService) loanDocuments(sctx *store.SessionContext, input string) *dto.ChatResponse {
	return &dto.ChatResponse{
		UserQuery:      input,
		DetectedIntent: constant.IntentLoanDocuments,
		DetectedBank:   optionalBank(sctx.DetectedBank),
		Response: &dto.ResponseBody{
			Type:    dto.ResponseTypeInfo,
			Message: fmt.Sprintf(constant.LoanDocumentsTemplate, sctx.DetectedBank),
		},
	}
}

func (s *assistantService) loanSteps(sctx *store.SessionContext, input string) *dto.ChatResponse {
	bank := sctx.DetectedBank
	return &dto.ChatResponse{
		UserQuery:      input,
		DetectedIntent: constant.IntentLoanApplicationSteps,
		DetectedBank:   optionalBank(bank),
		Response: &dto.ResponseBody{
			Type:    dto.ResponseTypeInfo,
			Message: fmt.Sprintf(constant.LoanStepsTemplate, bank, bank, bank),
		},
	}
}

func (s *assistantService) promptCalculator(ctx context.Context, sessionID string, sctx *store.SessionContext, input string) *dto.ChatResponse {
	s.sessions.Update(ctx, sessionID, func(c *store.SessionContext) {
		c.PendingAction = store.PendingLoanCalculation
	})

	return &dto.ChatResponse{
		UserQuery:      input,
		DetectedIntent: constant.IntentLoanCalculatorPrompt,
		DetectedBank:   optionalBank(sctx.DetectedBank),
		Response: &dto.ResponseBody{
			Type:    dto.ResponseTypeCalculatorPrompt,
			Message: constant.CalculatorPromptMessage,
		},
	}
}

// resolveBankSelection answers a stored intent with the bank the user just
// named. Unsupported bank is terminal: the context is cleared and the user
// starts over. Returns handled=false when the stored intent is unknown to
// the knowledge base, so the input is reprocessed as a fresh query.
func (s *assistantService) resolveBankSelection(ctx context.Context, sessionID string, sctx *store.SessionContext, input, bank string) (*dto.ChatResponse, bool) {
	if entry, found := s.kb.Resolve(sctx.DetectedIntent, bank); found {
		s.sessions.Update(ctx, sessionID, func(c *store.SessionContext) {
			c.DetectedBank = bank
		})

		body := s.workflowBody(entry, bank)
		if sctx.DetectedIntent == knowledge.IntentLoanEligibility && entry.CalculatorAvailable {
			body.Options = calculatorOptions()
		}

		return &dto.ChatResponse{
			UserQuery:      input,
			DetectedIntent: sctx.DetectedIntent,
			DetectedBank:   &bank,
			Response:       body,
		}, true
	}

	if _, known := s.kb.Lookup(sctx.DetectedIntent); known {
		s.sessions.Delete(ctx, sessionID)
		return &dto.ChatResponse{
			UserQuery:      input,
			DetectedIntent: sctx.DetectedIntent,
			DetectedBank:   &bank,
			Response: &dto.ResponseBody{
				Type:    dto.ResponseTypeNotFound,
				Message: fmt.Sprintf(constant.UnsupportedBankTemplate, bank, humanizeIntent(sctx.DetectedIntent)),
			},
		}, true
	}

	return nil, false
}

// handleFreshQuery classifies the input, detects a bank, and composes a
// response from the knowledge base. A classifier failure propagates: the
// boundary reports it as a generic internal error.
func (s *assistantService) handleFreshQuery(ctx context.Context, sessionID, input string) (*dto.ChatResponse, error) {
	intent, err := s.classifier.Classify(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("classify intent: %w", err)
	}

	bank, bankFound := bankdetect.Detect(input)

	resp := &dto.ChatResponse{
		UserQuery:      input,
		DetectedIntent: intent,
	}
	if bankFound {
		resp.DetectedBank = &bank
	}

	k, known := s.kb.Lookup(intent)
	switch {
	case !known:
		resp.Response = &dto.ResponseBody{
			Type:    dto.ResponseTypeNotFound,
			Message: fmt.Sprintf(constant.UnknownIntentTemplate, humanizeIntent(intent)),
		}

	case k.Simple():
		resp.Response = &dto.ResponseBody{
			Type:    k.Kind,
			Message: k.Message,
		}

	default:
		if entry, found := s.kb.Resolve(intent, bank); bankFound && found {
			resp.Response = s.workflowBody(entry, bank)
		} else {
			resp.Response = &dto.ResponseBody{
				Type:           dto.ResponseTypeBankSelection,
				Message:        fmt.Sprintf(constant.BankSelectionTemplate, humanizeIntent(intent)),
				AvailableBanks: s.kb.AvailableBanks(intent),
			}
			s.sessions.Save(ctx, sessionID, &store.SessionContext{
				OriginalQuery:  input,
				DetectedIntent: intent,
			})
		}
	}

	// A loan-eligibility query that already names a bank keeps the dialogue
	// open so the calculate/docs/steps triggers can follow.
	if intent == knowledge.IntentLoanEligibility && bankFound {
		s.sessions.Save(ctx, sessionID, &store.SessionContext{
			OriginalQuery:  input,
			DetectedIntent: intent,
			DetectedBank:   bank,
		})
	}

	return resp, nil
}

func (s *assistantService) workflowBody(entry *knowledge.WorkflowEntry, bank string) *dto.ResponseBody {
	body := &dto.ResponseBody{
		Type:      dto.ResponseTypeWorkflow,
		Message:   entry.Message,
		Workflows: mapWorkflows(entry.Workflows),
	}
	if ref, ok := knowledge.SupportFor(bank); ok {
		body.Helpline = ref.Helpline
	}
	return body
}

func (s *assistantService) CreateSession(_ context.Context) *dto.CreateSessionResponse {
	return &dto.CreateSessionResponse{Id: uuid.New()}
}

func (s *assistantService) Support(_ context.Context, bank string) (*dto.SupportReferenceResponse, bool) {
	// Accept loose spellings ("gpay", "state bank") the same way chat does.
	if canonical, ok := bankdetect.Detect(bank); ok {
		bank = canonical
	}
	ref, ok := knowledge.SupportFor(bank)
	if !ok {
		return nil, false
	}
	return &dto.SupportReferenceResponse{
		Bank:              ref.Bank,
		AccountManagement: ref.AccountManagement,
		FraudRisk:         ref.FraudRisk,
		PaymentProblem:    ref.PaymentProblem,
		InvestmentInfo:    ref.InvestmentInfo,
		Helpline:          ref.Helpline,
	}, true
}

func (s *assistantService) Health(ctx context.Context) *dto.HealthResponse {
	return &dto.HealthResponse{
		Status:      "healthy",
		ModelLoaded: s.classifier.Ready(ctx),
	}
}

func mapWorkflows(workflows []knowledge.Workflow) []dto.WorkflowDTO {
	result := make([]dto.WorkflowDTO, len(workflows))
	for i, w := range workflows {
		result[i] = dto.WorkflowDTO{
			Name:   w.Name,
			Steps:  w.Steps,
			Link:   w.Link,
			Urgent: w.Urgent,
		}
	}
	return result
}

func calculatorOptions() []dto.OptionDTO {
	options := make([]dto.OptionDTO, len(constant.CalculatorOptions))
	for i, opt := range constant.CalculatorOptions {
		options[i] = dto.OptionDTO{Label: opt.Label, Value: opt.Value}
	}
	return options
}

func optionalBank(bank string) *string {
	if bank == "" {
		return nil
	}
	return &bank
}

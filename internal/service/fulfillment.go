package service

import (
	"context"
	"errors"
	"time"

	"github.com/cloo-solutions/loanfaq/internal/dialogflow"
	"github.com/cloo-solutions/loanfaq/internal/domain"
	"github.com/cloo-solutions/loanfaq/internal/kb"
	"github.com/cloo-solutions/loanfaq/internal/metrics"
	"github.com/cloo-solutions/loanfaq/internal/telemetry"
)

// DefaultFallbackText is returned whenever a request cannot be answered.
// Internal error detail never reaches the end user.
const DefaultFallbackText = "I'm sorry, I don't have that information right now. Please specify if your question is about a home, car, personal, business or education loan."

// KnowledgeBase is the lookup contract the fulfillment service depends on.
type KnowledgeBase interface {
	Lookup(loanType domain.LoanType, field domain.QueryField) (*domain.KnowledgeEntry, error)
}

// FulfillmentService resolves a recognized-intent payload to an answer
// envelope. It holds no per-request state; every call is independent.
type FulfillmentService struct {
	kb           KnowledgeBase
	router       *Router
	eligibility  *EligibilityChecker
	fallbackText string
}

// NewFulfillmentService creates a FulfillmentService. fallbackText overrides
// the default fallback copy when non-empty.
func NewFulfillmentService(knowledgeBase KnowledgeBase, fallbackText string) *FulfillmentService {
	if fallbackText == "" {
		fallbackText = DefaultFallbackText
	}
	return &FulfillmentService{
		kb:           knowledgeBase,
		router:       NewRouter(),
		eligibility:  NewEligibilityChecker(),
		fallbackText: fallbackText,
	}
}

// Fulfill maps the request to an answer. Domain failures (unrecognized
// intent, invalid key, missing entry) degrade to the fallback message; the
// envelope itself is always returned so the platform gets HTTP 200.
func (s *FulfillmentService) Fulfill(ctx context.Context, req *dialogflow.WebhookRequest) *dialogflow.WebhookResponse {
	intentName := req.QueryResult.Intent.DisplayName
	params := dialogflow.MergedParams(req.QueryResult)

	ctx, span := telemetry.StartSpan(ctx, "FulfillmentService.Fulfill", telemetry.SpanAttributes{
		Intent:    intentName,
		Operation: "fulfill",
	})
	defer span.End()

	start := time.Now()
	defer func() {
		metrics.FulfillmentDuration.WithLabelValues(intentName).Observe(time.Since(start).Seconds())
	}()
	metrics.FulfillmentRequests.WithLabelValues(intentName).Inc()

	text, err := s.answer(ctx, intentName, params)
	if err != nil {
		s.recordFallback(ctx, span, err)
		return dialogflow.NewTextResponse(s.fallbackText)
	}

	return dialogflow.NewTextResponse(text)
}

func (s *FulfillmentService) answer(ctx context.Context, intentName string, params dialogflow.Params) (string, error) {
	if intentName == IntentCheckEligibility {
		loanType, err := s.router.LoanType(params)
		if err != nil {
			return "", err
		}
		return s.eligibility.Check(loanType, params)
	}

	routeKey, err := s.router.Route(intentName, params)
	if err != nil {
		return "", err
	}

	entry, err := s.kb.Lookup(routeKey.LoanType, routeKey.Field)
	if err != nil {
		return "", err
	}

	return entry.Text, nil
}

func (s *FulfillmentService) recordFallback(ctx context.Context, span *telemetry.Span, err error) {
	reason := domain.ErrCodeInternalError
	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		reason = domainErr.Code
	}
	metrics.FulfillmentFallbacks.WithLabelValues(reason).Inc()

	// A missing entry behind a valid key means the table shipped with a
	// hole in it; surface that to error telemetry.
	if errors.Is(err, domain.ErrEntryNotFound) {
		span.SetError(err)
		telemetry.CaptureError(ctx, err)
	}
}

// Ensure the concrete knowledge base satisfies the service contract.
var _ KnowledgeBase = (*kb.KnowledgeBase)(nil)

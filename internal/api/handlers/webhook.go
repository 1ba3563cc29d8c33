package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/cloo-solutions/loanfaq/internal/api"
	"github.com/cloo-solutions/loanfaq/internal/dialogflow"
)

// Fulfiller resolves a recognized-intent payload to a response envelope.
type Fulfiller interface {
	Fulfill(ctx context.Context, req *dialogflow.WebhookRequest) *dialogflow.WebhookResponse
}

// WebhookHandler terminates the platform's fulfillment callback.
type WebhookHandler struct {
	svc Fulfiller
}

func NewWebhookHandler(svc Fulfiller) *WebhookHandler {
	return &WebhookHandler{svc: svc}
}

// Handle decodes the webhook payload and returns the fulfillment envelope.
// Only a malformed body is a transport error (400); everything past decoding
// degrades to a fallback answer with 200 so one bad request never breaks the
// conversation.
func (h *WebhookHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var req dialogflow.WebhookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp := h.svc.Fulfill(r.Context(), &req)

	api.JSON(w, http.StatusOK, resp)
}

package handlers

import (
	"net/http"

	"github.com/cloo-solutions/loanfaq/internal/api"
	"github.com/cloo-solutions/loanfaq/internal/domain"
)

// KnowledgeLister exposes the read-only knowledge table for inspection.
type KnowledgeLister interface {
	Entries() []*domain.KnowledgeEntry
	MissingPairs() []string
}

// KBHandler serves the operational endpoints over the knowledge base.
type KBHandler struct {
	kb KnowledgeLister
}

func NewKBHandler(kb KnowledgeLister) *KBHandler {
	return &KBHandler{kb: kb}
}

type kbEntryResponse struct {
	LoanType      string  `json:"loan_type"`
	Field         string  `json:"field"`
	Text          string  `json:"text"`
	RateMin       float64 `json:"rate_min,omitempty"`
	RateMax       float64 `json:"rate_max,omitempty"`
	AverageAmount int64   `json:"average_amount,omitempty"`
}

type kbListResponse struct {
	Entries []kbEntryResponse `json:"entries"`
	Count   int               `json:"count"`
}

// List returns every knowledge entry, ordered by loan type then field.
func (h *KBHandler) List(w http.ResponseWriter, r *http.Request) {
	entries := h.kb.Entries()

	out := make([]kbEntryResponse, len(entries))
	for i, e := range entries {
		row := kbEntryResponse{
			LoanType:      string(e.LoanType),
			Field:         string(e.Field),
			Text:          e.Text,
			AverageAmount: e.AverageAmount,
		}
		if e.Rate != nil {
			row.RateMin = e.Rate.Min
			row.RateMax = e.Rate.Max
		}
		out[i] = row
	}

	api.Success(w, http.StatusOK, kbListResponse{Entries: out, Count: len(out)})
}

type kbCoverageResponse struct {
	Complete     bool     `json:"complete"`
	MissingPairs []string `json:"missing_pairs,omitempty"`
}

// Coverage reports whether every (loan type, query field) pair has an entry.
func (h *KBHandler) Coverage(w http.ResponseWriter, r *http.Request) {
	missing := h.kb.MissingPairs()

	api.Success(w, http.StatusOK, kbCoverageResponse{
		Complete:     len(missing) == 0,
		MissingPairs: missing,
	})
}

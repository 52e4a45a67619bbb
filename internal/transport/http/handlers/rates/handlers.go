package rateshandler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"backoffice/internal/domain/rates"
	"backoffice/internal/requestctx"
	"backoffice/internal/transport/http/api"
	"backoffice/internal/transport/http/shared"
)

type Handler struct {
	Rates *rates.Service
}

func NewHandler(svc *rates.Service) *Handler {
	return &Handler{Rates: svc}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/rates/resolve", h.handleResolve)
	r.Get("/rates/placements/{pccID}", h.handleListPlacementRates)
	r.Get("/candidates/{candidateID}/rates", h.handleListCandidateRates)
}

// handleResolve finds the active placement between a candidate and a client
// and returns its rate card. An asOf date filters the card to the rates
// applicable on that day.
func (h *Handler) handleResolve(w http.ResponseWriter, r *http.Request) {
	candidateID := r.URL.Query().Get("candidateId")
	clientID := r.URL.Query().Get("clientId")
	if candidateID == "" || clientID == "" {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "candidateId and clientId are required", requestctx.GetRequestID(r.Context()))
		return
	}
	v := shared.NewValidator()
	v.UUID("candidateId", candidateID)
	v.UUID("clientId", clientID)
	if v.Reject(w, requestctx.GetRequestID(r.Context())) {
		return
	}

	relationship, err := h.Rates.ResolveActiveRelationship(r.Context(), candidateID, clientID)
	if errors.Is(err, rates.ErrRelationshipNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "no active relationship between candidate and client", requestctx.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "rate_resolve_failed", "failed to resolve relationship", requestctx.GetRequestID(r.Context()))
		return
	}

	var card []rates.Rate
	if asOfRaw := r.URL.Query().Get("asOf"); asOfRaw != "" {
		asOf, err := shared.ParseDate(asOfRaw)
		if err != nil {
			api.Fail(w, http.StatusBadRequest, "invalid_payload", "asOf must be a valid date", requestctx.GetRequestID(r.Context()))
			return
		}
		card, err = h.Rates.ListRatesEffective(r.Context(), relationship.PccID, asOf)
		if err != nil {
			api.Fail(w, http.StatusInternalServerError, "rate_resolve_failed", "failed to list rates", requestctx.GetRequestID(r.Context()))
			return
		}
	} else {
		card, err = h.Rates.ListRates(r.Context(), relationship.PccID)
		if err != nil {
			api.Fail(w, http.StatusInternalServerError, "rate_resolve_failed", "failed to list rates", requestctx.GetRequestID(r.Context()))
			return
		}
	}

	api.Success(w, map[string]any{"relationship": relationship, "rates": card}, requestctx.GetRequestID(r.Context()))
}

func (h *Handler) handleListPlacementRates(w http.ResponseWriter, r *http.Request) {
	pccID := chi.URLParam(r, "pccID")
	v := shared.NewValidator()
	v.UUID("pccId", pccID)
	if v.Reject(w, requestctx.GetRequestID(r.Context())) {
		return
	}
	card, err := h.Rates.ListRates(r.Context(), pccID)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "rates_list_failed", "failed to list rates", requestctx.GetRequestID(r.Context()))
		return
	}
	api.Success(w, card, requestctx.GetRequestID(r.Context()))
}

func (h *Handler) handleListCandidateRates(w http.ResponseWriter, r *http.Request) {
	candidateID := chi.URLParam(r, "candidateID")
	v := shared.NewValidator()
	v.UUID("candidateId", candidateID)
	if v.Reject(w, requestctx.GetRequestID(r.Context())) {
		return
	}
	card, err := h.Rates.ListRatesForCandidate(r.Context(), candidateID)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "rates_list_failed", "failed to list rates", requestctx.GetRequestID(r.Context()))
		return
	}
	api.Success(w, card, requestctx.GetRequestID(r.Context()))
}

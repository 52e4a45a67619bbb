package clientshandler

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"backoffice/internal/domain/clients"
	"backoffice/internal/platform/db"
	"backoffice/internal/requestctx"
	"backoffice/internal/transport/http/api"
	"backoffice/internal/transport/http/shared"
)

type Handler struct {
	Store         *clients.Store
	RetryAttempts int
	RetryBase     time.Duration
}

func NewHandler(store *clients.Store, retryAttempts int, retryBase time.Duration) *Handler {
	return &Handler{Store: store, RetryAttempts: retryAttempts, RetryBase: retryBase}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/clients", h.handleListClients)
	r.Get("/clients/{clientID}/cost-centers", h.handleListCostCenters)
	r.Get("/candidates", h.handleListCandidates)
}

func (h *Handler) handleListClients(w http.ResponseWriter, r *http.Request) {
	var list []clients.Client
	err := db.WithRetry(r.Context(), h.RetryAttempts, h.RetryBase, func(ctx context.Context) error {
		var e error
		list, e = h.Store.ListClients(ctx)
		return e
	})
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "clients_list_failed", "failed to list clients", requestctx.GetRequestID(r.Context()))
		return
	}
	api.Success(w, list, requestctx.GetRequestID(r.Context()))
}

func (h *Handler) handleListCostCenters(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "clientID")
	v := shared.NewValidator()
	v.UUID("clientId", clientID)
	if v.Reject(w, requestctx.GetRequestID(r.Context())) {
		return
	}
	var list []clients.CostCenter
	err := db.WithRetry(r.Context(), h.RetryAttempts, h.RetryBase, func(ctx context.Context) error {
		var e error
		list, e = h.Store.ListCostCenters(ctx, clientID)
		return e
	})
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "cost_centers_failed", "failed to list cost centers", requestctx.GetRequestID(r.Context()))
		return
	}
	api.Success(w, list, requestctx.GetRequestID(r.Context()))
}

func (h *Handler) handleListCandidates(w http.ResponseWriter, r *http.Request) {
	var list []clients.Candidate
	err := db.WithRetry(r.Context(), h.RetryAttempts, h.RetryBase, func(ctx context.Context) error {
		var e error
		list, e = h.Store.ListCandidates(ctx)
		return e
	})
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "candidates_list_failed", "failed to list candidates", requestctx.GetRequestID(r.Context()))
		return
	}
	api.Success(w, list, requestctx.GetRequestID(r.Context()))
}

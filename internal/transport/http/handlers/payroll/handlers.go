package payrollhandler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"backoffice/internal/domain/payroll"
	"backoffice/internal/requestctx"
	"backoffice/internal/transport/http/api"
	"backoffice/internal/transport/http/shared"
)

type Handler struct {
	Payroll *payroll.Service
}

func NewHandler(svc *payroll.Service) *Handler {
	return &Handler{Payroll: svc}
}

type periodPayload struct {
	Name      string `json:"name"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

type calculatePayload struct {
	PeriodID      string   `json:"periodId"`
	ContractorIDs []string `json:"contractorIds"`
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/payroll/periods", h.handleCreatePeriod)
	r.Get("/payroll/periods", h.handleListPeriods)
	r.Get("/payroll/periods/{periodID}", h.handleGetPeriod)
	r.Post("/payroll/calculate", h.handleCalculate)
	r.Get("/payroll/periods/{periodID}/summary", h.handleGetSummary)
}

func (h *Handler) handleCreatePeriod(w http.ResponseWriter, r *http.Request) {
	var payload periodPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestctx.GetRequestID(r.Context()))
		return
	}
	if payload.Name == "" {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "period name required", requestctx.GetRequestID(r.Context()))
		return
	}
	startDate, err := shared.ParseDate(payload.StartDate)
	if err != nil || startDate.IsZero() {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "startDate must be a valid date", requestctx.GetRequestID(r.Context()))
		return
	}
	endDate, err := shared.ParseDate(payload.EndDate)
	if err != nil || endDate.IsZero() {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "endDate must be a valid date", requestctx.GetRequestID(r.Context()))
		return
	}

	actorID := requestctx.GetUserID(r.Context())
	period, err := h.Payroll.CreatePeriod(r.Context(), actorID, payroll.PeriodInput{
		Name:      payload.Name,
		StartDate: startDate,
		EndDate:   endDate,
	})
	if errors.Is(err, payroll.ErrPeriodDates) {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", err.Error(), requestctx.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "period_create_failed", "failed to create period", requestctx.GetRequestID(r.Context()))
		return
	}
	api.Created(w, period, requestctx.GetRequestID(r.Context()))
}

func (h *Handler) handleListPeriods(w http.ResponseWriter, r *http.Request) {
	periods, err := h.Payroll.ListPeriods(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "periods_list_failed", "failed to list periods", requestctx.GetRequestID(r.Context()))
		return
	}
	api.Success(w, periods, requestctx.GetRequestID(r.Context()))
}

// requirePeriodID rejects malformed period identifiers before any query
// runs.
func requirePeriodID(w http.ResponseWriter, r *http.Request) (string, bool) {
	periodID := chi.URLParam(r, "periodID")
	v := shared.NewValidator()
	v.UUID("periodId", periodID)
	if v.Reject(w, requestctx.GetRequestID(r.Context())) {
		return "", false
	}
	return periodID, true
}

func (h *Handler) handleGetPeriod(w http.ResponseWriter, r *http.Request) {
	periodID, ok := requirePeriodID(w, r)
	if !ok {
		return
	}
	period, err := h.Payroll.GetPeriod(r.Context(), periodID)
	if errors.Is(err, payroll.ErrPeriodNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "payroll period not found", requestctx.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "period_get_failed", "failed to load period", requestctx.GetRequestID(r.Context()))
		return
	}
	api.Success(w, period, requestctx.GetRequestID(r.Context()))
}

func (h *Handler) handleCalculate(w http.ResponseWriter, r *http.Request) {
	var payload calculatePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestctx.GetRequestID(r.Context()))
		return
	}
	if payload.PeriodID == "" {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "periodId required", requestctx.GetRequestID(r.Context()))
		return
	}
	v := shared.NewValidator()
	v.UUID("periodId", payload.PeriodID)
	v.UUIDs("contractorIds", payload.ContractorIDs)
	if v.Reject(w, requestctx.GetRequestID(r.Context())) {
		return
	}

	actorID := requestctx.GetUserID(r.Context())
	result, err := h.Payroll.CalculatePayroll(r.Context(), actorID, payload.PeriodID, payload.ContractorIDs)
	if errors.Is(err, payroll.ErrPeriodNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "payroll period not found", requestctx.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "payroll_calculate_failed", "failed to calculate payroll", requestctx.GetRequestID(r.Context()))
		return
	}
	api.Success(w, result, requestctx.GetRequestID(r.Context()))
}

func (h *Handler) handleGetSummary(w http.ResponseWriter, r *http.Request) {
	periodID, ok := requirePeriodID(w, r)
	if !ok {
		return
	}
	summary, err := h.Payroll.GetSummary(r.Context(), periodID)
	if errors.Is(err, payroll.ErrPeriodNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "no summary calculated for the period", requestctx.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "summary_get_failed", "failed to load summary", requestctx.GetRequestID(r.Context()))
		return
	}
	api.Success(w, summary, requestctx.GetRequestID(r.Context()))
}

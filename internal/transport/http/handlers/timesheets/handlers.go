package timesheetshandler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"backoffice/internal/domain/timesheets"
	"backoffice/internal/requestctx"
	"backoffice/internal/transport/http/api"
	"backoffice/internal/transport/http/shared"
)

type Handler struct {
	Timesheets *timesheets.Service
}

func NewHandler(svc *timesheets.Service) *Handler {
	return &Handler{Timesheets: svc}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/timesheets", h.handleListSummaries)
	r.Get("/timesheets/{timesheetID}", h.handleGetDetail)
	r.Post("/timesheets/{timesheetID}/entries", h.handleCreateEntry)
	r.Put("/timesheets/entries/{entryID}", h.handleUpdateEntry)
}

func (h *Handler) handleListSummaries(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.Timesheets.ListSummaries(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "timesheets_list_failed", "failed to list timesheets", requestctx.GetRequestID(r.Context()))
		return
	}
	api.Success(w, summaries, requestctx.GetRequestID(r.Context()))
}

func (h *Handler) handleGetDetail(w http.ResponseWriter, r *http.Request) {
	timesheetID := chi.URLParam(r, "timesheetID")
	v := shared.NewValidator()
	v.UUID("timesheetId", timesheetID)
	if v.Reject(w, requestctx.GetRequestID(r.Context())) {
		return
	}
	detail, err := h.Timesheets.GetDetail(r.Context(), timesheetID)
	if errors.Is(err, timesheets.ErrTimesheetNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "timesheet not found", requestctx.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "timesheet_get_failed", "failed to load timesheet", requestctx.GetRequestID(r.Context()))
		return
	}
	api.Success(w, detail, requestctx.GetRequestID(r.Context()))
}

func (h *Handler) handleCreateEntry(w http.ResponseWriter, r *http.Request) {
	timesheetID := chi.URLParam(r, "timesheetID")
	v := shared.NewValidator()
	v.UUID("timesheetId", timesheetID)
	if v.Reject(w, requestctx.GetRequestID(r.Context())) {
		return
	}
	var payload timesheets.EntryInput
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestctx.GetRequestID(r.Context()))
		return
	}
	if payload.EmployeeName == "" {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "employee name required", requestctx.GetRequestID(r.Context()))
		return
	}

	id, err := h.Timesheets.CreateEntry(r.Context(), timesheetID, payload)
	if errors.Is(err, timesheets.ErrTimesheetNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "timesheet not found", requestctx.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "entry_create_failed", "failed to create entry", requestctx.GetRequestID(r.Context()))
		return
	}
	api.Created(w, map[string]string{"id": id}, requestctx.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdateEntry(w http.ResponseWriter, r *http.Request) {
	entryID := chi.URLParam(r, "entryID")
	v := shared.NewValidator()
	v.UUID("entryId", entryID)
	if v.Reject(w, requestctx.GetRequestID(r.Context())) {
		return
	}
	var payload timesheets.EntryInput
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestctx.GetRequestID(r.Context()))
		return
	}

	err := h.Timesheets.UpdateEntry(r.Context(), entryID, payload)
	if errors.Is(err, timesheets.ErrEntryNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "timesheet entry not found", requestctx.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "entry_update_failed", "failed to update entry", requestctx.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]string{"status": "updated"}, requestctx.GetRequestID(r.Context()))
}

package reportshandler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"backoffice/internal/domain/invoices"
	"backoffice/internal/domain/reports"
	"backoffice/internal/requestctx"
	"backoffice/internal/transport/http/api"
	"backoffice/internal/transport/http/shared"
)

type Handler struct {
	Reports *reports.Service
}

func NewHandler(svc *reports.Service) *Handler {
	return &Handler{Reports: svc}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/payroll/weeks", h.handleAvailableWeeks)
	r.Post("/payroll/reports/generate", h.handleGenerate)
	r.Get("/payroll/reports", h.handleList)
	r.Get("/payroll/reports/{reportID}", h.handleGet)
	r.Delete("/payroll/reports/{reportID}", h.handleDelete)
	r.Get("/payroll/reports/{reportID}/download", h.handleDownload)
}

func (h *Handler) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var payload reports.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestctx.GetRequestID(r.Context()))
		return
	}
	if payload.Name == "" {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "report name required", requestctx.GetRequestID(r.Context()))
		return
	}
	if len(payload.SelectedWeeks) == 0 {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "at least one week required", requestctx.GetRequestID(r.Context()))
		return
	}

	actorID := requestctx.GetUserID(r.Context())
	result, err := h.Reports.GenerateReport(r.Context(), actorID, payload)
	if errors.Is(err, invoices.ErrBadWeekFormat) {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "selected weeks must be YYYY-Www or YYYY-MM-DD", requestctx.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "report_generate_failed", "failed to generate report", requestctx.GetRequestID(r.Context()))
		return
	}
	api.Created(w, result, requestctx.GetRequestID(r.Context()))
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	list, err := h.Reports.ListReports(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "reports_list_failed", "failed to list reports", requestctx.GetRequestID(r.Context()))
		return
	}
	api.Success(w, list, requestctx.GetRequestID(r.Context()))
}

func (h *Handler) handleAvailableWeeks(w http.ResponseWriter, r *http.Request) {
	weeks, err := h.Reports.AvailableWeeks(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "weeks_list_failed", "failed to list available weeks", requestctx.GetRequestID(r.Context()))
		return
	}
	api.Success(w, weeks, requestctx.GetRequestID(r.Context()))
}

// requireReportID rejects malformed report identifiers before any query
// runs.
func requireReportID(w http.ResponseWriter, r *http.Request) (string, bool) {
	reportID := chi.URLParam(r, "reportID")
	v := shared.NewValidator()
	v.UUID("reportId", reportID)
	if v.Reject(w, requestctx.GetRequestID(r.Context())) {
		return "", false
	}
	return reportID, true
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	reportID, ok := requireReportID(w, r)
	if !ok {
		return
	}
	report, err := h.Reports.GetReport(r.Context(), reportID)
	if errors.Is(err, reports.ErrReportNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "report not found", requestctx.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "report_get_failed", "failed to load report", requestctx.GetRequestID(r.Context()))
		return
	}
	api.Success(w, report, requestctx.GetRequestID(r.Context()))
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	reportID, ok := requireReportID(w, r)
	if !ok {
		return
	}
	err := h.Reports.DeleteReport(r.Context(), reportID)
	if errors.Is(err, reports.ErrReportNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "report not found", requestctx.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "report_delete_failed", "failed to delete report", requestctx.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]string{"status": "deleted"}, requestctx.GetRequestID(r.Context()))
}

func (h *Handler) handleDownload(w http.ResponseWriter, r *http.Request) {
	reportID, ok := requireReportID(w, r)
	if !ok {
		return
	}
	filePath, err := h.Reports.FilePath(r.Context(), reportID)
	if errors.Is(err, reports.ErrReportNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "report not found", requestctx.GetRequestID(r.Context()))
		return
	}
	if errors.Is(err, reports.ErrReportNoFile) {
		api.Fail(w, http.StatusNotFound, "not_found", "report has no generated file", requestctx.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "report_download_failed", "failed to load report", requestctx.GetRequestID(r.Context()))
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	http.ServeFile(w, r, filePath)
}

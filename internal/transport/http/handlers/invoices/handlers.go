package invoiceshandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"backoffice/internal/domain/invoices"
	"backoffice/internal/requestctx"
	"backoffice/internal/transport/http/api"
	"backoffice/internal/transport/http/shared"
)

type Handler struct {
	Invoices *invoices.Service
}

func NewHandler(svc *invoices.Service) *Handler {
	return &Handler{Invoices: svc}
}

type generatePayload struct {
	Week        string   `json:"week"`
	ClientIDs   []string `json:"clientIds"`
	InvoiceDate string   `json:"invoiceDate"`
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/invoices/generate", h.handleGenerate)
	r.Get("/invoices", h.handleList)
	r.Get("/invoices/{invoiceID}", h.handleGet)
	r.Get("/invoices/{invoiceID}/details", h.handleGetDetails)
	r.Post("/invoices/{invoiceID}/pdf", h.handleRenderPDF)
	r.Get("/invoices/{invoiceID}/document", h.handleDownload)
}

func (h *Handler) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var payload generatePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestctx.GetRequestID(r.Context()))
		return
	}
	if payload.Week == "" {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "week is required", requestctx.GetRequestID(r.Context()))
		return
	}
	v := shared.NewValidator()
	v.UUIDs("clientIds", payload.ClientIDs)
	if v.Reject(w, requestctx.GetRequestID(r.Context())) {
		return
	}

	invoiceDate := time.Now()
	if payload.InvoiceDate != "" {
		parsed, err := shared.ParseDate(payload.InvoiceDate)
		if err != nil {
			api.Fail(w, http.StatusBadRequest, "invalid_payload", "invoiceDate must be a valid date", requestctx.GetRequestID(r.Context()))
			return
		}
		invoiceDate = parsed
	}

	actorID := requestctx.GetUserID(r.Context())
	result, err := h.Invoices.GenerateInvoices(r.Context(), actorID, payload.Week, payload.ClientIDs, invoiceDate)
	switch {
	case errors.Is(err, invoices.ErrBadWeekFormat):
		api.Fail(w, http.StatusBadRequest, "invalid_payload", err.Error(), requestctx.GetRequestID(r.Context()))
		return
	case errors.Is(err, invoices.ErrNoHoursLogged):
		api.Fail(w, http.StatusBadRequest, "no_hours_logged", "no hours logged for the selected week", requestctx.GetRequestID(r.Context()))
		return
	case errors.Is(err, invoices.ErrNoRatesAvailable):
		api.Fail(w, http.StatusBadRequest, "no_rates_available", "no rates recorded for the logged hours", requestctx.GetRequestID(r.Context()))
		return
	case err != nil:
		api.Fail(w, http.StatusInternalServerError, "invoice_generate_failed", "failed to generate invoices", requestctx.GetRequestID(r.Context()))
		return
	}
	api.Created(w, result, requestctx.GetRequestID(r.Context()))
}

// requireInvoiceID rejects malformed invoice identifiers before any query
// runs.
func requireInvoiceID(w http.ResponseWriter, r *http.Request) (string, bool) {
	invoiceID := chi.URLParam(r, "invoiceID")
	v := shared.NewValidator()
	v.UUID("invoiceId", invoiceID)
	if v.Reject(w, requestctx.GetRequestID(r.Context())) {
		return "", false
	}
	return invoiceID, true
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	list, err := h.Invoices.List(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "invoices_list_failed", "failed to list invoices", requestctx.GetRequestID(r.Context()))
		return
	}
	api.Success(w, list, requestctx.GetRequestID(r.Context()))
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	invoiceID, ok := requireInvoiceID(w, r)
	if !ok {
		return
	}
	inv, err := h.Invoices.Get(r.Context(), invoiceID)
	if errors.Is(err, invoices.ErrInvoiceNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "invoice not found", requestctx.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "invoice_get_failed", "failed to load invoice", requestctx.GetRequestID(r.Context()))
		return
	}
	api.Success(w, inv, requestctx.GetRequestID(r.Context()))
}

func (h *Handler) handleGetDetails(w http.ResponseWriter, r *http.Request) {
	invoiceID, ok := requireInvoiceID(w, r)
	if !ok {
		return
	}
	detail, err := h.Invoices.GetWithLineItems(r.Context(), invoiceID)
	if errors.Is(err, invoices.ErrInvoiceNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "invoice not found", requestctx.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "invoice_get_failed", "failed to load invoice", requestctx.GetRequestID(r.Context()))
		return
	}
	api.Success(w, detail, requestctx.GetRequestID(r.Context()))
}

func (h *Handler) handleRenderPDF(w http.ResponseWriter, r *http.Request) {
	invoiceID, ok := requireInvoiceID(w, r)
	if !ok {
		return
	}
	filePath, err := h.Invoices.RenderInvoicePDF(r.Context(), invoiceID)
	if errors.Is(err, invoices.ErrInvoiceNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "invoice not found", requestctx.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "invoice_pdf_failed", "failed to render invoice pdf", requestctx.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]string{"docPath": filePath}, requestctx.GetRequestID(r.Context()))
}

func (h *Handler) handleDownload(w http.ResponseWriter, r *http.Request) {
	invoiceID, ok := requireInvoiceID(w, r)
	if !ok {
		return
	}
	inv, err := h.Invoices.Get(r.Context(), invoiceID)
	if errors.Is(err, invoices.ErrInvoiceNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "invoice not found", requestctx.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "invoice_get_failed", "failed to load invoice", requestctx.GetRequestID(r.Context()))
		return
	}

	docPath := inv.DocPath
	if docPath == "" {
		docPath, err = h.Invoices.RenderInvoicePDF(r.Context(), invoiceID)
		if err != nil {
			api.Fail(w, http.StatusInternalServerError, "invoice_pdf_failed", "failed to render invoice pdf", requestctx.GetRequestID(r.Context()))
			return
		}
	}
	http.ServeFile(w, r, docPath)
}

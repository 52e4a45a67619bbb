package hourshandler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"backoffice/internal/domain/hours"
	"backoffice/internal/requestctx"
	"backoffice/internal/transport/http/api"
	"backoffice/internal/transport/http/shared"
)

type Handler struct {
	Hours *hours.Service
}

func NewHandler(svc *hours.Service) *Handler {
	return &Handler{Hours: svc}
}

type entryPayload struct {
	ContractorID string `json:"contractorId"`
	WorkDate     string `json:"workDate"`
	PccID        string `json:"pccId"`
	Status       string `json:"status"`
	Week         int    `json:"week"`
	Day          string `json:"day"`

	StandardHours    *float64 `json:"standardHours,omitempty"`
	OnCallHours      *float64 `json:"onCallHours,omitempty"`
	WeekendHours     *float64 `json:"weekendHours,omitempty"`
	BankHolidayHours *float64 `json:"bankHolidayHours,omitempty"`
	HolidayHours     *float64 `json:"holidayHours,omitempty"`
	DoubleHours      *float64 `json:"doubleHours,omitempty"`
	TripleHours      *float64 `json:"tripleHours,omitempty"`
	DedhHours        *float64 `json:"dedhHours,omitempty"`

	StandardPayRate     *float64 `json:"standardPayRate,omitempty"`
	StandardBillRate    *float64 `json:"standardBillRate,omitempty"`
	OnCallPayRate       *float64 `json:"onCallPayRate,omitempty"`
	OnCallBillRate      *float64 `json:"onCallBillRate,omitempty"`
	WeekendPayRate      *float64 `json:"weekendPayRate,omitempty"`
	WeekendBillRate     *float64 `json:"weekendBillRate,omitempty"`
	BankHolidayPayRate  *float64 `json:"bankHolidayPayRate,omitempty"`
	BankHolidayBillRate *float64 `json:"bankHolidayBillRate,omitempty"`
	DoublePayRate       *float64 `json:"doublePayRate,omitempty"`
	DoubleBillRate      *float64 `json:"doubleBillRate,omitempty"`
	TriplePayRate       *float64 `json:"triplePayRate,omitempty"`
	TripleBillRate      *float64 `json:"tripleBillRate,omitempty"`
	DedhPayRate         *float64 `json:"dedhPayRate,omitempty"`
	DedhBillRate        *float64 `json:"dedhBillRate,omitempty"`

	RateHours []hours.RateHourInput `json:"rateHours,omitempty"`
}

type upsertPayload struct {
	Entries []entryPayload `json:"entries"`
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/timesheets/{timesheetID}/hours", h.handleUpsertHours)
}

func (h *Handler) handleUpsertHours(w http.ResponseWriter, r *http.Request) {
	timesheetID := chi.URLParam(r, "timesheetID")
	v := shared.NewValidator()
	v.UUID("timesheetId", timesheetID)
	if v.Reject(w, requestctx.GetRequestID(r.Context())) {
		return
	}
	var payload upsertPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestctx.GetRequestID(r.Context()))
		return
	}
	if len(payload.Entries) == 0 {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "at least one entry required", requestctx.GetRequestID(r.Context()))
		return
	}

	ids := shared.NewValidator()
	inputs := make([]hours.EntryInput, 0, len(payload.Entries))
	for _, entry := range payload.Entries {
		if entry.ContractorID == "" {
			api.Fail(w, http.StatusBadRequest, "invalid_payload", "contractorId required on every entry", requestctx.GetRequestID(r.Context()))
			return
		}
		ids.UUID("contractorId", entry.ContractorID)
		ids.OptionalUUID("pccId", entry.PccID)
		workDate, err := shared.ParseDate(entry.WorkDate)
		if err != nil || workDate.IsZero() {
			api.Fail(w, http.StatusBadRequest, "invalid_payload", "workDate must be a valid date", requestctx.GetRequestID(r.Context()))
			return
		}
		inputs = append(inputs, hours.EntryInput{
			ContractorID:        entry.ContractorID,
			WorkDate:            workDate,
			PccID:               entry.PccID,
			Status:              entry.Status,
			Week:                entry.Week,
			Day:                 entry.Day,
			StandardHours:       entry.StandardHours,
			OnCallHours:         entry.OnCallHours,
			WeekendHours:        entry.WeekendHours,
			BankHolidayHours:    entry.BankHolidayHours,
			HolidayHours:        entry.HolidayHours,
			DoubleHours:         entry.DoubleHours,
			TripleHours:         entry.TripleHours,
			DedhHours:           entry.DedhHours,
			StandardPayRate:     entry.StandardPayRate,
			StandardBillRate:    entry.StandardBillRate,
			OnCallPayRate:       entry.OnCallPayRate,
			OnCallBillRate:      entry.OnCallBillRate,
			WeekendPayRate:      entry.WeekendPayRate,
			WeekendBillRate:     entry.WeekendBillRate,
			BankHolidayPayRate:  entry.BankHolidayPayRate,
			BankHolidayBillRate: entry.BankHolidayBillRate,
			DoublePayRate:       entry.DoublePayRate,
			DoubleBillRate:      entry.DoubleBillRate,
			TriplePayRate:       entry.TriplePayRate,
			TripleBillRate:      entry.TripleBillRate,
			DedhPayRate:         entry.DedhPayRate,
			DedhBillRate:        entry.DedhBillRate,
			RateHours:           entry.RateHours,
		})
	}

	if ids.Reject(w, requestctx.GetRequestID(r.Context())) {
		return
	}

	actorID := requestctx.GetUserID(r.Context())
	result, err := h.Hours.UpsertHours(r.Context(), actorID, timesheetID, inputs)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "hours_upsert_failed", "failed to log hours", requestctx.GetRequestID(r.Context()))
		return
	}
	api.Success(w, result, requestctx.GetRequestID(r.Context()))
}

package invoiceshandler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
)

func newRouter() chi.Router {
	r := chi.NewRouter()
	NewHandler(nil).RegisterRoutes(r)
	return r
}

func TestGetRejectsMalformedInvoiceID(t *testing.T) {
	// A malformed identifier must be rejected at the boundary; the nil
	// service would panic if the request got past validation.
	req := httptest.NewRequest(http.MethodGet, "/invoices/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	newRouter().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "invalid_id") || !strings.Contains(body, "invoiceId") {
		t.Fatalf("expected invalid_id envelope naming invoiceId, got %s", body)
	}
}

func TestDetailsRejectsMalformedInvoiceID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/invoices/123/details", nil)
	rec := httptest.NewRecorder()
	newRouter().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "invalid_id") {
		t.Fatalf("expected invalid_id code, got %s", rec.Body.String())
	}
}

func TestGenerateRejectsMalformedClientIDs(t *testing.T) {
	body := strings.NewReader(`{"week":"2025-W03","clientIds":["not-a-uuid"]}`)
	req := httptest.NewRequest(http.MethodPost, "/invoices/generate", body)
	rec := httptest.NewRecorder()
	newRouter().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "invalid_id") {
		t.Fatalf("expected invalid_id code, got %s", rec.Body.String())
	}
}

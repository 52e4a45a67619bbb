package shared

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestValidatorUUID(t *testing.T) {
	v := NewValidator()
	v.UUID("invoiceId", "7f9c24e8-3b1a-4bde-9a0c-1f2e3d4c5b6a")
	if v.HasIssues() {
		t.Fatalf("valid UUID must not raise an issue, got %+v", v.Issues())
	}

	v.UUID("invoiceId", "not-a-uuid")
	if !v.HasIssues() {
		t.Fatal("malformed UUID must raise an issue")
	}
}

func TestValidatorOptionalUUID(t *testing.T) {
	v := NewValidator()
	v.OptionalUUID("pccId", "")
	if v.HasIssues() {
		t.Fatalf("empty optional value must pass, got %+v", v.Issues())
	}
	v.OptionalUUID("pccId", "nope")
	if !v.HasIssues() {
		t.Fatal("present malformed value must raise an issue")
	}
}

func TestValidatorUUIDs(t *testing.T) {
	v := NewValidator()
	v.UUIDs("clientIds", []string{"7f9c24e8-3b1a-4bde-9a0c-1f2e3d4c5b6a", "bad"})
	if !v.HasIssues() {
		t.Fatal("a malformed element must raise an issue")
	}
}

func TestValidatorRejectWritesInvalidID(t *testing.T) {
	v := NewValidator()
	v.UUID("periodId", "nope")

	rec := httptest.NewRecorder()
	if !v.Reject(rec, "req-1") {
		t.Fatal("expected request to be rejected")
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "invalid_id") || !strings.Contains(body, "periodId") {
		t.Fatalf("expected invalid_id envelope naming periodId, got %s", body)
	}
}

func TestValidatorRejectPassesCleanRequest(t *testing.T) {
	v := NewValidator()
	rec := httptest.NewRecorder()
	if v.Reject(rec, "req-1") {
		t.Fatal("a validator with no issues must not reject")
	}
}

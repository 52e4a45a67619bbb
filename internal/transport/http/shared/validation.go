package shared

import (
	"net/http"
	"sort"
	"strings"

	"github.com/google/uuid"

	"backoffice/internal/transport/http/api"
)

type ValidationIssue struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// Validator collects identifier issues so a request can be rejected before
// any query runs.
type Validator struct {
	issues []ValidationIssue
}

func NewValidator() *Validator {
	return &Validator{issues: make([]ValidationIssue, 0, 4)}
}

func (v *Validator) Add(field, reason string) {
	if v == nil {
		return
	}
	field = strings.TrimSpace(field)
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return
	}
	v.issues = append(v.issues, ValidationIssue{
		Field:  field,
		Reason: reason,
	})
}

// UUID records an issue when value does not parse as a UUID.
func (v *Validator) UUID(field, value string) {
	if _, err := uuid.Parse(strings.TrimSpace(value)); err != nil {
		v.Add(field, "must be a valid UUID")
	}
}

// OptionalUUID validates value only when it is present.
func (v *Validator) OptionalUUID(field, value string) {
	if strings.TrimSpace(value) == "" {
		return
	}
	v.UUID(field, value)
}

// UUIDs validates every element of an identifier list under one field name.
func (v *Validator) UUIDs(field string, values []string) {
	for _, value := range values {
		if _, err := uuid.Parse(strings.TrimSpace(value)); err != nil {
			v.Add(field, "must contain only valid UUIDs")
			return
		}
	}
}

func (v *Validator) HasIssues() bool {
	return v != nil && len(v.issues) > 0
}

func (v *Validator) Issues() []ValidationIssue {
	if v == nil || len(v.issues) == 0 {
		return nil
	}
	out := make([]ValidationIssue, len(v.issues))
	copy(out, v.issues)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Field == out[j].Field {
			return out[i].Reason < out[j].Reason
		}
		return out[i].Field < out[j].Field
	})
	return out
}

// Reject writes an invalid_id envelope naming the offending fields and
// reports whether the request was rejected.
func (v *Validator) Reject(w http.ResponseWriter, requestID string) bool {
	if !v.HasIssues() {
		return false
	}
	issues := v.Issues()
	parts := make([]string, 0, len(issues))
	for _, issue := range issues {
		parts = append(parts, issue.Field+" "+issue.Reason)
	}
	api.Fail(w, http.StatusBadRequest, "invalid_id", strings.Join(parts, "; "), requestID)
	return true
}

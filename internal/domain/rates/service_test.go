package rates

import (
	"context"
	"testing"
	"time"
)

type fakeStore struct {
	relationships map[string]Relationship
	rates         []Rate
}

func (f *fakeStore) FindActiveRelationship(ctx context.Context, candidateID, clientID string) (Relationship, error) {
	rel, ok := f.relationships[candidateID+"/"+clientID]
	if !ok {
		return Relationship{}, ErrRelationshipNotFound
	}
	return rel, nil
}

func (f *fakeStore) ListRates(ctx context.Context, pccID string) ([]Rate, error) {
	var out []Rate
	for _, rate := range f.rates {
		if rate.PccID == pccID {
			out = append(out, rate)
		}
	}
	return out, nil
}

func (f *fakeStore) ListRatesForCandidate(ctx context.Context, candidateID string) ([]Rate, error) {
	return f.rates, nil
}

func date(s string) *time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return &t
}

func TestResolveActiveRelationshipNotFound(t *testing.T) {
	svc := NewService(&fakeStore{relationships: map[string]Relationship{}})
	_, err := svc.ResolveActiveRelationship(context.Background(), "cand", "client")
	if err != ErrRelationshipNotFound {
		t.Fatalf("expected ErrRelationshipNotFound, got %v", err)
	}
}

func TestListRatesIgnoresDates(t *testing.T) {
	store := &fakeStore{rates: []Rate{
		{ID: 1, PccID: "pcc1", DateApplicable: date("2030-01-01")},
		{ID: 2, PccID: "pcc1", DateEnd: date("2001-01-01")},
		{ID: 3, PccID: "other"},
	}}
	svc := NewService(store)
	got, err := svc.ListRates(context.Background(), "pcc1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 rates regardless of dates, got %d", len(got))
	}
}

func TestListRatesEffectiveFiltersByDate(t *testing.T) {
	store := &fakeStore{rates: []Rate{
		{ID: 1, PccID: "pcc1", DateApplicable: date("2024-01-01")},
		{ID: 2, PccID: "pcc1", DateApplicable: date("2024-01-01"), DateEnd: date("2024-06-30")},
		{ID: 3, PccID: "pcc1", DateApplicable: date("2025-01-01")},
		{ID: 4, PccID: "pcc1"},
	}}
	svc := NewService(store)
	asOf, _ := time.Parse("2006-01-02", "2024-09-15")
	got, err := svc.ListRatesEffective(context.Background(), "pcc1", asOf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 effective rates, got %d", len(got))
	}
	if got[0].ID != 1 || got[1].ID != 4 {
		t.Fatalf("expected rates 1 and 4, got %d and %d", got[0].ID, got[1].ID)
	}
}

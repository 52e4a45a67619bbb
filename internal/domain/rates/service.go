package rates

import (
	"context"
	"time"
)

type Service struct {
	store StoreAPI
}

func NewService(store StoreAPI) *Service {
	return &Service{store: store}
}

// ResolveActiveRelationship returns the first active, non-deleted placement
// between the candidate and the client. Multiple active placements are not
// prevented by the schema; the oldest one wins.
func (s *Service) ResolveActiveRelationship(ctx context.Context, candidateID, clientID string) (Relationship, error) {
	return s.store.FindActiveRelationship(ctx, candidateID, clientID)
}

// ListRates returns every live rate card row for the placement regardless of
// applicability dates. Billing reads snapshots captured on the hour rows, so
// date filtering stays opt-in via ListRatesEffective.
func (s *Service) ListRates(ctx context.Context, pccID string) ([]Rate, error) {
	return s.store.ListRates(ctx, pccID)
}

func (s *Service) ListRatesForCandidate(ctx context.Context, candidateID string) ([]Rate, error) {
	return s.store.ListRatesForCandidate(ctx, candidateID)
}

// ListRatesEffective filters the placement's rates to those applicable on the
// given date: date_applicable on or before it, date_end absent or after it.
func (s *Service) ListRatesEffective(ctx context.Context, pccID string, asOf time.Time) ([]Rate, error) {
	all, err := s.store.ListRates(ctx, pccID)
	if err != nil {
		return nil, err
	}
	var effective []Rate
	for _, rate := range all {
		if rate.DateApplicable != nil && rate.DateApplicable.After(asOf) {
			continue
		}
		if rate.DateEnd != nil && rate.DateEnd.Before(asOf) {
			continue
		}
		effective = append(effective, rate)
	}
	return effective, nil
}

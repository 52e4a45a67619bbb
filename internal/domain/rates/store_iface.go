package rates

import "context"

type StoreAPI interface {
	FindActiveRelationship(ctx context.Context, candidateID, clientID string) (Relationship, error)
	ListRates(ctx context.Context, pccID string) ([]Rate, error)
	ListRatesForCandidate(ctx context.Context, candidateID string) ([]Rate, error)
}

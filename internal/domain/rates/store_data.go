package rates

import (
	"context"

	"github.com/jackc/pgx/v5"

	"backoffice/internal/platform/querier"
)

type Store struct {
	DB querier.Querier
}

func NewStore(db querier.Querier) *Store {
	return &Store{DB: db}
}

func (s *Store) FindActiveRelationship(ctx context.Context, candidateID, clientID string) (Relationship, error) {
	var rel Relationship
	err := s.DB.QueryRow(ctx, `
    SELECT pcc_id, candidate_id, client_id, status, placement_date, contract_start_date, contract_end_date
    FROM app.p_candidate_client
    WHERE candidate_id = $1 AND client_id = $2 AND status = $3 AND deleted_on IS NULL
    ORDER BY created_on
    LIMIT 1
  `, candidateID, clientID, RelationshipStatusActive).Scan(
		&rel.PccID, &rel.CandidateID, &rel.ClientID, &rel.Status,
		&rel.PlacementDate, &rel.ContractStartDate, &rel.ContractEndDate)
	if err == pgx.ErrNoRows {
		return Relationship{}, ErrRelationshipNotFound
	}
	if err != nil {
		return Relationship{}, err
	}
	return rel, nil
}

func (s *Store) ListRates(ctx context.Context, pccID string) ([]Rate, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT r.id, r.pcc_id, r.rate_type, COALESCE(rt.rate_type_name, ''),
           r.rate_frequency, COALESCE(rf.rate_frequency_name, ''),
           COALESCE(r.pay_rate, 0), COALESCE(r.bill_rate, 0),
           r.date_applicable, r.date_end
    FROM app.t_contract_rates r
    LEFT JOIN app.m_rate_type rt ON rt.rate_type_id = r.rate_type
    LEFT JOIN app.m_rate_frequency rf ON rf.rate_frequency_id = r.rate_frequency
    WHERE r.pcc_id = $1 AND r.deleted_on IS NULL
    ORDER BY r.id
  `, pccID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanRates(rows)
}

func (s *Store) ListRatesForCandidate(ctx context.Context, candidateID string) ([]Rate, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT r.id, r.pcc_id, r.rate_type, COALESCE(rt.rate_type_name, ''),
           r.rate_frequency, COALESCE(rf.rate_frequency_name, ''),
           COALESCE(r.pay_rate, 0), COALESCE(r.bill_rate, 0),
           r.date_applicable, r.date_end
    FROM app.t_contract_rates r
    JOIN app.p_candidate_client pcc ON pcc.pcc_id = r.pcc_id
    LEFT JOIN app.m_rate_type rt ON rt.rate_type_id = r.rate_type
    LEFT JOIN app.m_rate_frequency rf ON rf.rate_frequency_id = r.rate_frequency
    WHERE pcc.candidate_id = $1 AND pcc.deleted_on IS NULL AND r.deleted_on IS NULL
    ORDER BY r.id
  `, candidateID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanRates(rows)
}

func scanRates(rows pgx.Rows) ([]Rate, error) {
	var rates []Rate
	for rows.Next() {
		var rate Rate
		if err := rows.Scan(&rate.ID, &rate.PccID, &rate.RateTypeID, &rate.RateTypeName,
			&rate.RateFrequencyID, &rate.RateFrequencyName, &rate.PayRate, &rate.BillRate,
			&rate.DateApplicable, &rate.DateEnd); err != nil {
			return nil, err
		}
		rates = append(rates, rate)
	}
	return rates, rows.Err()
}

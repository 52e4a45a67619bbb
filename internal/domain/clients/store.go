package clients

import (
	"context"

	"backoffice/internal/platform/querier"
)

// Read-only lookups over the client and candidate tables. The generation
// pipelines join through these rows but never mutate them, except for the
// candidate holiday balance which the hours service owns.
type Store struct {
	DB querier.Querier
}

func NewStore(db querier.Querier) *Store {
	return &Store{DB: db}
}

func (s *Store) ListClients(ctx context.Context) ([]Client, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT client_id, COALESCE(client_name, ''), COALESCE(email, ''), COALESCE(contact_name, ''),
           COALESCE(address, ''), start_date, end_date
    FROM app.m_client
    WHERE deleted_on IS NULL
    ORDER BY client_name
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Client
	for rows.Next() {
		var client Client
		if err := rows.Scan(&client.ID, &client.Name, &client.Email, &client.ContactName,
			&client.Address, &client.StartDate, &client.EndDate); err != nil {
			return nil, err
		}
		out = append(out, client)
	}
	return out, rows.Err()
}

func (s *Store) ListCandidates(ctx context.Context) ([]Candidate, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT c.candidate_id, COALESCE(u.first_name, ''), COALESCE(u.last_name, ''),
           COALESCE(u.email_id, ''), COALESCE(c.employee_id, ''), COALESCE(c.holiday_count, 0)
    FROM app.m_candidate c
    JOIN app.m_user u ON u.user_id = c.candidate_id
    WHERE u.deleted_on IS NULL
    ORDER BY u.last_name, u.first_name
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Candidate
	for rows.Next() {
		var candidate Candidate
		if err := rows.Scan(&candidate.ID, &candidate.FirstName, &candidate.LastName,
			&candidate.Email, &candidate.EmployeeID, &candidate.HolidayCount); err != nil {
			return nil, err
		}
		out = append(out, candidate)
	}
	return out, rows.Err()
}

func (s *Store) ListCostCenters(ctx context.Context, clientID string) ([]CostCenter, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, client_id, COALESCE(cc_name, ''), COALESCE(cc_number, ''), COALESCE(cc_address, '')
    FROM app.t_cost_center
    WHERE client_id = $1 AND deleted_on IS NULL
    ORDER BY cc_name
  `, clientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []CostCenter
	for rows.Next() {
		var cc CostCenter
		if err := rows.Scan(&cc.ID, &cc.ClientID, &cc.Name, &cc.Number, &cc.Address); err != nil {
			return nil, err
		}
		out = append(out, cc)
	}
	return out, rows.Err()
}

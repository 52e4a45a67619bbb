package invoices

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"backoffice/internal/platform/querier"
)

type Store struct {
	DB querier.Querier
}

func NewStore(db querier.Querier) *Store {
	return &Store{DB: db}
}

func (s *Store) ListBillableHours(ctx context.Context, billingDate time.Time, clientIDs []string) ([]billableHour, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT h.tch_id, h.pcc_id, h.timesheet_id, pcc.client_id,
           COALESCE(c.client_name, ''),
           TRIM(COALESCE(u.first_name, '') || ' ' || COALESCE(u.last_name, ''))
    FROM app.t_contractor_hours h
    JOIN app.p_candidate_client pcc ON pcc.pcc_id = h.pcc_id
    JOIN app.m_client c ON c.client_id = pcc.client_id
    JOIN app.m_user u ON u.user_id = h.contractor_id
    WHERE h.work_date = $1 AND pcc.client_id = ANY($2) AND h.deleted_on IS NULL
    ORDER BY c.client_name, u.last_name
  `, billingDate, clientIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []billableHour
	for rows.Next() {
		var hour billableHour
		if err := rows.Scan(&hour.TchID, &hour.PccID, &hour.TimesheetID, &hour.ClientID,
			&hour.ClientName, &hour.CandidateName); err != nil {
			return nil, err
		}
		out = append(out, hour)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range out {
		breakdown, err := s.listBreakdown(ctx, out[i].TchID)
		if err != nil {
			return nil, err
		}
		out[i].Breakdown = breakdown
	}
	return out, nil
}

func (s *Store) listBreakdown(ctx context.Context, tchID string) ([]breakdownRow, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT tcr_id, rate_type_id, COALESCE(quantity, 0), COALESCE(bill_rate, 0)
    FROM app.t_contractor_rate_hours
    WHERE tch_id = $1 AND deleted_on IS NULL AND COALESCE(quantity, 0) > 0
    ORDER BY tcrh_id
  `, tchID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []breakdownRow
	for rows.Next() {
		var row breakdownRow
		if err := rows.Scan(&row.TcrID, &row.RateTypeID, &row.Quantity, &row.BillRate); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// NextInvoiceNumber bumps the sales counter and returns the number to put
// on the invoice. The update is atomic, so two concurrent runs can never
// issue the same number once the row exists.
func (s *Store) NextInvoiceNumber(ctx context.Context) (string, error) {
	var issued string
	err := s.DB.QueryRow(ctx, `
    UPDATE app.m_constant
    SET constant = ((constant::bigint) + 1)::text, updated_on = now()
    WHERE use_for = $1
    RETURNING ((constant::bigint) - 1)::text
  `, CounterUseSales).Scan(&issued)
	if err == pgx.ErrNoRows {
		_, err = s.DB.Exec(ctx, `
      INSERT INTO app.m_constant (id, constant, use_for)
      VALUES ((SELECT COALESCE(MAX(id), 0) + 1 FROM app.m_constant), $1, $2)
    `, counterSeedNext, CounterUseSales)
		if err != nil {
			return "", err
		}
		return counterSeedIssued, nil
	}
	return issued, err
}

func (s *Store) InsertInvoice(ctx context.Context, inv Invoice, actorID string) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO app.t_invoice
      (pcc_id, timesheet_id, inv_client_id, status, amount, total_amount,
       invoice_date, invoice_num, last_working_day, show_invoices, created_by)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
    RETURNING invoice_id
  `, nullIfEmpty(inv.PccID), nullIfEmpty(inv.TimesheetID), nullIfEmpty(inv.ClientID),
		inv.Status, inv.Amount, inv.TotalAmount, inv.InvoiceDate, inv.InvoiceNum,
		inv.LastWorkingDay, inv.ShowInvoices, nullIfEmpty(actorID)).Scan(&id)
	return id, err
}

func (s *Store) InsertLineItem(ctx context.Context, item LineItem, actorID string) (int, error) {
	var id int
	err := s.DB.QueryRow(ctx, `
    INSERT INTO app.p_invoice_line_items
      (invoice_id, type, quantity, rate, total, tcr_id, timesheet_id, m_rate_name, created_by)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
    RETURNING pili_id
  `, item.InvoiceID, item.Type, item.Quantity, item.Rate, item.Total,
		item.TcrID, nullIfEmpty(item.TimesheetID), item.Label, nullIfEmpty(actorID)).Scan(&id)
	return id, err
}

func (s *Store) List(ctx context.Context) ([]Invoice, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT i.invoice_id, COALESCE(i.pcc_id::text, ''), COALESCE(i.timesheet_id::text, ''),
           COALESCE(i.inv_client_id::text, ''), COALESCE(c.client_name, ''),
           COALESCE(i.status, ''), COALESCE(i.amount, 0), COALESCE(i.total_amount, 0),
           i.invoice_date, COALESCE(i.invoice_num, ''), i.last_working_day,
           COALESCE(i.doc_path, ''), COALESCE(i.show_invoices, false), i.created_on
    FROM app.t_invoice i
    LEFT JOIN app.m_client c ON c.client_id = i.inv_client_id
    WHERE i.deleted_on IS NULL AND COALESCE(i.show_invoices, false)
    ORDER BY i.invoice_date DESC, i.invoice_num DESC
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Invoice
	for rows.Next() {
		var inv Invoice
		if err := scanInvoice(rows, &inv); err != nil {
			return nil, err
		}
		out = append(out, inv)
	}
	return out, rows.Err()
}

func (s *Store) Get(ctx context.Context, invoiceID string) (Invoice, error) {
	var inv Invoice
	err := s.DB.QueryRow(ctx, `
    SELECT i.invoice_id, COALESCE(i.pcc_id::text, ''), COALESCE(i.timesheet_id::text, ''),
           COALESCE(i.inv_client_id::text, ''), COALESCE(c.client_name, ''),
           COALESCE(i.status, ''), COALESCE(i.amount, 0), COALESCE(i.total_amount, 0),
           i.invoice_date, COALESCE(i.invoice_num, ''), i.last_working_day,
           COALESCE(i.doc_path, ''), COALESCE(i.show_invoices, false), i.created_on
    FROM app.t_invoice i
    LEFT JOIN app.m_client c ON c.client_id = i.inv_client_id
    WHERE i.invoice_id = $1 AND i.deleted_on IS NULL
  `, invoiceID).Scan(&inv.ID, &inv.PccID, &inv.TimesheetID, &inv.ClientID, &inv.ClientName,
		&inv.Status, &inv.Amount, &inv.TotalAmount, &inv.InvoiceDate, &inv.InvoiceNum,
		&inv.LastWorkingDay, &inv.DocPath, &inv.ShowInvoices, &inv.CreatedOn)
	if err == pgx.ErrNoRows {
		return Invoice{}, ErrInvoiceNotFound
	}
	return inv, err
}

func (s *Store) ListLineItems(ctx context.Context, invoiceID string) ([]LineItem, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT li.pili_id, li.invoice_id, COALESCE(li.type, 0), COALESCE(li.quantity, 0),
           COALESCE(li.rate, 0), COALESCE(li.total, 0), COALESCE(li.tcr_id, 0),
           COALESCE(li.timesheet_id::text, ''), COALESCE(li.m_rate_name, ''),
           COALESCE(rt.rate_type_name, ''), COALESCE(rf.rate_frequency_name, '')
    FROM app.p_invoice_line_items li
    LEFT JOIN app.m_rate_type rt ON rt.rate_type_id = li.type
    LEFT JOIN app.t_contract_rates tcr ON tcr.id = li.tcr_id
    LEFT JOIN app.m_rate_frequency rf ON rf.rate_frequency_id = tcr.rate_frequency
    WHERE li.invoice_id = $1 AND li.deleted_on IS NULL
    ORDER BY li.pili_id
  `, invoiceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []LineItem
	for rows.Next() {
		var item LineItem
		if err := rows.Scan(&item.ID, &item.InvoiceID, &item.Type, &item.Quantity, &item.Rate,
			&item.Total, &item.TcrID, &item.TimesheetID, &item.Label,
			&item.RateTypeName, &item.RateFrequencyName); err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

func (s *Store) UpdateDocPath(ctx context.Context, invoiceID, docPath string) error {
	_, err := s.DB.Exec(ctx,
		"UPDATE app.t_invoice SET doc_path = $2, updated_on = now() WHERE invoice_id = $1",
		invoiceID, docPath)
	return err
}

func scanInvoice(rows pgx.Rows, inv *Invoice) error {
	return rows.Scan(&inv.ID, &inv.PccID, &inv.TimesheetID, &inv.ClientID, &inv.ClientName,
		&inv.Status, &inv.Amount, &inv.TotalAmount, &inv.InvoiceDate, &inv.InvoiceNum,
		&inv.LastWorkingDay, &inv.DocPath, &inv.ShowInvoices, &inv.CreatedOn)
}

func nullIfEmpty(value string) any {
	if value == "" {
		return nil
	}
	return value
}

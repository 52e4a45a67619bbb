package reports

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

func (s *Store) CreateReport(ctx context.Context, req GenerateRequest, status, createdBy string) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO app.t_payroll_report (report_name, description, selected_weeks, status, created_by)
    VALUES ($1,$2,$3,$4,$5)
    RETURNING report_id
  `, req.Name, req.Description, req.SelectedWeeks, status, nullIfEmpty(createdBy)).Scan(&id)
	return id, err
}

func (s *Store) MarkCompleted(ctx context.Context, reportID, filePath string, fileSize int64, generatedBy string) error {
	_, err := s.DB.Exec(ctx, `
    UPDATE app.t_payroll_report
    SET status = $2, file_path = $3, file_size = $4, generated_on = now(), generated_by = $5, updated_on = now()
    WHERE report_id = $1
  `, reportID, StatusCompleted, filePath, fileSize, nullIfEmpty(generatedBy))
	return err
}

func (s *Store) MarkFailed(ctx context.Context, reportID string) error {
	_, err := s.DB.Exec(ctx,
		"UPDATE app.t_payroll_report SET status = $2, updated_on = now() WHERE report_id = $1",
		reportID, StatusFailed)
	return err
}

func (s *Store) ListReports(ctx context.Context) ([]Report, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT report_id, report_name, COALESCE(description, ''), selected_weeks, COALESCE(status, ''),
           COALESCE(file_path, ''), COALESCE(file_size, 0), created_on, generated_on
    FROM app.t_payroll_report
    ORDER BY created_on DESC
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Report
	for rows.Next() {
		var report Report
		if err := rows.Scan(&report.ID, &report.Name, &report.Description, &report.SelectedWeeks,
			&report.Status, &report.FilePath, &report.FileSize, &report.CreatedOn, &report.GeneratedOn); err != nil {
			return nil, err
		}
		out = append(out, report)
	}
	return out, rows.Err()
}

func (s *Store) GetReport(ctx context.Context, reportID string) (Report, error) {
	var report Report
	err := s.DB.QueryRow(ctx, `
    SELECT report_id, report_name, COALESCE(description, ''), selected_weeks, COALESCE(status, ''),
           COALESCE(file_path, ''), COALESCE(file_size, 0), created_on, generated_on
    FROM app.t_payroll_report
    WHERE report_id = $1
  `, reportID).Scan(&report.ID, &report.Name, &report.Description, &report.SelectedWeeks,
		&report.Status, &report.FilePath, &report.FileSize, &report.CreatedOn, &report.GeneratedOn)
	if err == pgx.ErrNoRows {
		return Report{}, ErrReportNotFound
	}
	return report, err
}

func (s *Store) DeleteReport(ctx context.Context, reportID string) error {
	tag, err := s.DB.Exec(ctx, "DELETE FROM app.t_payroll_report WHERE report_id = $1", reportID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrReportNotFound
	}
	return nil
}

func (s *Store) ListInvoicesBetween(ctx context.Context, start, end time.Time) ([]invoiceRef, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT invoice_id, invoice_date, COALESCE(inv_client_id::text, '')
    FROM app.t_invoice
    WHERE invoice_date >= $1 AND invoice_date <= $2 AND deleted_on IS NULL
    ORDER BY invoice_date, invoice_num
  `, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []invoiceRef
	for rows.Next() {
		var ref invoiceRef
		if err := rows.Scan(&ref.ID, &ref.Date, &ref.ClientID); err != nil {
			return nil, err
		}
		out = append(out, ref)
	}
	return out, rows.Err()
}

func (s *Store) ListLineItemTimesheets(ctx context.Context, invoiceID string) ([]string, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT COALESCE(timesheet_id::text, '')
    FROM app.p_invoice_line_items
    WHERE invoice_id = $1 AND deleted_on IS NULL
    ORDER BY pili_id
  `, invoiceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, rows.Err()
}

func (s *Store) HourByTimesheet(ctx context.Context, timesheetID string) (HourData, bool, error) {
	var h HourData
	err := s.DB.QueryRow(ctx, `
    SELECT contractor_id, COALESCE(pcc_id::text, ''),
           COALESCE(standard_hours, 0), COALESCE(weekend_hours, 0),
           COALESCE(bank_holiday_hours, 0), COALESCE(on_call_hours, 0),
           COALESCE(standard_pay_rate, 0), COALESCE(weekend_pay_rate, 0),
           COALESCE(bankholiday_pay_rate, 0), COALESCE(oncall_pay_rate, 0)
    FROM app.t_contractor_hours
    WHERE timesheet_id = $1 AND deleted_on IS NULL
    ORDER BY work_date
    LIMIT 1
  `, timesheetID).Scan(&h.ContractorID, &h.PccID,
		&h.StandardHours, &h.WeekendHours, &h.BankHolidayHours, &h.OnCallHours,
		&h.StandardRate, &h.WeekendRate, &h.BankHolidayRate, &h.OnCallRate)
	if err == pgx.ErrNoRows {
		return HourData{}, false, nil
	}
	if err != nil {
		return HourData{}, false, err
	}
	return h, true, nil
}

func (s *Store) CandidateInfo(ctx context.Context, contractorID string) (name, email string, err error) {
	err = s.DB.QueryRow(ctx, `
    SELECT TRIM(COALESCE(first_name, '') || ' ' || COALESCE(last_name, '')), COALESCE(email_id, '')
    FROM app.m_user
    WHERE user_id = $1
  `, contractorID).Scan(&name, &email)
	if err == pgx.ErrNoRows {
		return "Unknown", "", nil
	}
	return name, email, err
}

func (s *Store) ClientName(ctx context.Context, clientID string) (string, error) {
	if clientID == "" {
		return "Unknown", nil
	}
	var name string
	err := s.DB.QueryRow(ctx,
		"SELECT COALESCE(client_name, '') FROM app.m_client WHERE client_id = $1",
		clientID).Scan(&name)
	if err == pgx.ErrNoRows {
		return "Unknown", nil
	}
	return name, err
}

func (s *Store) CostCenterName(ctx context.Context, pccID string) (string, error) {
	if pccID == "" {
		return "", nil
	}
	var name string
	err := s.DB.QueryRow(ctx, `
    SELECT COALESCE(cc.cc_name, '')
    FROM app.t_candidate_client_cost_center link
    JOIN app.t_cost_center cc ON cc.id = link.cc_id
    WHERE link.pcc_id = $1 AND link.deleted_on IS NULL
    ORDER BY link.sort_order NULLS LAST
    LIMIT 1
  `, pccID).Scan(&name)
	if err == pgx.ErrNoRows {
		return "", nil
	}
	return name, err
}

func (s *Store) ListInvoiceDates(ctx context.Context) ([]time.Time, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT invoice_date
    FROM app.t_invoice
    WHERE deleted_on IS NULL AND invoice_date IS NOT NULL
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []time.Time
	for rows.Next() {
		var d time.Time
		if err := rows.Scan(&d); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func nullIfEmpty(value string) any {
	if value == "" {
		return nil
	}
	return value
}

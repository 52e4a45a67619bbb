package payroll

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

func (s *Store) CreatePeriod(ctx context.Context, input PeriodInput, actorID string) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO app.t_payroll_period (period_name, start_date, end_date, status, created_by)
    VALUES ($1,$2,$3,$4,$5)
    RETURNING period_id
  `, input.Name, input.StartDate, input.EndDate, PeriodStatusDraft, nullIfEmpty(actorID)).Scan(&id)
	return id, err
}

func (s *Store) ListPeriods(ctx context.Context) ([]Period, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT period_id, period_name, start_date, end_date, COALESCE(status, ''), created_at, updated_at
    FROM app.t_payroll_period
    ORDER BY start_date DESC
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Period
	for rows.Next() {
		var p Period
		if err := rows.Scan(&p.ID, &p.Name, &p.StartDate, &p.EndDate, &p.Status, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (s *Store) GetPeriod(ctx context.Context, periodID string) (Period, error) {
	var p Period
	err := s.DB.QueryRow(ctx, `
    SELECT period_id, period_name, start_date, end_date, COALESCE(status, ''), created_at, updated_at
    FROM app.t_payroll_period
    WHERE period_id = $1
  `, periodID).Scan(&p.ID, &p.Name, &p.StartDate, &p.EndDate, &p.Status, &p.CreatedAt, &p.UpdatedAt)
	if err == pgx.ErrNoRows {
		return Period{}, ErrPeriodNotFound
	}
	return p, err
}

func (s *Store) ListHourRows(ctx context.Context, startDate, endDate time.Time, contractorIDs []string) ([]HourRow, error) {
	query := `
    SELECT contractor_id,
           COALESCE(standard_hours, 0), COALESCE(bank_holiday_hours, 0),
           COALESCE(weekend_hours, 0), COALESCE(on_call_hours, 0),
           COALESCE(standard_pay_rate, 0), COALESCE(bankholiday_pay_rate, 0),
           COALESCE(weekend_pay_rate, 0), COALESCE(oncall_pay_rate, 0)
    FROM app.t_contractor_hours
    WHERE work_date >= $1 AND work_date <= $2 AND deleted_on IS NULL`
	args := []any{startDate, endDate}
	if len(contractorIDs) > 0 {
		query += " AND contractor_id = ANY($3)"
		args = append(args, contractorIDs)
	}
	query += " ORDER BY contractor_id, work_date"

	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []HourRow
	for rows.Next() {
		var row HourRow
		if err := rows.Scan(&row.ContractorID,
			&row.StandardHours, &row.BankHolidayHours, &row.WeekendHours, &row.OnCallHours,
			&row.StandardPayRate, &row.BankHolidayPayRate, &row.WeekendPayRate, &row.OnCallPayRate); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// UpsertRun writes the contractor's run for the period, replacing any
// previous calculation. Status resets to pending on recalculation.
func (s *Store) UpsertRun(ctx context.Context, run Run, actorID string) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO app.t_payroll_run
      (period_id, contractor_id, total_hours, standard_hours, overtime_hours, holiday_hours,
       bank_holiday_hours, weekend_hours, oncall_hours,
       standard_pay, overtime_pay, holiday_pay, bank_holiday_pay, weekend_pay, oncall_pay,
       gross_pay, tax_deduction, prsi_deduction, usc_deduction, pension_deduction,
       other_deductions, total_deductions, net_pay, status, created_by)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22,$23,$24,$25)
    ON CONFLICT (period_id, contractor_id) DO UPDATE SET
      total_hours = EXCLUDED.total_hours,
      standard_hours = EXCLUDED.standard_hours,
      overtime_hours = EXCLUDED.overtime_hours,
      holiday_hours = EXCLUDED.holiday_hours,
      bank_holiday_hours = EXCLUDED.bank_holiday_hours,
      weekend_hours = EXCLUDED.weekend_hours,
      oncall_hours = EXCLUDED.oncall_hours,
      standard_pay = EXCLUDED.standard_pay,
      overtime_pay = EXCLUDED.overtime_pay,
      holiday_pay = EXCLUDED.holiday_pay,
      bank_holiday_pay = EXCLUDED.bank_holiday_pay,
      weekend_pay = EXCLUDED.weekend_pay,
      oncall_pay = EXCLUDED.oncall_pay,
      gross_pay = EXCLUDED.gross_pay,
      tax_deduction = EXCLUDED.tax_deduction,
      prsi_deduction = EXCLUDED.prsi_deduction,
      usc_deduction = EXCLUDED.usc_deduction,
      pension_deduction = EXCLUDED.pension_deduction,
      other_deductions = EXCLUDED.other_deductions,
      total_deductions = EXCLUDED.total_deductions,
      net_pay = EXCLUDED.net_pay,
      status = EXCLUDED.status,
      updated_on = now(),
      updated_by = EXCLUDED.created_by
    RETURNING run_id
  `, run.PeriodID, run.ContractorID, run.TotalHours, run.StandardHours, run.OvertimeHours,
		run.HolidayHours, run.BankHolidayHours, run.WeekendHours, run.OnCallHours,
		run.StandardPay, run.OvertimePay, run.HolidayPay, run.BankHolidayPay, run.WeekendPay,
		run.OnCallPay, run.GrossPay, run.Tax, run.PRSI, run.USC, run.Pension, run.Other,
		run.Total, run.NetPay, run.Status, nullIfEmpty(actorID)).Scan(&id)
	return id, err
}

// RefreshSummary re-derives the period summary from every run on the
// period, not just the ones touched by the current calculation.
func (s *Store) RefreshSummary(ctx context.Context, periodID string) error {
	_, err := s.DB.Exec(ctx, `
    INSERT INTO app.t_payroll_summary
      (period_id, total_contractors, total_hours, total_gross_pay, total_deductions,
       total_net_pay, total_tax, total_prsi, total_usc)
    SELECT $1, COUNT(1), COALESCE(SUM(total_hours), 0), COALESCE(SUM(gross_pay), 0),
           COALESCE(SUM(total_deductions), 0), COALESCE(SUM(net_pay), 0),
           COALESCE(SUM(tax_deduction), 0), COALESCE(SUM(prsi_deduction), 0),
           COALESCE(SUM(usc_deduction), 0)
    FROM app.t_payroll_run
    WHERE period_id = $1
    ON CONFLICT (period_id) DO UPDATE SET
      total_contractors = EXCLUDED.total_contractors,
      total_hours = EXCLUDED.total_hours,
      total_gross_pay = EXCLUDED.total_gross_pay,
      total_deductions = EXCLUDED.total_deductions,
      total_net_pay = EXCLUDED.total_net_pay,
      total_tax = EXCLUDED.total_tax,
      total_prsi = EXCLUDED.total_prsi,
      total_usc = EXCLUDED.total_usc,
      updated_on = now()
  `, periodID)
	return err
}

func (s *Store) GetSummary(ctx context.Context, periodID string) (Summary, error) {
	var sum Summary
	err := s.DB.QueryRow(ctx, `
    SELECT summary_id, period_id, total_contractors, total_hours, total_gross_pay,
           total_deductions, total_net_pay, total_tax, total_prsi, total_usc
    FROM app.t_payroll_summary
    WHERE period_id = $1
  `, periodID).Scan(&sum.SummaryID, &sum.PeriodID, &sum.TotalContractors, &sum.TotalHours,
		&sum.TotalGrossPay, &sum.TotalDeductions, &sum.TotalNetPay, &sum.TotalTax,
		&sum.TotalPRSI, &sum.TotalUSC)
	if err == pgx.ErrNoRows {
		return Summary{}, ErrPeriodNotFound
	}
	return sum, err
}

func nullIfEmpty(value string) any {
	if value == "" {
		return nil
	}
	return value
}

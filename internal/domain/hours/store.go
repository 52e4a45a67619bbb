package hours

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

func (s *Store) FindEntry(ctx context.Context, contractorID, timesheetID string, workDate any) (Entry, bool, error) {
	var entry Entry
	err := s.DB.QueryRow(ctx, `
    SELECT tch_id, contractor_id, work_date, timesheet_id, COALESCE(pcc_id::text, ''),
           COALESCE(status, ''), COALESCE(week, 0), COALESCE(day, ''),
           COALESCE(standard_hours, 0), COALESCE(on_call_hours, 0), COALESCE(weekend_hours, 0),
           COALESCE(bank_holiday_hours, 0), COALESCE(holiday_hours, 0), COALESCE(double_hours, 0),
           COALESCE(triple_hours, 0), COALESCE(dedh_hours, 0), COALESCE(total_hours, 0),
           COALESCE(standard_pay_rate, 0), COALESCE(standard_bill_rate, 0),
           COALESCE(oncall_pay_rate, 0), COALESCE(oncall_bill_rate, 0),
           COALESCE(weekend_pay_rate, 0), COALESCE(weekend_bill_rate, 0),
           COALESCE(bankholiday_pay_rate, 0), COALESCE(bankholiday_bill_rate, 0),
           COALESCE(double_pay_rate, 0), COALESCE(double_bill_rate, 0),
           COALESCE(triple_pay_rate, 0), COALESCE(triple_bill_rate, 0),
           COALESCE(dedh_pay_rate, 0), COALESCE(dedh_bill_rate, 0)
    FROM app.t_contractor_hours
    WHERE contractor_id = $1 AND timesheet_id = $2 AND work_date = $3 AND deleted_on IS NULL
  `, contractorID, timesheetID, workDate).Scan(
		&entry.TchID, &entry.ContractorID, &entry.WorkDate, &entry.TimesheetID, &entry.PccID,
		&entry.Status, &entry.Week, &entry.Day,
		&entry.StandardHours, &entry.OnCallHours, &entry.WeekendHours,
		&entry.BankHolidayHours, &entry.HolidayHours, &entry.DoubleHours,
		&entry.TripleHours, &entry.DedhHours, &entry.TotalHours,
		&entry.StandardPayRate, &entry.StandardBillRate,
		&entry.OnCallPayRate, &entry.OnCallBillRate,
		&entry.WeekendPayRate, &entry.WeekendBillRate,
		&entry.BankHolidayPayRate, &entry.BankHolidayBillRate,
		&entry.DoublePayRate, &entry.DoubleBillRate,
		&entry.TriplePayRate, &entry.TripleBillRate,
		&entry.DedhPayRate, &entry.DedhBillRate)
	if err == pgx.ErrNoRows {
		return Entry{}, false, nil
	}
	if err != nil {
		return Entry{}, false, err
	}
	return entry, true, nil
}

func (s *Store) InsertEntry(ctx context.Context, entry Entry, actorID string) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO app.t_contractor_hours
      (contractor_id, work_date, timesheet_id, pcc_id, status, week, day,
       standard_hours, on_call_hours, weekend_hours, bank_holiday_hours, holiday_hours,
       double_hours, triple_hours, dedh_hours, total_hours,
       standard_pay_rate, standard_bill_rate, oncall_pay_rate, oncall_bill_rate,
       weekend_pay_rate, weekend_bill_rate, bankholiday_pay_rate, bankholiday_bill_rate,
       double_pay_rate, double_bill_rate, triple_pay_rate, triple_bill_rate,
       dedh_pay_rate, dedh_bill_rate, created_by)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,
            $17,$18,$19,$20,$21,$22,$23,$24,$25,$26,$27,$28,$29,$30,$31)
    RETURNING tch_id
  `, entry.ContractorID, entry.WorkDate, entry.TimesheetID, nullIfEmpty(entry.PccID),
		entry.Status, entry.Week, entry.Day,
		entry.StandardHours, entry.OnCallHours, entry.WeekendHours, entry.BankHolidayHours,
		entry.HolidayHours, entry.DoubleHours, entry.TripleHours, entry.DedhHours, entry.TotalHours,
		entry.StandardPayRate, entry.StandardBillRate, entry.OnCallPayRate, entry.OnCallBillRate,
		entry.WeekendPayRate, entry.WeekendBillRate, entry.BankHolidayPayRate, entry.BankHolidayBillRate,
		entry.DoublePayRate, entry.DoubleBillRate, entry.TriplePayRate, entry.TripleBillRate,
		entry.DedhPayRate, entry.DedhBillRate, nullIfEmpty(actorID)).Scan(&id)
	return id, err
}

func (s *Store) UpdateEntry(ctx context.Context, entry Entry, actorID string) error {
	_, err := s.DB.Exec(ctx, `
    UPDATE app.t_contractor_hours SET
      status = $2, week = $3, day = $4,
      standard_hours = $5, on_call_hours = $6, weekend_hours = $7, bank_holiday_hours = $8,
      holiday_hours = $9, double_hours = $10, triple_hours = $11, dedh_hours = $12,
      total_hours = $13,
      standard_pay_rate = $14, standard_bill_rate = $15,
      oncall_pay_rate = $16, oncall_bill_rate = $17,
      weekend_pay_rate = $18, weekend_bill_rate = $19,
      bankholiday_pay_rate = $20, bankholiday_bill_rate = $21,
      double_pay_rate = $22, double_bill_rate = $23,
      triple_pay_rate = $24, triple_bill_rate = $25,
      dedh_pay_rate = $26, dedh_bill_rate = $27,
      updated_on = now(), updated_by = $28
    WHERE tch_id = $1
  `, entry.TchID, entry.Status, entry.Week, entry.Day,
		entry.StandardHours, entry.OnCallHours, entry.WeekendHours, entry.BankHolidayHours,
		entry.HolidayHours, entry.DoubleHours, entry.TripleHours, entry.DedhHours,
		entry.TotalHours,
		entry.StandardPayRate, entry.StandardBillRate,
		entry.OnCallPayRate, entry.OnCallBillRate,
		entry.WeekendPayRate, entry.WeekendBillRate,
		entry.BankHolidayPayRate, entry.BankHolidayBillRate,
		entry.DoublePayRate, entry.DoubleBillRate,
		entry.TriplePayRate, entry.TripleBillRate,
		entry.DedhPayRate, entry.DedhBillRate,
		nullIfEmpty(actorID))
	return err
}

func (s *Store) ListRateHours(ctx context.Context, tchID string) ([]RateHour, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT tcrh_id, tch_id, rate_type_id, rate_frequency_id, tcr_id,
           COALESCE(quantity, 0), COALESCE(pay_rate, 0), COALESCE(bill_rate, 0)
    FROM app.t_contractor_rate_hours
    WHERE tch_id = $1 AND deleted_on IS NULL
    ORDER BY tcrh_id
  `, tchID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []RateHour
	for rows.Next() {
		var row RateHour
		if err := rows.Scan(&row.TcrhID, &row.TchID, &row.RateTypeID, &row.RateFrequencyID,
			&row.TcrID, &row.Quantity, &row.PayRate, &row.BillRate); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func (s *Store) InsertRateHour(ctx context.Context, tchID string, input RateHourInput, actorID string) error {
	_, err := s.DB.Exec(ctx, `
    INSERT INTO app.t_contractor_rate_hours
      (tch_id, rate_type_id, rate_frequency_id, tcr_id, quantity, pay_rate, bill_rate, created_by)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
  `, tchID, input.RateTypeID, input.RateFrequencyID, input.TcrID,
		input.Quantity, input.PayRate, input.BillRate, nullIfEmpty(actorID))
	return err
}

func (s *Store) UpdateRateHour(ctx context.Context, tcrhID int, input RateHourInput, actorID string) error {
	_, err := s.DB.Exec(ctx, `
    UPDATE app.t_contractor_rate_hours SET
      tcr_id = $2, quantity = $3, pay_rate = $4, bill_rate = $5,
      updated_on = now(), updated_by = $6
    WHERE tcrh_id = $1
  `, tcrhID, input.TcrID, input.Quantity, input.PayRate, input.BillRate, nullIfEmpty(actorID))
	return err
}

func (s *Store) SoftDeleteRateHour(ctx context.Context, tcrhID int, actorID string) error {
	_, err := s.DB.Exec(ctx, `
    UPDATE app.t_contractor_rate_hours SET deleted_on = now(), deleted_by = $2
    WHERE tcrh_id = $1
  `, tcrhID, nullIfEmpty(actorID))
	return err
}

func (s *Store) HolidayBalance(ctx context.Context, candidateID string) (float64, error) {
	var balance float64
	err := s.DB.QueryRow(ctx,
		"SELECT COALESCE(holiday_count, 0) FROM app.m_candidate WHERE candidate_id = $1",
		candidateID).Scan(&balance)
	if err == pgx.ErrNoRows {
		return 0, nil
	}
	return balance, err
}

func (s *Store) SetHolidayBalance(ctx context.Context, candidateID string, balance float64) error {
	_, err := s.DB.Exec(ctx,
		"UPDATE app.m_candidate SET holiday_count = $2 WHERE candidate_id = $1",
		candidateID, balance)
	return err
}

func nullIfEmpty(value string) any {
	if value == "" {
		return nil
	}
	return value
}

package timesheets

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

func (s *Store) ListSummaries(ctx context.Context) ([]Summary, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT t.timesheet_id, COALESCE(t.status, ''), COALESCE(t.month, ''), COALESCE(t.week, ''),
           COALESCE(t.date_range, ''), t.created_on, t.updated_on,
           COUNT(e.entry_id), COUNT(e.entry_id) FILTER (WHERE e.filled)
    FROM app.t_timesheet t
    LEFT JOIN app.t_timesheet_entry e ON e.timesheet_id = t.timesheet_id
    GROUP BY t.timesheet_id
    ORDER BY t.created_on DESC
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Summary
	for rows.Next() {
		var sum Summary
		if err := rows.Scan(&sum.ID, &sum.Status, &sum.Month, &sum.Week, &sum.DateRange,
			&sum.CreatedOn, &sum.UpdatedOn, &sum.TotalEntries, &sum.FilledEntries); err != nil {
			return nil, err
		}
		out = append(out, sum)
	}
	return out, rows.Err()
}

func (s *Store) GetTimesheet(ctx context.Context, timesheetID string) (Timesheet, error) {
	var ts Timesheet
	err := s.DB.QueryRow(ctx, `
    SELECT timesheet_id, COALESCE(status, ''), COALESCE(month, ''), COALESCE(week, ''),
           COALESCE(date_range, ''), created_on, updated_on
    FROM app.t_timesheet
    WHERE timesheet_id = $1
  `, timesheetID).Scan(&ts.ID, &ts.Status, &ts.Month, &ts.Week, &ts.DateRange, &ts.CreatedOn, &ts.UpdatedOn)
	if err == pgx.ErrNoRows {
		return Timesheet{}, ErrTimesheetNotFound
	}
	return ts, err
}

func (s *Store) ListEntries(ctx context.Context, timesheetID string) ([]Entry, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT entry_id, timesheet_id, employee_name, employee_code, client_name, filled,
           standard_hours, rate2_hours, rate3_hours, rate4_hours, rate5_hours, rate6_hours,
           holiday_hours, bank_holiday_hours, created_on, updated_on
    FROM app.t_timesheet_entry
    WHERE timesheet_id = $1
    ORDER BY employee_name
  `, timesheetID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var entry Entry
		if err := rows.Scan(&entry.ID, &entry.TimesheetID, &entry.EmployeeName, &entry.EmployeeCode,
			&entry.ClientName, &entry.Filled, &entry.StandardHours, &entry.Rate2Hours, &entry.Rate3Hours,
			&entry.Rate4Hours, &entry.Rate5Hours, &entry.Rate6Hours, &entry.HolidayHours,
			&entry.BankHolidayHours, &entry.CreatedOn, &entry.UpdatedOn); err != nil {
			return nil, err
		}
		out = append(out, entry)
	}
	return out, rows.Err()
}

func (s *Store) CreateEntry(ctx context.Context, timesheetID string, input EntryInput) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO app.t_timesheet_entry
      (timesheet_id, employee_name, employee_code, client_name, filled,
       standard_hours, rate2_hours, rate3_hours, rate4_hours, rate5_hours, rate6_hours,
       holiday_hours, bank_holiday_hours)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
    RETURNING entry_id
  `, timesheetID, input.EmployeeName, input.EmployeeCode, input.ClientName,
		boolOrFalse(input.Filled),
		floatOrZero(input.StandardHours), floatOrZero(input.Rate2Hours), floatOrZero(input.Rate3Hours),
		floatOrZero(input.Rate4Hours), floatOrZero(input.Rate5Hours), floatOrZero(input.Rate6Hours),
		floatOrZero(input.HolidayHours), floatOrZero(input.BankHolidayHours)).Scan(&id)
	return id, err
}

func (s *Store) UpdateEntry(ctx context.Context, entryID string, input EntryInput) error {
	tag, err := s.DB.Exec(ctx, `
    UPDATE app.t_timesheet_entry SET
      employee_name = COALESCE(NULLIF($2, ''), employee_name),
      employee_code = COALESCE(NULLIF($3, ''), employee_code),
      client_name = COALESCE(NULLIF($4, ''), client_name),
      filled = COALESCE($5, filled),
      standard_hours = COALESCE($6, standard_hours),
      rate2_hours = COALESCE($7, rate2_hours),
      rate3_hours = COALESCE($8, rate3_hours),
      rate4_hours = COALESCE($9, rate4_hours),
      rate5_hours = COALESCE($10, rate5_hours),
      rate6_hours = COALESCE($11, rate6_hours),
      holiday_hours = COALESCE($12, holiday_hours),
      bank_holiday_hours = COALESCE($13, bank_holiday_hours),
      updated_on = now()
    WHERE entry_id = $1
  `, entryID, input.EmployeeName, input.EmployeeCode, input.ClientName, input.Filled,
		input.StandardHours, input.Rate2Hours, input.Rate3Hours, input.Rate4Hours,
		input.Rate5Hours, input.Rate6Hours, input.HolidayHours, input.BankHolidayHours)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrEntryNotFound
	}
	return nil
}

func boolOrFalse(v *bool) bool {
	if v == nil {
		return false
	}
	return *v
}

func floatOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

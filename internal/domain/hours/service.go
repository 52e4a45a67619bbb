package hours

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"backoffice/internal/domain/rates"
)

// RateSource supplies the placement's rate card for snapshotting pay and
// bill rates onto new entries.
type RateSource interface {
	ListRates(ctx context.Context, pccID string) ([]rates.Rate, error)
}

type Service struct {
	pool  *pgxpool.Pool
	rates RateSource
}

func NewService(pool *pgxpool.Pool, rateSource RateSource) *Service {
	return &Service{pool: pool, rates: rateSource}
}

// UpsertHours logs or corrects contractor-day entries. Each entry runs in
// its own transaction: the day's scalars, its breakdown rows and the
// candidate's holiday balance move together or not at all, but one bad day
// does not undo the rest of the batch.
func (s *Service) UpsertHours(ctx context.Context, actorID, timesheetID string, inputs []EntryInput) (UpsertResult, error) {
	var result UpsertResult
	for i, input := range inputs {
		created, tchID, err := s.upsertOne(ctx, actorID, timesheetID, input)
		if err != nil {
			return result, fmt.Errorf("entry %d (%s %s): %w", i, input.ContractorID, input.WorkDate.Format("2006-01-02"), err)
		}
		if created {
			result.Created++
		} else {
			result.Updated++
		}
		result.TchIDs = append(result.TchIDs, tchID)
	}
	return result, nil
}

func (s *Service) upsertOne(ctx context.Context, actorID, timesheetID string, input EntryInput) (bool, string, error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return false, "", err
	}
	defer func() {
		if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			slog.Warn("hours upsert rollback failed", "error", err)
		}
	}()

	store := NewStore(tx)

	existing, found, err := store.FindEntry(ctx, input.ContractorID, timesheetID, input.WorkDate)
	if err != nil {
		return false, "", err
	}

	var oldStandard, oldHoliday float64
	var entry Entry
	if found {
		oldStandard = existing.StandardHours
		oldHoliday = existing.HolidayHours
		entry = ApplyScalars(existing, input)
		if err := store.UpdateEntry(ctx, entry, actorID); err != nil {
			return false, "", err
		}
	} else {
		entry = Entry{
			ContractorID: input.ContractorID,
			WorkDate:     input.WorkDate,
			TimesheetID:  timesheetID,
			PccID:        input.PccID,
			Status:       input.Status,
			Week:         input.Week,
			Day:          input.Day,
		}
		// Card snapshot first, so explicit snapshot fields in the input win.
		if err := s.snapshotRates(ctx, &entry); err != nil {
			return false, "", err
		}
		entry = ApplyScalars(entry, input)
		entry.TchID, err = store.InsertEntry(ctx, entry, actorID)
		if err != nil {
			return false, "", err
		}
	}

	var existingRows []RateHour
	if found {
		existingRows, err = store.ListRateHours(ctx, entry.TchID)
		if err != nil {
			return false, "", err
		}
	}
	diff := DiffRateHours(existingRows, input.RateHours)
	for _, update := range diff.Updates {
		if err := store.UpdateRateHour(ctx, update.TcrhID, update.Input, actorID); err != nil {
			return false, "", err
		}
	}
	for _, insert := range diff.Inserts {
		if err := store.InsertRateHour(ctx, entry.TchID, insert, actorID); err != nil {
			return false, "", err
		}
	}
	for _, tcrhID := range diff.Deletes {
		if err := store.SoftDeleteRateHour(ctx, tcrhID, actorID); err != nil {
			return false, "", err
		}
	}

	balance, err := store.HolidayBalance(ctx, entry.ContractorID)
	if err != nil {
		return false, "", err
	}
	newBalance := HolidayBalance(balance, oldStandard, entry.StandardHours, oldHoliday, entry.HolidayHours)
	if newBalance != balance {
		if err := store.SetHolidayBalance(ctx, entry.ContractorID, newBalance); err != nil {
			return false, "", err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return false, "", err
	}
	return !found, entry.TchID, nil
}

// snapshotRates copies the placement's current pay and bill rates onto the
// entry's snapshot columns. Later rows on the card win when a rate type
// appears more than once.
func (s *Service) snapshotRates(ctx context.Context, entry *Entry) error {
	if s.rates == nil || entry.PccID == "" {
		return nil
	}
	card, err := s.rates.ListRates(ctx, entry.PccID)
	if err != nil {
		return err
	}
	for _, rate := range card {
		switch rate.RateTypeID {
		case rates.RateTypeStandard:
			entry.StandardPayRate, entry.StandardBillRate = rate.PayRate, rate.BillRate
		case rates.RateTypeOnCall:
			entry.OnCallPayRate, entry.OnCallBillRate = rate.PayRate, rate.BillRate
		case rates.RateTypeWeekend:
			entry.WeekendPayRate, entry.WeekendBillRate = rate.PayRate, rate.BillRate
		case rates.RateTypeBankHoliday:
			entry.BankHolidayPayRate, entry.BankHolidayBillRate = rate.PayRate, rate.BillRate
		case rates.RateTypeDouble:
			entry.DoublePayRate, entry.DoubleBillRate = rate.PayRate, rate.BillRate
		case rates.RateTypeTriple:
			entry.TriplePayRate, entry.TripleBillRate = rate.PayRate, rate.BillRate
		case rates.RateTypeTimeAndHalf:
			entry.DedhPayRate, entry.DedhBillRate = rate.PayRate, rate.BillRate
		}
	}
	return nil
}

package payroll

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"backoffice/internal/domain/audit"
	"backoffice/internal/requestctx"
)

type Service struct {
	pool  *pgxpool.Pool
	audit *audit.Service
}

func NewService(pool *pgxpool.Pool, auditSvc *audit.Service) *Service {
	return &Service{pool: pool, audit: auditSvc}
}

func (s *Service) CreatePeriod(ctx context.Context, actorID string, input PeriodInput) (Period, error) {
	if input.EndDate.Before(input.StartDate) {
		return Period{}, ErrPeriodDates
	}
	store := NewStore(s.pool)
	id, err := store.CreatePeriod(ctx, input, actorID)
	if err != nil {
		return Period{}, err
	}
	return store.GetPeriod(ctx, id)
}

func (s *Service) ListPeriods(ctx context.Context) ([]Period, error) {
	return NewStore(s.pool).ListPeriods(ctx)
}

func (s *Service) GetPeriod(ctx context.Context, periodID string) (Period, error) {
	return NewStore(s.pool).GetPeriod(ctx, periodID)
}

func (s *Service) GetSummary(ctx context.Context, periodID string) (Summary, error) {
	return NewStore(s.pool).GetSummary(ctx, periodID)
}

// CalculatePayroll aggregates the period's logged hours per contractor,
// applies PAYE, PRSI and USC, and upserts one run per contractor plus the
// period summary, all in one transaction. Passing contractor IDs restricts
// the calculation; the summary still re-derives from every run on the
// period.
func (s *Service) CalculatePayroll(ctx context.Context, actorID, periodID string, contractorIDs []string) (CalcResult, error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return CalcResult{}, err
	}
	defer func() {
		if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			slog.Warn("payroll calculation rollback failed", "error", err)
		}
	}()

	store := NewStore(tx)

	period, err := store.GetPeriod(ctx, periodID)
	if err != nil {
		return CalcResult{}, err
	}

	rows, err := store.ListHourRows(ctx, period.StartDate, period.EndDate, contractorIDs)
	if err != nil {
		return CalcResult{}, err
	}

	totals, order := AggregateHours(rows)

	result := CalcResult{PeriodID: periodID, TotalContractors: len(order)}
	for _, contractorID := range order {
		t := totals[contractorID]
		deductions := CalculateDeductions(t.GrossPay, MaritalSingle)
		netPay, _ := decimal.NewFromFloat(t.GrossPay).
			Sub(decimal.NewFromFloat(deductions.Total)).
			Round(2).Float64()

		run := Run{
			PeriodID:     periodID,
			ContractorID: contractorID,
			RunTotals:    *t,
			Deductions:   deductions,
			NetPay:       netPay,
			Status:       RunStatusPending,
		}
		run.RunID, err = store.UpsertRun(ctx, run, actorID)
		if err != nil {
			return CalcResult{}, err
		}

		result.Runs = append(result.Runs, run)
		result.TotalGrossPay += t.GrossPay
		result.TotalDeductions += deductions.Total
		result.TotalNetPay += netPay
	}

	if err := store.RefreshSummary(ctx, periodID); err != nil {
		return CalcResult{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return CalcResult{}, err
	}

	if s.audit != nil {
		details := map[string]any{"contractors": result.TotalContractors, "grossPay": result.TotalGrossPay}
		if err := s.audit.Record(ctx, actorID, "payroll.calculate", "payroll_period", periodID, requestctx.GetRequestID(ctx), details); err != nil {
			slog.Warn("audit record failed", "action", "payroll.calculate", "error", err)
		}
	}
	return result, nil
}

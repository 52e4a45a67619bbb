package invoices

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"backoffice/internal/domain/audit"
	"backoffice/internal/platform/metrics"
	"backoffice/internal/requestctx"
)

type Service struct {
	pool       *pgxpool.Pool
	store      StoreAPI
	audit      *audit.Service
	metrics    *metrics.Collector
	storageDir string
}

func NewService(pool *pgxpool.Pool, auditSvc *audit.Service, collector *metrics.Collector, storageDir string) *Service {
	return &Service{pool: pool, store: NewStore(pool), audit: auditSvc, metrics: collector, storageDir: storageDir}
}

// GenerateInvoices creates one draft invoice per client for the hours
// logged on the billing Friday of the selected week. Everything happens in
// a single transaction; a failure part-way leaves no invoices behind.
func (s *Service) GenerateInvoices(ctx context.Context, actorID, week string, clientIDs []string, invoiceDate time.Time) (GenerateResult, error) {
	wk, err := ResolveWeek(week)
	if err != nil {
		return GenerateResult{}, err
	}

	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return GenerateResult{}, err
	}
	defer func() {
		if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			slog.Warn("invoice generation rollback failed", "error", err)
		}
	}()

	result, err := generateWeek(ctx, NewStore(tx), actorID, wk, clientIDs, invoiceDate)
	if err != nil {
		return GenerateResult{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return GenerateResult{}, err
	}

	if s.metrics != nil {
		s.metrics.AddInvoices(result.InvoicesCreated)
	}
	if s.audit != nil {
		details := map[string]any{"week": week, "clients": clientIDs, "invoicesCreated": result.InvoicesCreated, "totalAmount": result.TotalAmount}
		if err := s.audit.Record(ctx, actorID, "invoice.generate", "invoice", result.FirstInvoiceID, requestctx.GetRequestID(ctx), details); err != nil {
			slog.Warn("audit record failed", "action", "invoice.generate", "error", err)
		}
	}
	return result, nil
}

// generateWeek creates the invoices and line items for one billing week.
// The caller supplies the store, typically bound to an open transaction.
func generateWeek(ctx context.Context, store StoreAPI, actorID string, wk Week, clientIDs []string, invoiceDate time.Time) (GenerateResult, error) {
	billable, err := store.ListBillableHours(ctx, wk.BillingDate, clientIDs)
	if err != nil {
		return GenerateResult{}, err
	}
	if len(billable) == 0 {
		return GenerateResult{}, ErrNoHoursLogged
	}

	byClient := make(map[string][]billableHour)
	var clientOrder []string
	for _, hour := range billable {
		if _, seen := byClient[hour.ClientID]; !seen {
			clientOrder = append(clientOrder, hour.ClientID)
		}
		byClient[hour.ClientID] = append(byClient[hour.ClientID], hour)
	}

	var result GenerateResult
	rangeLabel := fmt.Sprintf("%s to %s", wk.Start.Format("2006-01-02"), wk.End.Format("2006-01-02"))

	for _, clientID := range clientOrder {
		hours := byClient[clientID]

		var items []LineItem
		var total float64
		for _, hour := range hours {
			label := fmt.Sprintf("%s - %s - %s", hour.CandidateName, hour.ClientName, rangeLabel)
			for _, row := range hour.Breakdown {
				lineTotal := row.Quantity * row.BillRate
				items = append(items, LineItem{
					Type:        row.RateTypeID,
					Quantity:    row.Quantity,
					Rate:        row.BillRate,
					Total:       lineTotal,
					TcrID:       row.TcrID,
					TimesheetID: hour.TimesheetID,
					Label:       label,
				})
				total += lineTotal
			}
		}
		if len(items) == 0 {
			continue
		}

		invoiceNum, err := store.NextInvoiceNumber(ctx)
		if err != nil {
			return GenerateResult{}, err
		}

		lastWorkingDay := wk.BillingDate
		invoiceID, err := store.InsertInvoice(ctx, Invoice{
			PccID:          hours[0].PccID,
			TimesheetID:    hours[0].TimesheetID,
			ClientID:       clientID,
			Status:         StatusDraft,
			Amount:         total,
			TotalAmount:    total,
			InvoiceDate:    invoiceDate,
			InvoiceNum:     invoiceNum,
			LastWorkingDay: &lastWorkingDay,
			ShowInvoices:   true,
		}, actorID)
		if err != nil {
			return GenerateResult{}, err
		}

		for i := range items {
			items[i].InvoiceID = invoiceID
			items[i].ID, err = store.InsertLineItem(ctx, items[i], actorID)
			if err != nil {
				return GenerateResult{}, err
			}
		}

		if result.InvoicesCreated == 0 {
			result.FirstInvoiceID = invoiceID
			result.InvoiceNum = invoiceNum
			result.InvoiceDate = invoiceDate
			result.LineItems = items
		}
		result.TotalAmount += total
		result.InvoicesCreated++
	}

	if result.InvoicesCreated == 0 {
		return GenerateResult{}, ErrNoRatesAvailable
	}
	return result, nil
}

func (s *Service) List(ctx context.Context) ([]Invoice, error) {
	return s.store.List(ctx)
}

func (s *Service) Get(ctx context.Context, invoiceID string) (Invoice, error) {
	return s.store.Get(ctx, invoiceID)
}

func (s *Service) GetWithLineItems(ctx context.Context, invoiceID string) (Detail, error) {
	inv, err := s.store.Get(ctx, invoiceID)
	if err != nil {
		return Detail{}, err
	}
	items, err := s.store.ListLineItems(ctx, invoiceID)
	if err != nil {
		return Detail{}, err
	}
	return Detail{Invoice: inv, LineItems: items}, nil
}

package invoices

import (
	"context"
	"fmt"
	"strconv"
	"testing"
	"time"
)

type fakeStore struct {
	billable  []billableHour
	counter   int64
	invoices  []Invoice
	items     []LineItem
	detail    Invoice
	lineItems []LineItem
}

func (f *fakeStore) ListBillableHours(ctx context.Context, billingDate time.Time, clientIDs []string) ([]billableHour, error) {
	return f.billable, nil
}

func (f *fakeStore) NextInvoiceNumber(ctx context.Context) (string, error) {
	issued := f.counter
	f.counter++
	return strconv.FormatInt(issued, 10), nil
}

func (f *fakeStore) InsertInvoice(ctx context.Context, inv Invoice, actorID string) (string, error) {
	inv.ID = fmt.Sprintf("inv-%d", len(f.invoices)+1)
	f.invoices = append(f.invoices, inv)
	return inv.ID, nil
}

func (f *fakeStore) InsertLineItem(ctx context.Context, item LineItem, actorID string) (int, error) {
	f.items = append(f.items, item)
	return len(f.items), nil
}

func (f *fakeStore) List(ctx context.Context) ([]Invoice, error) {
	return f.invoices, nil
}

func (f *fakeStore) Get(ctx context.Context, invoiceID string) (Invoice, error) {
	return f.detail, nil
}

func (f *fakeStore) ListLineItems(ctx context.Context, invoiceID string) ([]LineItem, error) {
	return f.lineItems, nil
}

func (f *fakeStore) UpdateDocPath(ctx context.Context, invoiceID, docPath string) error {
	return nil
}

func billableFor(clientID, candidate string, rows ...breakdownRow) billableHour {
	return billableHour{
		TchID:         "tch-" + clientID,
		PccID:         "pcc-" + clientID,
		TimesheetID:   "ts-" + clientID,
		ClientID:      clientID,
		ClientName:    "Client " + clientID,
		CandidateName: candidate,
		Breakdown:     rows,
	}
}

func mustWeek(t *testing.T, value string) Week {
	t.Helper()
	wk, err := ResolveWeek(value)
	if err != nil {
		t.Fatalf("resolve week %s: %v", value, err)
	}
	return wk
}

func TestGenerateWeekTotalMatchesLineItems(t *testing.T) {
	store := &fakeStore{counter: 1200000, billable: []billableHour{
		billableFor("c1", "Aoife Kelly",
			breakdownRow{TcrID: 1, RateTypeID: 1, Quantity: 37.5, BillRate: 52},
			breakdownRow{TcrID: 2, RateTypeID: 3, Quantity: 4, BillRate: 78}),
	}}

	result, err := generateWeek(context.Background(), store, "actor", mustWeek(t, "2025-W03"), []string{"c1"}, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(store.invoices) != 1 {
		t.Fatalf("expected 1 invoice, got %d", len(store.invoices))
	}

	var sum float64
	for _, item := range store.items {
		if item.Total != item.Quantity*item.Rate {
			t.Fatalf("line total %v != %v x %v", item.Total, item.Quantity, item.Rate)
		}
		sum += item.Total
	}
	if store.invoices[0].TotalAmount != sum {
		t.Fatalf("invoice total %v != line item sum %v", store.invoices[0].TotalAmount, sum)
	}
	if result.TotalAmount != sum {
		t.Fatalf("result total %v != line item sum %v", result.TotalAmount, sum)
	}
}

func TestGenerateWeekSequentialNumbering(t *testing.T) {
	store := &fakeStore{counter: 1200000, billable: []billableHour{
		billableFor("c1", "Aoife Kelly", breakdownRow{TcrID: 1, RateTypeID: 1, Quantity: 8, BillRate: 50}),
		billableFor("c2", "Sean Murphy", breakdownRow{TcrID: 2, RateTypeID: 1, Quantity: 6, BillRate: 40}),
	}}

	result, err := generateWeek(context.Background(), store, "actor", mustWeek(t, "2025-W03"), []string{"c1", "c2"}, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.InvoicesCreated != 2 {
		t.Fatalf("expected 2 invoices, got %d", result.InvoicesCreated)
	}
	if store.invoices[0].InvoiceNum != "1200000" || store.invoices[1].InvoiceNum != "1200001" {
		t.Fatalf("expected sequential numbers 1200000 and 1200001, got %s and %s",
			store.invoices[0].InvoiceNum, store.invoices[1].InvoiceNum)
	}
}

func TestGenerateWeekNoHoursCreatesNothing(t *testing.T) {
	store := &fakeStore{counter: 1200000}

	_, err := generateWeek(context.Background(), store, "actor", mustWeek(t, "2025-W03"), []string{"c1"}, time.Now())
	if err != ErrNoHoursLogged {
		t.Fatalf("expected ErrNoHoursLogged, got %v", err)
	}
	if len(store.invoices) != 0 || len(store.items) != 0 {
		t.Fatalf("precondition failure must create nothing, got %d invoices and %d items",
			len(store.invoices), len(store.items))
	}
}

func TestGenerateWeekHoursWithoutRates(t *testing.T) {
	// Hours exist but carry no breakdown rows, so nothing is billable.
	store := &fakeStore{counter: 1200000, billable: []billableHour{
		billableFor("c1", "Aoife Kelly"),
	}}

	_, err := generateWeek(context.Background(), store, "actor", mustWeek(t, "2025-W03"), []string{"c1"}, time.Now())
	if err != ErrNoRatesAvailable {
		t.Fatalf("expected ErrNoRatesAvailable, got %v", err)
	}
	if len(store.invoices) != 0 {
		t.Fatalf("expected no invoices, got %d", len(store.invoices))
	}
}

func TestGetWithLineItemsCarriesRateNames(t *testing.T) {
	store := &fakeStore{
		detail: Invoice{ID: "inv-1", InvoiceNum: "1200000"},
		lineItems: []LineItem{
			{ID: 1, InvoiceID: "inv-1", Type: 1, RateTypeName: "Standard", RateFrequencyName: "Hourly"},
		},
	}
	svc := &Service{store: store}

	detail, err := svc.GetWithLineItems(context.Background(), "inv-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(detail.LineItems) != 1 {
		t.Fatalf("expected 1 line item, got %d", len(detail.LineItems))
	}
	item := detail.LineItems[0]
	if item.RateTypeName != "Standard" || item.RateFrequencyName != "Hourly" {
		t.Fatalf("expected rate type and frequency names on the detail, got %+v", item)
	}
}

package invoices

import (
	"context"
	"time"
)

// StoreAPI is the persistence surface behind the generator and the read
// paths. *Store implements it on a pool or on an open transaction.
type StoreAPI interface {
	ListBillableHours(ctx context.Context, billingDate time.Time, clientIDs []string) ([]billableHour, error)
	NextInvoiceNumber(ctx context.Context) (string, error)
	InsertInvoice(ctx context.Context, inv Invoice, actorID string) (string, error)
	InsertLineItem(ctx context.Context, item LineItem, actorID string) (int, error)
	List(ctx context.Context) ([]Invoice, error)
	Get(ctx context.Context, invoiceID string) (Invoice, error)
	ListLineItems(ctx context.Context, invoiceID string) ([]LineItem, error)
	UpdateDocPath(ctx context.Context, invoiceID, docPath string) error
}

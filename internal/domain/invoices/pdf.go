package invoices

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jung-kurt/gofpdf"
)

// RenderInvoicePDF writes a PDF for the invoice under the storage dir and
// records its path on the row. Rendering an already-rendered invoice
// overwrites the file.
func (s *Service) RenderInvoicePDF(ctx context.Context, invoiceID string) (string, error) {
	detail, err := s.GetWithLineItems(ctx, invoiceID)
	if err != nil {
		return "", err
	}

	dir := filepath.Join(s.storageDir, "invoices")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	filePath := filepath.Join(dir, invoiceID+".pdf")

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Invoice "+detail.InvoiceNum)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Client: %s", detail.ClientName))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Invoice date: %s", detail.InvoiceDate.Format("2006-01-02")))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Status: %s", detail.Status))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(90, 8, "Description", "1", 0, "L", false, 0, "")
	pdf.CellFormat(25, 8, "Quantity", "1", 0, "R", false, 0, "")
	pdf.CellFormat(30, 8, "Rate", "1", 0, "R", false, 0, "")
	pdf.CellFormat(30, 8, "Total", "1", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, item := range detail.LineItems {
		pdf.CellFormat(90, 8, item.Label, "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 8, fmt.Sprintf("%.2f", item.Quantity), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 8, fmt.Sprintf("%.2f", item.Rate), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 8, fmt.Sprintf("%.2f", item.Total), "1", 1, "R", false, 0, "")
	}

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(145, 8, "Total", "1", 0, "R", false, 0, "")
	pdf.CellFormat(30, 8, fmt.Sprintf("%.2f", detail.TotalAmount), "1", 1, "R", false, 0, "")

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", err
	}

	if err := s.store.UpdateDocPath(ctx, invoiceID, filePath); err != nil {
		return "", err
	}
	return filePath, nil
}

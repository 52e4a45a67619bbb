package reports

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"backoffice/internal/domain/audit"
	"backoffice/internal/platform/metrics"
	"backoffice/internal/requestctx"
)

type Service struct {
	pool       *pgxpool.Pool
	audit      *audit.Service
	metrics    *metrics.Collector
	storageDir string
}

func NewService(pool *pgxpool.Pool, auditSvc *audit.Service, collector *metrics.Collector, storageDir string) *Service {
	return &Service{pool: pool, audit: auditSvc, metrics: collector, storageDir: storageDir}
}

// GenerateReport walks the selected weeks' invoices back to the contractor
// hours they billed and writes the xlsx workbook. The report row is created
// up front in the generating state and moved to completed or failed
// afterwards, so a crashed generation stays visible.
func (s *Service) GenerateReport(ctx context.Context, actorID string, req GenerateRequest) (GenerateResult, error) {
	store := NewStore(s.pool)

	reportID, err := store.CreateReport(ctx, req, StatusGenerating, actorID)
	if err != nil {
		return GenerateResult{}, err
	}

	result, err := s.buildReport(ctx, store, reportID, actorID, req)
	if err != nil {
		if markErr := store.MarkFailed(ctx, reportID); markErr != nil {
			slog.Warn("marking report failed did not stick", "reportId", reportID, "error", markErr)
		}
		return GenerateResult{}, fmt.Errorf("generate report %s: %w", reportID, err)
	}

	if s.metrics != nil {
		s.metrics.AddReport()
	}
	if s.audit != nil {
		details := map[string]any{"weeks": req.SelectedWeeks, "candidates": result.Summary.TotalCandidates}
		if err := s.audit.Record(ctx, actorID, "report.generate", "payroll_report", reportID, requestctx.GetRequestID(ctx), details); err != nil {
			slog.Warn("audit record failed", "action", "report.generate", "error", err)
		}
	}
	return result, nil
}

func (s *Service) buildReport(ctx context.Context, store *Store, reportID, actorID string, req GenerateRequest) (GenerateResult, error) {
	var items []Item
	for _, week := range req.SelectedWeeks {
		start, end, err := WeekRange(week)
		if err != nil {
			return GenerateResult{}, err
		}

		invoiceRefs, err := store.ListInvoicesBetween(ctx, start, end)
		if err != nil {
			return GenerateResult{}, err
		}

		for _, inv := range invoiceRefs {
			timesheetIDs, err := store.ListLineItemTimesheets(ctx, inv.ID)
			if err != nil {
				return GenerateResult{}, err
			}
			for _, timesheetID := range timesheetIDs {
				if timesheetID == "" {
					continue
				}
				hour, found, err := store.HourByTimesheet(ctx, timesheetID)
				if err != nil {
					return GenerateResult{}, err
				}
				if !found {
					continue
				}

				candidateName, candidateEmail, err := store.CandidateInfo(ctx, hour.ContractorID)
				if err != nil {
					return GenerateResult{}, err
				}
				clientName, err := store.ClientName(ctx, inv.ClientID)
				if err != nil {
					return GenerateResult{}, err
				}
				costCenter, err := store.CostCenterName(ctx, hour.PccID)
				if err != nil {
					return GenerateResult{}, err
				}

				items = append(items, BuildItem(week, inv, candidateName, candidateEmail, clientName, costCenter, hour))
			}
		}
	}

	summary := Summarize(items, req.SelectedWeeks)

	dir := filepath.Join(s.storageDir, "payroll_reports")
	filePath, err := writeWorkbook(dir, reportID, items, summary)
	if err != nil {
		return GenerateResult{}, err
	}

	var fileSize int64
	if info, err := os.Stat(filePath); err == nil {
		fileSize = info.Size()
	}
	if err := store.MarkCompleted(ctx, reportID, filePath, fileSize, actorID); err != nil {
		return GenerateResult{}, err
	}

	return GenerateResult{
		ReportID:    reportID,
		ReportName:  req.Name,
		FilePath:    filePath,
		Status:      StatusCompleted,
		Summary:     summary,
		GeneratedOn: time.Now(),
	}, nil
}

func (s *Service) ListReports(ctx context.Context) ([]Report, error) {
	return NewStore(s.pool).ListReports(ctx)
}

func (s *Service) GetReport(ctx context.Context, reportID string) (Report, error) {
	return NewStore(s.pool).GetReport(ctx, reportID)
}

// DeleteReport removes the row and the generated file. A missing file is
// not an error; the row is authoritative.
func (s *Service) DeleteReport(ctx context.Context, reportID string) error {
	store := NewStore(s.pool)
	report, err := store.GetReport(ctx, reportID)
	if err != nil {
		return err
	}
	if err := store.DeleteReport(ctx, reportID); err != nil {
		return err
	}
	if report.FilePath != "" {
		if err := os.Remove(report.FilePath); err != nil && !os.IsNotExist(err) {
			slog.Warn("report file removal failed", "reportId", reportID, "path", report.FilePath, "error", err)
		}
	}
	return nil
}

// FilePath returns the workbook path for a completed report.
func (s *Service) FilePath(ctx context.Context, reportID string) (string, error) {
	report, err := NewStore(s.pool).GetReport(ctx, reportID)
	if err != nil {
		return "", err
	}
	if report.FilePath == "" {
		return "", ErrReportNoFile
	}
	return report.FilePath, nil
}

// AvailableWeeks lists the distinct ISO weeks that have invoices, in
// ascending week order.
func (s *Service) AvailableWeeks(ctx context.Context) ([]AvailableWeek, error) {
	dates, err := NewStore(s.pool).ListInvoiceDates(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var weeks []string
	for _, d := range dates {
		year, week := d.ISOWeek()
		key := fmt.Sprintf("%d-W%02d", year, week)
		if !seen[key] {
			seen[key] = true
			weeks = append(weeks, key)
		}
	}
	sort.Strings(weeks)

	out := make([]AvailableWeek, 0, len(weeks))
	for _, week := range weeks {
		var year, num int
		fmt.Sscanf(week, "%d-W%d", &year, &num)
		out = append(out, AvailableWeek{Week: week, Label: fmt.Sprintf("Week %02d of %d", num, year)})
	}
	return out, nil
}

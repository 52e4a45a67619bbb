package timesheets

import "context"

type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

func (s *Service) ListSummaries(ctx context.Context) ([]Summary, error) {
	return s.store.ListSummaries(ctx)
}

func (s *Service) GetDetail(ctx context.Context, timesheetID string) (Detail, error) {
	ts, err := s.store.GetTimesheet(ctx, timesheetID)
	if err != nil {
		return Detail{}, err
	}
	entries, err := s.store.ListEntries(ctx, timesheetID)
	if err != nil {
		return Detail{}, err
	}
	return Detail{Timesheet: ts, Entries: entries}, nil
}

func (s *Service) CreateEntry(ctx context.Context, timesheetID string, input EntryInput) (string, error) {
	if _, err := s.store.GetTimesheet(ctx, timesheetID); err != nil {
		return "", err
	}
	return s.store.CreateEntry(ctx, timesheetID, input)
}

func (s *Service) UpdateEntry(ctx context.Context, entryID string, input EntryInput) error {
	return s.store.UpdateEntry(ctx, entryID, input)
}

package service

import (
	"context"
	"sort"

	"github.com/Astemirdum/tracklab-service/tracklab/internal/errs"
	"github.com/Astemirdum/tracklab-service/tracklab/internal/model"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

const dayLayout = "2006-01-02"

func checkRange(r model.DateRange) error {
	if r.From.IsZero() || r.To.IsZero() || !r.To.After(r.From) {
		return errors.Wrap(errs.ErrInvalidArgument, "invalid date range")
	}
	return nil
}

func (s *Service) History(ctx context.Context, r model.DateRange) ([]model.HistoryEntry, error) {
	if err := checkRange(r); err != nil {
		return nil, err
	}
	return s.repo.History(ctx, r)
}

func (s *Service) Damages(ctx context.Context, r model.DateRange) ([]model.DamageEntry, error) {
	if err := checkRange(r); err != nil {
		return nil, err
	}
	return s.repo.Damages(ctx, r)
}

// Overdue lists ongoing borrows past due, most days overdue first.
func (s *Service) Overdue(ctx context.Context) ([]model.OverdueEntry, error) {
	now := s.clock()
	rows, err := s.repo.ListDue(ctx, now)
	if err != nil {
		return nil, err
	}
	items := make([]model.OverdueEntry, 0, len(rows))
	for _, r := range rows {
		items = append(items, model.OverdueEntry{
			BorrowDetail: r,
			DaysOverdue:  model.DaysOverdue(*r.ExpectedReturnDate, now),
		})
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].DaysOverdue > items[j].DaysOverdue
	})
	return items, nil
}

// Inventory is the labelled stock snapshot ordered by category and name.
func (s *Service) Inventory(ctx context.Context) ([]model.InventoryEntry, error) {
	rows, err := s.repo.ListEquipment(ctx, model.EquipmentFilter{})
	if err != nil {
		return nil, err
	}
	items := make([]model.InventoryEntry, 0, len(rows))
	for _, e := range rows {
		items = append(items, model.InventoryEntry{Equipment: e, Status: model.InventoryLabel(e)})
	}
	return items, nil
}

// DailyCounts buckets borrows by UTC day, oldest first. Days without borrows are omitted.
func (s *Service) DailyCounts(ctx context.Context, r model.DateRange) ([]model.DailyCount, error) {
	if err := checkRange(r); err != nil {
		return nil, err
	}
	dates, err := s.repo.BorrowDates(ctx, r)
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int)
	for _, d := range dates {
		counts[d.UTC().Format(dayLayout)]++
	}
	items := make([]model.DailyCount, 0, len(counts))
	for day, n := range counts {
		items = append(items, model.DailyCount{Day: day, Count: n})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Day < items[j].Day })
	return items, nil
}

func (s *Service) Dashboard(ctx context.Context) (model.Dashboard, error) {
	var (
		d       model.Dashboard
		overdue []model.OverdueEntry
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		d.ActiveBorrows, err = s.ActiveBorrows(gctx, "")
		return err
	})
	g.Go(func() (err error) {
		d.Inventory, err = s.Inventory(gctx)
		return err
	})
	g.Go(func() (err error) {
		overdue, err = s.Overdue(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return model.Dashboard{}, err
	}

	d.OverdueCount = len(overdue)
	d.TotalEquipment = len(d.Inventory)
	for _, e := range d.Inventory {
		d.TotalUnits += e.Quantity
	}
	return d, nil
}

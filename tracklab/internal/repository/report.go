package repository

import (
	"context"
	"time"

	"github.com/Astemirdum/tracklab-service/tracklab/internal/model"
	sq "github.com/Masterminds/squirrel"
)

func (r *repository) History(ctx context.Context, dr model.DateRange) ([]model.HistoryEntry, error) {
	items := make([]model.HistoryEntry, 0)
	err := r.selectAll(ctx, "History", &items, r.detailQuery().
		Columns("rt.return_date", `rt."condition" AS return_condition`).
		LeftJoin(returnsTableName+" rt ON rt.borrow_id = bt.borrow_id").
		Where(sq.GtOrEq{"bt.borrow_date": utc(dr.From)}).
		Where(sq.Lt{"bt.borrow_date": utc(dr.To)}).
		OrderBy("bt.borrow_date DESC", "bt.borrow_id DESC"))
	return items, err
}

func (r *repository) Damages(ctx context.Context, dr model.DateRange) ([]model.DamageEntry, error) {
	items := make([]model.DamageEntry, 0)
	err := r.selectAll(ctx, "Damages", &items, r.qb.Select(
		"rt.return_id", "rt.borrow_id", "rt.return_date", `rt."condition"`, "rt.remarks",
		"e.code AS equipment_code", "e.name AS equipment_name",
		"b.student_id", "b.full_name",
	).
		From(returnsTableName+" rt").
		Join(borrowsTableName+" bt ON bt.borrow_id = rt.borrow_id").
		Join(equipmentTableName+" e ON e.equipment_id = bt.equipment_id").
		Join(borrowersTableName+" b ON b.borrower_id = bt.borrower_id").
		Where(sq.NotEq{`rt."condition"`: string(model.ConditionGood)}).
		Where(sq.GtOrEq{"rt.return_date": utc(dr.From)}).
		Where(sq.Lt{"rt.return_date": utc(dr.To)}).
		OrderBy("rt.return_date DESC", "rt.return_id DESC"))
	return items, err
}

// BorrowDates lists borrow timestamps in range; days are bucketed by the caller.
func (r *repository) BorrowDates(ctx context.Context, dr model.DateRange) ([]time.Time, error) {
	var rows []struct {
		BorrowDate time.Time `db:"borrow_date"`
	}
	if err := r.selectAll(ctx, "BorrowDates", &rows, r.qb.Select("borrow_date").
		From(borrowsTableName).
		Where(sq.GtOrEq{"borrow_date": utc(dr.From)}).
		Where(sq.Lt{"borrow_date": utc(dr.To)}).
		OrderBy("borrow_date")); err != nil {
		return nil, err
	}
	dates := make([]time.Time, 0, len(rows))
	for _, row := range rows {
		dates = append(dates, row.BorrowDate)
	}
	return dates, nil
}

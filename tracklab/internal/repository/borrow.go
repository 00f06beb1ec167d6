package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/Astemirdum/tracklab-service/tracklab/internal/errs"
	"github.com/Astemirdum/tracklab-service/tracklab/internal/model"
	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var borrowColumns = []string{"borrow_id", "equipment_id", "borrower_id", "borrow_date", "expected_return_date", "purpose", "status"}

func (r *repository) detailQuery() sq.SelectBuilder {
	return r.qb.Select(
		"bt.borrow_id", "bt.equipment_id", "bt.borrower_id", "bt.borrow_date",
		"bt.expected_return_date", "bt.purpose", "bt.status",
		"e.code AS equipment_code", "e.name AS equipment_name",
		"b.student_id", "b.full_name",
	).
		From(borrowsTableName + " bt").
		Join(equipmentTableName + " e ON e.equipment_id = bt.equipment_id").
		Join(borrowersTableName + " b ON b.borrower_id = bt.borrower_id")
}

func (r *repository) CreateBorrow(ctx context.Context, b model.Borrow) (int64, error) {
	var due interface{}
	if b.ExpectedReturnDate != nil {
		due = utc(*b.ExpectedReturnDate)
	}
	return r.insert(ctx, "CreateBorrow", r.qb.Insert(borrowsTableName).
		Columns("equipment_id", "borrower_id", "borrow_date", "expected_return_date", "purpose", "status").
		Values(b.EquipmentID, b.BorrowerID, utc(b.BorrowDate), due, b.Purpose, string(model.StatusOngoing)),
		"borrow_id")
}

func (r *repository) GetBorrow(ctx context.Context, id int64) (model.Borrow, error) {
	var b model.Borrow
	err := r.get(ctx, "GetBorrow", &b, r.qb.Select(borrowColumns...).
		From(borrowsTableName).
		Where(sq.Eq{"borrow_id": id}))
	return b, err
}

func (r *repository) GetBorrowDetail(ctx context.Context, id int64) (model.BorrowDetail, error) {
	var d model.BorrowDetail
	err := r.get(ctx, "GetBorrowDetail", &d, r.detailQuery().Where(sq.Eq{"bt.borrow_id": id}))
	return d, err
}

// MarkReturned closes an ongoing borrow. A borrow that is no longer ongoing
// reports ErrAlreadyReturned.
func (r *repository) MarkReturned(ctx context.Context, id int64) error {
	n, err := r.exec(ctx, "MarkReturned", r.qb.Update(borrowsTableName).
		Set("status", string(model.StatusReturned)).
		Where(sq.Eq{"borrow_id": id, "status": string(model.StatusOngoing)}))
	if err != nil {
		return err
	}
	if n == 0 {
		return errs.ErrAlreadyReturned
	}
	return nil
}

// DeleteOngoingBorrow removes an ongoing borrow and returns its equipment id.
func (r *repository) DeleteOngoingBorrow(ctx context.Context, id int64) (int64, error) {
	query, args, err := r.qb.Delete(borrowsTableName).
		Where(sq.Eq{"borrow_id": id, "status": string(model.StatusOngoing)}).
		Suffix("RETURNING equipment_id").
		ToSql()
	if err != nil {
		return 0, err
	}
	var equipmentID int64
	if err = r.db.QueryRowxContext(ctx, query, args...).Scan(&equipmentID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, errs.ErrInvalidState
		}
		r.log.Error("DeleteOngoingBorrow", zap.Error(err), zap.String("q", query), zap.Any("args", args))
		return 0, mapErr(err)
	}
	return equipmentID, nil
}

// ListOngoing returns ongoing borrows newest first, optionally for one borrower.
func (r *repository) ListOngoing(ctx context.Context, externalCode string) ([]model.BorrowDetail, error) {
	q := r.detailQuery().Where(sq.Eq{"bt.status": string(model.StatusOngoing)})
	if externalCode != "" {
		q = q.Where(sq.Eq{"b.student_id": externalCode})
	}
	items := make([]model.BorrowDetail, 0)
	err := r.selectAll(ctx, "ListOngoing", &items, q.OrderBy("bt.borrow_date DESC", "bt.borrow_id DESC"))
	return items, err
}

// ListDue returns ongoing borrows due strictly before the given instant, most overdue first.
func (r *repository) ListDue(ctx context.Context, before time.Time) ([]model.BorrowDetail, error) {
	items := make([]model.BorrowDetail, 0)
	err := r.selectAll(ctx, "ListDue", &items, r.detailQuery().
		Where(sq.Eq{"bt.status": string(model.StatusOngoing)}).
		Where(sq.NotEq{"bt.expected_return_date": nil}).
		Where(sq.Lt{"bt.expected_return_date": utc(before)}).
		OrderBy("bt.expected_return_date ASC", "bt.borrow_id ASC"))
	return items, err
}

func (r *repository) CreateReturn(ctx context.Context, ret model.Return) (int64, error) {
	return r.insert(ctx, "CreateReturn", r.qb.Insert(returnsTableName).
		Columns("borrow_id", "return_date", `"condition"`, "remarks").
		Values(ret.BorrowID, utc(ret.ReturnDate), string(ret.Condition), ret.Remarks),
		"return_id")
}

func (r *repository) GetReturnByBorrow(ctx context.Context, borrowID int64) (model.Return, error) {
	var ret model.Return
	err := r.get(ctx, "GetReturnByBorrow", &ret, r.qb.Select("return_id", "borrow_id", "return_date", `"condition"`, "remarks").
		From(returnsTableName).
		Where(sq.Eq{"borrow_id": borrowID}))
	return ret, err
}

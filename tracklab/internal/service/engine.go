package service

import (
	"context"
	"fmt"

	"github.com/Astemirdum/tracklab-service/pkg/auth"
	"github.com/Astemirdum/tracklab-service/tracklab/internal/errs"
	"github.com/Astemirdum/tracklab-service/tracklab/internal/model"
	"github.com/Astemirdum/tracklab-service/tracklab/internal/repository"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	opBorrow = "borrow"
	opReturn = "return"
	opVoid   = "void"
)

// Borrow lends Quantity units of one item. Every unit becomes its own ongoing
// borrow transaction; all of them and the matching stock decrements commit
// together or not at all.
func (s *Service) Borrow(ctx context.Context, actor auth.Actor, req model.BorrowRequest) (model.BorrowResult, error) {
	now := s.clock()
	if req.Quantity == 0 {
		req.Quantity = 1
	}
	if req.Quantity < 0 {
		return model.BorrowResult{}, s.fail(opBorrow, errors.Wrap(errs.ErrInvalidArgument, "quantity must be positive"))
	}
	if req.BorrowDate.IsZero() {
		req.BorrowDate = now
	}
	if req.ExpectedReturnDate != nil && !req.ExpectedReturnDate.After(now) {
		return model.BorrowResult{}, s.fail(opBorrow, errors.Wrap(errs.ErrInvalidArgument, "expected return must be in the future"))
	}

	var res model.BorrowResult
	err := s.repo.InTx(ctx, func(tx repository.Repository) error {
		e, err := tx.GetEquipment(ctx, req.EquipmentID)
		if err != nil {
			return errors.Wrapf(err, "equipment %d", req.EquipmentID)
		}
		if !e.Available() || e.Quantity < req.Quantity {
			return errors.Wrapf(errs.ErrInsufficientStock, "%s: %d requested, %d on hand (%s)", e.Code, req.Quantity, e.Quantity, e.Condition)
		}

		borrowerID, err := s.borrowerFor(ctx, tx, actor, req)
		if err != nil {
			return err
		}

		ids := make([]int64, 0, req.Quantity)
		for i := 0; i < req.Quantity; i++ {
			id, err := tx.CreateBorrow(ctx, model.Borrow{
				EquipmentID:        e.ID,
				BorrowerID:         borrowerID,
				BorrowDate:         req.BorrowDate,
				ExpectedReturnDate: req.ExpectedReturnDate,
				Purpose:            req.Purpose,
			})
			if err != nil {
				return errors.Wrap(err, "create borrow")
			}
			if err = tx.DecrementQuantity(ctx, e.ID); err != nil {
				return errors.Wrap(err, "decrement stock")
			}
			ids = append(ids, id)
		}

		if e, err = tx.GetEquipment(ctx, e.ID); err != nil {
			return err
		}
		res = model.BorrowResult{BorrowIDs: ids, BorrowerID: borrowerID, Equipment: e}
		return nil
	})
	if err != nil {
		return model.BorrowResult{}, s.fail(opBorrow, err)
	}

	if s.metrics != nil {
		s.metrics.Borrows.Add(float64(len(res.BorrowIDs)))
	}
	s.log.Info("borrowed",
		zap.Int64s("borrow_ids", res.BorrowIDs),
		zap.Int64("equipment_id", res.Equipment.ID),
		zap.Int64("borrower_id", res.BorrowerID),
	)
	s.record(ctx, actor, fmt.Sprintf("Borrowed %s x%d", res.Equipment.Code, len(res.BorrowIDs)))
	return res, nil
}

// borrowerFor picks the borrower of a request: an explicit identity is
// resolved, an explicit id must exist, otherwise the actor borrows for themself.
func (s *Service) borrowerFor(ctx context.Context, tx repository.Repository, actor auth.Actor, req model.BorrowRequest) (int64, error) {
	switch {
	case req.Borrower != nil:
		return s.resolveBorrower(ctx, tx, *req.Borrower)
	case req.BorrowerID > 0:
		b, err := tx.GetBorrower(ctx, req.BorrowerID)
		if err != nil {
			return 0, errors.Wrapf(err, "borrower %d", req.BorrowerID)
		}
		return b.ID, nil
	case actor.UserID > 0:
		u, err := tx.GetUser(ctx, actor.UserID)
		if err != nil {
			return 0, errors.Wrapf(err, "user %d", actor.UserID)
		}
		return s.resolveBorrower(ctx, tx, model.BorrowerIdentity{
			ExternalCode: FormatExternalCode(u.Role, u.ID),
			FullName:     u.Username,
			Contact:      u.Contact,
			Department:   u.Department,
		})
	default:
		return 0, errors.Wrap(errs.ErrInvalidArgument, "borrower is required")
	}
}

// Return closes an ongoing borrow. Only a Good return puts the unit back in stock.
func (s *Service) Return(ctx context.Context, actor auth.Actor, req model.ReturnRequest) (model.ReturnResult, error) {
	cond, ok := model.ParseReturnCondition(string(req.Condition))
	if !ok {
		return model.ReturnResult{}, s.fail(opReturn, errors.Wrapf(errs.ErrInvalidArgument, "condition %q", req.Condition))
	}
	if req.ReturnAt.IsZero() {
		req.ReturnAt = s.clock()
	}

	var res model.ReturnResult
	err := s.repo.InTx(ctx, func(tx repository.Repository) error {
		b, err := tx.GetBorrow(ctx, req.BorrowID)
		if err != nil {
			return errors.Wrapf(err, "borrow %d", req.BorrowID)
		}
		if b.Status != model.StatusOngoing {
			return errors.Wrapf(errs.ErrAlreadyReturned, "borrow %d", b.ID)
		}

		returnID, err := tx.CreateReturn(ctx, model.Return{
			BorrowID:   b.ID,
			ReturnDate: req.ReturnAt,
			Condition:  cond,
			Remarks:    req.Remarks,
		})
		if errors.Is(err, errs.ErrDuplicateIdentity) {
			return errors.Wrapf(errs.ErrAlreadyReturned, "borrow %d", b.ID)
		}
		if err != nil {
			return errors.Wrap(err, "create return")
		}
		if err = tx.MarkReturned(ctx, b.ID); err != nil {
			return err
		}

		restock := cond == model.ConditionGood
		if restock {
			if err = tx.IncrementQuantity(ctx, b.EquipmentID); err != nil {
				return errors.Wrap(err, "restock")
			}
		}
		res = model.ReturnResult{ReturnID: returnID, BorrowID: b.ID, Condition: cond, Restocked: restock}
		return nil
	})
	if err != nil {
		return model.ReturnResult{}, s.fail(opReturn, err)
	}

	if s.metrics != nil {
		s.metrics.Returns.WithLabelValues(string(cond)).Inc()
	}
	s.log.Info("returned", zap.Int64("borrow_id", res.BorrowID), zap.String("condition", string(cond)))
	s.record(ctx, actor, fmt.Sprintf("Returned borrow #%d (%s)", res.BorrowID, cond))
	return res, nil
}

// Void deletes an ongoing borrow and restores its unit. Administrators only.
func (s *Service) Void(ctx context.Context, actor auth.Actor, borrowID int64) error {
	if err := requireAdmin(actor); err != nil {
		return s.fail(opVoid, err)
	}

	err := s.repo.InTx(ctx, func(tx repository.Repository) error {
		b, err := tx.GetBorrow(ctx, borrowID)
		if err != nil {
			return errors.Wrapf(err, "borrow %d", borrowID)
		}
		if b.Status != model.StatusOngoing {
			return errors.Wrapf(errs.ErrInvalidState, "borrow %d is %s", b.ID, b.Status)
		}
		equipmentID, err := tx.DeleteOngoingBorrow(ctx, b.ID)
		if err != nil {
			return err
		}
		return tx.IncrementQuantity(ctx, equipmentID)
	})
	if err != nil {
		return s.fail(opVoid, err)
	}

	if s.metrics != nil {
		s.metrics.Voids.Inc()
	}
	s.log.Warn("borrow voided", zap.Int64("borrow_id", borrowID), zap.String("by", actor.Username))
	s.record(ctx, actor, fmt.Sprintf("Voided borrow #%d", borrowID))
	return nil
}

// ActiveBorrows lists ongoing borrows, optionally for one borrower code,
// marking those past their due date as Overdue.
func (s *Service) ActiveBorrows(ctx context.Context, externalCode string) ([]model.ActiveBorrow, error) {
	rows, err := s.repo.ListOngoing(ctx, externalCode)
	if err != nil {
		return nil, err
	}
	now := s.clock()
	items := make([]model.ActiveBorrow, 0, len(rows))
	for _, r := range rows {
		items = append(items, model.ActiveBorrow{
			BorrowDetail:  r,
			DerivedStatus: model.DeriveStatus(r.Status, r.ExpectedReturnDate, now),
		})
	}
	return items, nil
}

// GetBorrow returns a borrow with its return, if any.
func (s *Service) GetBorrow(ctx context.Context, id int64) (model.BorrowDetail, error) {
	d, err := s.repo.GetBorrowDetail(ctx, id)
	if err != nil {
		return model.BorrowDetail{}, err
	}
	ret, err := s.repo.GetReturnByBorrow(ctx, id)
	switch {
	case err == nil:
		d.Return = &ret
	case !errors.Is(err, errs.ErrNotFound):
		return model.BorrowDetail{}, err
	}
	return d, nil
}

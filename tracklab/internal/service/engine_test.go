package service_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/Astemirdum/tracklab-service/tracklab/internal/errs"
	"github.com/Astemirdum/tracklab-service/tracklab/internal/model"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBorrow_LastUnit(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	eq := e.equipment(t, "MIC-001", 1, model.ConditionGood)

	res, err := e.svc.Borrow(ctx, student, borrowFor(eq, "STU-00042"))
	require.NoError(t, err)
	require.Len(t, res.BorrowIDs, 1)
	assert.Equal(t, 0, res.Equipment.Quantity)
	assert.Equal(t, 0, e.quantity(t, eq))

	_, err = e.svc.Borrow(ctx, student, borrowFor(eq, "STU-00043"))
	assert.ErrorIs(t, err, errs.ErrInsufficientStock)
	assert.Equal(t, 1, e.count(t, `select count(*) from borrow_transactions`))
	assert.Equal(t, 0, e.count(t, `select count(*) from borrowers where student_id = 'STU-00043'`))

	assert.Equal(t, 1.0, testutil.ToFloat64(e.metrics.Borrows))
	assert.Equal(t, 1.0, testutil.ToFloat64(e.metrics.Failures.WithLabelValues("borrow", "insufficient_stock")))
}

func TestBorrow_Rejections(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	broken := e.equipment(t, "OSC-001", 3, model.ConditionBroken)
	ok := e.equipment(t, "OSC-002", 3, model.ConditionGood)

	_, err := e.svc.Borrow(ctx, student, borrowFor(broken, "STU-00042"))
	assert.ErrorIs(t, err, errs.ErrInsufficientStock)

	_, err = e.svc.Borrow(ctx, student, borrowFor(999, "STU-00042"))
	assert.ErrorIs(t, err, errs.ErrNotFound)

	past := testNow.Add(-time.Minute)
	req := borrowFor(ok, "STU-00042")
	req.ExpectedReturnDate = &past
	_, err = e.svc.Borrow(ctx, student, req)
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)

	req = borrowFor(ok, "STU-00042")
	req.Quantity = 4
	_, err = e.svc.Borrow(ctx, student, req)
	assert.ErrorIs(t, err, errs.ErrInsufficientStock)

	req = borrowFor(ok, "")
	_, err = e.svc.Borrow(ctx, student, req)
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)

	_, err = e.svc.Borrow(ctx, student, model.BorrowRequest{EquipmentID: ok, BorrowerID: 77})
	assert.ErrorIs(t, err, errs.ErrNotFound)

	assert.Equal(t, 3, e.quantity(t, ok))
	assert.Equal(t, 0, e.count(t, `select count(*) from borrow_transactions`))
}

func TestBorrow_MultiUnit(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	eq := e.equipment(t, "BKR-250", 5, model.ConditionGood)

	req := borrowFor(eq, "STU-00042")
	req.Quantity = 3
	res, err := e.svc.Borrow(ctx, student, req)
	require.NoError(t, err)
	assert.Len(t, res.BorrowIDs, 3)
	assert.Equal(t, 2, e.quantity(t, eq))
	assert.Equal(t, 3, e.count(t, `select count(*) from borrow_transactions where status = 'Ongoing'`))
}

func TestBorrow_FromActorProfile(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	eq := e.equipment(t, "PIP-010", 2, model.ConditionGood)

	uid, err := e.svc.Register(ctx, admin, "ben", "secret1", "")
	require.NoError(t, err)
	ben := model.User{ID: uid, Username: "ben", Role: "Student"}.Actor()

	res, err := e.svc.Borrow(ctx, ben, model.BorrowRequest{EquipmentID: eq})
	require.NoError(t, err)

	b, err := e.repo.GetBorrower(ctx, res.BorrowerID)
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("STU-%05d", uid), b.ExternalCode)
	assert.Equal(t, "ben", b.FullName)

	mine, err := e.svc.ActiveBorrows(ctx, b.ExternalCode)
	require.NoError(t, err)
	assert.Len(t, mine, 1)
}

func TestBorrow_Atomicity(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	eq := e.equipment(t, "CEN-001", 2, model.ConditionGood)

	_, err := e.db.Exec(`
create trigger reject_decrement before update of quantity on equipment
when new.quantity < old.quantity
begin
    select raise(abort, 'decrement rejected');
end;`)
	require.NoError(t, err)

	_, err = e.svc.Borrow(ctx, student, borrowFor(eq, "STU-00042"))
	require.Error(t, err)

	assert.Equal(t, 0, e.count(t, `select count(*) from borrow_transactions`))
	assert.Equal(t, 0, e.count(t, `select count(*) from borrowers`))
	assert.Equal(t, 2, e.quantity(t, eq))
}

func TestReturn_Good(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	eq := e.equipment(t, "MIC-002", 2, model.ConditionGood)

	res, err := e.svc.Borrow(ctx, student, borrowFor(eq, "STU-00042"))
	require.NoError(t, err)
	id := res.BorrowIDs[0]

	ret, err := e.svc.Return(ctx, student, model.ReturnRequest{BorrowID: id, Condition: model.ConditionGood, Remarks: "clean"})
	require.NoError(t, err)
	assert.True(t, ret.Restocked)

	assert.Equal(t, 2, e.quantity(t, eq))
	b, err := e.repo.GetBorrow(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, model.StatusReturned, b.Status)
	assert.Equal(t, 1, e.count(t, `select count(*) from return_transactions where borrow_id = ?`, id))

	_, err = e.svc.Return(ctx, student, model.ReturnRequest{BorrowID: id, Condition: model.ConditionGood})
	assert.ErrorIs(t, err, errs.ErrAlreadyReturned)
	assert.Equal(t, 2, e.quantity(t, eq))
	assert.Equal(t, 1, e.count(t, `select count(*) from return_transactions`))

	d, err := e.svc.GetBorrow(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, d.Return)
	assert.Equal(t, "clean", d.Return.Remarks)
}

func TestReturn_Damaged(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	eq := e.equipment(t, "MIC-003", 2, model.ConditionGood)

	for _, cond := range []model.Condition{model.ConditionBroken, "Major Damage"} {
		res, err := e.svc.Borrow(ctx, student, borrowFor(eq, "STU-00042"))
		require.NoError(t, err)
		ret, err := e.svc.Return(ctx, student, model.ReturnRequest{BorrowID: res.BorrowIDs[0], Condition: cond})
		require.NoError(t, err)
		assert.False(t, ret.Restocked)

		b, err := e.repo.GetBorrow(ctx, res.BorrowIDs[0])
		require.NoError(t, err)
		assert.Equal(t, model.StatusReturned, b.Status)
	}
	assert.Equal(t, 0, e.quantity(t, eq))
}

func TestReturn_Rejections(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	eq := e.equipment(t, "MIC-004", 1, model.ConditionGood)
	res, err := e.svc.Borrow(ctx, student, borrowFor(eq, "STU-00042"))
	require.NoError(t, err)

	_, err = e.svc.Return(ctx, student, model.ReturnRequest{BorrowID: 999, Condition: model.ConditionGood})
	assert.ErrorIs(t, err, errs.ErrNotFound)

	_, err = e.svc.Return(ctx, student, model.ReturnRequest{BorrowID: res.BorrowIDs[0], Condition: "Fair"})
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)

	b, err := e.repo.GetBorrow(ctx, res.BorrowIDs[0])
	require.NoError(t, err)
	assert.Equal(t, model.StatusOngoing, b.Status)
	assert.Equal(t, 0, e.count(t, `select count(*) from return_transactions`))
}

func TestVoid(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	eq := e.equipment(t, "SCL-001", 1, model.ConditionGood)

	res, err := e.svc.Borrow(ctx, student, borrowFor(eq, "STU-00042"))
	require.NoError(t, err)
	id := res.BorrowIDs[0]

	assert.ErrorIs(t, e.svc.Void(ctx, student, id), errs.ErrForbidden)

	require.NoError(t, e.svc.Void(ctx, admin, id))
	assert.Equal(t, 1, e.quantity(t, eq))
	_, err = e.repo.GetBorrow(ctx, id)
	assert.ErrorIs(t, err, errs.ErrNotFound)

	assert.ErrorIs(t, e.svc.Void(ctx, admin, id), errs.ErrNotFound)
	_, err = e.svc.Return(ctx, student, model.ReturnRequest{BorrowID: id, Condition: model.ConditionGood})
	assert.ErrorIs(t, err, errs.ErrNotFound)
	assert.Equal(t, 1, e.quantity(t, eq))

	res, err = e.svc.Borrow(ctx, student, borrowFor(eq, "STU-00042"))
	require.NoError(t, err)
	_, err = e.svc.Return(ctx, student, model.ReturnRequest{BorrowID: res.BorrowIDs[0], Condition: model.ConditionGood})
	require.NoError(t, err)
	assert.ErrorIs(t, e.svc.Void(ctx, admin, res.BorrowIDs[0]), errs.ErrInvalidState)
	assert.Equal(t, 1, e.quantity(t, eq))

	assert.Equal(t, 1.0, testutil.ToFloat64(e.metrics.Voids))
}

func TestStockConservation(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	const baseline = 5
	eq := e.equipment(t, "TUB-001", baseline, model.ConditionGood)

	req := borrowFor(eq, "STU-00042")
	req.Quantity = 3
	res, err := e.svc.Borrow(ctx, student, req)
	require.NoError(t, err)

	_, err = e.svc.Return(ctx, student, model.ReturnRequest{BorrowID: res.BorrowIDs[0], Condition: model.ConditionGood})
	require.NoError(t, err)
	require.NoError(t, e.svc.Void(ctx, admin, res.BorrowIDs[1]))

	ongoing := e.count(t, `select count(*) from borrow_transactions where equipment_id = ? and status = 'Ongoing'`, eq)
	assert.Equal(t, 1, ongoing)
	assert.Equal(t, baseline, ongoing+e.quantity(t, eq))
}

func TestResolveBorrower_Idempotent(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)

	id1, err := e.svc.ResolveBorrower(ctx, model.BorrowerIdentity{ExternalCode: "STU-00042", FullName: "Ana", Contact: "09120000000", Department: "CICS"})
	require.NoError(t, err)
	id2, err := e.svc.ResolveBorrower(ctx, model.BorrowerIdentity{ExternalCode: "STU-00042", FullName: "Ana", Contact: "09123456789", Department: "CICS"})
	require.NoError(t, err)
	assert.Equal(t, id1, id2)

	assert.Equal(t, 1, e.count(t, `select count(*) from borrowers`))
	b, err := e.svc.GetBorrowerByCode(ctx, "STU-00042")
	require.NoError(t, err)
	assert.Equal(t, "0912-345-6789", b.Contact)

	_, err = e.svc.ResolveBorrower(ctx, model.BorrowerIdentity{ExternalCode: "  "})
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)
}

func TestActiveBorrows_DerivesOverdue(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	eq := e.equipment(t, "THM-001", 3, model.ConditionGood)

	soon := testNow.Add(time.Hour)
	later := testNow.Add(48 * time.Hour)
	for _, due := range []*time.Time{&soon, &later, nil} {
		req := borrowFor(eq, "STU-00042")
		req.ExpectedReturnDate = due
		_, err := e.svc.Borrow(ctx, student, req)
		require.NoError(t, err)
	}

	*e.now = testNow.Add(2 * time.Hour)
	items, err := e.svc.ActiveBorrows(ctx, "")
	require.NoError(t, err)
	require.Len(t, items, 3)

	statuses := map[model.BorrowStatus]int{}
	for _, it := range items {
		statuses[it.DerivedStatus]++
		assert.Equal(t, model.StatusOngoing, it.Status)
	}
	assert.Equal(t, 1, statuses[model.StatusOverdue])
	assert.Equal(t, 2, statuses[model.StatusOngoing])
}

func TestEquipmentAdmin(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)

	_, err := e.svc.AddEquipment(ctx, student, model.Equipment{Code: "X-1", Name: "x"})
	assert.ErrorIs(t, err, errs.ErrForbidden)
	_, err = e.svc.AddEquipment(ctx, admin, model.Equipment{Code: "X-1", Name: "x", Quantity: -1})
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)

	id := e.equipment(t, "X-1", 1, "")
	got, err := e.svc.GetEquipment(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, model.ConditionGood, got.Condition)

	_, err = e.svc.AddEquipment(ctx, admin, model.Equipment{Code: "X-1", Name: "again"})
	assert.ErrorIs(t, err, errs.ErrDuplicateIdentity)

	negative, four, glass, broken := -1, 4, "Glass", model.ConditionBroken
	assert.ErrorIs(t, e.svc.UpdateEquipment(ctx, admin, id, model.EquipmentUpdate{Quantity: &negative}), errs.ErrInvalidArgument)
	assert.ErrorIs(t, e.svc.UpdateEquipment(ctx, admin, id, model.EquipmentUpdate{}), errs.ErrInvalidArgument)
	require.NoError(t, e.svc.UpdateEquipment(ctx, admin, id, model.EquipmentUpdate{Category: &glass, Quantity: &four, Condition: &broken}))

	avail, err := e.svc.ListEquipment(ctx, model.EquipmentFilter{AvailableOnly: true})
	require.NoError(t, err)
	assert.Empty(t, avail)

	res, err := e.svc.Borrow(ctx, student, borrowFor(e.equipment(t, "X-2", 1, model.ConditionGood), "STU-00042"))
	require.NoError(t, err)
	assert.ErrorIs(t, e.svc.DeleteEquipment(ctx, admin, res.Equipment.ID), errs.ErrInvalidState)

	assert.ErrorIs(t, e.svc.DeleteEquipment(ctx, student, id), errs.ErrForbidden)
	require.NoError(t, e.svc.DeleteEquipment(ctx, admin, id))
	_, err = e.svc.GetEquipment(ctx, id)
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestUpdateEquipment_KeepsOmittedFields(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	id := e.equipment(t, "CEN-001", 0, model.ConditionBroken)

	three := 3
	require.NoError(t, e.svc.UpdateEquipment(ctx, admin, id, model.EquipmentUpdate{Quantity: &three}))
	got, err := e.svc.GetEquipment(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, model.ConditionBroken, got.Condition)
	assert.Equal(t, "General", got.Category)
	assert.Equal(t, 3, got.Quantity)

	_, err = e.svc.Borrow(ctx, student, borrowFor(id, "STU-00042"))
	assert.ErrorIs(t, err, errs.ErrInsufficientStock)

	fair := model.Condition("fair")
	require.NoError(t, e.svc.UpdateEquipment(ctx, admin, id, model.EquipmentUpdate{Condition: &fair}))
	got, err = e.svc.GetEquipment(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, model.ConditionFair, got.Condition)
	assert.Equal(t, 3, got.Quantity)
}

func TestEquipmentCondition_Normalized(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)

	id := e.equipment(t, "PIP-001", 2, "broken")
	got, err := e.svc.GetEquipment(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, model.ConditionBroken, got.Condition)

	avail, err := e.svc.ListEquipment(ctx, model.EquipmentFilter{AvailableOnly: true})
	require.NoError(t, err)
	assert.Empty(t, avail)
	_, err = e.svc.Borrow(ctx, student, borrowFor(id, "STU-00042"))
	assert.ErrorIs(t, err, errs.ErrInsufficientStock)

	_, err = e.svc.AddEquipment(ctx, admin, model.Equipment{Code: "PIP-002", Name: "Pipette", Condition: "shiny"})
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)
	shiny := model.Condition("shiny")
	assert.ErrorIs(t, e.svc.UpdateEquipment(ctx, admin, id, model.EquipmentUpdate{Condition: &shiny}), errs.ErrInvalidArgument)
}

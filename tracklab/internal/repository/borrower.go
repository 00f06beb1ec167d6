package repository

import (
	"context"

	"github.com/Astemirdum/tracklab-service/tracklab/internal/model"
	sq "github.com/Masterminds/squirrel"
)

var borrowerColumns = []string{"borrower_id", "student_id", "full_name", "contact", "department"}

// UpsertBorrower inserts the borrower or, when the external code exists,
// refreshes its contact and department. One statement, so concurrent callers
// can never create two rows for the same code.
func (r *repository) UpsertBorrower(ctx context.Context, b model.BorrowerIdentity) (int64, error) {
	return r.insert(ctx, "UpsertBorrower", r.qb.Insert(borrowersTableName).
		Columns("student_id", "full_name", "contact", "department").
		Values(b.ExternalCode, b.FullName, b.Contact, b.Department).
		Suffix("ON CONFLICT (student_id) DO UPDATE SET contact = excluded.contact, department = excluded.department"),
		"borrower_id")
}

func (r *repository) GetBorrower(ctx context.Context, id int64) (model.Borrower, error) {
	var b model.Borrower
	err := r.get(ctx, "GetBorrower", &b, r.qb.Select(borrowerColumns...).
		From(borrowersTableName).
		Where(sq.Eq{"borrower_id": id}))
	return b, err
}

func (r *repository) GetBorrowerByCode(ctx context.Context, externalCode string) (model.Borrower, error) {
	var b model.Borrower
	err := r.get(ctx, "GetBorrowerByCode", &b, r.qb.Select(borrowerColumns...).
		From(borrowersTableName).
		Where(sq.Eq{"student_id": externalCode}))
	return b, err
}

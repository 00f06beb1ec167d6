package repository

import (
	"context"
	"strings"

	"github.com/Astemirdum/tracklab-service/tracklab/internal/errs"
	"github.com/Astemirdum/tracklab-service/tracklab/internal/model"
	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
)

var equipmentColumns = []string{"equipment_id", "code", "name", "category", "description", "quantity", `"condition"`}

func (r *repository) CreateEquipment(ctx context.Context, e model.Equipment) (int64, error) {
	return r.insert(ctx, "CreateEquipment", r.qb.Insert(equipmentTableName).
		Columns("code", "name", "category", "description", "quantity", `"condition"`).
		Values(e.Code, e.Name, e.Category, e.Description, e.Quantity, string(e.Condition)),
		"equipment_id")
}

func (r *repository) GetEquipment(ctx context.Context, id int64) (model.Equipment, error) {
	var e model.Equipment
	err := r.get(ctx, "GetEquipment", &e, r.qb.Select(equipmentColumns...).
		From(equipmentTableName).
		Where(sq.Eq{"equipment_id": id}))
	return e, err
}

func (r *repository) ListEquipment(ctx context.Context, f model.EquipmentFilter) ([]model.Equipment, error) {
	q := r.qb.Select(equipmentColumns...).From(equipmentTableName)
	if f.AvailableOnly {
		q = q.Where(sq.Gt{"quantity": 0}).
			Where(sq.NotEq{`"condition"`: string(model.ConditionBroken)})
	}
	if f.Category != "" {
		q = q.Where(sq.Eq{"category": f.Category})
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		p := "%" + strings.ToLower(s) + "%"
		q = q.Where(sq.Or{
			sq.Like{"lower(name)": p},
			sq.Like{"lower(code)": p},
			sq.Like{"lower(category)": p},
		})
	}

	items := make([]model.Equipment, 0)
	err := r.selectAll(ctx, "ListEquipment", &items, q.OrderBy("category", "name"))
	return items, err
}

func (r *repository) UpdateEquipment(ctx context.Context, id int64, u model.EquipmentUpdate) error {
	if u.Empty() {
		return errors.Wrap(errs.ErrInvalidArgument, "nothing to update")
	}
	q := r.qb.Update(equipmentTableName).Where(sq.Eq{"equipment_id": id})
	if u.Category != nil {
		q = q.Set("category", *u.Category)
	}
	if u.Quantity != nil {
		q = q.Set("quantity", *u.Quantity)
	}
	if u.Condition != nil {
		q = q.Set(`"condition"`, string(*u.Condition))
	}
	n, err := r.exec(ctx, "UpdateEquipment", q)
	if err != nil {
		return err
	}
	if n == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (r *repository) DeleteEquipment(ctx context.Context, id int64) error {
	n, err := r.exec(ctx, "DeleteEquipment", r.qb.Delete(equipmentTableName).
		Where(sq.Eq{"equipment_id": id}))
	if err != nil {
		return err
	}
	if n == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// DecrementQuantity takes one unit out of stock. It never drives quantity below
// zero and refuses broken items: both cases report ErrInsufficientStock.
func (r *repository) DecrementQuantity(ctx context.Context, id int64) error {
	n, err := r.exec(ctx, "DecrementQuantity", r.qb.Update(equipmentTableName).
		Set("quantity", sq.Expr("quantity - 1")).
		Where(sq.Eq{"equipment_id": id}).
		Where(sq.Gt{"quantity": 0}).
		Where(sq.NotEq{`"condition"`: string(model.ConditionBroken)}))
	if err != nil {
		return err
	}
	if n == 0 {
		return errs.ErrInsufficientStock
	}
	return nil
}

func (r *repository) IncrementQuantity(ctx context.Context, id int64) error {
	n, err := r.exec(ctx, "IncrementQuantity", r.qb.Update(equipmentTableName).
		Set("quantity", sq.Expr("quantity + 1")).
		Where(sq.Eq{"equipment_id": id}))
	if err != nil {
		return err
	}
	if n == 0 {
		return errs.ErrNotFound
	}
	return nil
}

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/Astemirdum/tracklab-service/pkg/auth"
	"github.com/Astemirdum/tracklab-service/tracklab/internal/errs"
	"github.com/Astemirdum/tracklab-service/tracklab/internal/model"
	"github.com/pkg/errors"
)

func (s *Service) AddEquipment(ctx context.Context, actor auth.Actor, e model.Equipment) (int64, error) {
	if err := requireAdmin(actor); err != nil {
		return 0, err
	}
	e.Code = strings.TrimSpace(e.Code)
	e.Name = strings.TrimSpace(e.Name)
	if e.Code == "" || e.Name == "" {
		return 0, errors.Wrap(errs.ErrInvalidArgument, "code and name are required")
	}
	if e.Quantity < 0 {
		return 0, errors.Wrap(errs.ErrInvalidArgument, "quantity must not be negative")
	}
	if e.Condition == "" {
		e.Condition = model.ConditionGood
	}
	cond, ok := model.ParseCondition(string(e.Condition))
	if !ok {
		return 0, errors.Wrapf(errs.ErrInvalidArgument, "condition %q", e.Condition)
	}
	e.Condition = cond

	id, err := s.repo.CreateEquipment(ctx, e)
	if err != nil {
		return 0, err
	}
	s.record(ctx, actor, fmt.Sprintf("Added equipment %s (%s)", e.Code, e.Name))
	return id, nil
}

func (s *Service) ListEquipment(ctx context.Context, f model.EquipmentFilter) ([]model.Equipment, error) {
	return s.repo.ListEquipment(ctx, f)
}

func (s *Service) GetEquipment(ctx context.Context, id int64) (model.Equipment, error) {
	return s.repo.GetEquipment(ctx, id)
}

// UpdateEquipment changes the set fields only; omitted ones keep their stored value.
func (s *Service) UpdateEquipment(ctx context.Context, actor auth.Actor, id int64, u model.EquipmentUpdate) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}
	if u.Empty() {
		return errors.Wrap(errs.ErrInvalidArgument, "nothing to update")
	}
	if u.Quantity != nil && *u.Quantity < 0 {
		return errors.Wrap(errs.ErrInvalidArgument, "quantity must not be negative")
	}
	if u.Condition != nil {
		cond, ok := model.ParseCondition(string(*u.Condition))
		if !ok {
			return errors.Wrapf(errs.ErrInvalidArgument, "condition %q", *u.Condition)
		}
		u.Condition = &cond
	}
	if err := s.repo.UpdateEquipment(ctx, id, u); err != nil {
		return err
	}
	s.record(ctx, actor, fmt.Sprintf("Updated equipment #%d", id))
	return nil
}

// DeleteEquipment hard-deletes an item. Items referenced by any borrow are
// refused by the store with ErrInvalidState.
func (s *Service) DeleteEquipment(ctx context.Context, actor auth.Actor, id int64) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}
	if err := s.repo.DeleteEquipment(ctx, id); err != nil {
		return err
	}
	s.record(ctx, actor, fmt.Sprintf("Deleted equipment #%d", id))
	return nil
}

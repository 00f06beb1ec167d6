package service

import (
	"context"
	"strings"

	"github.com/Astemirdum/tracklab-service/tracklab/internal/errs"
	"github.com/Astemirdum/tracklab-service/tracklab/internal/model"
	"github.com/Astemirdum/tracklab-service/tracklab/internal/repository"
	"github.com/pkg/errors"
)

// ResolveBorrower returns the id of the borrower with the given external code,
// creating it when absent. Contact and department are refreshed on every call.
func (s *Service) ResolveBorrower(ctx context.Context, b model.BorrowerIdentity) (int64, error) {
	return s.resolveBorrower(ctx, s.repo, b)
}

func (s *Service) resolveBorrower(ctx context.Context, repo repository.Repository, b model.BorrowerIdentity) (int64, error) {
	b.ExternalCode = strings.TrimSpace(b.ExternalCode)
	b.FullName = strings.TrimSpace(b.FullName)
	if b.ExternalCode == "" {
		return 0, errors.Wrap(errs.ErrInvalidArgument, "external code is required")
	}
	if b.FullName == "" {
		b.FullName = b.ExternalCode
	}
	b.Contact = FormatContact(b.Contact)
	b.Department = strings.TrimSpace(b.Department)

	id, err := repo.UpsertBorrower(ctx, b)
	if err != nil {
		return 0, errors.Wrapf(err, "resolve borrower %s", b.ExternalCode)
	}
	return id, nil
}

func (s *Service) GetBorrowerByCode(ctx context.Context, externalCode string) (model.Borrower, error) {
	return s.repo.GetBorrowerByCode(ctx, externalCode)
}

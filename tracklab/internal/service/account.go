package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/Astemirdum/tracklab-service/pkg/auth"
	"github.com/Astemirdum/tracklab-service/tracklab/internal/errs"
	"github.com/Astemirdum/tracklab-service/tracklab/internal/model"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	minPasswordLen = 6
	adminUsername  = "admin"
)

// Register creates an account. Only administrators may create Staff accounts.
func (s *Service) Register(ctx context.Context, actor auth.Actor, username, password string, role auth.Role) (int64, error) {
	username = strings.TrimSpace(username)
	if role == "" {
		role = auth.RoleStudent
	}
	switch {
	case username == "":
		return 0, errors.Wrap(errs.ErrInvalidArgument, "username is required")
	case len(password) < minPasswordLen:
		return 0, errors.Wrapf(errs.ErrInvalidArgument, "password must be at least %d characters", minPasswordLen)
	case !role.Valid():
		return 0, errors.Wrapf(errs.ErrInvalidArgument, "role %q", role)
	case role == auth.RoleStaff && !actor.IsAdmin():
		return 0, errs.ErrForbidden
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, errors.Wrap(err, "hash password")
	}
	id, err := s.repo.CreateUser(ctx, model.User{Username: username, PasswordHash: string(hash), Role: role})
	if err != nil {
		return 0, errors.Wrapf(err, "register %s", username)
	}
	s.record(ctx, auth.Actor{UserID: id, Username: username, Role: role}, fmt.Sprintf("Registered as %s", role))
	return id, nil
}

func (s *Service) Login(ctx context.Context, username, password string) (model.Session, error) {
	if s.tokens == nil {
		return model.Session{}, errors.New("token manager is not configured")
	}
	u, err := s.repo.GetUserByUsername(ctx, strings.TrimSpace(username))
	if errors.Is(err, errs.ErrNotFound) {
		return model.Session{}, errs.ErrInvalidCredentials
	}
	if err != nil {
		return model.Session{}, err
	}
	if err = bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return model.Session{}, errs.ErrInvalidCredentials
	}

	token, exp, err := s.tokens.Issue(u.Actor())
	if err != nil {
		return model.Session{}, errors.Wrap(err, "issue token")
	}
	s.record(ctx, u.Actor(), "Logged in")
	return model.Session{Token: token, ExpiresAt: exp.Unix(), User: u}, nil
}

func (s *Service) GetProfile(ctx context.Context, actor auth.Actor) (model.User, error) {
	if actor.UserID == 0 {
		return model.User{}, errs.ErrUnauthorized
	}
	return s.repo.GetUser(ctx, actor.UserID)
}

func (s *Service) UpdateProfile(ctx context.Context, actor auth.Actor, p model.ProfileUpdate) error {
	if actor.UserID == 0 {
		return errs.ErrUnauthorized
	}
	p.Email = strings.TrimSpace(p.Email)
	if p.Email != "" && !strings.Contains(p.Email, "@") {
		return errors.Wrap(errs.ErrInvalidArgument, "invalid email")
	}
	if !validContact(p.Contact) {
		return errors.Wrap(errs.ErrInvalidArgument, "contact must contain digits only")
	}
	p.Contact = FormatContact(p.Contact)
	p.Department = strings.TrimSpace(p.Department)

	if err := s.repo.UpdateProfile(ctx, actor.UserID, p); err != nil {
		return err
	}
	s.record(ctx, actor, "Updated profile")
	return nil
}

func (s *Service) UpdateProfileImage(ctx context.Context, actor auth.Actor, path string) error {
	if actor.UserID == 0 {
		return errs.ErrUnauthorized
	}
	if strings.TrimSpace(path) == "" {
		return errors.Wrap(errs.ErrInvalidArgument, "image path is required")
	}
	if err := s.repo.UpdateProfileImage(ctx, actor.UserID, path); err != nil {
		return err
	}
	s.record(ctx, actor, "Updated profile image")
	return nil
}

func (s *Service) ChangePassword(ctx context.Context, actor auth.Actor, oldPassword, newPassword string) error {
	u, err := s.GetProfile(ctx, actor)
	if err != nil {
		return err
	}
	if err = bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(oldPassword)); err != nil {
		return errs.ErrInvalidCredentials
	}
	if len(newPassword) < minPasswordLen {
		return errors.Wrapf(errs.ErrInvalidArgument, "password must be at least %d characters", minPasswordLen)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return errors.Wrap(err, "hash password")
	}
	if err = s.repo.UpdatePassword(ctx, u.ID, string(hash)); err != nil {
		return err
	}
	s.record(ctx, actor, "Changed password")
	return nil
}

// EnsureAdmin creates the Staff "admin" account unless it already exists.
func (s *Service) EnsureAdmin(ctx context.Context, password string) error {
	if password == "" {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return errors.Wrap(err, "hash password")
	}
	created, err := s.repo.EnsureUser(ctx, model.User{Username: adminUsername, PasswordHash: string(hash), Role: auth.RoleStaff})
	if err != nil {
		return errors.Wrap(err, "ensure admin")
	}
	if created {
		s.log.Info("admin account created", zap.String("username", adminUsername))
	}
	return nil
}

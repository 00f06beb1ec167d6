package repository

import (
	"context"

	"github.com/Astemirdum/tracklab-service/tracklab/internal/errs"
	"github.com/Astemirdum/tracklab-service/tracklab/internal/model"
	sq "github.com/Masterminds/squirrel"
)

var userColumns = []string{"user_id", "username", "password", "role", "email", "contact", "department", "profile_image"}

func (r *repository) CreateUser(ctx context.Context, u model.User) (int64, error) {
	return r.insert(ctx, "CreateUser", r.userInsert(u), "user_id")
}

// EnsureUser inserts u unless the username is taken and reports whether it did.
func (r *repository) EnsureUser(ctx context.Context, u model.User) (bool, error) {
	n, err := r.exec(ctx, "EnsureUser", r.userInsert(u).Suffix("ON CONFLICT (username) DO NOTHING"))
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *repository) userInsert(u model.User) sq.InsertBuilder {
	return r.qb.Insert(usersTableName).
		Columns("username", "password", "role", "email", "contact", "department", "profile_image").
		Values(u.Username, u.PasswordHash, string(u.Role), u.Email, u.Contact, u.Department, u.ProfileImage)
}

func (r *repository) GetUser(ctx context.Context, id int64) (model.User, error) {
	var u model.User
	err := r.get(ctx, "GetUser", &u, r.qb.Select(userColumns...).
		From(usersTableName).
		Where(sq.Eq{"user_id": id}))
	return u, err
}

func (r *repository) GetUserByUsername(ctx context.Context, username string) (model.User, error) {
	var u model.User
	err := r.get(ctx, "GetUserByUsername", &u, r.qb.Select(userColumns...).
		From(usersTableName).
		Where(sq.Eq{"username": username}))
	return u, err
}

func (r *repository) UpdateProfile(ctx context.Context, id int64, p model.ProfileUpdate) error {
	return r.updateUser(ctx, "UpdateProfile", id, map[string]interface{}{
		"email":      p.Email,
		"contact":    p.Contact,
		"department": p.Department,
	})
}

func (r *repository) UpdateProfileImage(ctx context.Context, id int64, path string) error {
	return r.updateUser(ctx, "UpdateProfileImage", id, map[string]interface{}{"profile_image": path})
}

func (r *repository) UpdatePassword(ctx context.Context, id int64, hash string) error {
	return r.updateUser(ctx, "UpdatePassword", id, map[string]interface{}{"password": hash})
}

func (r *repository) updateUser(ctx context.Context, op string, id int64, set map[string]interface{}) error {
	n, err := r.exec(ctx, op, r.qb.Update(usersTableName).
		SetMap(set).
		Where(sq.Eq{"user_id": id}))
	if err != nil {
		return err
	}
	if n == 0 {
		return errs.ErrNotFound
	}
	return nil
}

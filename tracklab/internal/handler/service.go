package handler

import (
	"context"

	"github.com/Astemirdum/tracklab-service/pkg/auth"
	"github.com/Astemirdum/tracklab-service/tracklab/internal/model"
	"github.com/Astemirdum/tracklab-service/tracklab/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type TrackLabService interface {
	Register(ctx context.Context, actor auth.Actor, username, password string, role auth.Role) (int64, error)
	Login(ctx context.Context, username, password string) (model.Session, error)
	GetProfile(ctx context.Context, actor auth.Actor) (model.User, error)
	UpdateProfile(ctx context.Context, actor auth.Actor, p model.ProfileUpdate) error
	UpdateProfileImage(ctx context.Context, actor auth.Actor, path string) error
	ChangePassword(ctx context.Context, actor auth.Actor, oldPassword, newPassword string) error

	AddEquipment(ctx context.Context, actor auth.Actor, e model.Equipment) (int64, error)
	ListEquipment(ctx context.Context, f model.EquipmentFilter) ([]model.Equipment, error)
	GetEquipment(ctx context.Context, id int64) (model.Equipment, error)
	UpdateEquipment(ctx context.Context, actor auth.Actor, id int64, u model.EquipmentUpdate) error
	DeleteEquipment(ctx context.Context, actor auth.Actor, id int64) error

	ResolveBorrower(ctx context.Context, b model.BorrowerIdentity) (int64, error)
	GetBorrowerByCode(ctx context.Context, externalCode string) (model.Borrower, error)
	Borrow(ctx context.Context, actor auth.Actor, req model.BorrowRequest) (model.BorrowResult, error)
	Return(ctx context.Context, actor auth.Actor, req model.ReturnRequest) (model.ReturnResult, error)
	Void(ctx context.Context, actor auth.Actor, borrowID int64) error
	ActiveBorrows(ctx context.Context, externalCode string) ([]model.ActiveBorrow, error)
	GetBorrow(ctx context.Context, id int64) (model.BorrowDetail, error)

	History(ctx context.Context, r model.DateRange) ([]model.HistoryEntry, error)
	Damages(ctx context.Context, r model.DateRange) ([]model.DamageEntry, error)
	Overdue(ctx context.Context) ([]model.OverdueEntry, error)
	Inventory(ctx context.Context) ([]model.InventoryEntry, error)
	DailyCounts(ctx context.Context, r model.DateRange) ([]model.DailyCount, error)
	Dashboard(ctx context.Context) (model.Dashboard, error)
	ListActivity(ctx context.Context, actor auth.Actor, limit int) ([]model.ActivityLog, error)
}

var _ TrackLabService = (*service.Service)(nil)

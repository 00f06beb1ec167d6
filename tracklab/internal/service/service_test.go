package service_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/Astemirdum/tracklab-service/pkg/auth"
	"github.com/Astemirdum/tracklab-service/pkg/database"
	"github.com/Astemirdum/tracklab-service/pkg/metrics"
	"github.com/Astemirdum/tracklab-service/tracklab/internal/errs"
	"github.com/Astemirdum/tracklab-service/tracklab/internal/model"
	"github.com/Astemirdum/tracklab-service/tracklab/internal/repository"
	"github.com/Astemirdum/tracklab-service/tracklab/internal/service"
	"github.com/Astemirdum/tracklab-service/tracklab/migrations"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var (
	testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	admin   = auth.Actor{UserID: 1, Username: "admin", Role: auth.RoleStaff}
	student = auth.Actor{UserID: 2, Username: "ana", Role: auth.RoleStudent}
)

type env struct {
	svc     *service.Service
	repo    repository.Repository
	db      *sqlx.DB
	metrics *metrics.Metrics
	now     *time.Time
}

func newEnv(t *testing.T, opts ...service.Option) *env {
	t.Helper()
	db, err := database.NewDB(context.Background(), &database.DB{
		Driver: database.DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "tracklab.db"),
	}, migrations.MigrationFiles)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo, err := repository.NewRepository(db, zap.NewNop())
	require.NoError(t, err)

	now := testNow
	m := metrics.New(prometheus.NewRegistry())
	opts = append([]service.Option{
		service.WithClock(func() time.Time { return now }),
		service.WithMetrics(m),
		service.WithTokenManager(auth.NewTokenManager("test-secret", time.Hour)),
	}, opts...)

	return &env{
		svc:     service.NewService(repo, zap.NewNop(), opts...),
		repo:    repo,
		db:      db,
		metrics: m,
		now:     &now,
	}
}

func (e *env) equipment(t *testing.T, code string, qty int, cond model.Condition) int64 {
	t.Helper()
	id, err := e.svc.AddEquipment(context.Background(), admin, model.Equipment{
		Code: code, Name: "Item " + code, Category: "General", Quantity: qty, Condition: cond,
	})
	require.NoError(t, err)
	return id
}

func (e *env) quantity(t *testing.T, id int64) int {
	t.Helper()
	eq, err := e.repo.GetEquipment(context.Background(), id)
	require.NoError(t, err)
	return eq.Quantity
}

func (e *env) count(t *testing.T, query string, args ...interface{}) int {
	t.Helper()
	var n int
	require.NoError(t, e.db.Get(&n, query, args...))
	return n
}

func borrowFor(equipmentID int64, code string) model.BorrowRequest {
	return model.BorrowRequest{
		EquipmentID: equipmentID,
		Borrower:    &model.BorrowerIdentity{ExternalCode: code, FullName: "Ana", Contact: "09123456789", Department: "CICS"},
		Purpose:     "lab work",
	}
}

func TestFormatExternalCode(t *testing.T) {
	assert.Equal(t, "STU-00006", service.FormatExternalCode(auth.RoleStudent, 6))
	assert.Equal(t, "STF-00006", service.FormatExternalCode(auth.RoleStaff, 6))
	assert.Equal(t, "STU-123456", service.FormatExternalCode(auth.RoleStudent, 123456))

	assert.True(t, service.ValidateExternalCode("STU-00006"))
	assert.False(t, service.ValidateExternalCode("STU-123456"))
}

func TestFormatContact(t *testing.T) {
	tests := map[string]string{
		"09123456789":    "0912-345-6789",
		"0912-345-6789":  "0912-345-6789",
		"0912 345 6789":  "0912-345-6789",
		"+63 912 345 67": "6391234567",
		"":               "",
		"12345":          "12345",
	}
	for in, want := range tests {
		assert.Equal(t, want, service.FormatContact(in), in)
	}
}

func TestReason(t *testing.T) {
	assert.Equal(t, "not_found", service.Reason(errors.Wrap(errs.ErrNotFound, "borrow 1")))
	assert.Equal(t, "insufficient_stock", service.Reason(errs.ErrInsufficientStock))
	assert.Equal(t, "storage_unavailable", service.Reason(errs.ErrStorageUnavailable))
	assert.Equal(t, "internal", service.Reason(errors.New("boom")))
}

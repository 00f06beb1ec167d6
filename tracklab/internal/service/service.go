package service

import (
	"context"
	"time"

	"github.com/Astemirdum/tracklab-service/pkg/auth"
	"github.com/Astemirdum/tracklab-service/pkg/metrics"
	"github.com/Astemirdum/tracklab-service/tracklab/internal/errs"
	"github.com/Astemirdum/tracklab-service/tracklab/internal/model"
	"github.com/Astemirdum/tracklab-service/tracklab/internal/repository"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type Service struct {
	log      *zap.Logger
	repo     repository.Repository
	recorder ActivityRecorder
	metrics  *metrics.Metrics
	tokens   *auth.TokenManager
	now      func() time.Time
}

type Option func(s *Service)

func WithActivityRecorder(r ActivityRecorder) Option {
	return func(s *Service) {
		s.recorder = r
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithTokenManager(tm *auth.TokenManager) Option {
	return func(s *Service) {
		s.tokens = tm
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func NewService(repo repository.Repository, log *zap.Logger, opts ...Option) *Service {
	s := &Service{
		log:  log.Named("service"),
		repo: repo,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.recorder == nil {
		s.recorder = NewStoreRecorder(repo)
	}
	return s
}

func (s *Service) clock() time.Time {
	return s.now().UTC().Truncate(time.Second)
}

// record writes an audit entry after the operation committed. Failures are
// only logged.
func (s *Service) record(ctx context.Context, actor auth.Actor, action string) {
	if actor.UserID == 0 {
		return
	}
	entry := model.ActivityLog{UserID: actor.UserID, Action: action, Timestamp: s.clock()}
	if err := s.recorder.Record(ctx, entry); err != nil {
		s.log.Warn("activity not recorded", zap.Error(err), zap.Int64("user_id", actor.UserID), zap.String("action", action))
	}
}

func (s *Service) fail(op string, err error) error {
	if s.metrics != nil && err != nil {
		s.metrics.Failures.WithLabelValues(op, Reason(err)).Inc()
	}
	return err
}

func requireAdmin(actor auth.Actor) error {
	if !actor.IsAdmin() {
		return errs.ErrForbidden
	}
	return nil
}

// Reason is a short label for err, used as a metrics dimension.
func Reason(err error) string {
	switch {
	case errors.Is(err, errs.ErrNotFound):
		return "not_found"
	case errors.Is(err, errs.ErrInsufficientStock):
		return "insufficient_stock"
	case errors.Is(err, errs.ErrAlreadyReturned):
		return "already_returned"
	case errors.Is(err, errs.ErrInvalidState):
		return "invalid_state"
	case errors.Is(err, errs.ErrDuplicateIdentity):
		return "duplicate_identity"
	case errors.Is(err, errs.ErrStorageUnavailable):
		return "storage_unavailable"
	case errors.Is(err, errs.ErrInvalidArgument):
		return "invalid_argument"
	case errors.Is(err, errs.ErrForbidden), errors.Is(err, errs.ErrUnauthorized):
		return "forbidden"
	default:
		return "internal"
	}
}

package scheduler

import (
	"context"
	"time"

	"github.com/Astemirdum/tracklab-service/tracklab/config"
	"github.com/Astemirdum/tracklab-service/tracklab/internal/model"
	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const scanTimeout = time.Minute

type OverdueLister interface {
	Overdue(ctx context.Context) ([]model.OverdueEntry, error)
}

// Scheduler periodically reports borrows that are past their expected return date.
type Scheduler struct {
	cron *cron.Cron
	svc  OverdueLister
	cfg  config.Scheduler
	log  *zap.Logger
}

func NewScheduler(cfg config.Scheduler, svc OverdueLister, log *zap.Logger) *Scheduler {
	return &Scheduler{
		cron: cron.New(cron.WithLocation(time.UTC)),
		svc:  svc,
		cfg:  cfg,
		log:  log.Named("scheduler"),
	}
}

func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.cfg.OverdueScan, s.scanOverdue); err != nil {
		return errors.Wrapf(err, "schedule overdue scan %q", s.cfg.OverdueScan)
	}
	s.cron.Start()
	s.log.Info("scheduler started", zap.String("overdue_scan", s.cfg.OverdueScan))
	return nil
}

// Stop waits for a running scan to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	s.log.Info("scheduler stopped")
}

func (s *Scheduler) scanOverdue() {
	ctx, cancel := context.WithTimeout(context.Background(), scanTimeout)
	defer cancel()

	items, err := s.svc.Overdue(ctx)
	if err != nil {
		s.log.Error("overdue scan", zap.Error(err))
		return
	}
	for _, it := range items {
		s.log.Warn("borrow overdue",
			zap.Int64("borrow_id", it.ID),
			zap.String("equipment", it.EquipmentCode),
			zap.String("borrower", it.ExternalCode),
			zap.Int("days_overdue", it.DaysOverdue))
	}
	s.log.Info("overdue scan finished", zap.Int("overdue", len(items)))
}

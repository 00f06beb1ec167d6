package service

import (
	"context"
	"encoding/json"

	"github.com/Astemirdum/tracklab-service/pkg/auth"
	"github.com/Astemirdum/tracklab-service/pkg/circuit_breaker"
	"github.com/Astemirdum/tracklab-service/pkg/kafka"
	"github.com/Astemirdum/tracklab-service/tracklab/internal/model"
	"github.com/Astemirdum/tracklab-service/tracklab/internal/repository"
	"github.com/IBM/sarama"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type ActivityRecorder interface {
	Record(ctx context.Context, entry model.ActivityLog) error
}

type storeRecorder struct {
	repo repository.Repository
}

// NewStoreRecorder writes activity straight into activity_logs.
func NewStoreRecorder(repo repository.Repository) ActivityRecorder {
	return &storeRecorder{repo: repo}
}

func (r *storeRecorder) Record(ctx context.Context, entry model.ActivityLog) error {
	_, err := r.repo.CreateActivity(ctx, entry)
	return err
}

type queueRecorder struct {
	producer sarama.SyncProducer
	topic    string
	cb       circuit_breaker.CircuitBreaker
	fallback ActivityRecorder
	log      *zap.Logger
}

// NewQueueRecorder publishes activity to Kafka. While the broker keeps failing
// the circuit breaker opens and entries go to fallback instead.
func NewQueueRecorder(producer sarama.SyncProducer, cb circuit_breaker.CircuitBreaker, fallback ActivityRecorder, log *zap.Logger) ActivityRecorder {
	return &queueRecorder{
		producer: producer,
		topic:    kafka.ActivityTopic,
		cb:       cb,
		fallback: fallback,
		log:      log.Named("activity"),
	}
}

func (r *queueRecorder) Record(ctx context.Context, entry model.ActivityLog) error {
	data, err := json.Marshal(kafka.EventActivity{
		UserID:    entry.UserID,
		Action:    entry.Action,
		Timestamp: entry.Timestamp,
	})
	if err != nil {
		return err
	}
	msg := &sarama.ProducerMessage{
		Topic: r.topic,
		Value: sarama.ByteEncoder(data),
	}
	err = r.cb.Call(func() error {
		_, _, err := r.producer.SendMessage(msg)
		return err
	})
	if err == nil {
		return nil
	}

	r.log.Warn("publish activity", zap.Error(err))
	if r.fallback == nil {
		return err
	}
	return r.fallback.Record(ctx, entry)
}

// PersistActivity stores an activity event delivered by the queue.
func (s *Service) PersistActivity(ctx context.Context, event kafka.EventActivity) error {
	if event.UserID == 0 || event.Action == "" {
		return errors.New("incomplete activity event")
	}
	ts := event.Timestamp
	if ts.IsZero() {
		ts = s.clock()
	}
	_, err := s.repo.CreateActivity(ctx, model.ActivityLog{UserID: event.UserID, Action: event.Action, Timestamp: ts})
	return err
}

func (s *Service) ListActivity(ctx context.Context, actor auth.Actor, limit int) ([]model.ActivityLog, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	return s.repo.ListActivity(ctx, limit)
}

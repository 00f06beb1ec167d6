package service_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/Astemirdum/tracklab-service/pkg/circuit_breaker"
	"github.com/Astemirdum/tracklab-service/pkg/kafka"
	"github.com/Astemirdum/tracklab-service/tracklab/internal/model"
	"github.com/Astemirdum/tracklab-service/tracklab/internal/service"
	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type memRecorder struct {
	entries []model.ActivityLog
}

func (m *memRecorder) Record(_ context.Context, entry model.ActivityLog) error {
	m.entries = append(m.entries, entry)
	return nil
}

func TestQueueRecorder_Publishes(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	defer func() { require.NoError(t, producer.Close()) }()

	entry := model.ActivityLog{UserID: 7, Action: "Borrowed MIC-001 x1", Timestamp: testNow}
	producer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		var ev kafka.EventActivity
		if err := json.Unmarshal(val, &ev); err != nil {
			return err
		}
		if ev.UserID != entry.UserID || ev.Action != entry.Action || !ev.Timestamp.Equal(entry.Timestamp) {
			return errors.Errorf("unexpected event %+v", ev)
		}
		return nil
	})

	fallback := &memRecorder{}
	rec := service.NewQueueRecorder(producer, circuit_breaker.New(5, time.Minute, 0.5, 1), fallback, zap.NewNop())
	require.NoError(t, rec.Record(context.Background(), entry))
	assert.Empty(t, fallback.entries)
}

func TestQueueRecorder_FallsBack(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	defer func() { require.NoError(t, producer.Close()) }()

	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)
	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	fallback := &memRecorder{}
	cb := circuit_breaker.New(2, time.Minute, 1, 1)
	rec := service.NewQueueRecorder(producer, cb, fallback, zap.NewNop())

	for i := 0; i < 3; i++ {
		require.NoError(t, rec.Record(context.Background(), model.ActivityLog{UserID: 1, Action: "x", Timestamp: testNow}))
	}
	// two broker failures open the breaker, the third entry skips the producer
	assert.Len(t, fallback.entries, 3)
	assert.Equal(t, circuit_breaker.Open, cb.State())
}

func TestService_RecordsThroughQueue(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	defer func() { require.NoError(t, producer.Close()) }()
	producer.ExpectSendMessageAndSucceed()

	e := newEnv(t)
	e.svc = service.NewService(e.repo, zap.NewNop(),
		service.WithClock(func() time.Time { return testNow }),
		service.WithActivityRecorder(service.NewQueueRecorder(producer, circuit_breaker.New(5, time.Minute, 0.5, 1), nil, zap.NewNop())),
	)

	_, err := e.svc.AddEquipment(context.Background(), admin, model.Equipment{Code: "Q-1", Name: "queued"})
	require.NoError(t, err)
	assert.Equal(t, 0, e.count(t, `select count(*) from activity_logs`))
}

func TestPersistActivity(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)

	require.Error(t, e.svc.PersistActivity(ctx, kafka.EventActivity{Action: "x"}))
	require.NoError(t, e.svc.PersistActivity(ctx, kafka.EventActivity{UserID: 3, Action: "Returned borrow #1 (Good)", Timestamp: testNow}))
	require.NoError(t, e.svc.PersistActivity(ctx, kafka.EventActivity{UserID: 3, Action: "Logged in"}))

	logs, err := e.svc.ListActivity(ctx, admin, 0)
	require.NoError(t, err)
	require.Len(t, logs, 2)
}

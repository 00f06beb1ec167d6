package kafka

import (
	"context"
	"testing"

	"github.com/IBM/sarama"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type scriptedGroup struct {
	sarama.ConsumerGroup
	results []error
	calls   int
	topics  []string
}

func (g *scriptedGroup) Consume(_ context.Context, topics []string, _ sarama.ConsumerGroupHandler) error {
	g.topics = topics
	err := g.results[g.calls]
	g.calls++
	return err
}

func TestConfig_Enabled(t *testing.T) {
	assert.False(t, Config{}.Enabled())
	assert.True(t, Config{Addrs: []string{"localhost:9092"}}.Enabled())
}

func TestConsume_RejoinsUntilClosed(t *testing.T) {
	g := &scriptedGroup{results: []error{errors.New("rebalance"), nil, sarama.ErrClosedConsumerGroup}}

	Consume(context.Background(), g, nil, zap.NewNop(), ActivityTopic)

	assert.Equal(t, 3, g.calls)
	assert.Equal(t, []string{ActivityTopic}, g.topics)
}

func TestConsume_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	g := &scriptedGroup{results: []error{nil, nil}}

	Consume(ctx, g, nil, zap.NewNop(), ActivityTopic)

	assert.Equal(t, 1, g.calls)
}

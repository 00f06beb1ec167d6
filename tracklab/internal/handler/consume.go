package handler

import (
	"context"
	"encoding/json"

	"github.com/Astemirdum/tracklab-service/pkg/kafka"
	"github.com/IBM/sarama"
	"go.uber.org/zap"
)

type activity func(ctx context.Context, event kafka.EventActivity) error

// Consumer writes activity events from the queue into the store.
type Consumer struct {
	activityHandler activity
	log             *zap.Logger
}

func NewConsumer(activity activity, log *zap.Logger) *Consumer {
	return &Consumer{
		activityHandler: activity,
		log:             log.Named("consumer"),
	}
}

func (consumer *Consumer) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (consumer *Consumer) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (consumer *Consumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				consumer.log.Warn("message channel was closed")
				return nil
			}
			var event kafka.EventActivity
			if err := json.Unmarshal(message.Value, &event); err != nil {
				consumer.log.Error("bad activity event", zap.Error(err), zap.ByteString("value", message.Value))
				session.MarkMessage(message, "")
				continue
			}

			if err := consumer.activityHandler(session.Context(), event); err != nil {
				consumer.log.Error("consumer.activityHandler", zap.Error(err))
				continue
			}

			consumer.log.Debug("message claimed", zap.String("topic", message.Topic), zap.Time("timestamp", message.Timestamp))
			session.MarkMessage(message, "")
		case <-session.Context().Done():
			return nil
		}
	}
}

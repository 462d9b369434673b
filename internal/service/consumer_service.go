// FILE: internal/service/consumer_service.go
package service

import (
	"context"
	"encoding/json"

	"motherlanka-be/internal/dto"
	"motherlanka-be/internal/pkg/logger"
	"motherlanka-be/pkg/rag/index"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type IndexRebuilder interface {
	Rebuild(ctx context.Context, trigger string) (index.RebuildResult, error)
}

type consumerService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	rebuilder IndexRebuilder
	logger    logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	rebuilder IndexRebuilder,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:    pubSub,
		topicName: topicName,
		rebuilder: rebuilder,
		logger:    log,
	}
}

// Consume handles queued rebuild requests one at a time until ctx ends.
func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

// Failed rebuilds are acked, not retried: the previous index stays in place
// and the next request or admin rebuild tries again.
func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	defer msg.Ack()

	var payload dto.RebuildIndexMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("CONSUMER", "Failed to unmarshal rebuild request", map[string]interface{}{
			"error":      err.Error(),
			"message_id": msg.UUID,
		})
		return
	}

	result, err := cs.rebuilder.Rebuild(ctx, payload.Trigger)
	if err != nil {
		cs.logger.Error("CONSUMER", "Queued rebuild failed", map[string]interface{}{
			"error":   err.Error(),
			"trigger": payload.Trigger,
		})
		return
	}

	cs.logger.Info("CONSUMER", "Queued rebuild done", map[string]interface{}{
		"chunks":       result.Chunks,
		"trigger":      payload.Trigger,
		"requested_at": payload.RequestedAt,
	})
}

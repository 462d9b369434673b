package handler

import (
	"context"

	"motherlanka-be/internal/pkg/logger"
	"motherlanka-be/internal/service"
	"motherlanka-be/pkg/events"
	pktNats "motherlanka-be/pkg/nats"
)

const durableName = "rag-indexer"

type EventSubscriber interface {
	Subscribe(ctx context.Context, subject string, durableName string, handler pktNats.EventHandler) error
}

// ContentEventHandler queues an index rebuild whenever the CRUD side announces
// a content change (events.content.destination.updated and the like).
type ContentEventHandler struct {
	subscriber EventSubscriber
	subject    string
	publisher  service.IPublisherService
	logger     logger.ILogger
}

func NewContentEventHandler(
	subscriber EventSubscriber,
	subject string,
	publisher service.IPublisherService,
	log logger.ILogger,
) *ContentEventHandler {
	return &ContentEventHandler{
		subscriber: subscriber,
		subject:    subject,
		publisher:  publisher,
		logger:     log,
	}
}

func (h *ContentEventHandler) Start(ctx context.Context) error {
	return h.subscriber.Subscribe(ctx, h.subject, durableName, h.Handle)
}

func (h *ContentEventHandler) Handle(ctx context.Context, event events.Event) error {
	h.logger.Info("CONTENT_EVENTS", "Content changed, queueing index rebuild", map[string]interface{}{
		"event": event.EventType(),
	})
	return h.publisher.RequestRebuild(ctx, "content:"+event.EventType())
}

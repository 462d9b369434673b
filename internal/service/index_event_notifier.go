package service

import (
	"context"

	"motherlanka-be/pkg/events"
	"motherlanka-be/pkg/rag/index"
)

type EventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

// IndexEventNotifier announces committed rebuilds on the external event bus.
type IndexEventNotifier struct {
	publisher EventPublisher
}

func NewIndexEventNotifier(publisher EventPublisher) *IndexEventNotifier {
	return &IndexEventNotifier{publisher: publisher}
}

func (n *IndexEventNotifier) IndexRebuilt(ctx context.Context, result index.RebuildResult) error {
	return n.publisher.Publish(ctx, events.NewIndexRebuilt(result.Chunks, result.Embedded, result.Trigger, result.BuiltAt))
}

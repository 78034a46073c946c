package service

import (
	"context"

	"github.com/grabshow/storefront/internal/entity"
	"github.com/grabshow/storefront/pkg/rabbitmq"
)

// QueueAdapter adapts rabbitmq.Publisher to the NoticePublisher
// interface the services depend on.
type QueueAdapter struct {
	queue rabbitmq.Publisher
}

func NewQueueAdapter(q rabbitmq.Publisher) *QueueAdapter {
	return &QueueAdapter{queue: q}
}

func (a *QueueAdapter) Publish(ctx context.Context, event *entity.NoticeEvent) error {
	if a.queue == nil {
		return nil // notifications disabled
	}
	return a.queue.Publish(ctx, event)
}

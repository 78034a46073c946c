package service

import (
	"context"
	"fmt"

	"github.com/grabshow/storefront/internal/entity"
	"github.com/grabshow/storefront/internal/gateway"
	"github.com/grabshow/storefront/internal/session"
)

type catalogService struct {
	events gateway.EventGateway
}

// NewCatalogService creates a new instance of CatalogService
func NewCatalogService(events gateway.EventGateway) CatalogService {
	return &catalogService{events: events}
}

// LoadEvents replaces the events mirror wholesale with the remote
// listing.
func (s *catalogService) LoadEvents(ctx context.Context, sess *session.Session) ([]*entity.Event, error) {
	events, err := s.events.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load events: %w", err)
	}

	sess.SetEvents(events)
	return events, nil
}

// EventByID never propagates an error: a miss in both the mirror and
// the remote service yields nil, which display code renders as
// "Unknown Event".
func (s *catalogService) EventByID(ctx context.Context, sess *session.Session, id int64) *entity.Event {
	if event := sess.EventByID(id); event != nil {
		return event
	}

	event, err := s.events.GetByID(ctx, id)
	if err != nil {
		return nil
	}
	return event
}

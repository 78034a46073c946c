package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/grabshow/storefront/internal/entity"
)

type eventGateway struct {
	client *apiClient
}

// NewEventGateway creates a client for the remote event service.
func NewEventGateway(baseURL string, httpClient *http.Client) EventGateway {
	return &eventGateway{client: newAPIClient(baseURL, httpClient)}
}

func (g *eventGateway) GetAll(ctx context.Context) ([]*entity.Event, error) {
	var events []*entity.Event
	if err := g.client.do(ctx, http.MethodGet, "/api/events", nil, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (g *eventGateway) GetByID(ctx context.Context, id int64) (*entity.Event, error) {
	var event entity.Event
	path := fmt.Sprintf("/api/events/%d", id)
	if err := g.client.do(ctx, http.MethodGet, path, nil, &event); err != nil {
		if entity.IsNotFound(err) {
			return nil, entity.ErrEventNotFound
		}
		return nil, err
	}
	return &event, nil
}

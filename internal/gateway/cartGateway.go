package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/grabshow/storefront/internal/entity"
)

type cartGateway struct {
	client *apiClient
}

// NewCartGateway creates a client for the remote cart service.
func NewCartGateway(baseURL string, httpClient *http.Client) CartGateway {
	return &cartGateway{client: newAPIClient(baseURL, httpClient)}
}

func (g *cartGateway) AddItem(ctx context.Context, item *entity.CartItem) (*entity.CartItem, error) {
	var created entity.CartItem
	if err := g.client.do(ctx, http.MethodPost, "/api/cart", item, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (g *cartGateway) GetByUserID(ctx context.Context, userID int64) ([]*entity.CartItem, error) {
	var items []*entity.CartItem
	path := fmt.Sprintf("/api/cart/user/%d", userID)
	if err := g.client.do(ctx, http.MethodGet, path, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (g *cartGateway) RemoveItem(ctx context.Context, userID, itemID int64) error {
	path := fmt.Sprintf("/api/cart/user/%d/item/%d", userID, itemID)
	return g.client.do(ctx, http.MethodDelete, path, nil, nil)
}

func (g *cartGateway) Clear(ctx context.Context, userID int64) error {
	path := fmt.Sprintf("/api/cart/user/%d", userID)
	return g.client.do(ctx, http.MethodDelete, path, nil, nil)
}

package gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/grabshow/storefront/internal/entity"
)

type userGateway struct {
	client *apiClient
}

// NewUserGateway creates a client for the remote user service.
func NewUserGateway(baseURL string, httpClient *http.Client) UserGateway {
	return &userGateway{client: newAPIClient(baseURL, httpClient)}
}

func (g *userGateway) Register(ctx context.Context, req *entity.RegisterRequest) (*entity.User, error) {
	var user entity.User
	if err := g.client.do(ctx, http.MethodPost, "/api/users/register", req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (g *userGateway) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	var user entity.User
	path := fmt.Sprintf("/api/users/%s", url.PathEscape(username))
	if err := g.client.do(ctx, http.MethodGet, path, nil, &user); err != nil {
		if entity.IsNotFound(err) {
			return nil, entity.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

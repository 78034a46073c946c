package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/grabshow/storefront/internal/entity"
)

type bookingGateway struct {
	client *apiClient
}

// NewBookingGateway creates a client for the remote booking service.
func NewBookingGateway(baseURL string, httpClient *http.Client) BookingGateway {
	return &bookingGateway{client: newAPIClient(baseURL, httpClient)}
}

func (g *bookingGateway) Create(ctx context.Context, req *entity.CreateBookingRequest) (*entity.Booking, error) {
	var booking entity.Booking
	if err := g.client.do(ctx, http.MethodPost, "/api/bookings", req, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

func (g *bookingGateway) GetByUserID(ctx context.Context, userID int64) ([]*entity.Booking, error) {
	var bookings []*entity.Booking
	path := fmt.Sprintf("/api/bookings/user/%d", userID)
	if err := g.client.do(ctx, http.MethodGet, path, nil, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (g *bookingGateway) Cancel(ctx context.Context, bookingID int64) (*entity.Booking, error) {
	var booking entity.Booking
	path := fmt.Sprintf("/api/bookings/%d/cancel", bookingID)
	if err := g.client.do(ctx, http.MethodPatch, path, nil, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

package gateway

import (
	"context"
	"net/http"

	"github.com/grabshow/storefront/config"
	"github.com/grabshow/storefront/internal/entity"
)

type UserGateway interface {
	Register(ctx context.Context, req *entity.RegisterRequest) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
}

type EventGateway interface {
	GetAll(ctx context.Context) ([]*entity.Event, error)
	GetByID(ctx context.Context, id int64) (*entity.Event, error)
}

type CartGateway interface {
	AddItem(ctx context.Context, item *entity.CartItem) (*entity.CartItem, error)
	GetByUserID(ctx context.Context, userID int64) ([]*entity.CartItem, error)
	RemoveItem(ctx context.Context, userID, itemID int64) error
	Clear(ctx context.Context, userID int64) error
}

type BookingGateway interface {
	Create(ctx context.Context, req *entity.CreateBookingRequest) (*entity.Booking, error)
	GetByUserID(ctx context.Context, userID int64) ([]*entity.Booking, error)
	Cancel(ctx context.Context, bookingID int64) (*entity.Booking, error)
}

// Gateways bundles one client per remote service.
type Gateways struct {
	Users    UserGateway
	Events   EventGateway
	Cart     CartGateway
	Bookings BookingGateway
}

func NewGateways(cfg *config.ServicesConfig, clientCfg *config.ClientConfig) *Gateways {
	httpClient := &http.Client{Timeout: clientCfg.Timeout}

	return &Gateways{
		Users:    NewUserGateway(cfg.UserBaseURL, httpClient),
		Events:   NewEventGateway(cfg.EventBaseURL, httpClient),
		Cart:     NewCartGateway(cfg.CartBaseURL, httpClient),
		Bookings: NewBookingGateway(cfg.BookingBaseURL, httpClient),
	}
}

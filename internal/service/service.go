package service

import (
	"context"

	"github.com/grabshow/storefront/internal/entity"
	"github.com/grabshow/storefront/internal/session"
)

// AuthService defines the interface for session lifecycle operations
type AuthService interface {
	Register(ctx context.Context, req *entity.RegisterRequest) (*entity.User, error)
	Login(ctx context.Context, req *entity.LoginRequest) (*entity.AuthResponse, error)
	Logout(ctx context.Context, sess *session.Session) error
	Restore(ctx context.Context, token string) (*session.Session, error)
}

// CatalogService defines the interface for the events mirror
type CatalogService interface {
	// LoadEvents refreshes the events mirror from the remote service
	// and returns the new snapshot.
	LoadEvents(ctx context.Context, sess *session.Session) ([]*entity.Event, error)

	// EventByID resolves an event for display: mirror first, then a
	// direct remote fetch. Returns nil (no error) when the event
	// cannot be resolved; callers render "Unknown Event".
	EventByID(ctx context.Context, sess *session.Session, id int64) *entity.Event
}

// CartService defines the interface for cart mirror reconciliation
type CartService interface {
	AddToCart(ctx context.Context, sess *session.Session, req *entity.AddToCartRequest) (*entity.CartItem, error)
	RemoveFromCart(ctx context.Context, sess *session.Session, itemID int64) error
	LoadCart(ctx context.Context, sess *session.Session) ([]*entity.CartItem, error)
	RefreshCount(ctx context.Context, sess *session.Session) (int, error)
}

// CheckoutService defines the interface for the checkout orchestrator
type CheckoutService interface {
	// Checkout converts every current cart line into a booking
	// attempt, in cart order, then clears the cart.
	Checkout(ctx context.Context, sess *session.Session) (*entity.CheckoutResult, error)

	// BookNow is the single-line bypass: one booking built directly
	// from an event and a quantity, no cart interaction.
	BookNow(ctx context.Context, sess *session.Session, req *entity.BookNowRequest) (*entity.Booking, error)

	// CancelBooking issues the cancel request only after gate answers
	// affirmative, then re-fetches the bookings mirror.
	CancelBooking(ctx context.Context, sess *session.Session, bookingID int64, gate Confirmer) (*entity.Booking, error)

	LoadBookings(ctx context.Context, sess *session.Session) ([]*entity.Booking, error)
}

// Confirmer is the interactive yes/no gate guarding cancellation.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmerFunc adapts a plain function to the Confirmer interface.
type ConfirmerFunc func(prompt string) bool

func (f ConfirmerFunc) Confirm(prompt string) bool {
	return f(prompt)
}

// NoticePublisher forwards user-facing notices to the notification
// queue for the downstream consumer.
type NoticePublisher interface {
	Publish(ctx context.Context, event *entity.NoticeEvent) error
}

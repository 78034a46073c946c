package service

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/grabshow/storefront/internal/entity"
	"github.com/grabshow/storefront/internal/gateway"
	"github.com/grabshow/storefront/internal/session"
)

type cartService struct {
	cart     gateway.CartGateway
	notifier *Notifier
}

// NewCartService creates a new instance of CartService
func NewCartService(cart gateway.CartGateway, notifier *Notifier) CartService {
	return &cartService{
		cart:     cart,
		notifier: notifier,
	}
}

// AddToCart builds a cart line from the events mirror. The event must
// already be loaded; a missing event is a caller error, not a trigger
// for a lazy fetch. The line price is the unit price times the
// quantity, captured now — later price changes to the event do not
// touch existing lines. Availability is only bounded here; races are
// resolved remotely.
func (s *cartService) AddToCart(ctx context.Context, sess *session.Session, req *entity.AddToCartRequest) (*entity.CartItem, error) {
	event := sess.EventByID(req.EventID)
	if event == nil {
		return nil, entity.ErrEventNotLoaded
	}

	if req.Quantity < 1 || req.Quantity > event.AvailableSeats {
		return nil, fmt.Errorf("quantity must be between 1 and %d", event.AvailableSeats)
	}

	item := &entity.CartItem{
		UserID:   sess.UserID(),
		EventID:  event.ID,
		Quantity: req.Quantity,
		Price:    event.Price * float64(req.Quantity),
	}

	created, err := s.cart.AddItem(ctx, item)
	if err != nil {
		s.notifier.Publish(sess.Token(), entity.NoticeLevelError, "Failed to add to cart: "+err.Error())
		return nil, fmt.Errorf("failed to add to cart: %w", err)
	}

	s.notifier.Publish(sess.Token(), entity.NoticeLevelSuccess,
		fmt.Sprintf("Added %d ticket(s) to cart!", req.Quantity))

	if _, err := s.RefreshCount(ctx, sess); err != nil {
		logrus.Errorf("Failed to refresh cart count: %v", err)
	}

	return created, nil
}

// RemoveFromCart deletes the line remotely and then reloads the whole
// cart mirror; it never splices the mirror locally.
func (s *cartService) RemoveFromCart(ctx context.Context, sess *session.Session, itemID int64) error {
	if err := s.cart.RemoveItem(ctx, sess.UserID(), itemID); err != nil {
		s.notifier.Publish(sess.Token(), entity.NoticeLevelError, "Failed to remove item: "+err.Error())
		return fmt.Errorf("failed to remove cart item: %w", err)
	}

	s.notifier.Publish(sess.Token(), entity.NoticeLevelSuccess, "Item removed from cart")

	if _, err := s.LoadCart(ctx, sess); err != nil {
		logrus.Errorf("Failed to reload cart after removal: %v", err)
	}

	return nil
}

// LoadCart replaces the cart mirror wholesale with the remote state.
func (s *cartService) LoadCart(ctx context.Context, sess *session.Session) ([]*entity.CartItem, error) {
	items, err := s.cart.GetByUserID(ctx, sess.UserID())
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	sess.SetCart(items)
	return items, nil
}

// RefreshCount re-fetches the cart for the badge count. A failure
// leaves the stored count untouched and reports zero, as the source
// client did.
func (s *cartService) RefreshCount(ctx context.Context, sess *session.Session) (int, error) {
	items, err := s.cart.GetByUserID(ctx, sess.UserID())
	if err != nil {
		return 0, fmt.Errorf("failed to refresh cart count: %w", err)
	}

	sess.SetCartCount(len(items))
	return len(items), nil
}

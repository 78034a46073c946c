package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/grabshow/storefront/config"
	"github.com/grabshow/storefront/internal/entity"
	"github.com/grabshow/storefront/internal/gateway"
	"github.com/grabshow/storefront/internal/session"
)

const cancelPrompt = "Are you sure you want to cancel this booking?"

type checkoutService struct {
	bookings gateway.BookingGateway
	cart     gateway.CartGateway
	events   gateway.EventGateway
	notifier *Notifier
	queue    NoticePublisher
	cfg      *config.CheckoutConfig
}

// NewCheckoutService creates a new instance of CheckoutService
func NewCheckoutService(
	bookings gateway.BookingGateway,
	cart gateway.CartGateway,
	events gateway.EventGateway,
	notifier *Notifier,
	queue NoticePublisher,
	cfg *config.CheckoutConfig,
) CheckoutService {
	return &checkoutService{
		bookings: bookings,
		cart:     cart,
		events:   events,
		notifier: notifier,
		queue:    queue,
		cfg:      cfg,
	}
}

// Checkout converts the current cart into bookings, one per line, in
// cart order, strictly sequentially. A failed line never aborts the
// batch; every line is attempted exactly once, with no retry. The
// cart-clear follows all attempts — by default even when some lines
// failed, which is the named policy of the source client; setting
// clear_cart_on_failure=false gates the clear on a clean batch.
func (s *checkoutService) Checkout(ctx context.Context, sess *session.Session) (*entity.CheckoutResult, error) {
	lines := sess.Cart()
	if len(lines) == 0 {
		return nil, entity.ErrEmptyCart
	}

	// The mirror is not authoritative at decision time; reload it
	// before booking. A reload failure falls back to the snapshot.
	if fresh, err := s.cart.GetByUserID(ctx, sess.UserID()); err == nil {
		sess.SetCart(fresh)
		lines = fresh
	} else {
		logrus.Errorf("Failed to refresh cart before checkout: %v", err)
	}

	if len(lines) == 0 {
		return nil, entity.ErrEmptyCart
	}

	result := &entity.CheckoutResult{}
	for _, line := range lines {
		req := &entity.CreateBookingRequest{
			UserID:        sess.UserID(),
			EventID:       line.EventID,
			NumberOfSeats: line.Quantity,
			TotalPrice:    line.Price,
			Status:        entity.BookingStatusConfirmed,
		}

		if _, err := s.bookings.Create(ctx, req); err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id":  sess.UserID(),
				"event_id": line.EventID,
			}).Errorf("Booking failed: %v", err)

			result.Failed++
			result.Failures = append(result.Failures, entity.BookingFailure{
				EventID: line.EventID,
				Reason:  err.Error(),
			})
			continue
		}
		result.Succeeded++
	}

	if result.Failed == 0 || s.cfg.ClearCartOnFailure {
		if err := s.cart.Clear(ctx, sess.UserID()); err != nil {
			logrus.Errorf("Failed to clear cart after checkout: %v", err)
		}
		// Reset regardless: the clear was attempted.
		sess.SetCart(nil)
	} else {
		// Clear gated off; the surviving lines stay remote, so
		// reload rather than reset.
		if items, err := s.cart.GetByUserID(ctx, sess.UserID()); err == nil {
			sess.SetCart(items)
		}
	}

	if fresh, err := s.bookings.GetByUserID(ctx, sess.UserID()); err == nil {
		sess.SetBookings(fresh)
	} else {
		logrus.Errorf("Failed to refresh bookings after checkout: %v", err)
	}

	s.publishOutcome(ctx, sess, result)

	return result, nil
}

func (s *checkoutService) publishOutcome(ctx context.Context, sess *session.Session, result *entity.CheckoutResult) {
	level := entity.NoticeLevelSuccess
	message := "Booking confirmed! Check your bookings."
	if result.Failed > 0 {
		level = entity.NoticeLevelError
		message = fmt.Sprintf("Checkout finished: %d booked, %d failed.", result.Succeeded, result.Failed)
	}

	s.publishNotice(ctx, sess, level, message, "checkout")
}

// publishNotice fans one outcome out to the in-process notifier and
// the notification queue.
func (s *checkoutService) publishNotice(ctx context.Context, sess *session.Session, level entity.NoticeLevel, message, source string) {
	s.notifier.Publish(sess.Token(), level, message)

	if err := s.queue.Publish(ctx, &entity.NoticeEvent{
		UserID:  sess.UserID(),
		Level:   level,
		Message: message,
		Source:  source,
		SentAt:  time.Now(),
	}); err != nil {
		logrus.Errorf("Failed to publish %s notice: %v", source, err)
	}
}

// BookNow submits one booking straight from the events mirror,
// skipping the cart entirely.
func (s *checkoutService) BookNow(ctx context.Context, sess *session.Session, req *entity.BookNowRequest) (*entity.Booking, error) {
	event := sess.EventByID(req.EventID)
	if event == nil {
		return nil, entity.ErrEventNotLoaded
	}

	if req.Quantity < 1 || req.Quantity > event.AvailableSeats {
		return nil, fmt.Errorf("quantity must be between 1 and %d", event.AvailableSeats)
	}

	booking, err := s.bookings.Create(ctx, &entity.CreateBookingRequest{
		UserID:        sess.UserID(),
		EventID:       event.ID,
		NumberOfSeats: req.Quantity,
		TotalPrice:    event.Price * float64(req.Quantity),
		Status:        entity.BookingStatusConfirmed,
	})
	if err != nil {
		s.notifier.Publish(sess.Token(), entity.NoticeLevelError, "Booking failed: "+err.Error())
		return nil, fmt.Errorf("booking failed: %w", err)
	}

	s.notifier.Publish(sess.Token(), entity.NoticeLevelSuccess, "Booking confirmed!")

	// Seat availability moved; refresh the events mirror.
	if events, err := s.events.GetAll(ctx); err == nil {
		sess.SetEvents(events)
	} else {
		logrus.Errorf("Failed to refresh events after booking: %v", err)
	}

	return booking, nil
}

// CancelBooking transitions one booking CONFIRMED -> CANCELLED. The
// gate must answer affirmative before any network call is issued, and
// the bookings mirror is re-fetched afterwards, never patched locally.
func (s *checkoutService) CancelBooking(ctx context.Context, sess *session.Session, bookingID int64, gate Confirmer) (*entity.Booking, error) {
	if mirrored := sess.BookingByID(bookingID); mirrored != nil && !mirrored.CanCancel() {
		// Cancel is not offered for cancelled bookings; treat the
		// request as a no-op.
		return mirrored, nil
	}

	if gate == nil || !gate.Confirm(cancelPrompt) {
		return nil, entity.ErrCancelDeclined
	}

	booking, err := s.bookings.Cancel(ctx, bookingID)
	if err != nil {
		s.publishNotice(ctx, sess, entity.NoticeLevelError, "Failed to cancel booking: "+err.Error(), "cancel")
		return nil, fmt.Errorf("failed to cancel booking: %w", err)
	}

	s.publishNotice(ctx, sess, entity.NoticeLevelSuccess, "Booking cancelled", "cancel")

	if fresh, err := s.bookings.GetByUserID(ctx, sess.UserID()); err == nil {
		sess.SetBookings(fresh)
	} else {
		logrus.Errorf("Failed to refresh bookings after cancellation: %v", err)
	}

	return booking, nil
}

// LoadBookings replaces the bookings mirror wholesale with the remote
// state.
func (s *checkoutService) LoadBookings(ctx context.Context, sess *session.Session) ([]*entity.Booking, error) {
	bookings, err := s.bookings.GetByUserID(ctx, sess.UserID())
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings: %w", err)
	}

	sess.SetBookings(bookings)
	return bookings, nil
}

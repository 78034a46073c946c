package session

import (
	"sync"

	"github.com/grabshow/storefront/internal/entity"
)

// Session is the single-owner state of one logged-in user: the
// identity record plus the three local mirrors. Mirrors have no TTL
// and are overwritten wholesale on reload, never merged; staleness
// between reloads is tolerated.
type Session struct {
	mu sync.RWMutex

	token string
	user  *entity.User

	events   []*entity.Event
	cart     []*entity.CartItem
	bookings []*entity.Booking

	cartCount int
}

func New(token string, user *entity.User) *Session {
	return &Session{
		token: token,
		user:  user,
	}
}

func (s *Session) Token() string {
	return s.token
}

func (s *Session) User() *entity.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

func (s *Session) UserID() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return 0
	}
	return s.user.ID
}

// SetEvents replaces the events mirror.
func (s *Session) SetEvents(events []*entity.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = events
}

// Events returns a snapshot of the events mirror.
func (s *Session) Events() []*entity.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*entity.Event, len(s.events))
	copy(out, s.events)
	return out
}

// EventByID looks an event up in the mirror only; it does not reach
// out to the remote service.
func (s *Session) EventByID(id int64) *entity.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, event := range s.events {
		if event.ID == id {
			return event
		}
	}
	return nil
}

// SetCart replaces the cart mirror and the badge count together.
func (s *Session) SetCart(items []*entity.CartItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = items
	s.cartCount = len(items)
}

// Cart returns a snapshot of the cart mirror, in cart order.
func (s *Session) Cart() []*entity.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*entity.CartItem, len(s.cart))
	copy(out, s.cart)
	return out
}

func (s *Session) SetCartCount(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cartCount = n
}

func (s *Session) CartCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cartCount
}

// SetBookings replaces the bookings mirror.
func (s *Session) SetBookings(bookings []*entity.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookings = bookings
}

// Bookings returns a snapshot of the bookings mirror.
func (s *Session) Bookings() []*entity.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*entity.Booking, len(s.bookings))
	copy(out, s.bookings)
	return out
}

func (s *Session) BookingByID(id int64) *entity.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, booking := range s.bookings {
		if booking.ID == id {
			return booking
		}
	}
	return nil
}

// Reset drops all mirrors, as the source client did on logout.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = nil
	s.cart = nil
	s.bookings = nil
	s.cartCount = 0
}

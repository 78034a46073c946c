package service

import (
	"context"
	"errors"

	"github.com/grabshow/storefront/internal/entity"
	"github.com/grabshow/storefront/internal/session"
)

// In-memory gateway fakes recording every call, used across the
// service tests.

type fakeEventGateway struct {
	events   []*entity.Event
	getAllN  int
	getByIDN int
	failAll  bool
	failByID bool
}

func (f *fakeEventGateway) GetAll(ctx context.Context) ([]*entity.Event, error) {
	f.getAllN++
	if f.failAll {
		return nil, errors.New("event service unreachable")
	}
	return f.events, nil
}

func (f *fakeEventGateway) GetByID(ctx context.Context, id int64) (*entity.Event, error) {
	f.getByIDN++
	if f.failByID {
		return nil, errors.New("event service unreachable")
	}
	for _, e := range f.events {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, entity.ErrEventNotFound
}

type fakeCartGateway struct {
	items []*entity.CartItem

	added      []*entity.CartItem
	listN      int
	removeN    int
	clearN     int
	failAdd    bool
	failList   bool
	failRemove bool
	failClear  bool
	nextID     int64
}

func (f *fakeCartGateway) AddItem(ctx context.Context, item *entity.CartItem) (*entity.CartItem, error) {
	if f.failAdd {
		return nil, errors.New("cart service unreachable")
	}
	f.nextID++
	created := *item
	created.ID = f.nextID
	f.added = append(f.added, &created)
	f.items = append(f.items, &created)
	return &created, nil
}

func (f *fakeCartGateway) GetByUserID(ctx context.Context, userID int64) ([]*entity.CartItem, error) {
	f.listN++
	if f.failList {
		return nil, errors.New("cart service unreachable")
	}
	out := make([]*entity.CartItem, len(f.items))
	copy(out, f.items)
	return out, nil
}

func (f *fakeCartGateway) RemoveItem(ctx context.Context, userID, itemID int64) error {
	f.removeN++
	if f.failRemove {
		return errors.New("cart service unreachable")
	}
	for i, item := range f.items {
		if item.ID == itemID {
			f.items = append(f.items[:i], f.items[i+1:]...)
			break
		}
	}
	return nil
}

func (f *fakeCartGateway) Clear(ctx context.Context, userID int64) error {
	f.clearN++
	if f.failClear {
		return errors.New("cart service unreachable")
	}
	f.items = nil
	return nil
}

type fakeBookingGateway struct {
	bookings []*entity.Booking

	created      []*entity.CreateBookingRequest
	cancelled    []int64
	listN        int
	failEventIDs map[int64]bool
	failCancel   bool
	nextID       int64
}

func (f *fakeBookingGateway) Create(ctx context.Context, req *entity.CreateBookingRequest) (*entity.Booking, error) {
	f.created = append(f.created, req)
	if f.failEventIDs[req.EventID] {
		return nil, errors.New("insufficient seats")
	}
	f.nextID++
	booking := &entity.Booking{
		ID:            f.nextID,
		UserID:        req.UserID,
		EventID:       req.EventID,
		NumberOfSeats: req.NumberOfSeats,
		TotalPrice:    req.TotalPrice,
		Status:        req.Status,
	}
	f.bookings = append(f.bookings, booking)
	return booking, nil
}

func (f *fakeBookingGateway) GetByUserID(ctx context.Context, userID int64) ([]*entity.Booking, error) {
	f.listN++
	out := make([]*entity.Booking, len(f.bookings))
	copy(out, f.bookings)
	return out, nil
}

func (f *fakeBookingGateway) Cancel(ctx context.Context, bookingID int64) (*entity.Booking, error) {
	f.cancelled = append(f.cancelled, bookingID)
	if f.failCancel {
		return nil, errors.New("booking service unreachable")
	}
	for _, b := range f.bookings {
		if b.ID == bookingID {
			b.Status = entity.BookingStatusCancelled
			return b, nil
		}
	}
	return nil, errors.New("booking not found")
}

type fakeUserGateway struct {
	users      []*entity.User
	registered []*entity.RegisterRequest
	failLookup bool
}

func (f *fakeUserGateway) Register(ctx context.Context, req *entity.RegisterRequest) (*entity.User, error) {
	f.registered = append(f.registered, req)
	user := &entity.User{
		ID:       int64(len(f.users) + 1),
		Username: req.Username,
		Email:    req.Email,
	}
	f.users = append(f.users, user)
	return user, nil
}

func (f *fakeUserGateway) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	if f.failLookup {
		return nil, errors.New("user service unreachable")
	}
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, entity.ErrUserNotFound
}

type capturedNotice struct {
	event *entity.NoticeEvent
}

type fakePublisher struct {
	published []capturedNotice
}

func (f *fakePublisher) Publish(ctx context.Context, event *entity.NoticeEvent) error {
	f.published = append(f.published, capturedNotice{event: event})
	return nil
}

func testSession(userID int64) *session.Session {
	return session.New("test-token", &entity.User{
		ID:       userID,
		Username: "alice",
		Email:    "alice@example.com",
	})
}

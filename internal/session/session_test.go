package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grabshow/storefront/internal/entity"
)

func TestSessionEventsMirror(t *testing.T) {
	sess := New("tok", &entity.User{ID: 1, Username: "alice"})

	sess.SetEvents([]*entity.Event{
		{ID: 1, Title: "Movie Night"},
		{ID: 2, Title: "Concert"},
	})

	assert.Len(t, sess.Events(), 2)
	require.NotNil(t, sess.EventByID(2))
	assert.Equal(t, "Concert", sess.EventByID(2).Title)
	assert.Nil(t, sess.EventByID(3))

	// Replacement is wholesale.
	sess.SetEvents([]*entity.Event{{ID: 3, Title: "Late Show"}})
	assert.Nil(t, sess.EventByID(1))
	assert.NotNil(t, sess.EventByID(3))
}

func TestSessionSnapshotIsCopy(t *testing.T) {
	sess := New("tok", &entity.User{ID: 1})

	sess.SetCart([]*entity.CartItem{{ID: 1, EventID: 10}})

	snapshot := sess.Cart()
	snapshot[0] = &entity.CartItem{ID: 99, EventID: 99}

	// Mutating the returned slice must not reach the mirror.
	assert.Equal(t, int64(1), sess.Cart()[0].ID)
}

func TestSessionReset(t *testing.T) {
	sess := New("tok", &entity.User{ID: 1, Username: "alice"})
	sess.SetEvents([]*entity.Event{{ID: 1}})
	sess.SetCart([]*entity.CartItem{{ID: 1}})
	sess.SetBookings([]*entity.Booking{{ID: 1}})
	sess.SetCartCount(1)

	sess.Reset()

	assert.Empty(t, sess.Events())
	assert.Empty(t, sess.Cart())
	assert.Empty(t, sess.Bookings())
	assert.Zero(t, sess.CartCount())

	// Identity survives a reset; only the mirrors drop.
	assert.Equal(t, "tok", sess.Token())
	assert.Equal(t, int64(1), sess.UserID())
}

func TestSessionBookingByID(t *testing.T) {
	sess := New("tok", &entity.User{ID: 1})
	sess.SetBookings([]*entity.Booking{
		{ID: 5, Status: entity.BookingStatusConfirmed},
	})

	require.NotNil(t, sess.BookingByID(5))
	assert.Nil(t, sess.BookingByID(6))
}

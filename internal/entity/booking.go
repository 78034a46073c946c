package entity

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
)

type Booking struct {
	ID              int64         `json:"id"`
	UserID          int64         `json:"userId"`
	EventID         int64         `json:"eventId"`
	NumberOfSeats   int           `json:"numberOfSeats"`
	TotalPrice      float64       `json:"totalPrice"`
	Status          BookingStatus `json:"status"`
	BookingDateTime APITime       `json:"bookingDateTime"`
}

// CreateBookingRequest is the exact shape the remote booking service
// accepts; checkout builds one per cart line, book-now builds one
// directly from an event and a quantity.
type CreateBookingRequest struct {
	UserID        int64         `json:"userId"`
	EventID       int64         `json:"eventId"`
	NumberOfSeats int           `json:"numberOfSeats"`
	TotalPrice    float64       `json:"totalPrice"`
	Status        BookingStatus `json:"status"`
}

// BookNowRequest is the storefront-surface payload for the direct
// booking bypass.
type BookNowRequest struct {
	EventID  int64 `json:"eventId" binding:"required"`
	Quantity int   `json:"quantity" binding:"required,min=1"`
}

// BookingFailure records one cart line whose booking attempt failed.
type BookingFailure struct {
	EventID int64  `json:"eventId"`
	Reason  string `json:"reason"`
}

// CheckoutResult aggregates the per-line outcomes of one checkout.
type CheckoutResult struct {
	Succeeded int              `json:"succeeded"`
	Failed    int              `json:"failed"`
	Failures  []BookingFailure `json:"failures,omitempty"`
}

// CanCancel reports whether the cancel action is offered for the
// booking. Status only ever moves CONFIRMED -> CANCELLED.
func (b *Booking) CanCancel() bool {
	return b.Status != BookingStatusCancelled
}

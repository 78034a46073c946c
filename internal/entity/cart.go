package entity

// CartItem is one cart line. Price is the line total captured at add
// time (unit price * quantity), never re-derived from the event later.
type CartItem struct {
	ID       int64   `json:"id"`
	UserID   int64   `json:"userId"`
	EventID  int64   `json:"eventId"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// AddToCartRequest is the storefront-surface payload for adding a line.
// The line price is computed server-side from the events mirror.
type AddToCartRequest struct {
	EventID  int64 `json:"eventId" binding:"required"`
	Quantity int   `json:"quantity" binding:"required,min=1"`
}

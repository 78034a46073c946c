package transport

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/grabshow/storefront/internal/entity"
	"github.com/grabshow/storefront/internal/service"
	"github.com/grabshow/storefront/internal/transport/middleware"
)

type BookingHandler struct {
	checkoutService service.CheckoutService
	notifier        *service.Notifier
}

func NewBookingHandler(checkoutService service.CheckoutService, notifier *service.Notifier) *BookingHandler {
	return &BookingHandler{
		checkoutService: checkoutService,
		notifier:        notifier,
	}
}

// CancelBookingRequest carries the answer of the interactive yes/no
// gate. Absent or false means declined: no remote call is issued.
type CancelBookingRequest struct {
	Confirm bool `json:"confirm"`
}

func (h *BookingHandler) Checkout(c *gin.Context) {
	sess := middleware.SessionFromContext(c)

	result, err := h.checkoutService.Checkout(c.Request.Context(), sess)
	if err != nil {
		if errors.Is(err, entity.ErrEmptyCart) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "cart is empty"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *BookingHandler) BookNow(c *gin.Context) {
	sess := middleware.SessionFromContext(c)

	var req entity.BookNowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	booking, err := h.checkoutService.BookNow(c.Request.Context(), sess, &req)
	if err != nil {
		if errors.Is(err, entity.ErrEventNotLoaded) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "load events before booking"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, booking)
}

// GetUserBookings reloads the bookings mirror and returns the fresh
// snapshot.
func (h *BookingHandler) GetUserBookings(c *gin.Context) {
	sess := middleware.SessionFromContext(c)

	bookings, err := h.checkoutService.LoadBookings(c.Request.Context(), sess)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, bookings)
}

func (h *BookingHandler) CancelBooking(c *gin.Context) {
	sess := middleware.SessionFromContext(c)

	idStr := c.Param("id")
	bookingID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking id"})
		return
	}

	var req CancelBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	gate := service.ConfirmerFunc(func(string) bool { return req.Confirm })

	booking, err := h.checkoutService.CancelBooking(c.Request.Context(), sess, bookingID, gate)
	if err != nil {
		if errors.Is(err, entity.ErrCancelDeclined) {
			c.JSON(http.StatusOK, gin.H{"message": "cancellation not confirmed"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, booking)
}

// GetNotice returns the single active notice, if one has not yet
// auto-dismissed.
func (h *BookingHandler) GetNotice(c *gin.Context) {
	sess := middleware.SessionFromContext(c)

	notice := h.notifier.Current(sess.Token())
	if notice == nil {
		c.JSON(http.StatusNoContent, nil)
		return
	}

	c.JSON(http.StatusOK, notice)
}

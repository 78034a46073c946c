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

type CartHandler struct {
	cartService service.CartService
}

func NewCartHandler(cartService service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

func (h *CartHandler) AddItem(c *gin.Context) {
	sess := middleware.SessionFromContext(c)

	var req entity.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.cartService.AddToCart(c.Request.Context(), sess, &req)
	if err != nil {
		if errors.Is(err, entity.ErrEventNotLoaded) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "load events before adding to cart"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, item)
}

// GetCart reloads the cart mirror and returns the fresh snapshot.
func (h *CartHandler) GetCart(c *gin.Context) {
	sess := middleware.SessionFromContext(c)

	items, err := h.cartService.LoadCart(c.Request.Context(), sess)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, items)
}

// GetCount re-fetches the cart for the badge count; a failure answers
// zero rather than an error, as the source client did.
func (h *CartHandler) GetCount(c *gin.Context) {
	sess := middleware.SessionFromContext(c)

	count, err := h.cartService.RefreshCount(c.Request.Context(), sess)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"count": 0})
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": count})
}

func (h *CartHandler) RemoveItem(c *gin.Context) {
	sess := middleware.SessionFromContext(c)

	idStr := c.Param("id")
	itemID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item id"})
		return
	}

	if err := h.cartService.RemoveFromCart(c.Request.Context(), sess, itemID); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "item removed"})
}

package transport

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/grabshow/storefront/internal/service"
	"github.com/grabshow/storefront/internal/transport/middleware"
)

type EventHandler struct {
	catalogService service.CatalogService
}

func NewEventHandler(catalogService service.CatalogService) *EventHandler {
	return &EventHandler{catalogService: catalogService}
}

// GetAllEvents reloads the events mirror and returns the fresh
// snapshot.
func (h *EventHandler) GetAllEvents(c *gin.Context) {
	sess := middleware.SessionFromContext(c)

	events, err := h.catalogService.LoadEvents(c.Request.Context(), sess)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, events)
}

func (h *EventHandler) GetEvent(c *gin.Context) {
	sess := middleware.SessionFromContext(c)

	idStr := c.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event id"})
		return
	}

	event := h.catalogService.EventByID(c.Request.Context(), sess, id)
	if event == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
		return
	}

	c.JSON(http.StatusOK, event)
}

package transport

import (
	"github.com/gin-gonic/gin"

	"github.com/grabshow/storefront/internal/service"
	"github.com/grabshow/storefront/internal/transport/middleware"
)

func InitRoutes(
	authService service.AuthService,
	authHandler *AuthHandler,
	eventHandler *EventHandler,
	cartHandler *CartHandler,
	bookingHandler *BookingHandler,
) *gin.Engine {

	router := gin.New()

	// Middleware
	router.Use(gin.Recovery())
	router.Use(middleware.CORS())
	router.Use(middleware.Logger())
	router.Use(middleware.Timeout(30))

	// API routes
	api := router.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		// Everything below requires a restored session.
		authed := api.Group("")
		authed.Use(middleware.Session(authService))
		{
			authed.POST("/auth/logout", authHandler.Logout)
			authed.GET("/profile", authHandler.Profile)

			events := authed.Group("/events")
			{
				events.GET("", eventHandler.GetAllEvents)
				events.GET("/:id", eventHandler.GetEvent)
			}

			cart := authed.Group("/cart")
			{
				cart.GET("", cartHandler.GetCart)
				cart.GET("/count", cartHandler.GetCount)
				cart.POST("/items", cartHandler.AddItem)
				cart.DELETE("/items/:id", cartHandler.RemoveItem)
			}

			authed.POST("/checkout", bookingHandler.Checkout)

			bookings := authed.Group("/bookings")
			{
				bookings.POST("", bookingHandler.BookNow)
				bookings.GET("", bookingHandler.GetUserBookings)
				bookings.PATCH("/:id/cancel", bookingHandler.CancelBooking)
			}

			authed.GET("/notice", bookingHandler.GetNotice)
		}
	}

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	return router
}

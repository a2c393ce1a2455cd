package routes

import (
	"context"
	"net/http"
	"time"

	"websync/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

// RegisterCatalogRoutes registers the service catalog endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/services", hb.Catalog.ListServicesHandler)
}

// RegisterBookingRoutes registers the booking lifecycle endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/book", hb.Booking.CreateBookingHandler)
	r.GET("/bookings", hb.Booking.ListBookingsHandler)
	r.GET("/bookings/:id", hb.Booking.GetBookingHandler)
	r.PATCH("/bookings/:id/status", hb.Booking.UpdateStatusHandler)
}

// RegisterHealthRoute registers a health-check endpoint that verifies the
// store round trip.
func RegisterHealthRoute(r *gin.Engine, client *mongo.Client) {
	r.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if client != nil {
			if err := client.Ping(ctx, nil); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "mongo": false})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "mongo": true})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, client *mongo.Client) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterCatalogRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterHealthRoute(r, client)
}

package api

import (
	"log/slog"
	stdhttp "net/http"

	intconfig "carbooking/internal/config"
	h "carbooking/internal/http/handlers"
	"carbooking/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env, hd *h.Handler, verifier middleware.TokenVerifier, logger *slog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(logger), gin.Recovery(), middleware.CORS(env.CORSAllowedOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Warn("failed to set trusted proxies", "err", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	requireAdmin := middleware.RequireAdmin(verifier)

	api := r.Group("/api")
	{
		api.GET("/health", hd.Health)

		// Admin
		admin := api.Group("/admin")
		admin.POST("/login", hd.Login)
		admin.GET("/stats", requireAdmin, hd.GetStats)

		// Trips
		trips := api.Group("/trips")
		trips.GET("", hd.GetTrips)
		trips.POST("", hd.CreateTrip)
		trips.DELETE("/:id", requireAdmin, hd.CancelTrip)
		trips.GET("/:id/ticket", requireAdmin, hd.GetTripTicket)
	}

	return r
}

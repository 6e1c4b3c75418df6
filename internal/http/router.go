package api

import (
	stdhttp "net/http"

	intconfig "marketplace/internal/config"
	h "marketplace/internal/http/handlers"
	"marketplace/internal/http/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func NewRouter(env intconfig.Env, log *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(log), gin.Recovery(), middleware.CORS())

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Warn("failed to set trusted proxies", zap.Error(err))
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	app := h.NewAPI(intconfig.DB, []byte(env.JWTSecret), env.TokenTTL, log)

	api := r.Group("/api")
	api.Use(middleware.Authenticate(app.Auth))
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)

		// Auth & profile
		auth := api.Group("/auth")
		auth.POST("/register", app.Register)
		auth.POST("/login", app.Login)
		auth.POST("/session-type", middleware.RequireAuth(), app.SetSessionType)
		auth.GET("/me", middleware.RequireAuth(), app.Me)
		auth.PUT("/me", middleware.RequireAuth(), app.UpdateMe)

		// Dealership setup
		dealerships := api.Group("/dealerships")
		dealerships.POST("", middleware.RequireAuth(), app.SetupDealership)
		dealerships.GET("/me", middleware.RequireAuth(), app.MyDealership)

		// Vehicles
		vehicles := api.Group("/vehicles")
		vehicles.GET("", app.ListVehicles)
		vehicles.GET("/:id", app.GetVehicle)
		vehicles.POST("", middleware.RequireAuth(), app.CreateVehicle)
		vehicles.PUT("/:id", middleware.RequireAuth(), app.UpdateVehicle)
		vehicles.DELETE("/:id", middleware.RequireAuth(), app.DeleteVehicle)

		// Spare parts
		parts := api.Group("/parts")
		parts.GET("", app.ListParts)
		parts.GET("/:id", app.GetPart)
		parts.POST("", middleware.RequireAuth(), app.CreatePart)
		parts.PUT("/:id", middleware.RequireAuth(), app.UpdatePart)
		parts.DELETE("/:id", middleware.RequireAuth(), app.DeletePart)

		// Garages & reviews
		garages := api.Group("/garages")
		garages.GET("", app.ListGarages)
		garages.GET("/:id", app.GetGarage)
		garages.POST("", middleware.RequireAuth(), app.CreateGarage)
		garages.PUT("/:id", middleware.RequireAuth(), app.UpdateGarage)
		garages.DELETE("/:id", middleware.RequireAuth(), app.DeleteGarage)
		garages.GET("/:id/reviews", app.ListGarageReviews)
		garages.POST("/:id/reviews", middleware.RequireAuth(), app.CreateGarageReview)

		reviews := api.Group("/reviews", middleware.RequireAuth())
		reviews.GET("/:id", app.GetReview)
		reviews.DELETE("/:id", app.DeleteReview)

		// Purchase orders (buyer side)
		orders := api.Group("/orders", middleware.RequireAuth())
		orders.POST("", app.CreateOrder)
		orders.GET("", app.ListMyOrders)
		orders.GET("/:id", app.GetOrder)
		orders.PUT("/:id/status", app.UpdateOrderStatus)
		orders.POST("/:id/cancel", app.CancelOrder)
		orders.GET("/:id/invoice", app.GetOrderInvoicePDF)

		// Part orders (buyer side)
		partOrders := api.Group("/part-orders", middleware.RequireAuth())
		partOrders.POST("", app.CreatePartOrder)
		partOrders.GET("", app.ListMyPartOrders)
		partOrders.GET("/:id", app.GetPartOrder)
		partOrders.PUT("/:id/status", app.UpdatePartOrderStatus)
		partOrders.POST("/:id/cancel", app.CancelPartOrder)
		partOrders.GET("/:id/invoice", app.GetPartOrderInvoicePDF)

		// Dealership-scoped views
		mine := api.Group("/my", middleware.RequireAuth())
		mine.GET("/vehicles", app.ListMyVehicles)
		mine.GET("/parts", app.ListMyParts)
		mine.GET("/garages", app.ListMyGarages)
		mine.GET("/orders", app.ListSellerOrders)
		mine.GET("/part-orders", app.ListSellerPartOrders)

		// Admin
		admin := api.Group("/admin", middleware.RequireAdmin())
		admin.GET("/vehicles", app.AdminListVehicles)
		admin.GET("/parts", app.AdminListParts)
		admin.GET("/garages", app.AdminListGarages)
		admin.GET("/orders", app.AdminListOrders)
		admin.GET("/part-orders", app.AdminListPartOrders)
		admin.GET("/reviews", app.AdminListReviews)
		admin.GET("/users", app.AdminListUsers)
	}

	return r
}

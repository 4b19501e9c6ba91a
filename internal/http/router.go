package api

import (
	"log"
	stdhttp "net/http"
	"time"

	intconfig "tripgenie/internal/config"
	"tripgenie/internal/domain"
	h "tripgenie/internal/http/handlers"
	"tripgenie/internal/http/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	h.Configure(env)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     env.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "Accept", "Origin", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	}))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	auth := middleware.Auth(env.JWTSecret)

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)
		api.GET("/routes", h.Routes)

		// Auth
		authGroup := api.Group("/auth")
		authGroup.POST("/login", h.Login)
		authGroup.POST("/register", h.Register)

		// Public catalog; ?currency= adds display-converted prices.
		api.GET("/products", h.GetProducts)
		api.GET("/products/:id", h.GetProductByID)
		api.GET("/activities", h.GetActivities)
		api.GET("/activities/:id", h.GetActivityByID)
		api.GET("/itineraries", h.GetItineraries)
		api.GET("/itineraries/:id", h.GetItineraryByID)
		api.GET("/historical-places", h.GetHistoricalPlaces)
		api.GET("/historical-places/:id", h.GetHistoricalPlaceByID)
		api.GET("/categories", h.GetCategories)
		api.GET("/tags", h.GetTags)
		api.GET("/historical-tags", h.GetHistoricalTags)
		api.GET("/companies", h.GetCompanies)
		api.GET("/companies/:id", h.GetCompanyByID)
		api.GET("/rates", h.GetRates)

		// Payment provider callback; authenticated by API key, not JWT.
		api.POST("/payments/webhook", h.PaymentWebhook)

		// Profile
		api.GET("/me", auth, h.GetMe)
		api.PUT("/me/currency", auth, h.UpdatePreferredCurrency)

		// Catalog management
		sellers := middleware.RequireRoles(domain.RoleSeller, domain.RoleAdmin)
		api.POST("/products", auth, sellers, h.CreateProduct)
		api.PUT("/products/:id", auth, sellers, h.UpdateProduct)
		api.DELETE("/products/:id", auth, sellers, h.DeleteProduct)

		advertisers := middleware.RequireRoles(domain.RoleAdvertiser, domain.RoleAdmin)
		api.POST("/activities", auth, advertisers, h.CreateActivity)
		api.PUT("/activities/:id", auth, advertisers, h.UpdateActivity)
		api.DELETE("/activities/:id", auth, advertisers, h.DeleteActivity)
		api.POST("/companies", auth, advertisers, h.CreateCompany)
		api.PUT("/companies/:id", auth, advertisers, h.UpdateCompany)
		api.DELETE("/companies/:id", auth, advertisers, h.DeleteCompany)

		guides := middleware.RequireRoles(domain.RoleTourGuide, domain.RoleAdmin)
		api.POST("/itineraries", auth, guides, h.CreateItinerary)
		api.PUT("/itineraries/:id", auth, guides, h.UpdateItinerary)
		api.DELETE("/itineraries/:id", auth, guides, h.DeleteItinerary)

		governors := middleware.RequireRoles(domain.RoleGovernor, domain.RoleAdmin)
		api.POST("/historical-places", auth, governors, h.CreateHistoricalPlace)
		api.PUT("/historical-places/:id", auth, governors, h.UpdateHistoricalPlace)
		api.DELETE("/historical-places/:id", auth, governors, h.DeleteHistoricalPlace)
		api.POST("/historical-tags", auth, governors, h.CreateHistoricalTag)
		api.PUT("/historical-tags/:id", auth, governors, h.UpdateHistoricalTag)
		api.DELETE("/historical-tags/:id", auth, governors, h.DeleteHistoricalTag)

		admins := middleware.RequireRoles(domain.RoleAdmin)
		api.POST("/categories", auth, admins, h.CreateCategory)
		api.PUT("/categories/:id", auth, admins, h.UpdateCategory)
		api.DELETE("/categories/:id", auth, admins, h.DeleteCategory)
		api.POST("/tags", auth, admins, h.CreateTag)
		api.PUT("/tags/:id", auth, admins, h.UpdateTag)
		api.DELETE("/tags/:id", auth, admins, h.DeleteTag)

		// Promo codes
		promos := api.Group("/promos")
		promos.GET("", auth, admins, h.GetPromos)
		promos.POST("", auth, admins, h.CreatePromo)
		promos.PUT("/:id", auth, admins, h.UpdatePromo)
		promos.DELETE("/:id", auth, admins, h.DeletePromo)
		promos.POST("/validate", auth, h.ValidatePromo)

		// Tourist-facing flows
		tourists := middleware.RequireRoles(domain.RoleTourist, domain.RoleAdmin)

		myItineraries := api.Group("/my-itineraries", auth, tourists)
		myItineraries.GET("", h.GetMyItineraries)
		myItineraries.POST("", h.CreateMyItinerary)
		myItineraries.PUT("/:id", h.UpdateMyItinerary)
		myItineraries.DELETE("/:id", h.DeleteMyItinerary)

		cart := api.Group("/cart", auth, tourists)
		cart.GET("", h.GetCart)
		cart.POST("", h.AddToCart)
		cart.PUT("/:id", h.SetCartQuantity)
		cart.DELETE("/:id", h.RemoveFromCart)

		checkout := api.Group("/checkout", auth, tourists)
		checkout.POST("/quote", h.GetCheckoutQuote)
		checkout.POST("", h.Checkout)
		checkout.GET("/sessions/:id", h.GetCheckoutSession)

		bookings := api.Group("/bookings", auth, tourists)
		bookings.GET("/hotels", h.GetMyHotelBookings)
		bookings.GET("/hotels/:id/invoice", h.GetHotelInvoicePDF)
		bookings.GET("/hotels/:id/voucher", h.GetHotelVoucherPDF)
		bookings.GET("/flights", h.GetMyFlightBookings)
		bookings.GET("/transportation", h.GetMyTransportationBookings)
		bookings.GET("/items", h.GetMyItemBookings)
		bookings.DELETE("/:type/:id", h.CancelBooking)

		// Complaints
		complaints := api.Group("/complaints")
		complaints.POST("", auth, tourists, h.CreateComplaint)
		complaints.GET("/mine", auth, tourists, h.GetMyComplaints)
		complaints.GET("", auth, admins, h.GetComplaints)
		complaints.PUT("/:id/resolve", auth, admins, h.ResolveComplaint)

		// Notifications (any authenticated role)
		notifications := api.Group("/notifications", auth)
		notifications.GET("", h.GetNotifications)
		notifications.PUT("/seen", h.MarkAllNotificationsSeen)
		notifications.PUT("/:id/seen", h.MarkNotificationSeen)
	}

	h.SetRouter(r)
	return r
}

package handlers

import (
	"net/http"
	"strconv"
	"sync"

	intconfig "tripgenie/internal/config"
	"tripgenie/internal/clients"
	"tripgenie/internal/http/middleware"
	"tripgenie/internal/repositories"
	"tripgenie/internal/services"

	"github.com/gin-gonic/gin"
)

var (
	envMu sync.RWMutex
	env   intconfig.Env
)

// Configure stores the runtime environment for handlers that need secrets or
// external endpoints. Called once from the router.
func Configure(e intconfig.Env) {
	envMu.Lock()
	defer envMu.Unlock()
	env = e
}

func getEnv() intconfig.Env {
	envMu.RLock()
	defer envMu.RUnlock()
	return env
}

// RespondError sends standard error payload with request_id included.
// Keeps backward compatibility by always providing "message".
func RespondError(c *gin.Context, status int, message string, err error) {
	reqID := middleware.GetRequestID(c)
	payload := gin.H{
		"message":    message,
		"request_id": reqID,
	}
	if err != nil {
		payload["error"] = err.Error()
	}
	c.JSON(status, payload)
}

// BindJSONOrError ensures body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil {
		RespondError(c, http.StatusBadRequest, "empty request body", nil)
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid payload", err)
		return false
	}
	return true
}

func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid "+name, err)
		return 0, false
	}
	return id, true
}

func checkoutService(c *gin.Context) services.CheckoutService {
	e := getEnv()
	return services.CheckoutService{
		UserRepo:         repositories.UserRepository{},
		ProductRepo:      repositories.ProductRepository{},
		ActivityRepo:     repositories.ActivityRepository{},
		ItineraryRepo:    repositories.ItineraryRepository{},
		CartRepo:         repositories.CartRepository{},
		SessionRepo:      repositories.SessionRepository{},
		BookingRepo:      repositories.BookingRepository{},
		NotificationRepo: repositories.NotificationRepository{},
		Promo: services.PromoService{
			PromoRepo: repositories.PromoRepository{},
			RequestID: middleware.GetRequestID(c),
		},
		Payments: clients.HTTPPaymentClient{
			BaseURL: e.PaymentSessionsURL,
			APIKey:  e.PaymentAPIKey,
		},
		SuccessURL: e.CheckoutSuccessURL,
		CancelURL:  e.CheckoutCancelURL,
		RequestID:  middleware.GetRequestID(c),
	}
}

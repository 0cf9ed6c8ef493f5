package routes

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/vixinox/ecommerce-application-sub000/internal/adapter/http/handlers"
	"github.com/vixinox/ecommerce-application-sub000/internal/usecase"
)

const PathPendingPayments = "/pending-payments"

func addPendingPaymentRoutes(rg *gin.RouterGroup, coordinator usecase.IPendingPaymentCoordinator, h *handlers.PendingPaymentHandler) {
	pending := rg.Group(PathPendingPayments)
	pending.Use(sessionTokenMiddleware(coordinator))
	{
		pending.GET("", h.GetState)
		pending.POST("/refresh", h.Refresh)
		pending.POST("/selection", h.ToggleSelection)
		pending.POST("/selection/all", h.ToggleAll)
		pending.POST("/intent", h.PrepareIntent)
		pending.POST("/intent/confirm", h.ConfirmIntent)
		pending.DELETE("/intent", h.ClearIntent)
		pending.POST("/:order_id/cancel", h.CancelOrder)
	}
}

// sessionTokenMiddleware adopts the caller's bearer token into the
// coordinator before the handler runs. An unchanged token is a no-op inside
// the coordinator; a missing one deactivates it (working set cleared, sweep
// stopped), and a changed one restarts the sweep against a fresh fetch.
func sessionTokenMiddleware(coordinator usecase.IPendingPaymentCoordinator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := ""
		if auth := c.GetHeader("Authorization"); strings.HasPrefix(auth, "Bearer ") {
			token = strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
		}
		_ = coordinator.SetSessionToken(c.Request.Context(), token)
		c.Next()
	}
}

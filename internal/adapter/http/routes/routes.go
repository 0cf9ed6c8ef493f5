package routes

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/vixinox/ecommerce-application-sub000/docs" // swag-generated
	"github.com/vixinox/ecommerce-application-sub000/internal/adapter/http/handlers"
	"github.com/vixinox/ecommerce-application-sub000/internal/clock"
	"github.com/vixinox/ecommerce-application-sub000/internal/infrastructure/notify"
	"github.com/vixinox/ecommerce-application-sub000/internal/infrastructure/storefront"
	"github.com/vixinox/ecommerce-application-sub000/internal/usecase"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	gateway, err := storefront.NewGateway(
		os.Getenv("STOREFRONT_API_URL"),
		getenvDuration("STOREFRONT_API_TIMEOUT", 15*time.Second),
	)
	if err != nil {
		log.Fatalf("Storefront gateway not configured: %v", err)
	}

	coordinator := usecase.NewPendingPaymentCoordinator(
		gateway,
		notify.NewLogNotifier(),
		clock.NewSystem(),
		usecase.WithSweepInterval(getenvDuration("PENDING_SWEEP_INTERVAL", time.Second)),
		usecase.WithFallbackWindow(getenvDuration("PAYMENT_WINDOW_FALLBACK", 15*time.Minute)),
		usecase.WithRecencyWindow(getenvDuration("PENDING_RECENCY_WINDOW", 24*time.Hour)),
		usecase.WithSuccessGrace(getenvDuration("PAYMENT_SUCCESS_GRACE", 3*time.Second)),
		usecase.WithSubmitTimeout(getenvDuration("PAYMENT_SUBMIT_TIMEOUT", 30*time.Second)),
	)

	pendingHandler := handlers.NewPendingPaymentHandler(coordinator)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPendingPaymentRoutes(v1, coordinator, pendingHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
}

func getenvDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("invalid %s=%q, using default %s", key, v, def)
		return def
	}
	return d
}

package main

import (
	"github.com/vixinox/ecommerce-application-sub000/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Storefront Pending Payment API
// @version         1.0
// @description     Session companion for the storefront: tracks orders awaiting payment, their expiry countdown, batched payment intents and cancellation.

// @contact.name   API Support

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the storefront session token.

func main() {
	routes.Run()
}

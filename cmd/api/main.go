package main

import (
	_ "shop_manager/docs"
	"shop_manager/internal/adapter/http/routes"
	"shop_manager/internal/logger"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Shop Manager API
// @version         1.0
// @description     Auto-repair shop management service (estimates/invoices, inventory, payments) backed by Postgres.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	logger.Setup()
	routes.Run()
}

package main

import (
	_ "foodcoop_orders/docs"
	"foodcoop_orders/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Food Coop Orders API
// @version         1.0
// @description     Order-taking service for the cooperative's sales cycles, backed by the shared document store.

// @contact.name   API Support

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}

package main

import (
	_ "manutencao_xpto/docs"
	"manutencao_xpto/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Facility Maintenance API
// @version         1.0
// @description     Facility maintenance engine (equipment, teams, requests, board, metrics) backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey UserID
// @in header
// @name X-User-Id
// @description Identity of the caller; collections are loaded for this user.

func main() {
	routes.Run()
}

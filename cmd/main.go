package main

// @title CPR Dispatch API
// @version 1.0
// @description Emergency CPR request ledger: help requests, provider acceptance and live streams.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	Execute()
}

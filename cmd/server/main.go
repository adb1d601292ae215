package main

import (
	"log"

	_ "teawork/docs"
	"teawork/internal/config"
	"teawork/internal/server"
)

// @title           TeaWork API
// @version         1.0
// @description     API for project collaboration: projects, invitations, tasks and notifications.

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @schemes http
func main() {
	cfg := config.Load()

	s, err := server.Init(cfg)
	if err != nil {
		log.Fatalf("❌ Server initialization failed: %v", err)
	}

	s.Run()
}

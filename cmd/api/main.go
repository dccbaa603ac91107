package main

import (
	"log"

	"github.com/campusgig/platform-go/config"
	"github.com/campusgig/platform-go/db"
	"github.com/campusgig/platform-go/middleware"
	"github.com/campusgig/platform-go/minio"
	"github.com/campusgig/platform-go/routes"
	"github.com/gin-gonic/gin"
)

// @title CampusGig API
// @version 1.0
// @description Freelance gig marketplace backend: gig lifecycle, escrow-style payments, reviews and discovery.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	config.LoadConfig()

	middleware.Init()

	db.Init()
	minio.InitMinio()

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()

	routes.RegisterRoutes(router)

	port := ":" + config.ServerPort
	log.Printf("Starting API server on %s", port)
	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
}

package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"pawhaven_back_end/internal/config"
	"pawhaven_back_end/internal/database"
	"pawhaven_back_end/internal/routes"
)

func main() {
	config.Load()

	database.ConnectDatabases()

	// ✅ Pré-chauffer le cache Redis
	warmupRedisCache()

	r := gin.Default()

	// CORS permissif sur l'API : le front tourne sur un autre domaine
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", "apikey", "x-client-info"},
		ExposeHeaders: []string{"Content-Length"},
	}))

	routes.RegisterRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Println("🚀 Serveur PawHaven lancé sur le port", port)
	r.Run(":" + port)
}

// warmupRedisCache pré-chauffe le cache Redis pour éviter la latence du premier appel
func warmupRedisCache() {
	ctx := context.Background()
	if err := database.Redis.Ping(ctx).Err(); err == nil {
		log.Println("✅ Cache Redis pré-chauffé")
	}
}

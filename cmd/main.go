package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"Atlas-App/internal/application"
	"Atlas-App/internal/handler"
	"Atlas-App/internal/infrastructure/database"
	postgres_repo "Atlas-App/internal/repository"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found, using system environment variables")
	}

	fmt.Println("Initializing PostgreSQL client...")
	dbClient, err := database.NewPostgreSQLClient()
	if err != nil {
		log.Fatalf("PostgreSQLクライアント初期化失敗: %v", err)
	}
	defer dbClient.Close()

	fmt.Println("Performing database health check...")
	if err := dbClient.HealthCheck(); err != nil {
		log.Fatalf("データベースヘルスチェック失敗: %v", err)
	}
	fmt.Println("✅ PostgreSQL connection successful!")

	// リポジトリの初期化
	housesRepo := postgres_repo.NewPostgresHousesRepository(dbClient)
	kingdomsRepo := postgres_repo.NewPostgresKingdomsRepository(dbClient)
	locationsRepo := postgres_repo.NewPostgresLocationsRepository(dbClient)

	// サービスとハンドラーの初期化
	dashboardService := application.NewDashboardService(housesRepo, kingdomsRepo)
	mapService := application.NewMapService(kingdomsRepo, locationsRepo)

	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	mapHandler := handler.NewMapHandler(mapService)

	// Ginルーターのセットアップ
	r := gin.Default()

	api := r.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			if err := dbClient.HealthCheck(); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{
					"status":  "unhealthy",
					"message": err.Error(),
				})
				return
			}
			c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "Atlas-App"})
		})

		api.GET("/overview", dashboardHandler.GetOverview)
		api.GET("/kingdoms", dashboardHandler.GetKingdoms)

		charts := api.Group("/charts")
		{
			charts.GET("/houses", dashboardHandler.GetHouseCountChart)
			charts.GET("/population", dashboardHandler.GetPopulationChart)
			charts.GET("/area", dashboardHandler.GetAreaChart)
		}

		api.GET("/map", mapHandler.GetMap)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	fmt.Printf("Atlas-App server starting on :%s...\n", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("サーバーの起動失敗: %v", err)
	}
}

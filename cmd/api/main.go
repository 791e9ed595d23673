package main

import (
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"recipebox/internal/api"
	"recipebox/internal/favorite"
	"recipebox/internal/mealdb"
	"recipebox/internal/recipe"
)

func main() {
	// .env is optional; deployments set real environment variables.
	if err := godotenv.Load(".env"); err != nil && !os.IsNotExist(err) {
		panic(err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		logger.Fatal("DATABASE_URL is not set")
	}

	store, err := favorite.NewPostgresStore(databaseURL)
	if err != nil {
		logger.Fatal("failed to create favorite store", zap.Error(err))
	}

	client := mealdb.NewClient(os.Getenv("MEALDB_BASE_URL"))
	recipes := recipe.NewService(client, logger)

	handler := api.NewHandler(recipes, store, logger)

	corsOrigin := os.Getenv("CORS_ORIGIN")
	if corsOrigin == "" {
		corsOrigin = "http://localhost:8081"
	}

	r := newRouter(handler, corsOrigin)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}

// newRouter builds the gin engine with CORS and all routes registered.
func newRouter(handler *api.Handler, corsOrigin string) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{corsOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/recipes", handler.SearchRecipes)
	r.GET("/recipes/:id", handler.GetRecipe)
	r.GET("/categories", handler.GetCategories)
	r.GET("/categories/:category/recipes", handler.GetRecipesByCategory)
	r.GET("/favorites/:userId", handler.ListFavorites)
	r.POST("/favorites", handler.AddFavorite)
	r.DELETE("/favorites/:userId/:recipeId", handler.RemoveFavorite)

	return r
}

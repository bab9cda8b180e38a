package main

import (
	"log/slog"
	"os"

	"storefront/config"
	"storefront/controllers"
	"storefront/database"
	"storefront/logger"
	"storefront/routes"

	"github.com/gin-gonic/gin"
)

func main() {

	config.LoadEnv()

	logger.New(logger.Options{
		Service: "storefront-api",
		Env:     config.GetEnv("APP_ENV", "dev"),
		Level:   config.GetEnv("LOG_LEVEL", "info"),
	})

	uri := config.GetEnv("MONGO_URI", "mongodb://localhost:27017")
	dbName := config.GetEnv("DB_NAME", "storefront")

	db, err := database.Connect(uri, dbName)
	if err != nil {
		slog.Error("MongoDB connection failed", "error", err)
		os.Exit(1)
	}
	defer db.Disconnect()
	slog.Info("connected to MongoDB", "db", dbName)

	pc := controllers.NewProductController(database.NewProductRepo(db.DB))
	oc := controllers.NewOrderController(database.NewOrderRepo(db.DB))
	hc := controllers.NewHealthController(db)

	r := gin.New()
	r.Use(gin.Recovery())
	r.SetTrustedProxies(nil)
	routes.RegisterRoutes(r, pc, oc, hc)

	port := config.GetEnv("PORT", "8080")
	if err := r.Run(":" + port); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"pricetrends/server/config"
	"pricetrends/server/internal/api"
	"pricetrends/server/internal/calculator"
	"pricetrends/server/internal/database"
	"pricetrends/server/internal/dataset"
	"pricetrends/server/internal/geometry"
	"pricetrends/server/internal/regional"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.WithError(err).Fatal("Failed to load configuration")
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logger.WithError(err).Warnf("Unknown log level %q, using info", cfg.LogLevel)
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	// Initialize catalog
	db, err := database.NewDatabase(cfg.CatalogDSN, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to initialize catalog")
	}
	defer db.Close()

	logger.Info("Running catalog migrations...")
	if err := db.RunMigrations(); err != nil {
		logger.WithError(err).Fatal("Failed to run catalog migrations")
	}

	aggregates := dataset.StateAggregates()
	if cfg.StateAggregates == config.AggregatesDerived {
		aggregates = regional.DeriveStateAggregates(dataset.AllLocalities())
	}
	if err := db.Seed(dataset.Cities(), aggregates); err != nil {
		logger.WithError(err).Fatal("Failed to seed catalog")
	}

	// The dashboard still works without the map, it just stays on the default view
	stateMap, err := geometry.LoadStateMap(cfg.GeoFile, config.DefaultMapView, logger)
	if err != nil {
		logger.WithError(err).Warn("Continuing without state map")
	}

	basePrices, err := config.LoadBasePrices(cfg.BasePriceFile)
	if err != nil {
		logger.WithError(err).Fatal("Failed to load base prices")
	}

	handler := api.NewHandler(db, stateMap, calculator.NewEvaluator(basePrices), logger)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	api.SetupRoutes(router, handler, cfg.CORSOrigins)

	logger.Infof("Starting server on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.WithError(err).Fatal("Server failed to start")
	}
}

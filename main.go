package main

import (
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"portfolio-monitor/config"
	"portfolio-monitor/controllers"
	"portfolio-monitor/services"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	// .env is optional; the environment may already carry PORT.
	if err := godotenv.Load(); err != nil {
		logger.Debug("No .env file found, using environment")
	}

	positions := config.Positions()
	if err := config.Validate(positions); err != nil {
		logger.WithError(err).Fatal("Invalid position configuration")
	}

	quotes := services.NewQuoteService(config.QuoteURL, config.UserAgent, config.QuoteTimeout)
	chain := services.NewOptionChainService(config.ChainURL, config.UserAgent, config.ChainTimeout)
	portfolio := services.NewPortfolioService(quotes, chain, positions, config.TotalCostBasis, config.CacheTTL)

	dashboard := controllers.NewDashboardController(portfolio)

	router := gin.Default()
	router.GET("/", dashboard.HandleDashboard)
	router.GET("/api", dashboard.HandleAPI)
	router.StaticFile("/profile.jpg", "./profile.jpg")
	router.StaticFile("/celebration.mp4", "./celebration.mp4")

	addr := ":" + config.Port()
	logger.WithFields(logrus.Fields{
		"addr":      addr,
		"positions": len(positions),
		"cache_ttl": config.CacheTTL,
	}).Info("Starting portfolio monitor")

	if err := router.Run(addr); err != nil {
		logger.WithError(err).Fatal("Server exited")
	}
}

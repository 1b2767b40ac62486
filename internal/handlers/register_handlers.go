package handlers

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/avkarpov/currency_exchange_app/cmd/docs"
	portssvc "github.com/avkarpov/currency_exchange_app/internal/core/ports/services"
	"github.com/avkarpov/currency_exchange_app/internal/platform/config"
)

// RegisterRoutes wires all HTTP routes to their handlers.
func RegisterRoutes(router *gin.Engine, services *portssvc.ServiceContainer, cfg *config.Config) {
	homeHandler := NewHomeHandler()
	currencyHandler := NewCurrencyHandler(services.Currency)
	rateHandler := NewExchangeRateHandler(services.ExchangeRate)
	exchangeHandler := NewExchangeHandler(services.Exchange)

	router.GET("/", homeHandler.Home)
	router.GET("/health", homeHandler.Health)

	router.GET("/currencies", currencyHandler.ListCurrencies)
	router.POST("/currencies", currencyHandler.CreateCurrency)
	router.GET("/currency/:code", currencyHandler.GetCurrencyByCode)

	router.GET("/exchangeRates", rateHandler.ListExchangeRates)
	router.POST("/exchangeRates", rateHandler.CreateExchangeRate)
	router.GET("/exchangeRate/:pair", rateHandler.GetExchangeRate)
	router.PATCH("/exchangeRate/:pair", rateHandler.UpdateExchangeRate)

	router.GET("/exchange", exchangeHandler.CalculateExchange)

	setupSwaggerRoutes(router, cfg)
}

// setupSwaggerRoutes exposes swagger documentation outside of production.
func setupSwaggerRoutes(router *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/"
	swagger := router.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

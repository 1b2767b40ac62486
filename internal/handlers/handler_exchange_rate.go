package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/avkarpov/currency_exchange_app/internal/core/ports/services"
	"github.com/avkarpov/currency_exchange_app/internal/dto"
	"github.com/avkarpov/currency_exchange_app/internal/middleware"
)

// ExchangeRateHandler handles HTTP requests related to exchange rates.
type ExchangeRateHandler struct {
	rateService portssvc.ExchangeRateSvcFacade
}

// NewExchangeRateHandler creates a new ExchangeRateHandler instance.
func NewExchangeRateHandler(service portssvc.ExchangeRateSvcFacade) *ExchangeRateHandler {
	return &ExchangeRateHandler{rateService: service}
}

// ListExchangeRates godoc
// @Summary List exchange rates
// @Description Get all stored exchange rates
// @Tags exchange-rates
// @Produce json
// @Success 200 {array} dto.ExchangeRateResponse
// @Failure 500 {object} handlers.errorResponse
// @Router /exchangeRates [get]
func (h *ExchangeRateHandler) ListExchangeRates(c *gin.Context) {
	rates, err := h.rateService.ListExchangeRates(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListExchangeRateResponse(rates))
}

// GetExchangeRate godoc
// @Summary Get exchange rate
// @Description Get the stored rate for a concatenated currency pair (e.g. USDEUR)
// @Tags exchange-rates
// @Produce json
// @Param pair path string true "Concatenated currency pair (e.g. USDEUR)"
// @Success 200 {object} dto.ExchangeRateResponse
// @Failure 400 {object} handlers.errorResponse
// @Failure 404 {object} handlers.errorResponse
// @Router /exchangeRate/{pair} [get]
func (h *ExchangeRateHandler) GetExchangeRate(c *gin.Context) {
	pair := c.Param("pair")

	rate, err := h.rateService.GetExchangeRate(c.Request.Context(), pair)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToExchangeRateResponse(rate))
}

// CreateExchangeRate godoc
// @Summary Create exchange rate
// @Description Register a new directed exchange rate between two currencies
// @Tags exchange-rates
// @Accept json
// @Accept x-www-form-urlencoded
// @Produce json
// @Param rate body dto.CreateExchangeRateRequest true "Exchange rate to create"
// @Success 201 {object} dto.ExchangeRateResponse
// @Failure 400 {object} handlers.errorResponse
// @Failure 404 {object} handlers.errorResponse
// @Failure 409 {object} handlers.errorResponse
// @Router /exchangeRates [post]
func (h *ExchangeRateHandler) CreateExchangeRate(c *gin.Context) {
	var req dto.CreateExchangeRateRequest
	if err := c.ShouldBind(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	rate, err := h.rateService.CreateExchangeRate(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	middleware.GetLoggerFromContext(c).Info("Exchange rate created",
		slog.String("base", rate.BaseCurrency.Code),
		slog.String("target", rate.TargetCurrency.Code),
		slog.Int64("id", rate.ExchangeRateID))
	c.JSON(http.StatusCreated, dto.ToExchangeRateResponse(rate))
}

// UpdateExchangeRate godoc
// @Summary Update exchange rate
// @Description Overwrite the rate stored for an existing currency pair
// @Tags exchange-rates
// @Accept json
// @Accept x-www-form-urlencoded
// @Produce json
// @Param pair path string true "Concatenated currency pair (e.g. USDEUR)"
// @Param rate body dto.UpdateExchangeRateRequest true "New rate value"
// @Success 200 {object} dto.ExchangeRateResponse
// @Failure 400 {object} handlers.errorResponse
// @Failure 404 {object} handlers.errorResponse
// @Router /exchangeRate/{pair} [patch]
func (h *ExchangeRateHandler) UpdateExchangeRate(c *gin.Context) {
	pair := c.Param("pair")

	var req dto.UpdateExchangeRateRequest
	if err := c.ShouldBind(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	rate, err := h.rateService.UpdateExchangeRate(c.Request.Context(), pair, req.Rate)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToExchangeRateResponse(rate))
}

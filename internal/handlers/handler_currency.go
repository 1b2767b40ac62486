package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/avkarpov/currency_exchange_app/internal/core/ports/services"
	"github.com/avkarpov/currency_exchange_app/internal/dto"
	"github.com/avkarpov/currency_exchange_app/internal/middleware"
)

// CurrencyHandler handles HTTP requests related to currencies.
type CurrencyHandler struct {
	currencyService portssvc.CurrencySvcFacade
}

// NewCurrencyHandler creates a new CurrencyHandler instance.
func NewCurrencyHandler(service portssvc.CurrencySvcFacade) *CurrencyHandler {
	return &CurrencyHandler{currencyService: service}
}

// ListCurrencies godoc
// @Summary List currencies
// @Description Get all registered currencies
// @Tags currencies
// @Produce json
// @Success 200 {array} dto.CurrencyResponse
// @Failure 500 {object} handlers.errorResponse
// @Router /currencies [get]
func (h *CurrencyHandler) ListCurrencies(c *gin.Context) {
	currencies, err := h.currencyService.ListCurrencies(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListCurrencyResponse(currencies))
}

// GetCurrencyByCode godoc
// @Summary Get currency
// @Description Get a single currency by its 3-letter code
// @Tags currencies
// @Produce json
// @Param code path string true "Currency code (e.g. USD)"
// @Success 200 {object} dto.CurrencyResponse
// @Failure 400 {object} handlers.errorResponse
// @Failure 404 {object} handlers.errorResponse
// @Router /currency/{code} [get]
func (h *CurrencyHandler) GetCurrencyByCode(c *gin.Context) {
	code := c.Param("code")

	currency, err := h.currencyService.GetCurrencyByCode(c.Request.Context(), code)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCurrencyResponse(currency))
}

// CreateCurrency godoc
// @Summary Create currency
// @Description Register a new currency
// @Tags currencies
// @Accept json
// @Accept x-www-form-urlencoded
// @Produce json
// @Param currency body dto.CreateCurrencyRequest true "Currency to create"
// @Success 201 {object} dto.CurrencyResponse
// @Failure 400 {object} handlers.errorResponse
// @Failure 409 {object} handlers.errorResponse
// @Router /currencies [post]
func (h *CurrencyHandler) CreateCurrency(c *gin.Context) {
	var req dto.CreateCurrencyRequest
	if err := c.ShouldBind(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	currency, err := h.currencyService.CreateCurrency(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	middleware.GetLoggerFromContext(c).Info("Currency created",
		slog.String("code", currency.Code), slog.Int64("id", currency.CurrencyID))
	c.JSON(http.StatusCreated, dto.ToCurrencyResponse(currency))
}

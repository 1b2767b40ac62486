package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/avkarpov/currency_exchange_app/internal/core/ports/services"
	"github.com/avkarpov/currency_exchange_app/internal/dto"
)

// ExchangeHandler handles currency conversion requests.
type ExchangeHandler struct {
	exchangeService portssvc.ExchangeSvcFacade
}

// NewExchangeHandler creates a new ExchangeHandler instance.
func NewExchangeHandler(service portssvc.ExchangeSvcFacade) *ExchangeHandler {
	return &ExchangeHandler{exchangeService: service}
}

// CalculateExchange godoc
// @Summary Convert an amount between currencies
// @Description Convert amount from one currency to another using the best available rate (direct, inverse or cross through the reference currency)
// @Tags exchange
// @Produce json
// @Param from query string true "Source currency code (e.g. USD)"
// @Param to query string true "Target currency code (e.g. EUR)"
// @Param amount query string true "Amount to convert"
// @Success 200 {object} dto.ExchangeResponse
// @Failure 400 {object} handlers.errorResponse
// @Failure 404 {object} handlers.errorResponse
// @Router /exchange [get]
func (h *ExchangeHandler) CalculateExchange(c *gin.Context) {
	from := c.Query("from")
	to := c.Query("to")
	amount := c.Query("amount")

	conversion, err := h.exchangeService.CalculateExchange(c.Request.Context(), from, to, amount)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToExchangeResponse(conversion))
}

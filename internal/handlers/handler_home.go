package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HomeHandler serves the root and health endpoints.
type HomeHandler struct{}

// NewHomeHandler creates a new HomeHandler instance.
func NewHomeHandler() *HomeHandler {
	return &HomeHandler{}
}

// Home godoc
// @Summary Service banner
// @Tags misc
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func (h *HomeHandler) Home(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"service": "currency exchange api"})
}

// Health godoc
// @Summary Health check
// @Tags misc
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (h *HomeHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

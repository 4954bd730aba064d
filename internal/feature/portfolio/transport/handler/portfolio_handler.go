// Package handler provides HTTP handlers for the portfolio feature.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amyzliao/finance/internal/feature/portfolio/usecase"
	jwtmw "github.com/amyzliao/finance/internal/platform/jwt"
)

// PortfolioUsecase defines the valuation operation used by the handler.
type PortfolioUsecase interface {
	Valuation(ctx context.Context, accountID uint) (*usecase.Valuation, error)
}

// PortfolioHandler handles HTTP requests for the portfolio view.
type PortfolioHandler struct {
	portfolio PortfolioUsecase
}

// NewPortfolioHandler creates a new instance of PortfolioHandler.
func NewPortfolioHandler(portfolio PortfolioUsecase) *PortfolioHandler {
	return &PortfolioHandler{portfolio: portfolio}
}

// Get handles GET /portfolio. Any failure, including a quote lookup
// failure for a held symbol, fails the whole request.
func (h *PortfolioHandler) Get(c *gin.Context) {
	v, err := h.portfolio.Valuation(c.Request.Context(), c.GetUint(jwtmw.ContextUserID))
	if err != nil {
		slog.Error("portfolio valuation failed", "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "portfolio valuation failed"})
		return
	}
	c.JSON(http.StatusOK, v)
}

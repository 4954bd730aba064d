// Package router assembles the HTTP route table.
package router

import (
	"github.com/gin-gonic/gin"

	authhandler "github.com/amyzliao/finance/internal/feature/auth/transport/handler"
	portfoliohandler "github.com/amyzliao/finance/internal/feature/portfolio/transport/handler"
	quotehandler "github.com/amyzliao/finance/internal/feature/quote/transport/handler"
	tradinghandler "github.com/amyzliao/finance/internal/feature/trading/transport/handler"
	platformhandler "github.com/amyzliao/finance/internal/platform/http/handler"
	jwtmw "github.com/amyzliao/finance/internal/platform/jwt"
)

// NewRouter builds the Gin engine with the public auth endpoints and the
// JWT-protected trading routes.
func NewRouter(auth *authhandler.AuthHandler, quote *quotehandler.QuoteHandler,
	trading *tradinghandler.TradingHandler, portfolio *portfoliohandler.PortfolioHandler) *gin.Engine {
	r := gin.Default()

	// No authentication required
	r.GET("/healthz", platformhandler.Health)
	r.POST("/signup", auth.Signup)
	r.POST("/login", auth.Login)

	// Everything below requires a valid bearer token
	protected := r.Group("/")
	protected.Use(jwtmw.AuthRequired())
	{
		protected.GET("/portfolio", portfolio.Get)
		protected.GET("/quote/:symbol", quote.Get)
		protected.POST("/buy", trading.Buy)
		protected.POST("/sell", trading.Sell)
		protected.POST("/cash", trading.Cash)
		protected.GET("/history", trading.History)
	}

	return r
}

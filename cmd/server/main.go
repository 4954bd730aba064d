package main

import (
	"log"
	"os"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"github.com/amyzliao/finance/internal/app/di"
	"github.com/amyzliao/finance/internal/app/router"
	authadapters "github.com/amyzliao/finance/internal/feature/auth/adapters"
	authhandler "github.com/amyzliao/finance/internal/feature/auth/transport/handler"
	authusecase "github.com/amyzliao/finance/internal/feature/auth/usecase"
	portfoliohandler "github.com/amyzliao/finance/internal/feature/portfolio/transport/handler"
	portfoliousecase "github.com/amyzliao/finance/internal/feature/portfolio/usecase"
	quotehandler "github.com/amyzliao/finance/internal/feature/quote/transport/handler"
	quoteusecase "github.com/amyzliao/finance/internal/feature/quote/usecase"
	tradingadapters "github.com/amyzliao/finance/internal/feature/trading/adapters"
	tradinghandler "github.com/amyzliao/finance/internal/feature/trading/transport/handler"
	tradingusecase "github.com/amyzliao/finance/internal/feature/trading/usecase"
	infradb "github.com/amyzliao/finance/internal/platform/db"
	jwtmw "github.com/amyzliao/finance/internal/platform/jwt"
	infraredis "github.com/amyzliao/finance/internal/platform/redis"
)

func main() {
	// db
	db := infradb.OpenDB()

	// Redis (optional; quote lookups skip the cache without it)
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Running without quote cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// JWT
	secret := os.Getenv(jwtmw.EnvKeyJWTSecret)
	if secret == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}
	tokens := jwtmw.NewGenerator(secret, 24*time.Hour)

	// Repositories and the quote source
	accountRepo := authadapters.NewAccountGorm(db)
	ledgerRepo := tradingadapters.NewLedgerGorm(db)
	quotes := di.NewQuoteProvider(rdb)

	// Usecases
	authUC := authusecase.NewAuthUsecase(accountRepo, tokens)
	quoteUC := quoteusecase.NewQuoteUsecase(quotes)
	tradingUC := tradingusecase.NewTradingUsecase(ledgerRepo, quotes)
	portfolioUC := portfoliousecase.NewPortfolioUsecase(ledgerRepo, accountRepo, quotes)

	// Handlers
	authH := authhandler.NewAuthHandler(authUC)
	quoteH := quotehandler.NewQuoteHandler(quoteUC)
	tradingH := tradinghandler.NewTradingHandler(tradingUC)
	portfolioH := portfoliohandler.NewPortfolioHandler(portfolioUC)

	r := router.NewRouter(authH, quoteH, tradingH, portfolioH)

	if err := r.Run(":8080"); err != nil {
		log.Fatal(err)
	}
}

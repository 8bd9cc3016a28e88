package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/grupyedi/cinema-webservice/internal/config"
	"github.com/grupyedi/cinema-webservice/internal/database"
	"github.com/grupyedi/cinema-webservice/internal/handler"
	"github.com/grupyedi/cinema-webservice/internal/middleware"
	"github.com/grupyedi/cinema-webservice/internal/queue"
	"github.com/grupyedi/cinema-webservice/internal/repository"
	"github.com/grupyedi/cinema-webservice/internal/router"
	"github.com/grupyedi/cinema-webservice/internal/service"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	movies := repository.NewMovieRepo(db)
	genres := repository.NewGenreRepo(db)
	saloons := repository.NewSaloonRepo(db)
	sessions := repository.NewMovieSessionRepo(db)
	tickets := repository.NewTicketRepo(db)
	users := repository.NewUserRepo(db)
	purchases := repository.NewPurchaseRepo(db)

	browse := handler.NewBrowseHandler(movies, genres, saloons, sessions, tickets)
	user := handler.NewUserHandler(users, purchases)
	purchase := handler.NewPurchaseHandler(tickets, users, sessions, purchases, service.PublishTicketPurchased)

	e := echo.New()
	e.HideBanner = true

	// Redis is optional infrastructure: a nil client turns both
	// middleware into pass-throughs.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable; response cache and rate limiting disabled")
	}
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
	cacheMW := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)

	router.RegisterRoutes(e, browse, user, purchase, cacheMW)

	go queue.StartPurchaseConsumer()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}

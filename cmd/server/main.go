package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/farazfarwa/fashionhub/internal/config"
	"github.com/farazfarwa/fashionhub/internal/database"
	"github.com/farazfarwa/fashionhub/internal/handler"
	"github.com/farazfarwa/fashionhub/internal/middleware"
	"github.com/farazfarwa/fashionhub/internal/queue"
	"github.com/farazfarwa/fashionhub/internal/repository"
	"github.com/farazfarwa/fashionhub/internal/router"
	"github.com/farazfarwa/fashionhub/internal/service"
)

func main() {
	_ = godotenv.Load() // .env is optional
	cfg := config.Load()

	db, err := database.Connect(cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		if db == nil {
			log.Fatalf("mongodb: invalid configuration: %v", err)
		}
		// An unreachable database does not halt the process: requests fail
		// individually until it comes back.
		log.Printf("mongodb: connect failed: %v (continuing; data operations will fail)", err)
	} else {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if ierr := repository.NewUserRepo(db).EnsureIndexes(ctx); ierr != nil {
			log.Printf("mongodb: ensure indexes: %v", ierr)
		}
		if serr := repository.Seed(ctx, db, cfg.BcryptCost); serr != nil {
			log.Printf("mongodb: seed sample data: %v", serr)
		}
		cancel()
	}

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis: unavailable; response caching disabled")
	}
	cacheMW := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)

	var events handler.OrderEvents
	if cfg.EventsEnabled {
		events = service.OrderPublisher{}
		go queue.StartOrderConsumer()
	}

	users := repository.NewUserRepo(db)
	categories := repository.NewCategoryRepo(db)
	products := repository.NewProductRepo(db)
	orders := repository.NewOrderRepo(db)
	transactions := repository.NewTransactionRepo(db)
	contact := repository.NewContactRepo(db)
	stats := repository.NewStatsRepo(db)

	api := router.API{
		Auth:         handler.NewAuthHandler(users, cfg.BcryptCost),
		Users:        handler.NewUserHandler(users),
		Categories:   handler.NewCategoryHandler(categories, products),
		Products:     handler.NewProductHandler(products),
		Orders:       handler.NewOrderHandler(orders, events),
		Transactions: handler.NewTransactionHandler(transactions),
		Contact:      handler.NewContactHandler(contact),
		Analytics:    handler.NewAnalyticsHandler(stats),
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Logger(), echomw.Recover(), echomw.CORS())
	router.Register(e, api, cacheMW)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}

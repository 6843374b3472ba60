package main

import (
	"database/sql"
	"log"
	"time"

	"firebase.google.com/go/messaging"
	"github.com/redis/go-redis/v9"

	"auctionBack/internal/config"
	"auctionBack/internal/handlers"
	"auctionBack/internal/repositories"
	"auctionBack/internal/services"
	"auctionBack/utils"
)

type application struct {
	errorLog       *log.Logger
	infoLog        *log.Logger
	tokenManager   *utils.Manager
	accessTTL      time.Duration
	userRepo       *repositories.UserRepository
	userService    *services.UserService
	auctionService *services.AuctionService
	userHandler    *handlers.UserHandler
	itemHandler    *handlers.ItemHandler
	auctionHandler *handlers.AuctionHandler
	fcmHandler     *handlers.FCMHandler
	wsManager      *WebSocketManager
}

func initializeApp(cfg config.Config, db *sql.DB, redisClient *redis.Client, fcmClient *messaging.Client, errorLog, infoLog *log.Logger) *application {
	tokenManager, err := utils.NewManager(cfg.Auth.SigningKey)
	if err != nil {
		errorLog.Fatal(err)
	}
	accessTTL := time.Duration(cfg.Auth.AccessTTLMin) * time.Minute
	refreshTTL := time.Duration(cfg.Auth.RefreshTTLHours) * time.Hour

	// Repositories
	userRepo := &repositories.UserRepository{DB: db}
	itemRepo := &repositories.ItemRepository{DB: db}
	bidRepo := &repositories.BidRepository{DB: db}
	participantRepo := &repositories.ParticipantRepository{DB: db}
	notifyTokenRepo := &repositories.NotifyTokenRepository{DB: db}

	// Services
	notifyService := &services.NotifyService{
		Client:    fcmClient,
		TokenRepo: notifyTokenRepo,
		ErrorLog:  errorLog,
	}
	userService := &services.UserService{
		UserRepo:     userRepo,
		TokenManager: tokenManager,
		AccessTTL:    accessTTL,
		RefreshTTL:   refreshTTL,
	}
	itemService := &services.ItemService{
		ItemRepo: itemRepo,
		UserRepo: userRepo,
	}
	auctionService := &services.AuctionService{
		DB:              db,
		ItemRepo:        itemRepo,
		BidRepo:         bidRepo,
		ParticipantRepo: participantRepo,
		UserRepo:        userRepo,
		Notifier:        notifyService,
		InfoLog:         infoLog,
		ErrorLog:        errorLog,
	}
	priceSuggestService := &services.PriceSuggestService{
		ItemRepo: itemRepo,
		Redis:    redisClient,
		ErrorLog: errorLog,
	}

	storage := utils.NewStorage(
		cfg.Storage.AccessKey,
		cfg.Storage.SecretKey,
		cfg.Storage.Bucket,
		cfg.Storage.Region,
		cfg.Storage.Endpoint,
	)

	wsManager := NewWebSocketManager()

	app := &application{
		errorLog:       errorLog,
		infoLog:        infoLog,
		tokenManager:   tokenManager,
		accessTTL:      accessTTL,
		userRepo:       userRepo,
		userService:    userService,
		auctionService: auctionService,
		wsManager:      wsManager,
	}

	app.userHandler = &handlers.UserHandler{Service: userService}
	app.itemHandler = &handlers.ItemHandler{
		Service:      itemService,
		PriceSuggest: priceSuggestService,
		Storage:      storage,
	}
	app.auctionHandler = &handlers.AuctionHandler{
		Service:     auctionService,
		UserService: userService,
		Broadcaster: wsManager,
	}
	app.fcmHandler = &handlers.FCMHandler{Service: notifyService}

	return app
}

package app

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"tush00nka/studybud/internal/config"
	"tush00nka/studybud/internal/handler"
	"tush00nka/studybud/internal/pkg/auth"
	"tush00nka/studybud/internal/pkg/metrics"
	"tush00nka/studybud/internal/repository"
	"tush00nka/studybud/internal/service"
	"tush00nka/studybud/internal/ws"

	"gorm.io/gorm/logger"
)

func Run(cfg *config.Config) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logLevel := logger.Warn
	if cfg.IsDevelopment() {
		logLevel = logger.Info
	}

	db, err := repository.NewDB(cfg.DBDriver, cfg.DSN(), logLevel)
	if err != nil {
		log.Fatal(err)
	}
	if err := repository.Migrate(db); err != nil {
		log.Fatal(err)
	}

	rdb, err := repository.NewRedis(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		log.Fatal(err)
	}
	defer rdb.Close()

	var avatars service.AvatarStorage
	if cfg.AvatarsEnabled() {
		s3Service, err := service.NewS3Service(ctx, cfg)
		if err != nil {
			log.Fatal(err)
		}
		if err := s3Service.HealthCheck(ctx); err != nil {
			log.Printf("app: avatar storage is not reachable yet: %v", err)
		}
		avatars = s3Service
	} else {
		log.Println("app: S3_BUCKET_NAME is not set, avatar uploads are disabled")
	}

	hub := ws.NewHub()
	defer hub.Shutdown()

	userRepo := repository.NewUserRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	topicRepo := repository.NewTopicRepository(db)
	messageRepo := repository.NewMessageRepository(db)
	tokenRepo := repository.NewTokenRepository(rdb)

	userService := service.NewUserService(userRepo, avatars)
	roomService := service.NewRoomService(roomRepo, topicRepo, hub)
	messageService := service.NewMessageService(messageRepo, roomRepo, hub)
	topicService := service.NewTopicService(topicRepo)
	sessions := service.NewSessionService(auth.NewTokenManager(cfg.JWTKey, cfg.TokenTTL), tokenRepo, userRepo)

	server := NewServer(Handlers{
		Auth:    handler.NewAuthMiddleware(sessions),
		User:    handler.NewUserHandler(userService, roomService, messageService, topicService, sessions, !cfg.IsDevelopment()),
		Room:    handler.NewRoomHandler(roomService, messageService, topicService),
		Message: handler.NewMessageHandler(messageService),
		API:     handler.NewAPIHandler(roomService),
		Feed:    handler.NewFeedHandler(roomService, hub, ws.NewUpgrader(cfg.AllowedOrigins(), cfg.IsDevelopment())),
		Metrics: metrics.New(hub),
	}, cfg.AllowedOrigins())

	if err := server.Run(ctx, cfg.ServerPort); err != nil {
		log.Fatal(err)
	}
}

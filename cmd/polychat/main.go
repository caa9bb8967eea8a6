package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	"polychat/config"
	chatRepository "polychat/internal/chat/repository"
	chatUsecase "polychat/internal/chat/usecase"
	"polychat/internal/server"
	"polychat/internal/translation"
	userRepository "polychat/internal/user/repository"
	userUsecase "polychat/internal/user/usecase"
	"polychat/pkg/logger"
)

func main() {
	_ = godotenv.Load() // ok if missing in prod

	v, err := config.LoadConfig("config")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	cfg, err := config.ParseConfig(v)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		cfg.Bun.DSN = dsn
	}
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		cfg.JWT.Secret = secret
	}

	appLogger, err := logger.NewLogger(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}

	connector := pgdriver.NewConnector(pgdriver.WithDSN(cfg.Bun.DSN))
	sqlDB := sql.OpenDB(connector)
	db := bun.NewDB(sqlDB, pgdialect.New())
	defer db.Close()

	if err := sqlDB.PingContext(context.Background()); err != nil {
		log.Fatalf("failed to ping db: %v", err)
	}

	userRepo := userRepository.NewUserRepository(db, *appLogger)
	chatRepo := chatRepository.NewChatRepository(db, *appLogger)
	translator := translation.NewClient(cfg.Translator)

	users := userUsecase.NewUserUsecase(userRepo, *appLogger, *cfg)
	chats := chatUsecase.NewChatUsecase(chatRepo, userRepo, translator, *appLogger, *cfg)

	srv := server.NewServer(cfg, appLogger, users, chats)
	httpServer := srv.HTTPServer()

	appLogger.Info("polychat listening", "port", cfg.Server.Port, "env", cfg.Server.Environment)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("listen: %v", err)
	}
}

package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"candela/internal/auth"
	"candela/internal/cart"
	"candela/internal/catalog"
	"candela/internal/client"
	"candela/internal/commons"
	"candela/internal/config"
	"candela/internal/infrastructure/logger"
	"candela/internal/infrastructure/mysql"
	"candela/internal/order"
	"candela/internal/server"
)

func main() {
	_ = godotenv.Load()

	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	db, err := mysql.NewConnection(cfg.Database)
	if err != nil {
		zapLogger.Fatal("connecting to database", zap.Error(err))
	}
	defer db.Close()
	zapLogger.Info("database connected")

	carts := cart.NewStore(decimal.NewFromFloat(cfg.Tax.Rate))

	catalogCtrl, catalogSvc := catalog.NewModule(db, zapLogger)
	orderCtrl := order.NewModule(db, carts, zapLogger)
	clientCtrl := client.NewController(client.NewMySQLRepository(db), zapLogger)
	cartCtrl := cart.NewController(carts, catalogSvc, cfg.Auth.CartHeader, zapLogger)

	identity := auth.NewHTTPIdentityProvider(cfg.Auth.IdentityURL)
	authMiddleware := auth.Middleware(identity, cfg.Auth.TokenHeader, zapLogger)

	router := server.NewRouter(catalogCtrl, orderCtrl, clientCtrl, cartCtrl, authMiddleware, zapLogger)

	srv := server.New(cfg.Server.Port, router, zapLogger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			zapLogger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit
	zapLogger.Info("received shutdown signal")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Fatal("server shutdown failed", zap.Error(err))
	}

	zapLogger.Info("server stopped gracefully")
}

func loadConfig() (*config.Config, error) {
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		return commons.LoadConfigFile(path)
	}
	return config.Load()
}

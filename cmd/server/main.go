package main

import (
	"PassKeeper/internal/config"
	"PassKeeper/internal/crypto"
	"PassKeeper/internal/handlers"
	"PassKeeper/internal/middleware"
	"PassKeeper/internal/repo"
	"PassKeeper/internal/service"
	"PassKeeper/internal/token"
	"encoding/hex"
	"net/http"

	"go.uber.org/zap"
)

func main() {
	cfg := config.NewConfig()

	// создаём предустановленный регистратор zap
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}

	// делаем регистратор SugaredLogger
	sugar := logger.Sugar()
	middleware.SetLogger(sugar) // передаём логгер в middleware
	//сброс буфера логгера
	defer func() {
		if err := logger.Sync(); err != nil {
			sugar.Errorw("Failed to sync logger", "error", err)
		}
	}()

	// секрет подписи и ключ шифрования обязательны: без них не стартуем
	if cfg.AuthSecret == "" {
		sugar.Fatalw("AUTH_SECRET is required")
	}
	key, err := hex.DecodeString(cfg.VaultKeyHex)
	if err != nil {
		sugar.Fatalw("VAULT_KEY must be valid hex", "error", err)
	}
	vaultCipher, err := crypto.NewCipher(key)
	if err != nil {
		sugar.Fatalw("invalid vault key", "error", err)
	}

	gormDB, err := repo.InitDB(cfg.DatabaseDSN)
	if err != nil {
		sugar.Fatalw("failed to initialize database", "error", err)
	}

	tm := token.NewManager(cfg.AuthSecret, cfg.TokenTTL)

	userRepo := repo.NewUserRepository(gormDB)
	userService := service.NewUserService(userRepo, cfg.BcryptCost)

	entryRepo := repo.NewEntryRepository(gormDB)
	vaultService := service.NewVaultService(entryRepo, vaultCipher, sugar)

	h := handlers.NewHandler(userService, vaultService, tm, sugar, cfg)

	addr := cfg.BaseURL

	sugar.Infow(
		"Starting server",
		"addr", addr,
	)

	sugar.Infow("Config",
		"BaseURL", cfg.BaseURL,
		"EnableHTTPS", cfg.EnableHTTPS,
		"TokenTTL", cfg.TokenTTL,
	)

	if err := http.ListenAndServe(addr, h.Router); err != nil {
		sugar.Fatalw("Server failed", "error", err)
	}
}

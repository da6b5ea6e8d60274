package main

import (
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"perm-engine/internal/config"
	"perm-engine/internal/handler"
	"perm-engine/internal/log"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		panic(err)
	}

	lvl, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		lvl = zapcore.InfoLevel
	}
	logger := log.InitLog(zap.NewAtomicLevelAt(lvl))
	defer logger.Sync()

	logger.Info("PERM engine starting", zap.String("address", cfg.Address))
	if err := fasthttp.ListenAndServe(cfg.Address, handler.New(logger)); err != nil {
		logger.Fatal("Server failed", zap.Error(err))
	}
}

package main

import (
	"context"
	"invoicer/internal/config"
	"invoicer/internal/pdf"
	mainServer "invoicer/internal/server"
	"log"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer cancel()

	l, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("error on create logger: %v", err)
	}
	logger := l.Sugar()
	defer logger.Sync()

	cnfg, err := config.NewConfig()
	if err != nil {
		logger.Fatalf("failed to parse config, %v", err)
	}
	logger.Debug(cnfg)

	engine := pdf.NewChromeEngine(cnfg.MaxRenders)
	mainServer.Run(engine, cnfg, logger, ctx)
}

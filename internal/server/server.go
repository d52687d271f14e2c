package server

import (
	"context"
	"errors"
	"net/http"

	"invoicer/internal/config"
	"invoicer/internal/invoice"
	"invoicer/internal/pdf"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"go.uber.org/zap"
)

func Run(renderer pdf.Renderer, cfg *config.Config, logger *zap.SugaredLogger, ctx context.Context) {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	invoiceHandler := invoice.NewHandler(renderer, cfg.LogoFile, cfg.RenderTimeout, logger)

	r.Post("/generate-pdf-invoice", invoiceHandler.GeneratePDF)

	server := &http.Server{Addr: cfg.Address, Handler: r}

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("server start error: %v", err)
		}
	}()
	logger.Info("server started successfuly")

	<-ctx.Done()
	logger.Info("get stop signal, start shutdown server")
	if err := server.Shutdown(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatalf("Server Shutdown Failed:%v", err)
	} else {
		logger.Info("server stopped successfully")
	}
}

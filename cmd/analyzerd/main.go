package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/docutrack/analyzer/internal/analysis"
	"github.com/docutrack/analyzer/internal/common"
	"github.com/docutrack/analyzer/internal/fetch"
	"github.com/docutrack/analyzer/internal/llm"
	"github.com/docutrack/analyzer/internal/llm/openai"
	"github.com/docutrack/analyzer/internal/processor"
	"github.com/docutrack/analyzer/internal/server"
)

func main() {
	_ = godotenv.Load()

	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(log)

	cfg := common.LoadConfig()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Fetch stage
	ocr := fetch.NewOCRClient(cfg.OCR, log)
	fetcher := fetch.NewFetcher(cfg.Fetch, fetch.NewPDFExtractor(), ocr, log)

	// Analysis stages
	extractive := analysis.NewAnalyzer(analysis.Config{
		MinSentenceWords:    cfg.Analysis.MinSentenceWords,
		MaxSummarySentences: cfg.Analysis.MaxSummarySentences,
		MaxKeyPoints:        cfg.Analysis.MaxKeyPoints,
		MaxActions:          cfg.Analysis.MaxActions,
	}, log)

	var backend llm.CompletionBackend
	if cfg.LLM.APIKey != "" {
		backend = openai.NewClient(openai.Config{
			APIKey:  cfg.LLM.APIKey,
			BaseURL: cfg.LLM.BaseURL,
			Model:   cfg.LLM.Model,
			Timeout: cfg.LLM.Timeout,
		}, log)
		log.Info("main.llm.enabled", "model", cfg.LLM.Model)
	} else {
		log.Info("main.llm.disabled", "reason", "no api key, extractive only")
	}
	analyzer := llm.NewAnalyzer(backend, extractive, cfg.LLM, log)

	p := processor.NewProcessor(log, fetcher, analyzer)
	svc := server.NewService(log, p, extractive, cfg.Server)

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: svc.Router(),
	}

	go func() {
		log.Info("main.http.serving", "addr", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("main.http.serve", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("main.shutdown.start")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("main.shutdown.error", "error", err)
		os.Exit(1)
	}
	log.Info("main.shutdown.done")
}

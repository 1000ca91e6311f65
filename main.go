package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/danielhkuo/hexaco-protocol/checkout"
	"github.com/danielhkuo/hexaco-protocol/cliparse"
	"github.com/danielhkuo/hexaco-protocol/middleware"
	"github.com/danielhkuo/hexaco-protocol/narrative"
	"github.com/danielhkuo/hexaco-protocol/questions"
	"github.com/danielhkuo/hexaco-protocol/router"
	"github.com/danielhkuo/hexaco-protocol/session"
)

func main() {
	var err error

	// Load .env if present; environment variables win over flags' defaults
	_ = godotenv.Load()

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Load and verify the question bank
	bank := questions.Default()
	if err := bank.Validate(); err != nil {
		slog.Error("question bank is inconsistent", "error", err)
		os.Exit(1)
	}
	slog.Info("Question bank ready", "items", len(bank.Items()))

	// In-memory session store
	store := session.NewStore()

	// Narrative generation: Gemini when a key is configured, otherwise the
	// deterministic fallback text
	var gen narrative.Generator
	if cfg.GeminiAPIKey != "" {
		gemini, err := narrative.NewGeminiGenerator(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			slog.Error("gemini client creation failed", "error", err)
			os.Exit(1)
		}
		gen = gemini
	} else {
		slog.Warn("GEMINI_API_KEY not set; premium analysis uses fallback text")
	}
	narrativeSvc := narrative.NewService(gen)

	// Hosted checkout client
	if cfg.StripeSecretKey == "" {
		slog.Warn("STRIPE_SECRET_KEY not set; checkout requests will fail")
	}
	checkoutClient := checkout.NewClient(checkout.Config{
		SecretKey: cfg.StripeSecretKey,
		Origin:    cfg.PublicOrigin,
		Prices:    cfg.PriceIDs(),
	})

	// Create router
	mux := router.NewRouter(bank, store, cfg, checkoutClient, narrativeSvc)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/hexaco-protocol/checkout"
	"github.com/danielhkuo/hexaco-protocol/cliparse"
	"github.com/danielhkuo/hexaco-protocol/handlers"
	"github.com/danielhkuo/hexaco-protocol/middleware"
	"github.com/danielhkuo/hexaco-protocol/narrative"
	"github.com/danielhkuo/hexaco-protocol/questions"
	"github.com/danielhkuo/hexaco-protocol/session"
)

func NewRouter(bank *questions.Bank, store *session.Store, cfg cliparse.Config, checkoutClient *checkout.Client, narrativeSvc *narrative.Service) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	bankHandler := handlers.NewBankHandler(bank)
	sessionHandler := handlers.NewSessionHandler(store, bank, cfg)
	resultsHandler := handlers.NewResultsHandler(store, bank, cfg)
	checkoutHandler := handlers.NewCheckoutHandler(store, checkoutClient)
	analysisHandler := handlers.NewAnalysisHandler(store, bank, cfg, narrativeSvc)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Question bank (static)
	mux.HandleFunc("GET /questions", middleware.WithLogging(bankHandler.GetQuestions))

	// Session lifecycle
	mux.HandleFunc("POST /sessions", middleware.WithLogging(sessionHandler.StartSession))
	mux.HandleFunc("POST /sessions/resume", middleware.WithLogging(sessionHandler.Resume))
	mux.HandleFunc("GET /sessions/{id}", middleware.WithLogging(sessionHandler.GetSession))
	mux.HandleFunc("POST /sessions/{id}/answers", middleware.WithLogging(sessionHandler.SubmitAnswer))
	mux.HandleFunc("POST /sessions/{id}/back", middleware.WithLogging(sessionHandler.GoBack))
	mux.HandleFunc("POST /sessions/{id}/restart", middleware.WithLogging(sessionHandler.Restart))

	// Results and paywall
	mux.HandleFunc("GET /sessions/{id}/results", middleware.WithLogging(resultsHandler.GetResults))
	mux.HandleFunc("POST /sessions/{id}/paywall", middleware.WithLogging(resultsHandler.ShowPaywall))
	mux.HandleFunc("POST /sessions/{id}/unlock", middleware.WithLogging(resultsHandler.Unlock))

	// Checkout collaborator
	mux.HandleFunc("POST /sessions/{id}/checkout", middleware.WithLogging(checkoutHandler.CreateCheckout))

	// Premium narrative
	mux.HandleFunc("GET /sessions/{id}/analysis", middleware.WithLogging(analysisHandler.GetAnalysis))
	mux.HandleFunc("GET /sessions/{id}/analysis/export", middleware.WithLogging(analysisHandler.ExportAnalysis))
	mux.HandleFunc("GET /sessions/{id}/analysis/share", middleware.WithLogging(analysisHandler.ShareAnalysis))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("hexaco-protocol API v1"))
	})

	return mux
}

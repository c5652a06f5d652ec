package api

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/transaction-analyzer/internal/assets"
	"github.com/carson-networks/transaction-analyzer/internal/handlers/api/analysis"
	"github.com/carson-networks/transaction-analyzer/internal/handlers/api/health"
	"github.com/carson-networks/transaction-analyzer/internal/handlers/api/transaction"
	"github.com/carson-networks/transaction-analyzer/internal/logging"
	"github.com/carson-networks/transaction-analyzer/internal/service"
)

type Rest struct {
	Logger  *logrus.Logger
	Port    string
	Service *service.Service
	Assets  assets.Store
}

// Handler assembles the full routing table. Ordered, first match wins: the
// typed API operations, the explicit asset routes, then the fallback cascade
// (static extensions, API 404, SPA shell). Exposed separately from Serve so
// tests can drive it without a listener.
func (r *Rest) Handler() http.Handler {
	router := chi.NewRouter()
	router.Use(logging.RequestLogger(r.Logger))

	humaAPI := humachi.New(router, huma.DefaultConfig("transaction-analyzer", health.Version))

	health.NewHandler().Register(humaAPI)
	transaction.NewLookupHandler(r.Service.Transaction).Register(humaAPI)
	transaction.NewListMockHandler(r.Service.Transaction).Register(humaAPI)
	analysis.NewAnalyzeHandler(r.Service.Analysis).Register(humaAPI)

	assetHandler := assets.NewHandler(r.Assets, r.Logger)
	router.Get("/assets/*", assetHandler.ServeAsset)
	router.Get("/favicon.ico", assetHandler.ServeAsset)
	router.Get("/robots.txt", assetHandler.ServeAsset)
	router.NotFound(assetHandler.Fallback)

	return router
}

func (r *Rest) Serve() {
	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           r.Handler(),
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(60) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	r.Logger.Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
}

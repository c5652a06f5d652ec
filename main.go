package main

import (
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/transaction-analyzer/api"
	"github.com/carson-networks/transaction-analyzer/internal/assets"
	"github.com/carson-networks/transaction-analyzer/internal/config"
	"github.com/carson-networks/transaction-analyzer/internal/logging"
	"github.com/carson-networks/transaction-analyzer/internal/openai"
	"github.com/carson-networks/transaction-analyzer/internal/service"
	"github.com/carson-networks/transaction-analyzer/internal/storage"
)

func main() {
	logger := logging.SetupLogging()
	logrus.Info("transaction-analyzer starting")

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	store := storage.NewStorage(logger)
	completions := openai.NewClient(envConfig.OpenAIAPIKey, envConfig.OpenAIModel, envConfig.OpenAIMaxTokens)
	svc := service.NewService(store, completions)

	var assetStore assets.Store
	if envConfig.AssetsOrigin != "" {
		assetStore = assets.NewOriginStore(envConfig.AssetsOrigin)
	} else {
		assetStore = assets.NewDirStore(envConfig.AssetsDir)
	}

	httpRest := api.Rest{
		Logger:  logger,
		Port:    envConfig.Port,
		Service: svc,
		Assets:  assetStore,
	}
	httpRest.Serve()
}

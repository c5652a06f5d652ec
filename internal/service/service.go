package service

import (
	"github.com/carson-networks/transaction-analyzer/internal/storage"
)

// Service holds all business logic services.
type Service struct {
	Transaction *TransactionService
	Analysis    *AnalysisService
}

// NewService creates a new Service over the given storage and completion
// client.
func NewService(store *storage.Storage, completions completionClient) *Service {
	return &Service{
		Transaction: NewTransactionService(store),
		Analysis:    NewAnalysisService(completions),
	}
}

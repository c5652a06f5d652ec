package service

import (
	"context"
	"errors"

	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/transaction-analyzer/internal/logging"
	"github.com/carson-networks/transaction-analyzer/internal/storage"
)

// ErrTransactionNotFound means no record in the store matched the requested
// id.
var ErrTransactionNotFound = errors.New("transaction not found")

// TransactionService handles transaction lookup over the mock store.
type TransactionService struct {
	storage *storage.Storage
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(store *storage.Storage) *TransactionService {
	return &TransactionService{storage: store}
}

// Lookup returns the record whose transId equals id exactly. The diagnostic
// log line is informational only; callers branch on the returned error.
func (s *TransactionService) Lookup(ctx context.Context, id string) (*storage.TransactionRecord, error) {
	record := s.storage.Transactions.FindByTransID(id)

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("requestedId", id)
		logData.AddData("found", record != nil)
	}

	if record == nil {
		logrus.WithField("requestedId", id).Info("TransactionService.Lookup.not found")
		return nil, ErrTransactionNotFound
	}

	logrus.WithField("requestedId", id).Debugf("TransactionService.Lookup.found %s", spew.Sdump(record))
	return record, nil
}

// List returns the entire mock dataset.
func (s *TransactionService) List(ctx context.Context) []storage.TransactionRecord {
	records := s.storage.Transactions.All()

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("transactionCount", len(records))
	}

	return records
}

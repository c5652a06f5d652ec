package storage

import (
	_ "embed"
	"encoding/json"

	"github.com/sirupsen/logrus"
)

//go:embed mock_data_transdetails.json
var mockTransDetails []byte

// TransactionReader is the read surface of the transaction table.
type TransactionReader interface {
	FindByTransID(id string) *TransactionRecord
	All() []TransactionRecord
}

type Storage struct {
	Transactions TransactionReader
}

// NewStorage decodes the bundled mock dataset into memory. There is no
// create, update or delete path; the table is immutable for the process
// lifetime.
func NewStorage(logger *logrus.Logger) *Storage {
	records := decodeRecords(mockTransDetails, logger)
	table := NewTransactionsTable(records)

	logger.WithField("transactionCount", len(records)).Info("Storage.NewStorage.loaded")

	return &Storage{
		Transactions: &table,
	}
}

// decodeRecords tolerates a malformed dataset: anything that is not a JSON
// array decodes to an empty table, so lookups report "no match" instead of
// the process failing to start.
func decodeRecords(raw []byte, logger *logrus.Logger) []TransactionRecord {
	var records []TransactionRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		logger.WithError(err).Warn("Storage.decodeRecords.dataset not list-shaped")
		return nil
	}
	return records
}

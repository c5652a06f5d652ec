package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/transaction-analyzer/internal/storage"
)

type mockTransactionReader struct {
	mock.Mock
}

func (m *mockTransactionReader) FindByTransID(id string) *storage.TransactionRecord {
	args := m.Called(id)
	record, _ := args.Get(0).(*storage.TransactionRecord)
	return record
}

func (m *mockTransactionReader) All() []storage.TransactionRecord {
	args := m.Called()
	records, _ := args.Get(0).([]storage.TransactionRecord)
	return records
}

func newTestTransactionService() (*TransactionService, *mockTransactionReader) {
	mockReader := new(mockTransactionReader)
	store := &storage.Storage{Transactions: mockReader}
	return NewTransactionService(store), mockReader
}

func TestLookup_Found(t *testing.T) {
	svc, mockReader := newTestTransactionService()

	expected := &storage.TransactionRecord{TransID: "80033448364", TransactionStatus: "settledSuccessfully"}
	mockReader.On("FindByTransID", "80033448364").Return(expected)

	record, err := svc.Lookup(context.Background(), "80033448364")

	assert.NoError(t, err)
	assert.Equal(t, expected, record)
	mockReader.AssertExpectations(t)
}

func TestLookup_NotFound(t *testing.T) {
	svc, mockReader := newTestTransactionService()

	mockReader.On("FindByTransID", "does-not-exist").Return((*storage.TransactionRecord)(nil))

	record, err := svc.Lookup(context.Background(), "does-not-exist")

	assert.ErrorIs(t, err, ErrTransactionNotFound)
	assert.Nil(t, record)
	mockReader.AssertExpectations(t)
}

func TestList_ReturnsDataset(t *testing.T) {
	svc, mockReader := newTestTransactionService()

	dataset := []storage.TransactionRecord{
		{TransID: "80033448364"},
		{TransID: "80031664953"},
	}
	mockReader.On("All").Return(dataset)

	records := svc.List(context.Background())

	assert.Equal(t, dataset, records)
	mockReader.AssertExpectations(t)
}

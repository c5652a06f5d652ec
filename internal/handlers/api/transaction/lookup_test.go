package transaction

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/transaction-analyzer/internal/service"
	"github.com/carson-networks/transaction-analyzer/internal/storage"
)

type mockTransactionLookup struct {
	mock.Mock
}

func (m *mockTransactionLookup) Lookup(ctx context.Context, id string) (*storage.TransactionRecord, error) {
	args := m.Called(ctx, id)
	record, _ := args.Get(0).(*storage.TransactionRecord)
	return record, args.Error(1)
}

func newLookupTestAPI(t *testing.T, svc transactionLookup) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewLookupHandler(svc).Register(api)
	return api
}

func TestHTTP_Lookup_Found(t *testing.T) {
	authAmount := 156.78
	record := &storage.TransactionRecord{
		TransID:           "80033448364",
		TransactionStatus: "settledSuccessfully",
		AuthAmount:        &authAmount,
		ResponseCode:      "1",
	}

	mockSvc := new(mockTransactionLookup)
	mockSvc.On("Lookup", mock.Anything, "80033448364").Return(record, nil)

	resp := newLookupTestAPI(t, mockSvc).Get("/api/transaction/80033448364")

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "no-store, no-cache, must-revalidate", resp.Header().Get("Cache-Control"))
	assert.Equal(t, "no-cache", resp.Header().Get("Pragma"))
	assert.Equal(t, "0", resp.Header().Get("Expires"))

	var body map[string]interface{}
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "80033448364", body["transId"])
	assert.Equal(t, "settledSuccessfully", body["transactionStatus"])
	assert.NotContains(t, body, "error")

	debug, ok := body["debug"].(map[string]interface{})
	if assert.True(t, ok) {
		assert.Equal(t, "80033448364", debug["requestedId"])
		assert.Equal(t, "80033448364", debug["found"])
	}
	mockSvc.AssertExpectations(t)
}

func TestHTTP_Lookup_NotFound(t *testing.T) {
	mockSvc := new(mockTransactionLookup)
	mockSvc.On("Lookup", mock.Anything, "does-not-exist").
		Return((*storage.TransactionRecord)(nil), service.ErrTransactionNotFound)

	resp := newLookupTestAPI(t, mockSvc).Get("/api/transaction/does-not-exist")

	assert.Equal(t, http.StatusNotFound, resp.Code)
	assert.Equal(t, "no-store, no-cache, must-revalidate", resp.Header().Get("Cache-Control"))
	assert.Equal(t, "no-cache", resp.Header().Get("Pragma"))
	assert.Equal(t, "0", resp.Header().Get("Expires"))

	var body map[string]interface{}
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Transaction not found", body["error"])
	assert.NotContains(t, body, "transId")

	debug, ok := body["debug"].(map[string]interface{})
	if assert.True(t, ok) {
		assert.Equal(t, "does-not-exist", debug["requestedId"])
		assert.Contains(t, debug, "found")
		assert.Nil(t, debug["found"])
	}
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ListMock(t *testing.T) {
	dataset := []storage.TransactionRecord{
		{TransID: "80033448364", TransactionStatus: "settledSuccessfully"},
		{TransID: "80031664954", TransactionStatus: "declined"},
	}

	mockSvc := new(mockTransactionLister)
	mockSvc.On("List", mock.Anything).Return(dataset)

	_, api := humatest.New(t)
	NewListMockHandler(mockSvc).Register(api)

	resp := api.Get("/api/debug/mock-transactions")

	assert.Equal(t, http.StatusOK, resp.Code)

	var body ListMockResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.MockTransDetails, 2)
	assert.Equal(t, "80033448364", body.MockTransDetails[0].TransID)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ListMock_EmptyStore(t *testing.T) {
	mockSvc := new(mockTransactionLister)
	mockSvc.On("List", mock.Anything).Return(([]storage.TransactionRecord)(nil))

	_, api := humatest.New(t)
	NewListMockHandler(mockSvc).Register(api)

	resp := api.Get("/api/debug/mock-transactions")

	assert.Equal(t, http.StatusOK, resp.Code)

	var body map[string]interface{}
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	records, ok := body["mockTransDetails"].([]interface{})
	if assert.True(t, ok) {
		assert.Empty(t, records)
	}
	mockSvc.AssertExpectations(t)
}

type mockTransactionLister struct {
	mock.Mock
}

func (m *mockTransactionLister) List(ctx context.Context) []storage.TransactionRecord {
	args := m.Called(ctx)
	records, _ := args.Get(0).([]storage.TransactionRecord)
	return records
}

package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/transaction-analyzer/internal/storage"
)

// ListMockResponseBody is the response body for the mock-dataset dump.
type ListMockResponseBody struct {
	MockTransDetails []storage.TransactionRecord `json:"mockTransDetails" doc:"The entire bundled dataset in load order"`
}

// ListMockOutput is the Huma output for the mock-dataset dump.
type ListMockOutput struct {
	Body ListMockResponseBody
}

// transactionLister is the interface for dumping the mock dataset.
type transactionLister interface {
	List(ctx context.Context) []storage.TransactionRecord
}

// ListMockHandler handles GET /api/debug/mock-transactions, a debug endpoint
// for verifying the bundled dataset loaded.
type ListMockHandler struct {
	TransactionService transactionLister
}

// NewListMockHandler creates a new ListMockHandler.
func NewListMockHandler(svc transactionLister) *ListMockHandler {
	return &ListMockHandler{TransactionService: svc}
}

// Register registers the debug endpoint with the Huma API.
func (h *ListMockHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-mock-transactions",
		Method:      http.MethodGet,
		Path:        "/api/debug/mock-transactions",
		Summary:     "Dump the mock dataset",
		Description: "Returns every bundled transaction record. Debug only.",
		Tags:        []string{"Debug"},
	}, h.handle)
}

func (h *ListMockHandler) handle(ctx context.Context, _ *struct{}) (*ListMockOutput, error) {
	records := h.TransactionService.List(ctx)
	if records == nil {
		records = []storage.TransactionRecord{}
	}
	return &ListMockOutput{
		Body: ListMockResponseBody{MockTransDetails: records},
	}, nil
}

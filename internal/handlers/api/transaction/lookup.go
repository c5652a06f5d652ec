package transaction

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/transaction-analyzer/internal/service"
	"github.com/carson-networks/transaction-analyzer/internal/storage"
)

// Lookup responses must never be cached by intermediaries; a stale "not
// found" would mask a record that exists.
const (
	cacheControlValue = "no-store, no-cache, must-revalidate"
	pragmaValue       = "no-cache"
	expiresValue      = "0"
)

// LookupInput is the Huma input for the transaction lookup.
type LookupInput struct {
	ID string `path:"id" doc:"Transaction identifier, matched by exact string equality"`
}

// LookupDebug echoes which id was requested and which record matched.
type LookupDebug struct {
	RequestedID string  `json:"requestedId" doc:"The id the caller asked for"`
	Found       *string `json:"found" doc:"transId of the matched record, null when absent"`
}

// LookupResponseBody is the matched record flattened alongside the debug
// envelope. On a miss the record fields are omitted and Error is set.
type LookupResponseBody struct {
	storage.TransactionRecord
	Error string      `json:"error,omitempty" doc:"Present only on a miss"`
	Debug LookupDebug `json:"debug" doc:"Lookup debug envelope"`
}

// LookupOutput is the Huma output for the transaction lookup.
type LookupOutput struct {
	Status       int
	CacheControl string `header:"Cache-Control"`
	Pragma       string `header:"Pragma"`
	Expires      string `header:"Expires"`
	Body         LookupResponseBody
}

// transactionLookup is the interface for looking up a transaction.
type transactionLookup interface {
	Lookup(ctx context.Context, id string) (*storage.TransactionRecord, error)
}

// LookupHandler handles GET /api/transaction/{id}.
type LookupHandler struct {
	TransactionService transactionLookup
}

// NewLookupHandler creates a new LookupHandler.
func NewLookupHandler(svc transactionLookup) *LookupHandler {
	return &LookupHandler{TransactionService: svc}
}

// Register registers the lookup endpoint with the Huma API.
func (h *LookupHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "lookup-transaction",
		Method:      http.MethodGet,
		Path:        "/api/transaction/{id}",
		Summary:     "Look up a transaction",
		Description: "Returns the transaction whose transId equals the path parameter exactly.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *LookupHandler) handle(ctx context.Context, input *LookupInput) (*LookupOutput, error) {
	output := &LookupOutput{
		CacheControl: cacheControlValue,
		Pragma:       pragmaValue,
		Expires:      expiresValue,
	}

	record, err := h.TransactionService.Lookup(ctx, input.ID)
	if errors.Is(err, service.ErrTransactionNotFound) {
		output.Status = http.StatusNotFound
		output.Body = LookupResponseBody{
			Error: "Transaction not found",
			Debug: LookupDebug{RequestedID: input.ID},
		}
		return output, nil
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "transaction lookup failed", err)
	}

	found := record.TransID
	output.Status = http.StatusOK
	output.Body = LookupResponseBody{
		TransactionRecord: *record,
		Debug:             LookupDebug{RequestedID: input.ID, Found: &found},
	}
	return output, nil
}

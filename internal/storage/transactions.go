package storage

// AFDSFilter is one Advanced Fraud Detection Suite filter hit reported by the
// processor. Passed through to the UI, never evaluated here.
type AFDSFilter struct {
	FilterName   string `json:"filterName" doc:"Name of the fraud filter"`
	FilterAction string `json:"filterAction" doc:"Action the filter took (report, decline, hold)"`
}

// RiskDetails is the processor's risk assessment for a transaction.
type RiskDetails struct {
	RiskScore  int      `json:"riskScore" doc:"Risk score from 0 (safe) to 100"`
	RiskLevel  string   `json:"riskLevel" doc:"low, medium or high"`
	Indicators []string `json:"indicators,omitempty" doc:"Human-readable risk indicators"`
}

// TransactionRecord is one transaction snapshot from the mock dataset.
// The fraud and verification fields are consumed opaquely by the UI.
// All fields carry omitempty so the record can double as the success half of
// a lookup response body.
type TransactionRecord struct {
	TransID                   string       `json:"transId,omitempty" doc:"Unique transaction identifier, the lookup key"`
	TransactionStatus         string       `json:"transactionStatus,omitempty" doc:"Processing outcome, free-form"`
	AuthAmount                *float64     `json:"authAmount,omitempty" doc:"Authorized amount"`
	SettleAmount              *float64     `json:"settleAmount,omitempty" doc:"Settled amount"`
	ResponseCode              string       `json:"responseCode,omitempty" doc:"Processor response code"`
	ResponseReasonDescription string       `json:"responseReasonDescription,omitempty" doc:"Processor response description"`
	AVSResponse               string       `json:"AVSResponse,omitempty" doc:"Address Verification System result"`
	CVVResponse               string       `json:"CVVResponse,omitempty" doc:"Card Verification Value result"`
	CardType                  string       `json:"cardType,omitempty" doc:"Card network"`
	AccountNumber             string       `json:"accountNumber,omitempty" doc:"Masked card number"`
	SubmitTimeUTC             string       `json:"submitTimeUTC,omitempty" doc:"Submission time, UTC"`
	AFDSFilters               []AFDSFilter `json:"afdsFilters,omitempty" doc:"Fraud filters triggered by the transaction"`
	RiskDetails               *RiskDetails `json:"riskDetails,omitempty" doc:"Processor risk assessment"`
}

var _ TransactionReader = (*TransactionsTable)(nil)

// TransactionsTable is the read-only in-memory transaction collection.
// It is populated once at process start and never mutated.
type TransactionsTable struct {
	records []TransactionRecord
}

func NewTransactionsTable(records []TransactionRecord) TransactionsTable {
	return TransactionsTable{records: records}
}

// FindByTransID returns the first record whose transId equals id exactly,
// or nil when no record matches. No prefix or fuzzy matching.
func (t *TransactionsTable) FindByTransID(id string) *TransactionRecord {
	for i := range t.records {
		if t.records[i].TransID == id {
			record := t.records[i]
			return &record
		}
	}
	return nil
}

// All returns the entire dataset in load order.
func (t *TransactionsTable) All() []TransactionRecord {
	records := make([]TransactionRecord, len(t.records))
	copy(records, t.records)
	return records
}

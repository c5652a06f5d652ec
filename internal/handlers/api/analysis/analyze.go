package analysis

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/transaction-analyzer/internal/openai"
	"github.com/carson-networks/transaction-analyzer/internal/prompt"
	"github.com/carson-networks/transaction-analyzer/internal/service"
)

const (
	cacheControlValue = "no-store, no-cache, must-revalidate"
	pragmaValue       = "no-cache"
	expiresValue      = "0"
)

// AnalyzeTransaction is the transaction snapshot the caller submits. The UI
// posts back the lookup response verbatim, so unknown fields are allowed and
// ignored.
type AnalyzeTransaction struct {
	_ struct{} `json:"-" additionalProperties:"true"`

	TransID                   string   `json:"transId,omitempty" doc:"Transaction identifier"`
	TransactionStatus         string   `json:"transactionStatus,omitempty" doc:"Processing outcome"`
	AuthAmount                *float64 `json:"authAmount,omitempty" doc:"Authorized amount"`
	SettleAmount              *float64 `json:"settleAmount,omitempty" doc:"Settled amount"`
	ResponseCode              string   `json:"responseCode,omitempty" doc:"Processor response code"`
	ResponseReasonDescription string   `json:"responseReasonDescription,omitempty" doc:"Processor response description"`
}

// AnalyzeRequestBody is the request body for requesting an analysis.
type AnalyzeRequestBody struct {
	Transaction AnalyzeTransaction `json:"transaction" doc:"Transaction to analyze"`
	PromptType  string             `json:"promptType,omitempty" doc:"Analysis type; unknown values fall back to basic"`
}

// AnalyzeInput is the Huma input for requesting an analysis.
type AnalyzeInput struct {
	Body AnalyzeRequestBody
}

// AnalyzeResponseBody is the analysis result, or an error envelope when the
// gateway is unconfigured or the provider fails.
type AnalyzeResponseBody struct {
	TransactionID string `json:"transactionId,omitempty" doc:"Id of the analyzed transaction"`
	PromptType    string `json:"promptType,omitempty" doc:"Analysis type that was requested"`
	AIInsights    string `json:"aiInsights,omitempty" doc:"Generated analysis text"`
	Prompt        string `json:"prompt,omitempty" doc:"The filled prompt that was sent"`
	Timestamp     string `json:"timestamp,omitempty" doc:"RFC3339 completion time"`
	Error         string `json:"error,omitempty" doc:"Present only on failure"`
}

// AnalyzeOutput is the Huma output for requesting an analysis.
type AnalyzeOutput struct {
	Status       int
	CacheControl string `header:"Cache-Control"`
	Pragma       string `header:"Pragma"`
	Expires      string `header:"Expires"`
	Body         AnalyzeResponseBody
}

// transactionAnalyzer is the interface for running an analysis.
type transactionAnalyzer interface {
	Analyze(ctx context.Context, fields prompt.Fields, promptType string) (*service.Analysis, error)
}

// AnalyzeHandler handles POST /api/analyze.
type AnalyzeHandler struct {
	AnalysisService transactionAnalyzer
}

// NewAnalyzeHandler creates a new AnalyzeHandler.
func NewAnalyzeHandler(svc transactionAnalyzer) *AnalyzeHandler {
	return &AnalyzeHandler{AnalysisService: svc}
}

// Register registers the analyze endpoint with the Huma API.
func (h *AnalyzeHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "analyze-transaction",
		Method:      http.MethodPost,
		Path:        "/api/analyze",
		Summary:     "Analyze a transaction",
		Description: "Templates the transaction into a prompt and requests AI-generated insights.",
		Tags:        []string{"Analysis"},
	}, h.handle)
}

func (h *AnalyzeHandler) handle(ctx context.Context, input *AnalyzeInput) (*AnalyzeOutput, error) {
	fields := prompt.Fields{
		TransID:                   input.Body.Transaction.TransID,
		TransactionStatus:         input.Body.Transaction.TransactionStatus,
		AuthAmount:                input.Body.Transaction.AuthAmount,
		SettleAmount:              input.Body.Transaction.SettleAmount,
		ResponseCode:              input.Body.Transaction.ResponseCode,
		ResponseReasonDescription: input.Body.Transaction.ResponseReasonDescription,
	}

	result, err := h.AnalysisService.Analyze(ctx, fields, input.Body.PromptType)

	if errors.Is(err, openai.ErrNotConfigured) {
		// Fail fast, no cache-control needed: nothing left the process.
		return &AnalyzeOutput{
			Status: http.StatusUnauthorized,
			Body: AnalyzeResponseBody{
				Error: "OpenAI API key is missing or not set. Please add your key to the .env file.",
			},
		}, nil
	}

	var upstreamErr *openai.UpstreamError
	if errors.As(err, &upstreamErr) {
		return &AnalyzeOutput{
			Status:       upstreamErr.StatusCode,
			CacheControl: cacheControlValue,
			Pragma:       pragmaValue,
			Expires:      expiresValue,
			Body: AnalyzeResponseBody{
				Error: upstreamErr.Error(),
			},
		}, nil
	}

	if err != nil {
		return nil, huma.NewError(http.StatusBadGateway, "analysis failed", err)
	}

	return &AnalyzeOutput{
		Status:       http.StatusOK,
		CacheControl: cacheControlValue,
		Pragma:       pragmaValue,
		Expires:      expiresValue,
		Body: AnalyzeResponseBody{
			TransactionID: result.TransactionID,
			PromptType:    result.PromptType,
			AIInsights:    result.AIInsights,
			Prompt:        result.Prompt,
			Timestamp:     result.Timestamp.Format(time.RFC3339),
		},
	}, nil
}

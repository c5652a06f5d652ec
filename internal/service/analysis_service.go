package service

import (
	"context"
	"time"

	"github.com/carson-networks/transaction-analyzer/internal/logging"
	"github.com/carson-networks/transaction-analyzer/internal/prompt"
)

// completionClient is the outbound chat-completion dependency.
type completionClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Analysis is the result of one analysis request. Ephemeral, never persisted.
type Analysis struct {
	TransactionID string
	PromptType    string
	AIInsights    string
	Prompt        string
	Timestamp     time.Time
}

// AnalysisService fills a prompt template and forwards it to the completion
// API.
type AnalysisService struct {
	completions completionClient
}

// NewAnalysisService creates a new AnalysisService.
func NewAnalysisService(completions completionClient) *AnalysisService {
	return &AnalysisService{completions: completions}
}

// Analyze templates the transaction fields for promptType and requests
// insights from the completion API. Errors from the client pass through
// untouched so the boundary can map them to statuses.
func (s *AnalysisService) Analyze(ctx context.Context, fields prompt.Fields, promptType string) (*Analysis, error) {
	filledPrompt := prompt.Fill(promptType, fields)

	logData := logging.GetLogData(ctx)
	if logData != nil {
		logData.AddData("promptType", promptType)
		logData.AddData("transactionId", fields.TransID)
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("completionMs")
	}
	insights, err := s.completions.Complete(ctx, filledPrompt)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, err
	}

	return &Analysis{
		TransactionID: fields.TransID,
		PromptType:    promptType,
		AIInsights:    insights,
		Prompt:        filledPrompt,
		Timestamp:     time.Now().UTC(),
	}, nil
}

// Package prompt turns a transaction snapshot into a natural-language prompt
// for the analysis gateway. Filling a template is a pure function: no clock,
// no randomness, no external state.
package prompt

import (
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultType is the template used when the caller asks for an unknown type.
const DefaultType = "basic"

const notAvailable = "Not available"

const transactionDetails = "ID: {{transId}}\n" +
	"Status: {{transactionStatus}}\n" +
	"Auth Amount: ${{authAmount}}\n" +
	"Settle Amount: ${{settleAmount}}\n" +
	"Response Code: {{responseCode}}\n" +
	"Reason: {{responseReasonDescription}}"

// templates covers every analysis type the UI offers.
var templates = map[string]string{
	"basic":      "Analyze the following transaction:\n" + transactionDetails,
	"fraud":      "Review for fraud risk:\n" + transactionDetails,
	"advanced":   "Run an advanced fraud detection review of the following transaction:\n" + transactionDetails,
	"compliance": "Review the following transaction for compliance concerns:\n" + transactionDetails,
	"risk":       "Assess the risk profile of the following transaction:\n" + transactionDetails,
	"merchant":   "Analyze the following transaction from the merchant's perspective:\n" + transactionDetails,
}

// Fields carries the transaction values the templates substitute. Nil amounts
// and empty strings render as "Not available".
type Fields struct {
	TransID                   string
	TransactionStatus         string
	AuthAmount                *float64
	SettleAmount              *float64
	ResponseCode              string
	ResponseReasonDescription string
}

// Fill selects the template for promptType and substitutes each placeholder
// exactly once, left to right. An unknown promptType falls back to the basic
// template rather than erroring.
func Fill(promptType string, fields Fields) string {
	template, ok := templates[promptType]
	if !ok {
		template = templates[DefaultType]
	}

	filled := template
	filled = strings.Replace(filled, "{{transId}}", orNotAvailable(fields.TransID), 1)
	filled = strings.Replace(filled, "{{transactionStatus}}", orNotAvailable(fields.TransactionStatus), 1)
	filled = strings.Replace(filled, "{{authAmount}}", formatAmount(fields.AuthAmount), 1)
	filled = strings.Replace(filled, "{{settleAmount}}", formatAmount(fields.SettleAmount), 1)
	filled = strings.Replace(filled, "{{responseCode}}", orNotAvailable(fields.ResponseCode), 1)
	filled = strings.Replace(filled, "{{responseReasonDescription}}", orNotAvailable(fields.ResponseReasonDescription), 1)
	return filled
}

func orNotAvailable(value string) string {
	if value == "" {
		return notAvailable
	}
	return value
}

// formatAmount renders a currency amount with exactly two decimal places.
func formatAmount(amount *float64) string {
	if amount == nil {
		return notAvailable
	}
	return decimal.NewFromFloat(*amount).StringFixed(2)
}

// Package entity defines the domain entities for the quote feature.
package entity

import "github.com/shopspring/decimal"

// Quote is an externally supplied current price and display name for a
// ticker symbol.
type Quote struct {
	Symbol string          `json:"symbol"`
	Name   string          `json:"name"`
	Price  decimal.Decimal `json:"price"`
}

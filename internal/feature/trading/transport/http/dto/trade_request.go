// Package dto defines data transfer objects for the trading feature's HTTP
// transport layer.
package dto

import "github.com/shopspring/decimal"

// TradeReq represents the request body for the /buy and /sell endpoints.
// Share-count validity (positive integer) is a business rule checked by
// the usecase, so the binding only requires the fields to be present.
type TradeReq struct {
	Symbol string `json:"symbol" binding:"required"`
	Shares int64  `json:"shares" binding:"required"`
}

// CashReq represents the request body for the /cash endpoint.
// Amount positivity is checked by the usecase so a missing amount and a
// non-positive amount surface as the same business error.
type CashReq struct {
	Action string          `json:"action" binding:"required,oneof=add remove"`
	Amount decimal.Decimal `json:"amount"`
}

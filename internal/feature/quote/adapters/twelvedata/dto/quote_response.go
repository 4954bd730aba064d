// Package dto defines response shapes for the Twelve Data API.
package dto

// QuoteResponse represents the /quote endpoint response.
// Twelve Data returns numbers as strings and signals errors in-band with
// status/code/message fields.
type QuoteResponse struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
	Close  string `json:"close"`

	// Error fields, only populated when status is "error".
	Status  string `json:"status"`
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Package domain defines domain-level errors for the quote feature.
package domain

import "errors"

// ErrUnknownSymbol indicates that the quote provider could not resolve the
// requested ticker symbol. Adapters translate provider-specific "invalid
// symbol" responses to this error so consumers can distinguish a bad symbol
// from a provider outage.
var ErrUnknownSymbol = errors.New("unknown ticker symbol")

// Package usecase implements the business logic for the trading feature.
package usecase

import "errors"

// Business rule violations for trading operations. Each precondition
// failure has its own sentinel so the transport layer can report them
// distinctly.
var (
	// ErrInvalidShares is returned when the requested share count is
	// missing or not a positive integer.
	ErrInvalidShares = errors.New("share count must be a positive integer")

	// ErrInsufficientFunds is returned when a buy costs more than the
	// account's cash balance.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrSymbolNotHeld is returned when selling a symbol the account has
	// no positive position in.
	ErrSymbolNotHeld = errors.New("symbol not held")

	// ErrInsufficientShares is returned when selling more shares than the
	// account's derived position.
	ErrInsufficientShares = errors.New("insufficient shares held")

	// ErrInvalidAmount is returned when a cash adjustment amount is
	// missing or not positive.
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrInsufficientCash is returned when removing more cash than the
	// account holds.
	ErrInsufficientCash = errors.New("insufficient cash")

	// ErrAccountNotFound is returned when the account does not exist.
	ErrAccountNotFound = errors.New("account not found")
)

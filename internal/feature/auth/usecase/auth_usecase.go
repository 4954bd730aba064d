package usecase

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/amyzliao/finance/internal/feature/auth/domain/entity"
)

// minPasswordLength defines the minimum number of password characters.
const minPasswordLength = 8

// startingCash is the simulated balance seeded into every new account.
var startingCash = decimal.NewFromInt(10000)

// AccountRepository abstracts the persistence layer for account entities.
// Following Go convention, the interface is defined by the consumer
// (usecase) rather than the provider (adapters).
type AccountRepository interface {
	// Create persists a new account. It returns ErrUsernameTaken if the
	// username already exists.
	Create(ctx context.Context, account *entity.Account) error

	// FindByUsername retrieves the account with the given username, or
	// ErrAccountNotFound.
	FindByUsername(ctx context.Context, username string) (*entity.Account, error)

	// FindByID retrieves the account with the given ID, or
	// ErrAccountNotFound.
	FindByID(ctx context.Context, id uint) (*entity.Account, error)
}

// TokenGenerator defines the interface for signed token generation.
type TokenGenerator interface {
	// GenerateToken creates a signed token for the given account.
	GenerateToken(accountID uint, username string) (string, error)
}

// authUsecase implements registration and login.
type authUsecase struct {
	accounts AccountRepository
	tokens   TokenGenerator
}

// NewAuthUsecase creates a new instance of authUsecase.
func NewAuthUsecase(accounts AccountRepository, tokens TokenGenerator) *authUsecase {
	return &authUsecase{
		accounts: accounts,
		tokens:   tokens,
	}
}

// validatePassword checks that a password meets the security requirements.
func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf("password must be at least %d characters long", minPasswordLength)
	}
	return nil
}

// Register creates a new account with a hashed password and the starting
// cash seed, then logs the account in by returning a signed token.
// Duplicate usernames are rejected with no row created.
func (u *authUsecase) Register(ctx context.Context, username, password, confirmation string) (string, error) {
	if err := validatePassword(password); err != nil {
		return "", err
	}
	if password != confirmation {
		return "", ErrPasswordMismatch
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	account := &entity.Account{
		Username:     username,
		PasswordHash: string(hashed),
		Cash:         startingCash,
	}
	if err := u.accounts.Create(ctx, account); err != nil {
		return "", err
	}

	token, err := u.tokens.GenerateToken(account.ID, account.Username)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return token, nil
}

// Login authenticates an account and returns a signed token on success.
// To prevent timing attacks, the bcrypt comparison always runs even when
// the username is unknown, and both failure causes collapse into the same
// generic error.
func (u *authUsecase) Login(ctx context.Context, username, password string) (string, error) {
	account, err := u.accounts.FindByUsername(ctx, username)

	// Dummy hash compared when the account does not exist, so that
	// bcrypt.CompareHashAndPassword is always called.
	passwordHash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
	if err == nil {
		passwordHash = account.PasswordHash
	}

	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	if err != nil || compareErr != nil {
		return "", ErrInvalidCredentials
	}

	token, tokenErr := u.tokens.GenerateToken(account.ID, account.Username)
	if tokenErr != nil {
		return "", fmt.Errorf("failed to generate token: %w", tokenErr)
	}
	return token, nil
}

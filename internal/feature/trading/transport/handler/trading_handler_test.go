package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	quotedomain "github.com/amyzliao/finance/internal/feature/quote/domain"
	"github.com/amyzliao/finance/internal/feature/trading/domain/entity"
	"github.com/amyzliao/finance/internal/feature/trading/usecase"
	jwtmw "github.com/amyzliao/finance/internal/platform/jwt"
)

// mockTradingUsecase is a mock implementation of the TradingUsecase interface.
type mockTradingUsecase struct {
	BuyFunc      func(ctx context.Context, accountID uint, symbol string, shares int64) (*usecase.Receipt, error)
	SellFunc     func(ctx context.Context, accountID uint, symbol string, shares int64) (*usecase.Receipt, error)
	DepositFunc  func(ctx context.Context, accountID uint, amount decimal.Decimal) (*usecase.Receipt, error)
	WithdrawFunc func(ctx context.Context, accountID uint, amount decimal.Decimal) (*usecase.Receipt, error)
	HistoryFunc  func(ctx context.Context, accountID uint) ([]usecase.HistoryItem, error)
}

func (m *mockTradingUsecase) Buy(ctx context.Context, accountID uint, symbol string, shares int64) (*usecase.Receipt, error) {
	return m.BuyFunc(ctx, accountID, symbol, shares)
}

func (m *mockTradingUsecase) Sell(ctx context.Context, accountID uint, symbol string, shares int64) (*usecase.Receipt, error) {
	return m.SellFunc(ctx, accountID, symbol, shares)
}

func (m *mockTradingUsecase) Deposit(ctx context.Context, accountID uint, amount decimal.Decimal) (*usecase.Receipt, error) {
	return m.DepositFunc(ctx, accountID, amount)
}

func (m *mockTradingUsecase) Withdraw(ctx context.Context, accountID uint, amount decimal.Decimal) (*usecase.Receipt, error) {
	return m.WithdrawFunc(ctx, accountID, amount)
}

func (m *mockTradingUsecase) History(ctx context.Context, accountID uint) ([]usecase.HistoryItem, error) {
	return m.HistoryFunc(ctx, accountID)
}

// setupRouter builds a router with the account id pre-set, standing in for
// the JWT middleware.
func setupRouter(h *TradingHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set(jwtmw.ContextUserID, uint(1)) })
	r.POST("/buy", h.Buy)
	r.POST("/sell", h.Sell)
	r.POST("/cash", h.Cash)
	r.GET("/history", h.History)
	return r
}

func postJSON(router *gin.Engine, path string, body gin.H) *httptest.ResponseRecorder {
	b, _ := json.Marshal(body)
	req, _ := http.NewRequest(http.MethodPost, path, bytes.NewBuffer(b))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestTradingHandler_Buy(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    gin.H
		mockBuyFunc    func(ctx context.Context, accountID uint, symbol string, shares int64) (*usecase.Receipt, error)
		expectedStatus int
		expectedError  string
	}{
		{
			name:        "success: buy",
			requestBody: gin.H{"symbol": "NFLX", "shares": 2},
			mockBuyFunc: func(ctx context.Context, accountID uint, symbol string, shares int64) (*usecase.Receipt, error) {
				assert.Equal(t, uint(1), accountID)
				assert.Equal(t, "NFLX", symbol)
				assert.Equal(t, int64(2), shares)
				return &usecase.Receipt{
					Date:       time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
					EntryType:  entity.EntryBuy,
					Symbol:     "NFLX",
					Name:       "Netflix Inc",
					UnitPrice:  decimal.NewFromInt(100),
					Shares:     2,
					Total:      decimal.NewFromInt(200),
					NewBalance: decimal.NewFromInt(9800),
				}, nil
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "failure: missing shares",
			requestBody:    gin.H{"symbol": "NFLX"},
			mockBuyFunc:    nil, // Usecase is not called
			expectedStatus: http.StatusBadRequest,
			expectedError:  "must enter a symbol and number of shares",
		},
		{
			name:        "failure: unknown symbol",
			requestBody: gin.H{"symbol": "NOPE", "shares": 1},
			mockBuyFunc: func(ctx context.Context, accountID uint, symbol string, shares int64) (*usecase.Receipt, error) {
				return nil, quotedomain.ErrUnknownSymbol
			},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedError:  "that is not a valid stock symbol",
		},
		{
			name:        "failure: cannot afford",
			requestBody: gin.H{"symbol": "NFLX", "shares": 9999},
			mockBuyFunc: func(ctx context.Context, accountID uint, symbol string, shares int64) (*usecase.Receipt, error) {
				return nil, usecase.ErrInsufficientFunds
			},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedError:  "you can't afford it",
		},
		{
			name:        "failure: unexpected error",
			requestBody: gin.H{"symbol": "NFLX", "shares": 1},
			mockBuyFunc: func(ctx context.Context, accountID uint, symbol string, shares int64) (*usecase.Receipt, error) {
				return nil, errors.New("db down")
			},
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "operation failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewTradingHandler(&mockTradingUsecase{BuyFunc: tt.mockBuyFunc})
			router := setupRouter(handler)

			w := postJSON(router, "/buy", tt.requestBody)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var responseBody gin.H
			err := json.Unmarshal(w.Body.Bytes(), &responseBody)
			assert.NoError(t, err)
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, responseBody["error"])
			} else {
				assert.Equal(t, "buy", responseBody["type"])
				assert.Equal(t, "NFLX", responseBody["symbol"])
			}
		})
	}
}

func TestTradingHandler_Sell(t *testing.T) {
	tests := []struct {
		name           string
		mockErr        error
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "failure: symbol not held",
			mockErr:        usecase.ErrSymbolNotHeld,
			expectedStatus: http.StatusUnprocessableEntity,
			expectedError:  "you don't own that stock",
		},
		{
			name:           "failure: not enough shares",
			mockErr:        usecase.ErrInsufficientShares,
			expectedStatus: http.StatusUnprocessableEntity,
			expectedError:  "you don't own enough shares",
		},
		{
			name:           "failure: invalid share count",
			mockErr:        usecase.ErrInvalidShares,
			expectedStatus: http.StatusUnprocessableEntity,
			expectedError:  "you cannot trade that number of shares",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewTradingHandler(&mockTradingUsecase{
				SellFunc: func(ctx context.Context, accountID uint, symbol string, shares int64) (*usecase.Receipt, error) {
					return nil, tt.mockErr
				},
			})
			router := setupRouter(handler)

			w := postJSON(router, "/sell", gin.H{"symbol": "NFLX", "shares": 1})

			assert.Equal(t, tt.expectedStatus, w.Code)

			var responseBody gin.H
			err := json.Unmarshal(w.Body.Bytes(), &responseBody)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedError, responseBody["error"])
		})
	}
}

func TestTradingHandler_Cash(t *testing.T) {
	t.Run("add dispatches to Deposit", func(t *testing.T) {
		var deposited decimal.Decimal
		handler := NewTradingHandler(&mockTradingUsecase{
			DepositFunc: func(ctx context.Context, accountID uint, amount decimal.Decimal) (*usecase.Receipt, error) {
				deposited = amount
				return &usecase.Receipt{
					EntryType:  entity.EntryCashAdd,
					Total:      amount,
					NewBalance: decimal.NewFromInt(10500),
				}, nil
			},
		})
		router := setupRouter(handler)

		w := postJSON(router, "/cash", gin.H{"action": "add", "amount": "500"})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, deposited.Equal(decimal.NewFromInt(500)))
	})

	t.Run("remove dispatches to Withdraw", func(t *testing.T) {
		called := false
		handler := NewTradingHandler(&mockTradingUsecase{
			WithdrawFunc: func(ctx context.Context, accountID uint, amount decimal.Decimal) (*usecase.Receipt, error) {
				called = true
				return &usecase.Receipt{
					EntryType:  entity.EntryCashRemove,
					Total:      amount,
					NewBalance: decimal.NewFromInt(9500),
				}, nil
			},
		})
		router := setupRouter(handler)

		w := postJSON(router, "/cash", gin.H{"action": "remove", "amount": "500"})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, called)
	})

	t.Run("unknown action is rejected before the usecase", func(t *testing.T) {
		handler := NewTradingHandler(&mockTradingUsecase{})
		router := setupRouter(handler)

		w := postJSON(router, "/cash", gin.H{"action": "transfer", "amount": "500"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("non-positive amount", func(t *testing.T) {
		handler := NewTradingHandler(&mockTradingUsecase{
			DepositFunc: func(ctx context.Context, accountID uint, amount decimal.Decimal) (*usecase.Receipt, error) {
				return nil, usecase.ErrInvalidAmount
			},
		})
		router := setupRouter(handler)

		w := postJSON(router, "/cash", gin.H{"action": "add", "amount": "-5"})

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

		var responseBody gin.H
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &responseBody))
		assert.Equal(t, "amount must be a positive number", responseBody["error"])
	})

	t.Run("removing more than the balance", func(t *testing.T) {
		handler := NewTradingHandler(&mockTradingUsecase{
			WithdrawFunc: func(ctx context.Context, accountID uint, amount decimal.Decimal) (*usecase.Receipt, error) {
				return nil, usecase.ErrInsufficientCash
			},
		})
		router := setupRouter(handler)

		w := postJSON(router, "/cash", gin.H{"action": "remove", "amount": "999999"})

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

		var responseBody gin.H
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &responseBody))
		assert.Equal(t, "you do not have enough cash", responseBody["error"])
	})
}

func TestTradingHandler_History(t *testing.T) {
	symbol := "NFLX"
	handler := NewTradingHandler(&mockTradingUsecase{
		HistoryFunc: func(ctx context.Context, accountID uint) ([]usecase.HistoryItem, error) {
			assert.Equal(t, uint(1), accountID)
			return []usecase.HistoryItem{
				{
					LedgerEntry: entity.LedgerEntry{
						ID:        1,
						AccountID: 1,
						Symbol:    &symbol,
						EntryType: entity.EntryBuy,
					},
					Sign: "-",
				},
				{
					LedgerEntry: entity.LedgerEntry{
						ID:        2,
						AccountID: 1,
						EntryType: entity.EntryCashAdd,
					},
					Sign: "+",
				},
			}, nil
		},
	})
	router := setupRouter(handler)

	req, _ := http.NewRequest(http.MethodGet, "/history", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var responseBody struct {
		Transactions []gin.H `json:"transactions"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &responseBody))
	assert.Len(t, responseBody.Transactions, 2)
	assert.Equal(t, "-", responseBody.Transactions[0]["sign"])
	assert.Equal(t, "+", responseBody.Transactions[1]["sign"])
}

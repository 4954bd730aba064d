package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/amyzliao/finance/internal/feature/quote/domain"
	"github.com/amyzliao/finance/internal/feature/quote/domain/entity"
)

// mockQuoteUsecase is a mock implementation of the QuoteUsecase interface.
type mockQuoteUsecase struct {
	LookupFunc func(ctx context.Context, symbol string) (*entity.Quote, error)
}

func (m *mockQuoteUsecase) Lookup(ctx context.Context, symbol string) (*entity.Quote, error) {
	return m.LookupFunc(ctx, symbol)
}

func TestQuoteHandler_Get(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		symbol         string
		mockLookupFunc func(ctx context.Context, symbol string) (*entity.Quote, error)
		expectedStatus int
		expectedBody   gin.H
	}{
		{
			name:   "success: known symbol",
			symbol: "NFLX",
			mockLookupFunc: func(ctx context.Context, symbol string) (*entity.Quote, error) {
				assert.Equal(t, "NFLX", symbol)
				return &entity.Quote{
					Symbol: "NFLX",
					Name:   "Netflix Inc",
					Price:  decimal.NewFromFloat(123.45),
				}, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   gin.H{"symbol": "NFLX", "name": "Netflix Inc", "price": "123.45"},
		},
		{
			name:   "failure: unknown symbol",
			symbol: "NOPE",
			mockLookupFunc: func(ctx context.Context, symbol string) (*entity.Quote, error) {
				return nil, domain.ErrUnknownSymbol
			},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   gin.H{"error": "that is not a valid stock symbol"},
		},
		{
			name:   "failure: provider outage",
			symbol: "NFLX",
			mockLookupFunc: func(ctx context.Context, symbol string) (*entity.Quote, error) {
				return nil, errors.New("connection refused")
			},
			expectedStatus: http.StatusBadGateway,
			expectedBody:   gin.H{"error": "quote lookup failed"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewQuoteHandler(&mockQuoteUsecase{LookupFunc: tt.mockLookupFunc})

			router := gin.New()
			router.GET("/quote/:symbol", handler.Get)

			req, _ := http.NewRequest(http.MethodGet, "/quote/"+tt.symbol, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var responseBody gin.H
			err := json.Unmarshal(w.Body.Bytes(), &responseBody)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, responseBody)
		})
	}
}

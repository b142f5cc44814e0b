package list

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/research-portal/internal/catalog"
	"github.com/magabrotheeeer/research-portal/internal/models"
)

type MockCatalog struct {
	mock.Mock
}

func (m *MockCatalog) Plans(period models.BillingPeriod) ([]models.SubscriptionPlan, error) {
	args := m.Called(period)
	if res := args.Get(0); res != nil {
		return res.([]models.SubscriptionPlan), args.Error(1)
	}
	return nil, args.Error(1)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

type body struct {
	Status string `json:"status"`
	Error  string `json:"error"`
	Data   Plans  `json:"data"`
}

func TestListHandler(t *testing.T) {
	tests := []struct {
		name        string
		url         string
		wantBilling string
		wantIDs     []string
		wantPrices  []float64
	}{
		{
			name:        "по умолчанию месячные планы",
			url:         "/api/v1/plans",
			wantBilling: "monthly",
			wantIDs:     []string{"basic", "premium"},
			wantPrices:  []float64{29.99, 99.99},
		},
		{
			name:        "годовые планы",
			url:         "/api/v1/plans?billing=annual",
			wantBilling: "annual",
			wantIDs:     []string{"basic-annual", "premium-annual"},
			wantPrices:  []float64{287.90, 959.90},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := New(newNoopLogger(), catalog.Default())

			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.url, nil))

			require.Equal(t, http.StatusOK, rec.Code)

			var got body
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.Equal(t, "OK", got.Status)
			assert.Equal(t, tt.wantBilling, got.Data.Billing)

			var ids []string
			var prices []float64
			for _, p := range got.Data.Plans {
				ids = append(ids, p.ID)
				prices = append(prices, p.Price)
			}
			assert.Equal(t, tt.wantIDs, ids)
			assert.Equal(t, tt.wantPrices, prices)

			require.Len(t, got.Data.Comparison.Columns, 2)
			assert.Equal(t, tt.wantIDs[0], got.Data.Comparison.Columns[0].PlanID)
			assert.Len(t, got.Data.Comparison.Rows, 7)
		})
	}
}

func TestListHandler_CatalogError(t *testing.T) {
	cat := new(MockCatalog)
	cat.On("Plans", models.PeriodMonthly).Return(nil, errors.New("boom")).Once()

	h := New(newNoopLogger(), cat)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/plans", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"status":"Error","error":"could not load plans"}`, rec.Body.String())
	cat.AssertExpectations(t)
}

package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/research-portal/internal/models"
)

func TestDefault_AnnualPricesAreLiterals(t *testing.T) {
	c := Default()

	plans, err := c.Plans(models.PeriodYearly)
	require.NoError(t, err)
	require.Len(t, plans, 2)

	assert.Equal(t, "basic-annual", plans[0].ID)
	assert.Equal(t, 287.90, plans[0].Price)
	assert.Equal(t, "premium-annual", plans[1].ID)
	assert.Equal(t, 959.90, plans[1].Price)
	for _, p := range plans {
		assert.Equal(t, models.PeriodYearly, p.Period)
	}
}

func TestDefault_MonthlyPlans(t *testing.T) {
	plans, err := Default().Plans(models.PeriodMonthly)
	require.NoError(t, err)
	require.Len(t, plans, 2)

	assert.Equal(t, "basic", plans[0].ID)
	assert.Equal(t, 29.99, plans[0].Price)
	assert.False(t, plans[0].Popular)
	assert.Equal(t, "Get Started", plans[0].ButtonText)

	assert.Equal(t, "premium", plans[1].ID)
	assert.Equal(t, 99.99, plans[1].Price)
	assert.True(t, plans[1].Popular)
	assert.Equal(t, "Subscribe Now", plans[1].ButtonText)
	assert.Len(t, plans[1].Features, 7)
}

func TestPlans_UnknownPeriod(t *testing.T) {
	_, err := Default().Plans("weekly")
	assert.ErrorIs(t, err, ErrUnknownPeriod)
}

func TestPlans_ReturnsCopy(t *testing.T) {
	c := Default()

	plans, err := c.Plans(models.PeriodMonthly)
	require.NoError(t, err)
	plans[0].Price = 1
	plans[0].Features[0].Name = "changed"

	again, err := c.Plans(models.PeriodMonthly)
	require.NoError(t, err)
	assert.Equal(t, BasicMonthlyPrice, again[0].Price)
	assert.Equal(t, "Access to 100+ research reports", again[0].Features[0].Name)
}

func TestPlan_LookupAcrossPeriods(t *testing.T) {
	c := Default()

	p, ok := c.Plan("premium-annual")
	require.True(t, ok)
	assert.Equal(t, PremiumAnnualPrice, p.Price)

	_, ok = c.Plan("enterprise")
	assert.False(t, ok)
}

func TestNew_Validation(t *testing.T) {
	valid := func(id string) models.SubscriptionPlan {
		return models.SubscriptionPlan{
			ID:         id,
			Name:       "Plan " + id,
			Price:      10,
			Period:     models.PeriodMonthly,
			ButtonText: "Go",
		}
	}

	tests := []struct {
		name    string
		monthly []models.SubscriptionPlan
		annual  []models.SubscriptionPlan
		wantErr error
		anyErr  bool
	}{
		{
			name:    "корректный каталог",
			monthly: []models.SubscriptionPlan{valid("a")},
			annual:  []models.SubscriptionPlan{valid("b")},
		},
		{
			name:    "дубликат идентификатора между периодами",
			monthly: []models.SubscriptionPlan{valid("a")},
			annual:  []models.SubscriptionPlan{valid("a")},
			wantErr: ErrDuplicatePlanID,
		},
		{
			name: "отрицательная цена",
			monthly: []models.SubscriptionPlan{func() models.SubscriptionPlan {
				p := valid("a")
				p.Price = -1
				return p
			}()},
			anyErr: true,
		},
		{
			name: "неизвестный период",
			monthly: []models.SubscriptionPlan{func() models.SubscriptionPlan {
				p := valid("a")
				p.Period = "daily"
				return p
			}()},
			anyErr: true,
		},
		{
			name: "возможность без названия",
			monthly: []models.SubscriptionPlan{func() models.SubscriptionPlan {
				p := valid("a")
				p.Features = []models.PlanFeature{{Included: true}}
				return p
			}()},
			anyErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.monthly, tt.annual)
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, c)
			case tt.anyErr:
				assert.Error(t, err)
				assert.Nil(t, c)
			default:
				require.NoError(t, err)
				assert.NotNil(t, c)
			}
		})
	}
}

package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreditDiscountBands(t *testing.T) {
	cases := []struct {
		days int
		want float64
	}{
		{0, 0.10},
		{7, 0.10},
		{8, 0.075},
		{15, 0.075},
		{16, 0.05},
		{29, 0.05},
		{30, 0},
		{90, 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, CreditDiscount(tc.days), "days=%d", tc.days)
	}
}

func TestUnitGridTotals(t *testing.T) {
	var g UnitGrid
	g[Product1][AreaSouth] = 3
	g[Product1][AreaExport] = 4
	g[Product3][AreaSouth] = 5

	assert.Equal(t, 12, g.Total())
	assert.Equal(t, 7, g.ProductTotal(Product1))
	assert.Equal(t, 0, g.ProductTotal(Product2))
	assert.Equal(t, 8, g.AreaTotal(AreaSouth))
}

func TestHomeAreas(t *testing.T) {
	assert.True(t, AreaSouth.Home())
	assert.True(t, AreaWest.Home())
	assert.True(t, AreaNorth.Home())
	assert.False(t, AreaExport.Home())
}

func TestMachinistPremiumRisesWithShift(t *testing.T) {
	assert.Equal(t, 0.0, WorkerHoursPerShift[1].MachinistPremium)
	assert.Greater(t, WorkerHoursPerShift[2].MachinistPremium, WorkerHoursPerShift[1].MachinistPremium)
	assert.Greater(t, WorkerHoursPerShift[3].MachinistPremium, WorkerHoursPerShift[2].MachinistPremium)
	for shift := 1; shift <= 3; shift++ {
		assert.Greater(t, WorkerHoursPerShift[shift].Max(), 0.0)
	}
}

func TestSuppliersHaveCoherentTerms(t *testing.T) {
	for i, s := range Suppliers {
		assert.GreaterOrEqual(t, s.Discount, 0.0, "supplier %d", i)
		assert.Less(t, s.Discount, 1.0, "supplier %d", i)
		assert.GreaterOrEqual(t, s.MinOrder, s.MinDelivery, "supplier %d", i)
	}
}

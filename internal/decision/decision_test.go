package decision

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mohammedsuhaib579-art/TopazVBE-Vercel/internal/company"
	"github.com/mohammedsuhaib579-art/TopazVBE-Vercel/internal/entropy"
	"github.com/mohammedsuhaib579-art/TopazVBE-Vercel/internal/rules"
)

func TestDefaultIsValid(t *testing.T) {
	assert.NoError(t, Default().Validate())
}

func TestValidateRejectsStructuralViolations(t *testing.T) {
	r := Default()
	r.ShiftLevel = 0
	assert.ErrorIs(t, r.Validate(), ErrBadShift)

	r = Default()
	r.ShiftLevel = 4
	assert.ErrorIs(t, r.Validate(), ErrBadShift)

	r = Default()
	r.MaterialSupplier = 4
	assert.ErrorIs(t, r.Validate(), ErrBadSupplier)

	r = Default()
	r.PricesHome[rules.Product2] = math.NaN()
	assert.ErrorIs(t, r.Validate(), ErrNotFinite)

	r = Default()
	r.ManagementBudget = math.Inf(1)
	assert.ErrorIs(t, r.Validate(), ErrNotFinite)

	var missing *Record
	assert.ErrorIs(t, missing.Validate(), ErrMissingRecord)
}

func TestNormalizedAppliesFloors(t *testing.T) {
	r := Default()
	r.AssemblyTime[rules.Product1] = 10 // below the 100-minute technical minimum
	r.SalesSalary = 100
	r.AssemblyWageRate = 1
	r.ManagementBudget = 0
	r.Development[rules.Product3] = -500
	r.Deliveries[rules.Product1][rules.AreaSouth] = -10
	r.VansToSell = -3

	n := r.Normalized()
	assert.Equal(t, rules.MinAssemblyTime[rules.Product1], n.AssemblyTime[rules.Product1])
	assert.Equal(t, rules.MinSalesSalaryPerQuarter, n.SalesSalary)
	assert.Equal(t, rules.AssemblyMinWageRate, n.AssemblyWageRate)
	assert.Equal(t, rules.MinManagementBudget, n.ManagementBudget)
	assert.Equal(t, 0.0, n.Development[rules.Product3])
	assert.Equal(t, 0, n.Deliveries[rules.Product1][rules.AreaSouth])
	assert.Equal(t, 0, n.VansToSell)

	// The submitted record is untouched.
	assert.Equal(t, 10.0, r.AssemblyTime[rules.Product1])
}

func TestPriceSelectsHomeOrExport(t *testing.T) {
	r := Default()
	r.PricesHome[rules.Product1] = 100
	r.PricesExport[rules.Product1] = 110

	assert.Equal(t, 100.0, r.Price(rules.Product1, rules.AreaSouth))
	assert.Equal(t, 100.0, r.Price(rules.Product1, rules.AreaNorth))
	assert.Equal(t, 110.0, r.Price(rules.Product1, rules.AreaExport))
}

func TestAdvertisingSumsChannels(t *testing.T) {
	r := Default()
	r.AdsTradePress[rules.Product1][rules.AreaWest] = 1_000
	r.AdsSupport[rules.Product1][rules.AreaWest] = 2_000
	r.AdsMerchandising[rules.Product1][rules.AreaWest] = 3_000

	assert.Equal(t, 6_000.0, r.Advertising(rules.Product1, rules.AreaWest))
	assert.Equal(t, 6_000.0, r.TotalAdvertising())
}

func TestAutoPolicyProducesValidRecords(t *testing.T) {
	rng := entropy.NewSource(11)
	c := company.New("AI Co")

	for i := 0; i < 100; i++ {
		r := AutoPolicy(rng, c)
		require.NoError(t, r.Validate())

		allocated := 0
		for _, a := range rules.Areas {
			allocated += r.SalesAllocation[a]
		}
		assert.Equal(t, c.Salespeople, allocated, "entire sales force allocated")

		for _, p := range rules.Products {
			assert.GreaterOrEqual(t, r.AssemblyTime[p], rules.MinAssemblyTime[p])
			assert.Greater(t, r.PricesHome[p], 0.0)
			assert.Greater(t, r.PricesExport[p], r.PricesHome[p])
		}
	}
}

func TestAutoPolicyIsDeterministicForSeed(t *testing.T) {
	c := company.New("AI Co")
	a := AutoPolicy(entropy.NewSource(5), c)
	b := AutoPolicy(entropy.NewSource(5), c)
	assert.Equal(t, a, b)
}

package decision

import (
	"github.com/mohammedsuhaib579-art/TopazVBE-Vercel/internal/company"
	"github.com/mohammedsuhaib579-art/TopazVBE-Vercel/internal/entropy"
	"github.com/mohammedsuhaib579-art/TopazVBE-Vercel/internal/rules"
)

// AutoPolicy produces a plausible decision record for a company without a
// human in control. Randomized heuristics only; no memory beyond the ledger
// it is handed.
func AutoPolicy(rng *entropy.Source, c *company.Company) *Record {
	r := Default()

	for i, p := range rules.Products {
		r.PricesHome[p] = float64(100 + 15*i + rng.Between(-10, 10))
		r.PricesExport[p] = r.PricesHome[p] * 1.1
		r.AssemblyTime[p] = rules.MinAssemblyTime[p] * rng.Uniform(1.0, 1.4)
		r.Development[p] = rng.PickFloat(0, 5_000, 10_000)
	}

	for _, p := range rules.Products {
		for _, a := range rules.Areas {
			spend := rng.PickFloat(0, 5_000, 10_000, 20_000)
			r.AdsTradePress[p][a] = spend / 3
			r.AdsSupport[p][a] = spend / 3
			r.AdsMerchandising[p][a] = spend / 3
			r.Deliveries[p][a] = rng.Between(200, 1_500)
		}
	}

	// Spread the sales force with a mild tilt toward the bigger markets.
	weights := [rules.NumAreas]float64{
		rules.AreaSouth:  1.0,
		rules.AreaWest:   0.7,
		rules.AreaNorth:  1.3,
		rules.AreaExport: 1.2,
	}
	totalWeight := 0.0
	for _, w := range weights {
		totalWeight += w
	}
	allocated := 0
	for _, a := range rules.Areas {
		n := int(float64(c.Salespeople) * weights[a] / totalWeight)
		r.SalesAllocation[a] = n
		allocated += n
	}
	for allocated < c.Salespeople {
		a := rules.Areas[rng.Intn(rules.NumAreas)]
		r.SalesAllocation[a]++
		allocated++
	}

	r.CreditDays = rng.PickInt(30, 45, 60)
	r.ShiftLevel = rng.PickInt(1, 2, 3)
	r.MaintenanceHours = rng.PickFloat(20, 40, 60)
	r.DividendPerShare = rng.PickFloat(0, 0.02, 0.04)
	r.ManagementBudget = rng.PickFloat(40_000, 50_000, 60_000)

	r.RecruitSales = rng.PickInt(0, 1, 2)
	r.RecruitAssembly = rng.PickInt(0, 2, 4)
	r.TrainAssembly = rng.PickInt(0, 2, 4)

	r.MaterialQuantity = rng.PickFloat(4_000, 6_000, 8_000)
	r.MaterialSupplier = 0
	r.MaterialDeliveries = 1

	return r
}

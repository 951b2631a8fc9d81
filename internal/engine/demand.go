package engine

import (
	"math"

	"github.com/mohammedsuhaib579-art/TopazVBE-Vercel/internal/company"
	"github.com/mohammedsuhaib579-art/TopazVBE-Vercel/internal/decision"
	"github.com/mohammedsuhaib579-art/TopazVBE-Vercel/internal/econ"
	"github.com/mohammedsuhaib579-art/TopazVBE-Vercel/internal/rules"
)

// companyView is the immutable per-company snapshot the demand stage works
// from: the normalized decision record plus the prior-quarter ledger fields
// that feed attractiveness. Views for every company are captured before any
// company resolves, so one company's in-progress mutation can never leak into
// another's demand.
type companyView struct {
	rec      *decision.Record
	stars    [rules.NumProducts]float64
	devSpend [rules.NumProducts]float64
	stocks   rules.UnitGrid
	backlog  rules.UnitGrid
}

func snapshotView(c *company.Company, rec *decision.Record) companyView {
	return companyView{
		rec:      rec,
		stars:    c.StarRating,
		devSpend: c.DevSpend,
		stocks:   c.Stocks,
		backlog:  c.Backlog,
	}
}

// attractiveness multiplies the independent demand factors for one cell.
// Every input comes from the view, never from live ledger state.
func attractiveness(v companyView, p rules.Product, a rules.Area) float64 {
	price := v.rec.Price(p, a)
	priceFactor := math.Exp(-rules.PriceDecayRate * (price - rules.ReferencePrice(p)))

	adFactor := 1 + rules.AdvertisingPull*math.Sqrt(max(0, v.rec.Advertising(p, a)))

	qRatio := v.rec.AssemblyTime[p] / rules.MinAssemblyTime[p]
	qualityFactor := math.Min(1.4, 0.7+0.7*qRatio)

	starFactor := 0.8 + (v.stars[p]/5.0)*0.4

	devFactor := 1 + 0.0001*math.Log1p(max(0, v.devSpend[p]))

	salesFactor := 1 + rules.SalespersonPull*float64(v.rec.SalesAllocation[a])

	creditFactor := 1 + float64(v.rec.CreditDays-30)/200.0

	deliveryFactor := math.Max(rules.MinDeliveryImage, 1-float64(v.backlog[p][a])/rules.BacklogImageDivisor)

	availFactor := math.Min(rules.MaxAvailabilityFactor, 0.9+float64(v.stocks[p][a])/rules.AvailabilityDivisor)

	return priceFactor * adFactor * qualityFactor * starFactor *
		devFactor * salesFactor * creditFactor * deliveryFactor * availFactor
}

// baseCellDemand is the company-independent demand for one cell: population
// relative to the reference area, the Q4 seasonal uplift, the GDP index, and
// any market-event demand modifier in effect.
func baseCellDemand(eco *econ.Economy, ev *econ.Event, a rules.Area) float64 {
	popFactor := float64(rules.MarketStatistics[a].Total) / float64(rules.MarketStatistics[rules.AreaSouth].Total)
	seasonal := 1.0
	if eco.Quarter == 4 {
		seasonal += rules.SeasonalQ4Uplift
	}
	demand := rules.BaseCellDemand * popFactor * seasonal * (eco.GDP / rules.BaseGDP)
	if ev != nil && ev.Effects.DemandModifier != 0 {
		demand *= 1 + ev.Effects.DemandModifier
	}
	return demand
}

// cellDemand returns company self's unit demand for one cell. With multiple
// companies the cell's market is the base demand scaled by the company count,
// split by relative attractiveness with the share clamped to the configured
// band. Alone, demand is simply base demand times own attractiveness.
func cellDemand(eco *econ.Economy, ev *econ.Event, views []companyView, self int, p rules.Product, a rules.Area) float64 {
	base := baseCellDemand(eco, ev, a)
	if len(views) == 1 {
		return max(0, base*attractiveness(views[self], p, a))
	}

	own := attractiveness(views[self], p, a)
	total := 0.0
	for _, v := range views {
		total += attractiveness(v, p, a)
	}

	share := 1.0 / float64(len(views))
	if total > 0 {
		share = own / total
		share = math.Max(rules.MinMarketShare, math.Min(rules.MaxMarketShare, share))
	}
	return max(0, base*float64(len(views))*share)
}

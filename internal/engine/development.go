package engine

import (
	"github.com/mohammedsuhaib579-art/TopazVBE-Vercel/internal/company"
	"github.com/mohammedsuhaib579-art/TopazVBE-Vercel/internal/rules"
)

// Development thresholds and probabilities. Spend accumulates per product
// until a breakthrough; a MAJOR resets the accumulator for the next project.
const (
	majorSpendThreshold = 100_000.0
	majorChance         = 0.15
	minorSpendThreshold = 30_000.0
	minorChance         = 0.30
	minorStarStep       = 0.1
	majorStarStep       = 0.5
	neglectDecayChance  = 0.1
)

// resolveDevelopment is stage 4: accumulate spend, roll for breakthroughs.
// A MAJOR success is only reported when no unimplemented MAJOR already exists
// for the product. Abandoned programs risk star-rating decay.
func (r *run) resolveDevelopment() {
	c, rec := r.c, r.rec

	for _, p := range rules.Products {
		spend := rec.Development[p]
		if spend > 0 {
			c.DevSpend[p] += spend
			c.DevActive[p] = true
		}

		accumulated := c.DevSpend[p]
		switch {
		case accumulated > majorSpendThreshold && r.rng.Chance(majorChance):
			if c.PendingMajor(p) == nil {
				c.Improvements = append(c.Improvements, &company.Improvement{
					Product: p,
					Kind:    company.ImprovementMajor,
					Quarter: r.eco.Quarter,
					Year:    r.eco.Year,
				})
				r.devOutcomes[p] = "MAJOR"
				c.DevSpend[p] = 0
			}
		case accumulated > minorSpendThreshold && r.rng.Chance(minorChance):
			r.devOutcomes[p] = "MINOR"
			c.StarRating[p] = min(5, c.StarRating[p]+minorStarStep)
		}

		if accumulated == 0 && c.DevActive[p] && r.rng.Chance(neglectDecayChance) {
			c.StarRating[p] = max(1, c.StarRating[p]-minorStarStep)
		}
	}
}

// implementMajors is stage 5: flagged products implement every pending MAJOR
// improvement at once. The old design's stock becomes unsellable and is
// written off; the write-off value lands in overheads at stage 11.
func (r *run) implementMajors() {
	c, rec := r.c, r.rec

	for _, p := range rules.Products {
		if !rec.ImplementMajor[p] {
			continue
		}
		implemented := false
		for _, imp := range c.Improvements {
			if imp.Product == p && imp.Kind == company.ImprovementMajor && !imp.Implemented {
				imp.Implemented = true
				implemented = true
			}
		}
		if !implemented {
			continue
		}
		r.writeOffs[p] = c.Stocks.ProductTotal(p)
		for _, a := range rules.Areas {
			c.Stocks[p][a] = 0
		}
		c.StarRating[p] = min(5, c.StarRating[p]+majorStarStep)
	}
}

// writeOffValue prices the stock cleared by MAJOR implementations.
func (r *run) writeOffValue() float64 {
	total := 0.0
	for _, p := range rules.Products {
		total += float64(r.writeOffs[p]) * rules.ProductStockValue[p]
	}
	return total
}

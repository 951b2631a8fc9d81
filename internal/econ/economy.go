// Package econ holds the shared macroeconomic state and the quarterly market
// events that perturb it. One Economy instance is shared by every company;
// only Advance mutates it.
package econ

import (
	"log/slog"

	"github.com/mohammedsuhaib579-art/TopazVBE-Vercel/internal/entropy"
	"github.com/mohammedsuhaib579-art/TopazVBE-Vercel/internal/rules"
)

// Economy is the process-wide macro state. The bank rate and material price
// stored here are the values in effect for the quarter being resolved; Advance
// produces the values for the next one.
type Economy struct {
	Quarter       int     `json:"quarter"` // 1–4
	Year          int     `json:"year"`
	GDP           float64 `json:"gdp"`
	Unemployment  float64 `json:"unemployment"`   // percentage points
	BankRate      float64 `json:"bank_rate"`      // central-bank rate, %
	MaterialPrice float64 `json:"material_price"` // per 1000 units
}

// New returns the economy at its base starting values.
func New() *Economy {
	return &Economy{
		Quarter:       1,
		Year:          1,
		GDP:           rules.BaseGDP,
		Unemployment:  rules.BaseUnemployment,
		BankRate:      rules.BaseBankRate,
		MaterialPrice: rules.BaseMaterialPrice,
	}
}

// Advance rolls the calendar forward one quarter and draws the next quarter's
// macro values. The quarter being closed must already have been resolved with
// the values currently in effect. Floors and caps: GDP ≥ 80, unemployment in
// [2, 15], bank rate ≥ 0.25, material price ≥ 60.
func (e *Economy) Advance(rng *entropy.Source) {
	e.Quarter++
	if e.Quarter > 4 {
		e.Quarter = 1
		e.Year++
	}

	shock := rng.Normal(0, 1.5)
	e.GDP = max(80, e.GDP*(1+shock/100))

	uShock := rng.Normal(0, 0.3)
	e.Unemployment = min(15, max(2, e.Unemployment+uShock-shock/40))

	rateTarget := 2.5 + (e.GDP-rules.BaseGDP)/40
	e.BankRate = max(0.25, 0.75*e.BankRate+0.25*rateTarget)

	drift := (e.BankRate-2.5)/200 + rng.Normal(0, 0.01)
	e.MaterialPrice = max(60, e.MaterialPrice*(1+drift))

	slog.Debug("economy advanced",
		"quarter", e.Quarter,
		"year", e.Year,
		"gdp", e.GDP,
		"unemployment", e.Unemployment,
		"bank_rate", e.BankRate,
		"material_price", e.MaterialPrice,
	)
}

// DepositRate returns the quarterly-applicable annual deposit rate as a
// fraction, floored at zero.
func (e *Economy) DepositRate() float64 {
	return max(0, (e.BankRate+rules.DepositRateSpread)/100)
}

// OverdraftRate returns the annual overdraft rate as a fraction.
func (e *Economy) OverdraftRate() float64 {
	return (e.BankRate + rules.OverdraftRateSpread) / 100
}

// LoanRate returns the annual unsecured-loan rate as a fraction.
func (e *Economy) LoanRate() float64 {
	return (e.BankRate + rules.LoanRateSpread) / 100
}

package company

import (
	"github.com/samber/lo"

	"github.com/mohammedsuhaib579-art/TopazVBE-Vercel/internal/rules"
)

// Valuation queries. All are pure reads over ledger state; the resolver calls
// them both for eligibility checks and for reporting, so none may mutate.

// MachineValue sums the book values of the installed machines.
func (c *Company) MachineValue() float64 {
	return lo.Sum(c.MachineValues)
}

// FleetValue sums the depreciated values of the vehicle fleet.
func (c *Company) FleetValue() float64 {
	total := 0.0
	for _, age := range c.VehicleAges {
		total += VehicleValue(age)
	}
	return total
}

// StockValue values finished stock at the standard per-product valuation.
func (c *Company) StockValue() float64 {
	total := 0.0
	for _, p := range rules.Products {
		total += float64(c.Stocks.ProductTotal(p)) * rules.ProductStockValue[p]
	}
	return total
}

// MaterialValue values raw-material stock at 50% of the given price per 1000.
func (c *Company) MaterialValue(materialPricePer1000 float64) float64 {
	return c.MaterialStock * (materialPricePer1000 / 1000) * 0.5
}

// NetWorth is assets minus liabilities at the given material price.
func (c *Company) NetWorth(materialPricePer1000 float64) float64 {
	assets := c.Cash +
		c.PropertyValue +
		c.MachineValue() +
		c.FleetValue() +
		c.StockValue() +
		c.MaterialValue(materialPricePer1000) +
		c.Debtors
	liabilities := c.Overdraft + c.UnsecuredLoan + c.TaxLiability + c.Creditors
	return assets - liabilities
}

// OverdraftLimit applies the secured-borrowing formula: 100% cash and product
// stock, 50% of machines, vehicles, materials and debtors, 25% property, less
// 100% of tax due and creditors. Never negative.
func (c *Company) OverdraftLimit(materialPricePer1000 float64) float64 {
	limit := c.Cash +
		c.StockValue() +
		0.5*(c.MachineValue()+c.FleetValue()+c.MaterialValue(materialPricePer1000)+c.Debtors) +
		0.25*c.PropertyValue -
		(c.TaxLiability + c.Creditors)
	return max(0, limit)
}

// Creditworthiness is the overdraft limit net of drawn overdraft, unsecured
// loans and the deposit reserved per not-yet-installed ordered machine.
func (c *Company) Creditworthiness(materialPricePer1000 float64) float64 {
	committed := 0.0
	for _, mo := range c.MachineOrders {
		if !mo.Installed {
			committed += float64(mo.Quantity) * rules.MachineDeposit
		}
	}
	cw := c.OverdraftLimit(materialPricePer1000) - c.Overdraft - c.UnsecuredLoan - committed
	return max(0, cw)
}

// Package decision defines the quarterly decision record submitted for each
// company, its structural validation, and the automated policy that stands in
// for companies without a human at the controls.
//
// Validation is two-tier: structural problems (nil records, out-of-range
// enums, non-finite numbers) are hard errors rejected before any company
// resolves; business-rule excesses (over-cap training, unaffordable orders)
// are clamped silently by the resolver at the point of use.
package decision

import (
	"errors"
	"fmt"
	"math"

	"github.com/mohammedsuhaib579-art/TopazVBE-Vercel/internal/rules"
)

var (
	// ErrMissingRecord means a required company has no decision record.
	ErrMissingRecord = errors.New("missing decision record")
	// ErrSurplusRecords means more records were submitted than companies exist.
	ErrSurplusRecords = errors.New("more decision records than companies")
	// ErrBadShift means the shift level is outside 1–3.
	ErrBadShift = errors.New("shift level must be 1, 2 or 3")
	// ErrBadSupplier means the material supplier index is outside 0–3.
	ErrBadSupplier = errors.New("material supplier must be 0–3")
	// ErrNotFinite means a numeric field is NaN or infinite.
	ErrNotFinite = errors.New("non-finite numeric field")
)

// Record is one company's complete decision set for one quarter. Immutable
// once submitted; the resolver works from a normalized copy.
type Record struct {
	// Product improvements.
	ImplementMajor [rules.NumProducts]bool `json:"implement_major"`

	// Prices.
	PricesHome   [rules.NumProducts]float64 `json:"prices_home"`
	PricesExport [rules.NumProducts]float64 `json:"prices_export"`

	// Advertising, three channels per product and area.
	AdsTradePress    rules.MoneyGrid `json:"ads_trade_press"`
	AdsSupport       rules.MoneyGrid `json:"ads_support"`
	AdsMerchandising rules.MoneyGrid `json:"ads_merchandising"`

	// Production settings.
	AssemblyTime [rules.NumProducts]float64 `json:"assembly_time"` // minutes per unit
	ShiftLevel   int                        `json:"shift_level"`   // 1–3
	Deliveries   rules.UnitGrid             `json:"deliveries"`    // scheduled production

	// Sales force.
	SalesAllocation [rules.NumAreas]int `json:"sales_allocation"`
	SalesSalary     float64             `json:"sales_salary"`
	SalesCommission float64             `json:"sales_commission"` // percent of revenue

	// Pay and budgets.
	AssemblyWageRate float64 `json:"assembly_wage_rate"`
	ManagementBudget float64 `json:"management_budget"`
	MaintenanceHours float64 `json:"maintenance_hours"` // per machine

	// Finance.
	DividendPerShare float64 `json:"dividend_per_share"`
	CreditDays       int     `json:"credit_days"`

	// Fleet and machines.
	VansToBuy       int `json:"vans_to_buy"`
	VansToSell      int `json:"vans_to_sell"`
	MachinesToSell  int `json:"machines_to_sell"`
	MachinesToOrder int `json:"machines_to_order"`

	// Information purchases.
	BuyCompetitorInfo bool `json:"buy_competitor_info"`
	BuyMarketShares   bool `json:"buy_market_shares"`

	// Product development.
	Development [rules.NumProducts]float64 `json:"development"`

	// Personnel.
	RecruitSales    int `json:"recruit_sales"`
	DismissSales    int `json:"dismiss_sales"`
	TrainSales      int `json:"train_sales"`
	RecruitAssembly int `json:"recruit_assembly"`
	DismissAssembly int `json:"dismiss_assembly"`
	TrainAssembly   int `json:"train_assembly"`

	// Materials.
	MaterialQuantity   float64 `json:"material_quantity"`
	MaterialSupplier   int     `json:"material_supplier"`
	MaterialDeliveries int     `json:"material_deliveries"`
}

// Default returns a minimal do-nothing record: shift 1, minimum times and
// rates, 30-day credit, no spending.
func Default() *Record {
	r := &Record{
		ShiftLevel:       1,
		SalesSalary:      rules.MinSalesSalaryPerQuarter,
		AssemblyWageRate: rules.AssemblyMinWageRate,
		ManagementBudget: rules.MinManagementBudget,
		CreditDays:       30,
	}
	for _, p := range rules.Products {
		r.AssemblyTime[p] = rules.MinAssemblyTime[p]
	}
	return r
}

// Price returns the record's price for a product in an area.
func (r *Record) Price(p rules.Product, a rules.Area) float64 {
	if a.Home() {
		return r.PricesHome[p]
	}
	return r.PricesExport[p]
}

// Advertising returns combined three-channel spend for one cell.
func (r *Record) Advertising(p rules.Product, a rules.Area) float64 {
	return r.AdsTradePress[p][a] + r.AdsSupport[p][a] + r.AdsMerchandising[p][a]
}

// TotalAdvertising sums advertising spend across every cell and channel.
func (r *Record) TotalAdvertising() float64 {
	return r.AdsTradePress.Total() + r.AdsSupport.Total() + r.AdsMerchandising.Total()
}

// TotalDevelopment sums product development spend.
func (r *Record) TotalDevelopment() float64 {
	total := 0.0
	for _, v := range r.Development {
		total += v
	}
	return total
}

// Validate checks the structural contract. A failed record aborts the whole
// step before any ledger mutation.
func (r *Record) Validate() error {
	if r == nil {
		return ErrMissingRecord
	}
	if r.ShiftLevel < 1 || r.ShiftLevel > 3 {
		return fmt.Errorf("%w: got %d", ErrBadShift, r.ShiftLevel)
	}
	if r.MaterialSupplier < 0 || r.MaterialSupplier >= len(rules.Suppliers) {
		return fmt.Errorf("%w: got %d", ErrBadSupplier, r.MaterialSupplier)
	}
	for _, v := range []float64{
		r.SalesSalary, r.SalesCommission, r.AssemblyWageRate,
		r.ManagementBudget, r.MaintenanceHours, r.DividendPerShare,
		r.MaterialQuantity,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrNotFinite
		}
	}
	for _, p := range rules.Products {
		for _, v := range []float64{
			r.PricesHome[p], r.PricesExport[p], r.AssemblyTime[p], r.Development[p],
		} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return ErrNotFinite
			}
		}
	}
	return nil
}

// Normalized returns a copy with business-rule floors applied: assembly time
// at least the technical minimum, pay at least the statutory minima, no
// negative spends or counts. Callers keep the original record untouched.
func (r *Record) Normalized() *Record {
	n := *r
	for _, p := range rules.Products {
		n.AssemblyTime[p] = max(n.AssemblyTime[p], rules.MinAssemblyTime[p])
		n.Development[p] = max(n.Development[p], 0)
		n.PricesHome[p] = max(n.PricesHome[p], 0)
		n.PricesExport[p] = max(n.PricesExport[p], 0)
		for _, a := range rules.Areas {
			n.AdsTradePress[p][a] = max(n.AdsTradePress[p][a], 0)
			n.AdsSupport[p][a] = max(n.AdsSupport[p][a], 0)
			n.AdsMerchandising[p][a] = max(n.AdsMerchandising[p][a], 0)
			n.Deliveries[p][a] = maxInt(n.Deliveries[p][a], 0)
		}
	}
	for _, a := range rules.Areas {
		n.SalesAllocation[a] = maxInt(n.SalesAllocation[a], 0)
	}
	n.SalesSalary = max(n.SalesSalary, rules.MinSalesSalaryPerQuarter)
	n.SalesCommission = max(n.SalesCommission, 0)
	n.AssemblyWageRate = max(n.AssemblyWageRate, rules.AssemblyMinWageRate)
	n.ManagementBudget = max(n.ManagementBudget, rules.MinManagementBudget)
	n.MaintenanceHours = max(n.MaintenanceHours, 0)
	n.DividendPerShare = max(n.DividendPerShare, 0)
	n.CreditDays = maxInt(n.CreditDays, 0)
	n.VansToBuy = maxInt(n.VansToBuy, 0)
	n.VansToSell = maxInt(n.VansToSell, 0)
	n.MachinesToSell = maxInt(n.MachinesToSell, 0)
	n.MachinesToOrder = maxInt(n.MachinesToOrder, 0)
	n.RecruitSales = maxInt(n.RecruitSales, 0)
	n.DismissSales = maxInt(n.DismissSales, 0)
	n.TrainSales = maxInt(n.TrainSales, 0)
	n.RecruitAssembly = maxInt(n.RecruitAssembly, 0)
	n.DismissAssembly = maxInt(n.DismissAssembly, 0)
	n.TrainAssembly = maxInt(n.TrainAssembly, 0)
	n.MaterialQuantity = max(n.MaterialQuantity, 0)
	n.MaterialDeliveries = maxInt(n.MaterialDeliveries, 0)
	return &n
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

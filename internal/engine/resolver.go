// Package engine resolves quarters. The resolver runs one company through the
// ordered stage pipeline against a shared economy and the full set of decision
// snapshots; the orchestrator in simulation.go drives it for every company and
// advances the economy once per step.
package engine

import (
	"log/slog"

	"github.com/mohammedsuhaib579-art/TopazVBE-Vercel/internal/company"
	"github.com/mohammedsuhaib579-art/TopazVBE-Vercel/internal/decision"
	"github.com/mohammedsuhaib579-art/TopazVBE-Vercel/internal/econ"
	"github.com/mohammedsuhaib579-art/TopazVBE-Vercel/internal/entropy"
	"github.com/mohammedsuhaib579-art/TopazVBE-Vercel/internal/report"
	"github.com/mohammedsuhaib579-art/TopazVBE-Vercel/internal/rules"
	"github.com/mohammedsuhaib579-art/TopazVBE-Vercel/internal/transport"
)

// run carries one company through the quarter. Stage methods mutate the
// ledger and accumulate the intermediate figures the later stages and the
// final report need. A run is built, resolved and discarded per company.
type run struct {
	eco   *econ.Economy
	rng   *entropy.Source
	event *econ.Event
	views []companyView
	self  int

	c   *company.Company
	rec *decision.Record
	rep *report.Report

	// Stage scratch, filled in pipeline order.
	machinesInstalled int
	machinesSold      int
	vehiclesBought    int
	vehiclesSold      int
	capitalReceipts   float64
	capitalPayments   float64

	materialDelivered float64
	materialCost      float64
	materialOpening   float64
	materialUsed      float64
	materialOnOrder   float64

	devOutcomes [rules.NumProducts]string
	writeOffs   [rules.NumProducts]int

	machinesOrdered   int
	materialOrderMade bool

	salesRecruited    int
	assemblyRecruited int
	salesTrained      int
	assemblyTrained   int
	salesDismissed    int
	assemblyDismissed int

	strikeWeeks        int
	hoursPerWorker     float64
	effHoursPerWorker  float64
	machineHoursAvail  float64
	effMachineHours    float64
	machineHoursWorked float64
	plannedUnits       int
	capacityRatio      float64

	produced rules.UnitGrid
	rejected rules.UnitGrid
	orders   rules.UnitGrid
	sales    rules.UnitGrid

	openingStockValue float64
	revenue           float64
	unitsSold         int

	transportBill transport.Breakdown

	assemblyWages      float64
	machinistWages     float64
	productionOverhead float64
	costOfSales        float64
	overheads          report.OverheadBreakdown
	totalOverheads     float64
	grossProfit        float64
	ebitda             float64
	depreciation       float64
	interestReceived   float64
	interestPaid       float64
	profitBeforeTax    float64
	tax                float64
	netProfit          float64
	dividends          float64
	inflows            float64
	outflows           float64
	netCashFlow        float64
}

// resolveCompany runs the full pipeline for one company and returns its
// report. The views slice must have been snapshotted before any company in
// the step mutated its ledger.
func resolveCompany(eco *econ.Economy, rng *entropy.Source, ev *econ.Event,
	views []companyView, self int, c *company.Company, rec *decision.Record) *report.Report {

	r := &run{
		eco:   eco,
		rng:   rng,
		event: ev,
		views: views,
		self:  self,
		c:     c,
		rec:   rec,
		rep:   &report.Report{Company: c.Name, Quarter: eco.Quarter, Year: eco.Year},
	}

	r.settlePersonnel()      // 1
	r.installAssets()        // 2
	r.deliverMaterials()     // 3
	r.resolveDevelopment()   // 4
	r.implementMajors()      // 5
	r.intakeOrders()         // 6
	r.decidePersonnel()      // 7
	r.planProduction()       // 8
	r.consumeMaterials()     // 9
	r.sellIntoMarkets()      // 10
	r.aggregateCosts()       // 11
	r.depreciate()           // 12
	r.chargeInterestAndTax() // 13
	r.settleCash()           // 14
	r.updateEquity()         // 15

	r.closeQuarter()
	r.fillReport()

	slog.Debug("company resolved",
		"company", c.Name,
		"quarter", eco.Quarter,
		"year", eco.Year,
		"revenue", r.revenue,
		"net_profit", r.netProfit,
		"cash", c.Cash,
	)
	return r.rep
}

// eventCostMultiplier returns the overhead multiplier from this quarter's
// market event, 1 when none applies to this company.
func (r *run) eventCostMultiplier() float64 {
	if r.event == nil || r.event.Effects.CostModifier == 0 {
		return 1
	}
	if !r.event.Effects.AffectsAll && r.event.Effects.TargetCompany != r.self {
		return 1
	}
	return 1 + r.event.Effects.CostModifier
}

// closeQuarter applies the end-of-quarter carry-over updates that no report
// figure depends on: efficiency drift, shift memory, strike consumption.
func (r *run) closeQuarter() {
	maintFactor := min(1.1, 0.9+r.rec.MaintenanceHours/200.0)
	r.c.MachineEfficiency = min(1.0, r.c.MachineEfficiency*maintFactor)
	r.c.LastShift = r.rec.ShiftLevel
	r.c.StrikeWeeksNext = 0
}

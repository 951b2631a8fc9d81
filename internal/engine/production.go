package engine

import (
	"math"

	"github.com/mohammedsuhaib579-art/TopazVBE-Vercel/internal/rules"
)

// planProduction is stage 8: derive the binding capacity ratio from machining
// and assembly hours against the scheduled mix, then split each scheduled line
// into good and rejected units. Slower declared assembly improves quality and
// cuts the reject rate.
func (r *run) planProduction() {
	c, rec := r.c, r.rec
	shift := rec.ShiftLevel
	wh := rules.WorkerHoursPerShift[shift]

	r.strikeWeeks = c.StrikeWeeksNext
	r.hoursPerWorker = wh.Max()
	strikeLost := float64(r.strikeWeeks) * wh.Basic / 12.0
	r.effHoursPerWorker = math.Max(0, r.hoursPerWorker-strikeLost)

	r.machineHoursAvail = float64(c.Machines()) * rules.MachineHoursPerShift[shift]
	maintFactor := math.Min(1.1, 0.9+rec.MaintenanceHours/200.0)
	efficiency := math.Min(1.0, c.MachineEfficiency*maintFactor)
	r.effMachineHours = r.machineHoursAvail * efficiency

	assemblyHours := float64(c.AssemblyWorkers) * r.effHoursPerWorker

	r.plannedUnits = rec.Deliveries.Total()
	machiningNeeded := 0.0
	assemblyNeeded := 0.0
	for _, p := range rules.Products {
		units := float64(rec.Deliveries.ProductTotal(p))
		machiningNeeded += units * rules.MinMachiningTime[p] / 60
		assemblyNeeded += units * rec.AssemblyTime[p] / 60
	}

	ratio := 1.0
	if machiningNeeded > 0 {
		ratio = math.Min(ratio, r.effMachineHours/machiningNeeded)
	}
	if assemblyNeeded > 0 {
		ratio = math.Min(ratio, assemblyHours/assemblyNeeded)
	}
	r.capacityRatio = math.Min(1, ratio)

	for _, p := range rules.Products {
		qRatio := rec.AssemblyTime[p] / rules.MinAssemblyTime[p]
		rejectRate := math.Max(rules.MinRejectRate, rules.BaseRejectRate/math.Max(0.8, qRatio))
		for _, a := range rules.Areas {
			qty := int(float64(rec.Deliveries[p][a]) * r.capacityRatio)
			bad := int(float64(qty) * rejectRate)
			r.rejected[p][a] = bad
			r.produced[p][a] = qty - bad
			r.machineHoursWorked += float64(qty) * rules.MinMachiningTime[p] / 60
		}
	}
}

// sellIntoMarkets is stage 10: demand per cell from the pre-step snapshots,
// sales capped by availability, unmet demand half-decaying into backlog.
func (r *run) sellIntoMarkets() {
	c := r.c
	r.openingStockValue = stockValueOf(c.Opening.Stocks)

	var newStocks, newBacklog rules.UnitGrid
	for _, p := range rules.Products {
		for _, a := range rules.Areas {
			demand := int(cellDemand(r.eco, r.event, r.views, r.self, p, a))
			r.orders[p][a] = demand

			available := c.Stocks[p][a] + r.produced[p][a]
			potential := c.Backlog[p][a] + demand
			sold := min(available, potential)

			r.sales[p][a] = sold
			r.unitsSold += sold
			newStocks[p][a] = available - sold
			newBacklog[p][a] = (potential - sold) / 2

			r.revenue += float64(sold) * r.rec.Price(p, a)
		}
	}
	c.Stocks = newStocks
	c.Backlog = newBacklog
}

func stockValueOf(g rules.UnitGrid) float64 {
	total := 0.0
	for _, p := range rules.Products {
		total += float64(g.ProductTotal(p)) * rules.ProductStockValue[p]
	}
	return total
}

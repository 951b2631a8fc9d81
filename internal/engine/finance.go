package engine

import (
	"math"

	"github.com/mohammedsuhaib579-art/TopazVBE-Vercel/internal/report"
	"github.com/mohammedsuhaib579-art/TopazVBE-Vercel/internal/rules"
	"github.com/mohammedsuhaib579-art/TopazVBE-Vercel/internal/transport"
)

// aggregateCosts is stage 11: direct cost of sales plus the full operating
// overhead breakdown. A market event's cost modifier scales every overhead
// line for the companies it touches.
func (r *run) aggregateCosts() {
	c, rec := r.c, r.rec
	shift := rec.ShiftLevel
	wh := rules.WorkerHoursPerShift[shift]

	r.assemblyWages = float64(c.AssemblyWorkers) * r.effHoursPerWorker *
		math.Min(1, r.capacityRatio) * c.AssemblyWageRate
	machinistRate := c.AssemblyWageRate * (1 + wh.MachinistPremium)
	r.machinistWages = r.machineHoursWorked * machinistRate

	r.productionOverhead = rules.SupervisionCostPerShift*float64(shift) +
		rules.ProductionOverheadPerMachine*float64(c.Machines()) +
		rules.MachineRunningCostPerHour*r.machineHoursWorked +
		rules.PlanningCostPerUnit*float64(r.plannedUnits)

	r.costOfSales = r.materialCost + r.assemblyWages + r.machinistWages + r.productionOverhead

	r.transportBill = transport.Cost(r.produced, c.Vehicles())

	guarantee := 0.0
	for _, p := range rules.Products {
		guarantee += float64(r.rejected.ProductTotal(p)) * rules.ServicingCharge[p]
	}

	warehousing := rules.FixedQuarterlyWarehouseCost +
		rules.ProductStoragePerUnit*float64(c.Stocks.Total()) +
		rules.FixedQuarterlyAdminCost +
		rules.ExternalStoragePerUnit*math.Max(0, c.MaterialStock-rules.FactoryStorageCapacity)
	if r.materialOrderMade {
		warehousing += rules.CostPerOrder
	}

	info := 0.0
	if rec.BuyCompetitorInfo {
		info += rules.CompetitorInfoCost
	}
	if rec.BuyMarketShares {
		info += rules.MarketSharesInfoCost
	}

	o := &r.overheads
	o.Advertising = rec.TotalAdvertising()
	o.ProductDevelopment = rec.TotalDevelopment()
	o.SalesForce = float64(c.Salespeople)*c.SalesSalary + r.revenue*c.SalesCommissionRate/100
	o.SalesOffice = float64(c.Salespeople) * rules.SalespersonExpenses
	o.PersonnelDepartment = r.personnelCosts()
	o.Maintenance = float64(c.Machines()) * rec.MaintenanceHours * rules.ContractedMaintenanceRate
	o.WarehousingPurchasing = warehousing
	o.FleetTransport = r.transportBill.FleetFixed + r.transportBill.OwnRunning
	o.HiredTransport = r.transportBill.HiredRunning
	o.GuaranteeServicing = guarantee
	o.BusinessIntelligence = info
	o.ManagementBudget = rec.ManagementBudget
	o.CreditControl = float64(r.unitsSold) * rules.CreditControlPerUnit
	o.OtherMiscellaneous = rules.FixedOverheadsPerQuarter + r.writeOffValue()

	m := r.eventCostMultiplier()
	if m != 1 {
		o.Advertising *= m
		o.SalesForce *= m
		o.SalesOffice *= m
		o.GuaranteeServicing *= m
		o.FleetTransport *= m
		o.HiredTransport *= m
		o.ProductDevelopment *= m
		o.PersonnelDepartment *= m
		o.Maintenance *= m
		o.WarehousingPurchasing *= m
		o.BusinessIntelligence *= m
		o.ManagementBudget *= m
		o.CreditControl *= m
		o.OtherMiscellaneous *= m
	}

	r.totalOverheads = o.Advertising + o.SalesForce + o.SalesOffice +
		o.GuaranteeServicing + o.FleetTransport + o.HiredTransport +
		o.ProductDevelopment + o.PersonnelDepartment + o.Maintenance +
		o.WarehousingPurchasing + o.BusinessIntelligence + o.ManagementBudget +
		o.CreditControl + o.OtherMiscellaneous

	r.grossProfit = r.revenue - r.costOfSales
	r.ebitda = r.grossProfit - r.totalOverheads
}

// chargeInterestAndTax is stage 13. Interest accrues quarterly on the balances
// carried into settlement. Tax accrues against a running annual total and is
// only charged, incrementally, in the fiscal fourth quarter.
func (r *run) chargeInterestAndTax() {
	c, eco := r.c, r.eco

	r.interestReceived = math.Max(0, c.Cash) * eco.DepositRate() / 4
	r.interestPaid = (c.Overdraft*eco.OverdraftRate() + c.UnsecuredLoan*eco.LoanRate()) / 4

	r.profitBeforeTax = r.ebitda + r.interestReceived - r.interestPaid - r.depreciation

	c.TaxableProfitYTD += r.profitBeforeTax
	if eco.Quarter == 4 {
		yearly := math.Max(0, c.TaxableProfitYTD*rules.TaxRate)
		r.tax = math.Max(0, yearly-c.TaxLiability)
		c.TaxLiability = yearly
		c.TaxableProfitYTD = 0
	}

	r.netProfit = r.profitBeforeTax - r.tax
}

// settleCash is stage 14: receipts at the standard cash fraction of revenue,
// payments split between immediate and deferred per category, last quarter's
// creditors settled, dividends clamped, and any shortfall drawn from overdraft
// headroom then unsecured loan so cash never closes negative.
func (r *run) settleCash() {
	c, rec := r.c, r.rec
	o := &r.overheads

	r.inflows = 0.7*r.revenue + r.interestReceived

	immediate := r.costOfSales*0.8 +
		o.ProductDevelopment +
		o.SalesForce +
		o.SalesOffice +
		o.PersonnelDepartment +
		o.WarehousingPurchasing +
		o.ManagementBudget +
		(o.FleetTransport+o.HiredTransport)*0.5 +
		o.CreditControl +
		r.interestPaid +
		r.tax

	deferred := r.costOfSales*0.2 +
		o.Advertising +
		o.Maintenance +
		o.GuaranteeServicing +
		o.BusinessIntelligence +
		(o.FleetTransport+o.HiredTransport)*0.5 +
		o.OtherMiscellaneous

	r.outflows = immediate + c.Opening.Creditors
	c.Creditors = deferred

	declared := rec.DividendPerShare * c.SharesOutstanding
	r.dividends = math.Min(declared, math.Max(0, r.netProfit+c.Reserves+c.Cash))

	r.netCashFlow = r.inflows - r.outflows - r.dividends +
		r.capitalReceipts - r.capitalPayments
	c.Cash += r.netCashFlow

	if c.Cash < 0 {
		needed := -c.Cash
		c.Cash = 0
		headroom := math.Max(0, c.OverdraftLimit(r.eco.MaterialPrice)-c.Overdraft)
		fromOverdraft := math.Min(needed, headroom)
		c.Overdraft += fromOverdraft
		if remaining := needed - fromOverdraft; remaining > 0 {
			c.UnsecuredLoan += remaining
		}
	}

	c.Reserves += r.netProfit - r.dividends
	c.Debtors = r.revenue * float64(rec.CreditDays) / 90
}

// updateEquity is stage 15: the share price is a damped blend of its previous
// value, net worth per share, earnings and dividend, floored above zero.
func (r *run) updateEquity() {
	c := r.c
	netWorth := c.NetWorth(r.eco.MaterialPrice)
	eps := 0.0
	dps := 0.0
	if c.SharesOutstanding > 0 {
		eps = r.netProfit / c.SharesOutstanding
		dps = r.dividends / c.SharesOutstanding
	}
	c.SharePrice = math.Max(0.1,
		0.5*c.SharePrice+
			0.3*(netWorth/c.SharesOutstanding)+
			5*eps+
			3*dps)
	r.rep.NetWorth = netWorth
}

// fillReport assembles the write-once result record from the run's figures
// and the closing ledger.
func (r *run) fillReport() {
	c, rep := r.c, r.rep

	rep.Revenue = r.revenue
	rep.CostOfSales = r.costOfSales
	rep.GrossProfit = r.grossProfit
	rep.TotalOverheads = r.totalOverheads
	rep.EBITDA = r.ebitda
	rep.InterestReceived = r.interestReceived
	rep.InterestPaid = r.interestPaid
	rep.Depreciation = r.depreciation
	rep.ProfitBeforeTax = r.profitBeforeTax
	rep.Tax = r.tax
	rep.NetProfit = r.netProfit
	rep.Dividends = r.dividends
	rep.Retained = r.netProfit - r.dividends

	rep.Cash = c.Cash
	rep.Overdraft = c.Overdraft
	rep.Loan = c.UnsecuredLoan
	rep.SharePrice = c.SharePrice

	rep.ShiftLevel = r.rec.ShiftLevel
	rep.MachineEfficiency = c.MachineEfficiency
	rep.Machines = c.Machines()
	rep.MachinesInstalled = r.machinesInstalled
	rep.MachinesOrdered = r.machinesOrdered
	rep.MachinesSold = r.machinesSold
	rep.VehiclesBought = r.vehiclesBought
	rep.VehiclesSold = r.vehiclesSold

	rep.MaterialFlow = report.Materials{
		Opening:   r.materialOpening,
		Delivered: r.materialDelivered,
		Used:      r.materialUsed,
		Closing:   c.MaterialStock,
		OnOrder:   r.materialOnOrder,
	}

	rep.Scheduled = r.rec.Deliveries
	rep.Produced = r.produced
	rep.Rejected = r.rejected
	rep.Orders = r.orders
	rep.Sales = r.sales
	rep.Stocks = c.Stocks
	rep.Backlog = c.Backlog

	rep.DevelopmentOutcomes = r.devOutcomes
	rep.StockWriteOffs = r.writeOffs
	rep.StarRating = c.StarRating

	rep.Personnel = report.PersonnelMovements{
		Opening: report.PersonnelCounts{
			Sales:      c.Opening.Salespeople,
			Assembly:   c.Opening.AssemblyWorkers,
			Machinists: c.Opening.Machinists,
		},
		Recruited: report.PersonnelCounts{Sales: r.salesRecruited, Assembly: r.assemblyRecruited},
		Trained:   report.PersonnelCounts{Sales: r.salesTrained, Assembly: r.assemblyTrained},
		Dismissed: report.PersonnelCounts{Sales: r.salesDismissed, Assembly: r.assemblyDismissed},
		InPipeline: report.PersonnelCounts{
			Sales:    c.SalesRecruits.Total() + c.SalesTrainees.Total(),
			Assembly: c.AssemblyRecruits.Total() + c.AssemblyTrainees.Total(),
		},
	}

	rep.Usage = report.ResourceUsage{
		AssemblyHoursAvailable: float64(c.AssemblyWorkers) * r.hoursPerWorker,
		AssemblyHoursWorked:    float64(c.AssemblyWorkers) * r.effHoursPerWorker * math.Min(1, r.capacityRatio),
		MachineHoursAvailable:  r.machineHoursAvail,
		MachineHoursWorked:     r.machineHoursWorked,
		MaintenanceHours:       float64(c.Machines()) * r.rec.MaintenanceHours,
		VehiclesAvailable:      c.Opening.Vehicles,
		OwnVehicleDays:         r.transportBill.OwnDays,
		HiredVehicleDays:       r.transportBill.HiredDays,
		StrikeWeeksNext:        r.strikeWeeks,
		CapacityRatio:          r.capacityRatio,
	}

	rep.Overheads = r.overheads
	rep.DirectCosts = report.CostOfSalesBreakdown{
		OpeningStockValue:  r.openingStockValue,
		MaterialsPurchased: r.materialCost,
		AssemblyWages:      r.assemblyWages,
		MachinistWages:     r.machinistWages,
		ProductionOverhead: r.productionOverhead,
		ClosingStockValue:  stockValueOf(c.Stocks),
	}

	rep.Balance = report.BalanceSheet{
		Property:        c.PropertyValue,
		Machines:        c.MachineValue(),
		Vehicles:        c.FleetValue(),
		ProductStocks:   c.StockValue(),
		MaterialStock:   c.MaterialValue(r.eco.MaterialPrice),
		Debtors:         c.Debtors,
		Cash:            c.Cash,
		TaxAssessedDue:  c.TaxLiability,
		Creditors:       c.Creditors,
		Overdraft:       c.Overdraft,
		UnsecuredLoans:  c.UnsecuredLoan,
		OrdinaryCapital: c.SharesOutstanding,
		Reserves:        c.Reserves,
	}

	rep.CashStatement = report.CashFlow{
		TradingReceipts:  0.7 * r.revenue,
		TradingPayments:  r.outflows - r.interestPaid - r.tax,
		TaxPaid:          r.tax,
		InterestReceived: r.interestReceived,
		InterestPaid:     r.interestPaid,
		CapitalReceipts:  r.capitalReceipts,
		CapitalPayments:  r.capitalPayments,
		DividendsPaid:    r.dividends,
		OpeningCash:      c.Opening.Cash,
		ClosingCash:      c.Cash,
		NetCashFlow:      r.netCashFlow,
	}
}

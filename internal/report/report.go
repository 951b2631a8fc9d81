// Package report defines the write-once quarterly result record: the full
// P&L, balance sheet, cash-flow statement and operational detail consumed by
// any reporting layer. Reports are never mutated after creation.
package report

import "github.com/mohammedsuhaib579-art/TopazVBE-Vercel/internal/rules"

// OverheadBreakdown itemizes operating overheads.
type OverheadBreakdown struct {
	Advertising           float64 `json:"advertising"`
	SalesForce            float64 `json:"sales_force"` // salaries + commission
	SalesOffice           float64 `json:"sales_office"`
	GuaranteeServicing    float64 `json:"guarantee_servicing"`
	FleetTransport        float64 `json:"fleet_transport"`
	HiredTransport        float64 `json:"hired_transport"`
	ProductDevelopment    float64 `json:"product_development"`
	PersonnelDepartment   float64 `json:"personnel_department"`
	Maintenance           float64 `json:"maintenance"`
	WarehousingPurchasing float64 `json:"warehousing_purchasing"`
	BusinessIntelligence  float64 `json:"business_intelligence"`
	ManagementBudget      float64 `json:"management_budget"`
	CreditControl         float64 `json:"credit_control"`
	OtherMiscellaneous    float64 `json:"other_miscellaneous"`
}

// CostOfSalesBreakdown itemizes direct production cost.
type CostOfSalesBreakdown struct {
	OpeningStockValue  float64 `json:"opening_stock_value"`
	MaterialsPurchased float64 `json:"materials_purchased"`
	AssemblyWages      float64 `json:"assembly_wages"`
	MachinistWages     float64 `json:"machinist_wages"`
	ProductionOverhead float64 `json:"production_overhead"`
	ClosingStockValue  float64 `json:"closing_stock_value"`
}

// BalanceSheet is the closing position snapshot.
type BalanceSheet struct {
	Property        float64 `json:"property"`
	Machines        float64 `json:"machines"`
	Vehicles        float64 `json:"vehicles"`
	ProductStocks   float64 `json:"product_stocks"`
	MaterialStock   float64 `json:"material_stock"`
	Debtors         float64 `json:"debtors"`
	Cash            float64 `json:"cash"`
	TaxAssessedDue  float64 `json:"tax_assessed_due"`
	Creditors       float64 `json:"creditors"`
	Overdraft       float64 `json:"overdraft"`
	UnsecuredLoans  float64 `json:"unsecured_loans"`
	OrdinaryCapital float64 `json:"ordinary_capital"`
	Reserves        float64 `json:"reserves"`
}

// CashFlow is the quarterly cash statement.
type CashFlow struct {
	TradingReceipts  float64 `json:"trading_receipts"`
	TradingPayments  float64 `json:"trading_payments"`
	TaxPaid          float64 `json:"tax_paid"`
	InterestReceived float64 `json:"interest_received"`
	InterestPaid     float64 `json:"interest_paid"`
	CapitalReceipts  float64 `json:"capital_receipts"`
	CapitalPayments  float64 `json:"capital_payments"`
	DividendsPaid    float64 `json:"dividends_paid"`
	OpeningCash      float64 `json:"opening_cash"`
	ClosingCash      float64 `json:"closing_cash"`
	NetCashFlow      float64 `json:"net_cash_flow"`
}

// PersonnelCounts holds one headcount figure per employee role.
type PersonnelCounts struct {
	Sales      int `json:"sales"`
	Assembly   int `json:"assembly"`
	Machinists int `json:"machinists"`
}

// PersonnelMovements summarizes workforce changes for the quarter.
type PersonnelMovements struct {
	Opening    PersonnelCounts `json:"opening"`
	Recruited  PersonnelCounts `json:"recruited"`
	Trained    PersonnelCounts `json:"trained"`
	Dismissed  PersonnelCounts `json:"dismissed"`
	InPipeline PersonnelCounts `json:"in_pipeline"`
}

// ResourceUsage details hours and fleet utilization.
type ResourceUsage struct {
	AssemblyHoursAvailable float64 `json:"assembly_hours_available"`
	AssemblyHoursWorked    float64 `json:"assembly_hours_worked"`
	MachineHoursAvailable  float64 `json:"machine_hours_available"`
	MachineHoursWorked     float64 `json:"machine_hours_worked"`
	MaintenanceHours       float64 `json:"maintenance_hours"`
	VehiclesAvailable      int     `json:"vehicles_available"`
	OwnVehicleDays         float64 `json:"own_vehicle_days"`
	HiredVehicleDays       float64 `json:"hired_vehicle_days"`
	StrikeWeeksNext        int     `json:"strike_weeks_next"`
	CapacityRatio          float64 `json:"capacity_ratio"`
}

// Materials tracks raw-stock conservation for the quarter.
type Materials struct {
	Opening   float64 `json:"opening"`
	Delivered float64 `json:"delivered"`
	Used      float64 `json:"used"`
	Closing   float64 `json:"closing"`
	OnOrder   float64 `json:"on_order"`
}

// Report is one company's complete quarterly result.
type Report struct {
	Company string `json:"company"`
	Quarter int    `json:"quarter"`
	Year    int    `json:"year"`

	// P&L.
	Revenue          float64 `json:"revenue"`
	CostOfSales      float64 `json:"cost_of_sales"`
	GrossProfit      float64 `json:"gross_profit"`
	TotalOverheads   float64 `json:"total_overheads"`
	EBITDA           float64 `json:"ebitda"`
	InterestReceived float64 `json:"interest_received"`
	InterestPaid     float64 `json:"interest_paid"`
	Depreciation     float64 `json:"depreciation"`
	ProfitBeforeTax  float64 `json:"profit_before_tax"`
	Tax              float64 `json:"tax"`
	NetProfit        float64 `json:"net_profit"`
	Dividends        float64 `json:"dividends"`
	Retained         float64 `json:"retained"`

	// Closing position headlines.
	Cash       float64 `json:"cash"`
	Overdraft  float64 `json:"overdraft"`
	Loan       float64 `json:"loan"`
	NetWorth   float64 `json:"net_worth"`
	SharePrice float64 `json:"share_price"`

	// Operations.
	ShiftLevel        int     `json:"shift_level"`
	MachineEfficiency float64 `json:"machine_efficiency"`
	Machines          int     `json:"machines"`
	MachinesInstalled int     `json:"machines_installed"`
	MachinesOrdered   int     `json:"machines_ordered"`
	MachinesSold      int     `json:"machines_sold"`
	VehiclesBought    int     `json:"vehicles_bought"`
	VehiclesSold      int     `json:"vehicles_sold"`

	MaterialFlow Materials `json:"material_flow"`

	// Per-(product, area) unit matrices.
	Scheduled rules.UnitGrid `json:"scheduled"`
	Produced  rules.UnitGrid `json:"produced"`
	Rejected  rules.UnitGrid `json:"rejected"`
	Orders    rules.UnitGrid `json:"orders"` // fresh demand this quarter
	Sales     rules.UnitGrid `json:"sales"`
	Stocks    rules.UnitGrid `json:"stocks"`
	Backlog   rules.UnitGrid `json:"backlog"`

	// Development outcomes this quarter, by product ("MAJOR", "MINOR", "").
	DevelopmentOutcomes [rules.NumProducts]string  `json:"development_outcomes"`
	StockWriteOffs      [rules.NumProducts]int     `json:"stock_write_offs"`
	StarRating          [rules.NumProducts]float64 `json:"star_rating"`

	Personnel PersonnelMovements `json:"personnel"`
	Usage     ResourceUsage      `json:"usage"`

	Overheads     OverheadBreakdown    `json:"overheads"`
	DirectCosts   CostOfSalesBreakdown `json:"direct_costs"`
	Balance       BalanceSheet         `json:"balance"`
	CashStatement CashFlow             `json:"cash_statement"`
}

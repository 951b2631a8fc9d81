package rules

// MarketStat describes the population and retail structure of one sales area.
type MarketStat struct {
	Managerial  int
	Supervisory int
	Other       int
	Total       int
	Outlets     int
}

// MarketStatistics holds the per-area market structure (manual table 1).
var MarketStatistics = [NumAreas]MarketStat{
	AreaSouth:  {Managerial: 1_000_000, Supervisory: 2_000_000, Other: 4_000_000, Total: 7_000_000, Outlets: 3_000},
	AreaWest:   {Managerial: 1_000_000, Supervisory: 1_000_000, Other: 2_000_000, Total: 4_000_000, Outlets: 2_000},
	AreaNorth:  {Managerial: 1_000_000, Supervisory: 3_000_000, Other: 9_000_000, Total: 13_000_000, Outlets: 4_000},
	AreaExport: {Managerial: 10_000_000, Supervisory: 15_000_000, Other: 55_000_000, Total: 80_000_000, Outlets: 20_000},
}

// Marketing costs (table 2), per quarter.
const (
	SalespersonExpenses  = 3_000
	CompetitorInfoCost   = 5_000
	MarketSharesInfoCost = 5_000
)

// Manufacturing parameters (table 3). Times are minutes per unit, material is
// units of raw stock per finished unit.
var (
	MinMachiningTime = [NumProducts]float64{60, 75, 120}
	MinAssemblyTime  = [NumProducts]float64{100, 150, 300}
	MaterialPerUnit  = [NumProducts]float64{1, 2, 3}
)

// Maintenance rates (table 4), per hour.
const (
	ContractedMaintenanceRate   = 60.0
	UncontractedMaintenanceRate = 120.0
)

// Machine hours and crew sizes per shift level (table 5).
var (
	MachineHoursPerShift = map[int]float64{1: 576, 2: 1068, 3: 1602}
	MachinistsPerMachine = map[int]int{1: 4, 2: 8, 3: 12}
)

// Per-unit valuations and charges (tables 6, 7, 21).
var (
	ScrapValue        = [NumProducts]float64{20, 40, 60}
	ServicingCharge   = [NumProducts]float64{60, 120, 200}
	ProductStockValue = [NumProducts]float64{80, 120, 200}
)

// Production costs (table 8).
const (
	SupervisionCostPerShift      = 10_000.0
	ProductionOverheadPerMachine = 2_000.0
	MachineRunningCostPerHour    = 7.0
	PlanningCostPerUnit          = 1.0
)

// Transport (tables 9–11). Vehicle capacity is units per standard load;
// journey times are round-trip days to each area.
var (
	VehicleCapacity = [NumProducts]int{40, 40, 20}
	JourneyTimeDays = [NumAreas]int{1, 2, 4, 6}
)

const (
	FleetFixedCostPerVehicle = 7_000.0
	OwnVehicleRunningPerDay  = 50.0
	HiredVehicleCostPerDay   = 200.0
	MaxVehicleDaysPerQuarter = 60
)

// Warehousing and purchasing (table 12).
const (
	FactoryStorageCapacity      = 2_000
	FixedQuarterlyWarehouseCost = 3_750.0
	FixedQuarterlyAdminCost     = 3_250.0
	CostPerOrder                = 750.0
	ExternalStoragePerUnit      = 1.50
	ProductStoragePerUnit       = 2.0
)

// DeliveryMode selects how a supplier spreads a matured order across the
// delivery quarter.
type DeliveryMode int

const (
	DeliverJustInTime DeliveryMode = iota // single lump on arrival
	DeliverMultiple                       // even split across declared deliveries
	DeliverWeekly                         // 12 weekly drops, delivered as one lump
)

// Supplier describes one material supplier's terms of trade (table 14).
type Supplier struct {
	Discount       float64
	DeliveryCharge float64
	MinDelivery    float64
	MinOrder       float64
	Mode           DeliveryMode
}

// Suppliers indexes the four suppliers by their form number.
var Suppliers = [4]Supplier{
	{Discount: 0, DeliveryCharge: 0, MinDelivery: 1, MinOrder: 1, Mode: DeliverJustInTime},
	{Discount: 0.10, DeliveryCharge: 200, MinDelivery: 1, MinOrder: 1, Mode: DeliverMultiple},
	{Discount: 0.15, DeliveryCharge: 300, MinDelivery: 1_000, MinOrder: 10_000, Mode: DeliverMultiple},
	{Discount: 0.30, DeliveryCharge: 100, MinDelivery: 0, MinOrder: 50_000, Mode: DeliverWeekly},
}

// WeeklyDeliveries is the fixed drop count for the weekly supplier.
const WeeklyDeliveries = 12

// Personnel department unit costs (table 15), by role.
var (
	RecruitmentCost = [NumRoles]float64{1_500, 1_200, 750}
	DismissalCost   = [NumRoles]float64{5_000, 3_000, 1_500}
	TrainingCost    = [NumRoles]float64{6_000, 4_500, 0}
)

// WorkerHours describes the hours available to one production worker per
// quarter at a given shift level (table 16).
type WorkerHours struct {
	Basic            float64
	Saturday         float64
	Sunday           float64
	MachinistPremium float64 // wage uplift over the assembly rate
}

// Max reports total available hours per worker.
func (w WorkerHours) Max() float64 { return w.Basic + w.Saturday + w.Sunday }

// WorkerHoursPerShift indexes worker hours by shift level.
var WorkerHoursPerShift = map[int]WorkerHours{
	1: {Basic: 420, Saturday: 84, Sunday: 72, MachinistPremium: 0},
	2: {Basic: 420, Saturday: 42, Sunday: 72, MachinistPremium: 1.0 / 3},
	3: {Basic: 420, Saturday: 42, Sunday: 72, MachinistPremium: 2.0 / 3},
}

// Minimum hours and pay (table 17).
const (
	MachinistMinHours        = 400.0
	AssemblyStrikeHoursWeek  = 48.0
	AssemblyMinWageRate      = 8.50
	UnskilledSkilledRatio    = 0.65
	MinSalesSalaryPerQuarter = 2_000.0
	MinManagementBudget      = 40_000.0
)

// Fixed assets (table 18).
const (
	MachineCost             = 200_000.0
	MachineDeposit          = 100_000.0 // 50% at order
	VehicleCost             = 15_000.0
	MachineDepreciationRate = 0.025  // per quarter, reducing balance
	VehicleDepreciationRate = 0.0625 // per quarter of age
)

// Financial parameters (table 20). Interest spreads are added to the
// central-bank rate, in percentage points.
const (
	TaxRate                  = 0.30
	FixedOverheadsPerQuarter = 10_000.0
	VariableOverheadRate     = 0.0025
	CreditControlPerUnit     = 1.50
	DepositRateSpread        = -2.0
	OverdraftRateSpread      = 4.0
	LoanRateSpread           = 10.0
)

// PaymentCategory names a creditor cost bucket in the payment-timing table.
type PaymentCategory int

const (
	PayAdvertising PaymentCategory = iota
	PayGuaranteeServicing
	PayHiredTransport
	PayProductDevelopment
	PayPersonnelDepartment
	PayMaintenance
	PayWarehousingPurchasing
	PayExternalStockholding
	PayBusinessIntelligence
	PayOtherMiscellaneous
	PayMaterialsPurchased
	PayMachinesPurchased
	PayInterest

	NumPaymentCategories = 13
)

// PaymentTiming says what fraction of a cost category falls due next quarter
// versus the quarter after (table 22). Machines split 50% deposit at order and
// 50% on installation.
type PaymentTiming struct {
	Next      float64
	AfterNext float64
}

var PaymentTimings = [NumPaymentCategories]PaymentTiming{
	PayAdvertising:           {Next: 0, AfterNext: 1},
	PayGuaranteeServicing:    {Next: 0, AfterNext: 1},
	PayHiredTransport:        {Next: 0, AfterNext: 1},
	PayProductDevelopment:    {Next: 1, AfterNext: 0},
	PayPersonnelDepartment:   {Next: 1, AfterNext: 0},
	PayMaintenance:           {Next: 0, AfterNext: 1},
	PayWarehousingPurchasing: {Next: 1, AfterNext: 0},
	PayExternalStockholding:  {Next: 0, AfterNext: 1},
	PayBusinessIntelligence:  {Next: 0, AfterNext: 1},
	PayOtherMiscellaneous:    {Next: 0, AfterNext: 1},
	PayMaterialsPurchased:    {Next: 0, AfterNext: 1},
	PayMachinesPurchased:     {Next: 0.5, AfterNext: 0.5},
	PayInterest:              {Next: 1, AfterNext: 0},
}

// CreditDiscountBand maps a credit-days range offered to customers onto the
// settlement discount they take (table 23).
type CreditDiscountBand struct {
	MinDays  int
	MaxDays  int
	Discount float64
}

var CreditDiscountBands = []CreditDiscountBand{
	{0, 7, 0.10},
	{8, 15, 0.075},
	{16, 29, 0.05},
	{30, 999, 0},
}

// CreditDiscount returns the settlement discount for the credit days offered.
func CreditDiscount(days int) float64 {
	for _, b := range CreditDiscountBands {
		if days >= b.MinDays && days <= b.MaxDays {
			return b.Discount
		}
	}
	return 0
}

// Base economic values at simulation start.
const (
	BaseGDP           = 100.0
	BaseUnemployment  = 6.0
	BaseBankRate      = 3.0
	BaseMaterialPrice = 100.0 // per 1000 units of raw stock
)

// MaxTraineesPerCategory caps training per role per quarter.
const MaxTraineesPerCategory = 9

// Demand model tunables. The share clamp and the company-count market scaling
// reproduce the established competitive behavior; they are calibration
// constants, not laws.
const (
	BaseCellDemand        = 1_000.0
	SeasonalQ4Uplift      = 0.10
	PriceDecayRate        = 0.015
	AdvertisingPull       = 0.0003
	SalespersonPull       = 0.02
	MinMarketShare        = 0.05
	MaxMarketShare        = 0.95
	BacklogImageDivisor   = 4_000.0
	MinDeliveryImage      = 0.6
	AvailabilityDivisor   = 2_000.0
	MaxAvailabilityFactor = 1.1
	BaseRejectRate        = 0.10
	MinRejectRate         = 0.01
)

// ReferencePrice returns the demand model's per-product anchor price.
func ReferencePrice(p Product) float64 {
	return 100 + 20*float64(p)
}

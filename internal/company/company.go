// Package company defines the persistent per-company ledger: assets,
// inventory, workforce pipelines, financial position and product state. The
// ledger is mutated only by the quarterly resolver; everything else reads it.
package company

import (
	"math"

	"github.com/google/uuid"

	"github.com/mohammedsuhaib579-art/TopazVBE-Vercel/internal/rules"
)

// ImprovementKind distinguishes product development outcomes.
type ImprovementKind int

const (
	ImprovementMinor ImprovementKind = iota
	ImprovementMajor
)

func (k ImprovementKind) String() string {
	if k == ImprovementMajor {
		return "MAJOR"
	}
	return "MINOR"
}

// Improvement records a reported development outcome. MAJOR improvements wait
// for an explicit implementation decision; MINOR ones apply on report.
type Improvement struct {
	Product     rules.Product   `json:"product"`
	Kind        ImprovementKind `json:"kind"`
	Quarter     int             `json:"quarter"`
	Year        int             `json:"year"`
	Implemented bool            `json:"implemented"`
}

// MaterialOrder is a pending raw-material purchase. The price per 1000 is
// locked in at order time; delivery falls due two quarters after the order.
type MaterialOrder struct {
	Quantity        float64 `json:"quantity"`
	Supplier        int     `json:"supplier"`
	Deliveries      int     `json:"deliveries"`
	OrderQuarter    int     `json:"order_quarter"`
	OrderYear       int     `json:"order_year"`
	DeliveryQuarter int     `json:"delivery_quarter"`
	DeliveryYear    int     `json:"delivery_year"`
	PricePer1000    float64 `json:"price_per_1000"`
	Delivered       bool    `json:"delivered"`
}

// MachineOrder is a pending machine purchase: installed two quarters after
// order, usable one quarter after installation. Each undelivered machine
// reserves a deposit against creditworthiness.
type MachineOrder struct {
	Quantity         int  `json:"quantity"`
	OrderQuarter     int  `json:"order_quarter"`
	OrderYear        int  `json:"order_year"`
	InstallQuarter   int  `json:"install_quarter"`
	InstallYear      int  `json:"install_year"`
	AvailableQuarter int  `json:"available_quarter"`
	DepositPaid      bool `json:"deposit_paid"`
	Installed        bool `json:"installed"`
}

// Pipeline is a two-slot delay queue for workforce arrivals. Queued workers
// sit in Later for one settlement, move to Next at the following one, and
// join the active headcount the settlement after: a two-quarter delay from
// the decision that queued them.
type Pipeline struct {
	Next  int `json:"next"`
	Later int `json:"later"`
}

// Queue adds workers at the start of the delay.
func (p *Pipeline) Queue(n int) { p.Later += n }

// Mature returns the workers joining now and shifts the queue forward.
func (p *Pipeline) Mature() int {
	n := p.Next
	p.Next = p.Later
	p.Later = 0
	return n
}

// Total reports all workers still in the queue.
func (p Pipeline) Total() int { return p.Next + p.Later }

// OpeningBalances snapshots the quarter-opening position, taken by the
// resolver before any mutation. Average balances for interest and the
// cash-flow statement come from here.
type OpeningBalances struct {
	Cash            float64        `json:"cash"`
	Overdraft       float64        `json:"overdraft"`
	Loan            float64        `json:"loan"`
	Debtors         float64        `json:"debtors"`
	Creditors       float64        `json:"creditors"`
	Salespeople     int            `json:"salespeople"`
	AssemblyWorkers int            `json:"assembly_workers"`
	Machinists      int            `json:"machinists"`
	Vehicles        int            `json:"vehicles"`
	MaterialStock   float64        `json:"material_stock"`
	Stocks          rules.UnitGrid `json:"stocks"`
	Backlog         rules.UnitGrid `json:"backlog"`
}

// Company is the full per-company ledger.
type Company struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`

	// Share capital.
	SharesOutstanding float64 `json:"shares_outstanding"`
	SharePrice        float64 `json:"share_price"`

	// Fixed assets. Property never depreciates. Machines and vehicles are
	// tracked individually: MachineValues holds each machine's book value,
	// VehicleAges each vehicle's age in quarters.
	PropertyValue     float64         `json:"property_value"`
	MachineValues     []float64       `json:"machine_values"`
	MachineAges       []int           `json:"machine_ages"`
	MachineEfficiency float64         `json:"machine_efficiency"`
	MachineOrders     []*MachineOrder `json:"machine_orders"`
	VehicleAges       []int           `json:"vehicle_ages"`

	// Inventory.
	MaterialStock  float64          `json:"material_stock"`
	MaterialOrders []*MaterialOrder `json:"material_orders"`
	Stocks         rules.UnitGrid   `json:"stocks"`
	Backlog        rules.UnitGrid   `json:"backlog"`

	// Workforce. Machinists are never stored: the headcount derives from the
	// machine count and shift level.
	Salespeople       int      `json:"salespeople"`
	AssemblyWorkers   int      `json:"assembly_workers"`
	SalesRecruits     Pipeline `json:"sales_recruits"`
	SalesTrainees     Pipeline `json:"sales_trainees"`
	AssemblyRecruits  Pipeline `json:"assembly_recruits"`
	AssemblyTrainees  Pipeline `json:"assembly_trainees"`
	SalesToDismiss    int      `json:"sales_to_dismiss"`
	AssemblyToDismiss int      `json:"assembly_to_dismiss"`

	// Pay in effect.
	SalesSalary         float64 `json:"sales_salary"`
	SalesCommissionRate float64 `json:"sales_commission_rate"`
	AssemblyWageRate    float64 `json:"assembly_wage_rate"`

	// Financial position.
	Cash             float64 `json:"cash"`
	Overdraft        float64 `json:"overdraft"`
	UnsecuredLoan    float64 `json:"unsecured_loan"`
	Reserves         float64 `json:"reserves"`
	TaxLiability     float64 `json:"tax_liability"`
	TaxableProfitYTD float64 `json:"taxable_profit_ytd"`
	Debtors          float64 `json:"debtors"`
	Creditors        float64 `json:"creditors"`

	// Product state.
	Improvements []*Improvement             `json:"improvements"`
	StarRating   [rules.NumProducts]float64 `json:"star_rating"` // 1–5
	DevSpend     [rules.NumProducts]float64 `json:"dev_spend"`   // cumulative since last MAJOR
	DevActive    [rules.NumProducts]bool    `json:"dev_active"`

	// Carried operational state.
	LastShift       int `json:"last_shift"`
	StrikeWeeksNext int `json:"strike_weeks_next"`

	Opening OpeningBalances `json:"opening"`
}

// New creates a company at the standard starting position: ten new machines,
// five new vehicles, base workforce and £200k cash.
func New(name string) *Company {
	c := &Company{
		ID:                uuid.New(),
		Name:              name,
		SharesOutstanding: 1_000_000,
		SharePrice:        1.0,
		PropertyValue:     500_000,
		MachineEfficiency: 1.0,
		MaterialStock:     5_000,
		Salespeople:       10,
		AssemblyWorkers:   40,
		SalesSalary:       rules.MinSalesSalaryPerQuarter,
		AssemblyWageRate:  rules.AssemblyMinWageRate,
		Cash:              200_000,
		LastShift:         1,
	}
	for i := 0; i < 10; i++ {
		c.MachineValues = append(c.MachineValues, rules.MachineCost)
		c.MachineAges = append(c.MachineAges, 0)
	}
	c.VehicleAges = []int{0, 0, 0, 0, 0}
	for p := range c.StarRating {
		c.StarRating[p] = 3
	}
	return c
}

// Machines returns the installed machine count.
func (c *Company) Machines() int { return len(c.MachineValues) }

// Vehicles returns the fleet size.
func (c *Company) Vehicles() int { return len(c.VehicleAges) }

// Machinists returns the crew required by the installed machines at the given
// shift level. Machinist headcount is always derived, never stored.
func (c *Company) Machinists(shift int) int {
	per, ok := rules.MachinistsPerMachine[shift]
	if !ok {
		per = rules.MachinistsPerMachine[1]
	}
	return c.Machines() * per
}

// TotalEmployees counts salespeople, assembly workers and derived machinists.
func (c *Company) TotalEmployees() int {
	return c.Salespeople + c.AssemblyWorkers + c.Machinists(c.LastShift)
}

// PendingMajor returns the unimplemented MAJOR improvement for a product, or
// nil. At most one can exist at a time.
func (c *Company) PendingMajor(p rules.Product) *Improvement {
	for _, imp := range c.Improvements {
		if imp.Product == p && imp.Kind == ImprovementMajor && !imp.Implemented {
			return imp
		}
	}
	return nil
}

// VehicleValue returns the depreciated value of one vehicle of the given age.
func VehicleValue(age int) float64 {
	return rules.VehicleCost * math.Pow(1-rules.VehicleDepreciationRate, float64(age))
}

// SnapshotOpening records the quarter-opening balances ahead of resolution.
func (c *Company) SnapshotOpening(shift int) {
	c.Opening = OpeningBalances{
		Cash:            c.Cash,
		Overdraft:       c.Overdraft,
		Loan:            c.UnsecuredLoan,
		Debtors:         c.Debtors,
		Creditors:       c.Creditors,
		Salespeople:     c.Salespeople,
		AssemblyWorkers: c.AssemblyWorkers,
		Machinists:      c.Machinists(shift),
		Vehicles:        c.Vehicles(),
		MaterialStock:   c.MaterialStock,
		Stocks:          c.Stocks,
		Backlog:         c.Backlog,
	}
}

package company

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mohammedsuhaib579-art/TopazVBE-Vercel/internal/rules"
)

func TestNewStartingPosition(t *testing.T) {
	c := New("Test Co")

	assert.Equal(t, 10, c.Machines())
	assert.Equal(t, 5, c.Vehicles())
	assert.Equal(t, 10, c.Salespeople)
	assert.Equal(t, 40, c.AssemblyWorkers)
	assert.Equal(t, 5000.0, c.MaterialStock)
	assert.Equal(t, 200_000.0, c.Cash)
	assert.Equal(t, 1.0, c.MachineEfficiency)
	for _, p := range rules.Products {
		assert.Equal(t, 3.0, c.StarRating[p])
	}
	assert.Equal(t, 10*rules.MachineCost, c.MachineValue())
}

func TestMachinistsDeriveFromMachinesAndShift(t *testing.T) {
	c := New("Test Co")
	assert.Equal(t, 40, c.Machinists(1))
	assert.Equal(t, 80, c.Machinists(2))
	assert.Equal(t, 120, c.Machinists(3))

	c.MachineValues = c.MachineValues[:5]
	c.MachineAges = c.MachineAges[:5]
	assert.Equal(t, 20, c.Machinists(1))
}

func TestVehicleValueDepreciatesByAge(t *testing.T) {
	assert.Equal(t, rules.VehicleCost, VehicleValue(0))
	assert.InDelta(t, rules.VehicleCost*0.9375, VehicleValue(1), 1e-9)
	assert.Less(t, VehicleValue(8), VehicleValue(4))
}

func TestOverdraftLimitFormula(t *testing.T) {
	c := New("Test Co")
	c.MachineValues = nil
	c.MachineAges = nil
	c.VehicleAges = nil
	c.MaterialStock = 0
	c.PropertyValue = 100_000
	c.Cash = 50_000
	c.Debtors = 20_000
	c.TaxLiability = 5_000
	c.Creditors = 10_000

	// 100% cash + 50% debtors + 25% property - tax - creditors
	want := 50_000.0 + 0.5*20_000 + 0.25*100_000 - 15_000
	assert.InDelta(t, want, c.OverdraftLimit(100), 1e-9)
}

func TestOverdraftLimitNeverNegative(t *testing.T) {
	c := New("Test Co")
	c.MachineValues = nil
	c.MachineAges = nil
	c.VehicleAges = nil
	c.MaterialStock = 0
	c.PropertyValue = 0
	c.Cash = 0
	c.Creditors = 1_000_000

	assert.Equal(t, 0.0, c.OverdraftLimit(100))
}

func TestCreditworthinessReservesMachineDeposits(t *testing.T) {
	c := New("Test Co")
	base := c.Creditworthiness(100)
	assert.Greater(t, base, 0.0)

	c.MachineOrders = append(c.MachineOrders, &MachineOrder{Quantity: 2})
	reserved := c.Creditworthiness(100)
	assert.InDelta(t, base-2*rules.MachineDeposit, reserved, 1e-9)

	// Installed orders stop reserving.
	c.MachineOrders[0].Installed = true
	assert.InDelta(t, base, c.Creditworthiness(100), 1e-9)
}

func TestNetWorthBalances(t *testing.T) {
	c := New("Test Co")
	nw := c.NetWorth(100)

	assets := c.Cash + c.PropertyValue + c.MachineValue() + c.FleetValue() +
		c.StockValue() + c.MaterialValue(100) + c.Debtors
	assert.InDelta(t, assets, nw, 1e-9, "no liabilities at start")

	c.Overdraft = 10_000
	c.UnsecuredLoan = 5_000
	assert.InDelta(t, assets-15_000, c.NetWorth(100), 1e-9)
}

func TestPipelineTwoSlotDelay(t *testing.T) {
	var p Pipeline
	p.Queue(3)

	assert.Equal(t, 0, p.Mature(), "nothing arrives the first settlement")
	assert.Equal(t, 3, p.Mature(), "queued workers arrive the second settlement")
	assert.Equal(t, 0, p.Mature())
	assert.Equal(t, 0, p.Total())
}

func TestPendingMajorFindsOnlyUnimplemented(t *testing.T) {
	c := New("Test Co")
	assert.Nil(t, c.PendingMajor(rules.Product1))

	c.Improvements = append(c.Improvements,
		&Improvement{Product: rules.Product1, Kind: ImprovementMajor, Implemented: true},
		&Improvement{Product: rules.Product1, Kind: ImprovementMinor},
	)
	assert.Nil(t, c.PendingMajor(rules.Product1))

	pending := &Improvement{Product: rules.Product1, Kind: ImprovementMajor}
	c.Improvements = append(c.Improvements, pending)
	assert.Same(t, pending, c.PendingMajor(rules.Product1))
}

func TestMaterialValueHalvesMarketPrice(t *testing.T) {
	c := New("Test Co")
	c.MaterialStock = 4_000
	assert.InDelta(t, 4_000*(120.0/1000)*0.5, c.MaterialValue(120), 1e-9)
	assert.False(t, math.IsNaN(c.MaterialValue(0)))
}

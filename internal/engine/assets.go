package engine

import (
	"github.com/mohammedsuhaib579-art/TopazVBE-Vercel/internal/company"
	"github.com/mohammedsuhaib579-art/TopazVBE-Vercel/internal/rules"
)

// installAssets is stage 2: machine orders that matured this quarter are
// installed (balance of the purchase price falls due), requested machine and
// vehicle sales happen oldest-first at book value, and new vehicles join the
// fleet at list price.
func (r *run) installAssets() {
	c, rec := r.c, r.rec

	for _, mo := range c.MachineOrders {
		if mo.Installed || mo.InstallQuarter != r.eco.Quarter || mo.InstallYear != r.eco.Year {
			continue
		}
		for i := 0; i < mo.Quantity; i++ {
			c.MachineValues = append(c.MachineValues, rules.MachineCost)
			c.MachineAges = append(c.MachineAges, 0)
		}
		mo.Installed = true
		r.machinesInstalled += mo.Quantity
		// Deposit went out at order time; the balance settles on install.
		r.capitalPayments += float64(mo.Quantity) * (rules.MachineCost - rules.MachineDeposit)
	}

	// Machines and vehicles are appended as they arrive, so the head of each
	// slice is the oldest unit.
	r.machinesSold = min(rec.MachinesToSell, c.Machines())
	for i := 0; i < r.machinesSold; i++ {
		r.capitalReceipts += c.MachineValues[0]
		c.MachineValues = c.MachineValues[1:]
		c.MachineAges = c.MachineAges[1:]
	}

	r.vehiclesSold = min(rec.VansToSell, c.Vehicles())
	for i := 0; i < r.vehiclesSold; i++ {
		r.capitalReceipts += company.VehicleValue(c.VehicleAges[0])
		c.VehicleAges = c.VehicleAges[1:]
	}

	r.vehiclesBought = rec.VansToBuy
	for i := 0; i < r.vehiclesBought; i++ {
		c.VehicleAges = append(c.VehicleAges, 0)
	}
	r.capitalPayments += float64(r.vehiclesBought) * rules.VehicleCost
}

// depreciate is stage 12: each machine's book value shrinks by a fixed share
// of its current value; each vehicle loses one quarter of its age-based value.
func (r *run) depreciate() {
	c := r.c

	for i := range c.MachineValues {
		dep := c.MachineValues[i] * rules.MachineDepreciationRate
		c.MachineValues[i] -= dep
		c.MachineAges[i]++
		r.depreciation += dep
	}
	for i, age := range c.VehicleAges {
		value := company.VehicleValue(age)
		r.depreciation += value * rules.VehicleDepreciationRate
		c.VehicleAges[i] = age + 1
	}
}

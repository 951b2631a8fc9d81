package transport

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mohammedsuhaib579-art/TopazVBE-Vercel/internal/rules"
)

func TestCostEmptyScheduleStillPaysFleetFixed(t *testing.T) {
	b := Cost(rules.UnitGrid{}, 5)
	assert.Equal(t, 0.0, b.OwnDays)
	assert.Equal(t, 0.0, b.HiredDays)
	assert.Equal(t, 5*rules.FleetFixedCostPerVehicle, b.Total)
}

func TestCostPacksMixedLoads(t *testing.T) {
	var deliveries rules.UnitGrid
	// 30 units of the half-capacity product need 1.5 loads, so 2 trips.
	deliveries[rules.Product3][rules.AreaSouth] = 30

	b := Cost(deliveries, 1)
	assert.Equal(t, 2.0, b.DaysByArea[rules.AreaSouth], "2 trips x 1 day round trip")
	assert.Equal(t, 2.0, b.OwnDays)
	assert.Equal(t, 0.0, b.HiredDays)
	assert.InDelta(t,
		rules.FleetFixedCostPerVehicle+2*rules.OwnVehicleRunningPerDay,
		b.Total, 1e-9)
}

func TestCostMixedProductsShareTrips(t *testing.T) {
	var deliveries rules.UnitGrid
	deliveries[rules.Product1][rules.AreaExport] = 20 // half a load
	deliveries[rules.Product3][rules.AreaExport] = 10 // another half

	b := Cost(deliveries, 0)
	assert.Equal(t, 6.0, b.DaysByArea[rules.AreaExport], "1 trip x 6 day round trip")
	assert.Equal(t, 6.0, b.HiredDays, "no own fleet, all hired")
	assert.InDelta(t, 6*rules.HiredVehicleCostPerDay, b.Total, 1e-9)
}

func TestCostOverflowsToHiredTransport(t *testing.T) {
	var deliveries rules.UnitGrid
	// 100 North trips x 4 days = 400 days against one vehicle's 60-day
	// quarterly allowance.
	deliveries[rules.Product1][rules.AreaNorth] = 4000

	b := Cost(deliveries, 1)
	assert.Equal(t, 60.0, b.OwnDays)
	assert.Equal(t, 340.0, b.HiredDays)
	assert.InDelta(t,
		rules.FleetFixedCostPerVehicle+
			60*rules.OwnVehicleRunningPerDay+
			340*rules.HiredVehicleCostPerDay,
		b.Total, 1e-9)
}

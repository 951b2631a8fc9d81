// Package transport prices delivery of finished units to sales areas.
// Each area delivery is packed into standard vehicle loads, the round-trip
// days are summed, and the day total is met from the company fleet first
// with the overflow hired in.
package transport

import (
	"math"

	"github.com/mohammedsuhaib579-art/TopazVBE-Vercel/internal/rules"
)

// Breakdown itemizes one quarter's transport activity and cost.
type Breakdown struct {
	DaysByArea   [rules.NumAreas]float64 `json:"days_by_area"`
	OwnDays      float64                 `json:"own_days"`
	HiredDays    float64                 `json:"hired_days"`
	FleetFixed   float64                 `json:"fleet_fixed"`
	OwnRunning   float64                 `json:"own_running"`
	HiredRunning float64                 `json:"hired_running"`
	Total        float64                 `json:"total"`
}

// loads returns the number of full-vehicle trips needed to carry the given
// product mix. A vehicle carries rules.VehicleCapacity[p] units of a single
// product; mixed loads consume capacity in proportion, so one unit of a
// 20-per-vehicle product takes twice the space of a 40-per-vehicle one.
func loads(units [rules.NumProducts]int) int {
	var space float64
	for p, qty := range units {
		if qty > 0 {
			space += float64(qty) / float64(rules.VehicleCapacity[p])
		}
	}
	return int(math.Ceil(space))
}

// Cost computes the quarter's transport bill for the delivered units.
// Fleet fixed cost accrues on every owned vehicle whether or not it moves.
func Cost(deliveries rules.UnitGrid, ownVehicles int) Breakdown {
	var b Breakdown
	var required float64
	for _, area := range rules.Areas {
		var mix [rules.NumProducts]int
		for _, p := range rules.Products {
			mix[p] = deliveries[p][area]
		}
		trips := loads(mix)
		days := float64(trips) * float64(rules.JourneyTimeDays[area])
		b.DaysByArea[area] = days
		required += days
	}

	ownCapacity := float64(ownVehicles) * rules.MaxVehicleDaysPerQuarter
	b.OwnDays = math.Min(ownCapacity, required)
	b.HiredDays = math.Max(0, required-b.OwnDays)

	b.FleetFixed = float64(ownVehicles) * rules.FleetFixedCostPerVehicle
	b.OwnRunning = b.OwnDays * rules.OwnVehicleRunningPerDay
	b.HiredRunning = b.HiredDays * rules.HiredVehicleCostPerDay
	b.Total = b.FleetFixed + b.OwnRunning + b.HiredRunning
	return b
}

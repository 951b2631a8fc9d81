package econ

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mohammedsuhaib579-art/TopazVBE-Vercel/internal/entropy"
)

func TestAdvanceStaysWithinBounds(t *testing.T) {
	rng := entropy.NewSource(99)
	eco := New()

	for i := 0; i < 1000; i++ {
		eco.Advance(rng)
		require.GreaterOrEqual(t, eco.GDP, 80.0, "quarter %d", i)
		require.GreaterOrEqual(t, eco.Unemployment, 2.0, "quarter %d", i)
		require.LessOrEqual(t, eco.Unemployment, 15.0, "quarter %d", i)
		require.GreaterOrEqual(t, eco.BankRate, 0.25, "quarter %d", i)
		require.GreaterOrEqual(t, eco.MaterialPrice, 60.0, "quarter %d", i)
	}
}

func TestAdvanceRollsCalendar(t *testing.T) {
	rng := entropy.NewSource(1)
	eco := New()

	assert.Equal(t, 1, eco.Quarter)
	assert.Equal(t, 1, eco.Year)

	for i := 0; i < 4; i++ {
		eco.Advance(rng)
	}
	assert.Equal(t, 1, eco.Quarter)
	assert.Equal(t, 2, eco.Year)
}

func TestAdvanceIsDeterministicForSeed(t *testing.T) {
	a, b := New(), New()
	rngA, rngB := entropy.NewSource(7), entropy.NewSource(7)

	for i := 0; i < 50; i++ {
		a.Advance(rngA)
		b.Advance(rngB)
	}
	assert.Equal(t, a, b)
}

func TestInterestRateSpreads(t *testing.T) {
	eco := New()
	eco.BankRate = 3.0

	assert.InDelta(t, 0.01, eco.DepositRate(), 1e-12)
	assert.InDelta(t, 0.07, eco.OverdraftRate(), 1e-12)
	assert.InDelta(t, 0.13, eco.LoanRate(), 1e-12)

	// The deposit rate never goes negative even when the bank rate is below
	// the spread.
	eco.BankRate = 1.0
	assert.Equal(t, 0.0, eco.DepositRate())
}

func TestApplyEventRespectsFloors(t *testing.T) {
	eco := New()
	eco.GDP = 81
	eco.MaterialPrice = 61

	eco.Apply(&Event{
		Type:     EventMarketCrisis,
		Severity: SeverityHigh,
		Effects:  EventEffects{GDPModifier: -0.15},
	})
	assert.Equal(t, 80.0, eco.GDP)
	assert.Equal(t, 61.0, eco.MaterialPrice, "zero modifier leaves price alone")

	eco.Apply(&Event{
		Type:     EventSupplyShortage,
		Severity: SeverityHigh,
		Effects:  EventEffects{MaterialModifier: -0.5},
	})
	assert.Equal(t, 60.0, eco.MaterialPrice, "price bottoms out at the floor")
}

func TestDrawEventProducesValidEvents(t *testing.T) {
	rng := entropy.NewSource(3)
	seen := 0
	for i := 0; i < 500; i++ {
		ev := DrawEvent(rng, 1, 1, 4)
		if ev == nil {
			continue
		}
		seen++
		assert.NotEmpty(t, ev.Description)
		assert.GreaterOrEqual(t, int(ev.Type), 0)
		assert.Less(t, int(ev.Type), numEventTypes)
		if !ev.Effects.AffectsAll {
			assert.Equal(t, EventLaborStrike, ev.Type)
			assert.GreaterOrEqual(t, ev.Effects.TargetCompany, 0)
			assert.Less(t, ev.Effects.TargetCompany, 4)
		}
	}
	// 15% of 500 draws; wide margin against seed luck.
	assert.Greater(t, seen, 30)
	assert.Less(t, seen, 150)
}

func TestStrikeWeeks(t *testing.T) {
	assert.Equal(t, 0, (*Event)(nil).StrikeWeeks())
	assert.Equal(t, 0, (&Event{Type: EventEconomicBoom}).StrikeWeeks())
	assert.Equal(t, 1, (&Event{Type: EventLaborStrike, Severity: SeverityLow}).StrikeWeeks())
	assert.Equal(t, 4, (&Event{Type: EventLaborStrike, Severity: SeverityHigh}).StrikeWeeks())
}

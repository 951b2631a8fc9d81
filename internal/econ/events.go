package econ

import "github.com/mohammedsuhaib579-art/TopazVBE-Vercel/internal/entropy"

// EventType classifies a quarterly market event.
type EventType int

const (
	EventMarketCrisis EventType = iota
	EventRegulatoryChange
	EventSupplyShortage
	EventEconomicBoom
	EventLaborStrike
	EventTechBreakthrough

	numEventTypes = 6
)

func (t EventType) String() string {
	names := [numEventTypes]string{
		"market crisis",
		"regulatory change",
		"supply shortage",
		"economic boom",
		"labor strike",
		"technology breakthrough",
	}
	if t < 0 || int(t) >= numEventTypes {
		return "unknown event"
	}
	return names[t]
}

// Severity grades an event's impact.
type Severity int

const (
	SeverityLow Severity = iota
	SeverityMedium
	SeverityHigh
)

func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	}
	return "unknown"
}

// EventEffects are the multiplicative modifiers an event applies during the
// quarter it occurs. Zero values mean no effect on that axis.
type EventEffects struct {
	GDPModifier      float64 `json:"gdp_modifier"`      // applied once to the GDP index
	DemandModifier   float64 `json:"demand_modifier"`   // applied to every cell's base demand
	CostModifier     float64 `json:"cost_modifier"`     // applied to total overheads
	MaterialModifier float64 `json:"material_modifier"` // applied once to the material price
	AffectsAll       bool    `json:"affects_all"`
	TargetCompany    int     `json:"target_company"` // index, valid when !AffectsAll
}

// Event is one quarterly market event.
type Event struct {
	Type        EventType    `json:"type"`
	Severity    Severity     `json:"severity"`
	Description string       `json:"description"`
	Quarter     int          `json:"quarter"`
	Year        int          `json:"year"`
	Effects     EventEffects `json:"effects"`
}

// eventChance is the per-quarter probability that any event occurs.
const eventChance = 0.15

// scale picks the low/medium/high magnitude for a severity.
func scale(sev Severity, low, med, high float64) float64 {
	switch sev {
	case SeverityHigh:
		return high
	case SeverityMedium:
		return med
	default:
		return low
	}
}

// DrawEvent rolls for a market event this quarter. Returns nil most quarters.
// companies is the number of competing companies, used to target strikes.
func DrawEvent(rng *entropy.Source, quarter, year, companies int) *Event {
	if !rng.Chance(eventChance) {
		return nil
	}

	ev := &Event{
		Type:     EventType(rng.Intn(numEventTypes)),
		Severity: Severity(rng.Intn(3)),
		Quarter:  quarter,
		Year:     year,
		Effects:  EventEffects{AffectsAll: true},
	}

	switch ev.Type {
	case EventMarketCrisis:
		ev.Description = "Market crisis: economic uncertainty hits consumer confidence"
		ev.Effects.GDPModifier = scale(ev.Severity, -0.05, -0.10, -0.15)
		ev.Effects.DemandModifier = scale(ev.Severity, -0.10, -0.15, -0.20)
	case EventRegulatoryChange:
		ev.Description = "Regulatory change: new compliance burden raises running costs"
		ev.Effects.CostModifier = scale(ev.Severity, 0.05, 0.07, 0.10)
	case EventSupplyShortage:
		ev.Description = "Supply shortage: raw material prices spike"
		ev.Effects.MaterialModifier = scale(ev.Severity, 0.10, 0.15, 0.25)
	case EventEconomicBoom:
		ev.Description = "Economic boom: strong growth lifts demand"
		ev.Effects.GDPModifier = scale(ev.Severity, 0.05, 0.10, 0.15)
		ev.Effects.DemandModifier = scale(ev.Severity, 0.10, 0.15, 0.20)
	case EventLaborStrike:
		ev.Description = "Labor strike: workforce disruption"
		ev.Effects.CostModifier = scale(ev.Severity, 0.05, 0.10, 0.15)
		if companies > 0 && rng.Chance(0.5) {
			ev.Effects.AffectsAll = false
			ev.Effects.TargetCompany = rng.Intn(companies)
		}
	case EventTechBreakthrough:
		ev.Description = "Technology breakthrough: new techniques cut costs"
		ev.Effects.CostModifier = scale(ev.Severity, -0.05, -0.07, -0.10)
	}

	return ev
}

// StrikeWeeks returns the working weeks a labor strike costs its target in
// the following quarter, zero for other event types.
func (ev *Event) StrikeWeeks() int {
	if ev == nil || ev.Type != EventLaborStrike {
		return 0
	}
	return int(scale(ev.Severity, 1, 2, 4))
}

// Apply folds the event's one-shot macro effects into the economy, respecting
// the documented floors.
func (e *Economy) Apply(ev *Event) {
	if ev == nil {
		return
	}
	if ev.Effects.GDPModifier != 0 {
		e.GDP = max(80, e.GDP*(1+ev.Effects.GDPModifier))
	}
	if ev.Effects.MaterialModifier != 0 {
		e.MaterialPrice = max(60, e.MaterialPrice*(1+ev.Effects.MaterialModifier))
	}
}

package engine

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/mohammedsuhaib579-art/TopazVBE-Vercel/internal/company"
	"github.com/mohammedsuhaib579-art/TopazVBE-Vercel/internal/decision"
	"github.com/mohammedsuhaib579-art/TopazVBE-Vercel/internal/econ"
	"github.com/mohammedsuhaib579-art/TopazVBE-Vercel/internal/entropy"
	"github.com/mohammedsuhaib579-art/TopazVBE-Vercel/internal/report"
)

// Simulation owns all mutable state: one economy, every company ledger, the
// report history and the seeded random source. One Step resolves a full
// quarter for every company before the economy advances.
type Simulation struct {
	mu sync.Mutex

	Economy   *econ.Economy      `json:"economy"`
	Companies []*company.Company `json:"companies"`
	Humans    int                `json:"humans"`
	Seed      int64              `json:"seed"`

	History []*report.Report `json:"history"`
	Events  []*econ.Event    `json:"events"`

	rng *entropy.Source
}

// New creates a simulation with the given company count, of which the first
// humans are human-controlled. The seed fixes every random draw in the run.
func New(companies, humans int, seed int64) *Simulation {
	s := &Simulation{
		Economy: econ.New(),
		Humans:  humans,
		Seed:    seed,
		rng:     entropy.NewSource(seed),
	}
	for i := 0; i < companies; i++ {
		s.Companies = append(s.Companies, company.New(fmt.Sprintf("Company %d", i+1)))
	}
	return s
}

// Restore rebuilds the random source after loading persisted state. The
// stream position is not preserved across restarts, only the seed.
func (s *Simulation) Restore() {
	s.rng = entropy.NewSource(s.Seed)
}

// Rand exposes the simulation's random source.
func (s *Simulation) Rand() *entropy.Source { return s.rng }

// Step resolves one quarter for every company. Records are matched to
// companies by index; in single-human mode missing records are filled from
// the automated policy, otherwise every company must have one. All records
// are validated before any ledger mutates, so a failed step leaves the
// simulation untouched. The economy advances exactly once, afterwards.
func (s *Simulation) Step(records []*decision.Record) ([]*report.Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.Companies)
	if len(records) > n {
		return nil, fmt.Errorf("got %d records for %d companies: %w",
			len(records), n, decision.ErrSurplusRecords)
	}
	all := make([]*decision.Record, n)
	for i, c := range s.Companies {
		var rec *decision.Record
		if i < len(records) {
			rec = records[i]
		}
		if rec == nil {
			if s.Humans > 1 {
				return nil, fmt.Errorf("company %q: %w", c.Name, decision.ErrMissingRecord)
			}
			rec = decision.AutoPolicy(s.rng, c)
		}
		if err := rec.Validate(); err != nil {
			return nil, fmt.Errorf("company %q: %w", c.Name, err)
		}
		all[i] = rec.Normalized()
	}

	ev := econ.DrawEvent(s.rng, s.Economy.Quarter, s.Economy.Year, n)
	if ev != nil {
		slog.Info("market event",
			"type", ev.Type.String(),
			"severity", ev.Severity.String(),
			"description", ev.Description,
		)
		s.Economy.Apply(ev)
		s.Events = append(s.Events, ev)
	}

	// Snapshot every company before any resolves, so the competitive demand
	// stage sees a consistent pre-step picture.
	views := make([]companyView, n)
	for i, c := range s.Companies {
		c.SnapshotOpening(all[i].ShiftLevel)
		views[i] = snapshotView(c, all[i])
	}

	reports := make([]*report.Report, n)
	for i, c := range s.Companies {
		reports[i] = resolveCompany(s.Economy, s.rng, ev, views, i, c, all[i])
	}

	if weeks := ev.StrikeWeeks(); weeks > 0 && !ev.Effects.AffectsAll {
		s.Companies[ev.Effects.TargetCompany].StrikeWeeksNext = weeks
	}

	s.History = append(s.History, reports...)

	slog.Info("quarter resolved",
		"quarter", s.Economy.Quarter,
		"year", s.Economy.Year,
		"companies", n,
	)
	s.Economy.Advance(s.rng)
	return reports, nil
}

// ReportsFor returns the history entries for one company by name.
func (s *Simulation) ReportsFor(name string) []*report.Report {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*report.Report
	for _, r := range s.History {
		if r.Company == name {
			out = append(out, r)
		}
	}
	return out
}

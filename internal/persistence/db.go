// Package persistence provides SQLite-based storage for simulation state:
// company ledgers, the economy, market events and the full report history.
// Saves are full-replace snapshots; a run can be resumed from the last one.
package persistence

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/mohammedsuhaib579-art/TopazVBE-Vercel/internal/company"
	"github.com/mohammedsuhaib579-art/TopazVBE-Vercel/internal/econ"
	"github.com/mohammedsuhaib579-art/TopazVBE-Vercel/internal/engine"
	"github.com/mohammedsuhaib579-art/TopazVBE-Vercel/internal/report"
)

// DB wraps a SQLite connection for simulation state persistence.
type DB struct {
	conn *sqlx.DB
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS companies (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		position INTEGER NOT NULL,
		state_json TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS economy (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		state_json TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS reports (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		year INTEGER NOT NULL,
		quarter INTEGER NOT NULL,
		company TEXT NOT NULL,
		report_json TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		year INTEGER NOT NULL,
		quarter INTEGER NOT NULL,
		event_json TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS sim_meta (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_reports_period ON reports(year, quarter);
	CREATE INDEX IF NOT EXISTS idx_reports_company ON reports(company);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// SaveCompanies writes every company ledger (full replace). Ledger state is
// stored as one JSON document per company; the relational columns exist only
// for lookup.
func (db *DB) SaveCompanies(companies []*company.Company) error {
	tx, err := db.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM companies"); err != nil {
		return err
	}

	stmt, err := tx.Preparex(
		"INSERT INTO companies (id, name, position, state_json) VALUES (?, ?, ?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, c := range companies {
		state, err := json.Marshal(c)
		if err != nil {
			return fmt.Errorf("marshal company %q: %w", c.Name, err)
		}
		if _, err := stmt.Exec(c.ID.String(), c.Name, i, string(state)); err != nil {
			return fmt.Errorf("insert company %q: %w", c.Name, err)
		}
	}

	return tx.Commit()
}

// LoadCompanies reads every company ledger in stored order.
func (db *DB) LoadCompanies() ([]*company.Company, error) {
	var rows []struct {
		StateJSON string `db:"state_json"`
	}
	err := db.conn.Select(&rows,
		"SELECT state_json FROM companies ORDER BY position ASC")
	if err != nil {
		return nil, err
	}

	out := make([]*company.Company, 0, len(rows))
	for _, row := range rows {
		var c company.Company
		if err := json.Unmarshal([]byte(row.StateJSON), &c); err != nil {
			return nil, fmt.Errorf("unmarshal company: %w", err)
		}
		out = append(out, &c)
	}
	return out, nil
}

// SaveEconomy writes the single economy row.
func (db *DB) SaveEconomy(eco *econ.Economy) error {
	state, err := json.Marshal(eco)
	if err != nil {
		return err
	}
	_, err = db.conn.Exec(
		"INSERT OR REPLACE INTO economy (id, state_json) VALUES (1, ?)",
		string(state),
	)
	return err
}

// LoadEconomy reads the economy row.
func (db *DB) LoadEconomy() (*econ.Economy, error) {
	var state string
	if err := db.conn.Get(&state, "SELECT state_json FROM economy WHERE id = 1"); err != nil {
		return nil, err
	}
	var eco econ.Economy
	if err := json.Unmarshal([]byte(state), &eco); err != nil {
		return nil, fmt.Errorf("unmarshal economy: %w", err)
	}
	return &eco, nil
}

// AppendReports stores one quarter's result reports.
func (db *DB) AppendReports(reports []*report.Report) error {
	if len(reports) == 0 {
		return nil
	}

	tx, err := db.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, r := range reports {
		doc, err := json.Marshal(r)
		if err != nil {
			return fmt.Errorf("marshal report: %w", err)
		}
		_, err = tx.Exec(
			"INSERT INTO reports (year, quarter, company, report_json) VALUES (?, ?, ?, ?)",
			r.Year, r.Quarter, r.Company, string(doc),
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// LoadReports reads the full report history in insertion order.
func (db *DB) LoadReports() ([]*report.Report, error) {
	var rows []struct {
		ReportJSON string `db:"report_json"`
	}
	err := db.conn.Select(&rows, "SELECT report_json FROM reports ORDER BY id ASC")
	if err != nil {
		return nil, err
	}

	out := make([]*report.Report, 0, len(rows))
	for _, row := range rows {
		var r report.Report
		if err := json.Unmarshal([]byte(row.ReportJSON), &r); err != nil {
			return nil, fmt.Errorf("unmarshal report: %w", err)
		}
		out = append(out, &r)
	}
	return out, nil
}

// AppendEvents stores market events.
func (db *DB) AppendEvents(events []*econ.Event) error {
	if len(events) == 0 {
		return nil
	}

	tx, err := db.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, ev := range events {
		doc, err := json.Marshal(ev)
		if err != nil {
			return fmt.Errorf("marshal event: %w", err)
		}
		_, err = tx.Exec(
			"INSERT INTO events (year, quarter, event_json) VALUES (?, ?, ?)",
			ev.Year, ev.Quarter, string(doc),
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// SaveMeta stores a key-value pair in simulation metadata.
func (db *DB) SaveMeta(key, value string) error {
	_, err := db.conn.Exec(
		"INSERT OR REPLACE INTO sim_meta (key, value) VALUES (?, ?)",
		key, value,
	)
	return err
}

// GetMeta retrieves a metadata value.
func (db *DB) GetMeta(key string) (string, error) {
	var value string
	err := db.conn.Get(&value, "SELECT value FROM sim_meta WHERE key = ?", key)
	return value, err
}

// SaveSimulation performs a full save of the simulation.
func (db *DB) SaveSimulation(sim *engine.Simulation) error {
	slog.Info("saving simulation",
		"companies", len(sim.Companies),
		"quarter", sim.Economy.Quarter,
		"year", sim.Economy.Year,
	)

	if err := db.SaveCompanies(sim.Companies); err != nil {
		return fmt.Errorf("save companies: %w", err)
	}
	if err := db.SaveEconomy(sim.Economy); err != nil {
		return fmt.Errorf("save economy: %w", err)
	}
	if err := db.SaveMeta("seed", strconv.FormatInt(sim.Seed, 10)); err != nil {
		return fmt.Errorf("save meta: %w", err)
	}
	if err := db.SaveMeta("humans", strconv.Itoa(sim.Humans)); err != nil {
		return fmt.Errorf("save meta: %w", err)
	}

	slog.Info("simulation saved")
	return nil
}

// LoadSimulation restores a saved simulation, report history included.
func (db *DB) LoadSimulation() (*engine.Simulation, error) {
	companies, err := db.LoadCompanies()
	if err != nil {
		return nil, fmt.Errorf("load companies: %w", err)
	}
	eco, err := db.LoadEconomy()
	if err != nil {
		return nil, fmt.Errorf("load economy: %w", err)
	}
	history, err := db.LoadReports()
	if err != nil {
		return nil, fmt.Errorf("load reports: %w", err)
	}

	seed := int64(0)
	if v, err := db.GetMeta("seed"); err == nil {
		seed, _ = strconv.ParseInt(v, 10, 64)
	}
	humans := 1
	if v, err := db.GetMeta("humans"); err == nil {
		humans, _ = strconv.Atoi(v)
	}

	sim := &engine.Simulation{
		Economy:   eco,
		Companies: companies,
		Humans:    humans,
		Seed:      seed,
		History:   history,
	}
	sim.Restore()
	return sim, nil
}

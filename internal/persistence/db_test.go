package persistence

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mohammedsuhaib579-art/TopazVBE-Vercel/internal/engine"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "sim.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestSimulationRoundTrip(t *testing.T) {
	db := openTestDB(t)

	sim := engine.New(3, 1, 99)
	for q := 0; q < 2; q++ {
		reports, err := sim.Step(nil)
		require.NoError(t, err)
		require.NoError(t, db.AppendReports(reports))
	}
	require.NoError(t, db.SaveSimulation(sim))

	loaded, err := db.LoadSimulation()
	require.NoError(t, err)

	require.Len(t, loaded.Companies, 3)
	assert.Equal(t, sim.Humans, loaded.Humans)
	assert.Equal(t, sim.Seed, loaded.Seed)
	assert.Equal(t, sim.Economy.Quarter, loaded.Economy.Quarter)
	assert.Equal(t, sim.Economy.Year, loaded.Economy.Year)
	assert.InDelta(t, sim.Economy.GDP, loaded.Economy.GDP, 1e-9)

	for i, c := range sim.Companies {
		got := loaded.Companies[i]
		assert.Equal(t, c.Name, got.Name)
		assert.InDelta(t, c.Cash, got.Cash, 1e-9)
		assert.Equal(t, c.Salespeople, got.Salespeople)
		assert.Equal(t, c.MachineValues, got.MachineValues)
		assert.Equal(t, c.Stocks, got.Stocks)
	}
}

func TestLoadedSimulationKeepsStepping(t *testing.T) {
	db := openTestDB(t)

	sim := engine.New(2, 0, 7)
	for q := 0; q < 2; q++ {
		_, err := sim.Step(nil)
		require.NoError(t, err)
	}
	require.NoError(t, db.SaveSimulation(sim))

	resumed, err := db.LoadSimulation()
	require.NoError(t, err)
	require.Equal(t, sim.Economy.Quarter, resumed.Economy.Quarter)

	reports, err := resumed.Step(nil)
	require.NoError(t, err)
	assert.Len(t, reports, 2)
	assert.Equal(t, sim.Economy.Quarter+1, resumed.Economy.Quarter)
	for _, c := range resumed.Companies {
		assert.GreaterOrEqual(t, c.Cash, 0.0)
	}
}

func TestReportsPersistInStepOrder(t *testing.T) {
	db := openTestDB(t)

	sim := engine.New(2, 0, 11)
	var want []string
	for q := 0; q < 3; q++ {
		reports, err := sim.Step(nil)
		require.NoError(t, err)
		require.NoError(t, db.AppendReports(reports))
		for _, r := range reports {
			want = append(want, r.Company)
		}
	}

	loaded, err := db.LoadReports()
	require.NoError(t, err)
	require.Len(t, loaded, len(want))
	for i, r := range loaded {
		assert.Equal(t, want[i], r.Company)
	}
}

func TestMetaRoundTrip(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, db.SaveMeta("humans", "2"))
	require.NoError(t, db.SaveMeta("humans", "3")) // upsert

	v, err := db.GetMeta("humans")
	require.NoError(t, err)
	assert.Equal(t, "3", v)

	_, err = db.GetMeta("absent")
	assert.Error(t, err)
}

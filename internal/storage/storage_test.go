package storage

import (
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	armorcalc "github.com/gehtsoft-usa/go_armorcalc"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"), zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func resolveTestImpact(t *testing.T) armorcalc.ImpactOutcome {
	t.Helper()
	ammo, err := armorcalc.CreateKineticLongRod("M829A4", 120, 22, 4.6, 1680, 570)
	require.NoError(t, err)
	armor, err := armorcalc.CreateRHA(200, 1.0)
	require.NoError(t, err)
	outcome, err := armorcalc.ResolveImpact(ammo, armor, 1000, 30, nil, 0, nil, nil)
	require.NoError(t, err)
	return outcome
}

func TestOpen_MigratesSchema(t *testing.T) {
	store := openTestStore(t)

	id, err := store.StartSession("trial", "M829A4", "RHA 200mm")
	require.NoError(t, err)
	assert.NotZero(t, id)
}

func TestRecordImpact_RoundTrip(t *testing.T) {
	store := openTestStore(t)
	outcome := resolveTestImpact(t)

	id, err := store.StartSession("trial", outcome.Ammunition.Name(), outcome.Armor.Name())
	require.NoError(t, err)

	require.NoError(t, store.RecordImpact(id, outcome))
	require.NoError(t, store.RecordImpact(id, outcome))

	records, err := store.SessionImpacts(id)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, outcome.RangeM, records[0].RangeM)
	assert.Equal(t, outcome.ImpactAngleDeg, records[0].ImpactAngleDeg)
	assert.Equal(t, outcome.FinalPenetration, records[0].FinalPenetration)
	assert.Equal(t, outcome.Penetrates, records[0].Penetrated)
	assert.Equal(t, "", records[0].DegradedStages)
}

func TestRecordImpact_SessionsAreIsolated(t *testing.T) {
	store := openTestStore(t)
	outcome := resolveTestImpact(t)

	first, err := store.StartSession("first", "M829A4", "RHA 200mm")
	require.NoError(t, err)
	second, err := store.StartSession("second", "M829A4", "RHA 200mm")
	require.NoError(t, err)

	require.NoError(t, store.RecordImpact(first, outcome))

	records, err := store.SessionImpacts(second)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestRecordDamage(t *testing.T) {
	store := openTestStore(t)

	ammo, err := armorcalc.CreateKineticLongRod("M829A4", 120, 22, 4.6, 1680, 570)
	require.NoError(t, err)
	armor, err := armorcalc.CreateRHA(200, 1.0)
	require.NoError(t, err)

	outcome, err := armorcalc.ResolveImpact(ammo, armor, 0, 0, nil, 0, nil, nil)
	require.NoError(t, err)
	event := armor.ApplyImpactDamage(outcome, 10, -5, 0)

	id, err := store.StartSession("trial", ammo.Name(), armor.Name())
	require.NoError(t, err)
	require.NoError(t, store.RecordDamage(id, event, armor.Damage().Summary()))
}

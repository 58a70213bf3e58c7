package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	armorcalc "github.com/gehtsoft-usa/go_armorcalc"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "armorcalc.cfg.json"), []byte(content), 0644))
	return dir
}

func TestLoad_DefaultValues(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := writeConfig(t, `{}`)
	require.NoError(t, Load(dir))

	assert.Equal(t, "info", viper.GetString("logLevel"))
	assert.Equal(t, "./armorcalclogs", viper.GetString("logsDir"))

	sim := GetSimulationConfig()
	assert.Equal(t, 0.001, sim.TimeStep)
	assert.Equal(t, 100.0, sim.SampleStep)

	storage := GetStorageConfig()
	assert.Equal(t, true, storage.Enabled)
	assert.Equal(t, "./armorcalc.db", storage.Path)
}

func TestLoad_WithValidConfigFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := writeConfig(t, `{
		"logLevel": "debug",
		"simulation": { "timeStep": 0.002 },
		"storage": { "enabled": false }
	}`)
	require.NoError(t, Load(dir))

	assert.Equal(t, "debug", viper.GetString("logLevel"))
	assert.Equal(t, 0.002, GetSimulationConfig().TimeStep)
	assert.Equal(t, false, GetStorageConfig().Enabled)
}

func TestLoad_MissingFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	err := Load("/nonexistent/path")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestBuildAtmosphere_Defaults(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := writeConfig(t, `{}`)
	require.NoError(t, Load(dir))

	atmosphere, err := BuildAtmosphere()
	require.NoError(t, err)
	assert.Equal(t, 15.0, atmosphere.Temperature())
	assert.Equal(t, 101.325, atmosphere.Pressure())
	assert.InDelta(t, 1.0, atmosphere.DensityRatio(), 0.01)
}

func TestBuildAmmunition_Presets(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := writeConfig(t, `{}`)
	require.NoError(t, Load(dir))

	names := AmmunitionPresets()
	assert.Contains(t, names, "m829a4")
	assert.Contains(t, names, "dm53")
	assert.Contains(t, names, "3bm60")
	assert.Contains(t, names, "m830a1")
	assert.Contains(t, names, "l31")

	ammo, err := BuildAmmunition("m829a4")
	require.NoError(t, err)
	assert.Equal(t, armorcalc.AmmoKineticLongRod, ammo.Kind())
	assert.Equal(t, 120.0, ammo.Caliber())
	assert.Equal(t, 1680.0, ammo.MuzzleVelocity())

	heat, err := BuildAmmunition("m830a1")
	require.NoError(t, err)
	assert.Equal(t, armorcalc.CategoryChemical, heat.Category())

	_, err = BuildAmmunition("nosuchround")
	require.Error(t, err)
}

func TestBuildAmmunition_Override(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := writeConfig(t, `{
		"presets": { "ammunition": { "m829a4": { "muzzleVelocity": 1700 } } }
	}`)
	require.NoError(t, Load(dir))

	ammo, err := BuildAmmunition("m829a4")
	require.NoError(t, err)
	assert.Equal(t, 1700.0, ammo.MuzzleVelocity())
}

func TestBuildArmor_Presets(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := writeConfig(t, `{}`)
	require.NoError(t, Load(dir))

	names := ArmorPresets()
	assert.Contains(t, names, "rha200")
	assert.Contains(t, names, "turretfront")
	assert.Contains(t, names, "hullera")
	assert.Contains(t, names, "sideskirt")

	rha, err := BuildArmor("rha200")
	require.NoError(t, err)
	assert.Equal(t, armorcalc.ArmorHomogeneous, rha.Kind())
	assert.Equal(t, 200.0, rha.Thickness())

	composite, err := BuildArmor("turretfront")
	require.NoError(t, err)
	assert.Equal(t, armorcalc.ArmorComposite, composite.Kind())
	assert.Equal(t, 800.0, composite.Thickness())

	_, err = BuildArmor("nosucharmor")
	require.Error(t, err)
}

func TestBuildArmor_AppliesDamageOverrides(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := writeConfig(t, `{
		"damage": { "homogeneous": { "hardnessDegradationRate": 0.5 } }
	}`)
	require.NoError(t, Load(dir))

	overridden, err := BuildArmor("rha200")
	require.NoError(t, err)
	plain, err := armorcalc.CreateHomogeneousArmor("rha200", 200, 1.0, 1.0)
	require.NoError(t, err)

	ammo, err := armorcalc.CreateKineticLongRod("M829A4", 120, 22, 4.6, 1680, 570)
	require.NoError(t, err)

	// identical stopped hits work-soften the overridden plate much faster
	overridden.Damage().ApplyDamage(ammo, 0, 0, 100, 2e5, false, 0)
	plain.Damage().ApplyDamage(ammo, 0, 0, 100, 2e5, false, 0)

	assert.Less(t,
		overridden.Damage().Condition().HardnessFactor,
		plain.Damage().Condition().HardnessFactor)
	assert.NotEqual(t, plain.Damage().Condition(), overridden.Damage().Condition())
}

func TestGetMaterialDamageProperties_Override(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := writeConfig(t, `{
		"damage": { "homogeneous": { "spallResistance": 1.3, "fatigueLimit": 25 } }
	}`)
	require.NoError(t, Load(dir))

	properties := GetMaterialDamageProperties(armorcalc.ArmorHomogeneous)
	assert.Equal(t, 1.3, properties.SpallResistance)
	assert.Equal(t, 25, properties.FatigueLimit)

	// untouched kinds keep the library defaults
	composite := GetMaterialDamageProperties(armorcalc.ArmorComposite)
	assert.Equal(t, 1.5, composite.SpallResistance)
}

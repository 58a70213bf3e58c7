package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	armorcalc "github.com/gehtsoft-usa/go_armorcalc"
)

// SimulationConfig holds the numerical settings of the calculator
type SimulationConfig struct {
	TimeStep   float64 `json:"timeStep" mapstructure:"timeStep"`
	SampleStep float64 `json:"sampleStep" mapstructure:"sampleStep"`
}

// AtmosphereConfig holds the default environmental conditions
type AtmosphereConfig struct {
	Temperature float64 `json:"temperature" mapstructure:"temperature"`
	Pressure    float64 `json:"pressure" mapstructure:"pressure"`
	Humidity    float64 `json:"humidity" mapstructure:"humidity"`
	Altitude    float64 `json:"altitude" mapstructure:"altitude"`
	WindSpeed   float64 `json:"windSpeed" mapstructure:"windSpeed"`
	WindAngle   float64 `json:"windAngle" mapstructure:"windAngle"`
}

// StorageConfig holds the session database settings
type StorageConfig struct {
	Enabled bool   `json:"enabled" mapstructure:"enabled"`
	Path    string `json:"path" mapstructure:"path"`
}

// Load reads configuration from JSON file and sets default values.
// configDir is the directory containing the config file.
func Load(configDir string) error {
	// Set default values
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("logsDir", "./armorcalclogs")

	viper.SetDefault("simulation.timeStep", 0.001)
	viper.SetDefault("simulation.sampleStep", 100.0)

	viper.SetDefault("atmosphere.temperature", 15.0)
	viper.SetDefault("atmosphere.pressure", 101.325)
	viper.SetDefault("atmosphere.humidity", 50.0)
	viper.SetDefault("atmosphere.altitude", 0.0)
	viper.SetDefault("atmosphere.windSpeed", 0.0)
	viper.SetDefault("atmosphere.windAngle", 0.0)

	viper.SetDefault("storage.enabled", true)
	viper.SetDefault("storage.path", "./armorcalc.db")

	setAmmunitionDefaults()
	setArmorDefaults()

	viper.SetConfigName("armorcalc.cfg.json")
	viper.AddConfigPath(configDir)
	viper.SetConfigType("json")

	err := viper.ReadInConfig()
	if err != nil {
		return fmt.Errorf("error reading config file: %v", err)
	}

	return nil
}

func setAmmunitionDefaults() {
	viper.SetDefault("presets.ammunition.m829a4.kind", "longrod")
	viper.SetDefault("presets.ammunition.m829a4.caliber", 120.0)
	viper.SetDefault("presets.ammunition.m829a4.penetratorDiameter", 22.0)
	viper.SetDefault("presets.ammunition.m829a4.penetratorLength", 570.0)
	viper.SetDefault("presets.ammunition.m829a4.mass", 4.6)
	viper.SetDefault("presets.ammunition.m829a4.muzzleVelocity", 1680.0)

	viper.SetDefault("presets.ammunition.dm53.kind", "longrod")
	viper.SetDefault("presets.ammunition.dm53.caliber", 120.0)
	viper.SetDefault("presets.ammunition.dm53.penetratorDiameter", 23.0)
	viper.SetDefault("presets.ammunition.dm53.penetratorLength", 745.0)
	viper.SetDefault("presets.ammunition.dm53.mass", 5.0)
	viper.SetDefault("presets.ammunition.dm53.muzzleVelocity", 1670.0)

	viper.SetDefault("presets.ammunition.3bm60.kind", "longrod")
	viper.SetDefault("presets.ammunition.3bm60.caliber", 125.0)
	viper.SetDefault("presets.ammunition.3bm60.penetratorDiameter", 22.0)
	viper.SetDefault("presets.ammunition.3bm60.penetratorLength", 640.0)
	viper.SetDefault("presets.ammunition.3bm60.mass", 4.6)
	viper.SetDefault("presets.ammunition.3bm60.muzzleVelocity", 1660.0)

	viper.SetDefault("presets.ammunition.m830a1.kind", "shapedcharge")
	viper.SetDefault("presets.ammunition.m830a1.caliber", 120.0)
	viper.SetDefault("presets.ammunition.m830a1.mass", 13.5)
	viper.SetDefault("presets.ammunition.m830a1.explosiveMass", 2.4)
	viper.SetDefault("presets.ammunition.m830a1.standoffDistance", 150.0)

	viper.SetDefault("presets.ammunition.l31.kind", "spallingcharge")
	viper.SetDefault("presets.ammunition.l31.caliber", 120.0)
	viper.SetDefault("presets.ammunition.l31.mass", 17.5)
	viper.SetDefault("presets.ammunition.l31.explosiveMass", 4.0)
	viper.SetDefault("presets.ammunition.l31.muzzleVelocity", 670.0)
}

func setArmorDefaults() {
	viper.SetDefault("presets.armor.rha200.kind", "homogeneous")
	viper.SetDefault("presets.armor.rha200.thickness", 200.0)
	viper.SetDefault("presets.armor.rha200.hardness", 1.0)
	viper.SetDefault("presets.armor.rha200.quality", 1.0)

	viper.SetDefault("presets.armor.turretfront.kind", "composite")
	viper.SetDefault("presets.armor.turretfront.thickness", 800.0)
	viper.SetDefault("presets.armor.turretfront.steelLayers", 250.0)
	viper.SetDefault("presets.armor.turretfront.ceramicLayers", 450.0)
	viper.SetDefault("presets.armor.turretfront.otherLayers", 100.0)

	viper.SetDefault("presets.armor.hullera.kind", "reactive")
	viper.SetDefault("presets.armor.hullera.baseThickness", 400.0)
	viper.SetDefault("presets.armor.hullera.eraThickness", 30.0)
	viper.SetDefault("presets.armor.hullera.explosiveMass", 0.3)

	viper.SetDefault("presets.armor.sideskirt.kind", "spaced")
	viper.SetDefault("presets.armor.sideskirt.frontPlate", 15.0)
	viper.SetDefault("presets.armor.sideskirt.rearPlate", 40.0)
	viper.SetDefault("presets.armor.sideskirt.spacing", 300.0)
}

// GetString returns a string config value.
func GetString(key string) string {
	return viper.GetString(key)
}

// GetFloat returns a float config value.
func GetFloat(key string) float64 {
	return viper.GetFloat64(key)
}

// GetBool returns a bool config value.
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// GetSimulationConfig returns the numerical settings.
func GetSimulationConfig() SimulationConfig {
	return SimulationConfig{
		TimeStep:   viper.GetFloat64("simulation.timeStep"),
		SampleStep: viper.GetFloat64("simulation.sampleStep"),
	}
}

// GetStorageConfig returns the session database settings.
func GetStorageConfig() StorageConfig {
	return StorageConfig{
		Enabled: viper.GetBool("storage.enabled"),
		Path:    viper.GetString("storage.path"),
	}
}

// BuildAtmosphere creates the configured default atmosphere.
func BuildAtmosphere() (armorcalc.Atmosphere, error) {
	return armorcalc.CreateAtmosphere(
		viper.GetFloat64("atmosphere.temperature"),
		viper.GetFloat64("atmosphere.pressure"),
		viper.GetFloat64("atmosphere.humidity"),
		viper.GetFloat64("atmosphere.altitude"),
		viper.GetFloat64("atmosphere.windSpeed"),
		viper.GetFloat64("atmosphere.windAngle"),
	)
}

// AmmunitionPresets returns the names of the configured ammunition presets.
func AmmunitionPresets() []string {
	return presetNames("presets.ammunition")
}

// ArmorPresets returns the names of the configured armor presets.
func ArmorPresets() []string {
	return presetNames("presets.armor")
}

func presetNames(prefix string) []string {
	sub := viper.Sub(prefix)
	if sub == nil {
		return nil
	}
	names := make([]string, 0)
	seen := make(map[string]bool)
	for _, key := range sub.AllKeys() {
		name := strings.SplitN(key, ".", 2)[0]
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	return names
}

// BuildAmmunition creates a round from the named preset.
func BuildAmmunition(name string) (armorcalc.Ammunition, error) {
	prefix := "presets.ammunition." + strings.ToLower(name)
	if !viper.IsSet(prefix + ".kind") {
		return armorcalc.Ammunition{}, fmt.Errorf("unknown ammunition preset %q", name)
	}

	kind := viper.GetString(prefix + ".kind")
	caliber := viper.GetFloat64(prefix + ".caliber")
	mass := viper.GetFloat64(prefix + ".mass")
	velocity := viper.GetFloat64(prefix + ".muzzleVelocity")

	switch kind {
	case "longrod":
		return armorcalc.CreateKineticLongRod(strings.ToUpper(name), caliber,
			viper.GetFloat64(prefix+".penetratorDiameter"), mass, velocity,
			viper.GetFloat64(prefix+".penetratorLength"))
	case "solidshot":
		return armorcalc.CreateKineticSolidShot(strings.ToUpper(name), caliber, mass, velocity)
	case "subcaliber":
		return armorcalc.CreateKineticSubcaliber(strings.ToUpper(name), caliber,
			viper.GetFloat64(prefix+".coreDiameter"), mass, velocity)
	case "shapedcharge":
		return armorcalc.CreateShapedCharge(strings.ToUpper(name), caliber, mass,
			viper.GetFloat64(prefix+".explosiveMass"),
			viper.GetFloat64(prefix+".standoffDistance"))
	case "spallingcharge":
		return armorcalc.CreateSpallingCharge(strings.ToUpper(name), caliber, mass,
			viper.GetFloat64(prefix+".explosiveMass"), velocity)
	default:
		return armorcalc.Ammunition{}, fmt.Errorf("ammunition preset %q has unknown kind %q", name, kind)
	}
}

// BuildArmor creates an armor plate from the named preset. The plate's damage
// accumulator carries any calibration overrides configured under damage.<kind>.
func BuildArmor(name string) (armorcalc.Armor, error) {
	prefix := "presets.armor." + strings.ToLower(name)
	if !viper.IsSet(prefix + ".kind") {
		return armorcalc.Armor{}, fmt.Errorf("unknown armor preset %q", name)
	}

	var armor armorcalc.Armor
	var err error
	kind := viper.GetString(prefix + ".kind")
	switch kind {
	case "homogeneous":
		armor, err = armorcalc.CreateHomogeneousArmor(name,
			viper.GetFloat64(prefix+".thickness"),
			viper.GetFloat64(prefix+".hardness"),
			viper.GetFloat64(prefix+".quality"))
	case "composite":
		armor, err = armorcalc.CreateCompositeArmor(name,
			viper.GetFloat64(prefix+".thickness"),
			viper.GetFloat64(prefix+".steelLayers"),
			viper.GetFloat64(prefix+".ceramicLayers"),
			viper.GetFloat64(prefix+".otherLayers"))
	case "reactive":
		armor, err = armorcalc.CreateReactiveArmor(name,
			viper.GetFloat64(prefix+".baseThickness"),
			viper.GetFloat64(prefix+".eraThickness"),
			viper.GetFloat64(prefix+".explosiveMass"))
	case "spaced":
		armor, err = armorcalc.CreateSpacedArmor(name,
			viper.GetFloat64(prefix+".frontPlate"),
			viper.GetFloat64(prefix+".rearPlate"),
			viper.GetFloat64(prefix+".spacing"))
	default:
		return armorcalc.Armor{}, fmt.Errorf("armor preset %q has unknown kind %q", name, kind)
	}
	if err != nil {
		return armorcalc.Armor{}, err
	}
	return armor.WithDamageProperties(GetMaterialDamageProperties(armor.Kind()))
}

// GetMaterialDamageProperties returns the damage coefficients for an armor
// kind, starting from the library defaults and applying any configured
// overrides under damage.<kind>.
func GetMaterialDamageProperties(armorKind byte) armorcalc.MaterialDamageProperties {
	properties := armorcalc.DefaultMaterialDamageProperties(armorKind)

	var section string
	switch armorKind {
	case armorcalc.ArmorComposite:
		section = "damage.composite"
	case armorcalc.ArmorReactive:
		section = "damage.reactive"
	case armorcalc.ArmorSpaced:
		section = "damage.spaced"
	default:
		section = "damage.homogeneous"
	}

	if viper.IsSet(section + ".hardnessDegradationRate") {
		properties.HardnessDegradationRate = viper.GetFloat64(section + ".hardnessDegradationRate")
	}
	if viper.IsSet(section + ".spallResistance") {
		properties.SpallResistance = viper.GetFloat64(section + ".spallResistance")
	}
	if viper.IsSet(section + ".thermalResistance") {
		properties.ThermalResistance = viper.GetFloat64(section + ".thermalResistance")
	}
	if viper.IsSet(section + ".fatigueLimit") {
		properties.FatigueLimit = viper.GetInt(section + ".fatigueLimit")
	}
	return properties
}

package go_armorcalc

import (
	"fmt"
	"math"
)

//Propellant kinds
const PropellantSingleBase byte = 1
const PropellantDoubleBase byte = 2
const PropellantTripleBase byte = 3

//Temperature bands for reporting
const TemperatureBandArctic byte = 1
const TemperatureBandCold byte = 2
const TemperatureBandTemperate byte = 3
const TemperatureBandHot byte = 4
const TemperatureBandDesert byte = 5

//Armor materials distinguished by the thermal model
const MaterialSteel byte = 1
const MaterialTungsten byte = 2
const MaterialComposite byte = 3
const MaterialCeramic byte = 4

const cReferenceTemperatureC float64 = 15.0
const cVelocityChangePerDegree float64 = 0.008

//per-propellant temperature sensitivity
type propellantCharacteristics struct {
	sensitivity float64
	coldLimit   float64 //°C, below this the charge burns poorly
	hotLimit    float64 //°C, above this the burn rate bonus saturates
	criticalHot float64 //°C, above this the charge degrades
}

func propellantFor(kind byte) (propellantCharacteristics, error) {
	switch kind {
	case PropellantSingleBase:
		return propellantCharacteristics{sensitivity: 1.0, coldLimit: -10, hotLimit: 40, criticalHot: 60}, nil
	case PropellantDoubleBase:
		return propellantCharacteristics{sensitivity: 0.8, coldLimit: -15, hotLimit: 45, criticalHot: 70}, nil
	case PropellantTripleBase:
		return propellantCharacteristics{sensitivity: 0.6, coldLimit: -20, hotLimit: 50, criticalHot: 75}, nil
	default:
		return propellantCharacteristics{}, fmt.Errorf("Temperature: unknown propellant kind %d", kind)
	}
}

//thermal response of armor materials
type materialThermalCharacteristics struct {
	expansionCoefficient float64 //1/°C
	hardnessCoefficient  float64 //hardness change per °C
}

func thermalCharacteristicsFor(material byte) (materialThermalCharacteristics, error) {
	switch material {
	case MaterialSteel:
		return materialThermalCharacteristics{expansionCoefficient: 12e-6, hardnessCoefficient: -0.002}, nil
	case MaterialTungsten:
		return materialThermalCharacteristics{expansionCoefficient: 4.5e-6, hardnessCoefficient: -0.001}, nil
	case MaterialComposite:
		return materialThermalCharacteristics{expansionCoefficient: 8e-6, hardnessCoefficient: -0.003}, nil
	case MaterialCeramic:
		return materialThermalCharacteristics{expansionCoefficient: 6e-6, hardnessCoefficient: -0.001}, nil
	default:
		return materialThermalCharacteristics{}, fmt.Errorf("Temperature: unknown armor material %d", material)
	}
}

//armorMaterial maps an armor kind to the material whose thermal response
//dominates its behaviour
func armorMaterial(armorKind byte) byte {
	if armorKind == ArmorComposite {
		return MaterialComposite
	}
	return MaterialSteel
}

//TemperatureConditions describe the thermal state of the engagement
type TemperatureConditions struct {
	ambient    float64 //°C
	propellant float64 //°C of the charge in the breech
	barrel     float64 //°C of the barrel
	armor      float64 //°C of the armor surface
	humidity   float64 //%
}

//CreateTemperatureConditions creates a thermal state. Temperatures are °C,
//humidity is relative in percent.
func CreateTemperatureConditions(ambient, propellant, barrel, armorSurface, humidity float64) (TemperatureConditions, error) {
	if ambient < -90 || ambient > 60 {
		return TemperatureConditions{}, fmt.Errorf("TemperatureConditions: ambient temperature must be in -90..60 range")
	}
	if humidity < 0 || humidity > 100 {
		return TemperatureConditions{}, fmt.Errorf("TemperatureConditions: humidity must be in 0..100 range")
	}
	return TemperatureConditions{
		ambient:    ambient,
		propellant: propellant,
		barrel:     barrel,
		armor:      armorSurface,
		humidity:   humidity,
	}, nil
}

//CreateUniformTemperatureConditions creates a thermal state where the charge,
//the barrel and the armor have all soaked to the ambient temperature
func CreateUniformTemperatureConditions(ambient, humidity float64) (TemperatureConditions, error) {
	return CreateTemperatureConditions(ambient, ambient, ambient, ambient, humidity)
}

//Ambient returns the ambient air temperature in °C
func (c TemperatureConditions) Ambient() float64 {
	return c.ambient
}

//Propellant returns the charge temperature in °C
func (c TemperatureConditions) Propellant() float64 {
	return c.propellant
}

//Barrel returns the barrel temperature in °C
func (c TemperatureConditions) Barrel() float64 {
	return c.barrel
}

//ArmorSurface returns the armor surface temperature in °C
func (c TemperatureConditions) ArmorSurface() float64 {
	return c.armor
}

//Humidity returns the relative humidity in percent
func (c TemperatureConditions) Humidity() float64 {
	return c.humidity
}

//Band returns the temperature band of the ambient temperature
func (c TemperatureConditions) Band() byte {
	return TemperatureBand(c.ambient)
}

//TemperatureBand classifies an ambient temperature into a reporting band
func TemperatureBand(ambientC float64) byte {
	switch {
	case ambientC < -20:
		return TemperatureBandArctic
	case ambientC < 0:
		return TemperatureBandCold
	case ambientC < 25:
		return TemperatureBandTemperate
	case ambientC < 45:
		return TemperatureBandHot
	default:
		return TemperatureBandDesert
	}
}

//TemperatureBandName returns the upper-case name of a temperature band
func TemperatureBandName(band byte) string {
	switch band {
	case TemperatureBandArctic:
		return "ARCTIC"
	case TemperatureBandCold:
		return "COLD"
	case TemperatureBandTemperate:
		return "TEMPERATE"
	case TemperatureBandHot:
		return "HOT"
	case TemperatureBandDesert:
		return "DESERT"
	default:
		return "UNKNOWN"
	}
}

//TemperatureEffects summarizes the thermal influence on one engagement
type TemperatureEffects struct {
	velocityModifier     float64 //multiplier on the muzzle velocity
	propellantEfficiency float64 //0.3..1.2
	armorHardnessFactor  float64 //multiplier on the armor hardness
	thermalExpansion     float64 //mm of armor thickness change
	penetrationModifier  float64 //multiplier on the penetration capability
	accuracyModifier     float64 //dispersion multiplier, 1.0 is nominal
	barrelWearFactor     float64 //wear rate multiplier, 1.0 is nominal
}

//VelocityModifier returns the muzzle velocity multiplier
func (e TemperatureEffects) VelocityModifier() float64 {
	return e.velocityModifier
}

//PropellantEfficiency returns the charge burn efficiency in 0.3..1.2
func (e TemperatureEffects) PropellantEfficiency() float64 {
	return e.propellantEfficiency
}

//ArmorHardnessFactor returns the armor hardness multiplier
func (e TemperatureEffects) ArmorHardnessFactor() float64 {
	return e.armorHardnessFactor
}

//ThermalExpansion returns the armor thickness change in mm
func (e TemperatureEffects) ThermalExpansion() float64 {
	return e.thermalExpansion
}

//PenetrationModifier returns the combined penetration multiplier
func (e TemperatureEffects) PenetrationModifier() float64 {
	return e.penetrationModifier
}

//AccuracyModifier returns the dispersion multiplier (1.0 is nominal)
func (e TemperatureEffects) AccuracyModifier() float64 {
	return e.accuracyModifier
}

//BarrelWearFactor returns the barrel wear rate multiplier
func (e TemperatureEffects) BarrelWearFactor() float64 {
	return e.barrelWearFactor
}

//VelocityModifier returns the muzzle velocity multiplier for a propellant
//charge at the given temperature
func VelocityModifier(propellantKind byte, chargeTemperatureC float64) (float64, error) {
	chars, err := propellantFor(propellantKind)
	if err != nil {
		return 0, err
	}

	delta := chargeTemperatureC - cReferenceTemperatureC
	change := delta * cVelocityChangePerDegree
	if chargeTemperatureC < chars.coldLimit {
		change -= (chars.coldLimit - chargeTemperatureC) * 0.01
	}
	if chargeTemperatureC > chars.criticalHot {
		change -= (chargeTemperatureC - chars.criticalHot) * 0.005
	} else if chargeTemperatureC > chars.hotLimit {
		change += math.Min(0.02, (chargeTemperatureC-chars.hotLimit)*0.002)
	}
	return 1.0 + chars.sensitivity*change, nil
}

//PropellantEfficiency returns the burn efficiency of a charge at the given
//temperature. The optimum sits near 40°C; extreme cold and heat both hurt.
func PropellantEfficiency(chargeTemperatureC float64) float64 {
	deviation := (chargeTemperatureC - 40.0) / 20.0
	efficiency := 1.0 + 0.15*math.Exp(-0.5*deviation*deviation)
	if chargeTemperatureC < -30 {
		efficiency *= 0.7
	}
	if chargeTemperatureC > 70 {
		efficiency *= 0.8
	}
	return math.Max(0.3, math.Min(1.2, efficiency))
}

//ArmorHardnessFactor returns the hardness multiplier of an armor material at
//the given surface temperature
func ArmorHardnessFactor(material byte, surfaceTemperatureC float64) (float64, error) {
	chars, err := thermalCharacteristicsFor(material)
	if err != nil {
		return 0, err
	}
	factor := 1.0 + (surfaceTemperatureC-cReferenceTemperatureC)*chars.hardnessCoefficient
	if surfaceTemperatureC < -40 {
		//cold embrittlement reads as extra hardness against slow penetrators
		factor += 0.1
	}
	if surfaceTemperatureC > 500 {
		factor -= 0.3
	}
	return math.Max(0.3, math.Min(1.5, factor)), nil
}

//ThermalExpansion returns the thickness change in mm of a plate at the given
//surface temperature
func ThermalExpansion(material byte, thicknessMM, surfaceTemperatureC float64) (float64, error) {
	chars, err := thermalCharacteristicsFor(material)
	if err != nil {
		return 0, err
	}
	return thicknessMM * chars.expansionCoefficient * (surfaceTemperatureC - cReferenceTemperatureC), nil
}

func accuracyModifier(conditions TemperatureConditions) float64 {
	spread := math.Abs(conditions.barrel-conditions.propellant) + math.Abs(conditions.ambient-conditions.propellant)
	modifier := 1.0 + spread*0.01
	if conditions.propellant < -20 || conditions.propellant > 50 {
		modifier += 0.1
	}
	if conditions.barrel < conditions.ambient-10 {
		modifier += 0.05
	}
	return math.Max(1.0, math.Min(3.0, modifier))
}

func barrelWearFactor(barrelTemperatureC, efficiency float64) float64 {
	factor := (1.0 + math.Max(0, barrelTemperatureC-20.0)*0.02) * math.Sqrt(efficiency)
	if barrelTemperatureC > 80 {
		factor *= 2.0
	}
	if barrelTemperatureC < -30 {
		factor *= 1.3
	}
	return math.Max(0.5, math.Min(5.0, factor))
}

//EvaluateTemperature computes the combined thermal effects of the conditions
//on a shot of the given ammunition against the given armor.
//
//The penetration modifier folds the velocity change (raised to the category
//velocity exponent) together with the armor hardness change; for chemical
//rounds high humidity additionally degrades the jet.
func EvaluateTemperature(ammo Ammunition, armor Armor, propellantKind byte, conditions TemperatureConditions) (TemperatureEffects, error) {
	velocityModifier, err := VelocityModifier(propellantKind, conditions.propellant)
	if err != nil {
		return TemperatureEffects{}, err
	}
	efficiency := PropellantEfficiency(conditions.propellant)

	material := armorMaterial(armor.Kind())
	hardnessFactor, err := ArmorHardnessFactor(material, conditions.armor)
	if err != nil {
		return TemperatureEffects{}, err
	}
	expansion, err := ThermalExpansion(material, armor.Thickness(), conditions.armor)
	if err != nil {
		return TemperatureEffects{}, err
	}

	var velocityExponent float64
	switch ammo.Category() {
	case CategoryKinetic:
		velocityExponent = 1.8
	case CategoryChemical:
		velocityExponent = 0.2
	default:
		velocityExponent = 0.8
	}

	penetrationModifier := math.Pow(velocityModifier, velocityExponent) / hardnessFactor
	if ammo.Category() == CategoryChemical {
		penetrationModifier *= 1.0 - (conditions.humidity-50.0)/500.0
	}
	penetrationModifier = math.Max(0.2, math.Min(2.0, penetrationModifier))

	return TemperatureEffects{
		velocityModifier:     velocityModifier,
		propellantEfficiency: efficiency,
		armorHardnessFactor:  hardnessFactor,
		thermalExpansion:     expansion,
		penetrationModifier:  penetrationModifier,
		accuracyModifier:     accuracyModifier(conditions),
		barrelWearFactor:     barrelWearFactor(conditions.barrel, efficiency),
	}, nil
}

package go_armorcalc

import (
	"fmt"
	"math"
)

//Armor kinds. Like the ammunition kinds the set is closed.
const ArmorHomogeneous byte = 1
const ArmorComposite byte = 2
const ArmorReactive byte = 3
const ArmorSpaced byte = 4

//material densities in kg/m³ used for composite layer blending
const cSteelDensity float64 = 7850.0
const cCeramicDensity float64 = 3900.0
const cOtherLayerDensity float64 = 2000.0
const cReactiveDensity float64 = 6000.0
const cSpacedDensity float64 = 4000.0

//composite protection never exceeds this multiple of RHA
const cCompositeProtectionCap float64 = 2.5

//effective thickness is computed against angles capped just short of grazing
//so the 1/cos term stays finite
const cMaximumObliquityDeg float64 = 89.0

//Armor describes an armor plate under test.
//
//Geometry and hardness are immutable except through the damage accumulator
//owned by the instance: every armor is created pristine with its own
//accumulator and the pair is never shared between instances.
type Armor struct {
	name      string
	kind      byte
	thickness float64 //mm, nominal
	density   float64 //kg/m³
	hardness  float64 //relative to standard RHA = 1.0

	quality float64 //homogeneous: steel quality factor

	steelLayers   float64 //composite: mm
	ceramicLayers float64 //composite: mm
	otherLayers   float64 //composite: mm

	baseThickness float64 //reactive: mm of base plate behind the tiles
	eraThickness  float64 //reactive: mm of tile
	explosiveMass float64 //reactive: kg per tile

	frontPlate float64 //spaced: mm
	rearPlate  float64 //spaced: mm
	spacing    float64 //spaced: air gap in mm

	damage *DamageAccumulator
}

func createArmor(name string, kind byte, thickness, density, hardness float64) (Armor, error) {
	if thickness <= 0 {
		return Armor{}, fmt.Errorf("Armor: thickness must be greater than zero")
	}
	if density <= 0 {
		return Armor{}, fmt.Errorf("Armor: density must be greater than zero")
	}
	if hardness <= 0 {
		return Armor{}, fmt.Errorf("Armor: hardness factor must be greater than zero")
	}
	accumulator, err := CreateDamageAccumulator(thickness, kind)
	if err != nil {
		return Armor{}, err
	}
	return Armor{
		name:      name,
		kind:      kind,
		thickness: thickness,
		density:   density,
		hardness:  hardness,
		quality:   1.0,
		damage:    accumulator,
	}, nil
}

//CreateRHA creates a rolled homogeneous armor plate, the baseline all
//penetration figures are expressed against
func CreateRHA(thickness, hardness float64) (Armor, error) {
	return createArmor(fmt.Sprintf("RHA %.0fmm", thickness), ArmorHomogeneous, thickness, cSteelDensity, hardness)
}

//CreateHomogeneousArmor creates a homogeneous steel plate with an explicit
//steel quality factor that scales protection against every category
func CreateHomogeneousArmor(name string, thickness, hardness, quality float64) (Armor, error) {
	if quality <= 0 {
		return Armor{}, fmt.Errorf("Armor: quality factor must be greater than zero")
	}
	armor, err := createArmor(name, ArmorHomogeneous, thickness, cSteelDensity, hardness)
	if err != nil {
		return Armor{}, err
	}
	armor.quality = quality
	return armor, nil
}

//CreateCompositeArmor creates a multi-layer composite plate. The layer
//thicknesses must sum to no more than the total thickness.
func CreateCompositeArmor(name string, thickness, steelLayers, ceramicLayers, otherLayers float64) (Armor, error) {
	if steelLayers < 0 || ceramicLayers < 0 || otherLayers < 0 {
		return Armor{}, fmt.Errorf("Armor: layer thickness must not be negative")
	}
	if steelLayers+ceramicLayers+otherLayers > thickness {
		return Armor{}, fmt.Errorf("Armor: layers exceed the total thickness")
	}
	density := (steelLayers*cSteelDensity + ceramicLayers*cCeramicDensity + otherLayers*cOtherLayerDensity) / thickness
	if density <= 0 {
		density = cOtherLayerDensity
	}
	armor, err := createArmor(name, ArmorComposite, thickness, density, 1.0)
	if err != nil {
		return Armor{}, err
	}
	armor.steelLayers = steelLayers
	armor.ceramicLayers = ceramicLayers
	armor.otherLayers = otherLayers
	return armor, nil
}

//CreateReactiveArmor creates an explosive reactive armor array over a base
//plate. explosiveMass is the charge per tile in kg.
func CreateReactiveArmor(name string, baseThickness, eraThickness, explosiveMass float64) (Armor, error) {
	if baseThickness <= 0 || eraThickness <= 0 {
		return Armor{}, fmt.Errorf("Armor: plate thickness must be greater than zero")
	}
	if explosiveMass <= 0 {
		return Armor{}, fmt.Errorf("Armor: explosive mass must be greater than zero")
	}
	armor, err := createArmor(name, ArmorReactive, baseThickness+eraThickness, cReactiveDensity, 1.0)
	if err != nil {
		return Armor{}, err
	}
	armor.baseThickness = baseThickness
	armor.eraThickness = eraThickness
	armor.explosiveMass = explosiveMass
	return armor, nil
}

//CreateSpacedArmor creates a two-plate spaced array with an air gap
func CreateSpacedArmor(name string, frontPlate, rearPlate, spacing float64) (Armor, error) {
	if frontPlate <= 0 || rearPlate <= 0 {
		return Armor{}, fmt.Errorf("Armor: plate thickness must be greater than zero")
	}
	if spacing < 0 {
		return Armor{}, fmt.Errorf("Armor: spacing must not be negative")
	}
	armor, err := createArmor(name, ArmorSpaced, frontPlate+rearPlate, cSpacedDensity, 1.0)
	if err != nil {
		return Armor{}, err
	}
	armor.frontPlate = frontPlate
	armor.rearPlate = rearPlate
	armor.spacing = spacing
	return armor, nil
}

//Name returns the armor designation
func (a Armor) Name() string {
	return a.name
}

//Kind returns the armor kind (one of the Armor* constants)
func (a Armor) Kind() byte {
	return a.kind
}

//Thickness returns the nominal thickness in mm
func (a Armor) Thickness() float64 {
	return a.thickness
}

//Density returns the average density in kg/m³
func (a Armor) Density() float64 {
	return a.density
}

//Hardness returns the hardness factor relative to standard RHA
func (a Armor) Hardness() float64 {
	return a.hardness
}

//ExplosiveMass returns the per-tile explosive charge of reactive armor in kg
//(zero for other kinds)
func (a Armor) ExplosiveMass() float64 {
	return a.explosiveMass
}

//Spacing returns the air gap of spaced armor in mm (zero for other kinds)
func (a Armor) Spacing() float64 {
	return a.spacing
}

//MassPerArea returns the areal density in kg/m²
func (a Armor) MassPerArea() float64 {
	return a.thickness * a.density / 1000
}

//Damage returns the damage accumulator owned by this armor instance
func (a Armor) Damage() *DamageAccumulator {
	return a.damage
}

//WithDamageProperties returns a copy of the armor whose damage accumulator
//uses the given material coefficients instead of the kind defaults.
//
//The armor must still be pristine: once damage has been recorded the
//coefficients are part of the accumulated history and can no longer change.
func (a Armor) WithDamageProperties(properties MaterialDamageProperties) (Armor, error) {
	if len(a.damage.Events()) > 0 {
		return Armor{}, fmt.Errorf("Armor: damage coefficients can only be set on a pristine armor")
	}
	accumulator, err := CreateDamageAccumulatorWithProperties(a.thickness, a.kind, properties)
	if err != nil {
		return Armor{}, err
	}
	a.damage = accumulator
	return a, nil
}

//ProtectionFactor returns the protection multiplier of this armor kind
//against the given ammunition category, relative to RHA of equal thickness
func (a Armor) ProtectionFactor(category byte) float64 {
	switch a.kind {
	case ArmorHomogeneous:
		return a.quality

	case ArmorComposite:
		steelRatio := a.steelLayers / a.thickness
		ceramicRatio := a.ceramicLayers / a.thickness
		var protection float64
		switch category {
		case CategoryKinetic:
			protection = 1.0 + ceramicRatio*0.3
		case CategoryChemical:
			//layer disruption breaks up the jet
			protection = 1.2 + ceramicRatio*0.8 + steelRatio*0.2
		case CategorySpalling:
			protection = 1.1 + ceramicRatio*0.4 + steelRatio*0.1
		default:
			protection = 1.0
		}
		return math.Min(protection, cCompositeProtectionCap)

	case ArmorReactive:
		switch category {
		case CategoryKinetic:
			//tiles destabilize long rods but the effect is limited
			return 1.2
		case CategoryChemical:
			return 2.5 + a.explosiveMass*10
		case CategorySpalling:
			return 1.5
		default:
			return 1.0
		}

	case ArmorSpaced:
		switch category {
		case CategoryKinetic:
			return 0.95
		case CategoryChemical:
			//the gap lets the jet expand before the rear plate
			return math.Min(2.0, 1.0+a.spacing/100)
		case CategorySpalling:
			return 1.8
		default:
			return 1.0
		}

	default:
		return 1.0
	}
}

//EffectiveThickness returns the protection of this armor against the given
//ammunition category at the given impact angle, in mm RHA equivalent.
//
//The impact angle is measured from the plate normal in degrees. The figure
//reflects any damage the plate has already accumulated and is monotonically
//non-increasing as damage grows.
func (a Armor) EffectiveThickness(category byte, impactAngleDeg float64) float64 {
	angle := math.Max(0, math.Min(cMaximumObliquityDeg, impactAngleDeg))
	angledThickness := a.thickness / math.Cos(angle*math.Pi/180)
	return angledThickness * a.ProtectionFactor(category) * a.hardness * a.damage.Effectiveness(category)
}

//CanDefeat reports whether the armor stops a round with the given penetration
//capability (mm RHA) at the given impact angle
func (a Armor) CanDefeat(penetration float64, category byte, impactAngleDeg float64) bool {
	return a.EffectiveThickness(category, impactAngleDeg) >= penetration
}

func (a Armor) String() string {
	return fmt.Sprintf("%s (%.0fmm)", a.name, a.thickness)
}

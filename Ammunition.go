package go_armorcalc

import (
	"fmt"
)

//Ammunition kinds. The set is closed: every model in the package switches
//exhaustively over these values and rejects anything else.
const AmmoKineticLongRod byte = 1
const AmmoKineticSolidShot byte = 2
const AmmoKineticSubcaliber byte = 3
const AmmoChemicalShapedCharge byte = 4
const AmmoSpallingCharge byte = 5

//Ammunition categories group the kinds by penetration mechanism
const CategoryKinetic byte = 1
const CategoryChemical byte = 2
const CategorySpalling byte = 3

const cDefaultShapedChargeVelocity float64 = 800.0
const cDefaultSpallingVelocity float64 = 700.0

//simple range-decay model constant, fraction of velocity lost per meter
const cRangeDecayPerMeter float64 = 0.0001

//the velocity never decays below this fraction of the muzzle velocity
const cMinimumVelocityFraction float64 = 0.1

//Ammunition describes a single anti-armor round.
//
//The structure is immutable after construction. Variant-specific fields
//(penetrator dimensions, core dimensions, explosive charge) are only set
//by the constructor of the matching kind.
type Ammunition struct {
	name           string
	kind           byte
	caliber        float64 //mm
	mass           float64 //kg, the penetrating body for sub-caliber rounds
	muzzleVelocity float64 //m/s

	penetratorLength   float64 //mm, long rod only
	penetratorDiameter float64 //mm, long rod only

	coreDiameter float64 //mm, subcaliber only

	explosiveMass    float64 //kg, shaped charge and spalling only
	standoffDistance float64 //mm, shaped charge only
}

func validateAmmunition(caliber, mass, muzzleVelocity float64) error {
	if caliber <= 0 {
		return fmt.Errorf("Ammunition: caliber must be greater than zero")
	}
	if mass <= 0 {
		return fmt.Errorf("Ammunition: mass must be greater than zero")
	}
	if muzzleVelocity <= 0 {
		return fmt.Errorf("Ammunition: muzzle velocity must be greater than zero")
	}
	return nil
}

//CreateKineticLongRod creates a fin-stabilized long-rod penetrator round (APFSDS).
//
//caliber is the gun bore in mm, penetratorDiameter and penetratorLength describe
//the sub-projectile rod, mass is the rod mass in kg.
func CreateKineticLongRod(name string, caliber, penetratorDiameter, mass, muzzleVelocity, penetratorLength float64) (Ammunition, error) {
	if err := validateAmmunition(caliber, mass, muzzleVelocity); err != nil {
		return Ammunition{}, err
	}
	if penetratorDiameter <= 0 || penetratorLength <= 0 {
		return Ammunition{}, fmt.Errorf("Ammunition: penetrator dimensions must be greater than zero")
	}
	return Ammunition{
		name:               name,
		kind:               AmmoKineticLongRod,
		caliber:            caliber,
		mass:               mass,
		muzzleVelocity:     muzzleVelocity,
		penetratorDiameter: penetratorDiameter,
		penetratorLength:   penetratorLength,
	}, nil
}

//CreateKineticSolidShot creates a full-caliber armor-piercing shot round (AP)
func CreateKineticSolidShot(name string, caliber, mass, muzzleVelocity float64) (Ammunition, error) {
	if err := validateAmmunition(caliber, mass, muzzleVelocity); err != nil {
		return Ammunition{}, err
	}
	return Ammunition{
		name:           name,
		kind:           AmmoKineticSolidShot,
		caliber:        caliber,
		mass:           mass,
		muzzleVelocity: muzzleVelocity,
	}, nil
}

//CreateKineticSubcaliber creates a composite-rigid round with a hard sub-caliber
//core (APCR). coreDiameter and coreMass describe the penetrating core.
func CreateKineticSubcaliber(name string, caliber, coreDiameter, coreMass, muzzleVelocity float64) (Ammunition, error) {
	if err := validateAmmunition(caliber, coreMass, muzzleVelocity); err != nil {
		return Ammunition{}, err
	}
	if coreDiameter <= 0 || coreDiameter > caliber {
		return Ammunition{}, fmt.Errorf("Ammunition: core diameter must be in (0, caliber]")
	}
	return Ammunition{
		name:           name,
		kind:           AmmoKineticSubcaliber,
		caliber:        caliber,
		mass:           coreMass,
		muzzleVelocity: muzzleVelocity,
		coreDiameter:   coreDiameter,
	}, nil
}

//CreateShapedCharge creates a chemical-energy shaped charge round (HEAT).
//
//standoffDistance is the designed detonation standoff in mm, zero means
//contact detonation. Shaped charges fly at a fixed nominal velocity because
//their effect is nearly velocity independent.
func CreateShapedCharge(name string, caliber, warheadMass, explosiveMass, standoffDistance float64) (Ammunition, error) {
	if err := validateAmmunition(caliber, warheadMass, cDefaultShapedChargeVelocity); err != nil {
		return Ammunition{}, err
	}
	if explosiveMass <= 0 || explosiveMass >= warheadMass {
		return Ammunition{}, fmt.Errorf("Ammunition: explosive mass must be in (0, warhead mass)")
	}
	if standoffDistance < 0 {
		return Ammunition{}, fmt.Errorf("Ammunition: standoff distance must not be negative")
	}
	return Ammunition{
		name:             name,
		kind:             AmmoChemicalShapedCharge,
		caliber:          caliber,
		mass:             warheadMass,
		muzzleVelocity:   cDefaultShapedChargeVelocity,
		explosiveMass:    explosiveMass,
		standoffDistance: standoffDistance,
	}, nil
}

//CreateSpallingCharge creates a squash-head round that defeats armor by
//back-face spalling (HESH). If muzzleVelocity is zero the typical value
//for this class of round is used.
func CreateSpallingCharge(name string, caliber, shellMass, explosiveMass, muzzleVelocity float64) (Ammunition, error) {
	if muzzleVelocity == 0 {
		muzzleVelocity = cDefaultSpallingVelocity
	}
	if err := validateAmmunition(caliber, shellMass, muzzleVelocity); err != nil {
		return Ammunition{}, err
	}
	if explosiveMass <= 0 || explosiveMass >= shellMass {
		return Ammunition{}, fmt.Errorf("Ammunition: explosive mass must be in (0, shell mass)")
	}
	return Ammunition{
		name:           name,
		kind:           AmmoSpallingCharge,
		caliber:        caliber,
		mass:           shellMass,
		muzzleVelocity: muzzleVelocity,
		explosiveMass:  explosiveMass,
	}, nil
}

//Name returns the round designation
func (a Ammunition) Name() string {
	return a.name
}

//Kind returns the ammunition kind (one of the Ammo* constants)
func (a Ammunition) Kind() byte {
	return a.kind
}

//Category returns the penetration mechanism category for the kind
func (a Ammunition) Category() byte {
	switch a.kind {
	case AmmoKineticLongRod, AmmoKineticSolidShot, AmmoKineticSubcaliber:
		return CategoryKinetic
	case AmmoChemicalShapedCharge:
		return CategoryChemical
	case AmmoSpallingCharge:
		return CategorySpalling
	default:
		panic(fmt.Errorf("Unknown ammunition kind %d", a.kind))
	}
}

//Caliber returns the gun bore caliber in mm
func (a Ammunition) Caliber() float64 {
	return a.caliber
}

//Mass returns the projectile mass in kg.
//
//For sub-caliber rounds this is the mass of the penetrating core
func (a Ammunition) Mass() float64 {
	return a.mass
}

//MuzzleVelocity returns the muzzle velocity in m/s
func (a Ammunition) MuzzleVelocity() float64 {
	return a.muzzleVelocity
}

//KineticEnergy returns the muzzle kinetic energy in joules
func (a Ammunition) KineticEnergy() float64 {
	return 0.5 * a.mass * a.muzzleVelocity * a.muzzleVelocity
}

//PenetratorDiameter returns the long-rod penetrator diameter in mm
//(zero for other kinds)
func (a Ammunition) PenetratorDiameter() float64 {
	return a.penetratorDiameter
}

//PenetratorLength returns the long-rod penetrator length in mm
//(zero for other kinds)
func (a Ammunition) PenetratorLength() float64 {
	return a.penetratorLength
}

//CoreDiameter returns the sub-caliber core diameter in mm (zero for other kinds)
func (a Ammunition) CoreDiameter() float64 {
	return a.coreDiameter
}

//ExplosiveMass returns the explosive charge mass in kg (zero for kinetic kinds)
func (a Ammunition) ExplosiveMass() float64 {
	return a.explosiveMass
}

//StandoffDistance returns the designed shaped-charge standoff in mm
func (a Ammunition) StandoffDistance() float64 {
	return a.standoffDistance
}

//ReferenceDiameter returns the aerodynamic reference diameter in mm: the
//flying body for sub-caliber rounds, the bore caliber otherwise
func (a Ammunition) ReferenceDiameter() float64 {
	switch a.kind {
	case AmmoKineticLongRod:
		return a.penetratorDiameter
	case AmmoKineticSubcaliber:
		return a.coreDiameter
	default:
		return a.caliber
	}
}

//LengthToDiameterRatio returns the penetrator L/D ratio for long rods
//and zero for every other kind
func (a Ammunition) LengthToDiameterRatio() float64 {
	if a.kind != AmmoKineticLongRod {
		return 0
	}
	return a.penetratorLength / a.penetratorDiameter
}

//VelocityAtRange estimates the remaining velocity in m/s at the given range
//using a linear decay model.
//
//The trajectory calculator produces a better figure when environmental
//conditions are known; this model serves the baseline penetration formulas.
func (a Ammunition) VelocityAtRange(rangeM float64) float64 {
	if rangeM <= 0 {
		return a.muzzleVelocity
	}
	velocity := a.muzzleVelocity * (1 - cRangeDecayPerMeter*rangeM)
	minimum := a.muzzleVelocity * cMinimumVelocityFraction
	if velocity < minimum {
		return minimum
	}
	return velocity
}

func (a Ammunition) String() string {
	return fmt.Sprintf("%s (%.0fmm, %.2fkg, %.0fm/s)", a.name, a.caliber, a.mass, a.muzzleVelocity)
}

func categoryName(category byte) string {
	switch category {
	case CategoryKinetic:
		return "kinetic"
	case CategoryChemical:
		return "chemical"
	case CategorySpalling:
		return "spalling"
	default:
		return "unknown"
	}
}

//CategoryName returns the lower-case name of an ammunition category
func CategoryName(category byte) string {
	return categoryName(category)
}

package go_armorcalc

import (
	"fmt"
	"math"
)

//calibration constants of the closed-form penetration formulas.
//All formulas return mm of RHA equivalent.
const cLongRodScale float64 = 25.0
const cLongRodVelocityExponent float64 = 1.43
const cLongRodReferenceLD float64 = 15.0
const cLongRodLDGain float64 = 0.02
const cLongRodLDCap float64 = 1.4

const cSolidShotScale float64 = 0.5
const cSolidShotVelocityExponent float64 = 1.4

const cSubcaliberScale float64 = 0.6
const cSubcaliberVelocityExponent float64 = 1.5
const cSubcaliberAngleExponent float64 = 0.8

const cShapedChargeCalibers float64 = 6.0
const cShapedChargeExplosiveExponent float64 = 0.3
const cShapedChargeContactPenalty float64 = 0.9
const cShapedChargeStandoffCap float64 = 1.2

const cSpallingScale float64 = 200.0
const cSpallingAngleFraction float64 = 0.7
const cSpallingVelocityReference float64 = 600.0
const cSpallingVelocityCap float64 = 1.2

//enhancement exponents: how strongly each category responds to a velocity
//ratio away from nominal
const cKineticVelocityExponent float64 = 1.43
const cChemicalVelocityExponent float64 = 0.1
const cSpallingVelocityExponent float64 = 0.5

func validateImpact(rangeM, impactAngleDeg float64) error {
	if rangeM < 0 {
		return fmt.Errorf("Penetration: range must not be negative")
	}
	if impactAngleDeg < 0 || impactAngleDeg >= 90 {
		return fmt.Errorf("Penetration: impact angle must be in [0, 90) degrees")
	}
	return nil
}

//CalculatePenetration returns the penetration capability of the round at the
//given range and impact angle in mm RHA equivalent.
//
//The impact angle is measured from the plate normal. The result is never
//negative; spalling rounds return an effect magnitude in the same unit so the
//armor model can treat every category uniformly.
func CalculatePenetration(ammo Ammunition, rangeM, impactAngleDeg float64) (float64, error) {
	if err := validateImpact(rangeM, impactAngleDeg); err != nil {
		return 0, err
	}

	velocity := ammo.VelocityAtRange(rangeM)
	angleRad := impactAngleDeg * math.Pi / 180

	var penetration float64
	switch ammo.Kind() {
	case AmmoKineticLongRod:
		base := math.Pow(velocity/1000, cLongRodVelocityExponent) * ammo.PenetratorDiameter() * cLongRodScale
		ldFactor := math.Min(1.0+(ammo.LengthToDiameterRatio()-cLongRodReferenceLD)*cLongRodLDGain, cLongRodLDCap)
		angleFactor := 1.0 / math.Sqrt(math.Cos(angleRad))
		penetration = base * ldFactor * angleFactor

	case AmmoKineticSolidShot:
		//classic DeMarre form: P = K·(m/d²)·vⁿ·cos(θ)·d
		sectionalDensity := ammo.Mass() / (ammo.Caliber() * ammo.Caliber())
		velocityFactor := math.Pow(velocity/1000, cSolidShotVelocityExponent)
		penetration = cSolidShotScale * sectionalDensity * velocityFactor * math.Cos(angleRad) * ammo.Caliber() * 100

	case AmmoKineticSubcaliber:
		sectionalDensity := ammo.Mass() / (ammo.CoreDiameter() * ammo.CoreDiameter())
		velocityFactor := math.Pow(velocity/1000, cSubcaliberVelocityExponent)
		angleFactor := math.Pow(math.Cos(angleRad), cSubcaliberAngleExponent)
		penetration = cSubcaliberScale * sectionalDensity * velocityFactor * angleFactor * ammo.CoreDiameter() * 100

	case AmmoChemicalShapedCharge:
		base := ammo.Caliber() * cShapedChargeCalibers
		angleFactor := math.Pow(math.Cos(angleRad), 2)
		explosiveFactor := math.Pow(ammo.ExplosiveMass()/(ammo.Caliber()/1000), cShapedChargeExplosiveExponent)
		standoffFactor := cShapedChargeContactPenalty
		if ammo.StandoffDistance() > 0 {
			standoffFactor = math.Min(cShapedChargeStandoffCap, 1.0+ammo.StandoffDistance()/(ammo.Caliber()*3))
		}
		penetration = base * angleFactor * explosiveFactor * standoffFactor

	case AmmoSpallingCharge:
		base := ammo.ExplosiveMass() * cSpallingScale
		angleFactor := math.Cos(angleRad * cSpallingAngleFraction)
		velocityFactor := math.Min(cSpallingVelocityCap, velocity/cSpallingVelocityReference)
		penetration = base * angleFactor * velocityFactor

	default:
		return 0, fmt.Errorf("Penetration: unknown ammunition kind %d", ammo.Kind())
	}

	return math.Max(penetration, 0), nil
}

//PenetrationEnhancement scales a base penetration figure by the deviation of
//the actual impact velocity from nominal and by the impact angle.
//
//velocityRatio is the actual velocity divided by the velocity the base figure
//was computed for. Kinetic rounds respond strongly to velocity, chemical
//rounds barely; the angle response likewise differs per category.
func PenetrationEnhancement(basePenetration, velocityRatio, impactAngleDeg float64, category byte) (float64, error) {
	if basePenetration < 0 || velocityRatio < 0 {
		return 0, fmt.Errorf("Penetration: base penetration and velocity ratio must not be negative")
	}
	if impactAngleDeg < 0 || impactAngleDeg >= 90 {
		return 0, fmt.Errorf("Penetration: impact angle must be in [0, 90) degrees")
	}

	angleRad := impactAngleDeg * math.Pi / 180
	var velocityExponent, angleExponent float64
	switch category {
	case CategoryKinetic:
		velocityExponent, angleExponent = cKineticVelocityExponent, 0.5
	case CategoryChemical:
		velocityExponent, angleExponent = cChemicalVelocityExponent, 2.0
	case CategorySpalling:
		velocityExponent, angleExponent = cSpallingVelocityExponent, 0.7
	default:
		return 0, fmt.Errorf("Penetration: unknown ammunition category %d", category)
	}

	velocityFactor := math.Pow(velocityRatio, velocityExponent)
	angleFactor := 1.0 / math.Pow(math.Cos(angleRad), angleExponent)
	return basePenetration * velocityFactor * angleFactor, nil
}

//BehindArmorEffects describe what happens behind the plate after an impact
type BehindArmorEffects struct {
	Penetrated       bool
	SpallMassKg      float64
	FragmentVelocity float64 //m/s
	DamageConeAngle  float64 //degrees
	LethalArea       float64 //m², rough figure for reporting
}

//CalculateBehindArmorEffects estimates the after-penetration effects for a
//given overmatch (penetration minus effective thickness, mm RHA).
//A non-positive overmatch returns the zero value with Penetrated false.
func CalculateBehindArmorEffects(ammo Ammunition, armor Armor, overmatchMM float64) BehindArmorEffects {
	if overmatchMM <= 0 {
		return BehindArmorEffects{}
	}

	var effects BehindArmorEffects
	effects.Penetrated = true

	thickness := armor.Thickness()
	switch ammo.Category() {
	case CategoryKinetic:
		residualVelocity := math.Sqrt(2*overmatchMM/thickness) * 100
		effects.SpallMassKg = thickness * 0.01 * ammo.Caliber() * 0.001
		effects.FragmentVelocity = residualVelocity * 0.6
		effects.DamageConeAngle = math.Min(30.0, 15.0+overmatchMM/10.0)
	case CategoryChemical:
		effects.SpallMassKg = thickness * 0.005 * ammo.Caliber() * 0.001
		effects.FragmentVelocity = 800 + overmatchMM*2
		effects.DamageConeAngle = 45.0
	case CategorySpalling:
		effects.SpallMassKg = thickness * 0.02 * ammo.Caliber() * 0.001
		effects.FragmentVelocity = 300 + overmatchMM
		effects.DamageConeAngle = 60.0
	}

	effects.LethalArea = math.Pi * math.Pow(effects.DamageConeAngle/57.3, 2)
	return effects
}

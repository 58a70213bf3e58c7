package go_armorcalc

import (
	"fmt"
	"math"
)

//Ricochet outcomes
const RicochetOutcomePenetration byte = 1
const RicochetOutcomeRicochet byte = 2
const RicochetOutcomeShattering byte = 3
const RicochetOutcomeEmbedding byte = 4

//probability thresholds of the outcome classification
const cCertainPenetrationProbability float64 = 0.2
const cCertainRicochetProbability float64 = 0.7
const cLikelyRicochetProbability float64 = 0.45

const cShatteringVelocity float64 = 300.0 //m/s, below this brittle rounds shatter
const cEmbeddingVelocity float64 = 500.0  //m/s
const cEmbeddingAngleDeg float64 = 75.0

//per-category projectile response characteristics
type projectileCharacteristics struct {
	hardness           float64 //relative to RHA
	brittleness        float64 //0..1
	criticalAngleBase  float64 //degrees from the normal
	velocityDependence float64
}

func characteristicsFor(category byte) projectileCharacteristics {
	switch category {
	case CategoryKinetic:
		return projectileCharacteristics{hardness: 0.9, brittleness: 0.3, criticalAngleBase: 65.0, velocityDependence: 0.3}
	case CategoryChemical:
		return projectileCharacteristics{hardness: 0.4, brittleness: 0.6, criticalAngleBase: 45.0, velocityDependence: 0.1}
	case CategorySpalling:
		return projectileCharacteristics{hardness: 0.5, brittleness: 0.5, criticalAngleBase: 55.0, velocityDependence: 0.2}
	default:
		panic(fmt.Errorf("Unknown ammunition category %d", category))
	}
}

//RicochetParameters describe the geometry and surface state of the impact
//for the ricochet evaluation
type RicochetParameters struct {
	impactAngle      float64 //degrees from the plate normal
	armorSlope       float64 //additional constructive slope in degrees
	surfaceRoughness float64 //0 polished .. 1 very rough
}

//CreateRicochetParameters creates the impact geometry for a ricochet
//evaluation. The impact angle and slope are degrees from the plate normal;
//surfaceRoughness is a 0..1 figure where 0.5 is an ordinary plate finish.
func CreateRicochetParameters(impactAngleDeg, armorSlopeDeg, surfaceRoughness float64) (RicochetParameters, error) {
	if impactAngleDeg < 0 || impactAngleDeg > 90 {
		return RicochetParameters{}, fmt.Errorf("RicochetParameters: impact angle must be in 0..90 range")
	}
	if armorSlopeDeg < 0 || armorSlopeDeg > 90 {
		return RicochetParameters{}, fmt.Errorf("RicochetParameters: armor slope must be in 0..90 range")
	}
	if surfaceRoughness < 0 || surfaceRoughness > 1 {
		return RicochetParameters{}, fmt.Errorf("RicochetParameters: surface roughness must be in 0..1 range")
	}
	return RicochetParameters{
		impactAngle:      impactAngleDeg,
		armorSlope:       armorSlopeDeg,
		surfaceRoughness: surfaceRoughness,
	}, nil
}

//ImpactAngle returns the impact angle from the plate normal in degrees
func (p RicochetParameters) ImpactAngle() float64 {
	return p.impactAngle
}

//ArmorSlope returns the constructive armor slope in degrees
func (p RicochetParameters) ArmorSlope() float64 {
	return p.armorSlope
}

//SurfaceRoughness returns the 0..1 surface roughness figure
func (p RicochetParameters) SurfaceRoughness() float64 {
	return p.surfaceRoughness
}

//EffectiveAngle returns the combined impact angle the projectile meets,
//clamped to 0..90 degrees
func (p RicochetParameters) EffectiveAngle() float64 {
	return math.Max(0, math.Min(90, p.impactAngle+p.armorSlope))
}

//RicochetResult summarizes one ricochet evaluation
type RicochetResult struct {
	outcome             byte
	probability         float64 //probability of a ricochet, 0..1
	criticalAngle       float64 //degrees
	effectiveAngle      float64 //degrees
	deflectionAngle     float64 //degrees
	exitVelocity        float64 //m/s of the deflected projectile
	energyRetained      float64 //fraction of the impact energy kept
	penetrationModifier float64 //multiplier on the penetration capability
}

//Outcome returns the classified outcome (one of the RicochetOutcome* constants)
func (r RicochetResult) Outcome() byte {
	return r.outcome
}

//Probability returns the ricochet probability in 0..1
func (r RicochetResult) Probability() float64 {
	return r.probability
}

//CriticalAngle returns the critical ricochet angle in degrees
func (r RicochetResult) CriticalAngle() float64 {
	return r.criticalAngle
}

//EffectiveAngle returns the combined impact angle in degrees
func (r RicochetResult) EffectiveAngle() float64 {
	return r.effectiveAngle
}

//DeflectionAngle returns the deflection of the flight path in degrees
func (r RicochetResult) DeflectionAngle() float64 {
	return r.deflectionAngle
}

//ExitVelocity returns the post-impact velocity of the projectile in m/s
func (r RicochetResult) ExitVelocity() float64 {
	return r.exitVelocity
}

//EnergyRetained returns the fraction of impact energy the projectile keeps
func (r RicochetResult) EnergyRetained() float64 {
	return r.energyRetained
}

//PenetrationModifier returns the multiplier the ricochet risk applies to the
//penetration capability of the round
func (r RicochetResult) PenetrationModifier() float64 {
	return r.penetrationModifier
}

//OutcomeName returns the lower-case name of a ricochet outcome
func OutcomeName(outcome byte) string {
	switch outcome {
	case RicochetOutcomePenetration:
		return "penetration"
	case RicochetOutcomeRicochet:
		return "ricochet"
	case RicochetOutcomeShattering:
		return "shattering"
	case RicochetOutcomeEmbedding:
		return "embedding"
	default:
		return "unknown"
	}
}

//criticalAngle is the angle beyond which ricochet becomes the dominant
//outcome. Long rods buy extra critical angle from their L/D ratio, high
//velocity and a soft plate also push it out.
func criticalAngle(ammo Ammunition, armor Armor, impactVelocity float64) float64 {
	chars := characteristicsFor(ammo.Category())
	angle := chars.criticalAngleBase

	if ammo.Kind() == AmmoKineticLongRod {
		angle += (ammo.LengthToDiameterRatio() - 20.0) * 0.5
	}
	angle += (impactVelocity/1000.0 - 1.0) * 10.0

	hardnessRatio := chars.hardness / armor.Hardness()
	angle += (hardnessRatio - 1.0) * 5.0

	return math.Max(30.0, math.Min(80.0, angle))
}

func angleProbability(effectiveAngle, critical float64) float64 {
	if effectiveAngle <= critical {
		ratio := effectiveAngle / critical
		return 0.1 * (1.0 - ratio) * (1.0 - ratio)
	}
	excess := effectiveAngle - critical
	return 0.1 + 0.85*(1.0-math.Exp(-3.0*excess/(90.0-critical)))
}

func velocityFactor(ammo Ammunition, impactVelocity float64) float64 {
	chars := characteristicsFor(ammo.Category())
	ratio := impactVelocity / ammo.MuzzleVelocity()
	var factor float64
	if ratio > 1.0 {
		factor = 1.0 - chars.velocityDependence*(ratio-1.0)*0.5
	} else {
		factor = 1.0 + chars.velocityDependence*(1.0-ratio)*0.8
	}
	return math.Max(0.2, math.Min(2.0, factor))
}

func materialFactor(ammo Ammunition, armor Armor) float64 {
	chars := characteristicsFor(ammo.Category())
	hardnessRatio := chars.hardness / armor.Hardness()

	var factor float64
	switch {
	case hardnessRatio > 1.5:
		//projectile much harder than the plate, it bites in
		factor = 0.7
	case hardnessRatio < 0.7:
		factor = 1.4
	default:
		factor = 1.0 + (1.0-hardnessRatio)*0.3
	}

	switch armor.Kind() {
	case ArmorComposite:
		factor *= 0.9
	case ArmorReactive:
		factor *= 1.2
	case ArmorSpaced:
		factor *= 0.8
	}
	return factor
}

func surfaceFactor(roughness float64) float64 {
	factor := 1.0 + (0.5-roughness)*0.4
	return math.Max(0.6, math.Min(1.4, factor))
}

func classifyOutcome(ammo Ammunition, probability, effectiveAngle, impactVelocity float64) byte {
	chars := characteristicsFor(ammo.Category())
	switch {
	case probability < cCertainPenetrationProbability:
		return RicochetOutcomePenetration
	case probability > cCertainRicochetProbability:
		return RicochetOutcomeRicochet
	case impactVelocity < cShatteringVelocity && chars.brittleness > 0.7:
		return RicochetOutcomeShattering
	case effectiveAngle > cEmbeddingAngleDeg && impactVelocity < cEmbeddingVelocity:
		return RicochetOutcomeEmbedding
	case probability > cLikelyRicochetProbability:
		return RicochetOutcomeRicochet
	default:
		return RicochetOutcomePenetration
	}
}

func deflectionAngle(effectiveAngle, probability float64) float64 {
	if probability < 0.1 {
		return 0
	}
	deflection := effectiveAngle * 0.6 * (0.5 + probability*0.5)
	return math.Max(0, math.Min(80.0, deflection))
}

func exitVelocity(impactVelocity, effectiveAngle, probability float64) float64 {
	if probability < 0.1 {
		return impactVelocity * 0.1
	}
	angleRad := effectiveAngle * math.Pi / 180
	tangential := impactVelocity * math.Sin(angleRad) * (0.7 + probability*0.2)
	normal := impactVelocity * math.Cos(angleRad) * probability * 0.3
	return math.Max(50.0, math.Sqrt(tangential*tangential+normal*normal))
}

//EvaluateRicochet evaluates the ricochet behaviour of an impact.
//
//impactVelocity is the actual striking velocity in m/s; it may differ from
//the muzzle velocity when a trajectory was integrated first.
func EvaluateRicochet(ammo Ammunition, armor Armor, params RicochetParameters, impactVelocity float64) (RicochetResult, error) {
	if impactVelocity <= 0 {
		return RicochetResult{}, fmt.Errorf("Ricochet: impact velocity must be greater than zero")
	}

	effectiveAngle := params.EffectiveAngle()
	critical := criticalAngle(ammo, armor, impactVelocity)

	probability := angleProbability(effectiveAngle, critical)
	probability *= velocityFactor(ammo, impactVelocity)
	probability *= materialFactor(ammo, armor)
	probability *= surfaceFactor(params.SurfaceRoughness())
	probability = math.Max(0, math.Min(1, probability))

	exit := exitVelocity(impactVelocity, effectiveAngle, probability)
	retained := (exit / impactVelocity) * (exit / impactVelocity)

	return RicochetResult{
		outcome:             classifyOutcome(ammo, probability, effectiveAngle, impactVelocity),
		probability:         probability,
		criticalAngle:       critical,
		effectiveAngle:      effectiveAngle,
		deflectionAngle:     deflectionAngle(effectiveAngle, probability),
		exitVelocity:        exit,
		energyRetained:      retained,
		penetrationModifier: math.Max(0, math.Min(1, 1.0-1.2*probability)),
	}, nil
}

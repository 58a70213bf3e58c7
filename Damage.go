package go_armorcalc

import (
	"fmt"
	"math"
)

//Damage kinds recorded by the accumulator
const DamageKineticImpact byte = 1
const DamageChemicalBurn byte = 2
const DamageSpallCracking byte = 3

//Armor status labels derived from the integrity percentage
const StatusExcellent byte = 1
const StatusGood byte = 2
const StatusDegraded byte = 3
const StatusHeavilyDamaged byte = 4
const StatusCriticalFailure byte = 5

//integrity thresholds for the status buckets
const cStatusExcellentAbove float64 = 80.0
const cStatusGoodAbove float64 = 60.0
const cStatusDegradedAbove float64 = 40.0
const cStatusHeavilyDamagedAbove float64 = 20.0

//fatigue integrity penalty per cycle over the material limit
const cFatiguePenaltyPerCycle float64 = 0.005

//critical failure conditions: when any of them is met the hardness halves
const cCriticalIntegrityPercent float64 = 20.0
const cCriticalThicknessFraction float64 = 0.3
const cCriticalCrackDensity float64 = 50.0

//MaterialDamageProperties holds the calibrated damage-response coefficients
//of an armor material. The values are tuning data, not physics law: the
//defaults below may be overridden at accumulator construction (the CLI loads
//overrides from configuration).
type MaterialDamageProperties struct {
	HardnessDegradationRate float64 //hardness loss per unit of energy ratio
	SpallResistance         float64 //1.0 = RHA baseline
	ThermalResistance       float64 //1.0 = RHA baseline
	FatigueLimit            int     //impact cycles before fatigue penalties
}

//DefaultMaterialDamageProperties returns the calibrated damage coefficients
//for the given armor kind
func DefaultMaterialDamageProperties(armorKind byte) MaterialDamageProperties {
	switch armorKind {
	case ArmorComposite:
		return MaterialDamageProperties{
			HardnessDegradationRate: 0.01,
			SpallResistance:         1.5,
			ThermalResistance:       1.2,
			FatigueLimit:            100,
		}
	case ArmorReactive:
		return MaterialDamageProperties{
			HardnessDegradationRate: 0.05,
			SpallResistance:         0.8,
			ThermalResistance:       0.9,
			FatigueLimit:            20,
		}
	case ArmorSpaced:
		return MaterialDamageProperties{
			HardnessDegradationRate: 0.015,
			SpallResistance:         1.1,
			ThermalResistance:       1.0,
			FatigueLimit:            75,
		}
	default: //homogeneous steel is the baseline
		return MaterialDamageProperties{
			HardnessDegradationRate: 0.02,
			SpallResistance:         1.0,
			ThermalResistance:       1.0,
			FatigueLimit:            50,
		}
	}
}

//DamageEvent records a single impact applied to an armor instance.
//The record is append-only and owned by the accumulator of the struck armor.
type DamageEvent struct {
	X                    float64 //mm, impact location
	Y                    float64 //mm, impact location
	Kind                 byte    //one of the Damage* constants
	EnergyJoules         float64
	PenetrationAttempted float64 //mm RHA equivalent
	Penetrated           bool
	Timestamp            float64 //seconds from the first impact
	AffectedRadius       float64 //mm
}

//ArmorCondition is the derived, mutable aggregate state of an armor plate.
//
//Every field is clamped to its documented range after each update:
//IntegrityPercent in [0,100], HardnessFactor in [0.1,1.0],
//ThicknessRemaining in [0, initial thickness].
type ArmorCondition struct {
	IntegrityPercent   float64
	HardnessFactor     float64
	ThicknessRemaining float64 //mm
	CrackDensity       float64 //cracks per square cm
	SpallDamage        float64
	ThermalDamage      float64
	FatigueCycles      int
}

//DamageSummary reports the accumulated damage of an armor instance
type DamageSummary struct {
	TotalImpacts           int
	SuccessfulPenetrations int
	PenetrationRate        float64
	DamageByKind           map[byte]int
	DamageConcentration    float64 //hits per square cm of struck area
	Condition              ArmorCondition
	ThicknessLossPercent   float64
	Status                 byte //one of the Status* constants
}

//DamageAccumulator is the per-armor-instance ledger of cumulative impact
//damage. It is the only mutation path for armor geometry and hardness.
//
//An accumulator belongs to exactly one armor instance and is not safe for
//concurrent use: damage application must be serialized because the condition
//updates are not commutative.
type DamageAccumulator struct {
	initialThickness float64
	armorKind        byte
	properties       MaterialDamageProperties
	events           []DamageEvent
	condition        ArmorCondition
}

//CreateDamageAccumulator creates an accumulator for a pristine armor plate
//of the given kind using the default material coefficients
func CreateDamageAccumulator(initialThickness float64, armorKind byte) (*DamageAccumulator, error) {
	return CreateDamageAccumulatorWithProperties(initialThickness, armorKind, DefaultMaterialDamageProperties(armorKind))
}

//CreateDamageAccumulatorWithProperties creates an accumulator with explicit
//material coefficients, typically loaded from configuration
func CreateDamageAccumulatorWithProperties(initialThickness float64, armorKind byte, properties MaterialDamageProperties) (*DamageAccumulator, error) {
	if initialThickness <= 0 {
		return nil, fmt.Errorf("DamageAccumulator: initial thickness must be greater than zero")
	}
	if properties.FatigueLimit <= 0 {
		return nil, fmt.Errorf("DamageAccumulator: fatigue limit must be greater than zero")
	}
	return &DamageAccumulator{
		initialThickness: initialThickness,
		armorKind:        armorKind,
		properties:       properties,
		condition:        pristineCondition(initialThickness),
	}, nil
}

func pristineCondition(thickness float64) ArmorCondition {
	return ArmorCondition{
		IntegrityPercent:   100.0,
		HardnessFactor:     1.0,
		ThicknessRemaining: thickness,
	}
}

//Condition returns a copy of the current armor condition
func (d *DamageAccumulator) Condition() ArmorCondition {
	return d.condition
}

//Events returns the recorded damage events in application order
func (d *DamageAccumulator) Events() []DamageEvent {
	return d.events
}

//InitialThickness returns the pristine plate thickness in mm
func (d *DamageAccumulator) InitialThickness() float64 {
	return d.initialThickness
}

func damageKindForCategory(category byte) byte {
	switch category {
	case CategoryChemical:
		return DamageChemicalBurn
	case CategorySpalling:
		return DamageSpallCracking
	default:
		return DamageKineticImpact
	}
}

//ApplyDamage records an impact and updates the armor condition.
//
//x and y locate the impact on the plate in mm, attemptedPenetration is the
//round's penetration capability in mm RHA, energyJoules the impact energy and
//timestamp the time in seconds from the first impact.
func (d *DamageAccumulator) ApplyDamage(ammo Ammunition, x, y, attemptedPenetration, energyJoules float64, penetrated bool, timestamp float64) DamageEvent {
	affectedRadius := math.Max(ammo.Caliber()*2, math.Sqrt(math.Max(0, energyJoules)/1000))

	event := DamageEvent{
		X:                    x,
		Y:                    y,
		Kind:                 damageKindForCategory(ammo.Category()),
		EnergyJoules:         energyJoules,
		PenetrationAttempted: attemptedPenetration,
		Penetrated:           penetrated,
		Timestamp:            timestamp,
		AffectedRadius:       affectedRadius,
	}
	d.events = append(d.events, event)
	d.updateCondition(event)
	return event
}

func (d *DamageAccumulator) updateCondition(event DamageEvent) {
	damageRatio := event.PenetrationAttempted / d.initialThickness
	energyRatio := event.EnergyJoules / (d.initialThickness * 1000)

	switch event.Kind {
	case DamageKineticImpact:
		d.applyKineticDamage(damageRatio, energyRatio, event)
	case DamageChemicalBurn:
		d.applyChemicalDamage(damageRatio, energyRatio, event)
	case DamageSpallCracking:
		d.applySpallDamage(damageRatio, energyRatio, event)
	}

	d.condition.FatigueCycles++
	if d.condition.FatigueCycles > d.properties.FatigueLimit {
		overLimit := float64(d.condition.FatigueCycles - d.properties.FatigueLimit)
		d.condition.IntegrityPercent -= overLimit * cFatiguePenaltyPerCycle
	}

	d.applyCumulativeEffects()
	d.clampCondition()
}

func (d *DamageAccumulator) applyKineticDamage(damageRatio, energyRatio float64, event DamageEvent) {
	if event.Penetrated {
		//a through hole removes material and structure
		thicknessLoss := math.Min(event.PenetrationAttempted*0.1, d.initialThickness*0.2)
		d.condition.ThicknessRemaining -= thicknessLoss
		d.condition.IntegrityPercent -= damageRatio * 15.0
		d.condition.SpallDamage += damageRatio * d.properties.SpallResistance * 5.0
	} else {
		d.condition.IntegrityPercent -= damageRatio * 3.0
		d.condition.HardnessFactor -= energyRatio * d.properties.HardnessDegradationRate
		d.condition.CrackDensity += energyRatio * 2.0
	}
}

func (d *DamageAccumulator) applyChemicalDamage(damageRatio, energyRatio float64, event DamageEvent) {
	if event.Penetrated {
		//a jet burns a deep narrow channel
		burnDepth := event.PenetrationAttempted * 1.2
		thicknessLoss := math.Min(burnDepth*0.05, d.initialThickness*0.15)
		d.condition.ThicknessRemaining -= thicknessLoss
		d.condition.ThermalDamage += damageRatio * 10.0 / d.properties.ThermalResistance
		d.condition.SpallDamage += damageRatio * 2.0
		d.condition.IntegrityPercent -= damageRatio * 12.0
	} else {
		d.condition.IntegrityPercent -= damageRatio * 4.0
		d.condition.ThermalDamage += energyRatio * 3.0 / d.properties.ThermalResistance
	}
}

func (d *DamageAccumulator) applySpallDamage(damageRatio, energyRatio float64, event DamageEvent) {
	spallEffectiveness := 1.0 / d.properties.SpallResistance

	if event.Penetrated {
		d.condition.SpallDamage += damageRatio * spallEffectiveness * 20.0
		d.condition.CrackDensity += damageRatio * 10.0
		thicknessLoss := math.Min(event.PenetrationAttempted*0.05, d.initialThickness*0.1)
		d.condition.ThicknessRemaining -= thicknessLoss
		d.condition.IntegrityPercent -= damageRatio * 8.0
	} else {
		d.condition.SpallDamage += damageRatio * spallEffectiveness * 5.0
		d.condition.CrackDensity += energyRatio * 3.0
	}
}

func (d *DamageAccumulator) applyCumulativeEffects() {
	//spalling erodes thickness, heat erodes hardness, cracks erode structure
	d.condition.ThicknessRemaining = math.Max(0, d.condition.ThicknessRemaining-d.condition.SpallDamage*0.1)
	d.condition.HardnessFactor -= d.condition.ThermalDamage * 0.005
	d.condition.IntegrityPercent -= d.condition.CrackDensity * 0.5

	if d.condition.IntegrityPercent < cCriticalIntegrityPercent ||
		d.condition.ThicknessRemaining < d.initialThickness*cCriticalThicknessFraction ||
		d.condition.CrackDensity > cCriticalCrackDensity {
		d.condition.HardnessFactor *= 0.5
	}
}

func (d *DamageAccumulator) clampCondition() {
	d.condition.IntegrityPercent = math.Max(0.0, math.Min(100.0, d.condition.IntegrityPercent))
	d.condition.HardnessFactor = math.Max(0.1, math.Min(1.0, d.condition.HardnessFactor))
	d.condition.ThicknessRemaining = math.Max(0.0, d.condition.ThicknessRemaining)
}

//Effectiveness returns the current armor effectiveness against the given
//ammunition category as a multiplier in [0,1]. A pristine plate returns 1.0.
func (d *DamageAccumulator) Effectiveness(category byte) float64 {
	base := d.condition.IntegrityPercent / 100.0

	var effectiveness float64
	switch category {
	case CategoryKinetic:
		thicknessEffect := d.condition.ThicknessRemaining / d.initialThickness
		effectiveness = base * d.condition.HardnessFactor * thicknessEffect
	case CategoryChemical:
		thicknessEffect := d.condition.ThicknessRemaining / d.initialThickness
		thermalEffect := math.Max(0.1, 1.0-d.condition.ThermalDamage*0.01)
		effectiveness = base * thicknessEffect * thermalEffect
	case CategorySpalling:
		spallEffect := math.Max(0.1, 1.0-d.condition.SpallDamage*0.005)
		crackEffect := math.Max(0.1, 1.0-d.condition.CrackDensity*0.01)
		effectiveness = base * spallEffect * crackEffect
	default:
		effectiveness = base
	}

	return math.Max(0.0, math.Min(1.0, effectiveness))
}

//Summary reports the accumulated damage state
func (d *DamageAccumulator) Summary() DamageSummary {
	byKind := map[byte]int{
		DamageKineticImpact: 0,
		DamageChemicalBurn:  0,
		DamageSpallCracking: 0,
	}
	penetrations := 0
	for _, event := range d.events {
		byKind[event.Kind]++
		if event.Penetrated {
			penetrations++
		}
	}

	total := len(d.events)
	rate := 0.0
	if total > 0 {
		rate = float64(penetrations) / float64(total)
	}

	concentration := 0.0
	if total > 0 {
		distinct := make(map[[2]float64]bool, total)
		for _, event := range d.events {
			distinct[[2]float64{event.X, event.Y}] = true
		}
		struckArea := math.Max(100.0, float64(len(distinct))*10.0) //cm²
		concentration = float64(total) / struckArea
	}

	return DamageSummary{
		TotalImpacts:           total,
		SuccessfulPenetrations: penetrations,
		PenetrationRate:        rate,
		DamageByKind:           byKind,
		DamageConcentration:    concentration,
		Condition:              d.condition,
		ThicknessLossPercent:   (1 - d.condition.ThicknessRemaining/d.initialThickness) * 100,
		Status:                 d.status(),
	}
}

func (d *DamageAccumulator) status() byte {
	switch {
	case d.condition.IntegrityPercent > cStatusExcellentAbove:
		return StatusExcellent
	case d.condition.IntegrityPercent > cStatusGoodAbove:
		return StatusGood
	case d.condition.IntegrityPercent > cStatusDegradedAbove:
		return StatusDegraded
	case d.condition.IntegrityPercent > cStatusHeavilyDamagedAbove:
		return StatusHeavilyDamaged
	default:
		return StatusCriticalFailure
	}
}

//StatusName returns the label for a Status* constant
func StatusName(status byte) string {
	switch status {
	case StatusExcellent:
		return "EXCELLENT"
	case StatusGood:
		return "GOOD"
	case StatusDegraded:
		return "DEGRADED"
	case StatusHeavilyDamaged:
		return "HEAVILY_DAMAGED"
	case StatusCriticalFailure:
		return "CRITICAL_FAILURE"
	default:
		return "UNKNOWN"
	}
}

//Reset restores the armor to pristine condition and clears the event ledger
func (d *DamageAccumulator) Reset() {
	d.events = nil
	d.condition = pristineCondition(d.initialThickness)
}

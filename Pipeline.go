package go_armorcalc

//ImpactOutcome is the full report of one resolved impact.
//
//The pointer fields mirror the optional stages: a nil field means the stage
//was not requested. DegradedStages lists stages that were requested but
//failed; their contribution is skipped and the previous figures carry on.
type ImpactOutcome struct {
	Ammunition Ammunition
	Armor      Armor

	RangeM         float64
	ImpactAngleDeg float64

	ImpactVelocity     float64 //m/s at the plate
	BasePenetration    float64 //mm RHA before the optional stages
	FinalPenetration   float64 //mm RHA after every applied stage
	EffectiveThickness float64 //mm RHA the plate presents
	Penetrates         bool
	OvermatchMM        float64 //positive when the round wins

	Ballistic   *BallisticResult
	Ricochet    *RicochetResult
	Temperature *TemperatureEffects
	BehindArmor BehindArmorEffects

	DegradedStages []string
}

//ResolveImpact resolves a single impact of a round on a plate through every
//requested stage.
//
//The mandatory part is the baseline penetration against the effective armor
//thickness. atmosphere, temperature and ricochet select the optional stages;
//a nil stage is skipped entirely. propellant names the charge kind for the
//temperature stage and is ignored when temperature is nil.
//
//A failing optional stage never fails the resolution: its contribution is
//dropped and the stage is listed in DegradedStages of the outcome.
func ResolveImpact(ammo Ammunition, armor Armor, rangeM, impactAngleDeg float64, atmosphere *Atmosphere, propellant byte, temperature *TemperatureConditions, ricochet *RicochetParameters) (ImpactOutcome, error) {
	penetration, err := CalculatePenetration(ammo, rangeM, impactAngleDeg)
	if err != nil {
		return ImpactOutcome{}, err
	}

	outcome := ImpactOutcome{
		Ammunition:      ammo,
		Armor:           armor,
		RangeM:          rangeM,
		ImpactAngleDeg:  impactAngleDeg,
		ImpactVelocity:  ammo.VelocityAtRange(rangeM),
		BasePenetration: penetration,
	}

	if atmosphere != nil {
		calculator := CreateTrajectoryCalculator()
		shot, err := CreateShotParameters(0, rangeM, 0)
		if err != nil {
			outcome.DegradedStages = append(outcome.DegradedStages, "environment")
		} else {
			result := calculator.AtTarget(ammo, *atmosphere, shot)
			outcome.Ballistic = &result
			outcome.ImpactVelocity = result.VelocityAtTarget()
			penetration *= result.PenetrationModifier()
		}
	}

	if ricochet != nil {
		result, err := EvaluateRicochet(ammo, armor, *ricochet, outcome.ImpactVelocity)
		if err != nil {
			outcome.DegradedStages = append(outcome.DegradedStages, "ricochet")
		} else {
			outcome.Ricochet = &result
			penetration *= result.PenetrationModifier()
		}
	}

	if temperature != nil {
		effects, err := EvaluateTemperature(ammo, armor, propellant, *temperature)
		if err != nil {
			outcome.DegradedStages = append(outcome.DegradedStages, "temperature")
		} else {
			outcome.Temperature = &effects
			penetration *= effects.PenetrationModifier()
			outcome.ImpactVelocity *= effects.VelocityModifier()
		}
	}

	outcome.FinalPenetration = penetration
	outcome.EffectiveThickness = armor.EffectiveThickness(ammo.Category(), impactAngleDeg)
	outcome.Penetrates = penetration > outcome.EffectiveThickness
	outcome.OvermatchMM = penetration - outcome.EffectiveThickness
	outcome.BehindArmor = CalculateBehindArmorEffects(ammo, armor, outcome.OvermatchMM)

	return outcome, nil
}

//ApplyImpactDamage records the outcome of a resolved impact in the armor's
//damage accumulator at the given impact location. timestamp is seconds from
//the first impact on this plate.
//
//The accumulated state feeds back into the effective thickness of every
//subsequent resolution against the same plate.
func (a Armor) ApplyImpactDamage(outcome ImpactOutcome, x, y, timestamp float64) DamageEvent {
	energy := 0.5 * outcome.Ammunition.Mass() * outcome.ImpactVelocity * outcome.ImpactVelocity
	return a.damage.ApplyDamage(outcome.Ammunition, x, y, outcome.FinalPenetration, energy, outcome.Penetrates, timestamp)
}

package go_armorcalc

import (
	"math"

	"github.com/gehtsoft-usa/go_armorcalc/bmath/vector"
)

const cDefaultTimeStep float64 = 0.001 //s

//termination guards: the integration always stops on the first of these,
//so the loop is bounded for any input
const cMaximumFlightTime float64 = 120.0     //s of simulated flight
const cMinimumRelativeVelocity float64 = 1.0 //m/s against the air
const cMaximumDrop float64 = -100.0          //m below the launch line

//TrajectoryCalculator integrates a projectile through drag, gravity and wind
type TrajectoryCalculator struct {
	timeStep float64
}

//CreateTrajectoryCalculator creates a trajectory calculator with the default
//1 ms integration step
func CreateTrajectoryCalculator() TrajectoryCalculator {
	return TrajectoryCalculator{timeStep: cDefaultTimeStep}
}

//TimeStep returns the integration step in seconds
func (v TrajectoryCalculator) TimeStep() float64 {
	return v.timeStep
}

//SetTimeStep sets the integration step in seconds.
//
//Smaller steps are more precise but take longer to calculate; values outside
//(0, 0.01] are ignored and the current step is kept.
func (v *TrajectoryCalculator) SetTimeStep(step float64) {
	if step > 0 && step <= 0.01 {
		v.timeStep = step
	}
}

//integration state shared by Trajectory and AtTarget
type flightState struct {
	rangeVector    vector.Vector
	velocityVector vector.Vector
	time           float64
}

func launchState(ammo Ammunition, launchAngleDeg float64) flightState {
	angle := launchAngleDeg * math.Pi / 180
	return flightState{
		velocityVector: vector.Create(math.Cos(angle), math.Sin(angle), 0).MultiplyByConst(ammo.MuzzleVelocity()),
	}
}

func (v TrajectoryCalculator) point(ammo Ammunition, s flightState) TrajectoryPoint {
	velocity := s.velocityVector.Magnitude()
	return TrajectoryPoint{
		time:     s.time,
		distance: s.rangeVector.X,
		height:   s.rangeVector.Y,
		velocity: velocity,
		mach:     velocity / cSpeedOfSound,
		energy:   0.5 * ammo.Mass() * velocity * velocity,
	}
}

//advance performs one Euler step. It returns false when a termination guard
//fired and the state must not advance further.
func (v TrajectoryCalculator) advance(ammo Ammunition, atmosphere Atmosphere, drag dragFunction, area float64, wind vector.Vector, s *flightState) bool {
	if s.time > cMaximumFlightTime {
		return false
	}
	if s.rangeVector.Y < cMaximumDrop {
		return false
	}

	velocityAdjusted := s.velocityVector.Subtract(wind)
	relativeVelocity := velocityAdjusted.Magnitude()
	if relativeVelocity < cMinimumRelativeVelocity {
		return false
	}

	dragForce := 0.5 * atmosphere.AirDensity() * relativeVelocity * relativeVelocity * drag(relativeVelocity) * area
	dragAcceleration := velocityAdjusted.Normalize().MultiplyByConst(-dragForce / ammo.Mass())
	acceleration := dragAcceleration.Add(vector.Create(0, -cGravity, 0))

	s.velocityVector = s.velocityVector.Add(acceleration.MultiplyByConst(v.timeStep))
	s.rangeVector = s.rangeVector.Add(s.velocityVector.MultiplyByConst(v.timeStep))
	s.time += v.timeStep
	return true
}

//Trajectory integrates the full flight path and returns the sampled points.
//
//The first point is always the launch point. A zero or negative target range
//returns the launch point alone. The sequence ends at the target range or at
//the first termination guard, whichever comes first.
func (v TrajectoryCalculator) Trajectory(ammo Ammunition, atmosphere Atmosphere, shot ShotParameters) []TrajectoryPoint {
	state := launchState(ammo, shot.LaunchAngle())
	points := []TrajectoryPoint{v.point(ammo, state)}
	if shot.MaximumDistance() <= 0 {
		return points
	}

	drag := dragFunctionFactory(ammo.Category())
	area := math.Pi * math.Pow(ammo.ReferenceDiameter()/2000.0, 2) //mm of diameter to m² of cross section
	wind := atmosphere.windVector()

	nextSample := shot.Step()
	for state.rangeVector.X < shot.MaximumDistance() {
		if !v.advance(ammo, atmosphere, drag, area, wind, &state) {
			break
		}
		if state.rangeVector.X >= nextSample {
			points = append(points, v.point(ammo, state))
			nextSample += shot.Step()
		}
	}

	last := v.point(ammo, state)
	if len(points) == 0 || points[len(points)-1].time != last.time {
		points = append(points, last)
	}
	return points
}

//AtTarget integrates the flight to the target range and returns the state at
//the target together with the environmental penetration multiplier.
//
//A zero or negative range returns the launch state unchanged.
func (v TrajectoryCalculator) AtTarget(ammo Ammunition, atmosphere Atmosphere, shot ShotParameters) BallisticResult {
	state := launchState(ammo, shot.LaunchAngle())

	if shot.MaximumDistance() > 0 {
		drag := dragFunctionFactory(ammo.Category())
		area := math.Pi * math.Pow(ammo.ReferenceDiameter()/2000.0, 2)
		wind := atmosphere.windVector()

		for state.rangeVector.X < shot.MaximumDistance() {
			if !v.advance(ammo, atmosphere, drag, area, wind, &state) {
				break
			}
		}
	}

	velocity := state.velocityVector.Magnitude()
	effects := environmentalEffects(atmosphere)

	return BallisticResult{
		velocityAtTarget:    velocity,
		timeOfFlight:        state.time,
		energyAtTarget:      0.5 * ammo.Mass() * velocity * velocity,
		trajectoryAngle:     math.Atan2(state.velocityVector.Y, state.velocityVector.X) * 180 / math.Pi,
		penetrationModifier: environmentalPenetrationModifier(effects),
		effects:             effects,
	}
}

//environmental deviation from the standard atmosphere, expressed as the
//per-factor contributions the reporting layer displays
func environmentalEffects(atmosphere Atmosphere) EnvironmentalEffects {
	return EnvironmentalEffects{
		TemperatureEffect: (atmosphere.Temperature() - cStandardTemperatureC) / cStandardTemperatureC * 0.1,
		AltitudeEffect:    atmosphere.Altitude() / 1000.0 * 0.05,
		HumidityEffect:    (atmosphere.Humidity() - cStandardHumidityPercent) / cStandardHumidityPercent * 0.02,
		WindEffect:        atmosphere.WindSpeed() / 10.0 * 0.1,
		AirDensityRatio:   atmosphere.DensityRatio(),
	}
}

func environmentalPenetrationModifier(effects EnvironmentalEffects) float64 {
	return 1.0 + effects.TemperatureEffect - effects.AltitudeEffect + effects.HumidityEffect
}

package go_armorcalc

//TrajectoryPoint is one sampled state of the projectile in flight
type TrajectoryPoint struct {
	time     float64 //s since launch
	distance float64 //m towards the target
	height   float64 //m over the launch line
	velocity float64 //m/s
	mach     float64 //velocity relative to the speed of sound
	energy   float64 //J
}

//Time returns the flight time at the point in seconds
func (p TrajectoryPoint) Time() float64 {
	return p.time
}

//Distance returns the distance towards the target in meters
func (p TrajectoryPoint) Distance() float64 {
	return p.distance
}

//Height returns the height over the launch line in meters
func (p TrajectoryPoint) Height() float64 {
	return p.height
}

//Velocity returns the projectile velocity in m/s
func (p TrajectoryPoint) Velocity() float64 {
	return p.velocity
}

//MachVelocity returns the velocity expressed in Mach
func (p TrajectoryPoint) MachVelocity() float64 {
	return p.mach
}

//Energy returns the kinetic energy in joules
func (p TrajectoryPoint) Energy() float64 {
	return p.energy
}

//EnvironmentalEffects summarizes how the conditions deviate from the
//standard atmosphere for reporting purposes
type EnvironmentalEffects struct {
	TemperatureEffect float64
	AltitudeEffect    float64
	HumidityEffect    float64
	WindEffect        float64
	AirDensityRatio   float64
}

//BallisticResult is the outcome of a trajectory integration at the target
type BallisticResult struct {
	velocityAtTarget    float64 //m/s
	timeOfFlight        float64 //s
	energyAtTarget      float64 //J
	trajectoryAngle     float64 //degrees, negative when descending
	penetrationModifier float64 //environmental multiplier on penetration
	effects             EnvironmentalEffects
}

//VelocityAtTarget returns the remaining velocity at the target in m/s
func (r BallisticResult) VelocityAtTarget() float64 {
	return r.velocityAtTarget
}

//TimeOfFlight returns the flight time to the target in seconds
func (r BallisticResult) TimeOfFlight() float64 {
	return r.timeOfFlight
}

//EnergyAtTarget returns the remaining kinetic energy in joules
func (r BallisticResult) EnergyAtTarget() float64 {
	return r.energyAtTarget
}

//TrajectoryAngle returns the flight path angle at the target in degrees
func (r BallisticResult) TrajectoryAngle() float64 {
	return r.trajectoryAngle
}

//PenetrationModifier returns the environmental penetration multiplier
//derived from the deviation from standard conditions
func (r BallisticResult) PenetrationModifier() float64 {
	return r.penetrationModifier
}

//Effects returns the environmental effects summary
func (r BallisticResult) Effects() EnvironmentalEffects {
	return r.effects
}

package go_armorcalc

import (
	"fmt"
)

const cDefaultSampleStep float64 = 100.0 //m between recorded trajectory points

//ShotParameters describe one shot to be integrated
type ShotParameters struct {
	launchAngle     float64 //degrees over the horizon
	maximumDistance float64 //m, distance to the target
	step            float64 //m, sampling step for the recorded points
}

//CreateShotParameters creates the parameter set for a trajectory calculation.
//
//launchAngleDeg is the barrel elevation over the horizon, maximumDistance the
//range to the target in meters and step the distance between recorded
//trajectory points (zero selects the default of 100 m).
func CreateShotParameters(launchAngleDeg, maximumDistance, step float64) (ShotParameters, error) {
	if launchAngleDeg < -90 || launchAngleDeg > 90 {
		return ShotParameters{}, fmt.Errorf("ShotParameters: launch angle must be in -90..90 range")
	}
	if maximumDistance < 0 {
		return ShotParameters{}, fmt.Errorf("ShotParameters: maximum distance must not be negative")
	}
	if step < 0 {
		return ShotParameters{}, fmt.Errorf("ShotParameters: step must not be negative")
	}
	if step == 0 {
		step = cDefaultSampleStep
	}
	return ShotParameters{
		launchAngle:     launchAngleDeg,
		maximumDistance: maximumDistance,
		step:            step,
	}, nil
}

//LaunchAngle returns the barrel elevation in degrees
func (s ShotParameters) LaunchAngle() float64 {
	return s.launchAngle
}

//MaximumDistance returns the range to the target in meters
func (s ShotParameters) MaximumDistance() float64 {
	return s.maximumDistance
}

//Step returns the sampling step in meters
func (s ShotParameters) Step() float64 {
	return s.step
}

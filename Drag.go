package go_armorcalc

import (
	"fmt"
)

//speed of sound used to derive the Mach number, m/s at 20°C
const cSpeedOfSound float64 = 343.0

type dragFunction func(velocity float64) float64

//dragFunctionFactory returns the drag coefficient function for an ammunition
//category.
//
//The coefficient is piecewise by Mach regime: constant in the subsonic range,
//a linear ramp through the transonic range, a decaying wave-drag term in the
//supersonic range and a plateau in the hypersonic range. Streamlined kinetic
//penetrators carry a lower base coefficient than blunt chemical warheads.
func dragFunctionFactory(category byte) dragFunction {
	var base float64
	switch category {
	case CategoryKinetic:
		base = 0.15
	case CategoryChemical:
		base = 0.25
	case CategorySpalling:
		base = 0.30
	default:
		panic(fmt.Errorf("Unknown ammunition category %d", category))
	}

	return func(velocity float64) float64 {
		mach := velocity / cSpeedOfSound
		switch {
		case mach < 0.8:
			return base
		case mach < 1.2:
			return base * (1.0 + 2.0*(mach-0.8))
		case mach < 3.0:
			return base * (1.8 - 0.2*(mach-1.2))
		default:
			return base * 1.4
		}
	}
}

//DragCoefficient returns the drag coefficient for the given velocity and
//ammunition category
func DragCoefficient(velocity float64, category byte) (float64, error) {
	switch category {
	case CategoryKinetic, CategoryChemical, CategorySpalling:
		return dragFunctionFactory(category)(velocity), nil
	default:
		return 0, fmt.Errorf("Drag: unknown ammunition category %d", category)
	}
}

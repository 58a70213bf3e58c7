package go_armorcalc

import (
	"testing"
)

func TestTrajectoryZeroRange(t *testing.T) {
	ammo := mustLongRod(t)
	calculator := CreateTrajectoryCalculator()
	shot, err := CreateShotParameters(0, 0, 0)
	if err != nil {
		t.Fatalf("shot creation failed: %v", err)
	}

	points := calculator.Trajectory(ammo, CreateDefaultAtmosphere(), shot)
	if len(points) != 1 {
		t.Fatalf("expected the launch point alone, got %d points", len(points))
	}
	assertEqual(t, points[0].Distance(), 0, 1e-9, "launch distance")
	assertEqual(t, points[0].Velocity(), 1680, 1e-9, "launch velocity")
	assertEqual(t, points[0].Time(), 0, 1e-9, "launch time")
}

func TestTrajectoryToTarget(t *testing.T) {
	ammo := mustLongRod(t)
	calculator := CreateTrajectoryCalculator()
	shot, err := CreateShotParameters(0, 2000, 500)
	if err != nil {
		t.Fatalf("shot creation failed: %v", err)
	}

	points := calculator.Trajectory(ammo, CreateDefaultAtmosphere(), shot)
	if len(points) < 3 {
		t.Fatalf("too few trajectory points, %d", len(points))
	}
	for i := 1; i < len(points); i++ {
		if points[i].Distance() <= points[i-1].Distance() {
			t.Error("trajectory distances not increasing")
		}
		if points[i].Velocity() >= points[i-1].Velocity() {
			t.Error("drag did not slow the projectile")
		}
	}

	last := points[len(points)-1]
	if last.Distance() < 2000 {
		t.Errorf("flight ended short of the target, %f m", last.Distance())
	}
	if last.Velocity() < 1400 || last.Velocity() > 1680 {
		t.Errorf("implausible terminal velocity %f m/s", last.Velocity())
	}
}

func TestAtTargetStandardConditions(t *testing.T) {
	ammo := mustLongRod(t)
	calculator := CreateTrajectoryCalculator()
	shot, err := CreateShotParameters(0, 2000, 0)
	if err != nil {
		t.Fatalf("shot creation failed: %v", err)
	}

	result := calculator.AtTarget(ammo, CreateDefaultAtmosphere(), shot)

	if result.VelocityAtTarget() >= 1680 || result.VelocityAtTarget() < 1400 {
		t.Errorf("implausible velocity at target %f m/s", result.VelocityAtTarget())
	}
	if result.TimeOfFlight() < 1.1 || result.TimeOfFlight() > 1.5 {
		t.Errorf("implausible time of flight %f s", result.TimeOfFlight())
	}
	expectedEnergy := 0.5 * ammo.Mass() * result.VelocityAtTarget() * result.VelocityAtTarget()
	assertEqual(t, result.EnergyAtTarget(), expectedEnergy, 1, "energy consistency")
	if result.TrajectoryAngle() >= 0 {
		t.Error("flat shot not descending at the target")
	}

	//the standard atmosphere is the reference, so no penetration adjustment
	assertEqual(t, result.PenetrationModifier(), 1.0, 1e-9, "standard conditions modifier")
}

func TestHeadwindSlowsTheRound(t *testing.T) {
	ammo := mustLongRod(t)
	calculator := CreateTrajectoryCalculator()
	shot, err := CreateShotParameters(0, 2000, 0)
	if err != nil {
		t.Fatalf("shot creation failed: %v", err)
	}

	calm := calculator.AtTarget(ammo, CreateDefaultAtmosphere(), shot)

	windy, err := CreateAtmosphere(15, 101.325, 50, 0, 15, 0)
	if err != nil {
		t.Fatalf("atmosphere creation failed: %v", err)
	}
	headwind := calculator.AtTarget(ammo, windy, shot)

	if headwind.VelocityAtTarget() >= calm.VelocityAtTarget() {
		t.Error("headwind did not slow the round")
	}
}

func TestTrajectoryTermination(t *testing.T) {
	//a slow blunt round to an absurd range must stop on the drop guard,
	//far short of the requested distance
	hesh, err := CreateSpallingCharge("L31", 120, 17.5, 4.0, 0)
	if err != nil {
		t.Fatalf("spalling charge creation failed: %v", err)
	}
	calculator := CreateTrajectoryCalculator()
	shot, err := CreateShotParameters(0, 1e6, 1000)
	if err != nil {
		t.Fatalf("shot creation failed: %v", err)
	}

	points := calculator.Trajectory(hesh, CreateDefaultAtmosphere(), shot)
	last := points[len(points)-1]
	if last.Distance() >= 1e6 {
		t.Errorf("flight did not terminate, %f m", last.Distance())
	}
	if last.Time() > 120.01 {
		t.Errorf("flight exceeded the time cap, %f s", last.Time())
	}
}

func TestEnvironmentalModifier(t *testing.T) {
	//hot thin air helps, altitude hurts more than heat helps here
	hot, err := CreateAtmosphere(45, 101.325, 50, 2000, 0, 0)
	if err != nil {
		t.Fatalf("atmosphere creation failed: %v", err)
	}
	effects := environmentalEffects(hot)
	assertEqual(t, effects.TemperatureEffect, 0.2, 1e-9, "temperature effect")
	assertEqual(t, effects.AltitudeEffect, 0.1, 1e-9, "altitude effect")
	assertEqual(t, environmentalPenetrationModifier(effects), 1.1, 1e-9, "combined modifier")

	if hot.DensityRatio() >= 1.0 {
		t.Error("hot high air not thinner than standard")
	}
}

func TestTimeStepBounds(t *testing.T) {
	calculator := CreateTrajectoryCalculator()
	assertEqual(t, calculator.TimeStep(), 0.001, 1e-12, "default step")

	calculator.SetTimeStep(0.005)
	assertEqual(t, calculator.TimeStep(), 0.005, 1e-12, "accepted step")

	calculator.SetTimeStep(0)
	assertEqual(t, calculator.TimeStep(), 0.005, 1e-12, "zero step ignored")
	calculator.SetTimeStep(1)
	assertEqual(t, calculator.TimeStep(), 0.005, 1e-12, "oversized step ignored")
}

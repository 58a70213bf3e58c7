package go_armorcalc

import (
	"testing"
)

func TestRicochetFlatImpact(t *testing.T) {
	ammo := mustLongRod(t)
	armor, err := CreateRHA(200, 0.8)
	if err != nil {
		t.Fatalf("armor creation failed: %v", err)
	}
	params, err := CreateRicochetParameters(0, 0, 0.5)
	if err != nil {
		t.Fatalf("parameter creation failed: %v", err)
	}

	result, err := EvaluateRicochet(ammo, armor, params, 1500)
	if err != nil {
		t.Fatalf("evaluation failed: %v", err)
	}

	assertEqual(t, result.CriticalAngle(), 73.58, 0.05, "critical angle")
	assertEqual(t, result.Probability(), 0.0987, 0.001, "flat impact probability")
	if result.Outcome() != RicochetOutcomePenetration {
		t.Errorf("flat impact classified as %s", OutcomeName(result.Outcome()))
	}
	assertEqual(t, result.DeflectionAngle(), 0, 1e-9, "no deflection on a committed impact")
	assertEqual(t, result.ExitVelocity(), 150, 0.01, "residual velocity")
	assertEqual(t, result.PenetrationModifier(), 0.8815, 0.001, "penetration modifier")
}

func TestRicochetSteepImpact(t *testing.T) {
	ammo := mustLongRod(t)
	armor, err := CreateRHA(200, 0.8)
	if err != nil {
		t.Fatalf("armor creation failed: %v", err)
	}
	params, err := CreateRicochetParameters(85, 0, 0.5)
	if err != nil {
		t.Fatalf("parameter creation failed: %v", err)
	}

	result, err := EvaluateRicochet(ammo, armor, params, 1500)
	if err != nil {
		t.Fatalf("evaluation failed: %v", err)
	}

	assertEqual(t, result.Probability(), 0.8337, 0.005, "steep impact probability")
	if result.Outcome() != RicochetOutcomeRicochet {
		t.Errorf("grazing impact classified as %s", OutcomeName(result.Outcome()))
	}
	if result.DeflectionAngle() <= 0 {
		t.Error("ricochet produced no deflection")
	}
	if result.ExitVelocity() <= 150 {
		t.Errorf("ricochet lost almost all velocity, %f m/s", result.ExitVelocity())
	}
	if result.EnergyRetained() <= 0 || result.EnergyRetained() > 1 {
		t.Errorf("energy retained out of range, %f", result.EnergyRetained())
	}
}

func TestRicochetSlopeAddsToImpactAngle(t *testing.T) {
	ammo := mustLongRod(t)
	armor, err := CreateRHA(200, 1.0)
	if err != nil {
		t.Fatalf("armor creation failed: %v", err)
	}

	flat, _ := CreateRicochetParameters(30, 0, 0.5)
	sloped, _ := CreateRicochetParameters(30, 50, 0.5)

	flatResult, err := EvaluateRicochet(ammo, armor, flat, 1500)
	if err != nil {
		t.Fatalf("evaluation failed: %v", err)
	}
	slopedResult, err := EvaluateRicochet(ammo, armor, sloped, 1500)
	if err != nil {
		t.Fatalf("evaluation failed: %v", err)
	}

	assertEqual(t, slopedResult.EffectiveAngle(), 80, 1e-9, "combined angle")
	if slopedResult.Probability() <= flatResult.Probability() {
		t.Error("constructive slope did not raise the ricochet probability")
	}
}

func TestRicochetEmbedding(t *testing.T) {
	//a slow full caliber shot on a hard rough plate at a steep angle digs in
	ammo, err := CreateKineticSolidShot("AP", 100, 15, 900)
	if err != nil {
		t.Fatalf("solid shot creation failed: %v", err)
	}
	armor, err := CreateRHA(200, 1.2)
	if err != nil {
		t.Fatalf("armor creation failed: %v", err)
	}
	params, err := CreateRicochetParameters(76, 0, 1.0)
	if err != nil {
		t.Fatalf("parameter creation failed: %v", err)
	}

	result, err := EvaluateRicochet(ammo, armor, params, 450)
	if err != nil {
		t.Fatalf("evaluation failed: %v", err)
	}

	assertEqual(t, result.Probability(), 0.5715, 0.005, "embedding probability")
	if result.Outcome() != RicochetOutcomeEmbedding {
		t.Errorf("expected embedding, got %s", OutcomeName(result.Outcome()))
	}
}

func TestRicochetValidation(t *testing.T) {
	if _, err := CreateRicochetParameters(100, 0, 0.5); err == nil {
		t.Error("out of range impact angle accepted")
	}
	if _, err := CreateRicochetParameters(0, 0, 2); err == nil {
		t.Error("out of range roughness accepted")
	}

	ammo := mustLongRod(t)
	armor, err := CreateRHA(200, 1.0)
	if err != nil {
		t.Fatalf("armor creation failed: %v", err)
	}
	params, _ := CreateRicochetParameters(0, 0, 0.5)
	if _, err := EvaluateRicochet(ammo, armor, params, 0); err == nil {
		t.Error("zero impact velocity accepted")
	}
}

package go_armorcalc

import (
	"math"
	"testing"
)

func assertEqual(t *testing.T, actual, expected, accuracy float64, name string) {
	t.Helper()
	if math.Abs(actual-expected) > accuracy {
		t.Errorf("%s failed, expected %f, got %f", name, expected, actual)
	}
}

func mustLongRod(t *testing.T) Ammunition {
	t.Helper()
	ammo, err := CreateKineticLongRod("M829A4", 120, 22, 4.6, 1680, 570)
	if err != nil {
		t.Fatalf("long rod creation failed: %v", err)
	}
	return ammo
}

func TestLongRodCreation(t *testing.T) {
	ammo := mustLongRod(t)

	if ammo.Kind() != AmmoKineticLongRod {
		t.Errorf("wrong kind %d", ammo.Kind())
	}
	if ammo.Category() != CategoryKinetic {
		t.Errorf("wrong category %d", ammo.Category())
	}
	assertEqual(t, ammo.Caliber(), 120, 1e-9, "caliber")
	assertEqual(t, ammo.LengthToDiameterRatio(), 25.909, 0.001, "L/D ratio")
	assertEqual(t, ammo.KineticEnergy(), 6491520, 1, "muzzle energy")
}

func TestAmmunitionValidation(t *testing.T) {
	_, err := CreateKineticLongRod("bad", -120, 22, 4.6, 1680, 570)
	if err == nil {
		t.Error("negative caliber accepted")
	}
	_, err = CreateKineticSubcaliber("bad", 57, 80, 1.5, 1200)
	if err == nil {
		t.Error("core diameter over caliber accepted")
	}
	_, err = CreateShapedCharge("bad", 120, 10, 12, 0)
	if err == nil {
		t.Error("explosive mass over warhead mass accepted")
	}
	_, err = CreateSpallingCharge("bad", 120, 15, 20, 700)
	if err == nil {
		t.Error("explosive mass over shell mass accepted")
	}
}

func TestFixedVelocityKinds(t *testing.T) {
	heat, err := CreateShapedCharge("M830A1", 120, 13.5, 2.4, 0)
	if err != nil {
		t.Fatalf("shaped charge creation failed: %v", err)
	}
	assertEqual(t, heat.MuzzleVelocity(), 800, 1e-9, "shaped charge velocity")

	hesh, err := CreateSpallingCharge("L31", 120, 17.5, 4.0, 0)
	if err != nil {
		t.Fatalf("spalling charge creation failed: %v", err)
	}
	assertEqual(t, hesh.MuzzleVelocity(), 700, 1e-9, "spalling default velocity")
}

func TestVelocityAtRange(t *testing.T) {
	ammo := mustLongRod(t)

	assertEqual(t, ammo.VelocityAtRange(0), 1680, 1e-9, "muzzle")
	assertEqual(t, ammo.VelocityAtRange(2000), 1344, 1e-9, "2000m")

	//the decay model floors at 10% of the muzzle velocity
	assertEqual(t, ammo.VelocityAtRange(100000), 168, 1e-9, "decay floor")
}

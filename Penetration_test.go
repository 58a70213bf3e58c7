package go_armorcalc

import (
	"testing"
)

func TestLongRodPenetration(t *testing.T) {
	ammo := mustLongRod(t)

	p, err := CalculatePenetration(ammo, 0, 0)
	if err != nil {
		t.Fatalf("penetration failed: %v", err)
	}
	assertEqual(t, p, 1406.9, 1.0, "point blank, flat")

	p, err = CalculatePenetration(ammo, 2000, 60)
	if err != nil {
		t.Fatalf("penetration failed: %v", err)
	}
	assertEqual(t, p, 1446.1, 1.5, "2000m at 60 degrees")
}

func TestLongRodObliquityGain(t *testing.T) {
	//long rods gain from obliquity through the path length term, so the
	//figure grows with the angle while velocity decay shrinks it with range
	ammo := mustLongRod(t)

	flat, _ := CalculatePenetration(ammo, 1000, 0)
	sloped, _ := CalculatePenetration(ammo, 1000, 60)
	if sloped <= flat {
		t.Errorf("expected obliquity gain, flat %f sloped %f", flat, sloped)
	}

	near, _ := CalculatePenetration(ammo, 500, 0)
	far, _ := CalculatePenetration(ammo, 3000, 0)
	if far >= near {
		t.Errorf("expected range decay, near %f far %f", near, far)
	}
}

func TestSolidShotPenetration(t *testing.T) {
	ammo, err := CreateKineticSolidShot("AP", 100, 15, 900)
	if err != nil {
		t.Fatalf("solid shot creation failed: %v", err)
	}

	flat, _ := CalculatePenetration(ammo, 0, 0)
	sloped, _ := CalculatePenetration(ammo, 0, 60)
	assertEqual(t, sloped, flat*0.5, 0.01, "cosine angle loss")

	far, _ := CalculatePenetration(ammo, 2000, 0)
	if far >= flat {
		t.Errorf("expected range decay, flat %f far %f", flat, far)
	}
}

func TestSubcaliberPenetration(t *testing.T) {
	full, err := CreateKineticSolidShot("AP", 57, 2.8, 1000)
	if err != nil {
		t.Fatalf("solid shot creation failed: %v", err)
	}
	core, err := CreateKineticSubcaliber("APCR", 57, 28, 1.4, 1200)
	if err != nil {
		t.Fatalf("subcaliber creation failed: %v", err)
	}

	fullP, _ := CalculatePenetration(full, 500, 0)
	coreP, _ := CalculatePenetration(core, 500, 0)
	if coreP <= fullP {
		t.Errorf("expected the hard core to outperform full caliber shot, %f vs %f", coreP, fullP)
	}
}

func TestShapedChargePenetration(t *testing.T) {
	contact, err := CreateShapedCharge("M830A1", 120, 13.5, 2.4, 0)
	if err != nil {
		t.Fatalf("shaped charge creation failed: %v", err)
	}

	p, err := CalculatePenetration(contact, 0, 0)
	if err != nil {
		t.Fatalf("penetration failed: %v", err)
	}
	assertEqual(t, p, 1592.0, 2.0, "contact detonation")

	//the jet does not care about the flight velocity, only the charge
	far, _ := CalculatePenetration(contact, 3000, 0)
	assertEqual(t, far, p, 1e-9, "range independence")

	standoff, err := CreateShapedCharge("M830A1", 120, 13.5, 2.4, 200)
	if err != nil {
		t.Fatalf("shaped charge creation failed: %v", err)
	}
	better, _ := CalculatePenetration(standoff, 0, 0)
	if better <= p {
		t.Errorf("expected standoff gain, contact %f standoff %f", p, better)
	}
}

func TestSpallingPenetration(t *testing.T) {
	hesh, err := CreateSpallingCharge("L31", 120, 17.5, 4.0, 0)
	if err != nil {
		t.Fatalf("spalling charge creation failed: %v", err)
	}

	p, err := CalculatePenetration(hesh, 0, 0)
	if err != nil {
		t.Fatalf("penetration failed: %v", err)
	}
	assertEqual(t, p, 933.33, 0.5, "flat squash head effect")
}

func TestPenetrationValidation(t *testing.T) {
	ammo := mustLongRod(t)

	if _, err := CalculatePenetration(ammo, -1, 0); err == nil {
		t.Error("negative range accepted")
	}
	if _, err := CalculatePenetration(ammo, 0, 90); err == nil {
		t.Error("grazing angle accepted")
	}
}

func TestPenetrationEnhancement(t *testing.T) {
	p, err := PenetrationEnhancement(1000, 1.1, 0, CategoryKinetic)
	if err != nil {
		t.Fatalf("enhancement failed: %v", err)
	}
	assertEqual(t, p, 1146.0, 0.5, "kinetic velocity gain")

	p, err = PenetrationEnhancement(1000, 1.1, 0, CategoryChemical)
	if err != nil {
		t.Fatalf("enhancement failed: %v", err)
	}
	assertEqual(t, p, 1009.6, 0.5, "chemical velocity insensitivity")

	if _, err = PenetrationEnhancement(1000, 1.0, 0, 99); err == nil {
		t.Error("unknown category accepted")
	}
}

func TestBehindArmorEffects(t *testing.T) {
	ammo := mustLongRod(t)
	armor, err := CreateRHA(200, 1.0)
	if err != nil {
		t.Fatalf("armor creation failed: %v", err)
	}

	stopped := CalculateBehindArmorEffects(ammo, armor, -50)
	if stopped.Penetrated || stopped.SpallMassKg != 0 {
		t.Error("stopped round produced behind-armor effects")
	}

	effects := CalculateBehindArmorEffects(ammo, armor, 100)
	if !effects.Penetrated {
		t.Fatal("overmatched plate reported no penetration")
	}
	assertEqual(t, effects.SpallMassKg, 0.24, 1e-6, "spall mass")
	assertEqual(t, effects.FragmentVelocity, 60, 0.01, "fragment velocity")
	assertEqual(t, effects.DamageConeAngle, 25, 1e-9, "cone angle")
}

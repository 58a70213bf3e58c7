package go_armorcalc

import (
	"testing"
)

func TestDragCoefficientRegimes(t *testing.T) {
	data := []struct {
		name     string
		velocity float64
		expected float64
	}{
		{"subsonic", 171.5, 0.15},
		{"transonic entry", 274.4, 0.15},
		{"transonic ramp", 343.0, 0.21},
		{"supersonic entry", 411.6, 0.27},
		{"supersonic decay", 686.0, 0.246},
		{"hypersonic plateau", 1372.0, 0.21},
	}

	for _, point := range data {
		coefficient, err := DragCoefficient(point.velocity, CategoryKinetic)
		if err != nil {
			t.Fatalf("drag coefficient failed at %s: %v", point.name, err)
		}
		assertEqual(t, coefficient, point.expected, 1e-9, point.name)
	}
}

func TestDragCoefficientByCategory(t *testing.T) {
	//blunt warheads carry a higher base coefficient than penetrators
	kinetic, err := DragCoefficient(171.5, CategoryKinetic)
	if err != nil {
		t.Fatalf("drag coefficient failed: %v", err)
	}
	chemical, err := DragCoefficient(171.5, CategoryChemical)
	if err != nil {
		t.Fatalf("drag coefficient failed: %v", err)
	}
	spalling, err := DragCoefficient(171.5, CategorySpalling)
	if err != nil {
		t.Fatalf("drag coefficient failed: %v", err)
	}

	assertEqual(t, kinetic, 0.15, 1e-9, "kinetic base")
	assertEqual(t, chemical, 0.25, 1e-9, "chemical base")
	assertEqual(t, spalling, 0.30, 1e-9, "spalling base")

	if _, err = DragCoefficient(500, 99); err == nil {
		t.Error("unknown category accepted")
	}
}

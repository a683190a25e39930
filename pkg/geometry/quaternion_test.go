package geometry

import (
	"math"
	"testing"
)

func vecNear(a, b Vector3) bool {
	return a.Distance(b) < 1e-6
}

func TestQuaternionRotate(t *testing.T) {
	q := QuaternionFromAxisAngle(NewVector3(0, 1, 0), math.Pi/2)
	result := q.Rotate(NewVector3(1, 0, 0))

	expected := NewVector3(0, 0, -1)
	if !vecNear(result, expected) {
		t.Errorf("Rotate failed: expected %v, got %v", expected, result)
	}
}

func TestQuaternionFromEulerMatchesAxisAngle(t *testing.T) {
	a := QuaternionFromEuler(0, 0.7, 0)
	b := QuaternionFromAxisAngle(NewVector3(0, 1, 0), 0.7)
	if a.Angle(b) > 1e-6 {
		t.Errorf("Euler Y rotation differs from axis-angle: %v vs %v", a, b)
	}
}

func TestQuaternionSlerpEndpoints(t *testing.T) {
	a := IdentityQuaternion()
	b := QuaternionFromAxisAngle(NewVector3(0, 0, 1), math.Pi/2)

	if a.Slerp(b, 0) != a {
		t.Error("Slerp(0) should return the start rotation")
	}
	if b.Angle(a.Slerp(b, 1)) > 1e-6 {
		t.Error("Slerp(1) should return the end rotation")
	}

	mid := a.Slerp(b, 0.5)
	expected := QuaternionFromAxisAngle(NewVector3(0, 0, 1), math.Pi/4)
	if mid.Angle(expected) > 1e-6 {
		t.Errorf("Slerp(0.5) failed: expected %v, got %v", expected, mid)
	}
}

func TestQuaternionSlerpIsContinuous(t *testing.T) {
	current := IdentityQuaternion()
	target := QuaternionFromAxisAngle(NewVector3(1, 1, 0), 2.5)

	prevAngle := current.Angle(target)
	for i := 0; i < 100; i++ {
		next := current.Slerp(target, 0.05)
		step := current.Angle(next)
		if step > prevAngle*0.05+1e-6 {
			t.Fatalf("step %d moved %v, more than 5%% of remaining %v", i, step, prevAngle)
		}
		current = next
		angle := current.Angle(target)
		if angle > prevAngle+1e-6 {
			t.Fatalf("step %d moved away from target: %v > %v", i, angle, prevAngle)
		}
		prevAngle = angle
	}
}

func TestLookRotation(t *testing.T) {
	tests := []struct {
		name    string
		forward Vector3
	}{
		{"Forward", NewVector3(0, 0, 1)},
		{"Backward", NewVector3(0, 0, -1)},
		{"Right", NewVector3(1, 0, 0)},
		{"Diagonal", NewVector3(1, 2, 3)},
		{"Up", NewVector3(0, 1, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, ok := LookRotation(tt.forward, NewVector3(0, 1, 0))
			if !ok {
				t.Fatal("LookRotation reported degenerate input")
			}
			result := q.Rotate(NewVector3(0, 0, 1))
			if !vecNear(result, tt.forward.Normalize()) {
				t.Errorf("local +Z should map to %v, got %v", tt.forward.Normalize(), result)
			}
		})
	}

	if _, ok := LookRotation(Vector3{}, NewVector3(0, 1, 0)); ok {
		t.Error("zero forward should be reported as degenerate")
	}
}

func TestQuaternionAxisAngle(t *testing.T) {
	q := QuaternionFromAxisAngle(NewVector3(0, 0, 2), 1.2)
	axis, angle := q.AxisAngle()

	if !vecNear(axis, NewVector3(0, 0, 1)) {
		t.Errorf("axis failed: got %v", axis)
	}
	if math.Abs(angle-1.2) > 1e-9 {
		t.Errorf("angle failed: expected 1.2, got %v", angle)
	}

	_, angle = IdentityQuaternion().AxisAngle()
	if angle != 0 {
		t.Errorf("identity angle should be 0, got %v", angle)
	}
}

func TestRayIntersectPlaneZ(t *testing.T) {
	r := Ray{Origin: NewVector3(0, 0, 12), Direction: NewVector3(0, 0, -1)}
	p, ok := r.IntersectPlaneZ(0.5)
	if !ok || !vecNear(p, NewVector3(0, 0, 0.5)) {
		t.Errorf("IntersectPlaneZ failed: %v %v", p, ok)
	}

	parallel := Ray{Origin: NewVector3(0, 0, 12), Direction: NewVector3(1, 0, 0)}
	if _, ok := parallel.IntersectPlaneZ(0); ok {
		t.Error("parallel ray should not intersect")
	}
}

package lottie

import (
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

func ptr(v float64) *float64 { return &v }

// sampleTransforms covers every builder and a few compositions.
func sampleTransforms() map[string]Transform {
	return map[string]Transform{
		"identity":    Identity(),
		"translation": MakeTranslation(10, -20, 5),
		"scale":       MakeScale(2, 0.5, 3),
		"rotation z":  MakeRotation(math.Pi/3, 0, 0, 1),
		"rotation xy": MakeRotation(1.1, 1, 2, 0),
		"skew":        MakeSkew(30, 15),
		"layer":       MakeTransform(V2(50, 40), V2(200, 120), V2(150, 80), 33, nil, nil),
		"layer skew":  MakeTransform(V2(5, 5), V2(-10, 7), V2(100, 100), -70, ptr(20), ptr(45)),
		"perspective": {
			M11: 1, M22: 1, M33: 1, M34: -0.002,
			M41: 3, M42: 4, M44: 1,
		},
	}
}

func TestIdentity(t *testing.T) {
	id := Identity()
	if !id.IsIdentity() {
		t.Fatalf("Identity().IsIdentity() = false")
	}
	want := Transform{M11: 1, M22: 1, M33: 1, M44: 1}
	if id != want {
		t.Errorf("Identity() = %+v, want %+v", id, want)
	}

	// Mutating a returned copy must not affect later calls.
	id.M41 = 99
	if !Identity().IsIdentity() {
		t.Error("Identity() changed after mutating a returned copy")
	}
}

func TestIdentity_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				m := Identity().Translated(V2(float64(j), 1)).Rotated(float64(j))
				if _, err := m.Inverted(); err != nil {
					t.Errorf("Inverted() = %v", err)
					return
				}
			}
		}()
	}
	wg.Wait()
	if !Identity().IsIdentity() {
		t.Error("Identity() changed under concurrent use")
	}
}

func TestIsIdentity_Exact(t *testing.T) {
	almost := Identity()
	almost.M11 = 1 + 1e-15
	if almost.IsIdentity() {
		t.Error("IsIdentity() must compare exactly")
	}
	if MakeTranslation(0, 0, 1e-12).IsIdentity() {
		t.Error("tiny translation reported as identity")
	}
}

func TestMul_Identity(t *testing.T) {
	for name, m := range sampleTransforms() {
		t.Run(name, func(t *testing.T) {
			if got := Identity().Mul(m); !got.Equal(m) {
				t.Errorf("Identity * M = %+v, want %+v", got, m)
			}
			if got := m.Mul(Identity()); !got.Equal(m) {
				t.Errorf("M * Identity = %+v, want %+v", got, m)
			}
		})
	}
}

func TestMul_Order(t *testing.T) {
	tr := MakeTranslation(10, 0, 0)
	sc := MakeScale(2, 2, 1)

	// Row vectors: a.Mul(b) applies a first.
	p := tr.Mul(sc).TransformPoint(V2(1, 1))
	if !p.Equal(V2(22, 2)) {
		t.Errorf("translate then scale: got %v, want (22, 2)", p)
	}
	p = sc.Mul(tr).TransformPoint(V2(1, 1))
	if !p.Equal(V2(12, 2)) {
		t.Errorf("scale then translate: got %v, want (12, 2)", p)
	}
}

func TestMakeRotation(t *testing.T) {
	t.Run("zero angle", func(t *testing.T) {
		axes := [][3]float64{{0, 0, 1}, {1, 0, 0}, {0, 1, 0}, {1, 2, 3}, {-4, 0.5, 7}}
		for _, a := range axes {
			got := MakeRotation(0, a[0], a[1], a[2])
			if diff := cmp.Diff(Identity(), got, approx); diff != "" {
				t.Errorf("MakeRotation(0, %v) mismatch (-want +got):\n%s", a, diff)
			}
		}
	})

	t.Run("zero axis", func(t *testing.T) {
		if got := MakeRotation(1, 0, 0, 0); !got.IsIdentity() {
			t.Errorf("MakeRotation(1, 0,0,0) = %+v, want identity", got)
		}
	})

	t.Run("quarter turn about z", func(t *testing.T) {
		p := MakeRotation(math.Pi/2, 0, 0, 1).TransformPoint(V2(1, 0))
		if !almostEqual(p.X, 0, 1e-12) || !almostEqual(p.Y, 1, 1e-12) {
			t.Errorf("(1,0) rotated 90deg = %v, want (0, 1)", p)
		}
	})

	t.Run("axis is normalized", func(t *testing.T) {
		a := MakeRotation(0.7, 0, 0, 1)
		b := MakeRotation(0.7, 0, 0, 25)
		if diff := cmp.Diff(a, b, approx); diff != "" {
			t.Errorf("axis length changed the rotation (-want +got):\n%s", diff)
		}
	})

	t.Run("quarter turn about x", func(t *testing.T) {
		p := MakeRotation(math.Pi/2, 1, 0, 0).TransformPoint3(V3(0, 1, 0))
		if !almostEqual(p.X, 0, 1e-12) || !almostEqual(p.Y, 0, 1e-12) || !almostEqual(p.Z, 1, 1e-12) {
			t.Errorf("(0,1,0) rotated about x = %v, want (0, 0, 1)", p)
		}
	})
}

func TestMakeSkew(t *testing.T) {
	if diff := cmp.Diff(Identity(), MakeSkew(0, 37), approx); diff != "" {
		t.Errorf("MakeSkew(0, 37) mismatch (-want +got):\n%s", diff)
	}

	// 45 degrees along x shifts x by y.
	p := MakeSkew(45, 0).TransformPoint(V2(0, 10))
	if !almostEqual(p.X, 10, 1e-9) || !almostEqual(p.Y, 10, 1e-9) {
		t.Errorf("MakeSkew(45, 0) maps (0,10) to %v, want (10, 10)", p)
	}

	// Skewing along the y axis shifts y by x.
	p = MakeSkew(45, 90).TransformPoint(V2(10, 0))
	if !almostEqual(p.X, 10, 1e-9) || !almostEqual(p.Y, -10, 1e-9) {
		t.Errorf("MakeSkew(45, 90) maps (10,0) to %v, want (10, -10)", p)
	}
}

func TestMakeTransform(t *testing.T) {
	tests := []struct {
		name       string
		anchor     Vector2D
		position   Vector2D
		scale      Vector2D
		rotation   float64
		skew, axis *float64
		in, want   Vector2D
	}{
		{"anchor lands on position", V2(50, 50), V2(100, 100), V2(200, 200), 0, nil, nil, V2(50, 50), V2(100, 100)},
		{"scale about anchor", V2(50, 50), V2(100, 100), V2(200, 200), 0, nil, nil, V2(60, 50), V2(120, 100)},
		{"rotate about anchor", V2(50, 50), V2(100, 100), V2(200, 200), 90, nil, nil, V2(60, 50), V2(100, 120)},
		{"identity properties", V2(0, 0), V2(0, 0), V2(100, 100), 0, nil, nil, V2(7, -3), V2(7, -3)},
		{"skew is negated", V2(0, 0), V2(0, 0), V2(100, 100), 0, ptr(45), ptr(0), V2(0, 10), V2(-10, 10)},
		{"skew needs both values", V2(0, 0), V2(0, 0), V2(100, 100), 0, ptr(45), nil, V2(0, 10), V2(0, 10)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := MakeTransform(tt.anchor, tt.position, tt.scale, tt.rotation, tt.skew, tt.axis)
			got := m.TransformPoint(tt.in)
			if !almostEqual(got.X, tt.want.X, 1e-9) || !almostEqual(got.Y, tt.want.Y, 1e-9) {
				t.Errorf("maps %v to %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestMakeTransform_MatchesChain(t *testing.T) {
	anchor, position, scale := V2(12, 34), V2(-5, 80), V2(120, 90)
	want := Identity().
		Translated(position).
		Rotated(25).
		Skewed(-10, 30).
		Scaled(V2(1.2, 0.9)).
		Translated(V2(-12, -34))
	got := MakeTransform(anchor, position, scale, 25, ptr(10), ptr(30))
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Errorf("MakeTransform mismatch (-want +got):\n%s", diff)
	}
}

func TestChainedBuilders_PreMultiply(t *testing.T) {
	base := MakeScale(3, 3, 1)
	if got, want := base.Translated(V2(1, 2)), MakeTranslation(1, 2, 0).Mul(base); !got.Equal(want) {
		t.Errorf("Translated = %+v, want %+v", got, want)
	}
	if got, want := base.Scaled(V2(2, 4)), MakeScale(2, 4, 1).Mul(base); !got.Equal(want) {
		t.Errorf("Scaled = %+v, want %+v", got, want)
	}
	if got, want := base.Rotated(30), MakeRotation(DegreesToRadians(30), 0, 0, 1).Mul(base); !got.Equal(want) {
		t.Errorf("Rotated = %+v, want %+v", got, want)
	}
	if got, want := base.Skewed(10, 20), MakeSkew(10, 20).Mul(base); !got.Equal(want) {
		t.Errorf("Skewed = %+v, want %+v", got, want)
	}
}

func TestInverted(t *testing.T) {
	for name, m := range sampleTransforms() {
		t.Run(name, func(t *testing.T) {
			if !m.IsInvertible() {
				t.Fatalf("IsInvertible() = false")
			}
			inv, err := m.Inverted()
			if err != nil {
				t.Fatalf("Inverted() error = %v", err)
			}
			if diff := cmp.Diff(Identity(), inv.Mul(m), approx); diff != "" {
				t.Errorf("inv * M mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(Identity(), m.Mul(inv), approx); diff != "" {
				t.Errorf("M * inv mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestInverted_Singular(t *testing.T) {
	tests := map[string]Transform{
		"zero scale x": MakeScale(0, 1, 1),
		"zero layer":   MakeTransform(V2(0, 0), V2(10, 10), V2(0, 0), 0, nil, nil),
		"zero matrix":  {},
		"nan":          {M11: math.NaN(), M22: 1, M33: 1, M44: 1},
	}

	for name, m := range tests {
		t.Run(name, func(t *testing.T) {
			if m.IsInvertible() {
				t.Fatalf("IsInvertible() = true for %+v", m)
			}
			inv, err := m.Inverted()
			if !errors.Is(err, ErrNotInvertible) {
				t.Fatalf("Inverted() error = %v, want ErrNotInvertible", err)
			}
			var de *DomainError
			if !errors.As(err, &de) || de.Op != "invert" {
				t.Errorf("Inverted() error = %#v, want *DomainError with Op invert", err)
			}
			if !inv.IsIdentity() {
				t.Errorf("Inverted() on singular matrix returned %+v, want identity", inv)
			}
		})
	}
}

func TestDeterminant(t *testing.T) {
	if got := MakeScale(2, 3, 4).Determinant(); got != 24 {
		t.Errorf("det(scale 2,3,4) = %v, want 24", got)
	}
	if got := MakeRotation(0.4, 1, 1, 1).Determinant(); !almostEqual(got, 1, 1e-12) {
		t.Errorf("det(rotation) = %v, want 1", got)
	}
	if got := MakeTranslation(5, 6, 7).Determinant(); got != 1 {
		t.Errorf("det(translation) = %v, want 1", got)
	}
}

func TestTransformPoint_Perspective(t *testing.T) {
	m := Identity()
	m.M44 = 2
	if got := m.TransformPoint(V2(4, 6)); !got.Equal(V2(2, 3)) {
		t.Errorf("w=2 divide: got %v, want (2, 3)", got)
	}

	m = Identity()
	m.M44 = 0
	if got := m.TransformPoint(V2(4, 6)); !got.Equal(V2(4, 6)) {
		t.Errorf("w=0 must skip the divide: got %v, want (4, 6)", got)
	}
}

func TestMat4RoundTrip(t *testing.T) {
	for name, m := range sampleTransforms() {
		if got := TransformFromMat4(m.Mat4()); !got.Equal(m) {
			t.Errorf("%s: TransformFromMat4(Mat4()) = %+v, want %+v", name, got, m)
		}
	}
	m := MakeTranslation(7, 8, 9)
	if mat := m.Mat4(); mat[12] != 7 || mat[13] != 8 || mat[14] != 9 {
		t.Errorf("translation not in the last row: %v", mat)
	}
}

func TestAff3(t *testing.T) {
	m := MakeTransform(V2(3, 4), V2(10, 20), V2(200, 50), 30, nil, nil)
	a := m.Aff3()
	for _, p := range []Vector2D{V2(0, 0), V2(1, 0), V2(-5, 9)} {
		want := m.TransformPoint(p)
		x := a[0]*p.X + a[1]*p.Y + a[2]
		y := a[3]*p.X + a[4]*p.Y + a[5]
		if !almostEqual(x, want.X, 1e-9) || !almostEqual(y, want.Y, 1e-9) {
			t.Errorf("Aff3 maps %v to (%v, %v), want %v", p, x, y, want)
		}
	}
}

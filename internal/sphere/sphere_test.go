package sphere

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/floats/scalar"

	"sphere-colormap/internal/colormap"
	"sphere-colormap/internal/mathutil"
)

func rgbClose(a, b colormap.RGB, tol float64) bool {
	for i := range a {
		if !scalar.EqualWithinAbs(a[i], b[i], tol) {
			return false
		}
	}
	return true
}

func allSchemes(t *testing.T, opts Options) []Map {
	t.Helper()
	var maps []Map
	for _, name := range Names() {
		m, err := Build(Params{Scheme: name, Options: opts})
		if err != nil {
			t.Fatalf("Build(%s): %v", name, err)
		}
		maps = append(maps, m)
	}
	return maps
}

func randomVectors(n int, seed int64) []mathutil.Vec3 {
	rng := rand.New(rand.NewSource(seed))
	vs := make([]mathutil.Vec3, n)
	for i := range vs {
		vs[i] = mathutil.Vec3{rng.NormFloat64(), rng.NormFloat64(), rng.NormFloat64()}
	}
	return vs
}

func colorOne(t *testing.T, m Map, v mathutil.Vec3) colormap.RGB {
	t.Helper()
	c, err := m.Color([]mathutil.Vec3{v})
	if err != nil {
		t.Fatalf("%s.Color(%v): %v", m.Name(), v, err)
	}
	return c[0]
}

func TestColorsInRange(t *testing.T) {
	pole := mathutil.Vec3{0.3, 0.4, 0.5}
	for _, opts := range []Options{{}, {Pole: &pole, Ordering: []int{1, 2, 0}}} {
		for _, m := range allSchemes(t, opts) {
			vs := randomVectors(2000, 1)
			// Exact axes and poles exercise atan2/asin edge cases.
			vs = append(vs,
				mathutil.Vec3{0, 0, 1}, mathutil.Vec3{0, 0, -1}, mathutil.Vec3{1, 0, 0},
				mathutil.Vec3{-1, 0, 0}, mathutil.Vec3{0, -1, 0}, mathutil.Vec3{-1, -0.0, 0})
			cs, err := m.Color(vs)
			if err != nil {
				t.Fatalf("%s: %v", m.Name(), err)
			}
			if len(cs) != len(vs) {
				t.Fatalf("%s: %d colors for %d vectors", m.Name(), len(cs), len(vs))
			}
			for i, c := range cs {
				if !c.InRange() {
					t.Fatalf("%s: color %v for %v out of range", m.Name(), c, vs[i])
				}
			}
		}
	}
}

func TestScaleInvariance(t *testing.T) {
	vs := randomVectors(200, 2)
	for _, m := range allSchemes(t, Options{}) {
		base, err := m.Color(vs)
		if err != nil {
			t.Fatal(err)
		}
		for _, c := range []float64{1e-3, 0.5, 7, 1e6} {
			scaled := make([]mathutil.Vec3, len(vs))
			for i, v := range vs {
				scaled[i] = v.Scale(c)
			}
			got, err := m.Color(scaled)
			if err != nil {
				t.Fatal(err)
			}
			for i := range got {
				if !rgbClose(got[i], base[i], 1e-9) {
					t.Fatalf("%s: scale %v changed color of %v: %v vs %v", m.Name(), c, vs[i], got[i], base[i])
				}
			}
		}
	}
}

func TestTre(t *testing.T) {
	m, err := NewTre(Options{})
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		v    mathutil.Vec3
		want colormap.RGB
	}{
		{mathutil.Vec3{1, 0, 0}, colormap.RGB{1, 0, 0}},
		{mathutil.Vec3{0, 0, -1}, colormap.RGB{0, 0, 1}},
		{mathutil.Vec3{0, -3, 4}, colormap.RGB{0, 0.6, 0.8}},
	}
	for _, tt := range tests {
		if got := colorOne(t, m, tt.v); !rgbClose(got, tt.want, 1e-12) {
			t.Errorf("Tre(%v) = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestUnoPolesAndEquator(t *testing.T) {
	m, err := NewUno(Options{})
	if err != nil {
		t.Fatal(err)
	}
	white := colormap.RGB{1, 1, 1}
	for _, v := range []mathutil.Vec3{{0, 0, 1}, {0, 0, -2}} {
		if got := colorOne(t, m, v); !rgbClose(got, white, 1e-9) {
			t.Errorf("Uno(%v) = %v, want white", v, got)
		}
	}
	for _, az := range []float64{0, 0.4, 1.7, math.Pi, -2.5} {
		v := mathutil.Vec3{math.Cos(az), math.Sin(az), 0}
		if got := colorOne(t, m, v); !rgbClose(got, unoEquator, 1e-9) {
			t.Errorf("Uno(az=%v) = %v, want %v", az, got, unoEquator)
		}
	}
	// Mid latitudes keep their hue; hemispheres are half a turn apart.
	north := colorOne(t, m, mathutil.Vec3{1, 0, 1})
	south := colorOne(t, m, mathutil.Vec3{-1, 0, -1})
	if !rgbClose(north, south, 1e-9) {
		t.Errorf("Uno north %v and shifted south %v differ", north, south)
	}
}

func TestDuoHalfPeriod(t *testing.T) {
	m, err := NewDuo(Options{})
	if err != nil {
		t.Fatal(err)
	}
	for _, az := range []float64{0, 0.3, 1.2, 2.9} {
		a := colorOne(t, m, mathutil.Vec3{math.Cos(az), math.Sin(az), 0.2})
		b := colorOne(t, m, mathutil.Vec3{-math.Cos(az), -math.Sin(az), 0.2})
		if !rgbClose(a, b, 1e-9) {
			t.Errorf("Duo az=%v: %v vs opposite %v", az, a, b)
		}
	}
	if a, b := colorOne(t, m, mathutil.Vec3{1, 0, 0}), colorOne(t, m, mathutil.Vec3{-1, 0, 0}); !rgbClose(a, b, 1e-12) {
		t.Errorf("Duo(+X) = %v, Duo(-X) = %v", a, b)
	}
	if got := colorOne(t, m, mathutil.Vec3{0, 0, 1}); !rgbClose(got, duoGray, 1e-12) {
		t.Errorf("Duo(+Z) = %v, want gray", got)
	}
}

func TestIcoAnchorsReproduceColors(t *testing.T) {
	m, err := NewIco(Options{})
	if err != nil {
		t.Fatal(err)
	}
	for i, a := range IcoAnchors() {
		if l := a.Dir.Len(); math.Abs(l-1) > 1e-12 {
			t.Errorf("anchor %d has length %v", i, l)
		}
		if got := colorOne(t, m, a.Dir); !rgbClose(got, a.Color, 1e-9) {
			t.Errorf("Ico(anchor %d) = %v, want %v", i, got, a.Color)
		}
	}
}

func TestIcoFacesHaveDistinctColors(t *testing.T) {
	anchors := IcoAnchors()
	edge := 1 / math.Sqrt(5)
	faces := 0
	for i := 0; i < 12; i++ {
		for j := i + 1; j < 12; j++ {
			for k := j + 1; k < 12; k++ {
				adj := func(a, b int) bool {
					return scalar.EqualWithinAbs(anchors[a].Dir.Dot(anchors[b].Dir), edge, 1e-9)
				}
				if !adj(i, j) || !adj(j, k) || !adj(i, k) {
					continue
				}
				faces++
				ci, cj, ck := anchors[i].Color, anchors[j].Color, anchors[k].Color
				if ci == cj || cj == ck || ci == ck {
					t.Errorf("face %d,%d,%d repeats a color", i, j, k)
				}
			}
		}
	}
	if faces != 20 {
		t.Fatalf("found %d faces, want 20", faces)
	}
}

func TestIcoIsContinuous(t *testing.T) {
	m, err := NewIco(Options{})
	if err != nil {
		t.Fatal(err)
	}
	rng := rand.New(rand.NewSource(3))
	vs := randomVectors(2000, 4)
	nudged := make([]mathutil.Vec3, len(vs))
	for i, v := range vs {
		u := v.Normalize()
		nudged[i] = u.Add(mathutil.Vec3{rng.NormFloat64(), rng.NormFloat64(), rng.NormFloat64()}.Scale(1e-8))
	}
	a, err := m.Color(vs)
	if err != nil {
		t.Fatal(err)
	}
	b, err := m.Color(nudged)
	if err != nil {
		t.Fatal(err)
	}
	for i := range a {
		if !rgbClose(a[i], b[i], 1e-5) {
			t.Fatalf("Ico jumps near %v: %v vs %v", vs[i], a[i], b[i])
		}
	}
}

func TestIncSymmetry(t *testing.T) {
	sym, err := NewInc(ScalarOptions{})
	if err != nil {
		t.Fatal(err)
	}
	asym, err := NewInc(ScalarOptions{Asymmetric: true})
	if err != nil {
		t.Fatal(err)
	}
	n, s := mathutil.Vec3{0, 0, 1}, mathutil.Vec3{0, 0, -1}
	if a, b := colorOne(t, sym, n), colorOne(t, sym, s); !rgbClose(a, b, 1e-12) {
		t.Errorf("symmetric Inc: north %v, south %v", a, b)
	}
	if a, b := colorOne(t, asym, n), colorOne(t, asym, s); rgbClose(a, b, 1e-3) {
		t.Errorf("asymmetric Inc: north %v equals south %v", a, b)
	}
	if got := colorOne(t, sym, mathutil.Vec3{1, 1, 0}); !rgbClose(got, colormap.Jet.At(0), 1e-12) {
		t.Errorf("symmetric Inc equator = %v, want Jet(0)", got)
	}
	if got := colorOne(t, asym, s); !rgbClose(got, colormap.Jet.At(0), 1e-12) {
		t.Errorf("asymmetric Inc south = %v, want Jet(0)", got)
	}
}

func TestIncCustomColormap(t *testing.T) {
	m, err := NewInc(ScalarOptions{Colormap: colormap.Gray})
	if err != nil {
		t.Fatal(err)
	}
	v := mathutil.Vec3{1, 0, 1} // 45° inclination
	if got := colorOne(t, m, v); !rgbClose(got, colormap.RGB{0.5, 0.5, 0.5}, 1e-12) {
		t.Errorf("Inc(gray, 45°) = %v", got)
	}
}

func TestAzyWraps(t *testing.T) {
	sym, err := NewAzy(ScalarOptions{})
	if err != nil {
		t.Fatal(err)
	}
	a := colorOne(t, sym, mathutil.Vec3{1, 0, 0.3})
	b := colorOne(t, sym, mathutil.Vec3{math.Cos(2 * math.Pi), math.Sin(2 * math.Pi), 0.3})
	if !rgbClose(a, b, 1e-9) {
		t.Errorf("Azy az=0 %v vs az=2π %v", a, b)
	}
	// symmetric folds opposite azimuths together
	c := colorOne(t, sym, mathutil.Vec3{math.Cos(0.6), math.Sin(0.6), 0})
	d := colorOne(t, sym, mathutil.Vec3{math.Cos(0.6 + math.Pi), math.Sin(0.6 + math.Pi), 0})
	if !rgbClose(c, d, 1e-9) {
		t.Errorf("Azy az=0.6 %v vs az=0.6+π %v", c, d)
	}
	asym, err := NewAzy(ScalarOptions{Asymmetric: true, Colormap: colormap.Gray})
	if err != nil {
		t.Fatal(err)
	}
	if got := colorOne(t, asym, mathutil.Vec3{0, 1, 0}); !rgbClose(got, colormap.RGB{0.75, 0.75, 0.75}, 1e-12) {
		t.Errorf("asymmetric Azy(+Y) = %v, want 0.75 gray", got)
	}
}

func TestOrderingThenIdentityRotation(t *testing.T) {
	id := mathutil.Mat3Identity()
	ordered, err := NewTre(Options{Ordering: []int{2, 0, 1}, Rotation: &id})
	if err != nil {
		t.Fatal(err)
	}
	plain, err := NewTre(Options{})
	if err != nil {
		t.Fatal(err)
	}
	for _, v := range randomVectors(50, 5) {
		permuted := mathutil.Vec3{v[2], v[0], v[1]}
		if a, b := colorOne(t, ordered, v), colorOne(t, plain, permuted); !rgbClose(a, b, 1e-12) {
			t.Fatalf("ordering [2,0,1] on %v gave %v, want %v", v, a, b)
		}
	}
}

func TestPoleReorients(t *testing.T) {
	pole := mathutil.Vec3{2, 0, 0}
	m, err := NewUno(Options{Pole: &pole})
	if err != nil {
		t.Fatal(err)
	}
	if got := colorOne(t, m, mathutil.Vec3{1, 0, 0}); !rgbClose(got, colormap.RGB{1, 1, 1}, 1e-9) {
		t.Errorf("Uno with +X pole: Uno(+X) = %v, want white", got)
	}
	if got := colorOne(t, m, mathutil.Vec3{0, 0, 1}); !rgbClose(got, unoEquator, 1e-9) {
		t.Errorf("Uno with +X pole: Uno(+Z) = %v, want equator gray", got)
	}
}

func TestPrepareLeavesInputUntouched(t *testing.T) {
	p, err := NewPipeline(Options{Ordering: []int{1, 0, 2}})
	if err != nil {
		t.Fatal(err)
	}
	in := []mathutil.Vec3{{3, 4, 0}}
	out, err := p.Prepare(in)
	if err != nil {
		t.Fatal(err)
	}
	if in[0] != (mathutil.Vec3{3, 4, 0}) {
		t.Errorf("input modified: %v", in[0])
	}
	if !out[0].ApproxEqual(mathutil.Vec3{0.8, 0.6, 0}, 1e-15) {
		t.Errorf("Prepare = %v", out[0])
	}
}

func TestConstructionErrors(t *testing.T) {
	zero := mathutil.Vec3{}
	pole := mathutil.Vec3{0, 0, 1}
	skew := mathutil.Mat3{1, 0, 0, 0, 2, 0, 0, 0, 1}
	bad := colormap.Func(func(float64) colormap.RGB { return colormap.RGB{1.5, 0, 0} })
	tests := []struct {
		name   string
		params Params
		want   error
	}{
		{"short ordering", Params{Scheme: "tre", Options: Options{Ordering: []int{0, 1}}}, ErrInvalidOrdering},
		{"repeated axis", Params{Scheme: "uno", Options: Options{Ordering: []int{0, 0, 1}}}, ErrInvalidOrdering},
		{"axis out of range", Params{Scheme: "duo", Options: Options{Ordering: []int{0, 1, 3}}}, ErrInvalidOrdering},
		{"zero pole", Params{Scheme: "ico", Options: Options{Pole: &zero}}, ErrInvalidDirection},
		{"up parallel to pole", Params{Scheme: "ico", Options: Options{Pole: &pole, Up: &pole}}, ErrInvalidDirection},
		{"up without pole", Params{Scheme: "tre", Options: Options{Up: &pole}}, ErrInvalidDirection},
		{"skewed rotation", Params{Scheme: "tre", Options: Options{Rotation: &skew}}, ErrInvalidRotation},
		{"bad colormap", Params{Scheme: "inc", Colormap: bad}, ErrInvalidColormap},
		{"nil colormap func", Params{Scheme: "inc", Colormap: colormap.Func(nil)}, ErrInvalidColormap},
		{"empty segmented colormap", Params{Scheme: "azy", Colormap: colormap.Segmented{}}, ErrInvalidColormap},
		{"unknown scheme", Params{Scheme: "quattro"}, ErrUnknownScheme},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Build(tt.params)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Build() = %v, %v; want error %v", m, err, tt.want)
			}
			if m != nil {
				t.Fatalf("Build() returned a map alongside error")
			}
		})
	}
}

func TestPoleErrorKeepsCause(t *testing.T) {
	zero := mathutil.Vec3{}
	_, err := NewPipeline(Options{Pole: &zero})
	if !errors.Is(err, ErrInvalidDirection) {
		t.Fatalf("err = %v, want ErrInvalidDirection", err)
	}
	if !strings.Contains(err.Error(), "zero-length direction") {
		t.Errorf("err = %q, want the basis cause in the message", err)
	}
}

func TestZeroRowFailsBatch(t *testing.T) {
	for _, m := range allSchemes(t, Options{}) {
		vs := []mathutil.Vec3{{1, 0, 0}, {0, 1, 0}, {}, {math.NaN(), 1, 0}}
		cs, err := m.Color(vs)
		if cs != nil {
			t.Errorf("%s: got colors with error", m.Name())
		}
		if !errors.Is(err, ErrInvalidDirection) {
			t.Fatalf("%s: err = %v, want ErrInvalidDirection", m.Name(), err)
		}
		var re *RowError
		if !errors.As(err, &re) || re.Row != 2 {
			t.Fatalf("%s: err = %v, want RowError at row 2", m.Name(), err)
		}
	}
}

func TestBuildIsCaseInsensitive(t *testing.T) {
	for _, name := range []string{"ICO", " azy ", "Tre"} {
		if _, err := Build(Params{Scheme: name}); err != nil {
			t.Errorf("Build(%q): %v", name, err)
		}
	}
}

func TestColorParallelMatchesColor(t *testing.T) {
	vs := randomVectors(1000, 6)
	for _, m := range allSchemes(t, Options{}) {
		want, err := m.Color(vs)
		if err != nil {
			t.Fatal(err)
		}
		for _, chunk := range []int{1, 7, 100, 999, 5000} {
			got, err := ColorParallel(context.Background(), m, vs, 4, chunk)
			if err != nil {
				t.Fatalf("%s chunk %d: %v", m.Name(), chunk, err)
			}
			for i := range want {
				if got[i] != want[i] {
					t.Fatalf("%s chunk %d: row %d = %v, want %v", m.Name(), chunk, i, got[i], want[i])
				}
			}
		}
	}
}

func TestColorParallelReportsGlobalRow(t *testing.T) {
	vs := randomVectors(100, 7)
	vs[57] = mathutil.Vec3{}
	vs[93] = mathutil.Vec3{}
	m, err := NewIco(Options{})
	if err != nil {
		t.Fatal(err)
	}
	_, err = ColorParallel(context.Background(), m, vs, 0, 10)
	var re *RowError
	if !errors.As(err, &re) || re.Row != 57 {
		t.Fatalf("err = %v, want RowError at row 57", err)
	}
}

func TestColorParallelCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	m, err := NewTre(Options{})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ColorParallel(ctx, m, randomVectors(100, 8), 2, 10); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestColorR3(t *testing.T) {
	m, err := NewTre(Options{})
	if err != nil {
		t.Fatal(err)
	}
	got, err := ColorR3(m, []r3.Vector{{X: 0, Y: -2, Z: 0}})
	if err != nil {
		t.Fatal(err)
	}
	if !rgbClose(got[0], colormap.RGB{0, 1, 0}, 1e-12) {
		t.Errorf("ColorR3 = %v", got[0])
	}
}

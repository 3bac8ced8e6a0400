package geom

// BSpline is a clamped, non-rational B-spline curve of arbitrary
// degree. Listed among the curve variants in the kernel's data model
// but, unlike Line/Arc/Circle/Ellipse, accepted only as a general
// curve for tessellation and boolean classification (via its
// tessellated polyline) — not as an Extrude/Revolve profile edge,
// which is restricted to Line.
type BSpline struct {
	Degree     int
	ControlPts []Point3
	Knots      []float64 // length = len(ControlPts) + Degree + 1
}

// NewBSpline validates a clamped knot vector (non-decreasing, with the
// first and last knots repeated Degree+1 times) and returns the curve.
// Returns ErrDegenerate if degree < 1, fewer than Degree+1 control
// points are given, or the knot vector length is wrong or not
// non-decreasing.
func NewBSpline(degree int, controlPts []Point3, knots []float64) (BSpline, error) {
	if degree < 1 || len(controlPts) < degree+1 {
		return BSpline{}, ErrDegenerate
	}
	if len(knots) != len(controlPts)+degree+1 {
		return BSpline{}, ErrDegenerate
	}
	for i := 1; i < len(knots); i++ {
		if knots[i] < knots[i-1] {
			return BSpline{}, ErrDegenerate
		}
	}
	return BSpline{Degree: degree, ControlPts: controlPts, Knots: knots}, nil
}

// Domain implements Curve: the span between the first and last
// distinct interior knots of a clamped curve.
func (b BSpline) Domain() CurveDomain {
	return CurveDomain{b.Knots[b.Degree], b.Knots[len(b.Knots)-b.Degree-1]}
}

// Evaluate implements Curve via de Boor's algorithm.
func (b BSpline) Evaluate(t float64) Point3 {
	d := b.Domain()
	t = d.Clamp(t)
	k := b.findSpan(t)
	p := b.Degree

	// Work in homogeneous-free Point3 arithmetic directly: de Boor's
	// recursion only needs affine combinations, which Point3.Lerp gives.
	d0 := make([]Point3, p+1)
	copy(d0, b.ControlPts[k-p:k+1])

	for r := 1; r <= p; r++ {
		for j := p; j >= r; j-- {
			i := j + k - p
			denom := b.Knots[i+p-r+1] - b.Knots[i]
			alpha := 0.0
			if denom > Tolerance {
				alpha = (t - b.Knots[i]) / denom
			}
			d0[j] = d0[j-1].Lerp(d0[j], alpha)
		}
	}
	return d0[p]
}

// findSpan returns the knot span index k such that Knots[k] <= t < Knots[k+1]
// (clamped curves treat t == last knot as belonging to the final span).
func (b BSpline) findSpan(t float64) int {
	n := len(b.ControlPts) - 1
	p := b.Degree
	if t >= b.Knots[n+1] {
		return n
	}
	lo, hi := p, n+1
	for lo < hi {
		mid := (lo + hi) / 2
		if t < b.Knots[mid] {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return lo - 1
}

// Tangent implements Curve via central finite differences, scaled by
// the domain width so the result is well-conditioned regardless of the
// knot vector's parameterization.
func (b BSpline) Tangent(t float64) Vec3 {
	d := b.Domain()
	h := (d.TMax - d.TMin) * 1e-5
	if h < 1e-9 {
		h = 1e-9
	}
	t0, t1 := t-h, t+h
	if t0 < d.TMin {
		t0 = d.TMin
	}
	if t1 > d.TMax {
		t1 = d.TMax
	}
	return b.Evaluate(t1).Sub(b.Evaluate(t0)).Normalize()
}

// Inverse implements InvertibleCurve approximately: it seeds a search
// with uniform sampling across the domain and refines with Newton
// iteration on ||Evaluate(t)-p||^2. Unlike the other curve variants'
// closed-form inverses, this is a numerical approximation — documented
// per SPEC_FULL.md's B-spline expansion.
func (b BSpline) Inverse(p Point3) (float64, error) {
	d := b.Domain()
	const samples = 32
	bestT := d.TMin
	bestDist := p.Distance(b.Evaluate(d.TMin))
	for i := 1; i <= samples; i++ {
		t := d.TMin + (d.TMax-d.TMin)*float64(i)/samples
		if dist := p.Distance(b.Evaluate(t)); dist < bestDist {
			bestDist = dist
			bestT = t
		}
	}

	t := bestT
	h := (d.TMax - d.TMin) * 1e-6
	for iter := 0; iter < 20; iter++ {
		f := b.Evaluate(t).Sub(p)
		t0, t1 := d.Clamp(t-h), d.Clamp(t+h)
		deriv := b.Evaluate(t1).Sub(b.Evaluate(t0)).Scale(1 / (t1 - t0))
		denom := deriv.Dot(deriv)
		if denom < Tolerance {
			break
		}
		step := f.Dot(deriv) / denom
		t -= step
		t = d.Clamp(t)
		if abs(step) < 1e-12 {
			break
		}
	}
	return t, nil
}

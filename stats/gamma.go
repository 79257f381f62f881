package stats

import "math"

// stirlingMin is the argument above which the Stirling series is used
// directly. Smaller arguments are shifted up with Γ(z) = Γ(z+1)/z.
const stirlingMin = 20

// stirlingSeries is the correction factor 1 + 1/(12z) + ... through z⁻⁷.
func stirlingSeries(z float64) float64 {
	z2 := z * z
	z3 := z2 * z
	z4 := z3 * z
	z5 := z4 * z
	z6 := z5 * z
	z7 := z6 * z

	return 1 +
		1/(12*z) +
		1/(288*z2) -
		139/(51840*z3) -
		571/(2488320*z4) +
		163879/(209018880*z5) +
		5246819/(75246796800*z6) -
		534703531/(902961561600*z7)
}

// Gamma returns Γ(z). Arguments of at least 0 are shifted up to 20 with
// Γ(z) = Γ(z+1)/z and evaluated with a Stirling series. Negative arguments
// use the reflection Γ(z) = π/(sin(πz)·Γ(1−z)). Non-positive integers are
// poles and give +Inf.
func Gamma(z float64) float64 {
	switch {
	case math.IsNaN(z), math.IsInf(z, -1):
		return math.NaN()
	case math.IsInf(z, 1):
		return math.Inf(1)
	case isPole(z):
		return math.Inf(1)
	case z < 0:
		return math.Pi / (math.Sin(math.Pi*z) * Gamma(1-z))
	}

	div := 1.0
	for z < stirlingMin {
		div *= z
		z++
	}

	return math.Sqrt(2*math.Pi/z) * math.Pow(z/math.E, z) * stirlingSeries(z) / div
}

// isPole reports whether z is zero or a negative integer. Every float
// below -2⁵² is an integer.
func isPole(z float64) bool {
	return z <= 0 && z == math.Trunc(z)
}

// LogGamma returns ln|Γ(z)|. For positive z it uses the same series as
// Gamma in log form, so it stays finite long after Gamma overflows.
func LogGamma(z float64) float64 {
	switch {
	case math.IsNaN(z), math.IsInf(z, -1):
		return math.NaN()
	case math.IsInf(z, 1), isPole(z):
		return math.Inf(1)
	case z < 0:
		return math.Log(math.Pi/math.Abs(math.Sin(math.Pi*z))) - LogGamma(1-z)
	}

	shift := 0.0
	for z < stirlingMin {
		shift += math.Log(z)
		z++
	}

	return 0.5*math.Log(2*math.Pi/z) + z*(math.Log(z)-1) + math.Log(stirlingSeries(z)) - shift
}

// TDensity returns the Student's t probability density at t for df degrees
// of freedom:
//
//	Γ((df+1)/2) / (√(π·df)·Γ(df/2)) · (1 + t²/df)^(−(df+1)/2)
//
// This is the density ordinate, not a tail probability.
func TDensity(t, df float64) float64 {
	if !(df > 0) {
		return math.NaN()
	}

	half := (df + 1) / 2
	norm := math.Exp(LogGamma(half)-LogGamma(df/2)) / math.Sqrt(math.Pi*df)

	return norm * math.Pow(1+t*t/df, -half)
}

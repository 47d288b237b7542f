package relaxed

import "math"

// Everything in this file delegates to the primitive's own IEEE-754
// behavior. None of it participates in the relaxed contract: there is no
// finite-operand precondition here, and NaN and infinities flow through
// exactly as they do for the bare primitive. The 32-bit instantiation
// routes through float64 math, which is how float32 math is done in Go.

func (x Float[F]) lift(f func(float64) float64) Float[F] {
	return Float[F]{v: F(f(float64(x.v)))}
}

// Floor returns the greatest integer value less than or equal to x.
func (x Float[F]) Floor() Float[F] { return x.lift(math.Floor) }

// Ceil returns the least integer value greater than or equal to x.
func (x Float[F]) Ceil() Float[F] { return x.lift(math.Ceil) }

// Round returns the nearest integer, rounding half away from zero.
func (x Float[F]) Round() Float[F] { return x.lift(math.Round) }

// Trunc returns the integer part of x.
func (x Float[F]) Trunc() Float[F] { return x.lift(math.Trunc) }

// Fract returns the fractional part of x, with the sign of x.
func (x Float[F]) Fract() Float[F] {
	return Float[F]{v: x.v - x.Trunc().v}
}

// Abs returns the absolute value of x.
func (x Float[F]) Abs() Float[F] { return x.lift(math.Abs) }

// Signum returns 1 with the sign of x, or NaN if x is NaN. Both zeros
// count as signed: Signum of -0 is -1.
func (x Float[F]) Signum() Float[F] {
	f := float64(x.v)
	if math.IsNaN(f) {
		return Float[F]{v: F(math.NaN())}
	}
	return Float[F]{v: F(math.Copysign(1, f))}
}

// Recip returns 1/x using the primitive's own strict division.
func (x Float[F]) Recip() Float[F] {
	return Float[F]{v: 1 / x.v}
}

// Sqrt returns the square root of x. Negative inputs yield NaN, as for
// the primitive.
func (x Float[F]) Sqrt() Float[F] { return x.lift(math.Sqrt) }

// Cbrt returns the cube root of x.
func (x Float[F]) Cbrt() Float[F] { return x.lift(math.Cbrt) }

// Exp returns e**x.
func (x Float[F]) Exp() Float[F] { return x.lift(math.Exp) }

// Exp2 returns 2**x.
func (x Float[F]) Exp2() Float[F] { return x.lift(math.Exp2) }

// Expm1 returns e**x - 1, accurate for small x.
func (x Float[F]) Expm1() Float[F] { return x.lift(math.Expm1) }

// Log returns the natural logarithm of x.
func (x Float[F]) Log() Float[F] { return x.lift(math.Log) }

// Log2 returns the base-2 logarithm of x.
func (x Float[F]) Log2() Float[F] { return x.lift(math.Log2) }

// Log10 returns the base-10 logarithm of x.
func (x Float[F]) Log10() Float[F] { return x.lift(math.Log10) }

// Log1p returns the natural logarithm of 1+x, accurate for small x.
func (x Float[F]) Log1p() Float[F] { return x.lift(math.Log1p) }

// LogBase returns the logarithm of x in the given base, computed as
// Log(x)/Log(base).
func (x Float[F]) LogBase(base F) Float[F] {
	return Float[F]{v: F(math.Log(float64(x.v)) / math.Log(float64(base)))}
}

// Pow returns x**y.
func (x Float[F]) Pow(y F) Float[F] {
	return Float[F]{v: F(math.Pow(float64(x.v), float64(y)))}
}

// Powi returns x**n for an integer exponent.
func (x Float[F]) Powi(n int) Float[F] {
	return Float[F]{v: F(math.Pow(float64(x.v), float64(n)))}
}

// Sin returns the sine of x (radians).
func (x Float[F]) Sin() Float[F] { return x.lift(math.Sin) }

// Cos returns the cosine of x (radians).
func (x Float[F]) Cos() Float[F] { return x.lift(math.Cos) }

// Tan returns the tangent of x (radians).
func (x Float[F]) Tan() Float[F] { return x.lift(math.Tan) }

// SinCos returns the sine and cosine of x in one call.
func (x Float[F]) SinCos() (sin, cos Float[F]) {
	s, c := math.Sincos(float64(x.v))
	return Float[F]{v: F(s)}, Float[F]{v: F(c)}
}

// Asin returns the arcsine of x.
func (x Float[F]) Asin() Float[F] { return x.lift(math.Asin) }

// Acos returns the arccosine of x.
func (x Float[F]) Acos() Float[F] { return x.lift(math.Acos) }

// Atan returns the arctangent of x.
func (x Float[F]) Atan() Float[F] { return x.lift(math.Atan) }

// Atan2 returns the angle of the point (other, x): the two-argument
// arctangent with x as the ordinate.
func (x Float[F]) Atan2(other F) Float[F] {
	return Float[F]{v: F(math.Atan2(float64(x.v), float64(other)))}
}

// Hypot returns Sqrt(x*x + y*y) without intermediate overflow.
func (x Float[F]) Hypot(y F) Float[F] {
	return Float[F]{v: F(math.Hypot(float64(x.v), float64(y)))}
}

// Sinh returns the hyperbolic sine of x.
func (x Float[F]) Sinh() Float[F] { return x.lift(math.Sinh) }

// Cosh returns the hyperbolic cosine of x.
func (x Float[F]) Cosh() Float[F] { return x.lift(math.Cosh) }

// Tanh returns the hyperbolic tangent of x.
func (x Float[F]) Tanh() Float[F] { return x.lift(math.Tanh) }

// Asinh returns the inverse hyperbolic sine of x.
func (x Float[F]) Asinh() Float[F] { return x.lift(math.Asinh) }

// Acosh returns the inverse hyperbolic cosine of x.
func (x Float[F]) Acosh() Float[F] { return x.lift(math.Acosh) }

// Atanh returns the inverse hyperbolic tangent of x.
func (x Float[F]) Atanh() Float[F] { return x.lift(math.Atanh) }

// Degrees converts x from radians to degrees.
func (x Float[F]) Degrees() Float[F] {
	return Float[F]{v: F(float64(x.v) * (180 / math.Pi))}
}

// Radians converts x from degrees to radians.
func (x Float[F]) Radians() Float[F] {
	return Float[F]{v: F(float64(x.v) * (math.Pi / 180))}
}

// Copysign returns a value with the magnitude of x and the sign of sign.
func (x Float[F]) Copysign(sign F) Float[F] {
	return Float[F]{v: F(math.Copysign(float64(x.v), float64(sign)))}
}

// DivEuclid returns the Euclidean quotient of x / rhs: the integer q such
// that x - q*rhs lies in [0, |rhs|).
func (x Float[F]) DivEuclid(rhs F) Float[F] {
	a, b := float64(x.v), float64(rhs)
	q := math.Trunc(a / b)
	if math.Mod(a, b) < 0 {
		if b > 0 {
			q--
		} else {
			q++
		}
	}
	return Float[F]{v: F(q)}
}

// RemEuclid returns the Euclidean remainder of x / rhs, in [0, |rhs|)
// for finite operands.
func (x Float[F]) RemEuclid(rhs F) Float[F] {
	a, b := float64(x.v), float64(rhs)
	r := math.Mod(a, b)
	if r < 0 {
		r += math.Abs(b)
	}
	return Float[F]{v: F(r)}
}

// Max returns the larger of x and y, with math.Max's NaN and signed-zero
// handling.
func (x Float[F]) Max(y F) Float[F] {
	return Float[F]{v: F(math.Max(float64(x.v), float64(y)))}
}

// Min returns the smaller of x and y, with math.Min's NaN and signed-zero
// handling.
func (x Float[F]) Min(y F) Float[F] {
	return Float[F]{v: F(math.Min(float64(x.v), float64(y)))}
}

// MulAdd returns x*y + z, computed with fused multiply-add (one
// rounding).
func (x Float[F]) MulAdd(y, z F) Float[F] {
	return Float[F]{v: F(math.FMA(float64(x.v), float64(y), float64(z)))}
}

// IsNaN reports whether x is an IEEE-754 "not-a-number" value.
func (x Float[F]) IsNaN() bool {
	return math.IsNaN(float64(x.v))
}

// IsInf reports whether x is an infinity, according to sign: positive
// infinity if sign > 0, negative infinity if sign < 0, either if sign
// is 0.
func (x Float[F]) IsInf(sign int) bool {
	return math.IsInf(float64(x.v), sign)
}

// IsFinite reports whether x is neither NaN nor infinite.
func (x Float[F]) IsFinite() bool {
	return !x.IsNaN() && !x.IsInf(0)
}

// Signbit reports whether the sign bit of x is set, including for -0 and
// negative NaN.
func (x Float[F]) Signbit() bool {
	return math.Signbit(float64(x.v))
}

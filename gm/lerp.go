package gm

// Lerper does a linear interpolation between lhs and rhs using
// the factor f. A value for f of 0 returns lhs, a value of 1 returns rhs.
//
// Use an easing function to calculate f to perform
// custom interpolations between the values
type Lerper[T any] func(f float64, lhs, rhs T) T

func LerpVec(f float64, lhs, rhs Vec) Vec {
	return lhs.Add(rhs.Sub(lhs).Mul(f))
}

func LerpFloat[T ~float32 | ~float64](f float64, lhs, rhs T) T {
	return (rhs-lhs)*T(f) + lhs
}

// LerpAngle interpolates along the shorter arc between both angles.
func LerpAngle(f float64, lhs, rhs Rad) Rad {
	d := lhs.DifferenceTo(rhs)
	return lhs + Rad(f)*d
}

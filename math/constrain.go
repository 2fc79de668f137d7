package math

type Number interface {
	~int | ~int32 | ~int64 | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~float32 | ~float64
}

// Constrain clamps val into [low, high]. NaN is passed through.
func Constrain[T Number](val T, low T, high T) T {
	if val < low {
		return low
	}
	if val > high {
		return high
	}
	return val
}

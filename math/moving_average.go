package math

type MovingAverage struct {
	values      []float64
	index       int
	size        int
	total       float64
	initialized bool
	Estimate    float64
}

func (a *MovingAverage) Init(size int) {
	if size < 1 {
		size = 1
	}
	a.size = size
	a.values = make([]float64, size)
	a.Reset()
}

func (a *MovingAverage) Reset() {
	a.initialized = false
	a.index = 0
	a.total = 0
	a.Estimate = 0
}

// Update pushes a new sample and returns the current average. The first sample
// seeds the whole window.
func (a *MovingAverage) Update(val float64) float64 {
	if a.size == 0 {
		a.Init(1)
	}
	if !a.initialized {
		for i := range a.values {
			a.values[i] = val
		}
		a.total = val * float64(a.size)
		a.initialized = true
		a.Estimate = val
		return val
	}
	a.index = (a.index + 1) % a.size
	a.total += val - a.values[a.index]
	a.values[a.index] = val
	a.Estimate = a.total / float64(a.size)
	return a.Estimate
}

package model

type linear struct {
	intercept float64
	coef      []float64
}

func (l *linear) eval(x []float64) float64 {
	sum := l.intercept
	for i, c := range l.coef {
		sum += c * x[i]
	}
	return sum
}

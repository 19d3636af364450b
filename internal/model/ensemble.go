package model

// forest averages its trees.
type forest struct {
	trees []*tree
}

func (f *forest) eval(x []float64) float64 {
	var sum float64
	for _, t := range f.trees {
		sum += t.eval(x)
	}
	return sum / float64(len(f.trees))
}

// boosted adds learning-rate scaled tree outputs to a constant initial estimate.
type boosted struct {
	init         float64
	learningRate float64
	trees        []*tree
}

func (b *boosted) eval(x []float64) float64 {
	sum := b.init
	for _, t := range b.trees {
		sum += b.learningRate * t.eval(x)
	}
	return sum
}

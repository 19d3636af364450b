package model

import "fmt"

const defaultLearningRate = 0.1

// Model is a validated regressor built from an Artifact. It is immutable and
// safe for concurrent use.
type Model struct {
	info   Info
	scaler *Scaler
	est    estimator
}

// Info summarizes a model for inspection.
type Info struct {
	Kind         Kind     `json:"kind"`
	Features     int      `json:"n_features"`
	FeatureNames []string `json:"feature_names,omitempty"`
	Trees        int      `json:"trees,omitempty"`
	MaxDepth     int      `json:"max_depth,omitempty"`
	Scaled       bool     `json:"scaled"`
}

// Build validates an artifact and constructs its estimator.
func Build(a Artifact) (*Model, error) {
	n := featureCount(a)
	if n <= 0 {
		return nil, fmt.Errorf("%w: cannot determine feature count", ErrCorruptModel)
	}
	if len(a.FeatureNames) > 0 && len(a.FeatureNames) != n {
		return nil, fmt.Errorf("%w: %d feature names for %d features", ErrCorruptModel, len(a.FeatureNames), n)
	}
	if a.Scaler != nil {
		if err := a.Scaler.validate(n); err != nil {
			return nil, err
		}
	}

	m := &Model{
		info: Info{
			Kind:         a.Kind,
			Features:     n,
			FeatureNames: a.FeatureNames,
			Scaled:       a.Scaler != nil,
		},
		scaler: a.Scaler,
	}

	switch a.Kind {
	case KindLinear:
		if len(a.Coefficients) != n {
			return nil, fmt.Errorf("%w: %d coefficients for %d features", ErrCorruptModel, len(a.Coefficients), n)
		}
		m.est = &linear{intercept: a.Intercept, coef: a.Coefficients}
	case KindDecisionTree:
		if a.Tree == nil {
			return nil, fmt.Errorf("%w: decision_tree without tree", ErrCorruptModel)
		}
		t, err := buildTree(*a.Tree, n)
		if err != nil {
			return nil, err
		}
		m.info.Trees, m.info.MaxDepth = 1, t.depth
		m.est = t
	case KindRandomForest, KindGradientBoosting:
		trees, err := buildTrees(a.Trees, n)
		if err != nil {
			return nil, err
		}
		m.info.Trees = len(trees)
		for _, t := range trees {
			m.info.MaxDepth = max(m.info.MaxDepth, t.depth)
		}
		if a.Kind == KindRandomForest {
			m.est = &forest{trees: trees}
			break
		}
		lr := a.LearningRate
		if lr == 0 {
			lr = defaultLearningRate
		}
		m.est = &boosted{init: a.Init, learningRate: lr, trees: trees}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, a.Kind)
	}
	return m, nil
}

func buildTrees(data []TreeData, n int) ([]*tree, error) {
	if len(data) == 0 {
		return nil, ErrEmptyEnsemble
	}
	trees := make([]*tree, 0, len(data))
	for i, d := range data {
		t, err := buildTree(d, n)
		if err != nil {
			return nil, fmt.Errorf("tree %d: %w", i, err)
		}
		trees = append(trees, t)
	}
	return trees, nil
}

// featureCount resolves the input width from the most explicit source the
// artifact carries.
func featureCount(a Artifact) int {
	switch {
	case a.NFeatures > 0:
		return a.NFeatures
	case a.Kind == KindLinear:
		return len(a.Coefficients)
	case len(a.FeatureNames) > 0:
		return len(a.FeatureNames)
	case a.Scaler != nil:
		return len(a.Scaler.Mean)
	}

	highest := -1
	if a.Tree != nil {
		highest = a.Tree.maxFeature()
	}
	for _, t := range a.Trees {
		highest = max(highest, t.maxFeature())
	}
	return highest + 1
}

// Info returns the model summary.
func (m *Model) Info() Info {
	return m.info
}

// Predict evaluates every row. Each row must have exactly Info().Features values.
func (m *Model) Predict(rows [][]float64) ([]float64, error) {
	out := make([]float64, len(rows))
	var scratch []float64
	if m.scaler != nil {
		scratch = make([]float64, m.info.Features)
	}
	for i, row := range rows {
		if len(row) != m.info.Features {
			return nil, fmt.Errorf("%w: row %d has %d features, model expects %d", ErrFeatureCount, i, len(row), m.info.Features)
		}
		x := row
		if m.scaler != nil {
			x = m.scaler.transform(scratch, row)
		}
		out[i] = m.est.eval(x)
	}
	return out, nil
}

package model

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

const FormatV1 = "quakecast.model/v1"

// Kind names a supported estimator family.
type Kind string

const (
	KindLinear           Kind = "linear"
	KindDecisionTree     Kind = "decision_tree"
	KindRandomForest     Kind = "random_forest"
	KindGradientBoosting Kind = "gradient_boosting"
)

// Encoding selects the artifact codec.
type Encoding int

const (
	EncodingJSON Encoding = iota
	EncodingYAML
)

// Artifact is the serialized form of a trained regressor. Tree layouts follow
// the flat arrays of a scikit-learn tree_ object so exports need no reshaping.
type Artifact struct {
	Format       string     `json:"format,omitempty" yaml:"format,omitempty"`
	Kind         Kind       `json:"kind" yaml:"kind"`
	NFeatures    int        `json:"n_features,omitempty" yaml:"n_features,omitempty"`
	FeatureNames []string   `json:"feature_names,omitempty" yaml:"feature_names,omitempty"`
	Scaler       *Scaler    `json:"scaler,omitempty" yaml:"scaler,omitempty"`
	Intercept    float64    `json:"intercept,omitempty" yaml:"intercept,omitempty"`
	Coefficients []float64  `json:"coefficients,omitempty" yaml:"coefficients,omitempty"`
	Tree         *TreeData  `json:"tree,omitempty" yaml:"tree,omitempty"`
	Trees        []TreeData `json:"trees,omitempty" yaml:"trees,omitempty"`
	LearningRate float64    `json:"learning_rate,omitempty" yaml:"learning_rate,omitempty"`
	Init         float64    `json:"init,omitempty" yaml:"init,omitempty"`
}

// EncodingFor picks the codec from a file extension. Anything that is not
// YAML is read as JSON, including the historical .pkl artifact name.
func EncodingFor(path string) Encoding {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return EncodingYAML
	default:
		return EncodingJSON
	}
}

// IsArtifact reports whether path has one of the artifact extensions:
// .pkl or .json (JSON) and .yaml or .yml (YAML).
func IsArtifact(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pkl", ".json", ".yaml", ".yml":
		return true
	}
	return false
}

// Load reads, decodes and validates the artifact at path.
func Load(path string) (*Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load model: %w", err)
	}
	defer f.Close()

	m, err := Decode(f, EncodingFor(path))
	if err != nil {
		return nil, fmt.Errorf("load model %s: %w", path, err)
	}
	return m, nil
}

// Decode reads an artifact from r and builds the model it describes.
func Decode(r io.Reader, enc Encoding) (*Model, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("%w: empty artifact", ErrCorruptModel)
	}

	var a Artifact
	switch enc {
	case EncodingYAML:
		err = yaml.Unmarshal(data, &a)
	default:
		err = json.Unmarshal(data, &a)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptModel, err)
	}
	return Build(a)
}

// Encode writes the artifact with the given codec.
func Encode(w io.Writer, a Artifact, enc Encoding) error {
	if a.Format == "" {
		a.Format = FormatV1
	}
	switch enc {
	case EncodingYAML:
		e := yaml.NewEncoder(w)
		if err := e.Encode(a); err != nil {
			return err
		}
		return e.Close()
	default:
		e := json.NewEncoder(w)
		e.SetIndent("", "  ")
		return e.Encode(a)
	}
}

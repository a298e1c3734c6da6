// Package inference runs disease predictions: a local ONNX symptom
// classifier and the hosted Roboflow image detector.
package inference

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	ort "github.com/yalue/onnxruntime_go"

	"petcare/internal/config"
)

// ErrModelUnavailable is returned when a predictor is not configured or failed to load.
var ErrModelUnavailable = errors.New("model unavailable")

// SymptomPredictor maps observed symptoms to the most likely disease.
type SymptomPredictor interface {
	Predict(symptoms map[string]float64) (disease string, confidence float64, err error)
}

// SymptomModel is an exported scikit-learn classifier served by ONNX Runtime.
// The graph takes one float row of len(features) and emits one probability per label.
// Sessions reuse their tensors, so Predict is serialized.
type SymptomModel struct {
	mu       sync.Mutex
	session  *ort.AdvancedSession
	input    *ort.Tensor[float32]
	output   *ort.Tensor[float32]
	features []string
	labels   []string
}

var _ SymptomPredictor = (*SymptomModel)(nil)

// LoadSymptomModel initializes the runtime and loads the model with its
// feature and label lists (JSON string arrays).
func LoadSymptomModel(cfg config.SymptomModelConfig) (*SymptomModel, error) {
	if cfg.ModelPath == "" {
		return nil, fmt.Errorf("%w: model path not set", ErrModelUnavailable)
	}
	features, err := loadStringList(cfg.FeaturesPath)
	if err != nil {
		return nil, fmt.Errorf("load features: %w", err)
	}
	labels, err := loadStringList(cfg.LabelsPath)
	if err != nil {
		return nil, fmt.Errorf("load labels: %w", err)
	}

	if cfg.RuntimeLib != "" {
		ort.SetSharedLibraryPath(cfg.RuntimeLib)
	}
	if !ort.IsInitialized() {
		if err := ort.InitializeEnvironment(); err != nil {
			return nil, fmt.Errorf("failed to initialize ONNX runtime: %w", err)
		}
	}

	options, err := ort.NewSessionOptions()
	if err != nil {
		return nil, fmt.Errorf("failed to create session options: %w", err)
	}
	defer options.Destroy()

	input, err := ort.NewTensor(ort.NewShape(1, int64(len(features))), make([]float32, len(features)))
	if err != nil {
		return nil, fmt.Errorf("failed to create input tensor: %w", err)
	}
	output, err := ort.NewEmptyTensor[float32](ort.NewShape(1, int64(len(labels))))
	if err != nil {
		input.Destroy()
		return nil, fmt.Errorf("failed to create output tensor: %w", err)
	}

	session, err := ort.NewAdvancedSession(cfg.ModelPath,
		[]string{cfg.InputName},
		[]string{cfg.OutputName},
		[]ort.Value{input},
		[]ort.Value{output},
		options,
	)
	if err != nil {
		input.Destroy()
		output.Destroy()
		return nil, fmt.Errorf("failed to create session (check input/output names): %w", err)
	}

	return &SymptomModel{
		session:  session,
		input:    input,
		output:   output,
		features: features,
		labels:   labels,
	}, nil
}

// Features returns the symptom names the model understands, in input order.
func (m *SymptomModel) Features() []string {
	return m.features
}

func (m *SymptomModel) Predict(symptoms map[string]float64) (string, float64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	copy(m.input.GetData(), encodeSymptoms(m.features, symptoms))
	if err := m.session.Run(); err != nil {
		return "", 0, fmt.Errorf("failed to run inference: %w", err)
	}

	idx, p := argmax(m.output.GetData())
	if idx < 0 || idx >= len(m.labels) {
		return "", 0, fmt.Errorf("model returned no usable class")
	}
	return m.labels[idx], float64(p), nil
}

// Close releases the session and its tensors.
func (m *SymptomModel) Close() error {
	m.input.Destroy()
	m.output.Destroy()
	return m.session.Destroy()
}

// UnavailableSymptomModel is used when no model is configured.
type UnavailableSymptomModel struct{}

func (UnavailableSymptomModel) Predict(map[string]float64) (string, float64, error) {
	return "", 0, ErrModelUnavailable
}

// encodeSymptoms lays symptoms out in feature order. Unknown names are
// ignored, missing ones are 0 and values are clipped to [0, 1].
func encodeSymptoms(features []string, symptoms map[string]float64) []float32 {
	row := make([]float32, len(features))
	for i, name := range features {
		v := symptoms[name]
		switch {
		case v < 0:
			v = 0
		case v > 1:
			v = 1
		}
		row[i] = float32(v)
	}
	return row
}

func argmax(probs []float32) (int, float32) {
	if len(probs) == 0 {
		return -1, 0
	}
	idx, best := 0, probs[0]
	for i := 1; i < len(probs); i++ {
		if probs[i] > best {
			idx, best = i, probs[i]
		}
	}
	return idx, best
}

func loadStringList(path string) ([]string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var out []string
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%s: empty list", path)
	}
	return out, nil
}

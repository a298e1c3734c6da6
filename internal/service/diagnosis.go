package service

import (
	"context"
	"errors"
	"fmt"
	"math"

	"go.uber.org/zap"

	"petcare/internal/inference"
)

// SymptomDiagnosis is the most likely disease for a symptom set.
type SymptomDiagnosis struct {
	Disease    string  `json:"disease"`
	Confidence float64 `json:"confidence"`
}

// LocationDetails is the bounding box of a finding, in image pixels.
type LocationDetails struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// ImageFinding is one detected disease. Confidence is a percentage.
type ImageFinding struct {
	Disease         string          `json:"disease"`
	Confidence      float64         `json:"confidence"`
	LocationDetails LocationDetails `json:"location_details"`
}

// ImageDiagnosis is the response for a diagnosed photo.
type ImageDiagnosis struct {
	Message        string         `json:"message"`
	Predictions    []ImageFinding `json:"predictions"`
	OriginalWidth  int            `json:"original_width"`
	OriginalHeight int            `json:"original_height"`
	RawResponseID  string         `json:"raw_response_id"`
}

// DiagnosisService runs the symptom model and the image detector.
type DiagnosisService interface {
	Symptoms(ctx context.Context, symptoms map[string]float64) (*SymptomDiagnosis, error)
	CatImage(ctx context.Context, image []byte) (*ImageDiagnosis, error)
}

type diagnosisService struct {
	symptoms inference.SymptomPredictor
	images   inference.ImageDetector
	log      *zap.Logger
}

func NewDiagnosisService(symptoms inference.SymptomPredictor, images inference.ImageDetector, log *zap.Logger) DiagnosisService {
	return &diagnosisService{symptoms: symptoms, images: images, log: log}
}

func (s *diagnosisService) Symptoms(_ context.Context, symptoms map[string]float64) (*SymptomDiagnosis, error) {
	if len(symptoms) == 0 {
		return nil, validation("symptoms must be a non-empty object")
	}
	disease, confidence, err := s.symptoms.Predict(symptoms)
	if err != nil {
		if errors.Is(err, inference.ErrModelUnavailable) {
			return nil, fmt.Errorf("%w: symptom model is not loaded", ErrUnavailable)
		}
		return nil, err
	}
	return &SymptomDiagnosis{Disease: disease, Confidence: confidence}, nil
}

func (s *diagnosisService) CatImage(ctx context.Context, image []byte) (*ImageDiagnosis, error) {
	if len(image) == 0 {
		return nil, validation("image_file is required")
	}
	res, err := s.images.Detect(ctx, image)
	if err != nil {
		s.log.Error("image diagnosis failed", zap.Error(err))
		return nil, fmt.Errorf("%w: image inference failed", ErrUnavailable)
	}

	out := &ImageDiagnosis{
		Message:        "Diagnosis completed successfully.",
		Predictions:    make([]ImageFinding, 0, len(res.Predictions)),
		OriginalWidth:  res.Image.Width,
		OriginalHeight: res.Image.Height,
		RawResponseID:  res.Image.ID,
	}
	if len(res.Predictions) == 0 {
		out.Message = "No specific diseases were detected in the image with high confidence."
		return out, nil
	}
	for _, p := range res.Predictions {
		out.Predictions = append(out.Predictions, ImageFinding{
			Disease:    p.Class,
			Confidence: math.Round(p.Confidence*100*100) / 100,
			LocationDetails: LocationDetails{
				X: p.X, Y: p.Y, Width: p.Width, Height: p.Height,
			},
		})
	}
	return out, nil
}

package inference

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"petcare/internal/config"
)

// Detection is one bounding box returned by the image detector.
type Detection struct {
	Class      string  `json:"class"`
	Confidence float64 `json:"confidence"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
}

// ImageResult is the detector response for one image.
type ImageResult struct {
	Image struct {
		Width  int    `json:"width"`
		Height int    `json:"height"`
		ID     string `json:"id,omitempty"`
	} `json:"image"`
	Predictions []Detection `json:"predictions"`
}

// ImageDetector finds diseases in a photo.
type ImageDetector interface {
	Detect(ctx context.Context, image []byte) (*ImageResult, error)
}

// RoboflowClient calls the Roboflow hosted inference API.
type RoboflowClient struct {
	http    *http.Client
	baseURL string
	modelID string
	apiKey  string
}

var _ ImageDetector = (*RoboflowClient)(nil)

func NewRoboflow(cfg config.RoboflowConfig) *RoboflowClient {
	return &RoboflowClient{
		http: &http.Client{
			Timeout:   30 * time.Second,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		baseURL: cfg.InferenceURL,
		modelID: cfg.ModelID,
		apiKey:  cfg.APIKey,
	}
}

// Detect posts the base64 image to BASE/<model>?api_key=KEY.
func (c *RoboflowClient) Detect(ctx context.Context, image []byte) (*ImageResult, error) {
	if c.apiKey == "" || c.modelID == "" {
		return nil, fmt.Errorf("%w: roboflow is not configured", ErrModelUnavailable)
	}

	endpoint := c.baseURL + "/" + c.modelID + "?" + url.Values{"api_key": {c.apiKey}}.Encode()
	body := base64.StdEncoding.EncodeToString(image)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBufferString(body))
	if err != nil {
		return nil, fmt.Errorf("build roboflow request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("roboflow request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("roboflow returned %d: %s", resp.StatusCode, bytes.TrimSpace(msg))
	}

	var out ImageResult
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode roboflow response: %w", err)
	}
	return &out, nil
}

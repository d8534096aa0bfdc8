package predictor

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"energy_predictor/internal/features"

	"github.com/go-resty/resty/v2"
)

// RemoteModel delegates inference to an HTTP model server.
//
//	POST {base}/predict  {"columns":[...],"features":[...]} -> {"prediction":12.3}
//	GET  {base}/health   -> {"status":"ok","model_version":"v1"}
type RemoteModel struct {
	client  *resty.Client
	version string
}

type remoteRequest struct {
	Columns  []string  `json:"columns"`
	Features []float64 `json:"features"`
}

type remoteResponse struct {
	Prediction   *float64 `json:"prediction"`
	ModelVersion string   `json:"model_version,omitempty"`
	Status       string   `json:"status,omitempty"`
	Error        string   `json:"error,omitempty"`
}

// NewRemoteModel returns a client for the server at baseURL. It does not
// contact the server; see DialRemote.
func NewRemoteModel(baseURL string, timeout time.Duration) *RemoteModel {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")
	return &RemoteModel{client: client}
}

// DialRemote builds a RemoteModel and checks the server health endpoint.
// A 404 from the server wraps ErrModelNotFound.
func DialRemote(ctx context.Context, baseURL string, timeout time.Duration) (*RemoteModel, error) {
	m := NewRemoteModel(baseURL, timeout)

	var out remoteResponse
	resp, err := m.client.R().
		SetContext(ctx).
		SetResult(&out).
		SetError(&out).
		Get("/health")
	if err != nil {
		return nil, fmt.Errorf("reach model server %s: %w", baseURL, err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s", ErrModelNotFound, baseURL)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("model server %s unhealthy: %s", baseURL, errorText(resp, out))
	}

	m.version = out.ModelVersion
	return m, nil
}

// Version returns the model version reported by the server health check.
func (m *RemoteModel) Version() string { return m.version }

// Predict sends v to the server and returns its prediction.
func (m *RemoteModel) Predict(ctx context.Context, v features.Vector) (float64, error) {
	var out remoteResponse
	resp, err := m.client.R().
		SetContext(ctx).
		SetBody(remoteRequest{Columns: features.Columns(), Features: v.Values()}).
		SetResult(&out).
		SetError(&out).
		Post("/predict")
	if err != nil {
		return 0, fmt.Errorf("call model server: %w", err)
	}
	if resp.IsError() {
		return 0, fmt.Errorf("model server returned %d: %s", resp.StatusCode(), errorText(resp, out))
	}
	if out.Error != "" {
		return 0, errors.New(out.Error)
	}
	if out.Prediction == nil {
		return 0, errors.New("model server response has no prediction")
	}
	return *out.Prediction, nil
}

func errorText(resp *resty.Response, out remoteResponse) string {
	if out.Error != "" {
		return out.Error
	}
	return resp.Status()
}

package analyzer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"predictplay-be/internal/entity"
)

// HTTPProvider calls an external inference service over HTTP.
type HTTPProvider struct {
	BaseURL string
	client  *http.Client
}

func NewHTTPProvider(baseURL string, timeout time.Duration) ResultProvider {
	if baseURL == "" {
		baseURL = "http://localhost:8090"
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &HTTPProvider{
		BaseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

type analyzeRequest struct {
	Model     string                 `json:"model"`
	ImageUrl  string                 `json:"image_url,omitempty"`
	InputText string                 `json:"input_text,omitempty"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
}

func (p *HTTPProvider) Analyze(ctx context.Context, input Input) (*entity.AnalysisResult, error) {
	jsonBody, err := json.Marshal(analyzeRequest{
		Model:     input.ModelSlug,
		ImageUrl:  input.ImageUrl,
		InputText: input.InputText,
		Metadata:  input.Metadata,
	})
	if err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/v1/analyze", p.BaseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("analyzer service error: %s", string(bodyBytes))
	}

	var result entity.AnalysisResult
	if err := json.Unmarshal(bodyBytes, &result); err != nil {
		return nil, err
	}
	if err := validateResult(&result); err != nil {
		return nil, err
	}
	return &result, nil
}

// validateResult enforces the provider contract before the result is persisted.
func validateResult(r *entity.AnalysisResult) error {
	if r.Confidence < 0 || r.Confidence > 1 {
		return fmt.Errorf("confidence %.3f outside [0,1]", r.Confidence)
	}
	if r.ValueRating < 1 || r.ValueRating > 5 {
		return fmt.Errorf("value rating %d outside [1,5]", r.ValueRating)
	}
	switch r.RiskTier {
	case entity.RiskTierLow, entity.RiskTierModerate, entity.RiskTierHigh:
	default:
		return fmt.Errorf("unknown risk tier %q", r.RiskTier)
	}
	return nil
}

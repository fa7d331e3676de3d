package aigen

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/youruser/suitcasegen/internal/catalog"
)

var ErrEmptyPrompt = errors.New("prompt is empty")

// APIError is a non-200 answer from the image API.
type APIError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("image API %s: %s", e.Status, e.Body)
}

type Options struct {
	APIURL     string
	Token      string
	HTTPClient *http.Client
	Logger     *zap.Logger
}

// Client talks to a hosted text-to-image inference endpoint that answers a
// JSON {"inputs": prompt} POST with raw image bytes.
type Client struct {
	apiURL     string
	token      string
	httpClient *http.Client
	logger     *zap.Logger
}

func New(opts Options) *Client {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		apiURL:     strings.TrimSpace(opts.APIURL),
		token:      strings.TrimSpace(opts.Token),
		httpClient: opts.HTTPClient,
		logger:     logger,
	}
}

// Prompt describes the product photo wanted for p.
func Prompt(p catalog.Product) string {
	return fmt.Sprintf("%s %s suitcase with handle, studio photo, white background, product photo, no text",
		p.ColorOrDefault(), strings.TrimSpace(p.Size))
}

type inferenceRequest struct {
	Inputs string `json:"inputs"`
}

// Generate returns the image bytes the API produced for prompt.
func (c *Client) Generate(ctx context.Context, prompt string) ([]byte, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return nil, ErrEmptyPrompt
	}
	if c.httpClient == nil {
		return nil, errors.New("http client is nil")
	}

	body, err := json.Marshal(inferenceRequest{Inputs: prompt})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       strings.TrimSpace(string(raw)),
		}
	}

	c.logger.Debug("image generated", zap.String("prompt", prompt), zap.Int("bytes", len(raw)))
	return raw, nil
}

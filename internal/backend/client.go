package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
)

const (
	DefaultBaseURL = "http://localhost:8000"

	PathGenerateCode  = "/generate"
	PathGenerateTests = "/api/v1/generate-tests"
	PathGenerateDocs  = "/api/v1/generate-docs"
	PathQualityReport = "/api/v1/quality-report"
)

// Client talks to the generation backend. It performs exactly one request per
// call: no retries and no client-side timeout, so a hung backend only ends
// when ctx does.
type Client struct {
	mu         sync.RWMutex
	baseURL    string
	httpClient *http.Client
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    normalizeBaseURL(baseURL),
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetBaseURL points subsequent calls at a different backend.
func (c *Client) SetBaseURL(baseURL string) {
	c.mu.Lock()
	c.baseURL = normalizeBaseURL(baseURL)
	c.mu.Unlock()
}

func (c *Client) BaseURL() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.baseURL
}

func normalizeBaseURL(raw string) string {
	raw = strings.TrimRight(strings.TrimSpace(raw), "/")
	if raw == "" {
		return DefaultBaseURL
	}
	return raw
}

func (c *Client) GenerateCode(ctx context.Context, req GenerateCodeRequest) (CodeOutcome, error) {
	var resp generateCodeResponse
	if err := c.post(ctx, PathGenerateCode, req, &resp); err != nil {
		return CodeOutcome{}, err
	}
	return adaptCode(resp), nil
}

func (c *Client) GenerateTests(ctx context.Context, req GenerateTestsRequest) (TestsOutcome, error) {
	var resp generateTestsResponse
	if err := c.post(ctx, PathGenerateTests, req, &resp); err != nil {
		return TestsOutcome{}, err
	}
	return adaptTests(resp), nil
}

func (c *Client) GenerateDocs(ctx context.Context, req GenerateDocsRequest) (DocsOutcome, error) {
	var resp generateDocsResponse
	if err := c.post(ctx, PathGenerateDocs, req, &resp); err != nil {
		return DocsOutcome{}, err
	}
	return adaptDocs(resp), nil
}

func (c *Client) QualityReport(ctx context.Context, req QualityReportRequest) (QualityOutcome, error) {
	var resp qualityReportResponse
	if err := c.post(ctx, PathQualityReport, req, &resp); err != nil {
		return QualityOutcome{}, err
	}
	return adaptQuality(resp), nil
}

func (c *Client) post(ctx context.Context, path string, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal %s request: %w", path, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL()+path, bytes.NewReader(payload))
	if err != nil {
		return &TransportError{Path: path, Err: err}
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return &TransportError{Path: path, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return &TransportError{Path: path, Status: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &TransportError{Path: path, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

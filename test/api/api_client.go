/*
Copyright 2024-2025 the Unikorn Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

//nolint:revive // naming conventions acceptable in test code
package api

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/onsi/ginkgo/v2"
	"github.com/rs/zerolog"

	"github.com/unikorn-cloud/placeholder-taf/pkg/constants"
	"github.com/unikorn-cloud/placeholder-taf/pkg/logger"
)

type APIClient struct {
	baseURL string
	client  *http.Client
	config  *TestConfig
	logger  zerolog.Logger
}

var _ Requester = &APIClient{}

func NewAPIClient(baseURL string) (*APIClient, error) {
	config, err := LoadTestConfig()
	if err != nil {
		return nil, err
	}

	if baseURL == "" {
		baseURL = config.BaseURL
	}

	return newAPIClientWithConfig(config, baseURL), nil
}

func NewAPIClientWithConfig(config *TestConfig) *APIClient {
	return newAPIClientWithConfig(config, config.BaseURL)
}

// common constructor logic.
func newAPIClientWithConfig(config *TestConfig, baseURL string) *APIClient {
	return &APIClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client: &http.Client{
			Timeout: config.RequestTimeout,
		},
		config: config,
		logger: logger.New(logger.Options{
			Level:  config.LogLevel,
			Pretty: config.LogPretty,
			Output: ginkgo.GinkgoWriter,
		}),
	}
}

// BaseURL returns the API root all paths are resolved against.
func (c *APIClient) BaseURL() string {
	return c.baseURL
}

// Config returns the configuration the client was built with.
func (c *APIClient) Config() *TestConfig {
	return c.config
}

// Logger returns the client's logger.
func (c *APIClient) Logger() zerolog.Logger {
	return c.logger
}

// generateTraceID creates a new W3C trace ID.
// we are using this to create a new trace ID for each request so if an error occurs we can find the request in the logs.
func generateTraceID() string {
	buf := make([]byte, 16)
	_, _ = rand.Read(buf)

	return hex.EncodeToString(buf)
}

// generateSpanID creates a new W3C span ID.
func generateSpanID() string {
	buf := make([]byte, 8)
	_, _ = rand.Read(buf)

	return hex.EncodeToString(buf)
}

// createTraceParent creates a W3C traceparent header value.
func createTraceParent() string {
	traceID := generateTraceID()
	spanID := generateSpanID()

	return fmt.Sprintf("00-%s-%s-01", traceID, spanID)
}

// extractTraceID extracts the trace ID from a traceparent header value.
func extractTraceID(traceParent string) string {
	parts := strings.Split(traceParent, "-")
	if len(parts) >= 2 {
		return parts[1]
	}

	return traceParent
}

// Request sends a request and reads the whole response.  Transport and
// encoding failures are returned as errors, any status is a valid response.
func (c *APIClient) Request(ctx context.Context, method, path string, body any) (*ValidatableResponse, error) {
	fullURL := c.baseURL + path

	var reader io.Reader

	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshaling request body: %w", err)
		}

		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reader)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	// Add W3C Trace Context headers
	traceParent := createTraceParent()
	req.Header.Set("Traceparent", traceParent)
	req.Header.Set("Tracestate", "test-automation=ginkgo")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", constants.VersionString())

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	log := c.logger.With().Str("method", method).Str("path", path).Str("trace_id", extractTraceID(traceParent)).Logger()

	start := time.Now()
	resp, err := c.client.Do(req)
	duration := time.Since(start)

	if err != nil {
		log.Error().Err(err).Dur("duration", duration).Msg("http request failed")
		return nil, fmt.Errorf("http request failed: %w", err)
	}

	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error().Err(err).Int("status", resp.StatusCode).Dur("duration", duration).Msg("reading response body")
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if c.config.LogRequests {
		log.Debug().Int("status", resp.StatusCode).Dur("duration", duration).Msg("request complete")
	}

	if c.config.LogResponses && len(respBody) > 0 {
		log.Debug().RawJSON("body", jsonOrString(respBody)).Msg("response body")
	}

	response := &ValidatableResponse{
		Method:      method,
		Path:        path,
		StatusCode:  resp.StatusCode,
		Header:      resp.Header,
		Body:        respBody,
		TraceParent: traceParent,
		strict:      c.config.StrictDecoding,
	}

	return response, nil
}

// jsonOrString returns the body unchanged if it is valid JSON, otherwise
// quoted so it can be embedded in a structured log line.
func jsonOrString(body []byte) []byte {
	if json.Valid(body) {
		return body
	}

	quoted, _ := json.Marshal(string(body))

	return quoted
}

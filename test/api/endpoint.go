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

package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"github.com/rs/zerolog"
)

var (
	// ErrPathParameters is raised when a path template's placeholders and
	// the supplied parameters don't line up.
	ErrPathParameters = errors.New("path parameter mismatch")

	placeholderRegex = regexp.MustCompile(`\{[^{}/]+\}`)
)

// expandPath substitutes each {placeholder} in the template, in order, with
// the path escaped string form of the corresponding parameter.
func expandPath(template string, params ...any) (string, error) {
	matches := placeholderRegex.FindAllStringIndex(template, -1)
	if len(matches) != len(params) {
		return "", fmt.Errorf("%w: %s has %d placeholders, got %d parameters", ErrPathParameters, template, len(matches), len(params))
	}

	var builder strings.Builder

	last := 0

	for i, match := range matches {
		builder.WriteString(template[last:match[0]])
		builder.WriteString(url.PathEscape(fmt.Sprint(params[i])))

		last = match[1]
	}

	builder.WriteString(template[last:])

	return builder.String(), nil
}

// EndpointOption customises a WebEndpoint.
type EndpointOption func(*WebEndpoint)

// WithLogger overrides the endpoint logger.
func WithLogger(logger zerolog.Logger) EndpointOption {
	return func(e *WebEndpoint) {
		e.logger = logger
	}
}

// WithSchemaValidation toggles response schema validation before decoding.
func WithSchemaValidation(enabled bool) EndpointOption {
	return func(e *WebEndpoint) {
		e.validateSchemas = enabled
	}
}

// WebEndpoint provides the HTTP verbs over a shared Requester.
type WebEndpoint struct {
	requester       Requester
	logger          zerolog.Logger
	validateSchemas bool
}

// NewWebEndpoint returns a new endpoint.  When the requester is an
// APIClient its logger and schema validation setting are inherited.
func NewWebEndpoint(requester Requester, options ...EndpointOption) WebEndpoint {
	e := WebEndpoint{
		requester: requester,
		logger:    zerolog.Nop(),
	}

	if client, ok := requester.(*APIClient); ok {
		e.logger = client.logger
		e.validateSchemas = client.config.ValidateSchemas
	}

	for _, option := range options {
		option(&e)
	}

	return e
}

func (e *WebEndpoint) send(ctx context.Context, method, template string, body any, params []any) (*ValidatableResponse, error) {
	path, err := expandPath(template, params...)
	if err != nil {
		return nil, err
	}

	return e.requester.Request(ctx, method, path, body)
}

// Post sends a POST request to the expanded template.
func (e *WebEndpoint) Post(ctx context.Context, template string, body any, params ...any) (*ValidatableResponse, error) {
	return e.send(ctx, http.MethodPost, template, body, params)
}

// Put sends a PUT request to the expanded template.
func (e *WebEndpoint) Put(ctx context.Context, template string, body any, params ...any) (*ValidatableResponse, error) {
	return e.send(ctx, http.MethodPut, template, body, params)
}

// Get sends a GET request to the expanded template.
func (e *WebEndpoint) Get(ctx context.Context, template string, params ...any) (*ValidatableResponse, error) {
	return e.send(ctx, http.MethodGet, template, nil, params)
}

// Delete sends a DELETE request to the expanded template.
func (e *WebEndpoint) Delete(ctx context.Context, template string, params ...any) (*ValidatableResponse, error) {
	return e.send(ctx, http.MethodDelete, template, nil, params)
}

// assert checks the response status, logging any mismatch.
func (e *WebEndpoint) assert(response *ValidatableResponse, expected int) error {
	if err := response.AssertStatus(expected); err != nil {
		e.logger.Warn().
			Str("method", response.Method).
			Str("path", response.Path).
			Int("expected", expected).
			Int("status", response.StatusCode).
			Str("trace_id", response.TraceID()).
			Msg("unexpected status")

		return err
	}

	return nil
}

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
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrDecode is raised when a response body cannot be decoded into the
	// requested representation.
	ErrDecode = errors.New("response decode failed")

	// ErrSchema is raised when a response body does not conform to the
	// API schema.
	ErrSchema = errors.New("response schema mismatch")
)

// StatusError is raised when the response status differs from the one the
// caller expected.
type StatusError struct {
	Method   string
	Path     string
	Expected int
	Actual   int
	Body     string
	TraceID  string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("[%s %s] unexpected status code: expected %d, got %d, body: %s (trace ID: %s)", e.Method, e.Path, e.Expected, e.Actual, e.Body, e.TraceID)
}

// ValidatableResponse is a fully read HTTP response that can be checked
// for status and decoded on demand.
type ValidatableResponse struct {
	Method      string
	Path        string
	StatusCode  int
	Header      http.Header
	Body        []byte
	TraceParent string

	// strict rejects unknown fields on decode.
	strict bool
}

// TraceID returns the W3C trace ID sent with the request.
func (r *ValidatableResponse) TraceID() string {
	return extractTraceID(r.TraceParent)
}

// AssertStatus checks the response status.
func (r *ValidatableResponse) AssertStatus(expected int) error {
	if r.StatusCode == expected {
		return nil
	}

	return &StatusError{
		Method:   r.Method,
		Path:     r.Path,
		Expected: expected,
		Actual:   r.StatusCode,
		Body:     string(r.Body),
		TraceID:  r.TraceID(),
	}
}

// Extract decodes the JSON response body into v.
func (r *ValidatableResponse) Extract(v any) error {
	decoder := json.NewDecoder(bytes.NewReader(r.Body))

	if r.strict {
		decoder.DisallowUnknownFields()
	}

	if err := decoder.Decode(v); err != nil {
		return fmt.Errorf("%w: [%s %s] into %T: %w", ErrDecode, r.Method, r.Path, v, err)
	}

	return nil
}

// Extract decodes the JSON response body into a new T.
func Extract[T any](r *ValidatableResponse) (T, error) {
	var v T

	if err := r.Extract(&v); err != nil {
		return v, err
	}

	return v, nil
}

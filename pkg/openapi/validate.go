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

package openapi

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
)

// Component schema names.
const (
	SchemaUser     = "user"
	SchemaUsers    = "users"
	SchemaComment  = "comment"
	SchemaComments = "comments"
	SchemaError    = "error"
)

var (
	// ErrSchemaNotFound is raised when a named component schema is missing.
	ErrSchemaNotFound = errors.New("schema not found")

	// ErrValidation is raised when a payload does not conform to its schema.
	ErrValidation = errors.New("schema validation failed")
)

//go:embed server.spec.yaml
var spec []byte

//nolint:gochecknoglobals
var loadSchema = sync.OnceValues(func() (*openapi3.T, error) {
	doc, err := GetSwagger()
	if err != nil {
		return nil, fmt.Errorf("loading openapi schema: %w", err)
	}

	if err := doc.Validate(context.Background()); err != nil {
		return nil, fmt.Errorf("validating openapi schema: %w", err)
	}

	return doc, nil
})

// Schema returns the parsed and validated OpenAPI document.
func Schema() (*openapi3.T, error) {
	return loadSchema()
}

// Spec returns the OpenAPI document as written.
func Spec() []byte {
	return spec
}

// ValidateJSON checks a JSON payload against the named component schema.
func ValidateJSON(name string, data []byte) error {
	doc, err := Schema()
	if err != nil {
		return err
	}

	ref, ok := doc.Components.Schemas[name]
	if !ok || ref.Value == nil {
		return fmt.Errorf("%w: %s", ErrSchemaNotFound, name)
	}

	var value any

	if err := json.Unmarshal(data, &value); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrValidation, name, err)
	}

	if err := ref.Value.VisitJSON(value); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrValidation, name, err)
	}

	return nil
}

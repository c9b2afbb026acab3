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
	"fmt"
	"net/http"

	"github.com/unikorn-cloud/placeholder-taf/pkg/openapi"
)

// Resource provides create, update, get, list and delete operations for a
// single REST resource represented by T.
type Resource[T any] struct {
	WebEndpoint

	// noun names the resource in log lines e.g. "user".
	noun string

	// collectionPath addresses all resources, itemPath a single one.
	collectionPath string
	itemPath       string

	// schema and listSchema name the OpenAPI components for a single
	// resource and a list respectively.
	schema     string
	listSchema string
}

func newResource[T any](endpoint WebEndpoint, noun, collectionPath, itemPath, schema, listSchema string) *Resource[T] {
	return &Resource[T]{
		WebEndpoint:    endpoint,
		noun:           noun,
		collectionPath: collectionPath,
		itemPath:       itemPath,
		schema:         schema,
		listSchema:     listSchema,
	}
}

// decode optionally validates the body against the schema before
// extracting it into v.
func (r *Resource[T]) decode(response *ValidatableResponse, schema string, v any) error {
	if r.validateSchemas {
		if err := openapi.ValidateJSON(schema, response.Body); err != nil {
			return fmt.Errorf("%w: [%s %s]: %w", ErrSchema, response.Method, response.Path, err)
		}
	}

	return response.Extract(v)
}

func (r *Resource[T]) decodeOne(response *ValidatableResponse) (*T, error) {
	var result T

	if err := r.decode(response, r.schema, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// Create creates a resource, expecting 201 Created, and returns the server's
// representation including its assigned ID.
func (r *Resource[T]) Create(ctx context.Context, representation *T) (*T, error) {
	response, err := r.CreateWithStatus(ctx, representation, http.StatusCreated)
	if err != nil {
		return nil, err
	}

	return r.decodeOne(response)
}

// CreateWithStatus creates a resource, expecting the given status.
func (r *Resource[T]) CreateWithStatus(ctx context.Context, representation *T, status int) (*ValidatableResponse, error) {
	r.logger.Info().Str("operation", "create").Msgf("Create new %s", r.noun)

	response, err := r.Post(ctx, r.collectionPath, representation)
	if err != nil {
		return nil, err
	}

	if err := r.assert(response, status); err != nil {
		return nil, err
	}

	return response, nil
}

// Update replaces a resource, expecting 200 OK, and returns the updated
// representation.
func (r *Resource[T]) Update(ctx context.Context, id int, representation *T) (*T, error) {
	response, err := r.UpdateWithStatus(ctx, representation, id, http.StatusOK)
	if err != nil {
		return nil, err
	}

	return r.decodeOne(response)
}

// UpdateWithStatus replaces a resource, expecting the given status.  The
// id is any value with a string form so malformed IDs can be sent.
func (r *Resource[T]) UpdateWithStatus(ctx context.Context, representation *T, id any, status int) (*ValidatableResponse, error) {
	r.logger.Info().Str("operation", "update").Interface("id", id).Msgf("Update %s by id [%v]", r.noun, id)

	response, err := r.Put(ctx, r.itemPath, representation, id)
	if err != nil {
		return nil, err
	}

	if err := r.assert(response, status); err != nil {
		return nil, err
	}

	return response, nil
}

// GetByID reads a resource, expecting 200 OK.
func (r *Resource[T]) GetByID(ctx context.Context, id int) (*T, error) {
	response, err := r.GetByIDWithStatus(ctx, id, http.StatusOK)
	if err != nil {
		return nil, err
	}

	return r.decodeOne(response)
}

// GetByIDWithStatus reads a resource, expecting the given status.
func (r *Resource[T]) GetByIDWithStatus(ctx context.Context, id any, status int) (*ValidatableResponse, error) {
	r.logger.Info().Str("operation", "get").Interface("id", id).Msgf("Get %s by id [%v]", r.noun, id)

	response, err := r.Get(ctx, r.itemPath, id)
	if err != nil {
		return nil, err
	}

	if err := r.assert(response, status); err != nil {
		return nil, err
	}

	return response, nil
}

// GetAll lists the whole collection, expecting 200 OK.  Ordering is
// whatever the server returns.
func (r *Resource[T]) GetAll(ctx context.Context) ([]T, error) {
	response, err := r.GetAllWithStatus(ctx, http.StatusOK)
	if err != nil {
		return nil, err
	}

	var result []T

	if err := r.decode(response, r.listSchema, &result); err != nil {
		return nil, err
	}

	return result, nil
}

// GetAllWithStatus lists the whole collection, expecting the given status.
func (r *Resource[T]) GetAllWithStatus(ctx context.Context, status int) (*ValidatableResponse, error) {
	r.logger.Info().Str("operation", "list").Msgf("Get all %ss", r.noun)

	response, err := r.Get(ctx, r.collectionPath)
	if err != nil {
		return nil, err
	}

	if err := r.assert(response, status); err != nil {
		return nil, err
	}

	return response, nil
}

// Delete removes a resource, expecting 200 OK.
func (r *Resource[T]) Delete(ctx context.Context, id int) error {
	_, err := r.DeleteWithStatus(ctx, id, http.StatusOK)

	return err
}

// DeleteWithStatus removes a resource, expecting the given status.
func (r *Resource[T]) DeleteWithStatus(ctx context.Context, id any, status int) (*ValidatableResponse, error) {
	r.logger.Info().Str("operation", "delete").Interface("id", id).Msgf("Delete %s by id [%v]", r.noun, id)

	response, err := r.WebEndpoint.Delete(ctx, r.itemPath, id)
	if err != nil {
		return nil, err
	}

	if err := r.assert(response, status); err != nil {
		return nil, err
	}

	return response, nil
}

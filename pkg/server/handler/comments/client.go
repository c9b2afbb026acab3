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

package comments

import (
	"context"
	goerrors "errors"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/unikorn-cloud/core/pkg/server/errors"
	"github.com/unikorn-cloud/placeholder-taf/pkg/openapi"
	"github.com/unikorn-cloud/placeholder-taf/pkg/store"
)

// Client wraps up comment related management handling.
type Client struct {
	// store holds all comments.
	store *store.Store[openapi.Comment]

	// validate performs semantic checks beyond the schema.
	validate *validator.Validate
}

// NewStore returns an empty comment store.
func NewStore() *store.Store[openapi.Comment] {
	return store.New(func(comment *openapi.Comment, id int) {
		comment.ID = id
	})
}

// NewClient returns a new client with required parameters.
func NewClient(store *store.Store[openapi.Comment], validate *validator.Validate) *Client {
	return &Client{
		store:    store,
		validate: validate,
	}
}

func convertError(err error) error {
	if goerrors.Is(err, store.ErrNotFound) {
		return errors.HTTPNotFound().WithError(err)
	}

	return err
}

func (c *Client) check(request *openapi.Comment) error {
	if err := c.validate.Struct(request); err != nil {
		return errors.OAuth2InvalidRequest("comment failed validation").WithError(err)
	}

	return nil
}

// List returns all comments.
func (c *Client) List(ctx context.Context) openapi.Comments {
	return c.store.List()
}

// Get returns a single comment.
func (c *Client) Get(ctx context.Context, commentID openapi.CommentIDParameter) (*openapi.Comment, error) {
	comment, err := c.store.Get(commentID)
	if err != nil {
		return nil, convertError(err)
	}

	return &comment, nil
}

// Create validates and stores a new comment.
func (c *Client) Create(ctx context.Context, request *openapi.Comment) (*openapi.Comment, error) {
	if err := c.check(request); err != nil {
		return nil, err
	}

	comment := c.store.Create(*request)

	zerolog.Ctx(ctx).Info().Int("id", comment.ID).Msg("comment created")

	return &comment, nil
}

// Update validates and replaces an existing comment.
func (c *Client) Update(ctx context.Context, commentID openapi.CommentIDParameter, request *openapi.Comment) (*openapi.Comment, error) {
	if err := c.check(request); err != nil {
		return nil, err
	}

	comment, err := c.store.Update(commentID, *request)
	if err != nil {
		return nil, convertError(err)
	}

	zerolog.Ctx(ctx).Info().Int("id", comment.ID).Msg("comment updated")

	return &comment, nil
}

// Delete removes a comment.
func (c *Client) Delete(ctx context.Context, commentID openapi.CommentIDParameter) error {
	if err := c.store.Delete(commentID); err != nil {
		return convertError(err)
	}

	zerolog.Ctx(ctx).Info().Int("id", commentID).Msg("comment deleted")

	return nil
}

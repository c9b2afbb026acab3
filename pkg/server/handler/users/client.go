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

package users

import (
	"context"
	goerrors "errors"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/unikorn-cloud/core/pkg/server/errors"
	"github.com/unikorn-cloud/placeholder-taf/pkg/openapi"
	"github.com/unikorn-cloud/placeholder-taf/pkg/store"
)

// Client wraps up user related management handling.
type Client struct {
	// store holds all users.
	store *store.Store[openapi.User]

	// validate performs semantic checks beyond the schema.
	validate *validator.Validate
}

// NewStore returns an empty user store.
func NewStore() *store.Store[openapi.User] {
	return store.New(func(user *openapi.User, id int) {
		user.ID = id
	})
}

// NewClient returns a new client with required parameters.
func NewClient(store *store.Store[openapi.User], validate *validator.Validate) *Client {
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

func (c *Client) check(request *openapi.User) error {
	if err := c.validate.Struct(request); err != nil {
		return errors.OAuth2InvalidRequest("user failed validation").WithError(err)
	}

	return nil
}

// List returns all users.
func (c *Client) List(ctx context.Context) openapi.Users {
	return c.store.List()
}

// Get returns a single user.
func (c *Client) Get(ctx context.Context, userID openapi.UserIDParameter) (*openapi.User, error) {
	user, err := c.store.Get(userID)
	if err != nil {
		return nil, convertError(err)
	}

	return &user, nil
}

// Create validates and stores a new user.
func (c *Client) Create(ctx context.Context, request *openapi.User) (*openapi.User, error) {
	if err := c.check(request); err != nil {
		return nil, err
	}

	user := c.store.Create(*request)

	zerolog.Ctx(ctx).Info().Int("id", user.ID).Msg("user created")

	return &user, nil
}

// Update validates and replaces an existing user.
func (c *Client) Update(ctx context.Context, userID openapi.UserIDParameter, request *openapi.User) (*openapi.User, error) {
	if err := c.check(request); err != nil {
		return nil, err
	}

	user, err := c.store.Update(userID, *request)
	if err != nil {
		return nil, convertError(err)
	}

	zerolog.Ctx(ctx).Info().Int("id", user.ID).Msg("user updated")

	return &user, nil
}

// Delete removes a user.
func (c *Client) Delete(ctx context.Context, userID openapi.UserIDParameter) error {
	if err := c.store.Delete(userID); err != nil {
		return convertError(err)
	}

	zerolog.Ctx(ctx).Info().Int("id", userID).Msg("user deleted")

	return nil
}

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
	"github.com/unikorn-cloud/placeholder-taf/pkg/openapi"
)

// UserEndpoint creates, updates and reads users.
type UserEndpoint struct {
	*Resource[openapi.User]
}

// NewUserEndpoint returns a users client over the requester.
func NewUserEndpoint(requester Requester, options ...EndpointOption) *UserEndpoint {
	endpoint := NewWebEndpoint(requester, options...)

	return &UserEndpoint{
		Resource: newResource[openapi.User](endpoint, "User", UsersPath, UserPath, openapi.SchemaUser, openapi.SchemaUsers),
	}
}

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

// CommentEndpoint creates, updates and reads comments.
type CommentEndpoint struct {
	*Resource[openapi.Comment]
}

// NewCommentEndpoint returns a comments client over the requester.
func NewCommentEndpoint(requester Requester, options ...EndpointOption) *CommentEndpoint {
	endpoint := NewWebEndpoint(requester, options...)

	return &CommentEndpoint{
		Resource: newResource[openapi.Comment](endpoint, "Comment", CommentsPath, CommentPath, openapi.SchemaComment, openapi.SchemaComments),
	}
}

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
)

//go:generate go tool mockgen -source=requester.go -destination=mock/requester.go -package=mock

// Requester performs a single HTTP exchange against the API under test.
// The path is relative to the API base URL and the body, when not nil, is
// encoded as JSON.  The response status is not checked.
type Requester interface {
	Request(ctx context.Context, method, path string, body any) (*ValidatableResponse, error)
}

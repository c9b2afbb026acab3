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

// Package api provides a test automation client for the placeholder
// users and comments API.
//
// # Structure
//
// APIClient is the shared request specification: base URL, transport
// timeouts, logging and decoding behaviour.  It is immutable once built and
// may be shared between concurrently running specs.
//
// WebEndpoint layers path template expansion and the HTTP verbs over any
// Requester.  Resource adds typed create, update, get and list operations for
// a single representation, each in two forms:
//
//   - A strict form that asserts the default success status and decodes the
//     body e.g. Create asserts 201 Created and returns the created user.
//   - A flexible form suffixed WithStatus that asserts a caller supplied
//     status and returns the raw ValidatableResponse without decoding it, for
//     negative testing.
//
// Status mismatches fail fast with a *StatusError carrying both codes, the
// response body and the W3C trace ID sent with the request.  Nothing is
// retried.
//
// # Separate Client Implementation
//
// The client deliberately mirrors the wire format with hand written code
// rather than a generated client.  Any legitimate change to the API must have
// a compensating change here, which makes API evolution explicit and
// reviewable.
package api

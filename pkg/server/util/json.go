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

package util

import (
	"bytes"
	"io"
	"net/http"

	"github.com/unikorn-cloud/core/pkg/server/errors"
	coreutil "github.com/unikorn-cloud/core/pkg/server/util"
	"github.com/unikorn-cloud/placeholder-taf/pkg/openapi"
)

// ReadJSONBody checks the request body against the named schema before
// decoding it into v.  All failures are reported as invalid requests.
func ReadJSONBody(r *http.Request, schema string, v any) error {
	data, err := io.ReadAll(r.Body)
	if err != nil {
		return errors.OAuth2InvalidRequest("unable to read request body").WithError(err)
	}

	if err := openapi.ValidateJSON(schema, data); err != nil {
		return errors.OAuth2InvalidRequest("request body failed schema validation").WithError(err)
	}

	r.Body = io.NopCloser(bytes.NewReader(data))

	if err := coreutil.ReadJSONBody(r, v); err != nil {
		return errors.OAuth2InvalidRequest("unable to decode request body").WithError(err)
	}

	return nil
}

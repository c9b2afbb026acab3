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

//nolint:testpackage,revive // test package in suites is standard for these tests, dot imports standard for Ginkgo
package suites

import (
	"errors"
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/unikorn-cloud/placeholder-taf/pkg/openapi"
	"github.com/unikorn-cloud/placeholder-taf/test/api"
)

var _ = Describe("Error Handling and Edge Cases", func() {
	Context("When the API returns an unexpected status", func() {
		It("should report the expected and actual codes with a trace ID", func() {
			_, err := users.GetByID(ctx, 999999)
			Expect(err).To(HaveOccurred())

			var statusError *api.StatusError

			Expect(errors.As(err, &statusError)).To(BeTrue())
			Expect(statusError.Expected).To(Equal(http.StatusOK))
			Expect(statusError.Actual).To(Equal(http.StatusNotFound))
			Expect(statusError.TraceID).NotTo(BeEmpty())
		})
	})

	Context("When addressing resources with malformed identifiers", func() {
		It("should reject non-numeric IDs", func() {
			response, err := users.GetByIDWithStatus(ctx, "abc", http.StatusBadRequest)
			Expect(err).NotTo(HaveOccurred())
			Expect(response.Path).To(Equal("/users/abc"))

			payload := api.NewCommentPayload().Build()

			_, err = comments.UpdateWithStatus(ctx, &payload, "abc", http.StatusBadRequest)
			Expect(err).NotTo(HaveOccurred())

			_, err = comments.DeleteWithStatus(ctx, "not-a-number", http.StatusBadRequest)
			Expect(err).NotTo(HaveOccurred())
		})

		It("should refuse templates with the wrong number of parameters", func() {
			endpoint := api.NewWebEndpoint(client)

			_, err := endpoint.Get(ctx, api.UserPath)
			Expect(err).To(MatchError(api.ErrPathParameters))
		})
	})

	Context("When using unsupported methods", func() {
		It("should return method not allowed", func() {
			endpoint := api.NewWebEndpoint(client)

			response, err := endpoint.Put(ctx, api.UsersPath, api.NewUserPayload().Build())
			Expect(err).NotTo(HaveOccurred())
			Expect(response.StatusCode).To(Equal(http.StatusMethodNotAllowed))
		})
	})

	Context("When operating on deleted resources", func() {
		It("should return not found for updates", func() {
			payload := api.NewUserPayload().Build()

			user, err := users.Create(ctx, &payload)
			Expect(err).NotTo(HaveOccurred())
			Expect(users.Delete(ctx, user.ID)).To(Succeed())

			response, err := users.UpdateWithStatus(ctx, user, user.ID, http.StatusNotFound)
			Expect(err).NotTo(HaveOccurred())

			apiError, err := api.Extract[openapi.Error](response)
			Expect(err).NotTo(HaveOccurred())
			Expect(apiError.Error).To(Equal("not_found"))
		})
	})
})

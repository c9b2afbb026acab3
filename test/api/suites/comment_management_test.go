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
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/unikorn-cloud/placeholder-taf/test/api"
)

var _ = Describe("Comment Management", func() {
	Context("When creating a new comment", func() {
		Describe("Given a valid comment", func() {
			It("should successfully create the comment", func() {
				payload := api.NewCommentPayload().
					WithPostID(1).
					WithBody("laudantium enim quasi est quidem magnam voluptate ipsam eos").
					Build()

				comment := api.CreateCommentWithCleanup(ctx, comments, payload)

				expected := payload
				expected.ID = comment.ID
				Expect(*comment).To(Equal(expected))
			})
		})

		Describe("Given an invalid comment", func() {
			It("should reject a comment without a body", func() {
				payload := api.NewCommentPayload().WithBody("").Build()

				response, err := comments.CreateWithStatus(ctx, &payload, http.StatusBadRequest)
				Expect(err).NotTo(HaveOccurred())
				Expect(response.StatusCode).To(Equal(http.StatusBadRequest))
			})

			It("should reject a comment with a malformed email", func() {
				payload := api.NewCommentPayload().WithEmail("nobody").Build()

				_, err := comments.CreateWithStatus(ctx, &payload, http.StatusBadRequest)
				Expect(err).NotTo(HaveOccurred())
			})
		})
	})

	Context("When listing comments", func() {
		It("should include created comments", func() {
			first := api.CreateCommentWithCleanup(ctx, comments, api.NewCommentPayload().Build())
			second := api.CreateCommentWithCleanup(ctx, comments, api.NewCommentPayload().WithPostID(2).Build())

			all, err := comments.GetAll(ctx)
			Expect(err).NotTo(HaveOccurred())

			api.VerifyCommentPresence(all, first.ID, second.ID)
		})
	})

	Context("When updating a comment", func() {
		It("should return the updated comment from subsequent reads", func() {
			created := api.CreateCommentWithCleanup(ctx, comments, api.NewCommentPayload().Build())

			update := *created
			update.Name = "edited " + created.Name

			updated, err := comments.Update(ctx, created.ID, &update)
			Expect(err).NotTo(HaveOccurred())

			retrieved, err := comments.GetByID(ctx, created.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(retrieved).To(Equal(updated))
			Expect(retrieved.Name).To(HavePrefix("edited "))
		})
	})

	Context("When deleting a comment", func() {
		It("should report not found on a second delete", func() {
			payload := api.NewCommentPayload().Build()

			comment, err := comments.Create(ctx, &payload)
			Expect(err).NotTo(HaveOccurred())

			Expect(comments.Delete(ctx, comment.ID)).To(Succeed())

			_, err = comments.DeleteWithStatus(ctx, comment.ID, http.StatusNotFound)
			Expect(err).NotTo(HaveOccurred())
		})
	})
})

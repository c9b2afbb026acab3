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
	"sync"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spjmurray/go-util/pkg/set"

	"github.com/unikorn-cloud/placeholder-taf/pkg/openapi"
	"github.com/unikorn-cloud/placeholder-taf/test/api"
)

var _ = Describe("Concurrency", func() {
	Context("When performing concurrent operations", func() {
		Describe("Given multiple simultaneous user creation requests", func() {
			It("should create every user with a unique identifier", func() {
				const count = 8

				created := make([]*openapi.User, count)

				var wg sync.WaitGroup

				for i := range count {
					wg.Add(1)

					go func() {
						defer GinkgoRecover()
						defer wg.Done()

						payload := api.NewUserPayload().Build()

						user, err := users.Create(ctx, &payload)
						Expect(err).NotTo(HaveOccurred())

						created[i] = user
					}()
				}

				wg.Wait()

				ids := make([]int, count)

				for i, user := range created {
					Expect(user).NotTo(BeNil())
					ids[i] = user.ID

					DeferCleanup(func(ctx SpecContext) {
						Expect(users.Delete(ctx, user.ID)).To(Succeed())
					})
				}

				all, err := users.GetAll(ctx)
				Expect(err).NotTo(HaveOccurred())

				api.VerifyUserPresence(all, ids...)
				Expect(set.New[int](ids...).Len()).To(Equal(count))
			})
		})

		Describe("Given concurrent reads of the same comment", func() {
			It("should return identical representations", func() {
				comment := api.CreateCommentWithCleanup(ctx, comments, api.NewCommentPayload().Build())

				const readers = 5

				results := make([]*openapi.Comment, readers)

				var wg sync.WaitGroup

				for i := range readers {
					wg.Add(1)

					go func() {
						defer GinkgoRecover()
						defer wg.Done()

						got, err := comments.GetByID(ctx, comment.ID)
						Expect(err).NotTo(HaveOccurred())

						results[i] = got
					}()
				}

				wg.Wait()

				for _, result := range results {
					Expect(result).To(Equal(comment))
				}
			})
		})
	})
})

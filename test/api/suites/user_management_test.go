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

	"github.com/unikorn-cloud/placeholder-taf/pkg/openapi"
	"github.com/unikorn-cloud/placeholder-taf/test/api"
)

var _ = Describe("User Management", func() {
	Context("When creating a new user", func() {
		Describe("Given a valid user", func() {
			It("should successfully create the user", func() {
				payload := api.NewUserPayload().
					WithName("Alice").
					WithCompany("Romaguera-Crona", "Multi-layered client-server neural-net").
					Build()

				user := api.CreateUserWithCleanup(ctx, users, payload)

				Expect(user.ID).NotTo(BeZero())
				Expect(user.Name).To(Equal("Alice"))
				Expect(user.Username).To(Equal(payload.Username))
				Expect(user.Email).To(Equal(payload.Email))
				Expect(user.Company).To(Equal(payload.Company))
			})
		})

		Describe("Given an invalid user", func() {
			It("should reject a user with a malformed email", func() {
				payload := api.NewUserPayload().WithEmail("alice-at-example").Build()

				response, err := users.CreateWithStatus(ctx, &payload, http.StatusBadRequest)
				Expect(err).NotTo(HaveOccurred())
				Expect(response.StatusCode).To(Equal(http.StatusBadRequest))
			})

			It("should reject a user with missing required fields", func() {
				payload := api.NewUserPayload().WithName("").WithUsername("").Build()

				_, err := users.Create(ctx, &payload)
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("400"))
			})
		})
	})

	Context("When listing users", func() {
		Describe("Given multiple users exist", func() {
			It("should return all of them", func() {
				first := api.CreateUserWithCleanup(ctx, users, api.NewUserPayload().Build())
				second := api.CreateUserWithCleanup(ctx, users, api.NewUserPayload().Build())

				all, err := users.GetAll(ctx)
				Expect(err).NotTo(HaveOccurred())
				Expect(len(all)).To(BeNumerically(">=", 2))

				api.VerifyUserPresence(all, first.ID, second.ID)
			})
		})
	})

	Context("When retrieving a specific user", func() {
		Describe("Given the user exists", func() {
			It("should return complete user details", func() {
				created := api.CreateUserWithCleanup(ctx, users,
					api.NewUserPayload().
						WithAddress("Kulas Light", "Gwenborough", "92998-3874").
						Build())

				user, err := users.GetByID(ctx, created.ID)
				Expect(err).NotTo(HaveOccurred())
				Expect(user).To(Equal(created))
				Expect(user.Address).NotTo(BeNil())
				Expect(user.Address.City).To(Equal("Gwenborough"))
			})

			It("should return the same representation on every read", func() {
				created := api.CreateUserWithCleanup(ctx, users, api.NewUserPayload().Build())

				first, err := users.GetByID(ctx, created.ID)
				Expect(err).NotTo(HaveOccurred())

				second, err := users.GetByID(ctx, created.ID)
				Expect(err).NotTo(HaveOccurred())

				Expect(first).To(Equal(second))
			})
		})

		Describe("Given the user does not exist", func() {
			It("should return not found", func() {
				response, err := users.GetByIDWithStatus(ctx, 999999, http.StatusNotFound)
				Expect(err).NotTo(HaveOccurred())

				apiError, err := api.Extract[openapi.Error](response)
				Expect(err).NotTo(HaveOccurred())
				Expect(apiError.Error).NotTo(BeEmpty())
			})
		})
	})

	Context("When updating a user", func() {
		Describe("Given the user exists", func() {
			It("should persist the change", func() {
				created := api.CreateUserWithCleanup(ctx, users, api.NewUserPayload().Build())

				update := *created
				update.Phone = "010-692-6593 x09125"

				updated, err := users.Update(ctx, created.ID, &update)
				Expect(err).NotTo(HaveOccurred())
				Expect(updated.Phone).To(Equal(update.Phone))

				retrieved, err := users.GetByID(ctx, created.ID)
				Expect(err).NotTo(HaveOccurred())
				Expect(retrieved).To(Equal(updated))
			})
		})

		Describe("Given an invalid update", func() {
			It("should reject the update and leave the user unchanged", func() {
				created := api.CreateUserWithCleanup(ctx, users, api.NewUserPayload().Build())

				update := *created
				update.Email = "invalid"

				_, err := users.UpdateWithStatus(ctx, &update, created.ID, http.StatusBadRequest)
				Expect(err).NotTo(HaveOccurred())

				retrieved, err := users.GetByID(ctx, created.ID)
				Expect(err).NotTo(HaveOccurred())
				Expect(retrieved.Email).To(Equal(created.Email))
			})
		})
	})

	Context("When deleting a user", func() {
		It("should no longer be retrievable", func() {
			payload := api.NewUserPayload().Build()

			user, err := users.Create(ctx, &payload)
			Expect(err).NotTo(HaveOccurred())

			Expect(users.Delete(ctx, user.ID)).To(Succeed())

			_, err = users.GetByIDWithStatus(ctx, user.ID, http.StatusNotFound)
			Expect(err).NotTo(HaveOccurred())
		})
	})
})

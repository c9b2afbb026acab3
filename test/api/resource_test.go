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

//nolint:revive // dot imports standard for Ginkgo
package api_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/unikorn-cloud/placeholder-taf/pkg/openapi"
	"github.com/unikorn-cloud/placeholder-taf/test/api"
)

var _ = Describe("User Endpoint", func() {
	var (
		ctx   context.Context
		users *api.UserEndpoint
	)

	BeforeEach(func() {
		ctx = context.Background()
		ts := newFakeServer("")
		users = api.NewUserEndpoint(api.NewAPIClientWithConfig(newTestConfig(ts.URL)))
	})

	Context("When creating a user", func() {
		It("should return the created user with a server assigned ID", func() {
			payload := api.NewUserPayload().
				WithName("Alice").
				WithAddress("Kulas Light", "Gwenborough", "92998-3874").
				WithCompany("Romaguera-Crona", "Multi-layered client-server neural-net").
				Build()

			user := api.CreateUserWithCleanup(ctx, users, payload)

			Expect(user.ID).NotTo(BeZero())
			Expect(user.Name).To(Equal("Alice"))

			expected := payload
			expected.ID = user.ID
			Expect(*user).To(Equal(expected))
		})

		It("should reject an invalid user with 400 and not decode it", func() {
			payload := api.NewUserPayload().WithEmail("not-an-email").Build()

			response, err := users.CreateWithStatus(ctx, &payload, http.StatusBadRequest)
			Expect(err).NotTo(HaveOccurred())
			Expect(response.StatusCode).To(Equal(http.StatusBadRequest))

			apiError, err := api.Extract[openapi.Error](response)
			Expect(err).NotTo(HaveOccurred())
			Expect(apiError.Error).To(Equal("invalid_request"))
		})

		It("should fail fast when the strict form gets an unexpected status", func() {
			payload := api.NewUserPayload().WithUsername("").Build()

			_, err := users.Create(ctx, &payload)
			Expect(err).To(HaveOccurred())

			var statusError *api.StatusError

			Expect(errors.As(err, &statusError)).To(BeTrue())
			Expect(statusError.Expected).To(Equal(http.StatusCreated))
			Expect(statusError.Actual).To(Equal(http.StatusBadRequest))
			Expect(err.Error()).To(ContainSubstring("expected 201, got 400"))
		})

		It("should give concurrently created users unique IDs", func() {
			const count = 10

			var (
				wg   sync.WaitGroup
				lock sync.Mutex
				ids  []int
			)

			for range count {
				wg.Add(1)

				go func() {
					defer GinkgoRecover()
					defer wg.Done()

					payload := api.NewUserPayload().Build()

					user, err := users.Create(ctx, &payload)
					Expect(err).NotTo(HaveOccurred())

					lock.Lock()
					defer lock.Unlock()

					ids = append(ids, user.ID)
				}()
			}

			wg.Wait()

			Expect(ids).To(HaveLen(count))

			seen := map[int]bool{}

			for _, id := range ids {
				Expect(seen).NotTo(HaveKey(id))
				seen[id] = true
			}
		})
	})

	Context("When retrieving a user", func() {
		var user *openapi.User

		BeforeEach(func() {
			user = api.CreateUserWithCleanup(ctx, users, api.NewUserPayload().WithName("Alice").Build())
		})

		It("should return the user by ID", func() {
			got, err := users.GetByID(ctx, user.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(user))
			Expect(got.Name).To(Equal("Alice"))
		})

		It("should return the same user on repeated reads", func() {
			first, err := users.GetByID(ctx, user.ID)
			Expect(err).NotTo(HaveOccurred())

			second, err := users.GetByID(ctx, user.ID)
			Expect(err).NotTo(HaveOccurred())

			Expect(first).To(Equal(second))
		})

		It("should return 404 for an unknown user", func() {
			response, err := users.GetByIDWithStatus(ctx, user.ID+1000, http.StatusNotFound)
			Expect(err).NotTo(HaveOccurred())
			Expect(response.Path).To(Equal(api.UsersPath + "/" + strconv.Itoa(user.ID+1000)))

			_, err = users.GetByID(ctx, user.ID+1000)

			var statusError *api.StatusError

			Expect(errors.As(err, &statusError)).To(BeTrue())
			Expect(statusError.Actual).To(Equal(http.StatusNotFound))
			Expect(statusError.TraceID).To(HaveLen(32))
		})
	})

	Context("When updating a user", func() {
		It("should return and persist the updated user", func() {
			user := api.CreateUserWithCleanup(ctx, users, api.NewUserPayload().Build())

			update := *user
			update.Name = "Alicia"
			update.Website = "alicia.example.com"

			updated, err := users.Update(ctx, user.ID, &update)
			Expect(err).NotTo(HaveOccurred())
			Expect(*updated).To(Equal(update))

			got, err := users.GetByID(ctx, user.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(updated))
		})

		It("should return 404 when the user does not exist", func() {
			payload := api.NewUserPayload().Build()

			response, err := users.UpdateWithStatus(ctx, &payload, 4242, http.StatusNotFound)
			Expect(err).NotTo(HaveOccurred())
			Expect(response.StatusCode).To(Equal(http.StatusNotFound))
		})
	})

	Context("When listing users", func() {
		It("should contain every created user", func() {
			first := api.CreateUserWithCleanup(ctx, users, api.NewUserPayload().Build())
			second := api.CreateUserWithCleanup(ctx, users, api.NewUserPayload().Build())

			all, err := users.GetAll(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(len(all)).To(BeNumerically(">=", 2))

			api.VerifyUserPresence(all, first.ID, second.ID)
			Expect(all).To(ContainElements(*first, *second))
		})

		It("should return the raw response in the flexible form", func() {
			response, err := users.GetAllWithStatus(ctx, http.StatusOK)
			Expect(err).NotTo(HaveOccurred())
			Expect(string(response.Body)).To(MatchJSON(`[]`))
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

			all, err := users.GetAll(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(all).NotTo(ContainElement(HaveField("ID", user.ID)))
		})
	})
})

var _ = Describe("Comment Endpoint", func() {
	var (
		ctx      context.Context
		comments *api.CommentEndpoint
	)

	BeforeEach(func() {
		ctx = context.Background()
		ts := newFakeServer("../../pkg/server/testdata/seed.yaml")
		comments = api.NewCommentEndpoint(api.NewAPIClientWithConfig(newTestConfig(ts.URL)))
	})

	It("should list the seeded comments", func() {
		all, err := comments.GetAll(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(all).To(HaveLen(3))
		api.VerifyCommentPresence(all, 1, 2, 3)
	})

	It("should create, update and read back a comment", func() {
		payload := api.NewCommentPayload().WithPostID(2).Build()

		comment := api.CreateCommentWithCleanup(ctx, comments, payload)
		Expect(comment.ID).To(Equal(4))
		Expect(comment.PostID).To(Equal(2))
		Expect(comment.Body).To(Equal(payload.Body))

		update := *comment
		update.Body = "edited"

		updated, err := comments.Update(ctx, comment.ID, &update)
		Expect(err).NotTo(HaveOccurred())
		Expect(updated.Body).To(Equal("edited"))

		got, err := comments.GetByID(ctx, comment.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(got).To(Equal(updated))
	})

	It("should reject a comment without a post", func() {
		payload := api.NewCommentPayload().WithPostID(0).Build()

		response, err := comments.CreateWithStatus(ctx, &payload, http.StatusBadRequest)
		Expect(err).NotTo(HaveOccurred())
		Expect(response.StatusCode).To(Equal(http.StatusBadRequest))
	})

	It("should report an unexpected status from the flexible form", func() {
		_, err := comments.GetAllWithStatus(ctx, http.StatusNoContent)

		var statusError *api.StatusError

		Expect(errors.As(err, &statusError)).To(BeTrue())
		Expect(statusError.Expected).To(Equal(http.StatusNoContent))
		Expect(statusError.Actual).To(Equal(http.StatusOK))
	})
})

var _ = Describe("Response Decoding", func() {
	var ctx context.Context

	// newMisbehavingServer always responds with the given status and body.
	newMisbehavingServer := func(status int, body string) *httptest.Server {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(status)
			_, _ = w.Write([]byte(body))
		}))

		DeferCleanup(ts.Close)

		return ts
	}

	BeforeEach(func() {
		ctx = context.Background()
	})

	It("should surface a decode failure when the body is not a representation", func() {
		ts := newMisbehavingServer(http.StatusOK, `"hello"`)
		users := api.NewUserEndpoint(api.NewAPIClientWithConfig(newTestConfig(ts.URL)))

		_, err := users.GetByID(ctx, 1)
		Expect(err).To(MatchError(api.ErrDecode))
	})

	It("should reject unknown fields when strict decoding is enabled", func() {
		ts := newMisbehavingServer(http.StatusOK, `{"id":1,"postId":1,"name":"n","email":"a@example.com","body":"b","likes":1}`)

		config := newTestConfig(ts.URL)

		lenient := api.NewCommentEndpoint(api.NewAPIClientWithConfig(config))

		_, err := lenient.GetByID(ctx, 1)
		Expect(err).NotTo(HaveOccurred())

		strictConfig := *config
		strictConfig.StrictDecoding = true

		strict := api.NewCommentEndpoint(api.NewAPIClientWithConfig(&strictConfig))

		_, err = strict.GetByID(ctx, 1)
		Expect(err).To(MatchError(api.ErrDecode))
	})

	It("should validate response schemas when configured", func() {
		ts := newMisbehavingServer(http.StatusOK, `[{"id":1}]`)

		config := newTestConfig(ts.URL)
		config.ValidateSchemas = true

		users := api.NewUserEndpoint(api.NewAPIClientWithConfig(config))

		_, err := users.GetAll(ctx)
		Expect(err).To(MatchError(api.ErrSchema))
	})

	It("should surface transport failures", func() {
		ts := newMisbehavingServer(http.StatusOK, `[]`)
		ts.Close()

		users := api.NewUserEndpoint(api.NewAPIClientWithConfig(newTestConfig(ts.URL)))

		_, err := users.GetAll(ctx)
		Expect(err).To(HaveOccurred())

		var statusError *api.StatusError

		Expect(errors.As(err, &statusError)).To(BeFalse())
	})
})

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

//nolint:revive,staticcheck // dot imports are standard for Ginkgo/Gomega test code
package api

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spjmurray/go-util/pkg/set"

	"github.com/unikorn-cloud/placeholder-taf/pkg/openapi"
)

// CreateUserWithCleanup creates a user and schedules its deletion.
func CreateUserWithCleanup(ctx context.Context, users *UserEndpoint, payload openapi.User) *openapi.User {
	user, err := users.Create(ctx, &payload)
	Expect(err).NotTo(HaveOccurred())
	Expect(user.ID).NotTo(BeZero())

	GinkgoWriter.Printf("Created user with ID: %d\n", user.ID)

	// Schedule cleanup - this runs whether the test passes or fails so we don't need to clean up manually
	DeferCleanup(func(ctx SpecContext) {
		GinkgoWriter.Printf("Cleaning up user: %d\n", user.ID)

		if err := users.Delete(ctx, user.ID); err != nil {
			GinkgoWriter.Printf("Warning: Failed to delete user %d: %v\n", user.ID, err)
		}
	})

	return user
}

// CreateCommentWithCleanup creates a comment and schedules its deletion.
func CreateCommentWithCleanup(ctx context.Context, comments *CommentEndpoint, payload openapi.Comment) *openapi.Comment {
	comment, err := comments.Create(ctx, &payload)
	Expect(err).NotTo(HaveOccurred())
	Expect(comment.ID).NotTo(BeZero())

	GinkgoWriter.Printf("Created comment with ID: %d\n", comment.ID)

	DeferCleanup(func(ctx SpecContext) {
		GinkgoWriter.Printf("Cleaning up comment: %d\n", comment.ID)

		if err := comments.Delete(ctx, comment.ID); err != nil {
			GinkgoWriter.Printf("Warning: Failed to delete comment %d: %v\n", comment.ID, err)
		}
	})

	return comment
}

// missingIDs returns the expected IDs not present in actual.
func missingIDs(actual, expected []int) []int {
	var missing []int

	for id := range set.New[int](expected...).Difference(set.New[int](actual...)).All() {
		missing = append(missing, id)
	}

	return missing
}

// VerifyUserPresence verifies that users are present in the list, in any order.
func VerifyUserPresence(users []openapi.User, expectedUserIDs ...int) {
	ids := make([]int, len(users))

	for i := range users {
		ids[i] = users[i].ID
	}

	Expect(missingIDs(ids, expectedUserIDs)).To(BeEmpty(), "Expected user IDs to be present in the list")
}

// VerifyCommentPresence verifies that comments are present in the list, in any order.
func VerifyCommentPresence(comments []openapi.Comment, expectedCommentIDs ...int) {
	ids := make([]int, len(comments))

	for i := range comments {
		ids[i] = comments[i].ID
	}

	Expect(missingIDs(ids, expectedCommentIDs)).To(BeEmpty(), "Expected comment IDs to be present in the list")
}

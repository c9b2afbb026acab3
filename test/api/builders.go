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
	"fmt"

	"github.com/unikorn-cloud/placeholder-taf/pkg/openapi"

	"k8s.io/apimachinery/pkg/util/rand"
	"k8s.io/utils/ptr"
)

func generateRandomName(prefix string) string {
	return fmt.Sprintf("%s-%s", prefix, rand.String(8))
}

func GenerateTestID() string {
	return generateRandomName("test")
}

// UserPayloadBuilder builds user payloads for testing.
type UserPayloadBuilder struct {
	user openapi.User
}

// NewUserPayload creates a new user payload builder with a unique username
// and email.
func NewUserPayload() *UserPayloadBuilder {
	username := generateRandomName("testautomation")

	return &UserPayloadBuilder{
		user: openapi.User{
			Name:     "Test Automation " + username,
			Username: username,
			Email:    username + "@example.com",
			Phone:    "1-770-736-8031",
			Website:  "example.com",
		},
	}
}

// WithName sets the user's display name.
func (b *UserPayloadBuilder) WithName(name string) *UserPayloadBuilder {
	b.user.Name = name
	return b
}

// WithUsername sets the username (pass empty string to omit).
func (b *UserPayloadBuilder) WithUsername(username string) *UserPayloadBuilder {
	b.user.Username = username
	return b
}

// WithEmail sets the email address.
func (b *UserPayloadBuilder) WithEmail(email string) *UserPayloadBuilder {
	b.user.Email = email
	return b
}

// WithAddress sets the postal address.
func (b *UserPayloadBuilder) WithAddress(street, city, zipcode string) *UserPayloadBuilder {
	b.user.Address = ptr.To(openapi.Address{
		Street:  street,
		City:    city,
		Zipcode: zipcode,
	})

	return b
}

// WithCompany sets the employer.
func (b *UserPayloadBuilder) WithCompany(name, catchPhrase string) *UserPayloadBuilder {
	b.user.Company = ptr.To(openapi.Company{
		Name:        name,
		CatchPhrase: catchPhrase,
	})

	return b
}

// Build returns the completed user payload.
func (b *UserPayloadBuilder) Build() openapi.User {
	return b.user
}

// CommentPayloadBuilder builds comment payloads for testing.
type CommentPayloadBuilder struct {
	comment openapi.Comment
}

// NewCommentPayload creates a new comment payload builder against post 1.
func NewCommentPayload() *CommentPayloadBuilder {
	name := generateRandomName("testautomation")

	return &CommentPayloadBuilder{
		comment: openapi.Comment{
			PostID: 1,
			Name:   name,
			Email:  name + "@example.com",
			Body:   "Comment created by " + name,
		},
	}
}

// WithPostID sets the post the comment belongs to.
func (b *CommentPayloadBuilder) WithPostID(postID int) *CommentPayloadBuilder {
	b.comment.PostID = postID
	return b
}

// WithName sets the comment title.
func (b *CommentPayloadBuilder) WithName(name string) *CommentPayloadBuilder {
	b.comment.Name = name
	return b
}

// WithEmail sets the author's email address.
func (b *CommentPayloadBuilder) WithEmail(email string) *CommentPayloadBuilder {
	b.comment.Email = email
	return b
}

// WithBody sets the comment text.
func (b *CommentPayloadBuilder) WithBody(body string) *CommentPayloadBuilder {
	b.comment.Body = body
	return b
}

// Build returns the completed comment payload.
func (b *CommentPayloadBuilder) Build() openapi.Comment {
	return b.comment
}

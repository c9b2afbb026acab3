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

//nolint:revive
package handler

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/unikorn-cloud/core/pkg/server/errors"
	"github.com/unikorn-cloud/core/pkg/server/util"
	"github.com/unikorn-cloud/placeholder-taf/pkg/openapi"
	"github.com/unikorn-cloud/placeholder-taf/pkg/server/handler/comments"
	"github.com/unikorn-cloud/placeholder-taf/pkg/server/handler/users"
	serverutil "github.com/unikorn-cloud/placeholder-taf/pkg/server/util"
	"github.com/unikorn-cloud/placeholder-taf/pkg/store"
)

type Handler struct {
	// users holds all user records.
	users *store.Store[openapi.User]

	// comments holds all comment records.
	comments *store.Store[openapi.Comment]

	// validate is shared by all resource clients.
	validate *validator.Validate
}

var _ openapi.ServerInterface = &Handler{}

func New(users *store.Store[openapi.User], comments *store.Store[openapi.Comment]) (*Handler, error) {
	h := &Handler{
		users:    users,
		comments: comments,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}

	return h, nil
}

func (h *Handler) setUncacheable(w http.ResponseWriter) {
	w.Header().Add("Cache-Control", "no-cache")
}

func (h *Handler) userClient() *users.Client {
	return users.NewClient(h.users, h.validate)
}

func (h *Handler) GetUsers(w http.ResponseWriter, r *http.Request) {
	result := h.userClient().List(r.Context())

	h.setUncacheable(w)
	util.WriteJSONResponse(w, r, http.StatusOK, result)
}

func (h *Handler) PostUsers(w http.ResponseWriter, r *http.Request) {
	request := &openapi.User{}

	if err := serverutil.ReadJSONBody(r, openapi.SchemaUser, request); err != nil {
		errors.HandleError(w, r, err)
		return
	}

	result, err := h.userClient().Create(r.Context(), request)
	if err != nil {
		errors.HandleError(w, r, err)
		return
	}

	h.setUncacheable(w)
	util.WriteJSONResponse(w, r, http.StatusCreated, result)
}

func (h *Handler) GetUsersUserID(w http.ResponseWriter, r *http.Request, userID openapi.UserIDParameter) {
	result, err := h.userClient().Get(r.Context(), userID)
	if err != nil {
		errors.HandleError(w, r, err)
		return
	}

	h.setUncacheable(w)
	util.WriteJSONResponse(w, r, http.StatusOK, result)
}

func (h *Handler) PutUsersUserID(w http.ResponseWriter, r *http.Request, userID openapi.UserIDParameter) {
	request := &openapi.User{}

	if err := serverutil.ReadJSONBody(r, openapi.SchemaUser, request); err != nil {
		errors.HandleError(w, r, err)
		return
	}

	result, err := h.userClient().Update(r.Context(), userID, request)
	if err != nil {
		errors.HandleError(w, r, err)
		return
	}

	h.setUncacheable(w)
	util.WriteJSONResponse(w, r, http.StatusOK, result)
}

func (h *Handler) DeleteUsersUserID(w http.ResponseWriter, r *http.Request, userID openapi.UserIDParameter) {
	if err := h.userClient().Delete(r.Context(), userID); err != nil {
		errors.HandleError(w, r, err)
		return
	}

	h.setUncacheable(w)
	util.WriteJSONResponse(w, r, http.StatusOK, struct{}{})
}

func (h *Handler) commentClient() *comments.Client {
	return comments.NewClient(h.comments, h.validate)
}

func (h *Handler) GetComments(w http.ResponseWriter, r *http.Request) {
	result := h.commentClient().List(r.Context())

	h.setUncacheable(w)
	util.WriteJSONResponse(w, r, http.StatusOK, result)
}

func (h *Handler) PostComments(w http.ResponseWriter, r *http.Request) {
	request := &openapi.Comment{}

	if err := serverutil.ReadJSONBody(r, openapi.SchemaComment, request); err != nil {
		errors.HandleError(w, r, err)
		return
	}

	result, err := h.commentClient().Create(r.Context(), request)
	if err != nil {
		errors.HandleError(w, r, err)
		return
	}

	h.setUncacheable(w)
	util.WriteJSONResponse(w, r, http.StatusCreated, result)
}

func (h *Handler) GetCommentsCommentID(w http.ResponseWriter, r *http.Request, commentID openapi.CommentIDParameter) {
	result, err := h.commentClient().Get(r.Context(), commentID)
	if err != nil {
		errors.HandleError(w, r, err)
		return
	}

	h.setUncacheable(w)
	util.WriteJSONResponse(w, r, http.StatusOK, result)
}

func (h *Handler) PutCommentsCommentID(w http.ResponseWriter, r *http.Request, commentID openapi.CommentIDParameter) {
	request := &openapi.Comment{}

	if err := serverutil.ReadJSONBody(r, openapi.SchemaComment, request); err != nil {
		errors.HandleError(w, r, err)
		return
	}

	result, err := h.commentClient().Update(r.Context(), commentID, request)
	if err != nil {
		errors.HandleError(w, r, err)
		return
	}

	h.setUncacheable(w)
	util.WriteJSONResponse(w, r, http.StatusOK, result)
}

func (h *Handler) DeleteCommentsCommentID(w http.ResponseWriter, r *http.Request, commentID openapi.CommentIDParameter) {
	if err := h.commentClient().Delete(r.Context(), commentID); err != nil {
		errors.HandleError(w, r, err)
		return
	}

	h.setUncacheable(w)
	util.WriteJSONResponse(w, r, http.StatusOK, struct{}{})
}

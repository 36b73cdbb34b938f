package transport

import (
	"net/http"

	"github.com/muhammadheryan/green-footprint/model"
	utilsContext "github.com/muhammadheryan/green-footprint/utils/context"
)

// CreatePost handler
// @Summary Create a post
// @Tags Posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.CreatePostRequest true "Post"
// @Success 201 {object} Response{data=model.Post}
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /posts [post]
func (s *RestHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, err := requestUserID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.CreatePostRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	post, err := s.PostApp.Create(ctx, userID, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeCreated(w, "Post created successfully", post)
}

// ListPosts handler
// @Summary List own posts
// @Tags Posts
// @Produce json
// @Security BearerAuth
// @Param startDate query string false "Created at lower bound"
// @Param endDate query string false "Created at upper bound"
// @Param tags query string false "Comma separated tags"
// @Param isPublic query bool false "Visibility"
// @Param page query int false "Page, from 0"
// @Param limit query int false "Page size, max 100"
// @Success 200 {object} Response{data=[]model.Post}
// @Failure 400 {object} ErrorResponse
// @Router /posts [get]
func (s *RestHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, err := requestUserID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	filter, err := parseListFilter(r.URL.Query())
	if err != nil {
		writeError(w, err)
		return
	}

	items, page, err := s.PostApp.List(ctx, userID, filter)
	if err != nil {
		writeError(w, err)
		return
	}

	writePage(w, "Posts retrieved successfully", items, page)
}

// ListPublicPosts handler
// @Summary List public posts
// @Tags Posts
// @Produce json
// @Param startDate query string false "Created at lower bound"
// @Param endDate query string false "Created at upper bound"
// @Param tags query string false "Comma separated tags"
// @Param page query int false "Page, from 0"
// @Param limit query int false "Page size, max 100"
// @Success 200 {object} Response{data=[]model.Post}
// @Failure 400 {object} ErrorResponse
// @Router /posts/public [get]
func (s *RestHandler) ListPublicPosts(w http.ResponseWriter, r *http.Request) {
	filter, err := parseListFilter(r.URL.Query())
	if err != nil {
		writeError(w, err)
		return
	}

	items, page, err := s.PostApp.ListPublic(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}

	writePage(w, "Public posts retrieved successfully", items, page)
}

// GetPost handler
// @Summary Get a post
// @Description Public posts are visible to anyone, private posts only to their author.
// @Tags Posts
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} Response{data=model.Post}
// @Failure 404 {object} ErrorResponse
// @Router /posts/{id} [get]
func (s *RestHandler) GetPost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	viewerID, _ := utilsContext.GetUserID(ctx)
	post, err := s.PostApp.Get(ctx, viewerID, id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, "Post retrieved successfully", post)
}

// UpdatePost handler
// @Summary Update a post
// @Tags Posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Param request body model.UpdatePostRequest true "Fields to change"
// @Success 200 {object} Response{data=model.Post}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /posts/{id} [put]
func (s *RestHandler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, err := requestUserID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.UpdatePostRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	post, err := s.PostApp.Update(ctx, userID, id, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, "Post updated successfully", post)
}

// DeletePost handler
// @Summary Delete a post
// @Tags Posts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Success 200 {object} Response
// @Failure 404 {object} ErrorResponse
// @Router /posts/{id} [delete]
func (s *RestHandler) DeletePost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, err := requestUserID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.PostApp.Delete(ctx, userID, id); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, "Post deleted successfully", nil)
}

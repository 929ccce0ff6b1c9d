package handlers

import (
	"encoding/json"
	"net/http"
)

type CreatePostRequest struct {
	Content string `json:"content" validate:"required"`
}

func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	authUser, ok := authUserFromContext(r)
	if !ok {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	var req CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	post, err := h.PostService.CreatePost(r.Context(), authUser, req.Content)
	if err != nil {
		RespondError(w, err)
		return
	}

	WriteSuccess(w, post, http.StatusCreated)
}

func (h *Handlers) ListPosts(w http.ResponseWriter, r *http.Request) {
	authUser, ok := authUserFromContext(r)
	if !ok {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	posts, err := h.PostService.ListPosts(r.Context(), authUser.UserID)
	if err != nil {
		RespondError(w, err)
		return
	}

	WriteSuccess(w, posts, http.StatusOK)
}

func (h *Handlers) DeletePost(w http.ResponseWriter, r *http.Request) {
	authUser, ok := authUserFromContext(r)
	if !ok {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	postID, err := pathUUID(r, "id", "Неверный id поста")
	if err != nil {
		RespondError(w, err)
		return
	}

	if err := h.PostService.DeletePost(r.Context(), authUser, postID); err != nil {
		RespondError(w, err)
		return
	}

	WriteSuccess(w, MessageResponse{Message: "Пост удалён"}, http.StatusOK)
}

func (h *Handlers) LikePost(w http.ResponseWriter, r *http.Request) {
	authUser, ok := authUserFromContext(r)
	if !ok {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	postID, err := pathUUID(r, "id", "Неверный id поста")
	if err != nil {
		RespondError(w, err)
		return
	}

	if err := h.PostService.LikePost(r.Context(), authUser, postID); err != nil {
		RespondError(w, err)
		return
	}

	WriteSuccess(w, MessageResponse{Message: "Лайк поставлен"}, http.StatusCreated)
}

func (h *Handlers) UnlikePost(w http.ResponseWriter, r *http.Request) {
	authUser, ok := authUserFromContext(r)
	if !ok {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	postID, err := pathUUID(r, "id", "Неверный id поста")
	if err != nil {
		RespondError(w, err)
		return
	}

	if err := h.PostService.UnlikePost(r.Context(), authUser, postID); err != nil {
		RespondError(w, err)
		return
	}

	WriteSuccess(w, MessageResponse{Message: "Лайк снят"}, http.StatusOK)
}

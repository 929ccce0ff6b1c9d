package handlers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

func (h *Handlers) PromoteUser(w http.ResponseWriter, r *http.Request) {
	targetID, err := pathUUID(r, "id", "Неверный id пользователя")
	if err != nil {
		RespondError(w, err)
		return
	}

	if err := h.AdminService.PromoteUser(r.Context(), targetID); err != nil {
		RespondError(w, err)
		return
	}

	WriteSuccess(w, MessageResponse{Message: "Пользователь назначен администратором"}, http.StatusOK)
}

func (h *Handlers) DemoteUser(w http.ResponseWriter, r *http.Request) {
	targetID, err := pathUUID(r, "id", "Неверный id пользователя")
	if err != nil {
		RespondError(w, err)
		return
	}

	if err := h.AdminService.DemoteUser(r.Context(), targetID); err != nil {
		RespondError(w, err)
		return
	}

	WriteSuccess(w, MessageResponse{Message: "Администратор понижен до пользователя"}, http.StatusOK)
}

func (h *Handlers) AdminDeleteUser(w http.ResponseWriter, r *http.Request) {
	authUser, ok := authUserFromContext(r)
	if !ok {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	targetID, err := pathUUID(r, "id", "Неверный id пользователя")
	if err != nil {
		RespondError(w, err)
		return
	}

	if err := h.AdminService.DeleteUser(r.Context(), authUser, targetID); err != nil {
		RespondError(w, err)
		return
	}

	WriteSuccess(w, MessageResponse{Message: "Пользователь удалён"}, http.StatusOK)
}

func (h *Handlers) AdminDeletePost(w http.ResponseWriter, r *http.Request) {
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

	if err := h.AdminService.DeletePost(r.Context(), authUser, postID); err != nil {
		RespondError(w, err)
		return
	}

	WriteSuccess(w, MessageResponse{Message: "Пост удалён модератором"}, http.StatusOK)
}

func (h *Handlers) AdminDeleteLike(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID := vars["userId"]
	postID := vars["postId"]

	if _, err := uuid.Parse(userID); err != nil {
		WriteError(w, "Неверные идентификаторы", http.StatusBadRequest)
		return
	}
	if _, err := uuid.Parse(postID); err != nil {
		WriteError(w, "Неверные идентификаторы", http.StatusBadRequest)
		return
	}

	if err := h.AdminService.DeleteLike(r.Context(), userID, postID); err != nil {
		RespondError(w, err)
		return
	}

	WriteSuccess(w, MessageResponse{Message: "Лайк удалён модератором"}, http.StatusOK)
}

package handlers

import (
	"net/http"
)

func (h *Handlers) Follow(w http.ResponseWriter, r *http.Request) {
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

	if err := h.SocialService.Follow(r.Context(), authUser, targetID); err != nil {
		RespondError(w, err)
		return
	}

	WriteSuccess(w, MessageResponse{Message: "Подписка оформлена"}, http.StatusCreated)
}

func (h *Handlers) Unfollow(w http.ResponseWriter, r *http.Request) {
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

	if err := h.SocialService.Unfollow(r.Context(), authUser, targetID); err != nil {
		RespondError(w, err)
		return
	}

	WriteSuccess(w, MessageResponse{Message: "Подписка отменена"}, http.StatusOK)
}

func (h *Handlers) Block(w http.ResponseWriter, r *http.Request) {
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

	if err := h.SocialService.Block(r.Context(), authUser, targetID); err != nil {
		RespondError(w, err)
		return
	}

	WriteSuccess(w, MessageResponse{Message: "Пользователь заблокирован"}, http.StatusCreated)
}

func (h *Handlers) Unblock(w http.ResponseWriter, r *http.Request) {
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

	if err := h.SocialService.Unblock(r.Context(), authUser, targetID); err != nil {
		RespondError(w, err)
		return
	}

	WriteSuccess(w, MessageResponse{Message: "Пользователь разблокирован"}, http.StatusOK)
}

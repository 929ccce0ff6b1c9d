package handlers

import (
	"encoding/json"
	"net/http"
)

// ListActivities - глобальная лента активности (последние 100 записей)
func (h *Handlers) ListActivities(w http.ResponseWriter, r *http.Request) {
	if _, ok := authUserFromContext(r); !ok {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	entries, err := h.ActivityService.Wall(r.Context())
	if err != nil {
		RespondError(w, err)
		return
	}

	WriteSuccess(w, entries, http.StatusOK)
}

func HealthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func HomeHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"service": "socialhub"})
}

package handler

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// GetUserLinks возвращает все ссылки аутентифицированного владельца
func (h *Handler) GetUserLinks(w http.ResponseWriter, r *http.Request) {
	owner, ok := h.getOwnerFromRequest(r)
	if !ok {
		h.logger.Debug("owner not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	links, err := h.usecase.ListLinks(r.Context(), owner.ID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	// Если ссылок нет, возвращаем 204 No Content
	if len(links) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	w.WriteHeader(http.StatusOK)

	if err := json.NewEncoder(w).Encode(links); err != nil {
		h.logger.Error("failed to encode user links", zap.Error(err))
	}
}

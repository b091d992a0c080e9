package handler

import (
	"encoding/json"
	"net/http"

	"github.com/avc-dev/shortlink/internal/model"
	"go.uber.org/zap"
)

type ShortenRequest struct {
	URL         string `json:"url"`
	CustomAlias string `json:"custom_alias,omitempty"`
}

type ShortenResponse struct {
	Result string     `json:"result"`
	Link   model.Link `json:"link"`
}

// CreateLink обрабатывает POST запрос для создания короткой ссылки (JSON формат)
func (h *Handler) CreateLink(w http.ResponseWriter, req *http.Request) {
	owner, ok := h.getOwnerFromRequest(req)
	if !ok {
		h.logger.Debug("owner not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var request ShortenRequest
	if err := json.NewDecoder(req.Body).Decode(&request); err != nil {
		h.logger.Warn("failed to decode JSON request",
			zap.Error(err),
			zap.String("remote_addr", req.RemoteAddr),
		)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	link, shortURL, err := h.usecase.CreateLink(req.Context(), request.URL, request.CustomAlias, owner)
	if err != nil {
		h.handleError(w, err)
		return
	}

	response := ShortenResponse{
		Result: shortURL,
		Link:   *link,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.logger.Error("failed to encode response", zap.Error(err))
	}
}

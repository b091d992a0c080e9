package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/avc-dev/shortlink/internal/usecase"
	"github.com/go-chi/chi/v5"
)

// Resolve обрабатывает GET /{code}: редирект на оригинальный URL.
// Контракт редиректа тотальный: любой запрос резолва заканчивается
// каким-то редиректом - на оригинальный URL либо на fallback-страницу
// с индикатором ошибки. Исключение - имена статических файлов,
// которые не относятся к пространству кодов и получают 404.
func (h *Handler) Resolve(w http.ResponseWriter, req *http.Request) {
	code := chi.URLParam(req, "code")

	// Коды с точкой (favicon.ico и прочие статические имена)
	// не передаются резолверу
	if code == "" || strings.Contains(code, ".") {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	originalURL, err := h.usecase.Resolve(req.Context(), code)
	if err != nil {
		if errors.Is(err, usecase.ErrLinkNotFound) {
			h.redirectFallback(w, req, "not-found")
			return
		}
		h.redirectFallback(w, req, "server-error")
		return
	}

	http.Redirect(w, req, originalURL, http.StatusFound)
}

// redirectFallback отправляет редирект на fallback-страницу с индикатором ошибки
func (h *Handler) redirectFallback(w http.ResponseWriter, req *http.Request, indicator string) {
	target := h.cfg.FallbackURL + "?error=" + indicator
	http.Redirect(w, req, target, http.StatusFound)
}

package gateway

import (
	"encoding/base64"
	"log/slog"
	"net/http"

	"github.com/taskmasterhq/taskmaster/internal/tasks"
)

// setMirrorCookie writes the full serialized collection into the browser
// cookie after a mutation, so the client carries the collection across
// top-level navigations. The slot remains the authoritative durable copy;
// the cookie is presentation-side convenience and is never read back by the
// server.
func (s *Server) setMirrorCookie(w http.ResponseWriter) {
	data, err := tasks.Encode(s.store.All())
	if err != nil {
		slog.Warn("encode mirror cookie", "error", err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     s.cookie.Name,
		Value:    base64.RawURLEncoding.EncodeToString(data),
		Path:     s.cookie.Path,
		SameSite: parseSameSite(s.cookie.SameSite),
	})
}

func parseSameSite(v string) http.SameSite {
	switch v {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}

package handler

import (
	"log/slog"
	"net/http"
	"os"
)

// NewStaticHandler returns the fallback handler for paths that match no
// API prefix. When dir names a usable directory its contents are served;
// otherwise every request answers with a JSON 500, since a gateway
// deployed without its asset bundle is misconfigured, not serving an
// empty site.
func NewStaticHandler(dir string, logger *slog.Logger) http.Handler {
	if dir != "" {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return http.FileServer(http.Dir(dir))
		}
		logger.Warn("static: asset directory unusable, serving errors",
			slog.String("dir", dir),
		)
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Methods", "GET,HEAD,OPTIONS")
		h.Set("Access-Control-Allow-Headers", "Content-Type")
		writeError(w, http.StatusInternalServerError,
			"Static assets unavailable. Configure server.static_dir or GATEWAY_SERVER_STATIC_DIR.")
	})
}

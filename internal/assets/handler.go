package assets

import (
	"encoding/json"
	"io"
	"net/http"
	"path"
	"strings"

	"github.com/sirupsen/logrus"
)

// staticExtensions are the file extensions eligible for store passthrough
// outside the explicit asset routes.
var staticExtensions = map[string]bool{
	".js": true, ".css": true, ".png": true, ".jpg": true, ".jpeg": true,
	".gif": true, ".svg": true, ".ico": true, ".woff": true, ".woff2": true,
	".ttf": true, ".eot": true, ".map": true,
}

// Handler implements the tail of the routing table: asset passthrough, the
// API 404, and the SPA shell. Each step may decline and fall through to the
// next; a store failure is logged, never surfaced as a 500.
type Handler struct {
	Store  Store
	Logger *logrus.Logger
}

// NewHandler creates a new Handler over the given store.
func NewHandler(store Store, logger *logrus.Logger) *Handler {
	return &Handler{Store: store, Logger: logger}
}

// ServeAsset handles the explicit asset routes (/assets/*, /favicon.ico,
// /robots.txt). A miss falls through to the ordered Fallback cascade.
func (h *Handler) ServeAsset(w http.ResponseWriter, req *http.Request) {
	if h.tryAsset(w, req, req.URL.Path) {
		return
	}
	h.Fallback(w, req)
}

// Fallback is the catch-all for unmatched paths, evaluated in order: static
// extension passthrough, API 404, SPA shell.
func (h *Handler) Fallback(w http.ResponseWriter, req *http.Request) {
	requestPath := req.URL.Path

	if staticExtensions[strings.ToLower(path.Ext(requestPath))] {
		if h.tryAsset(w, req, requestPath) {
			return
		}
	}

	// API routes never get the SPA shell; a typo'd endpoint must 404.
	if strings.HasPrefix(requestPath, "/api/") {
		h.writeAPINotFound(w, requestPath)
		return
	}

	h.serveShell(w, req)
}

// tryAsset streams the asset from the store. Returns false, writing nothing,
// when the store declines.
func (h *Handler) tryAsset(w http.ResponseWriter, req *http.Request, assetPath string) bool {
	resp, err := h.Store.Fetch(req.Context(), assetPath)
	if err != nil {
		h.Logger.WithError(err).WithField("path", assetPath).Error("Assets.tryAsset.fetch error")
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return false
	}

	copyHeader(w.Header(), resp.Header)
	w.WriteHeader(resp.StatusCode)
	if _, err := io.Copy(w, resp.Body); err != nil {
		h.Logger.WithError(err).WithField("path", assetPath).Error("Assets.tryAsset.copy error")
	}
	return true
}

// serveShell fetches the SPA entry point. A 3xx from the store becomes a
// redirect to its Location; any other failure becomes a generic 404.
func (h *Handler) serveShell(w http.ResponseWriter, req *http.Request) {
	resp, err := h.Store.Fetch(req.Context(), "/index.html")
	if err != nil {
		h.Logger.WithError(err).Error("Assets.serveShell.fetch error")
		h.writeNotFound(w)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices && resp.StatusCode < http.StatusBadRequest {
		if location := resp.Header.Get("Location"); location != "" {
			http.Redirect(w, req, location, http.StatusFound)
			return
		}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		h.writeNotFound(w)
		return
	}

	copyHeader(w.Header(), resp.Header)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, resp.Body); err != nil {
		h.Logger.WithError(err).Error("Assets.serveShell.copy error")
	}
}

func (h *Handler) writeAPINotFound(w http.ResponseWriter, requestPath string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"error": "API route not found",
		"debug": map[string]interface{}{"requestedPath": requestPath},
	})
}

func (h *Handler) writeNotFound(w http.ResponseWriter) {
	http.Error(w, "404 Not Found", http.StatusNotFound)
}

func copyHeader(dst, src http.Header) {
	for key, values := range src {
		for _, value := range values {
			dst.Add(key, value)
		}
	}
}
